package main

import (
	"fmt"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/crawl"
	"github.com/fwojciec/harvest/fs"
	"github.com/fwojciec/harvest/goquery"
	harvesthttp "github.com/fwojciec/harvest/http"
	hslog "github.com/fwojciec/harvest/slog"
)

const maxURLWidth = 100

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg := deps.Config

	filter, err := harvest.NewURLFilter(
		append(append([]string{}, cfg.Include...), c.Include...),
		append(append([]string{}, cfg.Exclude...), c.Exclude...),
	)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	normalizer, err := crawl.NewNormalizer(normalizerOptions(cfg)...)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	ledger, err := fs.OpenLedger(c.Out)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}
	defer ledger.Close()

	fetcherOpts := []harvesthttp.Option{harvesthttp.WithTimeout(c.Timeout)}
	if c.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, harvesthttp.WithUserAgent(c.UserAgent))
	}

	crawler := &crawl.Crawler{
		Fetcher:     hslog.NewLoggingFetcher(harvesthttp.NewFetcher(fetcherOpts...), deps.Logger),
		Extractor:   goquery.NewExtractor(extractorOptions(cfg)...),
		Normalizer:  normalizer,
		Store:       hslog.NewLoggingStore(fs.NewWriter(c.Out), deps.Logger),
		Ledger:      hslog.NewLoggingLedger(ledger, deps.Logger),
		Filter:      filter,
		SampleSize:  c.SampleSize,
		Threshold:   c.Threshold,
		MinCount:    c.MinCount,
		Delay:       c.Delay,
		MaxDelay:    c.MaxDelay,
		Concurrency: c.Concurrency,
		MaxPages:    c.MaxPages,
	}
	if c.Concurrency > 1 {
		crawler.RateLimiter = crawl.NewDomainLimiter(c.Delay)
	}
	if c.Sitemap {
		crawler.Sitemaps = hslog.NewLoggingSitemapService(harvesthttp.NewSitemapService(nil), deps.Logger)
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Harvesting %s into %s\n", event.URL, c.Out)
		case crawl.ProgressPhase:
			switch event.Phase {
			case crawl.PhaseSampling:
				fmt.Fprintf(deps.Stdout, "  Sampling up to %d pages\n", c.SampleSize)
			case crawl.PhaseFullCrawl:
				fmt.Fprintln(deps.Stdout, "  Crawling")
			}
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d] saved %s\n", event.Completed, crawl.TruncateURL(event.URL, maxURLWidth))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, maxURLWidth), event.Error)
		}
	}

	result, err := crawler.Run(deps.Ctx, c.URL, progress)
	if result != nil {
		printSummary(deps, result)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	if n := len(result.PersistErrors); n > 0 {
		for _, e := range result.PersistErrors {
			fmt.Fprintf(deps.Stderr, "  write failed: %v\n", e)
		}
		return harvest.Errorf(harvest.EPERSIST, "%d writes failed; output in %s is incomplete", n, c.Out)
	}
	return nil
}

func printSummary(deps *Dependencies, result *crawl.Result) {
	fmt.Fprintf(deps.Stdout, "  Boilerplate: %d texts from %d sampled pages\n", result.Boilerplate, result.Sampled)
	fmt.Fprintf(deps.Stdout, "Scraped %d pages, %d failed, %d processed, %d discovered\n",
		result.Scraped, result.Failed, result.Total, result.Discovered)
	if result.Pending > 0 {
		fmt.Fprintf(deps.Stdout, "  %d discovered pages were not visited\n", result.Pending)
	}
}

func normalizerOptions(cfg *Config) []crawl.NormalizerOption {
	var opts []crawl.NormalizerOption
	if len(cfg.StartMarkers) > 0 {
		opts = append(opts, crawl.WithStartMarkers(cfg.StartMarkers...))
	}
	if len(cfg.EndMarkers) > 0 {
		opts = append(opts, crawl.WithEndMarkers(cfg.EndMarkers...))
	}
	if len(cfg.NoiseWords) > 0 {
		opts = append(opts, crawl.WithNoiseWords(cfg.NoiseWords...))
	}
	if len(cfg.AttachPrefixes) > 0 {
		opts = append(opts, crawl.WithAttachPrefixes(cfg.AttachPrefixes...))
	}
	return opts
}

func extractorOptions(cfg *Config) []goquery.Option {
	var opts []goquery.Option
	if len(cfg.ChromeNames) > 0 {
		opts = append(opts, goquery.WithChromeSelectors(goquery.ChromeSelectors(cfg.ChromeNames...)...))
	}
	if len(cfg.ContentSelectors) > 0 {
		opts = append(opts, goquery.WithContentSelectors(cfg.ContentSelectors...))
	}
	return opts
}
