// Package crawl provides site harvesting orchestration.
// It coordinates traversal, fetching, extraction, boilerplate detection,
// normalization and storage of the pages of one site.
package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/harvest"
)

// Frontier sizing for the Bloom prefilter.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate of the prefilter.
	frontierFalsePositiveRate = 0.01
)

// Crawler harvests a site in two passes. The sampling pass visits the
// first SampleSize pages and keeps their fragments in memory; boilerplate
// is detected over that sample; the full pass then writes the sampled
// pages and every remaining page with boilerplate filtered out.
type Crawler struct {
	Fetcher     harvest.Fetcher
	Extractor   harvest.Extractor
	Normalizer  *Normalizer
	Store       harvest.DocumentStore
	Ledger      harvest.VisitLedger
	RateLimiter harvest.DomainLimiter  // optional, paces concurrent workers
	Sitemaps    harvest.SitemapService // optional, seeds the frontier
	Filter      *harvest.URLFilter     // optional, narrows the scope

	SampleSize  int
	Threshold   float64
	MinCount    int
	Delay       time.Duration // politeness pause after every fetch
	MaxDelay    time.Duration // upper bound of the jittered pause
	Concurrency int
	MaxPages    int // 0 means no limit
}

// Result holds the outcome of a crawl run.
type Result struct {
	Scraped     int
	Failed      int
	Total       int // URLs processed, one ledger row each
	Discovered  int // unique in-scope URLs seen, processed or not
	Pending     int // discovered URLs left unprocessed by MaxPages or cancellation
	Sampled     int
	Boilerplate int

	// PersistErrors lists failed document and ledger writes.
	// A non-empty list means the output directory is incomplete.
	PersistErrors []error
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Phase     Phase
	Completed int
	URL       string
	Location  string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressPhase
	ProgressSampled
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// Phase is a state of the crawl run.
type Phase string

// Crawl run phases.
const (
	PhaseSampling  Phase = "sampling"
	PhaseFullCrawl Phase = "full-crawl"
	PhaseDone      Phase = "done"
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run harvests the site rooted at seedURL. Only links on the seed's host
// whose canonical form starts with the seed's canonical form are followed.
//
// Page failures are counted and never stop the run. A canceled context
// stops dispatching new pages; Run then returns the partial result
// together with the context's error.
func (c *Crawler) Run(ctx context.Context, seedURL string, progress ProgressFunc) (*Result, error) {
	scope, err := harvest.NewScope(seedURL)
	if err != nil {
		return nil, err
	}
	scope.Filter = c.Filter

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Seed(scope.Base)

	r := &run{
		crawler:  c,
		scope:    scope,
		frontier: frontier,
		progress: progress,
		cache:    make(map[harvest.CanonicalURL]*visit),
		result:   &Result{},
	}

	r.emit(ProgressEvent{Type: ProgressStarted, URL: scope.Base.String()})

	if c.Sitemaps != nil {
		r.seedFromSitemap(ctx)
	}

	// SAMPLING
	r.emit(ProgressEvent{Type: ProgressPhase, Phase: PhaseSampling})
	sampleLimit := c.sampleSize()
	if c.MaxPages > 0 {
		sampleLimit = min(sampleLimit, c.MaxPages)
	}
	if err := c.walk(ctx, frontier, sampleLimit, r.sample); err != nil {
		return r.finish(), err
	}

	samples := make([][]harvest.Fragment, 0, len(r.order))
	for _, u := range r.order {
		samples = append(samples, r.cache[u].fragments)
	}
	r.boilerplate = DetectBoilerplate(samples, c.threshold(), c.minCount())
	r.result.Sampled = len(samples)
	r.result.Boilerplate = r.boilerplate.Len()

	// FULL_CRAWL
	r.emit(ProgressEvent{Type: ProgressPhase, Phase: PhaseFullCrawl})
	for _, u := range r.order {
		r.persist(ctx, r.cache[u])
	}
	r.cache, r.order = nil, nil

	limit := 0
	if c.MaxPages > 0 {
		limit = c.MaxPages - r.result.Total
		if limit <= 0 {
			return r.finish(), nil
		}
	}
	if err := c.walk(ctx, frontier, limit, r.page); err != nil {
		return r.finish(), err
	}

	return r.finish(), nil
}

func (c *Crawler) sampleSize() int {
	if c.SampleSize <= 0 {
		return DefaultSampleSize
	}
	return c.SampleSize
}

func (c *Crawler) threshold() float64 {
	if c.Threshold <= 0 {
		return DefaultThreshold
	}
	return c.Threshold
}

func (c *Crawler) minCount() int {
	if c.MinCount <= 0 {
		return DefaultMinCount
	}
	return c.MinCount
}

// run holds the state of one Crawler.Run call. It is only touched by the
// coordinating goroutine, so it needs no locking.
type run struct {
	crawler     *Crawler
	scope       *harvest.Scope
	frontier    *Frontier
	progress    ProgressFunc
	boilerplate harvest.BoilerplateSet

	// cache holds the sampled pages until boilerplate is known;
	// order keeps them in visit order.
	cache map[harvest.CanonicalURL]*visit
	order []harvest.CanonicalURL

	result *Result
}

func (r *run) emit(event ProgressEvent) {
	if r.progress != nil {
		r.progress(event)
	}
}

func (r *run) seedFromSitemap(ctx context.Context) {
	urls, err := r.crawler.Sitemaps.DiscoverURLs(ctx, r.scope.Base.String())
	if err != nil {
		// Sitemaps only add seeds; link traversal still covers the site.
		return
	}
	for _, raw := range urls {
		if u, ok := r.scope.Canonicalize(raw, r.scope.Base.String()); ok {
			r.frontier.Offer(u)
		}
	}
}

// sample handles a page visited during the sampling pass.
func (r *run) sample(ctx context.Context, v *visit) {
	r.processed(ctx, v)
	if v.err != nil {
		r.fail(v.url, v.err)
		return
	}
	r.cache[v.url] = v
	r.order = append(r.order, v.url)
	r.emit(ProgressEvent{Type: ProgressSampled, Completed: r.result.Total, URL: v.url.String()})
}

// page handles a page visited during the full pass.
func (r *run) page(ctx context.Context, v *visit) {
	r.processed(ctx, v)
	if v.err != nil {
		r.fail(v.url, v.err)
		return
	}
	r.persist(ctx, v)
}

// processed records the visit in the ledger and offers its links.
func (r *run) processed(ctx context.Context, v *visit) {
	r.result.Total++
	if err := r.crawler.Ledger.Record(ctx, v.url.String()); err != nil {
		r.result.PersistErrors = append(r.result.PersistErrors, fmt.Errorf("record %s: %w", v.url, err))
	}
	origin := v.url.String()
	for _, raw := range v.links {
		if u, ok := r.scope.Canonicalize(raw, origin); ok {
			r.frontier.Offer(u)
		}
	}
}

func (r *run) fail(u harvest.CanonicalURL, err error) {
	r.result.Failed++
	r.emit(ProgressEvent{Type: ProgressFailed, Completed: r.result.Total, URL: u.String(), Error: err})
}

// persist normalizes a visited page and saves it.
func (r *run) persist(ctx context.Context, v *visit) {
	content := r.crawler.Normalizer.Normalize(v.fragments, r.boilerplate)
	doc := &harvest.Document{
		URL:         v.url.String(),
		Title:       v.title,
		Content:     content,
		ContentHash: ComputeHash(content),
		FetchedAt:   v.fetchedAt,
	}

	location, err := r.crawler.Store.SaveDocument(ctx, doc)
	if err != nil {
		err = fmt.Errorf("save %s: %w", v.url, err)
		r.result.PersistErrors = append(r.result.PersistErrors, err)
		r.fail(v.url, err)
		return
	}

	r.result.Scraped++
	r.emit(ProgressEvent{Type: ProgressCompleted, Completed: r.result.Total, URL: v.url.String(), Location: location})
}

func (r *run) finish() *Result {
	r.result.Discovered = r.frontier.Discovered()
	r.result.Pending = r.frontier.Len()
	r.emit(ProgressEvent{Type: ProgressFinished, Phase: PhaseDone, Completed: r.result.Total})
	return r.result
}
