package crawl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/harvest"
	"golang.org/x/sync/errgroup"
)

// visit is the outcome of fetching and extracting one page.
type visit struct {
	url       harvest.CanonicalURL
	title     string
	fragments []harvest.Fragment
	links     []string
	fetchedAt time.Time
	err       error
}

// visitHandler consumes a finished visit on the coordinating goroutine.
type visitHandler func(ctx context.Context, v *visit)

// walk drains the frontier with a pool of workers until it is empty,
// limit pages have been dispatched (limit <= 0 means no limit) or ctx is
// canceled. Workers only fetch and extract; handle runs on the calling
// goroutine, so the frontier is only ever fed from one place.
//
// Pages already in flight when ctx is canceled are still handed to handle.
func (c *Crawler) walk(ctx context.Context, frontier *Frontier, limit int, handle visitHandler) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	workCh := make(chan harvest.CanonicalURL)
	resultCh := make(chan *visit, concurrency)

	var g errgroup.Group
	for range concurrency {
		g.Go(func() error {
			for u := range workCh {
				resultCh <- c.visit(ctx, u)
			}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(resultCh)
	}()

	dispatched := 0
	pending := 0
	var next *harvest.CanonicalURL

	pop := func() {
		if next != nil || (limit > 0 && dispatched >= limit) {
			return
		}
		if u, ok := frontier.Next(); ok {
			next = &u
		}
	}
	pop()

coordinatorLoop:
	for {
		if next == nil && pending == 0 {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if next != nil {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *next:
				dispatched++
				pending++
				next = nil
			case v := <-resultCh:
				pending--
				handle(ctx, v)
			}
		} else {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case v := <-resultCh:
				pending--
				handle(ctx, v)
			}
		}

		pop()
	}

	close(workCh)
	for v := range resultCh {
		handle(ctx, v)
	}

	return ctx.Err()
}

// visit fetches and extracts a single page, then observes the politeness
// pause before the worker takes the next URL.
func (c *Crawler) visit(ctx context.Context, u harvest.CanonicalURL) *visit {
	v := &visit{url: u}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			v.err = err
			return v
		}
	}

	html, err := c.Fetcher.Fetch(ctx, u.String())
	v.fetchedAt = time.Now().UTC()
	defer c.pause(ctx)
	if err != nil {
		v.err = err
		return v
	}

	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		v.err = err
		return v
	}

	v.title = extracted.Title
	v.fragments = extracted.Fragments
	v.links = extracted.Links
	return v
}

// pause sleeps for a random duration between Delay and MaxDelay.
func (c *Crawler) pause(ctx context.Context) {
	d := c.Delay
	if c.MaxDelay > c.Delay {
		d += rand.N(c.MaxDelay - c.Delay + 1)
	}
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
