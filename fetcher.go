package harvest

import "context"

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch issues a single GET and returns the response body.
	// Transport errors, timeouts and non-success statuses are returned
	// as errors with code EFETCH. The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
