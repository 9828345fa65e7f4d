package crawl

import (
	"sync"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/bloom"
)

// Compile-time interface verification.
var _ harvest.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with a visited set.
// Every URL ever offered is remembered, so a URL is handed out by Next at
// most once even when pages link to themselves or form cycles.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	known map[harvest.CanonicalURL]bool // true once visited
	queue []harvest.CanonicalURL
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for the Bloom prefilter.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		known: make(map[harvest.CanonicalURL]bool),
	}
}

// Seed adds the starting URL.
func (f *Frontier) Seed(u harvest.CanonicalURL) {
	f.Offer(u)
}

// Offer enqueues u unless it is already pending or visited.
// Returns false if the URL was rejected as a duplicate.
func (f *Frontier) Offer(u harvest.CanonicalURL) bool {
	if u.IsZero() {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// A negative Bloom answer is exact, so the map is only consulted
	// for URLs that may have been offered before.
	if f.seen.TestAndAdd(u) {
		if _, ok := f.known[u]; ok {
			return false
		}
	}
	f.known[u] = false
	f.queue = append(f.queue, u)
	return true
}

// Next removes the oldest pending URL, marks it visited and returns it.
// The bool result is false if the frontier is empty.
func (f *Frontier) Next() (harvest.CanonicalURL, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return harvest.CanonicalURL{}, false
	}
	u := f.queue[0]
	f.queue[0] = harvest.CanonicalURL{}
	f.queue = f.queue[1:]
	f.known[u] = true
	return u, true
}

// Len returns the number of pending URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Discovered returns the number of unique URLs ever accepted by Offer.
func (f *Frontier) Discovered() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.known)
}
