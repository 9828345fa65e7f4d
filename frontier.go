package harvest

// URLFrontier manages the crawl work queue and the visited set.
// A URL is handed out by Next at most once.
type URLFrontier interface {
	// Seed adds the starting URL.
	Seed(u CanonicalURL)

	// Offer enqueues u unless it is already pending or visited.
	// Returns false if the URL was rejected as a duplicate.
	Offer(u CanonicalURL) bool

	// Next removes one pending URL, marks it visited and returns it.
	// Returns false if no URL is pending.
	Next() (CanonicalURL, bool)

	// Len returns the number of pending URLs.
	Len() int
}
