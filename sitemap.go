package harvest

import "context"

// SitemapService discovers URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs fetches /sitemap.xml for the site of baseURL and
	// returns the page URLs it lists. Sitemap indexes are resolved
	// recursively. Returns an empty slice when the site has no sitemap.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
