package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractLinks returns the href of every anchor in document order.
// Hrefs are neither resolved nor scoped; non-HTTP links are skipped.
func extractLinks(doc *goquery.Document) []string {
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || isNonHTTPLink(href) {
			return
		}
		links = append(links, href)
	})
	return links
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
