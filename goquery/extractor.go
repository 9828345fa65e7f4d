// Package goquery implements content extraction with the goquery library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/harvest"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ harvest.Extractor = (*Extractor)(nil)

// DefaultChromeNames are class and id names of site chrome. Every element
// with one of these as its class or id is removed before extraction.
var DefaultChromeNames = []string{
	"navbar",
	"nav-menu",
	"footer",
	"sidebar",
	"breadcrumb",
	"pagination",
	"social-links",
	"contact-info",
	"dropdown-menu",
}

// DefaultContentSelectors are tried in order; the first match is the
// main content container.
var DefaultContentSelectors = []string{
	"main",
	".main-content",
	".content",
	".page-content",
	".article",
	".post",
	".product-info",
	"#content",
}

// chromeTags are always removed.
var chromeTags = []string{"nav", "header", "footer"}

// skipTags never contribute text.
var skipTags = map[string]bool{
	"script": true,
	"style":  true,
	"head":   true,
	"title":  true,
	"meta":   true,
}

// Extractor turns raw HTML into text fragments and raw links.
type Extractor struct {
	chrome  []string
	content []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithChromeSelectors replaces the selectors of elements removed as site
// chrome. The nav, header and footer elements are always removed.
func WithChromeSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.chrome = append(append([]string{}, chromeTags...), selectors...)
	}
}

// WithContentSelectors replaces the ordered list of content container selectors.
func WithContentSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.content = selectors
	}
}

// NewExtractor creates an Extractor with the default selectors.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		chrome:  ChromeSelectors(DefaultChromeNames...),
		content: DefaultContentSelectors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ChromeSelectors returns the chrome tags plus a class and an id
// selector for each name.
func ChromeSelectors(names ...string) []string {
	selectors := append([]string{}, chromeTags...)
	for _, name := range names {
		selectors = append(selectors, "."+name, "#"+name)
	}
	return selectors
}

// Extract parses html and returns its title, the text fragments of its
// main content in document order and the href of every anchor.
func (e *Extractor) Extract(rawHTML string) (*harvest.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, harvest.Errorf(harvest.EPARSE, "empty document")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, harvest.Errorf(harvest.EPARSE, "failed to parse HTML: %v", err)
	}

	result := &harvest.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Links: extractLinks(doc),
	}

	for _, selector := range e.chrome {
		doc.Find(selector).Remove()
	}

	for _, node := range e.container(doc).Nodes {
		result.Fragments = appendFragments(result.Fragments, node)
	}

	return result, nil
}

// container returns the first matching content container, or the body
// with non-content elements removed.
func (e *Extractor) container(doc *goquery.Document) *goquery.Selection {
	for _, selector := range e.content {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	body := doc.Find("body")
	body.Find("script, style, head, title, meta").Remove()
	return body
}

// appendFragments walks n in document order and appends every non-empty
// text node outside skipTags.
func appendFragments(fragments []harvest.Fragment, n *html.Node) []harvest.Fragment {
	if n.Type == html.ElementNode && skipTags[n.Data] {
		return fragments
	}
	if n.Type == html.TextNode {
		text := strings.TrimSpace(n.Data)
		if text == "" || n.Parent == nil || n.Parent.Type != html.ElementNode {
			return fragments
		}
		return append(fragments, harvest.Fragment{Text: text, Tag: n.Parent.Data})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fragments = appendFragments(fragments, c)
	}
	return fragments
}
