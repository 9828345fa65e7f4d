package harvest

// Fragment is one text node extracted from a page, in document order.
type Fragment struct {
	// Text is the trimmed text content.
	Text string

	// Tag is the name of the element enclosing the text node.
	Tag string
}

// ExtractResult holds the extracted content of an HTML page.
type ExtractResult struct {
	// Title is the page title from the <title> element.
	Title string

	// Fragments are the text fragments of the main content, chrome removed.
	Fragments []Fragment

	// Links are the raw href values of every anchor on the page,
	// in document order. They are not resolved or scoped.
	Links []string
}

// Extractor extracts content fragments and links from HTML pages.
type Extractor interface {
	// Extract parses raw HTML. Unparseable input returns an EPARSE error.
	Extract(html string) (*ExtractResult, error)
}
