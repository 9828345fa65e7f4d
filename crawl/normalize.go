package crawl

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/harvest"
)

// DefaultStartMarkers are checked in order; content before the first one
// found is dropped.
var DefaultStartMarkers = []string{"Register", "Welcome", "Products", "Home >"}

// DefaultEndMarkers are checked in order; content after the first one
// found is dropped. The marker itself is kept.
var DefaultEndMarkers = []string{"Copyright", "All rights reserved", "Privacy Policy", "Terms of Service"}

// DefaultNoisePatterns match whole fragments, case-insensitively.
var DefaultNoisePatterns = []string{
	`\d+`,
	`Home|About|Contact|Products|Services|Blog|News`,
	`Login|Register|Sign In|Sign Up`,
	`Cart|Checkout|Account|Profile`,
	`[\s<>«»‹›←→↑↓⟵⟶⇐⇒⇦⇨▲▼◀▶►◄|/\\\[\](){}]+`,
}

// DefaultAttachPatterns match tokens that should stay attached to the line
// above them.
var DefaultAttachPatterns = []string{`\$\d+\.\d{2}`}

const minFragmentLen = 3

var manyNewlines = regexp.MustCompile(`\n{3,}`)

// Normalizer turns a page's fragments into cleaned document text.
type Normalizer struct {
	StartMarkers []string
	EndMarkers   []string

	// Noise patterns are anchored and case-insensitive.
	Noise []*regexp.Regexp

	// Attach patterns match "\n\n" followed by a captured token.
	Attach []*regexp.Regexp
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer) error

// WithStartMarkers replaces the start markers.
func WithStartMarkers(markers ...string) NormalizerOption {
	return func(n *Normalizer) error {
		n.StartMarkers = markers
		return nil
	}
}

// WithEndMarkers replaces the end markers. A site's exact copyright notice
// is usually the best first entry.
func WithEndMarkers(markers ...string) NormalizerOption {
	return func(n *Normalizer) error {
		n.EndMarkers = markers
		return nil
	}
}

// WithNoiseWords adds literal words that are dropped when a fragment
// consists of nothing else.
func WithNoiseWords(words ...string) NormalizerOption {
	return func(n *Normalizer) error {
		if len(words) == 0 {
			return nil
		}
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		re, err := wholeFold(strings.Join(quoted, "|"))
		if err != nil {
			return err
		}
		n.Noise = append(n.Noise, re)
		return nil
	}
}

// WithAttachPrefixes adds literal prefixes that, like prices, lose the
// blank line above them.
func WithAttachPrefixes(prefixes ...string) NormalizerOption {
	return func(n *Normalizer) error {
		for _, p := range prefixes {
			n.Attach = append(n.Attach, attachPattern(regexp.QuoteMeta(p)))
		}
		return nil
	}
}

// NewNormalizer returns a Normalizer with the default markers and filters.
func NewNormalizer(opts ...NormalizerOption) (*Normalizer, error) {
	n := &Normalizer{
		StartMarkers: DefaultStartMarkers,
		EndMarkers:   DefaultEndMarkers,
	}
	for _, p := range DefaultNoisePatterns {
		re, err := wholeFold(p)
		if err != nil {
			return nil, err
		}
		n.Noise = append(n.Noise, re)
	}
	for _, p := range DefaultAttachPatterns {
		n.Attach = append(n.Attach, attachPattern(p))
	}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func wholeFold(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`(?i)^(?:` + pattern + `)$`)
	if err != nil {
		return nil, harvest.Errorf(harvest.EINVALID, "invalid pattern %q: %v", pattern, err)
	}
	return re, nil
}

// Normalize filters fragments and assembles the document text:
//
//  1. drop boilerplate fragments
//  2. drop fragments shorter than 3 characters
//  3. drop fragments that are pure noise (numbers, nav words, glyphs)
//  4. join with a blank line between fragments
//  5. cut everything before the first start marker found
//  6. cut everything after the first end marker found
//  7. collapse runs of 3+ newlines to 2
//  8. remove the blank line before attached tokens such as prices
//
// A result that steps 2 and 3 would drop as a single fragment is
// returned as "", so normalizing the output again changes nothing.
//
// A nil boilerplate set filters nothing in step 1.
func (n *Normalizer) Normalize(fragments []harvest.Fragment, boilerplate harvest.BoilerplateSet) string {
	kept := make([]string, 0, len(fragments))
	for _, f := range fragments {
		text := strings.TrimSpace(f.Text)
		if boilerplate.Contains(text) {
			continue
		}
		if n.drops(text) {
			continue
		}
		kept = append(kept, text)
	}

	page := strings.Join(kept, "\n\n")
	page = n.cutStart(page)
	page = n.cutEnd(page)
	page = manyNewlines.ReplaceAllString(page, "\n\n")
	for _, re := range n.Attach {
		page = re.ReplaceAllString(page, "\n${1}")
	}
	// A cut can leave only a marker that is itself noise, such as "Register".
	if n.drops(page) {
		return ""
	}
	return page
}

// drops reports whether a trimmed fragment is too short or pure noise.
func (n *Normalizer) drops(text string) bool {
	return utf8.RuneCountInString(text) < minFragmentLen || n.isNoise(text)
}

func (n *Normalizer) isNoise(text string) bool {
	for _, re := range n.Noise {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func (n *Normalizer) cutStart(page string) string {
	for _, m := range n.StartMarkers {
		if m == "" {
			continue
		}
		if i := strings.Index(page, m); i != -1 {
			return page[i:]
		}
	}
	return page
}

func (n *Normalizer) cutEnd(page string) string {
	for _, m := range n.EndMarkers {
		if m == "" {
			continue
		}
		if i := strings.Index(page, m); i != -1 {
			return page[:i+len(m)]
		}
	}
	return page
}

// attachPattern matches a blank line followed by the token, capturing the token.
func attachPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`\n\n(` + token + `)`)
}
