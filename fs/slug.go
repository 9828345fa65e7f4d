// Package fs provides file-based persistence of harvested documents.
package fs

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/harvest"
)

var (
	unsafeChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	underscores = regexp.MustCompile(`_+`)
)

// Slug converts a page URL to a file name.
// Example: https://example.com/docs/api?v=2 → example.com_docs_api.md
//
// Query and fragment are ignored, so URLs with the same canonical path
// share a slug. Distinct paths may still collide (/a/b and /a_b);
// FileName resolves such collisions.
func Slug(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", harvest.Errorf(harvest.EINVALID, "invalid document URL: %q", rawURL)
	}

	name := u.Host + u.EscapedPath()
	name = unsafeChars.ReplaceAllString(name, "_")
	name = underscores.ReplaceAllString(name, "_")
	name = strings.TrimRight(name, "._")
	return name + ".md", nil
}

// plainSlug reports whether no other URL on the same host can share the
// slug of rawURL. That holds when the only character Slug rewrites is the
// single "/" between path segments and nothing is trimmed: no "_" or other
// unsafe character, no empty segment, no trailing "/" or "." (the root
// path excepted).
func plainSlug(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if strings.Contains(u.Host, "_") || strings.HasSuffix(u.Host, ".") {
		return false
	}
	path := u.EscapedPath()
	if path == "" || path == "/" {
		return true
	}
	if strings.Contains(path, "_") || strings.Contains(path, "//") {
		return false
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, ".") {
		return false
	}
	return !unsafeChars.MatchString(strings.ReplaceAll(path, "/", ""))
}

// disambiguate inserts a short hash of rawURL before the extension.
func disambiguate(slug, rawURL string) string {
	return fmt.Sprintf("%s_%08x.md", strings.TrimSuffix(slug, ".md"), uint32(xxhash.Sum64String(rawURL)))
}
