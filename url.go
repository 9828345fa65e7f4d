package harvest

import (
	"net/url"
	"regexp"
	"strings"
)

// CanonicalURL is a link reduced to scheme, host and path.
// Two links with equal CanonicalURL values are the same crawl target.
type CanonicalURL struct {
	Scheme string
	Host   string
	Path   string
}

// String renders the canonical form, e.g. "https://example.com/docs/".
func (u CanonicalURL) String() string {
	if u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + u.Path
}

// IsZero reports whether u is the zero value.
func (u CanonicalURL) IsZero() bool {
	return u == CanonicalURL{}
}

// ParseCanonical canonicalizes an absolute http or https URL.
// Query and fragment are dropped; an empty path becomes "/".
func ParseCanonical(raw string) (CanonicalURL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return CanonicalURL{}, Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}
	c, ok := canonical(u)
	if !ok {
		return CanonicalURL{}, Errorf(EINVALID, "not an absolute http(s) URL: %q", raw)
	}
	return c, nil
}

func canonical(u *url.URL) (CanonicalURL, bool) {
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return CanonicalURL{}, false
	}
	if u.Host == "" {
		return CanonicalURL{}, false
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return CanonicalURL{
		Scheme: scheme,
		Host:   canonicalHost(scheme, u),
		Path:   path,
	}, true
}

// canonicalHost lowercases the host and drops the scheme's default port.
func canonicalHost(scheme string, u *url.URL) string {
	host := strings.TrimSuffix(strings.ToLower(u.Host), ":")
	if port := u.Port(); (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		host = strings.TrimSuffix(host, ":"+port)
	}
	return host
}

// Scope decides which discovered links belong to the crawl.
// A link is in scope when it resolves to the same host as Base and its
// canonical form starts with the canonical form of Base.
type Scope struct {
	Base   CanonicalURL
	Filter *URLFilter
}

// NewScope returns a Scope rooted at the given base URL.
func NewScope(baseURL string) (*Scope, error) {
	base, err := ParseCanonical(baseURL)
	if err != nil {
		return nil, err
	}
	return &Scope{Base: base}, nil
}

// Canonicalize resolves rawLink against origin (the page it was found on)
// and returns its canonical form. The bool result is false when the link
// cannot be resolved or falls outside the scope.
func (s *Scope) Canonicalize(rawLink, origin string) (CanonicalURL, bool) {
	base, err := url.Parse(origin)
	if err != nil {
		return CanonicalURL{}, false
	}
	ref, err := url.Parse(strings.TrimSpace(rawLink))
	if err != nil {
		return CanonicalURL{}, false
	}
	c, ok := canonical(base.ResolveReference(ref))
	if !ok {
		return CanonicalURL{}, false
	}
	if !s.Contains(c) {
		return CanonicalURL{}, false
	}
	return c, true
}

// Contains reports whether an already canonical URL is in scope.
func (s *Scope) Contains(u CanonicalURL) bool {
	if u.Host != s.Base.Host {
		return false
	}
	if !strings.HasPrefix(u.String(), s.Base.String()) {
		return false
	}
	return s.Filter.Match(u.String())
}

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// NewURLFilter compiles include and exclude patterns into a URLFilter.
// It returns nil when both lists are empty.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	f := &URLFilter{}
	for _, p := range include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid include pattern %q: %v", p, err)
		}
		f.Include = append(f.Include, re)
	}
	for _, p := range exclude {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid exclude pattern %q: %v", p, err)
		}
		f.Exclude = append(f.Exclude, re)
	}
	return f, nil
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
