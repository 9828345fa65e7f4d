package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/harvest"
)

// ReadDocuments loads every harvested document in dir, sorted by file name.
// Markdown files without a "# <URL>" heading are skipped.
func ReadDocuments(dir string) ([]*harvest.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, harvest.Errorf(harvest.ENOTFOUND, "directory not found: %s", dir)
		}
		return nil, harvest.Errorf(harvest.EINVALID, "read directory %s: %v", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	docs := make([]*harvest.Document, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, harvest.Errorf(harvest.EINVALID, "read %s: %v", name, err)
		}
		if doc, ok := ParseDocument(string(data)); ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// ParseDocument parses file content written by FormatDocument.
func ParseDocument(data string) (*harvest.Document, bool) {
	if !strings.HasPrefix(data, "# ") {
		return nil, false
	}
	heading, content, _ := strings.Cut(data[2:], "\n")
	url := strings.TrimSpace(heading)
	if url == "" {
		return nil, false
	}
	return &harvest.Document{
		URL:     url,
		Content: strings.TrimPrefix(content, "\n"),
	}, true
}
