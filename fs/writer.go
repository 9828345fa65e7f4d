package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/harvest"
)

// Ensure Writer implements harvest.DocumentStore at compile time.
var _ harvest.DocumentStore = (*Writer)(nil)

// Writer writes documents as markdown files into a flat directory.
// Each file starts with a "# <URL>" heading followed by the content.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// FormatDocument renders the file content of a document.
func FormatDocument(doc *harvest.Document) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(doc.URL)
	b.WriteString("\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// SaveDocument writes doc to the file named by FileName and returns the
// file path. Saving the same URL again overwrites its file.
func (w *Writer) SaveDocument(ctx context.Context, doc *harvest.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	name, err := FileName(doc.URL)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", harvest.Errorf(harvest.EPERSIST, "create output directory: %v", err)
	}

	path := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(path, []byte(FormatDocument(doc)), 0644); err != nil {
		return "", harvest.Errorf(harvest.EPERSIST, "write %s: %v", name, err)
	}
	return path, nil
}

// FileName returns the file a document URL is written to. URLs whose
// slug is unambiguous get <slug>.md. Any other URL gets a hash of the URL
// appended, so the name depends on the URL alone and never on save order.
func FileName(rawURL string) (string, error) {
	name, err := Slug(rawURL)
	if err != nil {
		return "", err
	}
	if !plainSlug(rawURL) {
		name = disambiguate(name, rawURL)
	}
	return name, nil
}
