package harvest

import (
	"context"
	"time"
)

// Document is the cleaned output for one crawled page.
type Document struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}

// DocumentStore persists documents.
type DocumentStore interface {
	// SaveDocument writes the document and returns where it was stored.
	SaveDocument(ctx context.Context, doc *Document) (location string, err error)
}

// VisitLedger is an append-only record of every URL that was processed,
// whether or not its fetch succeeded.
type VisitLedger interface {
	// Record appends url to the ledger.
	Record(ctx context.Context, url string) error
}
