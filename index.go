package harvest

import (
	"context"
	"time"
)

// IndexDocument is a (text, metadata) pair handed to a retrieval store.
type IndexDocument struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	SourceURL   string    `json:"sourceUrl"`
	Category    string    `json:"category"`
	ContentHash string    `json:"contentHash"`
	IndexedAt   time.Time `json:"indexedAt"`
}

// Validate returns an error if the index document contains invalid fields.
func (d *IndexDocument) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "index document source URL required")
	}
	if d.Category == "" {
		return Errorf(EINVALID, "index document category required")
	}
	return nil
}

// Indexer accepts harvested documents for retrieval.
type Indexer interface {
	// AddDocuments stores the documents. Documents with the same source URL
	// and category replace earlier versions.
	AddDocuments(ctx context.Context, docs []*IndexDocument) error
}

// IndexFilter represents a filter for FindDocuments.
type IndexFilter struct {
	Category  *string `json:"category"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// IndexService represents a service for managing indexed documents.
type IndexService interface {
	Indexer

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter IndexFilter) ([]*IndexDocument, error)

	// DeleteDocumentsByCategory removes all documents with the category
	// and returns how many were removed.
	DeleteDocumentsByCategory(ctx context.Context, category string) (int, error)
}
