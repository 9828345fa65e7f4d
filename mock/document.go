package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var _ harvest.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of harvest.DocumentStore.
type DocumentStore struct {
	SaveDocumentFn func(ctx context.Context, doc *harvest.Document) (string, error)
}

func (s *DocumentStore) SaveDocument(ctx context.Context, doc *harvest.Document) (string, error) {
	return s.SaveDocumentFn(ctx, doc)
}

var _ harvest.VisitLedger = (*VisitLedger)(nil)

// VisitLedger is a mock implementation of harvest.VisitLedger.
type VisitLedger struct {
	RecordFn func(ctx context.Context, url string) error
}

func (l *VisitLedger) Record(ctx context.Context, url string) error {
	return l.RecordFn(ctx, url)
}
