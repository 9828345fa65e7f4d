package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var _ harvest.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of harvest.IndexService.
type IndexService struct {
	AddDocumentsFn              func(ctx context.Context, docs []*harvest.IndexDocument) error
	FindDocumentsFn             func(ctx context.Context, filter harvest.IndexFilter) ([]*harvest.IndexDocument, error)
	DeleteDocumentsByCategoryFn func(ctx context.Context, category string) (int, error)
}

func (s *IndexService) AddDocuments(ctx context.Context, docs []*harvest.IndexDocument) error {
	return s.AddDocumentsFn(ctx, docs)
}

func (s *IndexService) FindDocuments(ctx context.Context, filter harvest.IndexFilter) ([]*harvest.IndexDocument, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *IndexService) DeleteDocumentsByCategory(ctx context.Context, category string) (int, error) {
	return s.DeleteDocumentsByCategoryFn(ctx, category)
}
