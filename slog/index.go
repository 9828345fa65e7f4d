package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/harvest"
)

// Ensure LoggingIndexer implements harvest.Indexer.
var _ harvest.Indexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps an Indexer with logging.
type LoggingIndexer struct {
	next   harvest.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next harvest.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// AddDocuments delegates to the wrapped indexer and logs the batch size.
func (i *LoggingIndexer) AddDocuments(ctx context.Context, docs []*harvest.IndexDocument) (err error) {
	defer func(begin time.Time) {
		i.logger.Log(ctx, levelFor(err, slog.LevelError), "add documents",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.AddDocuments(ctx, docs)
}
