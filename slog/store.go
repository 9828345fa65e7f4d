package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/harvest"
)

// Ensure LoggingStore implements harvest.DocumentStore.
var _ harvest.DocumentStore = (*LoggingStore)(nil)

// LoggingStore wraps a DocumentStore with logging.
type LoggingStore struct {
	next   harvest.DocumentStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next harvest.DocumentStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// SaveDocument delegates to the wrapped store and logs the outcome.
func (s *LoggingStore) SaveDocument(ctx context.Context, doc *harvest.Document) (location string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, levelFor(err, slog.LevelError), "save document",
			"url", doc.URL,
			"path", location,
			"bytes", len(doc.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveDocument(ctx, doc)
}

// Ensure LoggingLedger implements harvest.VisitLedger.
var _ harvest.VisitLedger = (*LoggingLedger)(nil)

// LoggingLedger wraps a VisitLedger with logging.
type LoggingLedger struct {
	next   harvest.VisitLedger
	logger *slog.Logger
}

// NewLoggingLedger creates a new LoggingLedger.
func NewLoggingLedger(next harvest.VisitLedger, logger *slog.Logger) *LoggingLedger {
	return &LoggingLedger{next: next, logger: logger}
}

// Record delegates to the wrapped ledger and logs the outcome.
func (l *LoggingLedger) Record(ctx context.Context, url string) (err error) {
	defer func() {
		l.logger.Log(ctx, levelFor(err, slog.LevelError), "record visit",
			"url", url,
			"err", err,
		)
	}()
	return l.next.Record(ctx, url)
}
