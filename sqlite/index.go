package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/harvest"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ harvest.IndexService = (*DocumentIndex)(nil)

// DocumentIndex implements harvest.IndexService using SQLite.
type DocumentIndex struct {
	db *DB
}

// NewDocumentIndex creates a new DocumentIndex.
func NewDocumentIndex(db *DB) *DocumentIndex {
	return &DocumentIndex{db: db}
}

// AddDocuments stores docs in a single transaction. A document whose
// source URL and category are already indexed replaces the stored text
// and keeps its ID. ID, ContentHash and IndexedAt are set on every doc.
func (s *DocumentIndex) AddDocuments(ctx context.Context, docs []*harvest.IndexDocument) error {
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Truncate(time.Second)
	for _, doc := range docs {
		if doc.ID == "" {
			doc.ID = uuid.New().String()
		}
		doc.ContentHash = hashContent(doc.Text)
		doc.IndexedAt = now

		err := tx.QueryRowContext(ctx, `
			INSERT INTO index_documents (id, source_url, category, text, content_hash, indexed_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (source_url, category) DO UPDATE SET
				text = excluded.text,
				content_hash = excluded.content_hash,
				indexed_at = excluded.indexed_at
			RETURNING id
		`, doc.ID, doc.SourceURL, doc.Category, doc.Text, doc.ContentHash,
			doc.IndexedAt.Format(time.RFC3339)).Scan(&doc.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindDocuments retrieves documents matching the filter, ordered by source URL.
func (s *DocumentIndex) FindDocuments(ctx context.Context, filter harvest.IndexFilter) ([]*harvest.IndexDocument, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, category, text, content_hash, indexed_at FROM index_documents WHERE 1=1")

	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY source_url ASC, category ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*harvest.IndexDocument
	for rows.Next() {
		doc, err := scanIndexDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func scanIndexDocument(rows *sql.Rows) (*harvest.IndexDocument, error) {
	var doc harvest.IndexDocument
	var indexedAt string

	if err := rows.Scan(&doc.ID, &doc.SourceURL, &doc.Category, &doc.Text, &doc.ContentHash, &indexedAt); err != nil {
		return nil, err
	}

	var err error
	doc.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at")
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocumentsByCategory removes all documents with the category.
func (s *DocumentIndex) DeleteDocumentsByCategory(ctx context.Context, category string) (int, error) {
	if category == "" {
		return 0, harvest.Errorf(harvest.EINVALID, "category required")
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM index_documents WHERE category = ?", category)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
