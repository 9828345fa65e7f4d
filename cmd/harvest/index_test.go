package main_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/fs"
	"github.com/fwojciec/harvest/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHarvest(t *testing.T, dir string, docs ...*harvest.Document) {
	t.Helper()

	w := fs.NewWriter(dir)
	for _, doc := range docs {
		_, err := w.SaveDocument(context.Background(), doc)
		require.NoError(t, err)
	}
}

func findIndexed(t *testing.T, dbPath, category string) []*harvest.IndexDocument {
	t.Helper()

	db := sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })

	docs, err := sqlite.NewDocumentIndex(db).FindDocuments(context.Background(), harvest.IndexFilter{Category: &category})
	require.NoError(t, err)
	return docs
}

func TestIndexCmd(t *testing.T) {
	t.Parallel()

	t.Run("indexes harvested documents under a category", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		dbPath := filepath.Join(t.TempDir(), "harvest.db")
		writeHarvest(t, dir,
			&harvest.Document{URL: "https://example.com/a", Content: "Alpha"},
			&harvest.Document{URL: "https://example.com/b", Content: "Bravo"},
		)

		stdout, _, err := run(t, "index", dir, "--category", "docs", "--db", dbPath)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Indexed 2 documents")
		assert.Contains(t, stdout, `Category "docs" now holds 2 documents`)

		docs := findIndexed(t, dbPath, "docs")
		require.Len(t, docs, 2)
		assert.Equal(t, "https://example.com/a", docs[0].SourceURL)
		assert.Equal(t, "Alpha", docs[0].Text)
		assert.Equal(t, "docs", docs[0].Category)
	})

	t.Run("replaces a category", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "harvest.db")

		first := t.TempDir()
		writeHarvest(t, first, &harvest.Document{URL: "https://example.com/old", Content: "Old"})
		_, _, err := run(t, "index", first, "--category", "docs", "--db", dbPath)
		require.NoError(t, err)

		second := t.TempDir()
		writeHarvest(t, second, &harvest.Document{URL: "https://example.com/new", Content: "New"})
		stdout, _, err := run(t, "index", second, "--category", "docs", "--db", dbPath, "--replace")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Removed 1 documents")
		assert.Contains(t, stdout, `Category "docs" now holds 1 documents`)

		docs := findIndexed(t, dbPath, "docs")
		require.Len(t, docs, 1)
		assert.Equal(t, "https://example.com/new", docs[0].SourceURL)
	})

	t.Run("requires a category", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "index", t.TempDir())

		require.Error(t, err)
	})
}
