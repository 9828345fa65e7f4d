package main

import (
	"fmt"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/fs"
	hslog "github.com/fwojciec/harvest/slog"
	"github.com/fwojciec/harvest/sqlite"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	docs, err := fs.ReadDocuments(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	index := sqlite.NewDocumentIndex(db)

	if c.Replace {
		n, err := index.DeleteDocumentsByCategory(deps.Ctx, c.Category)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Removed %d documents from category %q\n", n, c.Category)
	}

	batch := make([]*harvest.IndexDocument, 0, len(docs))
	for _, doc := range docs {
		batch = append(batch, &harvest.IndexDocument{
			Text:      doc.Content,
			SourceURL: doc.URL,
			Category:  c.Category,
		})
	}

	if err := hslog.NewLoggingIndexer(index, deps.Logger).AddDocuments(deps.Ctx, batch); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d documents from %s into category %q\n", len(batch), c.Dir, c.Category)

	stored, err := index.FindDocuments(deps.Ctx, harvest.IndexFilter{Category: &c.Category})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Category %q now holds %d documents\n", c.Category, len(stored))
	return nil
}
