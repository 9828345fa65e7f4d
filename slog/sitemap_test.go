package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/mock"
	hslog "github.com/fwojciec/harvest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		svc := hslog.NewLoggingSitemapService(inner, newLogger(&buf, slog.LevelDebug))
		urls, err := svc.DiscoverURLs(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := hslog.NewLoggingSitemapService(inner, newLogger(&buf, slog.LevelDebug))
		_, err := svc.DiscoverURLs(context.Background(), "https://example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}

func TestLoggingIndexer_AddDocuments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.IndexService{
		AddDocumentsFn: func(_ context.Context, docs []*harvest.IndexDocument) error {
			return nil
		},
	}

	indexer := hslog.NewLoggingIndexer(inner, newLogger(&buf, slog.LevelDebug))
	err := indexer.AddDocuments(context.Background(), make([]*harvest.IndexDocument, 3))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "count=3")
}
