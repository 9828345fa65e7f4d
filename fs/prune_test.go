package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

func TestPrune(t *testing.T) {
	t.Parallel()

	t.Run("lists matches without removing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "shop.com_review_product_view_1.md", "shop.com_review_product_view_2.md", "shop.com_about.md")

		result, err := fs.Prune(dir, "review_product_view", false)

		require.NoError(t, err)
		assert.Equal(t, []string{"shop.com_review_product_view_1.md", "shop.com_review_product_view_2.md"}, result.Matched)
		assert.Empty(t, result.Deleted)
		assert.FileExists(t, filepath.Join(dir, "shop.com_review_product_view_1.md"))
	})

	t.Run("removes matches when asked", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "shop.com_customer_login.md", "shop.com_about.md")

		result, err := fs.Prune(dir, "customer_login", true)

		require.NoError(t, err)
		assert.Equal(t, []string{"shop.com_customer_login.md"}, result.Deleted)
		assert.Empty(t, result.Errors)
		assert.NoFileExists(t, filepath.Join(dir, "shop.com_customer_login.md"))
		assert.FileExists(t, filepath.Join(dir, "shop.com_about.md"))
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "shop.com_about.md")

		result, err := fs.Prune(dir, "review", true)

		require.NoError(t, err)
		assert.Empty(t, result.Matched)
	})

	t.Run("rejects empty pattern", func(t *testing.T) {
		t.Parallel()

		_, err := fs.Prune(t.TempDir(), "", true)

		assert.Equal(t, harvest.EINVALID, harvest.ErrorCode(err))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.Prune(filepath.Join(t.TempDir(), "missing"), "x", false)

		assert.Equal(t, harvest.ENOTFOUND, harvest.ErrorCode(err))
	})

	t.Run("path is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFiles(t, dir, "file.md")

		_, err := fs.Prune(filepath.Join(dir, "file.md"), "x", false)

		assert.Equal(t, harvest.EINVALID, harvest.ErrorCode(err))
	})
}
