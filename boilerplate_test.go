package harvest_test

import (
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/stretchr/testify/assert"
)

func TestBoilerplateSet(t *testing.T) {
	t.Parallel()

	t.Run("contains trimmed members", func(t *testing.T) {
		t.Parallel()

		s := harvest.NewBoilerplateSet("  Free shipping on all orders  ", "Call us today for a quote")

		assert.True(t, s.Contains("Free shipping on all orders"))
		assert.True(t, s.Contains("\tCall us today for a quote\n"))
		assert.False(t, s.Contains("Something else entirely"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("nil set contains nothing", func(t *testing.T) {
		t.Parallel()

		var s harvest.BoilerplateSet
		assert.False(t, s.Contains("anything"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("strings are sorted", func(t *testing.T) {
		t.Parallel()

		s := harvest.NewBoilerplateSet("b fragment", "a fragment")
		assert.Equal(t, []string{"a fragment", "b fragment"}, s.Strings())
	})
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	doc := &harvest.Document{}
	err := doc.Validate()
	assert.Equal(t, harvest.EINVALID, harvest.ErrorCode(err))

	doc.URL = "https://example.com/"
	assert.NoError(t, doc.Validate())
}

func TestIndexDocument_Validate(t *testing.T) {
	t.Parallel()

	doc := &harvest.IndexDocument{SourceURL: "https://example.com/"}
	assert.Equal(t, harvest.EINVALID, harvest.ErrorCode(doc.Validate()))

	doc.Category = "products"
	assert.NoError(t, doc.Validate())
}
