package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/bloom"
	"github.com/stretchr/testify/assert"
)

func page(path string) harvest.CanonicalURL {
	return harvest.CanonicalURL{Scheme: "https", Host: "example.com", Path: path}
}

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.TestAndAdd(page("/a")), "first add reports absent")
	assert.True(t, f.TestAndAdd(page("/a")), "second add reports present")
}

func TestFilter_distinguishes_paths(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	f.TestAndAdd(page("/page1"))

	assert.False(t, f.TestAndAdd(page("/page2")))
}

func TestFilter_no_false_negatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.01)

	for i := range 100 {
		f.TestAndAdd(page(fmt.Sprintf("/page%d", i)))
	}
	for i := range 100 {
		assert.True(t, f.TestAndAdd(page(fmt.Sprintf("/page%d", i))))
	}
}
