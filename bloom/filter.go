// Package bloom provides probabilistic membership for canonical URLs.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/harvest"
)

// Filter records canonical URLs in a Bloom filter.
// A negative answer is exact; a positive answer may be a false positive
// and must be confirmed by the caller if exactness matters.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd records u and reports whether it may have been present before.
func (f *Filter) TestAndAdd(u harvest.CanonicalURL) bool {
	return f.f.TestAndAddString(u.String())
}
