package crawl

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/harvest"
)

// Boilerplate detection defaults.
const (
	DefaultSampleSize = 50
	DefaultThreshold  = 0.4
	DefaultMinCount   = 2

	// minBoilerplateLen excludes short strings from frequency counting;
	// only fragments longer than this many characters can be boilerplate.
	minBoilerplateLen = 10
)

// DetectBoilerplate returns the fragments that occur on at least
// max(minCount, ceil(threshold*len(samples))) of the sampled pages.
// Each page counts a fragment at most once, and fragments of 10 characters
// or fewer are ignored. The result depends only on its inputs.
func DetectBoilerplate(samples [][]harvest.Fragment, threshold float64, minCount int) harvest.BoilerplateSet {
	set := harvest.BoilerplateSet{}
	if len(samples) == 0 {
		return set
	}

	counts := make(map[string]int)
	for _, fragments := range samples {
		onPage := make(map[string]struct{}, len(fragments))
		for _, f := range fragments {
			text := strings.TrimSpace(f.Text)
			if utf8.RuneCountInString(text) <= minBoilerplateLen {
				continue
			}
			onPage[text] = struct{}{}
		}
		for text := range onPage {
			counts[text]++
		}
	}

	required := max(minCount, requiredPages(threshold, len(samples)))
	for text, n := range counts {
		if n >= required {
			set[text] = struct{}{}
		}
	}
	return set
}

// requiredPages is ceil(threshold*n), tolerant of floating point error
// such as 0.1*30 evaluating to 3.0000000000000004.
func requiredPages(threshold float64, n int) int {
	return int(math.Ceil(threshold*float64(n) - 1e-9))
}
