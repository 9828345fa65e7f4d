package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/harvest"
)

// PruneResult lists the files matched and removed by Prune.
type PruneResult struct {
	Matched []string
	Deleted []string
	Errors  []error
}

// Prune finds files in dir whose name contains pattern. Files are only
// removed when remove is true; a failed removal is collected and the
// remaining files are still processed.
func Prune(dir, pattern string, remove bool) (*PruneResult, error) {
	if pattern == "" {
		return nil, harvest.Errorf(harvest.EINVALID, "pattern required")
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, harvest.Errorf(harvest.ENOTFOUND, "directory not found: %s", dir)
		}
		return nil, harvest.Errorf(harvest.EINVALID, "stat %s: %v", dir, err)
	}
	if !info.IsDir() {
		return nil, harvest.Errorf(harvest.EINVALID, "not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, harvest.Errorf(harvest.EINVALID, "read directory %s: %v", dir, err)
	}

	result := &PruneResult{}
	for _, e := range entries {
		if e.IsDir() || !strings.Contains(e.Name(), pattern) {
			continue
		}
		result.Matched = append(result.Matched, e.Name())
	}
	sort.Strings(result.Matched)

	if !remove {
		return result, nil
	}
	for _, name := range result.Matched {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("remove %s: %w", name, err))
			continue
		}
		result.Deleted = append(result.Deleted, name)
	}
	return result, nil
}
