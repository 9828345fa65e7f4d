package main

import (
	"fmt"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/fs"
)

// Run executes the prune command.
func (c *PruneCmd) Run(deps *Dependencies) error {
	result, err := fs.Prune(c.Dir, c.Pattern, c.Force)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	if len(result.Matched) == 0 {
		fmt.Fprintf(deps.Stdout, "No files containing %q in %s\n", c.Pattern, c.Dir)
		return nil
	}

	if !c.Force {
		fmt.Fprintf(deps.Stdout, "Found %d files containing %q:\n", len(result.Matched), c.Pattern)
		for _, name := range result.Matched {
			fmt.Fprintf(deps.Stdout, "  %s\n", name)
		}
		fmt.Fprintln(deps.Stdout, "Use --force to delete them")
		return nil
	}

	for _, name := range result.Deleted {
		fmt.Fprintf(deps.Stdout, "  deleted %s\n", name)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(deps.Stderr, "  %v\n", e)
	}
	fmt.Fprintf(deps.Stdout, "Deleted %d files\n", len(result.Deleted))

	if len(result.Errors) > 0 {
		return harvest.Errorf(harvest.EPERSIST, "failed to delete %d files", len(result.Errors))
	}
	return nil
}
