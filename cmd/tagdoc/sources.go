package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/tagdoc"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	sources, err := deps.Sources.Sources(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tagdoc.ErrorMessage(err))
		if tagdoc.ErrorCode(err) == tagdoc.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: Set TAGDOC_ROOT to the directory holding search_list.txt")
		}
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No documentation sources listed in the manifest.")
		return nil
	}

	// Sources are listed in search order; for duplicate symbols the last
	// source wins.
	for i, src := range sources {
		status := "ok"
		if _, err := os.Stat(src.IndexPath); err != nil {
			status = "missing"
		}
		fmt.Fprintf(deps.Stdout, "%d  %-7s  %s  %s\n", i+1, status, src.BaseURL, src.IndexPath)
	}

	if fp, err := deps.Sources.Fingerprint(deps.Ctx); err == nil {
		fmt.Fprintf(deps.Stdout, "fingerprint %s\n", fp)
	}
	return nil
}
