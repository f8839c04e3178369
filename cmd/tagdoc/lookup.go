package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/tagdoc"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	query := c.Expr
	if rest, ok := tagdoc.MatchTrigger(query); ok {
		query = rest
	}

	if err := runPrelude(deps, c.Prelude); err != nil {
		return err
	}

	res := deps.Inspector.Inspect(deps.Ctx, query)
	recordLookup(deps.Ctx, deps, query, res)

	switch {
	case c.JSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	case c.HTML && res.Found:
		fmt.Fprintln(deps.Stdout, res.Data["text/html"])
	case res.Found:
		fmt.Fprintln(deps.Stdout, res.Target)
	}

	if !res.Found {
		fmt.Fprintf(deps.Stderr, "No documentation found for %s\n", query)
		return tagdoc.Errorf(tagdoc.ENOTFOUND, "no documentation found for %q", query)
	}
	return nil
}

// runPrelude executes the contents of path in the evaluator session.
func runPrelude(deps *Dependencies, path string) error {
	if path == "" {
		return nil
	}
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading prelude: %w", err)
	}
	if _, err := deps.Evaluator.Execute(deps.Ctx, string(code)); err != nil {
		deps.Evaluator.CancelContinuation()
		fmt.Fprintf(deps.Stderr, "error: prelude: %s\n", tagdoc.ErrorMessage(err))
		return err
	}
	return nil
}

// recordLookup saves the query in the history store. Failures are
// reported but never change the lookup result.
func recordLookup(ctx context.Context, deps *Dependencies, query string, res *tagdoc.Result) {
	if deps.History == nil || query == "" {
		return
	}
	// An unreadable manifest still gets recorded, with no fingerprint.
	fingerprint, _ := deps.Sources.Fingerprint(ctx)

	lookup := &tagdoc.Lookup{
		Query:       query,
		Target:      res.Target,
		Found:       res.Found,
		Fingerprint: fingerprint,
	}
	if err := deps.History.CreateLookup(ctx, lookup); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: recording lookup: %s\n", tagdoc.ErrorMessage(err))
	}
}
