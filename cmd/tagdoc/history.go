package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/tagdoc"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Clear {
		if err := deps.History.DeleteLookups(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tagdoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "History cleared.")
		return nil
	}

	filter := tagdoc.LookupFilter{Limit: c.Limit}
	if c.Query != "" {
		filter.Query = &c.Query
	}
	if c.Missed {
		found := false
		filter.Found = &found
	}

	lookups, err := deps.History.FindLookups(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tagdoc.ErrorMessage(err))
		return err
	}

	if len(lookups) == 0 {
		fmt.Fprintln(deps.Stdout, "No lookups recorded.")
		return nil
	}

	for _, l := range lookups {
		target := l.Target
		if !l.Found {
			target = "(not found)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			l.CreatedAt.Local().Format(time.DateTime), shortFingerprint(l.Fingerprint), l.Query, target)
	}
	return nil
}

// shortFingerprint abbreviates a registry fingerprint for display.
func shortFingerprint(fp string) string {
	if fp == "" {
		return "--------"
	}
	if len(fp) > 8 {
		return fp[:8]
	}
	return fp
}
