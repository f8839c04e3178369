package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/tagdoc"
)

const (
	prompt             = "tagdoc> "
	continuationPrompt = "   ...> "
)

// Run executes the repl command. Lines starting with ? are documentation
// lookups; everything else is evaluated in the interpreter session so
// later lookups can resolve the variables it declares.
func (c *ReplCmd) Run(deps *Dependencies) error {
	if err := runPrelude(deps, c.Prelude); err != nil {
		return err
	}

	scanner := bufio.NewScanner(deps.Stdin)
	fmt.Fprint(deps.Stdout, prompt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == ".q" {
			return nil
		}

		next := prompt
		if query, ok := tagdoc.MatchTrigger(line); ok {
			c.lookup(deps, query)
		} else if strings.TrimSpace(line) != "" {
			next = c.execute(deps, line)
		}
		fmt.Fprint(deps.Stdout, next)
	}
	fmt.Fprintln(deps.Stdout)
	return scanner.Err()
}

func (c *ReplCmd) lookup(deps *Dependencies, query string) {
	res := deps.Inspector.Inspect(deps.Ctx, query)
	recordLookup(deps.Ctx, deps, query, res)
	if !res.Found {
		fmt.Fprintf(deps.Stdout, "No documentation found for %s\n", query)
		return
	}
	fmt.Fprintln(deps.Stdout, res.Target)
}

// execute runs one line and returns the prompt to show next.
func (c *ReplCmd) execute(deps *Dependencies, line string) string {
	_, err := deps.Evaluator.Execute(deps.Ctx, line)
	switch {
	case err == nil:
		return prompt
	case tagdoc.ErrorCode(err) == tagdoc.EINVALID && tagdoc.ErrorMessage(err) == tagdoc.IncompleteInput:
		return continuationPrompt
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", tagdoc.ErrorMessage(err))
		return prompt
	}
}
