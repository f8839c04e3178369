package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/tagdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Sources   tagdoc.SourceRegistry
	Evaluator tagdoc.Evaluator
	Inspector tagdoc.Inspector
	History   tagdoc.HistoryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root      string        `env:"TAGDOC_ROOT" help:"Documentation root holding the manifest and tag files (default ~/.tagdoc/tagfiles)"`
	Manifest  string        `env:"TAGDOC_MANIFEST" default:"search_list.txt" help:"Manifest file, relative to the root"`
	Cling     string        `env:"TAGDOC_CLING" default:"cling" help:"Interpreter used to resolve expression types"`
	ClingArgs []string      `name:"cling-arg" help:"Extra interpreter argument (repeatable)"`
	Timeout   time.Duration `default:"30s" help:"Interpreter timeout per evaluation"`
	NoEval    bool          `help:"Do not start an interpreter; look up expressions as written"`
	Verbose   bool          `short:"v" help:"Log lookups to stderr"`

	Lookup  LookupCmd  `cmd:"" help:"Find the documentation page for an expression"`
	Repl    ReplCmd    `cmd:"" help:"Interactive session; ?expr lines are lookups"`
	Sources SourcesCmd `cmd:"" help:"List documentation sources from the manifest"`
	History HistoryCmd `cmd:"" help:"Show recent lookups"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Expr    string `arg:"" help:"Expression to look up, optionally prefixed with ?"`
	JSON    bool   `name:"json" help:"Print the result record as JSON"`
	HTML    bool   `name:"html" help:"Print the HTML pager snippet"`
	Prelude string `type:"existingfile" help:"C++ file executed before the lookup"`
}

// ReplCmd is the "repl" subcommand.
type ReplCmd struct {
	Prelude string `type:"existingfile" help:"C++ file executed before the first prompt"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit  int    `short:"n" default:"20" help:"Number of lookups to show"`
	Query  string `help:"Only show lookups for this query"`
	Missed bool   `help:"Only show lookups that found nothing"`
	Clear  bool   `help:"Delete all recorded lookups"`
}
