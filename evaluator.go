package tagdoc

import (
	"context"
	"io"
	"sync"
)

// Evaluator executes code in an interactive C++ session.
type Evaluator interface {
	// Execute runs code in the session and returns the printed value of
	// its trailing expression, if any. A compile or runtime failure is
	// returned as an EINVALID error; EUNAVAILABLE means the interpreter
	// could not be run at all.
	Execute(ctx context.Context, code string) (string, error)

	// CancelContinuation discards partially entered input left behind by
	// a failed Execute.
	CancelContinuation()

	// SetOutput replaces the writers receiving the session's own output and
	// diagnostics and returns the previous ones.
	SetOutput(stdout, stderr io.Writer) (prevStdout, prevStderr io.Writer)
}

// IncompleteInput is the message of the EINVALID error an Evaluator
// returns while it holds unfinished input, such as an unclosed brace.
const IncompleteInput = "incomplete input"

// OutputGuard silences an evaluator until released.
type OutputGuard struct {
	ev     Evaluator
	stdout io.Writer
	stderr io.Writer
	once   sync.Once
}

// SuppressOutput redirects the evaluator's output to io.Discard. The
// returned guard must be released to restore the previous writers.
func SuppressOutput(ev Evaluator) *OutputGuard {
	stdout, stderr := ev.SetOutput(io.Discard, io.Discard)
	return &OutputGuard{ev: ev, stdout: stdout, stderr: stderr}
}

// Release restores the writers replaced by SuppressOutput.
// Calling Release more than once has no further effect.
func (g *OutputGuard) Release() {
	g.once.Do(func() {
		g.ev.SetOutput(g.stdout, g.stderr)
	})
}

// Ensure NopEvaluator implements Evaluator.
var _ Evaluator = NopEvaluator{}

// NopEvaluator is used when no interpreter is configured. Every execution
// fails, so lookups fall back to searching for the raw expression text.
type NopEvaluator struct{}

// Execute always returns EUNAVAILABLE.
func (NopEvaluator) Execute(ctx context.Context, code string) (string, error) {
	return "", Errorf(EUNAVAILABLE, "no interpreter configured")
}

// CancelContinuation does nothing.
func (NopEvaluator) CancelContinuation() {}

// SetOutput does nothing and reports io.Discard as the previous writers.
func (NopEvaluator) SetOutput(stdout, stderr io.Writer) (io.Writer, io.Writer) {
	return io.Discard, io.Discard
}

// TypeResolver determines the runtime type of an expression.
type TypeResolver interface {
	// ResolveType returns the fully qualified type name of expr without
	// template arguments or pointer, reference and array suffixes.
	// Returns "" when the type cannot be determined.
	ResolveType(ctx context.Context, expr string) string
}
