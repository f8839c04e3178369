package mock

import (
	"context"
	"io"

	"github.com/fwojciec/tagdoc"
)

var _ tagdoc.Evaluator = (*Evaluator)(nil)

// Evaluator is a mock implementation of tagdoc.Evaluator.
type Evaluator struct {
	ExecuteFn            func(ctx context.Context, code string) (string, error)
	CancelContinuationFn func()
	SetOutputFn          func(stdout, stderr io.Writer) (io.Writer, io.Writer)
}

func (e *Evaluator) Execute(ctx context.Context, code string) (string, error) {
	return e.ExecuteFn(ctx, code)
}

func (e *Evaluator) CancelContinuation() {
	e.CancelContinuationFn()
}

func (e *Evaluator) SetOutput(stdout, stderr io.Writer) (io.Writer, io.Writer) {
	return e.SetOutputFn(stdout, stderr)
}
