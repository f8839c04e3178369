package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/tagdoc"
)

// Ensure LoggingEvaluator implements tagdoc.Evaluator.
var _ tagdoc.Evaluator = (*LoggingEvaluator)(nil)

// LoggingEvaluator wraps an Evaluator with logging of each execution.
type LoggingEvaluator struct {
	next   tagdoc.Evaluator
	logger *slog.Logger
}

// NewLoggingEvaluator creates a new LoggingEvaluator.
func NewLoggingEvaluator(next tagdoc.Evaluator, logger *slog.Logger) *LoggingEvaluator {
	return &LoggingEvaluator{next: next, logger: logger}
}

// Execute delegates to the wrapped evaluator and logs the operation.
func (e *LoggingEvaluator) Execute(ctx context.Context, code string) (out string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("execute",
			"code", code,
			"bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Execute(ctx, code)
}

// CancelContinuation delegates to the wrapped evaluator.
func (e *LoggingEvaluator) CancelContinuation() {
	e.logger.Info("cancel continuation")
	e.next.CancelContinuation()
}

// SetOutput delegates to the wrapped evaluator.
func (e *LoggingEvaluator) SetOutput(stdout, stderr io.Writer) (io.Writer, io.Writer) {
	return e.next.SetOutput(stdout, stderr)
}
