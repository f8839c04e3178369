package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tagdoc"
)

// Ensure LoggingIndexLoader implements tagdoc.IndexLoader.
var _ tagdoc.IndexLoader = (*LoggingIndexLoader)(nil)

// LoggingIndexLoader wraps an IndexLoader with logging. Load failures are
// the only trace of a skipped source, since lookups do not report them.
type LoggingIndexLoader struct {
	next   tagdoc.IndexLoader
	logger *slog.Logger
}

// NewLoggingIndexLoader creates a new LoggingIndexLoader.
func NewLoggingIndexLoader(next tagdoc.IndexLoader, logger *slog.Logger) *LoggingIndexLoader {
	return &LoggingIndexLoader{next: next, logger: logger}
}

// LoadIndex delegates to the wrapped loader and logs the operation.
func (l *LoggingIndexLoader) LoadIndex(ctx context.Context, path string) (index tagdoc.Index, err error) {
	defer func(begin time.Time) {
		if err != nil {
			l.logger.Warn("skipping index",
				"path", path,
				"code", tagdoc.ErrorCode(err),
				"err", err,
			)
			return
		}
		l.logger.Info("load index",
			"path", path,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return l.next.LoadIndex(ctx, path)
}
