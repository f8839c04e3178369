package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tagdoc"
)

// Ensure LoggingSourceRegistry implements tagdoc.SourceRegistry.
var _ tagdoc.SourceRegistry = (*LoggingSourceRegistry)(nil)

// LoggingSourceRegistry wraps a SourceRegistry with logging of manifest reads.
type LoggingSourceRegistry struct {
	next   tagdoc.SourceRegistry
	logger *slog.Logger
}

// NewLoggingSourceRegistry creates a new LoggingSourceRegistry.
func NewLoggingSourceRegistry(next tagdoc.SourceRegistry, logger *slog.Logger) *LoggingSourceRegistry {
	return &LoggingSourceRegistry{next: next, logger: logger}
}

// Sources delegates to the wrapped registry and logs the operation.
func (r *LoggingSourceRegistry) Sources(ctx context.Context) (sources []tagdoc.Source, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read manifest",
			"count", len(sources),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Sources(ctx)
}

// Fingerprint delegates to the wrapped registry and logs the operation.
func (r *LoggingSourceRegistry) Fingerprint(ctx context.Context) (fingerprint string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("fingerprint sources",
			"fingerprint", fingerprint,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Fingerprint(ctx)
}
