package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tagdoc"
)

// Ensure LoggingInspector implements tagdoc.Inspector.
var _ tagdoc.Inspector = (*LoggingInspector)(nil)

// LoggingInspector wraps an Inspector with logging of each query.
type LoggingInspector struct {
	next   tagdoc.Inspector
	logger *slog.Logger
}

// NewLoggingInspector creates a new LoggingInspector.
func NewLoggingInspector(next tagdoc.Inspector, logger *slog.Logger) *LoggingInspector {
	return &LoggingInspector{next: next, logger: logger}
}

// Inspect delegates to the wrapped inspector and logs the outcome.
func (i *LoggingInspector) Inspect(ctx context.Context, code string) (res *tagdoc.Result) {
	defer func(begin time.Time) {
		i.logger.Info("inspect",
			"code", code,
			"found", res.Found,
			"target", res.Target,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return i.next.Inspect(ctx, code)
}

// Ensure LoggingTypeResolver implements tagdoc.TypeResolver.
var _ tagdoc.TypeResolver = (*LoggingTypeResolver)(nil)

// LoggingTypeResolver wraps a TypeResolver with logging of resolved types.
type LoggingTypeResolver struct {
	next   tagdoc.TypeResolver
	logger *slog.Logger
}

// NewLoggingTypeResolver creates a new LoggingTypeResolver.
func NewLoggingTypeResolver(next tagdoc.TypeResolver, logger *slog.Logger) *LoggingTypeResolver {
	return &LoggingTypeResolver{next: next, logger: logger}
}

// ResolveType delegates to the wrapped resolver and logs the result.
func (r *LoggingTypeResolver) ResolveType(ctx context.Context, expr string) (typeName string) {
	defer func(begin time.Time) {
		resolved := typeName
		if resolved == "" {
			resolved = "(unknown)"
		}
		r.logger.Info("resolve type",
			"expr", expr,
			"type", resolved,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.ResolveType(ctx, expr)
}
