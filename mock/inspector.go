package mock

import (
	"context"

	"github.com/fwojciec/tagdoc"
)

var (
	_ tagdoc.Inspector    = (*Inspector)(nil)
	_ tagdoc.TypeResolver = (*TypeResolver)(nil)
)

// Inspector is a mock implementation of tagdoc.Inspector.
type Inspector struct {
	InspectFn func(ctx context.Context, code string) *tagdoc.Result
}

func (i *Inspector) Inspect(ctx context.Context, code string) *tagdoc.Result {
	return i.InspectFn(ctx, code)
}

// TypeResolver is a mock implementation of tagdoc.TypeResolver.
type TypeResolver struct {
	ResolveTypeFn func(ctx context.Context, expr string) string
}

func (r *TypeResolver) ResolveType(ctx context.Context, expr string) string {
	return r.ResolveTypeFn(ctx, expr)
}
