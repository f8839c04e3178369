package mock

import (
	"context"

	"github.com/fwojciec/tagdoc"
)

var _ tagdoc.SourceRegistry = (*SourceRegistry)(nil)

// SourceRegistry is a mock implementation of tagdoc.SourceRegistry.
type SourceRegistry struct {
	SourcesFn     func(ctx context.Context) ([]tagdoc.Source, error)
	FingerprintFn func(ctx context.Context) (string, error)
}

func (r *SourceRegistry) Sources(ctx context.Context) ([]tagdoc.Source, error) {
	return r.SourcesFn(ctx)
}

func (r *SourceRegistry) Fingerprint(ctx context.Context) (string, error) {
	return r.FingerprintFn(ctx)
}
