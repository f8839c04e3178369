package mock

import (
	"context"

	"github.com/fwojciec/tagdoc"
)

var _ tagdoc.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of tagdoc.HistoryService.
type HistoryService struct {
	CreateLookupFn  func(ctx context.Context, lookup *tagdoc.Lookup) error
	FindLookupsFn   func(ctx context.Context, filter tagdoc.LookupFilter) ([]*tagdoc.Lookup, error)
	DeleteLookupsFn func(ctx context.Context) error
}

func (s *HistoryService) CreateLookup(ctx context.Context, lookup *tagdoc.Lookup) error {
	return s.CreateLookupFn(ctx, lookup)
}

func (s *HistoryService) FindLookups(ctx context.Context, filter tagdoc.LookupFilter) ([]*tagdoc.Lookup, error) {
	return s.FindLookupsFn(ctx, filter)
}

func (s *HistoryService) DeleteLookups(ctx context.Context) error {
	return s.DeleteLookupsFn(ctx)
}
