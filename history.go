package tagdoc

import (
	"context"
	"time"
)

// Lookup is a recorded documentation query.
type Lookup struct {
	ID     string `json:"id"`
	Query  string `json:"query"`
	Target string `json:"target"`
	Found  bool   `json:"found"`

	// Fingerprint identifies the manifest and index files the query ran against.
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the lookup contains invalid fields.
func (l *Lookup) Validate() error {
	if l.Query == "" {
		return Errorf(EINVALID, "lookup query required")
	}
	if l.Found && l.Target == "" {
		return Errorf(EINVALID, "lookup target required when found")
	}
	return nil
}

// HistoryService records documentation queries.
type HistoryService interface {
	// CreateLookup records a lookup.
	CreateLookup(ctx context.Context, lookup *Lookup) error

	// FindLookups retrieves lookups matching the filter, newest first.
	FindLookups(ctx context.Context, filter LookupFilter) ([]*Lookup, error)

	// DeleteLookups removes all recorded lookups.
	DeleteLookups(ctx context.Context) error
}

// LookupFilter represents a filter for FindLookups.
type LookupFilter struct {
	Query *string `json:"query"`
	Found *bool   `json:"found"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
