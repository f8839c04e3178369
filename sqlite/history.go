package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/tagdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tagdoc.HistoryService = (*HistoryService)(nil)

// HistoryService implements tagdoc.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// CreateLookup records a lookup, assigning its ID and creation time.
func (s *HistoryService) CreateLookup(ctx context.Context, lookup *tagdoc.Lookup) error {
	if err := lookup.Validate(); err != nil {
		return err
	}

	lookup.ID = uuid.New().String()
	lookup.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookups (id, query, target, found, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, lookup.ID, lookup.Query, lookup.Target, lookup.Found, lookup.Fingerprint,
		lookup.CreatedAt.Format(timestampFormat))

	return err
}

// FindLookups retrieves lookups matching the filter, newest first.
func (s *HistoryService) FindLookups(ctx context.Context, filter tagdoc.LookupFilter) ([]*tagdoc.Lookup, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, query, target, found, fingerprint, created_at FROM lookups WHERE 1=1")

	if filter.Query != nil {
		query.WriteString(" AND query = ?")
		args = append(args, *filter.Query)
	}
	if filter.Found != nil {
		query.WriteString(" AND found = ?")
		args = append(args, *filter.Found)
	}

	// Lookups recorded within the same clock tick keep insertion order.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []*tagdoc.Lookup
	for rows.Next() {
		var lookup tagdoc.Lookup
		var createdAt string

		if err := rows.Scan(&lookup.ID, &lookup.Query, &lookup.Target, &lookup.Found,
			&lookup.Fingerprint, &createdAt); err != nil {
			return nil, err
		}

		lookup.CreatedAt, err = parseTimestamp(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		lookups = append(lookups, &lookup)
	}

	return lookups, rows.Err()
}

// DeleteLookups removes all recorded lookups.
func (s *HistoryService) DeleteLookups(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM lookups")
	return err
}
