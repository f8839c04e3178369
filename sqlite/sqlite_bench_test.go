package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tagdoc"
	"github.com/fwojciec/tagdoc/sqlite"
	"github.com/stretchr/testify/require"
)

func openBenchDB(b *testing.B) *sqlite.DB {
	b.Helper()

	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	b.Cleanup(func() { db.Close() })
	return db
}

// BenchmarkCreateLookup measures recording one lookup per REPL query.
func BenchmarkCreateLookup(b *testing.B) {
	svc := sqlite.NewHistoryService(openBenchDB(b))
	ctx := context.Background()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		lookup := &tagdoc.Lookup{
			Query:       fmt.Sprintf("ns::Widget%d", i),
			Target:      fmt.Sprintf("https://docs.example/classns_1_1Widget%d.html", i),
			Found:       true,
			Fingerprint: "0123456789abcdef",
		}
		if err := svc.CreateLookup(ctx, lookup); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindLookups measures listing recent history from a populated table.
func BenchmarkFindLookups(b *testing.B) {
	const recorded = 1000

	svc := sqlite.NewHistoryService(openBenchDB(b))
	ctx := context.Background()
	for i := 0; i < recorded; i++ {
		require.NoError(b, svc.CreateLookup(ctx, &tagdoc.Lookup{Query: fmt.Sprintf("q%d", i)}))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.FindLookups(ctx, tagdoc.LookupFilter{Limit: 20}); err != nil {
			b.Fatal(err)
		}
	}
}
