package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/tagdoc"
	"github.com/fwojciec/tagdoc/mock"
	tagslog "github.com/fwojciec/tagdoc/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingInspector_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("logs found target", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := tagdoc.NewResult("https://docs.example/classWidget.html")
		inner := &mock.Inspector{
			InspectFn: func(ctx context.Context, code string) *tagdoc.Result {
				return want
			},
		}

		inspector := tagslog.NewLoggingInspector(inner, logger)
		got := inspector.Inspect(context.Background(), "Widget")

		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "inspect")
		assert.Contains(t, output, "found=true")
		assert.Contains(t, output, "target=https://docs.example/classWidget.html")
	})

	t.Run("logs miss", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Inspector{
			InspectFn: func(ctx context.Context, code string) *tagdoc.Result {
				return tagdoc.NewResult("")
			},
		}

		inspector := tagslog.NewLoggingInspector(inner, logger)
		got := inspector.Inspect(context.Background(), "Unknown")

		assert.False(t, got.Found)
		assert.Contains(t, buf.String(), "found=false")
	})
}

func TestLoggingTypeResolver_ResolveType(t *testing.T) {
	t.Parallel()

	t.Run("logs resolved type", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TypeResolver{
			ResolveTypeFn: func(ctx context.Context, expr string) string {
				return "ui::Widget"
			},
		}

		resolver := tagslog.NewLoggingTypeResolver(inner, logger)
		got := resolver.ResolveType(context.Background(), "w")

		assert.Equal(t, "ui::Widget", got)
		assert.Contains(t, buf.String(), "type=ui::Widget")
	})

	t.Run("logs unknown type", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TypeResolver{
			ResolveTypeFn: func(ctx context.Context, expr string) string {
				return ""
			},
		}

		resolver := tagslog.NewLoggingTypeResolver(inner, logger)
		got := resolver.ResolveType(context.Background(), "Widget")

		assert.Empty(t, got)
		assert.Contains(t, buf.String(), "type=(unknown)")
	})
}
