package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/tagdoc"
	main "github.com/fwojciec/tagdoc/cmd/tagdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libTag = `<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>
<tagfile>
  <compound kind="class">
    <name>Widget</name>
    <filename>classWidget.html</filename>
  </compound>
</tagfile>
`

// setupRoot writes a documentation root with one source.
func setupRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "lib.tag"), []byte(libTag), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "search_list.txt"), []byte("https://docs.example/ lib.tag\n"), 0644))
	return root
}

func newTestMain(t *testing.T) *main.Main {
	t.Helper()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	m.Evaluator = tagdoc.NopEvaluator{}
	return m
}

func TestMain_Run_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("prints documentation URL", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--root", setupRoot(t), "lookup", "?Widget"}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, widgetURL+"\n", stdout.String())
	})

	t.Run("fails for undocumented symbol", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--root", setupRoot(t), "lookup", "Unknown"}, stdout, stderr)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "No documentation found for Unknown")
	})

	t.Run("missing manifest finds nothing", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		err := m.Run(context.Background(), []string{"--root", t.TempDir(), "lookup", "Widget"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, tagdoc.ENOTFOUND, tagdoc.ErrorCode(err))
	})

	t.Run("verbose logs the lookup", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--root", setupRoot(t), "-v", "lookup", "Widget"}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "read manifest")
		assert.Contains(t, stderr.String(), "load index")
	})
}

func TestMain_Run_History(t *testing.T) {
	t.Parallel()

	root := setupRoot(t)
	m := newTestMain(t)
	ctx := context.Background()

	require.NoError(t, m.Run(ctx, []string{"--root", root, "lookup", "Widget"}, &bytes.Buffer{}, &bytes.Buffer{}))
	require.Error(t, m.Run(ctx, []string{"--root", root, "lookup", "Unknown"}, &bytes.Buffer{}, &bytes.Buffer{}))

	stdout := &bytes.Buffer{}
	err := m.Run(ctx, []string{"--root", root, "history"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Unknown  (not found)")
	assert.Contains(t, lines[1], "Widget  "+widgetURL)
}

func TestMain_Run_Repl(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	m.Stdin = strings.NewReader("?Widget\n")
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--root", setupRoot(t), "repl"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "tagdoc> "+widgetURL)
}

func TestMain_Run_Sources(t *testing.T) {
	t.Parallel()

	root := setupRoot(t)
	m := newTestMain(t)
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--root", root, "sources"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "ok")
	assert.Contains(t, stdout.String(), filepath.Join(root, "lib.tag"))
	assert.Nil(t, m.DB, "sources does not open the history database")
}
