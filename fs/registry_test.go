package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/tagdoc"
	"github.com/fwojciec/tagdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	t.Parallel()

	t.Run("preserves file order and duplicates", func(t *testing.T) {
		t.Parallel()

		manifest := "https://a.example/ a.tag\nhttps://b.example/ b.tag\nhttps://a.example/ a.tag\n"

		sources, err := fs.ParseManifest(strings.NewReader(manifest))

		require.NoError(t, err)
		assert.Equal(t, []tagdoc.Source{
			{BaseURL: "https://a.example/", IndexPath: "a.tag"},
			{BaseURL: "https://b.example/", IndexPath: "b.tag"},
			{BaseURL: "https://a.example/", IndexPath: "a.tag"},
		}, sources)
	})

	t.Run("accepts any whitespace between fields", func(t *testing.T) {
		t.Parallel()

		sources, err := fs.ParseManifest(strings.NewReader("https://a.example/\t\t a.tag  \n"))

		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "a.tag", sources[0].IndexPath)
	})

	t.Run("skips blank, comment and short lines", func(t *testing.T) {
		t.Parallel()

		manifest := "\n# local docs\nhttps://only-url.example/\nhttps://a.example/ a.tag extra\n"

		sources, err := fs.ParseManifest(strings.NewReader(manifest))

		require.NoError(t, err)
		assert.Equal(t, []tagdoc.Source{{BaseURL: "https://a.example/", IndexPath: "a.tag"}}, sources)
	})

	t.Run("empty manifest has no sources", func(t *testing.T) {
		t.Parallel()

		sources, err := fs.ParseManifest(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, sources)
	})
}

func TestSourceRegistry_Sources(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative index paths against root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		abs := filepath.Join(t.TempDir(), "abs.tag")
		manifest := "https://docs.example/ lib.tag\nhttps://other.example/ " + abs + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(root, tagdoc.DefaultManifest), []byte(manifest), 0644))

		sources, err := fs.NewSourceRegistry(root, "").Sources(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []tagdoc.Source{
			{BaseURL: "https://docs.example/", IndexPath: filepath.Join(root, "lib.tag")},
			{BaseURL: "https://other.example/", IndexPath: abs},
		}, sources)
	})

	t.Run("does not check that index files exist", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "custom.txt"), []byte("https://x.example/ missing.tag\n"), 0644))

		sources, err := fs.NewSourceRegistry(root, "custom.txt").Sources(context.Background())

		require.NoError(t, err)
		assert.Len(t, sources, 1)
	})

	t.Run("re-reads the manifest on every call", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		path := filepath.Join(root, tagdoc.DefaultManifest)
		require.NoError(t, os.WriteFile(path, []byte("https://a.example/ a.tag\n"), 0644))
		registry := fs.NewSourceRegistry(root, "")

		first, err := registry.Sources(context.Background())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte("https://a.example/ a.tag\nhttps://b.example/ b.tag\n"), 0644))
		second, err := registry.Sources(context.Background())
		require.NoError(t, err)

		assert.Len(t, first, 1)
		assert.Len(t, second, 2)
	})

	t.Run("returns not found for missing manifest", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSourceRegistry(t.TempDir(), "").Sources(context.Background())

		require.Error(t, err)
		assert.Equal(t, tagdoc.ENOTFOUND, tagdoc.ErrorCode(err))
	})
}

func TestSourceRegistry_Fingerprint(t *testing.T) {
	t.Parallel()

	t.Run("is stable for unchanged files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, tagdoc.DefaultManifest), []byte("https://a.example/ a.tag\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.tag"), []byte("<tagfile/>"), 0644))
		registry := fs.NewSourceRegistry(root, "")

		first, err := registry.Fingerprint(context.Background())
		require.NoError(t, err)
		second, err := registry.Fingerprint(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first, 16)
	})

	t.Run("changes when a tag file changes", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, tagdoc.DefaultManifest), []byte("https://a.example/ a.tag\n"), 0644))
		tagPath := filepath.Join(root, "a.tag")
		require.NoError(t, os.WriteFile(tagPath, []byte("<tagfile/>"), 0644))
		registry := fs.NewSourceRegistry(root, "")

		before, err := registry.Fingerprint(context.Background())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(tagPath, []byte("<tagfile><compound kind=\"class\"/></tagfile>"), 0644))
		after, err := registry.Fingerprint(context.Background())
		require.NoError(t, err)

		assert.NotEqual(t, before, after)
	})

	t.Run("tolerates missing tag files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, tagdoc.DefaultManifest), []byte("https://a.example/ missing.tag\n"), 0644))

		fp, err := fs.NewSourceRegistry(root, "").Fingerprint(context.Background())

		require.NoError(t, err)
		assert.NotEmpty(t, fp)
	})
}
