// Package fs provides the file-based documentation source registry.
package fs

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tagdoc"
)

// Ensure SourceRegistry implements tagdoc.SourceRegistry at compile time.
var _ tagdoc.SourceRegistry = (*SourceRegistry)(nil)

// SourceRegistry reads documentation sources from a manifest file.
// Each manifest line holds a base URL and a tag file path separated by
// whitespace. Relative tag file paths are resolved against the
// documentation root.
type SourceRegistry struct {
	root     string
	manifest string
}

// NewSourceRegistry creates a SourceRegistry for the documentation root.
// An empty manifest name selects tagdoc.DefaultManifest. A relative
// manifest path is resolved against root.
func NewSourceRegistry(root, manifest string) *SourceRegistry {
	if manifest == "" {
		manifest = tagdoc.DefaultManifest
	}
	return &SourceRegistry{root: root, manifest: manifest}
}

// ManifestPath returns the resolved manifest location.
func (r *SourceRegistry) ManifestPath() string {
	return r.resolve(r.manifest)
}

func (r *SourceRegistry) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.root, path)
}

// Sources reads the manifest and returns its sources in file order.
func (r *SourceRegistry) Sources(ctx context.Context) ([]tagdoc.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.readManifest()
	if err != nil {
		return nil, err
	}

	sources, err := ParseManifest(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	for i := range sources {
		sources[i].IndexPath = r.resolve(sources[i].IndexPath)
	}
	return sources, nil
}

// Fingerprint hashes the manifest and every tag file it lists. Missing tag
// files contribute only their path.
func (r *SourceRegistry) Fingerprint(ctx context.Context) (string, error) {
	sources, err := r.Sources(ctx)
	if err != nil {
		return "", err
	}
	manifest, err := r.readManifest()
	if err != nil {
		return "", err
	}

	d := xxhash.New()
	_, _ = d.Write(manifest)
	for _, src := range sources {
		_, _ = d.WriteString(src.IndexPath)
		if err := hashFile(d, src.IndexPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return fmt.Sprintf("%016x", d.Sum64()), nil
}

func (r *SourceRegistry) readManifest() ([]byte, error) {
	path := r.ManifestPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, tagdoc.Errorf(tagdoc.ENOTFOUND, "manifest %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return data, nil
}

func hashFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

// ParseManifest parses manifest lines of the form "<baseURL> <indexPath>".
// Order is preserved and duplicates are kept. Blank lines, lines starting
// with '#', and lines with fewer than two fields are skipped; fields after
// the second are ignored.
func ParseManifest(r io.Reader) ([]tagdoc.Source, error) {
	var sources []tagdoc.Source
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		sources = append(sources, tagdoc.Source{
			BaseURL:   fields[0],
			IndexPath: fields[1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return sources, nil
}
