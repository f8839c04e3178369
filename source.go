package tagdoc

import "context"

// DefaultManifest is the manifest file name inside a documentation root.
const DefaultManifest = "search_list.txt"

// Source is one documentation source listed in the manifest.
type Source struct {
	// BaseURL is prepended to entry anchors to build page URLs.
	BaseURL string `json:"baseUrl"`

	// IndexPath is the tag file path, resolved against the documentation root.
	IndexPath string `json:"indexPath"`
}

// Target returns the page URL for an anchor found in this source.
func (s Source) Target(anchor string) string {
	return s.BaseURL + anchor
}

// SourceRegistry provides the ordered documentation sources.
type SourceRegistry interface {
	// Sources reads the manifest and returns its sources in file order.
	// The manifest is re-read on every call.
	// Returns ENOTFOUND if the manifest does not exist.
	Sources(ctx context.Context) ([]Source, error)

	// Fingerprint returns a hash of the manifest and the index files it
	// references. Identical fingerprints mean lookups see identical inputs.
	Fingerprint(ctx context.Context) (string, error)
}
