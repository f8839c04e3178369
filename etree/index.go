// Package etree provides a tagdoc.IndexLoader for Doxygen tag files using
// github.com/beevik/etree.
package etree

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/fwojciec/tagdoc"
)

var (
	_ tagdoc.IndexLoader = (*IndexLoader)(nil)
	_ tagdoc.Index       = (*Index)(nil)
	_ tagdoc.Node        = node{}
)

// IndexLoader parses tag files from disk. Every call reads and parses the
// file again; nothing is cached.
type IndexLoader struct{}

// NewIndexLoader creates a new IndexLoader.
func NewIndexLoader() *IndexLoader {
	return &IndexLoader{}
}

// LoadIndex parses the tag file at path.
func (l *IndexLoader) LoadIndex(ctx context.Context, path string) (tagdoc.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, err := LoadIndex(path)
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Index is a parsed tag file.
type Index struct {
	doc *etree.Document
}

// LoadIndex parses the tag file at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is not
// well-formed XML.
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, tagdoc.Errorf(tagdoc.ENOTFOUND, "tag file %q not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, err := ParseIndex(f)
	if err != nil {
		return nil, tagdoc.Errorf(tagdoc.EINVALID, "parsing tag file %q: %s", path, tagdoc.ErrorMessage(err))
	}
	return idx, nil
}

// ParseIndex parses a tag file from r.
func ParseIndex(r io.Reader) (*Index, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, tagdoc.Errorf(tagdoc.EINVALID, "%v", err)
	}
	if doc.Root() == nil {
		return nil, tagdoc.Errorf(tagdoc.EINVALID, "no root element")
	}
	return &Index{doc: doc}, nil
}

// FindFirst walks every element depth-first in document order and returns
// the first one accepted by pred.
func (i *Index) FindFirst(pred tagdoc.Predicate) tagdoc.Node {
	if el := findFirst(i.doc.ChildElements(), pred); el != nil {
		return node{el: el}
	}
	return nil
}

func findFirst(elements []*etree.Element, pred tagdoc.Predicate) *etree.Element {
	for _, el := range elements {
		if pred(node{el: el}) {
			return el
		}
		if found := findFirst(el.ChildElements(), pred); found != nil {
			return found
		}
	}
	return nil
}

// node adapts an etree element to tagdoc.Node.
type node struct {
	el *etree.Element
}

func (n node) Kind() tagdoc.Kind {
	return tagdoc.Kind(n.el.SelectAttrValue("kind", ""))
}

func (n node) ChildText(tag string) string {
	child := n.el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return child.Text()
}

func (n node) Children() []tagdoc.Node {
	elements := n.el.ChildElements()
	children := make([]tagdoc.Node, len(elements))
	for i, el := range elements {
		children[i] = node{el: el}
	}
	return children
}
