package mock

import (
	"context"

	"github.com/fwojciec/tagdoc"
)

var (
	_ tagdoc.IndexLoader = (*IndexLoader)(nil)
	_ tagdoc.Index       = (*Index)(nil)
	_ tagdoc.Node        = (*Node)(nil)
)

// IndexLoader is a mock implementation of tagdoc.IndexLoader.
type IndexLoader struct {
	LoadIndexFn func(ctx context.Context, path string) (tagdoc.Index, error)
}

func (l *IndexLoader) LoadIndex(ctx context.Context, path string) (tagdoc.Index, error) {
	return l.LoadIndexFn(ctx, path)
}

// Index is a mock implementation of tagdoc.Index.
type Index struct {
	FindFirstFn func(pred tagdoc.Predicate) tagdoc.Node
}

func (i *Index) FindFirst(pred tagdoc.Predicate) tagdoc.Node {
	return i.FindFirstFn(pred)
}

// Node is an in-memory tagdoc.Node.
type Node struct {
	KindValue  tagdoc.Kind
	Text       map[string]string
	ChildNodes []*Node
}

func (n *Node) Kind() tagdoc.Kind {
	return n.KindValue
}

func (n *Node) ChildText(tag string) string {
	return n.Text[tag]
}

func (n *Node) Children() []tagdoc.Node {
	children := make([]tagdoc.Node, len(n.ChildNodes))
	for i, c := range n.ChildNodes {
		children[i] = c
	}
	return children
}
