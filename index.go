package tagdoc

import "context"

// Kind is the value of a tag file element's "kind" attribute.
type Kind string

// Entry kinds searched by lookups.
const (
	KindClass    Kind = "class"
	KindStruct   Kind = "struct"
	KindFunction Kind = "function"
)

// SymbolKinds lists the kinds tried for a plain symbol query, in order.
var SymbolKinds = []Kind{KindClass, KindStruct, KindFunction}

// Node is a read-only view of one element of a documentation index.
type Node interface {
	// Kind returns the element's kind attribute, or "" if absent.
	Kind() Kind

	// ChildText returns the text of the first child element with the
	// given tag, or "" if there is none.
	ChildText(tag string) string

	// Children returns the immediate child elements in document order.
	Children() []Node
}

// Predicate decides whether a node is the entry being searched for.
type Predicate func(Node) bool

// Index is one parsed documentation index (a Doxygen tag file).
type Index interface {
	// FindFirst walks the index depth-first in document order and returns
	// the first node accepted by pred, or nil.
	FindFirst(pred Predicate) Node
}

// IndexLoader parses documentation indexes from disk.
type IndexLoader interface {
	// LoadIndex parses the index at path.
	// Returns ENOTFOUND if the file does not exist and EINVALID if it
	// cannot be parsed.
	LoadIndex(ctx context.Context, path string) (Index, error)
}

// IndexEntry identifies a documented symbol and where its page lives.
type IndexEntry struct {
	Kind Kind
	Name string

	// OwningClass is set for members found through a MemberPredicate.
	OwningClass string

	// Anchor is appended to a source's base URL to reach the page.
	Anchor string
}

// NewIndexEntry builds the entry for a matched node. Classes and structs
// link to their "filename" page, everything else to its "anchorfile".
func NewIndexEntry(n Node) IndexEntry {
	entry := IndexEntry{
		Kind: n.Kind(),
		Name: n.ChildText("name"),
	}
	switch entry.Kind {
	case KindClass, KindStruct:
		entry.Anchor = n.ChildText("filename")
	default:
		entry.Anchor = n.ChildText("anchorfile")
	}
	return entry
}

// SymbolPredicate matches nodes of the given kind whose name equals name
// exactly.
func SymbolPredicate(kind Kind, name string) Predicate {
	return func(n Node) bool {
		return n.Kind() == kind && n.ChildText("name") == name
	}
}

// MemberPredicate matches a class or struct named ClassName that has an
// immediate child of kind Kind named Name. A class without that child is
// not a match. After a match, Entry returns the member's entry.
type MemberPredicate struct {
	ClassName string
	Kind      Kind
	Name      string

	member Node
}

// Match implements Predicate.
func (p *MemberPredicate) Match(n Node) bool {
	if k := n.Kind(); k != KindClass && k != KindStruct {
		return false
	}
	if n.ChildText("name") != p.ClassName {
		return false
	}
	for _, child := range n.Children() {
		if child.Kind() == p.Kind && child.ChildText("name") == p.Name {
			p.member = child
			return true
		}
	}
	return false
}

// Entry returns the member recorded by the last successful Match.
func (p *MemberPredicate) Entry() (IndexEntry, bool) {
	if p.member == nil {
		return IndexEntry{}, false
	}
	return IndexEntry{
		Kind:        p.Kind,
		Name:        p.Name,
		OwningClass: p.ClassName,
		Anchor:      p.member.ChildText("anchorfile"),
	}, true
}
