// Package inspect resolves documentation queries against an ordered list of
// tag files.
package inspect

import (
	"context"
	"strings"

	"github.com/fwojciec/tagdoc"
)

// Ensure Engine implements tagdoc.Inspector at compile time.
var _ tagdoc.Inspector = (*Engine)(nil)

// Engine looks up documentation for expressions. It holds no state between
// calls: every lookup re-reads the manifest and re-parses every tag file.
type Engine struct {
	Sources tagdoc.SourceRegistry
	Indexes tagdoc.IndexLoader
	Types   tagdoc.TypeResolver
}

// Inspect extracts the expression from code and looks it up.
func (e *Engine) Inspect(ctx context.Context, code string) *tagdoc.Result {
	token := tagdoc.ExtractExpression(strings.TrimLeft(code, " \t"))
	return tagdoc.NewResult(e.Lookup(ctx, token))
}

// Lookup returns the documentation URL for token, or "" if none is found.
//
// Every source is searched even after a match, and a later match replaces
// an earlier one, so the last source in the manifest that documents the
// symbol wins.
func (e *Engine) Lookup(ctx context.Context, token string) string {
	if token == "" {
		return ""
	}
	if access, ok := tagdoc.SplitMemberAccess(token); ok {
		return e.lookupMember(ctx, access)
	}
	return e.lookupSymbol(ctx, token)
}

// lookupMember requires the receiver's type; there is no textual fallback.
func (e *Engine) lookupMember(ctx context.Context, access tagdoc.MemberAccess) string {
	typeName := e.Types.ResolveType(ctx, access.Receiver)
	if typeName == "" {
		return ""
	}
	return e.scan(ctx, func(index tagdoc.Index) string {
		pred := &tagdoc.MemberPredicate{ClassName: typeName, Kind: tagdoc.KindFunction, Name: access.Member}
		if index.FindFirst(pred.Match) == nil {
			return ""
		}
		entry, _ := pred.Entry()
		return entry.Anchor
	})
}

// lookupSymbol searches for the resolved type, or the token itself when
// the type is unknown (e.g. the token names a type rather than a value).
func (e *Engine) lookupSymbol(ctx context.Context, token string) string {
	key := e.Types.ResolveType(ctx, token)
	if key == "" {
		key = token
	}
	return e.scan(ctx, func(index tagdoc.Index) string {
		var anchor string
		for _, kind := range tagdoc.SymbolKinds {
			n := index.FindFirst(tagdoc.SymbolPredicate(kind, key))
			if n == nil {
				continue
			}
			anchor = lastMatch(anchor, tagdoc.NewIndexEntry(n).Anchor)
		}
		return anchor
	})
}

// scan folds match over every source in manifest order and returns the
// target of the last source whose index produced an anchor. Sources whose
// index cannot be loaded are skipped.
func (e *Engine) scan(ctx context.Context, match func(tagdoc.Index) string) string {
	sources, err := e.Sources.Sources(ctx)
	if err != nil {
		return ""
	}

	var target string
	for _, src := range sources {
		index, err := e.Indexes.LoadIndex(ctx, src.IndexPath)
		if err != nil {
			continue
		}
		if anchor := match(index); anchor != "" {
			target = lastMatch(target, src.Target(anchor))
		}
	}
	return target
}

// lastMatch is the fold step: a non-empty next value always replaces prev.
func lastMatch(prev, next string) string {
	if next == "" {
		return prev
	}
	return next
}
