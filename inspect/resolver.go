package inspect

import (
	"context"
	"regexp"
	"strings"

	"github.com/fwojciec/tagdoc"
	"github.com/ianlancetaylor/demangle"
	"golang.org/x/sync/semaphore"
)

// evaluatorSem serializes every type query in the process. Output
// suppression swaps the evaluator's writers, so two queries must never
// overlap.
var evaluatorSem = semaphore.NewWeighted(1)

var (
	quotedRe   = regexp.MustCompile(`"(.*)"`)
	typeNameRe = regexp.MustCompile(`\w+(?:::\w+)*`)
)

// typeinfoPrefix is how the demangler renders the _ZTS special name.
const typeinfoPrefix = "typeinfo name for "

// Ensure TypeResolver implements tagdoc.TypeResolver at compile time.
var _ tagdoc.TypeResolver = (*TypeResolver)(nil)

// TypeResolver asks an evaluator for the runtime type of expressions.
type TypeResolver struct {
	evaluator tagdoc.Evaluator
}

// NewTypeResolver creates a TypeResolver backed by ev.
func NewTypeResolver(ev tagdoc.Evaluator) *TypeResolver {
	return &TypeResolver{evaluator: ev}
}

// ResolveType evaluates typeid(expr).name() and returns the demangled,
// qualified type name without template arguments. It returns "" if the
// evaluation fails or prints no type name. Failures never propagate.
func (r *TypeResolver) ResolveType(ctx context.Context, expr string) string {
	if expr == "" {
		return ""
	}
	if err := evaluatorSem.Acquire(ctx, 1); err != nil {
		return ""
	}
	defer evaluatorSem.Release(1)

	// Setup is idempotent; failures surface in the query below.
	_, _ = r.evaluator.Execute(ctx, "#include <typeinfo>")

	printed, err := r.queryTypeID(ctx, expr)
	if err != nil {
		r.evaluator.CancelContinuation()
		return ""
	}
	return ParseTypeName(printed)
}

// queryTypeID runs the typeid query with the evaluator silenced.
func (r *TypeResolver) queryTypeID(ctx context.Context, expr string) (string, error) {
	guard := tagdoc.SuppressOutput(r.evaluator)
	defer guard.Release()
	return r.evaluator.Execute(ctx, "typeid("+expr+").name()")
}

// ParseTypeName extracts the type name from a printed typeid(...).name()
// value such as `(const char *) "N2ui6WidgetE"`. The quoted mangled name is
// demangled and the first "::"-qualified identifier run is returned, which
// drops template arguments and pointer, reference and array suffixes.
func ParseTypeName(printed string) string {
	m := quotedRe.FindStringSubmatch(printed)
	if m == nil {
		return ""
	}
	return typeNameRe.FindString(Demangle(m[1]))
}

// Demangle converts an Itanium ABI type encoding, as returned by
// std::type_info::name, to its source form. Names that fail to demangle
// are returned unchanged.
func Demangle(name string) string {
	if name == "" {
		return ""
	}
	s, err := demangle.ToString("_ZTS" + name)
	if err != nil || !strings.HasPrefix(s, typeinfoPrefix) {
		return name
	}
	return strings.TrimPrefix(s, typeinfoPrefix)
}
