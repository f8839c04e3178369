package tagdoc

import (
	"context"
	"strings"
)

// Result statuses reported to the session front end.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorInfo is the error part of a Result. Lookups never say why they
// failed, so every miss carries ErrNoDocumentation.
type ErrorInfo struct {
	EName     string   `json:"ename"`
	EValue    string   `json:"evalue"`
	Traceback []string `json:"traceback"`
}

// ErrNoDocumentation is the fixed marker returned for every miss. The
// values are placeholders required by the kernel reply format.
var ErrNoDocumentation = ErrorInfo{
	EName:     "ename",
	EValue:    "evalue",
	Traceback: []string{},
}

// Result is the outcome of a documentation query.
type Result struct {
	Found  bool   `json:"found"`
	Status string `json:"status"`

	// Target is the documentation URL, empty when not found.
	Target string `json:"target,omitempty"`

	// Data is a MIME bundle rendering of Target.
	Data map[string]string `json:"data,omitempty"`

	// ErrorInfo is set only when Found is false.
	*ErrorInfo
}

// NewResult builds the result for a navigation target. An empty target
// produces a not-found result.
func NewResult(target string) *Result {
	if target == "" {
		info := ErrNoDocumentation
		info.Traceback = []string{}
		return &Result{
			Found:     false,
			Status:    StatusError,
			ErrorInfo: &info,
		}
	}
	return &Result{
		Found:  true,
		Status: StatusOK,
		Target: target,
		Data: map[string]string{
			"text/plain": target,
			"text/html":  FormatPager(target),
		},
	}
}

// Inspector answers documentation queries.
type Inspector interface {
	// Inspect resolves the text following the query trigger to a
	// documentation page. It never fails; misses are reported in the Result.
	Inspect(ctx context.Context, code string) *Result
}

const pagerStyle = `<style>
#pager-container {
    padding: 0;
    margin: 0;
    width: 100%;
    height: 100%;
}
.tagdoc-iframe-pager {
    padding: 0;
    margin: 0;
    width: 100%;
    height: 100%;
    border: none;
}
</style>
`

// FormatPager renders target as an HTML snippet embedding the page in an
// iframe pager.
func FormatPager(target string) string {
	var b strings.Builder
	b.WriteString(pagerStyle)
	b.WriteString(`<iframe class="tagdoc-iframe-pager" src="`)
	b.WriteString(target)
	b.WriteString(`"></iframe>`)
	return b.String()
}
