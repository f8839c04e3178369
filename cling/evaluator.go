// Package cling implements tagdoc.Evaluator on top of the cling C++
// interpreter binary.
package cling

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/tagdoc"
)

// DefaultTimeout bounds a single Execute call.
const DefaultTimeout = 30 * time.Second

// OutputMarker is printed just before the fragment runs. Everything the
// interpreter writes to stdout after it belongs to the fragment.
const OutputMarker = "__tagdoc_output__"

var diagnosticRe = regexp.MustCompile(`(?m)\berror:`)

// Ensure Evaluator implements tagdoc.Evaluator at compile time.
var _ tagdoc.Evaluator = (*Evaluator)(nil)

// Evaluator runs code through a cling process.
//
// cling is started once per Execute. The session is kept by replaying
// every previously accepted declaration before the new fragment, so
// variables declared in one call are visible in later ones.
// Evaluator is safe for concurrent use; calls are serialized.
type Evaluator struct {
	path    string
	args    []string
	timeout time.Duration

	mu      sync.Mutex
	stdout  io.Writer
	stderr  io.Writer
	session []string
	pending string
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithArgs sets extra command line arguments, e.g. "-std=c++17" or include
// paths.
func WithArgs(args ...string) Option {
	return func(e *Evaluator) {
		e.args = append(e.args, args...)
	}
}

// WithTimeout sets the per-call timeout.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(e *Evaluator) {
		e.timeout = d
	}
}

// WithOutput sets the initial writers for fragment output and interpreter
// diagnostics. Both default to io.Discard.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Evaluator) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewEvaluator creates an Evaluator running the interpreter at path.
func NewEvaluator(path string, opts ...Option) *Evaluator {
	e := &Evaluator{
		path:    path,
		timeout: DefaultTimeout,
		stdout:  io.Discard,
		stderr:  io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs code after replaying the session. Input with unclosed
// braces is held back and joined with the next call.
func (e *Evaluator) Execute(ctx context.Context, code string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fragment := code
	if e.pending != "" {
		fragment = e.pending + "\n" + code
	}
	if braceDepth(fragment) > 0 {
		e.pending = fragment
		return "", tagdoc.Errorf(tagdoc.EINVALID, tagdoc.IncompleteInput)
	}
	e.pending = ""

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.path, e.args...)
	cmd.Stdin = strings.NewReader(e.script(fragment))
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	_, _ = e.stderr.Write(stderr.Bytes())

	if runErr != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return "", tagdoc.Errorf(tagdoc.EUNAVAILABLE, "running %s: %v", e.path, runErr)
		}
	}
	if runErr != nil || diagnosticRe.Match(stderr.Bytes()) {
		return "", tagdoc.Errorf(tagdoc.EINVALID, "evaluating %q: %s", fragment, firstDiagnostic(stderr.String()))
	}

	out := fragmentOutput(stdout.String())
	if out != "" {
		fmt.Fprintln(e.stdout, out)
	}
	if isDeclaration(fragment) && !e.hasDirective(fragment) {
		e.session = append(e.session, fragment)
	}
	return out, nil
}

// CancelContinuation drops input held back by an incomplete Execute.
func (e *Evaluator) CancelContinuation() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = ""
}

// SetOutput implements tagdoc.Evaluator.
func (e *Evaluator) SetOutput(stdout, stderr io.Writer) (io.Writer, io.Writer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	prevStdout, prevStderr := e.stdout, e.stderr
	e.stdout, e.stderr = stdout, stderr
	return prevStdout, prevStderr
}

// script builds the interpreter input: replayed session, the output
// marker, the fragment, and the quit command.
func (e *Evaluator) script(fragment string) string {
	var b strings.Builder
	b.WriteString("#include <cstdio>\n")
	for _, s := range e.session {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "std::printf(\"%%s\\n\", %q); std::fflush(stdout);\n", OutputMarker)
	b.WriteString(fragment)
	b.WriteString("\n.q\n")
	return b.String()
}

func (e *Evaluator) hasDirective(fragment string) bool {
	if !strings.HasPrefix(strings.TrimSpace(fragment), "#") {
		return false
	}
	for _, s := range e.session {
		if s == fragment {
			return true
		}
	}
	return false
}

// fragmentOutput returns stdout text written after the marker line.
func fragmentOutput(stdout string) string {
	i := strings.LastIndex(stdout, OutputMarker+"\n")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(stdout[i+len(OutputMarker)+1:])
}

func firstDiagnostic(stderr string) string {
	for _, line := range strings.Split(stderr, "\n") {
		if diagnosticRe.MatchString(line) {
			return strings.TrimSpace(line)
		}
	}
	return strings.TrimSpace(stderr)
}

// isDeclaration reports whether a fragment changes the session rather than
// just producing a value: statements, definitions and preprocessor lines.
func isDeclaration(fragment string) bool {
	s := strings.TrimSpace(fragment)
	return strings.HasPrefix(s, "#") ||
		strings.HasSuffix(s, ";") ||
		strings.HasSuffix(s, "}")
}

// braceDepth returns the number of '{' not yet closed, ignoring string and
// character literals and line comments.
func braceDepth(code string) int {
	depth := 0
	for i := 0; i < len(code); i++ {
		switch c := code[i]; c {
		case '{':
			depth++
		case '}':
			depth--
		case '"', '\'':
			for i++; i < len(code) && code[i] != c; i++ {
				if code[i] == '\\' {
					i++
				}
			}
		case '/':
			if i+1 < len(code) && code[i+1] == '/' {
				for i < len(code) && code[i] != '\n' {
					i++
				}
			}
		}
	}
	return depth
}
