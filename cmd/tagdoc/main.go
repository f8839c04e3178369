package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tagdoc"
	"github.com/fwojciec/tagdoc/cling"
	"github.com/fwojciec/tagdoc/etree"
	"github.com/fwojciec/tagdoc/fs"
	"github.com/fwojciec/tagdoc/inspect"
	tagslog "github.com/fwojciec/tagdoc/slog"
	"github.com/fwojciec/tagdoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin feeds the repl command. Defaults to os.Stdin.
	Stdin io.Reader

	// SQLite database used by the history service.
	DB *sqlite.DB

	// Evaluator overrides the interpreter for end-to-end testing.
	Evaluator tagdoc.Evaluator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tagdoc"),
		kong.Description("Look up C++ documentation pages in Doxygen tag files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tagdoc --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(cli.Verbose, stderr)

	root := cli.Root
	if root == "" {
		root = defaultRoot()
	}
	deps.Sources = tagslog.NewLoggingSourceRegistry(fs.NewSourceRegistry(root, cli.Manifest), logger)

	if cmd == "lookup" || cmd == "repl" {
		ev := m.Evaluator
		if ev == nil {
			ev = newEvaluator(cli, stdout, stderr)
		}
		deps.Evaluator = tagslog.NewLoggingEvaluator(ev, logger)

		engine := &inspect.Engine{
			Sources: deps.Sources,
			Indexes: tagslog.NewLoggingIndexLoader(etree.NewIndexLoader(), logger),
			Types:   tagslog.NewLoggingTypeResolver(inspect.NewTypeResolver(deps.Evaluator), logger),
		}
		deps.Inspector = tagslog.NewLoggingInspector(engine, logger)
	}

	if cmd != "sources" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			if cmd == "history" {
				fmt.Fprintf(stderr, "Hint: Set TAGDOC_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			// Lookups work without history.
			fmt.Fprintf(stderr, "warning: history disabled: %v\n", err)
			m.DB = nil
		} else {
			defer m.Close()
			deps.History = sqlite.NewHistoryService(m.DB)
		}
	}

	return kongCtx.Run(deps)
}

// newEvaluator returns the interpreter configured by the global flags.
func newEvaluator(cli *CLI, stdout, stderr io.Writer) tagdoc.Evaluator {
	if cli.NoEval {
		return tagdoc.NopEvaluator{}
	}
	return cling.NewEvaluator(cli.Cling,
		cling.WithArgs(cli.ClingArgs...),
		cling.WithTimeout(cli.Timeout),
		cling.WithOutput(stdout, stderr),
	)
}

func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("TAGDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tagdoc.db"
	}
	dir := filepath.Join(home, ".tagdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tagdoc.db")
}

func defaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tagfiles"
	}
	return filepath.Join(home, ".tagdoc", "tagfiles")
}
