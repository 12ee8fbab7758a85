package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	_ "time/tzdata" // timezone reads work without a system zoneinfo

	"github.com/alecthomas/kong"

	"github.com/mcncl/gojj/internal/access"
	"github.com/mcncl/gojj/internal/archive"
	"github.com/mcncl/gojj/internal/config"
	"github.com/mcncl/gojj/internal/errors"
	"github.com/mcncl/gojj/internal/formatter"
	"github.com/mcncl/gojj/internal/inventory"
	"github.com/mcncl/gojj/internal/parser"
	"github.com/mcncl/gojj/internal/query"
	"github.com/mcncl/gojj/pkg/jj"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Config      string `help:"Path to config file. If not specified, searches for .gojj.yml in current and parent directories." short:"c" type:"path"`
	Format      string `help:"Output format for print: pretty, json or yaml." short:"f"`
	Indent      int    `help:"Indent width for print output." default:"-1"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`

	Print   PrintCmd   `cmd:"" default:"withargs" help:"Print the document or the value at a path (default)."`
	Get     GetCmd     `cmd:"" help:"Read the value at a path as a typed value."`
	Paths   PathsCmd   `cmd:"" help:"List every leaf path with its kind, accessor and Go name."`
	Extract ExtractCmd `cmd:"" help:"Copy values at paths into a YAML archive."`
}

// Context holds the runtime context shared by all commands
type Context struct {
	Config      *config.Config
	Logger      *slog.Logger
	Input       string
	Interactive bool
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	cli := kong.Must(&CLI,
		kong.Name("gojj"),
		kong.Description("Navigate JSON documents with path-tracked, type-coercing access"),
		kong.UsageOnError(),
	)

	ctx, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gojj: %v\n", err)
		os.Exit(1)
	}

	// Without arguments, read a pasted document
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if CLI.Version {
		fmt.Printf("gojj version %s\n", Version)
		return
	}

	appCtx, err := newContext(os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: gojj --help\n")
		os.Exit(1)
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// newContext resolves configuration and logging from the global flags
func newContext(stdin io.Reader, stdout, stderr io.Writer) (*Context, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Format, CLI.Indent, CLI.Debug)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to load configuration: %v", err), err)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	if configPath != "" {
		logger.Debug("loaded config file", "path", configPath)
	}

	return &Context{
		Config:      cfg,
		Logger:      logger,
		Input:       CLI.Input,
		Interactive: CLI.Interactive,
		Stdin:       stdin,
		Stdout:      stdout,
		Stderr:      stderr,
	}, nil
}

// jjOptions returns the navigation options implied by the configuration
func (c *Context) jjOptions() []jj.Option {
	if c.Config.Logging.WarnDeprecated {
		return []jj.Option{jj.WithLogger(c.Logger)}
	}
	return nil
}

// compile parses a path expression and traces the result
func (c *Context) compile(expr string) (*query.Query, error) {
	q, err := query.Compile(expr)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("compiled path expression", "expr", expr, "canonical", q.String(), "steps", len(q.Steps))
	return q, nil
}

// PrintCmd renders the document, or the value an expression selects
type PrintCmd struct {
	Expr string `arg:"" optional:"" help:"Path expression, e.g. .users[0].name"`
}

func (p *PrintCmd) Run(ctx *Context) error {
	doc, err := parseInput(ctx)
	if err != nil {
		return err
	}

	v := doc.Value(ctx.jjOptions()...)
	if p.Expr != "" {
		q, err := ctx.compile(p.Expr)
		if err != nil {
			return err
		}
		v = q.Apply(v)
	}

	text, err := formatter.NewFormatterWithConfig(ctx.Config).Format(v)
	if err != nil {
		return err
	}
	return writeOutput(ctx, text)
}

// GetCmd performs one typed read
type GetCmd struct {
	Expr    string `arg:"" help:"Path expression, e.g. .users[0].age"`
	As      string `help:"Target type: any, bool, int, uint, number, float, double, string, date, url, uuid, timezone, object, array." short:"a" default:"any"`
	Mode    string `help:"Access mode: strict fails on mismatch, optional prints nil, default falls back to --default." short:"m" default:"strict"`
	Default string `help:"Fallback value used in default mode." name:"default"`
	Archive string `help:"Read from a YAML archive instead of JSON input; the first path key names the entry." type:"path"`
}

func (g *GetCmd) Run(ctx *Context) error {
	mode, err := access.ParseMode(g.Mode)
	if err != nil {
		return err
	}
	q, err := ctx.compile(g.Expr)
	if err != nil {
		return err
	}

	var v jj.Value
	if g.Archive != "" {
		v, err = g.fromArchive(ctx, q)
	} else {
		var doc parser.Document
		doc, err = parseInput(ctx)
		v = q.Apply(doc.Value(ctx.jjOptions()...))
	}
	if err != nil {
		return err
	}

	text, err := access.Read(v, g.As, mode, g.Default)
	if err != nil {
		return err
	}
	return writeOutput(ctx, text)
}

func (g *GetCmd) fromArchive(ctx *Context, q *query.Query) (jj.Value, error) {
	first, ok := q.First()
	if !ok || first.IsIndex {
		return jj.Value{}, errors.NewQueryError("an archive lookup must start with a key", errors.ErrInvalidQuery)
	}
	store, err := archive.Open(g.Archive)
	if err != nil {
		return jj.Value{}, err
	}
	ctx.Logger.Debug("reading archive", "path", store.Path(), "key", first.Key)
	return q.Rest().Apply(store.Decoder(ctx.jjOptions()...).At(first.Key)), nil
}

// PathsCmd lists document leaves
type PathsCmd struct{}

func (p *PathsCmd) Run(ctx *Context) error {
	doc, err := parseInput(ctx)
	if err != nil {
		return err
	}

	entries := inventory.NewInventoryWithConfig(ctx.Config).Walk(doc.Value())

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PATH\tKIND\tACCESSOR\tGO NAME")
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Expr, e.Kind, e.Accessor, e.GoName)
	}
	if err := tw.Flush(); err != nil {
		return errors.NewOutputError("failed to render path listing", err)
	}
	return writeOutput(ctx, b.String())
}

// ExtractCmd copies selected values into an archive file
type ExtractCmd struct {
	Exprs  []string `arg:"" help:"Path expressions, optionally named as key=expr."`
	Output string   `help:"Archive file to write; existing entries are kept." short:"o" required:"" type:"path"`
}

func (e *ExtractCmd) Run(ctx *Context) error {
	doc, err := parseInput(ctx)
	if err != nil {
		return err
	}
	root := doc.Value(ctx.jjOptions()...)

	store, err := archive.Open(e.Output)
	if err != nil {
		return err
	}
	enc := store.Encoder()

	for _, arg := range e.Exprs {
		key, expr := splitAlias(arg)
		q, err := ctx.compile(expr)
		if err != nil {
			return err
		}
		if key == "" {
			key = lastKey(q)
		}
		if key == "" {
			return errors.NewQueryError(
				fmt.Sprintf("cannot name archive entry for '%s'; use key=%s", expr, expr),
				errors.ErrInvalidQuery,
			)
		}

		v, err := q.Apply(root).Required()
		if err != nil {
			return errors.NewAccessError(fmt.Sprintf("nothing to extract for '%s'", expr), err)
		}
		enc.Put(key, v.Raw())
		ctx.Logger.Debug("extracted value", "key", key, "path", v.Path())
	}

	if err := store.Save(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ctx.Stderr, "Wrote %d values to %s\n", len(e.Exprs), store.Path())
	return nil
}

// splitAlias separates "key=expr"; the key must not look like a path.
func splitAlias(arg string) (string, string) {
	key, expr, found := strings.Cut(arg, "=")
	if !found || key == "" || strings.ContainsAny(key, `.["`) {
		return "", arg
	}
	return key, expr
}

func lastKey(q *query.Query) string {
	for i := len(q.Steps) - 1; i >= 0; i-- {
		if !q.Steps[i].IsIndex {
			return q.Steps[i].Key
		}
	}
	return ""
}

// parseInput reads JSON from file or stdin
func parseInput(ctx *Context) (parser.Document, error) {
	if ctx.Input != "" {
		ctx.Logger.Debug("reading input", "source", ctx.Input)
		return parser.ParseFile(ctx.Input)
	}

	// A terminal on stdin means nothing was piped in
	if f, ok := ctx.Stdin.(*os.File); ok {
		stdinInfo, err := f.Stat()
		if err != nil {
			return parser.Document{}, errors.NewInputError("failed to access stdin", err)
		}
		if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
			if ctx.Interactive {
				return readInteractiveInput(ctx)
			}
			return parser.Document{}, errors.NewInputError("no input provided", errors.ErrNoInput)
		}
	}

	ctx.Logger.Debug("reading input", "source", "stdin")
	jsonData, err := io.ReadAll(ctx.Stdin)
	if err != nil {
		return parser.Document{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return parser.Document{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes text and a trailing newline to stdout
func writeOutput(ctx *Context, text string) error {
	_, err := fmt.Fprintln(ctx.Stdout, strings.TrimRight(text, "\n"))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(ctx *Context) (parser.Document, error) {
	fmt.Fprintln(ctx.Stderr, "gojj Interactive Mode")
	fmt.Fprintln(ctx.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(ctx.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		jsonBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return parser.Document{}, errors.NewInputError("error reading input", err)
		}
	}

	jsonData := jsonBuilder.String()
	if strings.TrimSpace(jsonData) == "" {
		return parser.Document{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(ctx.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
