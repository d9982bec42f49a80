package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdtok"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/mdtok")
}

func main() {
	var (
		format       string
		widthFlag    int
		outPath      string
		colorFlag    string
		overflowFlag string
		inline       bool
		orderedLists bool
		keepTrailing bool
		frontMatter  bool
		validate     bool
		traceLevel   string
		showVersion  bool
	)

	flags := pflag.NewFlagSet("mdtok", pflag.ExitOnError)
	flags.StringVarP(&format, "format", "f", "text", "Output format: text|json|markdown")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Truncate text output to this width (0 uses terminal width if available)")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&colorFlag, "color", "c", "auto", "Colored text output: auto|on|off")
	flags.StringVar(&overflowFlag, "header-overflow", "text", "Runs of more than six '#': text|skip|fail")
	flags.BoolVar(&inline, "inline", false, "Split text into inline-style markers")
	flags.BoolVar(&orderedLists, "ordered-lists", false, "Recognize \"1. item\" lines")
	flags.BoolVar(&keepTrailing, "preserve-trailing-space", false, "Keep trailing whitespace in text payloads")
	flags.BoolVar(&frontMatter, "front-matter", true, "Strip a leading front-matter block")
	flags.BoolVar(&validate, "validate", true, "Reject invalid UTF-8 and binary input")
	flags.StringVar(&traceLevel, "trace", "error", "Tracing level: error|info|debug")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdtok [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	policy, err := mdtok.ParseOverflowPolicy(overflowFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --header-overflow: %v\n", err)
		os.Exit(2)
	}
	trace := gologadapter.New()
	if err := setTraceLevel(trace, traceLevel); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --trace %q: %v\n", traceLevel, err)
		os.Exit(2)
	}
	switch format {
	case "text", "json", "markdown":
	default:
		fmt.Fprintf(os.Stderr, "invalid --format %q: expected text|json|markdown\n", format)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	in := inputLoader{
		ctx:              ctx,
		stdin:            os.Stdin,
		stripFrontMatter: frontMatter,
		validate:         validate,
	}
	src, err := in.load(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := createOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	// Validation and front matter were handled per input.
	tokens, err := mdtok.Tokenize(mdtok.TokenizeRequest{
		Reader: bytes.NewReader(src),
		Options: []mdtok.Option{
			mdtok.WithHeaderOverflow(policy),
			mdtok.WithInlineStyles(inline),
			mdtok.WithOrderedLists(orderedLists),
			mdtok.WithPreserveTrailingSpace(keepTrailing),
			mdtok.WithTracer(trace),
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	color, err := colorEnabled(colorFlag, writer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --color %q: %v\n", colorFlag, err)
		os.Exit(2)
	}
	if err := writeOutput(writer, tokens, format, dumpWidth(widthFlag, writer), color); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
}

func writeOutput(w io.Writer, tokens []mdtok.Token, format string, width int, color bool) error {
	switch format {
	case "json":
		data, err := mdtok.MarshalTokensJSON(tokens)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "markdown":
		_, err := io.WriteString(w, mdtok.Reconstruct(tokens))
		return err
	}
	opts := mdtok.DumpOptions{Width: width}
	if color {
		styles := mdtok.DefaultStyles()
		opts.Styles = &styles
	}
	return mdtok.WriteTokens(w, tokens, opts)
}

func setTraceLevel(t tracing.Trace, name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "error":
		t.SetTraceLevel(tracing.LevelError)
	case "info":
		t.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		t.SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("expected error|info|debug")
	}
	return nil
}

// dumpWidth picks the truncation width. Output that is not a terminal is
// only truncated when a width is given explicitly.
func dumpWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	fd, ok := terminalFd(w)
	if !ok {
		return 0
	}
	if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
		return cols
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return defaultWidth
}

// colorEnabled resolves --color. In auto mode color needs a terminal and
// is off under NO_COLOR or TERM=dumb.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
			return false, nil
		}
		_, ok := terminalFd(w)
		return ok, nil
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	}
	return false, fmt.Errorf("expected auto|on|off")
}

func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	return int(f.Fd()), true
}

// inputLoader reads the command's inputs one by one. Each input is
// validated and loses its front matter on its own before the inputs are
// joined, so every input starts on a fresh line.
type inputLoader struct {
	ctx              context.Context
	client           *http.Client
	stdin            io.Reader
	stripFrontMatter bool
	validate         bool
}

// load returns the joined inputs; no arguments means stdin.
func (l inputLoader) load(args []string) ([]byte, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	docs := make([][]byte, 0, len(args))
	for _, arg := range args {
		name := strings.TrimSpace(arg)
		src, err := l.read(name)
		if err != nil {
			return nil, err
		}
		if src, err = mdtok.PrepareSource(src, l.stripFrontMatter, l.validate); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		docs = append(docs, src)
	}
	return mdtok.JoinSources(docs...), nil
}

func (l inputLoader) read(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	if name == "-" {
		return io.ReadAll(l.stdin)
	}
	if u, err := url.Parse(name); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return mdtok.FetchURL(l.ctx, l.client, name)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			return os.ReadFile(expandHome(path))
		}
	}
	return os.ReadFile(expandHome(name))
}

// createOutput opens the -o target, creating parent directories; an empty
// path means stdout.
func createOutput(path string) (io.Writer, io.Closer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stdout, nil, nil
	}
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
