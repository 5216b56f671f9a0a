// Package reference produces the text shown beneath the input line: the
// manual page or help output of a command, lines piped to standard input, or a
// recursive listing of the filesystem.
package reference

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"src.manwith.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[reference] ")

// SourceKind identifies where reference text comes from.
type SourceKind int

// Possible values for SourceKind.
const (
	Man SourceKind = iota
	Help
	Stdin
	File
)

var sourceKindNames = [...]string{Man: "man", Help: "help", Stdin: "stdin", File: "file"}

func (k SourceKind) String() string {
	if 0 <= k && int(k) < len(sourceKindNames) {
		return sourceKindNames[k]
	}
	return "SourceKind(" + strconv.Itoa(int(k)) + ")"
}

// ParseSourceKind parses the name of a source kind.
func ParseSourceKind(s string) (SourceKind, error) {
	for k, name := range sourceKindNames {
		if s == name {
			return SourceKind(k), nil
		}
	}
	return 0, fmt.Errorf("bad source kind: %q", s)
}

// Decoration is how reference lines are displayed.
type Decoration int

// Possible values for Decoration.
const (
	Normal Decoration = iota
	LineNumber
)

// Invoker runs the external programs that produce reference text.
type Invoker interface {
	// Man returns the formatted manual page of command.
	Man(ctx context.Context, command string) (string, error)
	// Help returns the output of running command with --help.
	Help(ctx context.Context, command string) (string, error)
}

// Provider produces reference lines for a single command.
type Provider struct {
	command    string
	kind       SourceKind
	root       string
	invoker    Invoker
	decoration Decoration
	stdin      []string
}

// Config keeps the configuration for a Provider.
type Config struct {
	// Source of the original reference text. The File kind is always
	// available through Listing.
	Kind SourceKind
	// Root of the filesystem listing. Defaults to the working directory.
	Root string
	// Invoker used for the Man and Help kinds. Defaults to ExecInvoker.
	Invoker Invoker
	// Initial decoration.
	Decoration Decoration
}

// New creates a Provider for command.
func New(command string, cfg Config) *Provider {
	inv := cfg.Invoker
	if inv == nil {
		inv = ExecInvoker{}
	}
	return &Provider{command: command, kind: cfg.Kind, root: cfg.Root,
		invoker: inv, decoration: cfg.Decoration}
}

// Command returns the command whose reference is provided.
func (p *Provider) Command() string { return p.command }

// Kind returns the kind of the original reference source.
func (p *Provider) Kind() SourceKind { return p.kind }

// Original returns the raw lines of the original reference source. For the
// Stdin kind, these are the lines accumulated so far.
func (p *Provider) Original(ctx context.Context) ([]string, error) {
	return p.lines(ctx, p.kind)
}

// Listing returns the raw lines of the recursive filesystem listing.
func (p *Provider) Listing(ctx context.Context) ([]string, error) {
	return p.lines(ctx, File)
}

func (p *Provider) lines(ctx context.Context, kind SourceKind) ([]string, error) {
	var text string
	var err error
	switch kind {
	case Man:
		text, err = p.invoker.Man(ctx, p.command)
	case Help:
		text, err = p.invoker.Help(ctx, p.command)
	case Stdin:
		return append([]string(nil), p.stdin...), nil
	case File:
		text, err = ListFiles(p.root)
	default:
		return nil, fmt.Errorf("bad source kind: %v", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("can't read %v reference of %s: %w", kind, p.command, err)
	}
	lines := SplitLines(text)
	logger.Printf("read %d lines of %v reference of %s", len(lines), kind, p.command)
	return lines, nil
}

// AppendStdin records a line read from standard input, so that it survives
// rebuilds of the buffer.
func (p *Provider) AppendStdin(line string) {
	p.stdin = append(p.stdin, line)
}

// Decoration returns the current decoration.
func (p *Provider) Decoration() Decoration { return p.decoration }

// ToggleDecoration switches to d, or back to Normal if d is already in use.
func (p *Provider) ToggleDecoration(d Decoration) {
	if p.decoration == d {
		p.decoration = Normal
	} else {
		p.decoration = d
	}
}

// Decorate returns the lines as they should be displayed. The argument is not
// modified.
func (p *Provider) Decorate(lines []string) []string {
	return Decorate(p.decoration, lines)
}

// NumberLine prefixes line with its 1-based number n.
func NumberLine(n int, line string) string {
	return strconv.Itoa(n) + " " + line
}

// Decorate applies a decoration to lines.
func Decorate(d Decoration, lines []string) []string {
	if d != LineNumber {
		return lines
	}
	decorated := make([]string, len(lines))
	for i, line := range lines {
		decorated[i] = NumberLine(i+1, line)
	}
	return decorated
}

// SplitLines splits text into lines. A single trailing newline does not start
// a new line, and invalid UTF-8 is replaced with U+FFFD.
func SplitLines(text string) []string {
	text = strings.ToValidUTF8(text, "�")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
