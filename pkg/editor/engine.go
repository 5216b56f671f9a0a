// Package editor implements the prompt engine: the argument list being
// composed, the reference buffer shown beneath it and the viewport over that
// buffer.
//
// An Engine is not safe for concurrent use; it is owned by a single event
// loop.
package editor

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"src.manwith.dev/pkg/history"
	"src.manwith.dev/pkg/logutil"
	"src.manwith.dev/pkg/reference"
)

var logger = logutil.GetLogger("[editor] ")

// DefaultSize is the default number of reference lines shown.
const DefaultSize = 10

// Config keeps the configuration for an Engine.
type Config struct {
	// Number of reference lines shown. Defaults to DefaultSize.
	Size int
	// Terminal width. Reference lines are truncated to this width if it is
	// positive.
	Width int
	// Initial mode, one of Prompt, File and Choose.
	Mode Mode
	// Past invocations of the command, oldest first.
	Records []history.Record
}

// Engine keeps all the editable state.
type Engine struct {
	provider *reference.Provider

	args     []string
	selected int
	// Byte offset into args[selected], always on a codepoint boundary.
	cursor int

	// Raw lines of the active buffer, and the same lines decorated by the
	// provider.
	raw    []string
	buffer []string

	pos   int
	size  int
	width int

	mode Mode
	// Mode that History was entered from.
	prevMode Mode

	hist *history.Cursor
	// Arguments being edited when History was entered, restored when history
	// is exhausted.
	draft         []string
	draftSelected int

	completion    string
	hasCompletion bool

	// Number of reference lines drawn by the last call to Show.
	drawn int
}

// New creates an Engine for the command of provider, loading the buffer of
// the initial mode.
func New(ctx context.Context, provider *reference.Provider, cfg Config) (*Engine, error) {
	size := cfg.Size
	if size <= 0 {
		size = DefaultSize
	}
	if cfg.Mode == History {
		return nil, fmt.Errorf("%w: can't start in %v mode", ErrIllegalTransition, cfg.Mode)
	}
	e := &Engine{
		provider: provider,
		args:     []string{""},
		size:     size,
		width:    cfg.Width,
		mode:     cfg.Mode,
		prevMode: cfg.Mode,
		hist:     history.NewCursor(cfg.Records),
	}
	raw, err := e.load(ctx, cfg.Mode)
	if err != nil {
		return nil, err
	}
	e.setBuffer(raw)
	logger.Printf("engine for %s: mode %v, size %d, %d history records",
		provider.Command(), cfg.Mode, size, len(cfg.Records))
	return e, nil
}

// Command returns the command being composed.
func (e *Engine) Command() string { return e.provider.Command() }

// Args returns a copy of the argument list.
func (e *Engine) Args() []string { return append([]string(nil), e.args...) }

// Selected returns the index of the argument being edited.
func (e *Engine) Selected() int { return e.selected }

// Cursor returns the byte offset of the cursor in the selected argument.
func (e *Engine) Cursor() int { return e.cursor }

// Mode returns the current mode.
func (e *Engine) Mode() Mode { return e.mode }

// PrevMode returns the mode History was entered from. It is only meaningful
// in History mode.
func (e *Engine) PrevMode() Mode { return e.prevMode }

// Position returns the viewport position.
func (e *Engine) Position() int { return e.pos }

// Size returns the viewport size.
func (e *Engine) Size() int { return e.size }

// Buffer returns the decorated lines of the active buffer.
func (e *Engine) Buffer() []string { return e.buffer }

// IsLast reports whether the selected argument is the last one.
func (e *Engine) IsLast() bool { return e.selected == len(e.args)-1 }

// Result returns the command and its non-empty arguments.
func (e *Engine) Result() (string, []string) {
	var args []string
	for _, arg := range e.args {
		if arg != "" {
			args = append(args, arg)
		}
	}
	return e.Command(), args
}

func (e *Engine) input() string { return e.args[e.selected] }

func (e *Engine) clearCompletion() {
	e.completion, e.hasCompletion = "", false
}

// Insert inserts r at the cursor and moves the viewport to the first line
// matching the selected argument.
func (e *Engine) Insert(r rune) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	s := e.input()
	e.args[e.selected] = s[:e.cursor] + string(r) + s[e.cursor:]
	e.cursor += utf8.RuneLen(r)
	e.clearCompletion()
	e.track()
}

// Backspace removes the codepoint before the cursor.
func (e *Engine) Backspace() {
	if e.cursor == 0 {
		return
	}
	s := e.input()
	_, n := utf8.DecodeLastRuneInString(s[:e.cursor])
	e.args[e.selected] = s[:e.cursor-n] + s[e.cursor:]
	e.cursor -= n
	e.clearCompletion()
	e.track()
}

// Delete removes the codepoint at the cursor.
func (e *Engine) Delete() {
	s := e.input()
	if e.cursor >= len(s) {
		return
	}
	_, n := utf8.DecodeRuneInString(s[e.cursor:])
	e.args[e.selected] = s[:e.cursor] + s[e.cursor+n:]
	e.clearCompletion()
	e.track()
}

// Append finishes the selected argument and starts editing the next one,
// adding an empty argument if the selected one is the last.
func (e *Engine) Append() {
	if e.IsLast() {
		e.args = append(e.args, "")
	}
	e.selected++
	e.cursor = 0
	e.clearCompletion()
}

// ReplaceSelected replaces the text of the selected argument and moves the
// cursor to its end.
func (e *Engine) ReplaceSelected(s string) {
	e.args[e.selected] = s
	e.cursor = len(s)
	e.clearCompletion()
}

// SelectBack selects the previous argument.
func (e *Engine) SelectBack() {
	if e.selected > 0 {
		e.selected--
		e.cursor = 0
		e.clearCompletion()
	}
}

// SelectForward selects the next argument.
func (e *Engine) SelectForward() {
	if e.selected < len(e.args)-1 {
		e.selected++
		e.cursor = 0
		e.clearCompletion()
	}
}

// CursorForward moves the cursor forward by one codepoint.
func (e *Engine) CursorForward() {
	s := e.input()
	if e.cursor < len(s) {
		_, n := utf8.DecodeRuneInString(s[e.cursor:])
		e.cursor += n
		e.clearCompletion()
	}
}

// CursorBack moves the cursor back by one codepoint.
func (e *Engine) CursorBack() {
	if e.cursor > 0 {
		_, n := utf8.DecodeLastRuneInString(e.input()[:e.cursor])
		e.cursor -= n
		e.clearCompletion()
	}
}

// BeginningOfLine selects the first argument.
func (e *Engine) BeginningOfLine() {
	e.selected = 0
	e.cursor = 0
	e.clearCompletion()
}

// EndOfLine selects the last argument and moves the cursor to its end.
func (e *Engine) EndOfLine() {
	e.selected = len(e.args) - 1
	e.cursor = len(e.input())
	e.clearCompletion()
}

// IncrSize shows one more reference line.
func (e *Engine) IncrSize() { e.size++ }

// DecrSize shows one less reference line, keeping at least one.
func (e *Engine) DecrSize() {
	if e.size > 1 {
		e.size--
	}
}

// SetWidth sets the terminal width used to truncate reference lines.
func (e *Engine) SetWidth(w int) { e.width = w }

// ToggleLineNumbers switches between plain and line-numbered reference lines.
func (e *Engine) ToggleLineNumbers() {
	e.provider.ToggleDecoration(reference.LineNumber)
	e.buffer = e.provider.Decorate(e.raw)
}

// InsertLine appends a line read from standard input. It is shown
// immediately if the original reference is the active buffer.
func (e *Engine) InsertLine(line string) {
	e.provider.AppendStdin(line)
	if !e.showsOriginal() || e.provider.Kind() != reference.Stdin {
		return
	}
	e.raw = append(e.raw, line)
	if e.provider.Decoration() == reference.LineNumber {
		e.buffer = append(e.buffer, reference.NumberLine(len(e.raw), line))
	} else {
		e.buffer = e.raw
	}
}

func (e *Engine) showsOriginal() bool {
	return e.mode == Prompt || (e.mode == History && e.prevMode == Prompt)
}

// CurrentLine returns the undecorated buffer line at the viewport position.
func (e *Engine) CurrentLine() (string, bool) {
	if e.pos < 0 || e.pos >= len(e.raw) {
		return "", false
	}
	return e.raw[e.pos], true
}

// SetMode switches to the given mode, loading its buffer. History is entered
// with HistoryBack and left with AcceptHistory.
func (e *Engine) SetMode(ctx context.Context, m Mode) error {
	if m == History || e.mode == History || !CanTransition(e.mode, m, e.prevMode) {
		return fmt.Errorf("%w: %v to %v", ErrIllegalTransition, e.mode, m)
	}
	raw, err := e.load(ctx, m)
	if err != nil {
		return err
	}
	logger.Printf("mode %v -> %v", e.mode, m)
	e.mode = m
	e.prevMode = m
	e.setBuffer(raw)
	e.pos = 0
	return nil
}

// Pick switches to the mode of the option at the viewport position. It is
// only valid in Choose mode.
func (e *Engine) Pick(ctx context.Context) error {
	if e.mode != Choose {
		return fmt.Errorf("%w: pick in %v mode", ErrIllegalTransition, e.mode)
	}
	if e.pos >= len(chooseModes) {
		return nil
	}
	return e.SetMode(ctx, chooseModes[e.pos])
}

// Modes of the options shown in Choose mode.
var chooseModes = []Mode{Prompt, File}

func (e *Engine) chooseOptions() []string {
	return []string{e.provider.Kind().String(), "file"}
}

func (e *Engine) load(ctx context.Context, m Mode) ([]string, error) {
	switch m {
	case Prompt:
		return e.provider.Original(ctx)
	case File:
		return e.provider.Listing(ctx)
	case Choose:
		return e.chooseOptions(), nil
	default:
		return nil, fmt.Errorf("%w: no buffer for %v mode", ErrIllegalTransition, m)
	}
}

func (e *Engine) setBuffer(raw []string) {
	e.raw = raw
	e.buffer = e.provider.Decorate(raw)
}

// HistoryBack replays the previous past invocation, entering History mode if
// needed. When history is exhausted, the arguments that were being edited are
// restored and the previous mode is resumed.
func (e *Engine) HistoryBack() error {
	if e.mode != History {
		if !CanTransition(e.mode, History, e.prevMode) {
			return fmt.Errorf("%w: %v to %v", ErrIllegalTransition, e.mode, History)
		}
		logger.Printf("mode %v -> %v", e.mode, History)
		e.draft, e.draftSelected = e.Args(), e.selected
		e.prevMode = e.mode
		e.mode = History
	}
	args, err := e.hist.Prev()
	if errors.Is(err, history.ErrEndOfHistory) {
		logger.Println("history exhausted")
		e.args, e.selected = e.draft, e.draftSelected
		e.cursor = 0
		e.clearCompletion()
		e.leaveHistory()
		return nil
	}
	e.args = args
	e.selected = len(args) - 1
	e.cursor = 0
	e.clearCompletion()
	return nil
}

// AcceptHistory keeps the replayed arguments and resumes the mode History was
// entered from.
func (e *Engine) AcceptHistory() {
	if e.mode == History {
		e.leaveHistory()
	}
}

func (e *Engine) leaveHistory() {
	logger.Printf("mode %v -> %v", e.mode, e.prevMode)
	e.mode = e.prevMode
	e.draft = nil
	e.hist.Reset()
}
