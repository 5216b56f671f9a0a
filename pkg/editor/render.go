package editor

import (
	"io"
	"strings"

	"src.manwith.dev/pkg/cli/term"
	"src.manwith.dev/pkg/ui"
	"src.manwith.dev/pkg/wcwidth"
)

const promptText = "> "

// Show redraws the input line and the reference lines beneath it, then
// places the cursor in the input line. Output is flushed once at the end.
func (e *Engine) Show(w term.Writer) error {
	e.sweep(w)
	if err := writeText(w, e.inputLine()); err != nil {
		return err
	}
	lines := e.viewLines()
	for _, line := range lines {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		w.Horizon(1)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	w.Up(len(lines))
	e.drawn = len(lines)

	col := e.cursorColumn()
	w.Horizon(col)
	if suffix, ok := e.ShowCandidate(); ok {
		if err := writeText(w, ui.T(suffix, ui.FgBrightBlack)); err != nil {
			return err
		}
		w.Horizon(col)
	}
	return w.Flush()
}

// Clears the input line and the reference lines drawn by the last Show,
// leaving the cursor at the start of the input line.
func (e *Engine) sweep(w term.Writer) {
	w.Horizon(1)
	w.ClearLine()
	for i := 0; i < e.drawn; i++ {
		w.Down(1)
		w.ClearLine()
	}
	w.Up(e.drawn)
}

// Clear erases everything drawn by Show.
func (e *Engine) Clear(w term.Writer) error {
	e.sweep(w)
	e.drawn = 0
	return w.Flush()
}

func (e *Engine) inputLine() ui.Text {
	full := append([]string{e.Command()}, e.args...)
	return ui.T(promptText, ui.Bold).Concat(
		ui.T(strings.Join(full, " "), ui.Bold, ui.FgWhite))
}

// Returns the 1-based column of the cursor in the input line.
func (e *Engine) cursorColumn() int {
	before := append([]string{e.Command()}, e.args[:e.selected]...)
	return wcwidth.Of(promptText) + wcwidth.Of(strings.Join(before, " ")) + 1 +
		wcwidth.Of(e.input()[:e.cursor]) + 1
}

// Returns the visible reference lines, truncated to the terminal width, with
// the line at the viewport position highlighted.
func (e *Engine) viewLines() []string {
	start, end := e.Viewport()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := wcwidth.ExpandTabs(e.buffer[i])
		if e.width > 0 {
			line = wcwidth.Trim(line, e.width)
		}
		if i == e.pos {
			line = e.highlight(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func (e *Engine) highlight(line string) string {
	if e.mode == Choose {
		return ui.T(line, ui.Inverse).VTString()
	}
	input := e.input()
	if input == "" {
		return line
	}
	return strings.ReplaceAll(line, input, ui.T(input, ui.FgRed).VTString())
}

func writeText(w io.Writer, t ui.Text) error {
	_, err := io.WriteString(w, t.VTString())
	return err
}
