package term

import (
	"bytes"
	"fmt"
	"io"
)

// Writer represents the output to a terminal. It only knows relative
// vertical motion, absolute horizontal motion and clearing the current line;
// everything written between two calls to Flush reaches the terminal in a
// single write.
type Writer interface {
	io.Writer
	// Horizon moves the cursor to the given 1-based column of the current line.
	Horizon(col int)
	// Up moves the cursor up n lines. It is a no-op if n <= 0.
	Up(n int)
	// Down moves the cursor down n lines. It is a no-op if n <= 0.
	Down(n int)
	// ClearLine clears the current line.
	ClearLine()
	// Flush writes all buffered output to the terminal.
	Flush() error
}

// writer buffers VT100 sequences and text.
type writer struct {
	file io.Writer
	buf  bytes.Buffer
}

// NewWriter returns a Writer that writes VT100 sequences to the given io.Writer.
func NewWriter(f io.Writer) Writer {
	return &writer{file: f}
}

func (w *writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *writer) Horizon(col int) {
	if col < 1 {
		col = 1
	}
	fmt.Fprintf(&w.buf, "\033[%dG", col)
}

func (w *writer) Up(n int) {
	if n > 0 {
		fmt.Fprintf(&w.buf, "\033[%dA", n)
	}
}

func (w *writer) Down(n int) {
	if n > 0 {
		fmt.Fprintf(&w.buf, "\033[%dB", n)
	}
}

func (w *writer) ClearLine() {
	w.buf.WriteString("\033[2K")
}

func (w *writer) Flush() error {
	if w.buf.Len() == 0 {
		return nil
	}
	_, err := w.file.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
