package editor

import "strings"

// FindPosition returns the index of the first line in lines that contains the
// selected argument. An empty argument matches the first line.
func (e *Engine) FindPosition(lines []string) (int, bool) {
	input := e.input()
	for i, line := range lines {
		if strings.Contains(line, input) {
			return i, true
		}
	}
	return 0, false
}

// Moves the viewport to the first line matching the selected argument.
func (e *Engine) track() {
	if i, ok := e.FindPosition(e.buffer); ok {
		e.pos = i
	}
}

// Next moves the viewport to the next line after the current position that
// contains the selected argument.
func (e *Engine) Next() {
	start := e.pos + 1
	if start >= len(e.buffer) {
		return
	}
	if i, ok := e.FindPosition(e.buffer[start:]); ok {
		e.pos = start + i
	}
}

// Prev moves the viewport to the nearest line before the current position that
// contains the selected argument.
func (e *Engine) Prev() {
	end := e.pos
	if end > len(e.buffer) {
		end = len(e.buffer)
	}
	reversed := make([]string, end)
	for i := 0; i < end; i++ {
		reversed[i] = e.buffer[end-1-i]
	}
	if i, ok := e.FindPosition(reversed); ok {
		e.pos = end - 1 - i
	}
}

// Up moves the viewport up one line.
func (e *Engine) Up() {
	if e.pos > 0 {
		e.pos--
	}
}

// Down moves the viewport down one line.
func (e *Engine) Down() {
	if e.pos < len(e.buffer) {
		e.pos++
	}
}

// Viewport returns the range of buffer lines shown. Near the end of the
// buffer, the range is pulled back so that it ends at the last line; it never
// starts before the first line.
func (e *Engine) Viewport() (start, end int) {
	n := len(e.buffer)
	if e.pos+e.size > n {
		start, end = n-e.size, n
	} else {
		start, end = e.pos, e.pos+e.size
	}
	if start < 0 {
		start = 0
	}
	return start, end
}
