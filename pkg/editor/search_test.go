package editor

import (
	"fmt"
	"testing"
)

var findLines = []string{
	"NAME",
	"  grep - print lines",
	"OPTIONS",
	"  -i, --ignore-case",
	"  -v, --invert-match",
	"  -i again",
}

func TestFindPosition(t *testing.T) {
	e := setup(t, Config{}, findLines...)
	if i, ok := e.FindPosition(e.Buffer()); i != 0 || !ok {
		t.Errorf("FindPosition of empty argument -> (%d, %v), want (0, true)", i, ok)
	}
	typeString(e, "-v")
	if i, ok := e.FindPosition(e.Buffer()); i != 4 || !ok {
		t.Errorf("FindPosition(-v) -> (%d, %v), want (4, true)", i, ok)
	}
	if e.Position() != 4 {
		t.Errorf("Insert did not track the match, position %d", e.Position())
	}
	typeString(e, "zzz")
	if _, ok := e.FindPosition(e.Buffer()); ok {
		t.Errorf("FindPosition(-vzzz) found a match")
	}
	if e.Position() != 4 {
		t.Errorf("position moved to %d without a match", e.Position())
	}
}

func TestNextPrev(t *testing.T) {
	e := setup(t, Config{}, findLines...)
	typeString(e, "-i")
	if e.Position() != 3 {
		t.Fatalf("got position %d, want 3", e.Position())
	}

	e.Next()
	if e.Position() != 5 {
		t.Errorf("Next -> %d, want 5", e.Position())
	}
	e.Next()
	if e.Position() != 5 {
		t.Errorf("Next without a later match -> %d, want 5", e.Position())
	}

	e.Prev()
	if e.Position() != 3 {
		t.Errorf("Prev -> %d, want 3", e.Position())
	}
	e.Prev()
	if e.Position() != 3 {
		t.Errorf("Prev without an earlier match -> %d, want 3", e.Position())
	}

	// The line right before the position is a candidate.
	e.pos = 4
	e.Prev()
	if e.Position() != 3 {
		t.Errorf("Prev from 4 -> %d, want 3", e.Position())
	}
}

func TestNextPrev_Bounds(t *testing.T) {
	e := setup(t, Config{}, findLines...)
	e.pos = len(findLines)
	e.Next()
	if e.Position() != len(findLines) {
		t.Errorf("Next at end -> %d", e.Position())
	}
	e.pos = 0
	e.Prev()
	if e.Position() != 0 {
		t.Errorf("Prev at start -> %d", e.Position())
	}
}

func TestUpDown(t *testing.T) {
	e := setup(t, Config{}, "a", "b")
	e.Up()
	if e.Position() != 0 {
		t.Errorf("Up at 0 -> %d", e.Position())
	}
	for i := 0; i < 5; i++ {
		e.Down()
	}
	if e.Position() != 2 {
		t.Errorf("Down clamps at buffer length, got %d", e.Position())
	}
}

var viewportTests = []struct {
	size, n, pos       int
	wantStart, wantEnd int
}{
	{10, 5, 0, 0, 5},
	{10, 5, 5, 0, 5},
	{2, 5, 0, 0, 2},
	{2, 5, 3, 3, 5},
	{2, 5, 4, 3, 5},
	{2, 5, 5, 3, 5},
	{1, 0, 0, 0, 0},
}

func TestViewport(t *testing.T) {
	for _, test := range viewportTests {
		t.Run(fmt.Sprintf("size=%d,n=%d,pos=%d", test.size, test.n, test.pos), func(t *testing.T) {
			lines := make([]string, test.n)
			for i := range lines {
				lines[i] = fmt.Sprint("line ", i)
			}
			e := setup(t, Config{Size: test.size}, lines...)
			e.pos = test.pos
			start, end := e.Viewport()
			if start != test.wantStart || end != test.wantEnd {
				t.Errorf("Viewport -> (%d, %d), want (%d, %d)",
					start, end, test.wantStart, test.wantEnd)
			}
		})
	}
}

func TestViewport_WithinBuffer(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e", "f", "g"}
	for size := 1; size <= 10; size++ {
		e := setup(t, Config{Size: size}, lines...)
		for i := 0; i <= len(lines)+1; i++ {
			start, end := e.Viewport()
			if e.Position() < 0 || e.Position() > len(lines) {
				t.Errorf("position %d out of range", e.Position())
			}
			if start < 0 || end > len(lines) || start > end {
				t.Errorf("size %d, position %d: viewport (%d, %d) out of range",
					size, e.Position(), start, end)
			}
			if size <= len(lines) && end-start != size {
				t.Errorf("size %d, position %d: viewport (%d, %d) has wrong size",
					size, e.Position(), start, end)
			}
			e.Down()
		}
	}
}
