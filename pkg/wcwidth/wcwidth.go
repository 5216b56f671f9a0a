// Package wcwidth provides the display width of strings on a terminal.
package wcwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ambiguous-width runes are resolved once, from the locale at startup.
var condition = runewidth.NewCondition()

// OfRune returns the column width of a rune.
func OfRune(r rune) int {
	return condition.RuneWidth(r)
}

// Of returns the column width of a string.
func Of(s string) int {
	w := 0
	for _, r := range s {
		w += OfRune(r)
	}
	return w
}

// Trim trims the string s so that it uses at most given number of columns.
func Trim(s string, wmax int) string {
	if wmax <= 0 {
		return ""
	}
	w := 0
	for i, r := range s {
		w += OfRune(r)
		if w > wmax {
			return s[:i]
		}
	}
	return s
}

// TabWidth is the distance between tab stops.
const TabWidth = 8

// ExpandTabs replaces each tab in s with spaces up to the next tab stop, so
// that the width of the result is exactly what a terminal shows.
func ExpandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := TabWidth - col%TabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += OfRune(r)
	}
	return sb.String()
}
