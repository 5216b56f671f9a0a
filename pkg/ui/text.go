package ui

import (
	"fmt"
	"strings"
)

// Segment is a string that has some style applied to it.
type Segment struct {
	Style
	Text string
}

// Text contains of a list of styled Segments.
type Text []*Segment

// T constructs a new Text with the given content and the given Styling's
// applied.
func T(s string, ts ...Styling) Text {
	return Text{&Segment{ApplyStyling(Style{}, ts...), s}}
}

// Concat returns a new Text with the segments of t2 added to the end.
func (t Text) Concat(t2 Text) Text {
	newt := make(Text, 0, len(t)+len(t2))
	newt = append(newt, t...)
	return append(newt, t2...)
}

// String returns the concatenated text of all segments, without any styling.
func (t Text) String() string {
	var b strings.Builder
	for _, seg := range t {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// VTString renders the styled text using VT-style escape sequences.
func (t Text) VTString() string {
	var b strings.Builder
	for _, seg := range t {
		b.WriteString(seg.VTString())
	}
	return b.String()
}

// VTString renders the styled segment using VT-style escape sequences.
func (s *Segment) VTString() string {
	sgr := s.SGR()
	if sgr == "" {
		return s.Text
	}
	return fmt.Sprintf("\033[%sm%s\033[m", sgr, s.Text)
}
