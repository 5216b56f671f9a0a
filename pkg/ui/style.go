package ui

import "strings"

// Color is one of the 16 basic terminal colors.
type Color int

// Values for Color. The zero value means the terminal's default color.
const (
	Default Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
)

var colorSGR = [...]string{
	Black: "30", Red: "31", Green: "32", Yellow: "33", Blue: "34",
	Magenta: "35", Cyan: "36", White: "37", BrightBlack: "90",
}

// Style specifies how something (mostly a string) shall be displayed.
type Style struct {
	Foreground Color
	Bold       bool
	Dim        bool
	Underlined bool
	Inverse    bool
}

// SGR returns SGR sequence for the style.
func (s Style) SGR() string {
	var sgr []string

	addIf := func(b bool, code string) {
		if b {
			sgr = append(sgr, code)
		}
	}
	addIf(s.Bold, "1")
	addIf(s.Dim, "2")
	addIf(s.Underlined, "4")
	addIf(s.Inverse, "7")
	if s.Foreground != Default {
		sgr = append(sgr, colorSGR[s.Foreground])
	}

	return strings.Join(sgr, ";")
}

// Styling specifies how to change a Style.
type Styling func(*Style)

// Common stylings.
var (
	Bold       Styling = func(s *Style) { s.Bold = true }
	Dim        Styling = func(s *Style) { s.Dim = true }
	Underlined Styling = func(s *Style) { s.Underlined = true }
	Inverse    Styling = func(s *Style) { s.Inverse = true }

	FgRed         = fg(Red)
	FgGreen       = fg(Green)
	FgYellow      = fg(Yellow)
	FgWhite       = fg(White)
	FgBrightBlack = fg(BrightBlack)
)

func fg(c Color) Styling { return func(s *Style) { s.Foreground = c } }

// ApplyStyling returns a new Style with the given Styling's applied.
func ApplyStyling(s Style, ts ...Styling) Style {
	for _, t := range ts {
		if t != nil {
			t(&s)
		}
	}
	return s
}
