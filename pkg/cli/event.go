package cli

import "fmt"

// Event is an input event handled by the App. The set of implementations is
// closed: CharEvent, LineEvent and Action.
type Event interface{ isEvent() }

// CharEvent is a character typed on the terminal.
type CharEvent rune

// LineEvent is a line read from the redirected standard input, without its
// line terminator.
type LineEvent string

// Action is an editing, navigation or control event.
type Action int

// Possible values for Action.
const (
	Confirm Action = iota
	EraseBackward
	EraseForward
	Complete
	MoveUp
	MoveDown
	NextMatch
	PrevMatch
	CursorLeft
	CursorRight
	SelectLeft
	SelectRight
	JumpStart
	JumpEnd
	Quit
	HistoryRecall
	ToggleLineNumbers
	GrowView
	ShrinkView
	ChooseSource

	numActions
)

func (CharEvent) isEvent() {}
func (LineEvent) isEvent() {}
func (Action) isEvent()    {}

var actionNames = [numActions]string{
	Confirm:           "confirm",
	EraseBackward:     "erase-backward",
	EraseForward:      "erase-forward",
	Complete:          "complete",
	MoveUp:            "move-up",
	MoveDown:          "move-down",
	NextMatch:         "next-match",
	PrevMatch:         "prev-match",
	CursorLeft:        "cursor-left",
	CursorRight:       "cursor-right",
	SelectLeft:        "select-left",
	SelectRight:       "select-right",
	JumpStart:         "jump-start",
	JumpEnd:           "jump-end",
	Quit:              "quit",
	HistoryRecall:     "history-recall",
	ToggleLineNumbers: "toggle-line-numbers",
	GrowView:          "grow-view",
	ShrinkView:        "shrink-view",
	ChooseSource:      "choose-source",
}

func (a Action) String() string {
	if 0 <= a && a < numActions {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction parses the name of an action.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if s == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("bad action: %q", s)
}
