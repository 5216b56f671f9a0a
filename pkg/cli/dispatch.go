package cli

import (
	"context"

	"src.manwith.dev/pkg/editor"
)

// Outcome of handling an event.
type outcome int

const (
	// Keep reading events.
	keepGoing outcome = iota
	// End the session with the composed command.
	finish
	// End the session, discarding the composed command.
	quit
)

type actionFunc func(ctx context.Context, ed *editor.Engine) (outcome, error)

// What each action does. Every action has an entry.
var actionFuncs = [numActions]actionFunc{
	Confirm:           confirm,
	EraseBackward:     editing((*editor.Engine).Backspace),
	EraseForward:      editing((*editor.Engine).Delete),
	Complete:          editing((*editor.Engine).Completion),
	MoveUp:            viewing((*editor.Engine).Up),
	MoveDown:          viewing((*editor.Engine).Down),
	NextMatch:         editing((*editor.Engine).Next),
	PrevMatch:         editing((*editor.Engine).Prev),
	CursorLeft:        editing((*editor.Engine).CursorBack),
	CursorRight:       editing((*editor.Engine).CursorForward),
	SelectLeft:        editing((*editor.Engine).SelectBack),
	SelectRight:       editing((*editor.Engine).SelectForward),
	JumpStart:         editing((*editor.Engine).BeginningOfLine),
	JumpEnd:           editing((*editor.Engine).EndOfLine),
	Quit:              func(context.Context, *editor.Engine) (outcome, error) { return quit, nil },
	HistoryRecall:     historyRecall,
	ToggleLineNumbers: viewing((*editor.Engine).ToggleLineNumbers),
	GrowView:          viewing((*editor.Engine).IncrSize),
	ShrinkView:        viewing((*editor.Engine).DecrSize),
	ChooseSource:      chooseSource,
}

// Wraps an operation on the argument list, which only applies in Prompt and
// File mode.
func editing(f func(*editor.Engine)) actionFunc {
	return func(_ context.Context, ed *editor.Engine) (outcome, error) {
		if isEditing(ed.Mode()) {
			f(ed)
		}
		return keepGoing, nil
	}
}

// Wraps an operation on the viewport, which applies in all modes.
func viewing(f func(*editor.Engine)) actionFunc {
	return func(_ context.Context, ed *editor.Engine) (outcome, error) {
		f(ed)
		return keepGoing, nil
	}
}

func isEditing(m editor.Mode) bool {
	return m == editor.Prompt || m == editor.File
}

func confirm(ctx context.Context, ed *editor.Engine) (outcome, error) {
	switch ed.Mode() {
	case editor.Choose:
		return keepGoing, ed.Pick(ctx)
	case editor.Prompt:
		switch {
		case ed.Cursor() > 0:
			ed.Append()
		case ed.IsLast():
			return finish, nil
		}
	case editor.File:
		if line, ok := ed.CurrentLine(); ok {
			ed.ReplaceSelected(line)
			ed.Append()
		}
	}
	return keepGoing, nil
}

func historyRecall(_ context.Context, ed *editor.Engine) (outcome, error) {
	return keepGoing, ed.HistoryBack()
}

func chooseSource(ctx context.Context, ed *editor.Engine) (outcome, error) {
	if ed.Mode() == editor.Choose {
		return keepGoing, nil
	}
	return keepGoing, ed.SetMode(ctx, editor.Choose)
}

// Applies an event to the engine. In History mode, any event other than
// HistoryRecall and Quit first accepts the replayed arguments.
func dispatch(ctx context.Context, ed *editor.Engine, ev Event) (outcome, error) {
	if ed.Mode() == editor.History && ev != HistoryRecall && ev != Quit {
		if _, isLine := ev.(LineEvent); !isLine {
			ed.AcceptHistory()
		}
	}
	switch ev := ev.(type) {
	case CharEvent:
		if isEditing(ed.Mode()) {
			if ev == ' ' {
				ed.Append()
			} else {
				ed.Insert(rune(ev))
			}
		}
		return keepGoing, nil
	case LineEvent:
		ed.InsertLine(string(ev))
		return keepGoing, nil
	case Action:
		if ev < 0 || ev >= numActions {
			return keepGoing, nil
		}
		return actionFuncs[ev](ctx, ed)
	}
	return keepGoing, nil
}
