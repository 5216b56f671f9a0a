package editor

import (
	"errors"
	"fmt"
)

// Mode determines which buffer is shown and how keys are interpreted.
type Mode int

// Possible values for Mode.
const (
	// Prompt shows the original reference of the command.
	Prompt Mode = iota
	// File shows a recursive listing of the working directory.
	File
	// Choose shows the two buffers that can be switched to.
	Choose
	// History replays past invocations of the command.
	History
)

var modeNames = [...]string{Prompt: "prompt", File: "file", Choose: "choose", History: "history"}

func (m Mode) String() string {
	if 0 <= m && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ErrIllegalTransition is returned when switching to a mode that can't be
// reached from the current one.
var ErrIllegalTransition = errors.New("illegal mode transition")

// Modes reachable from each mode. History can only be left for the mode it
// was entered from, which is checked separately.
var transitions = [...][]Mode{
	Prompt: {Choose, File, History},
	File:   {Choose, Prompt, History},
	Choose: {Prompt, File},
}

// CanTransition reports whether a mode can be switched from one mode to
// another. prev is the mode History was entered from and is only used when
// from is History.
func CanTransition(from, to, prev Mode) bool {
	if from == History {
		return to == prev && prev != History
	}
	if from < 0 || int(from) >= len(transitions) {
		return false
	}
	for _, m := range transitions[from] {
		if m == to {
			return true
		}
	}
	return false
}
