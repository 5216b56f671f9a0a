package cli

import (
	"fmt"

	"src.manwith.dev/pkg/ui"
)

// Bindings maps keys to actions.
type Bindings map[ui.Key]Action

// DefaultBindings returns the default key bindings.
func DefaultBindings() Bindings {
	return Bindings{
		ui.K('A', ui.Ctrl): JumpStart,
		ui.K('E', ui.Ctrl): JumpEnd,
		ui.K('C', ui.Ctrl): Quit,
		ui.K('R', ui.Ctrl): HistoryRecall,
		ui.K('B', ui.Ctrl): CursorLeft,
		ui.K('F', ui.Ctrl): CursorRight,
		ui.K('P', ui.Ctrl): PrevMatch,
		ui.K('N', ui.Ctrl): NextMatch,
		ui.K('O', ui.Ctrl): ChooseSource,
		ui.K(ui.Enter):     Confirm,
		ui.K(ui.Tab):       Complete,
		ui.K(ui.Backspace): EraseBackward,
		ui.K(ui.Delete):    EraseForward,
		ui.K(ui.Left):      SelectLeft,
		ui.K(ui.Right):     SelectRight,
		ui.K(ui.Up):        MoveUp,
		ui.K(ui.Down):      MoveDown,
		ui.K(ui.F1):        ToggleLineNumbers,
		ui.K(ui.F2):        GrowView,
		ui.K(ui.F3):        ShrinkView,
	}
}

// Bind parses a map from key names to action names, as found in the
// configuration file, and adds or replaces the bindings.
func (b Bindings) Bind(m map[string]string) error {
	for keyName, actionName := range m {
		k, err := ui.ParseKey(keyName)
		if err != nil {
			return fmt.Errorf("binding %s: %w", keyName, err)
		}
		a, err := ParseAction(actionName)
		if err != nil {
			return fmt.Errorf("binding %s: %w", keyName, err)
		}
		b[k] = a
	}
	return nil
}

// Decode turns a key into an event. Bound keys become actions; other keys
// without modifiers that produce a printable character become CharEvent.
// Other keys are ignored.
func (b Bindings) Decode(k ui.Key) (Event, bool) {
	if a, ok := b[k]; ok {
		return a, true
	}
	if k.Mod == 0 && k.Rune >= 0x20 && k.Rune != ui.Backspace {
		return CharEvent(k.Rune), true
	}
	return nil, false
}
