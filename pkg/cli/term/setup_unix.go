//go:build unix

package term

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Setup puts the terminal referenced by f into raw mode. In raw mode every
// key press is delivered immediately and undecoded, including Ctrl-C, and
// nothing is echoed. It returns a function that restores the original mode.
func Setup(f *os.File) (func() error, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %w", err)
	}
	restore := func() error {
		if err := term.Restore(fd, state); err != nil {
			return fmt.Errorf("can't restore terminal attribute: %w", err)
		}
		return nil
	}
	return restore, nil
}
