//go:build unix

package sys

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// TTYPath is the path of the controlling terminal.
const TTYPath = "/dev/tty"

// OpenTTY opens the controlling terminal for reading and writing. It is used
// when the standard input is not a terminal, so that keys can still be read.
func OpenTTY() (*os.File, error) {
	f, err := os.OpenFile(TTYPath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open controlling terminal: %w", err)
	}
	return f, nil
}

// DupFile duplicates the file descriptor of f and returns a new *os.File for
// it. Closing the returned file does not affect f, and aborts any outstanding
// Read on the returned file.
func DupFile(f *os.File) (*os.File, error) {
	fd, err := unix.Dup(int(f.Fd()))
	if err != nil {
		return nil, fmt.Errorf("dup %s: %w", f.Name(), err)
	}
	// os.NewFile only uses the runtime poller for non-blocking descriptors.
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("set non-blocking %s: %w", f.Name(), err)
	}
	return os.NewFile(uintptr(fd), f.Name()), nil
}
