// Package term provides the terminal side of the editor: putting the terminal
// in raw mode, decoding key presses from the escape sequences the terminal
// sends, and the cursor primitives used for redrawing.
package term

import (
	"errors"
	"fmt"
	"os"
	"time"

	"src.manwith.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[cli/term] ")

// Reader reads events from the terminal.
type Reader interface {
	// ReadEvent reads a single event from the terminal.
	ReadEvent() (Event, error)
	// Close releases resources associated with the Reader. Any outstanding
	// ReadEvent call will be aborted, returning ErrStopped.
	Close()
}

// ErrStopped is returned by Reader when Close is called during a ReadEvent
// method.
var ErrStopped = errors.New("stopped")

var errTimeout = errors.New("timed out")

type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// NewReader creates a new Reader on the given terminal file.
func NewReader(f *os.File) (Reader, error) {
	return newReader(f)
}

// IsReadErrorRecoverable returns whether an error returned by Reader is
// recoverable.
func IsReadErrorRecoverable(err error) bool {
	if _, ok := err.(seqError); ok {
		return true
	}
	return err == errTimeout
}

type byteReaderWithTimeout interface {
	// ReadByteWithTimeout reads a single byte. A negative timeout means no
	// timeout.
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
}

// readRune reads a UTF-8 encoded rune. Each byte is subject to the timeout.
func readRune(rd byteReaderWithTimeout, timeout time.Duration) (rune, error) {
	leader, err := rd.ReadByteWithTimeout(timeout)
	if err != nil {
		return -1, err
	}
	var r rune
	pending := 0
	switch {
	case leader>>7 == 0:
		r = rune(leader)
	case leader>>5 == 0x6:
		r = rune(leader & 0x1f)
		pending = 1
	case leader>>4 == 0xe:
		r = rune(leader & 0xf)
		pending = 2
	case leader>>3 == 0x1e:
		r = rune(leader & 0x7)
		pending = 3
	default:
		return -1, seqError{"bad UTF-8 leading byte", string([]byte{leader})}
	}
	for i := 0; i < pending; i++ {
		b, err := rd.ReadByteWithTimeout(timeout)
		if err != nil {
			return -1, err
		}
		if b>>6 != 0x2 {
			return -1, seqError{"bad UTF-8 continuation byte", string([]byte{leader, b})}
		}
		r = r<<6 + rune(b&0x3f)
	}
	return r, nil
}
