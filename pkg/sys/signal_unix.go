//go:build unix

package sys

import "golang.org/x/sys/unix"

// SIGWINCH is the window size change signal.
const SIGWINCH = unix.SIGWINCH
