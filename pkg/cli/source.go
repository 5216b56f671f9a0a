package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"src.manwith.dev/pkg/cli/term"
	"src.manwith.dev/pkg/ui"
)

// Reads keys from the terminal and sends the decoded events to the loop. It
// returns after sending Quit, when the reader is closed or when ctx is done. If
// the terminal can no longer be read, Quit is sent on its behalf.
func readKeys(ctx context.Context, r term.Reader, b Bindings, lp *loop) {
	defer logger.Println("key reader stopped")
	for ctx.Err() == nil {
		ev, err := r.ReadEvent()
		if err != nil {
			if term.IsReadErrorRecoverable(err) {
				continue
			}
			if err != term.ErrStopped {
				logger.Println("reading key:", err)
				lp.InputCtx(ctx, Quit)
			}
			return
		}
		k, ok := ev.(term.KeyEvent)
		if !ok {
			continue
		}
		e, ok := b.Decode(ui.Key(k))
		if !ok {
			logger.Println("unbound key", ui.Key(k))
			continue
		}
		if !lp.InputCtx(ctx, e) || e == Quit {
			return
		}
	}
}

// Reads lines from r and sends them to the loop as LineEvent. Invalid UTF-8 is
// replaced with U+FFFD. It returns at the end of input, on a read error or when
// ctx is done.
func readLines(ctx context.Context, r io.Reader, lp *loop) {
	defer logger.Println("line reader stopped")
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if ctx.Err() != nil {
			return
		}
		if line != "" {
			if strings.HasSuffix(line, "\n") {
				line = strings.TrimSuffix(line[:len(line)-1], "\r")
			}
			if !lp.InputCtx(ctx, LineEvent(strings.ToValidUTF8(line, "�"))) {
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				logger.Println("reading line:", err)
			}
			return
		}
	}
}
