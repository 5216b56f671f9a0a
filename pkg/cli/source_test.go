package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.manwith.dev/pkg/cli/term"
	"src.manwith.dev/pkg/testutil"
)

func drain(lp *loop) []event {
	var events []event
	for {
		select {
		case ev := <-lp.inputCh:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestReadLines(t *testing.T) {
	lp := newLoop()
	readLines(context.Background(), strings.NewReader("a\nb\r\n\n\xffc\nlast"), lp)
	want := []event{LineEvent("a"), LineEvent("b"), LineEvent(""), LineEvent("�c"), LineEvent("last")}
	if diff := cmp.Diff(want, drain(lp)); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestReadLines_Cancelled(t *testing.T) {
	lp := newLoop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	readLines(ctx, strings.NewReader("a\nb\n"), lp)
	if events := drain(lp); len(events) != 0 {
		t.Errorf("got events %v after cancellation", events)
	}
}

func TestReadLines_ClosedPipe(t *testing.T) {
	r, w := testutil.MustPipe()
	defer w.Close()
	lp := newLoop()
	done := make(chan struct{})
	go func() {
		readLines(context.Background(), r, lp)
		close(done)
	}()
	w.WriteString("x\n")
	if ev := <-lp.inputCh; ev != LineEvent("x") {
		t.Errorf("got %v", ev)
	}
	r.Close()
	<-done
}

func TestReadKeys(t *testing.T) {
	r, w := testutil.MustPipe()
	defer r.Close()
	defer w.Close()
	reader, err := term.NewReader(r)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	lp := newLoop()
	// Ctrl-X is unbound; the reader stops after Ctrl-C.
	w.WriteString("a\x18\033[A\r\x03b")
	readKeys(context.Background(), reader, DefaultBindings(), lp)
	want := []event{CharEvent('a'), MoveUp, Confirm, Quit}
	if diff := cmp.Diff(want, drain(lp)); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestReadKeys_Stopped(t *testing.T) {
	r, w := testutil.MustPipe()
	defer r.Close()
	defer w.Close()
	reader, err := term.NewReader(r)
	if err != nil {
		t.Fatal(err)
	}
	lp := newLoop()
	done := make(chan struct{})
	go func() {
		readKeys(context.Background(), reader, DefaultBindings(), lp)
		close(done)
	}()
	reader.Close()
	<-done
	if events := drain(lp); len(events) != 0 {
		t.Errorf("got events %v from stopped reader", events)
	}
}

func TestReadKeys_EOF(t *testing.T) {
	r, w := testutil.MustPipe()
	defer r.Close()
	reader, err := term.NewReader(r)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()
	w.Close()
	lp := newLoop()
	readKeys(context.Background(), reader, DefaultBindings(), lp)
	if diff := cmp.Diff([]event{Quit}, drain(lp)); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}
