package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/google/go-cmp/cmp"

	"src.manwith.dev/pkg/cli/term"
	"src.manwith.dev/pkg/editor"
	"src.manwith.dev/pkg/history"
	"src.manwith.dev/pkg/reference"
	"src.manwith.dev/pkg/testutil"
)

// A bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mutex sync.Mutex
	buf   bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buf.String()
}

func TestApp_Confirm(t *testing.T) {
	r, w := testutil.MustPipe()
	defer r.Close()
	defer w.Close()
	store := history.NewMemStore()
	a := NewApp(AppSpec{
		Engine:  newEngine(t, editor.Config{}, "  -i  ignore case"),
		In:      r,
		Out:     &syncBuffer{},
		History: store,
	})

	w.WriteString("-i\r\r")
	res, err := a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := Result{Command: "grep", Args: []string{"-i"}, Confirmed: true}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Result (-want +got):\n%s", diff)
	}
	records, _ := store.Records("grep")
	if diff := cmp.Diff([]history.Record{{Command: "grep", Argument: []string{"-i"}}}, records); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
}

func TestApp_Quit(t *testing.T) {
	r, w := testutil.MustPipe()
	defer r.Close()
	defer w.Close()
	store := history.NewMemStore()
	out := &syncBuffer{}
	a := NewApp(AppSpec{
		Engine:  newEngine(t, editor.Config{}),
		In:      r,
		Out:     out,
		History: store,
	})

	w.WriteString("x\x03")
	res, err := a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Confirmed {
		t.Errorf("session confirmed after Ctrl-C")
	}
	if diff := cmp.Diff([]string{"x"}, res.Args); diff != "" {
		t.Errorf("Args (-want +got):\n%s", diff)
	}
	if records, _ := store.Records("grep"); len(records) != 0 {
		t.Errorf("history written on quit: %v", records)
	}
	// The final redraw clears the screen.
	if !strings.HasSuffix(out.String(), "\033[1G\033[2K") {
		t.Errorf("output does not end with clearing the input line: %q", out.String())
	}
}

func TestApp_Pipe(t *testing.T) {
	r, w := testutil.MustPipe()
	defer r.Close()
	defer w.Close()
	pr, pw := testutil.MustPipe()
	defer pw.Close()

	p := reference.New("cat", reference.Config{Kind: reference.Stdin})
	ed, err := editor.New(context.Background(), p, editor.Config{})
	if err != nil {
		t.Fatal(err)
	}
	out := &syncBuffer{}
	a := NewApp(AppSpec{Engine: ed, In: r, Out: out, Pipe: pr})

	type runResult struct {
		res Result
		err error
	}
	done := make(chan runResult, 1)
	go func() {
		res, err := a.Run(context.Background())
		done <- runResult{res, err}
	}()

	pw.WriteString("first\nsecond\n")
	deadline := time.Now().Add(testutil.Scaled(5 * time.Second))
	for !strings.Contains(out.String(), "second") {
		if time.Now().After(deadline) {
			t.Fatalf("piped lines not drawn: %q", out.String())
		}
		time.Sleep(testutil.Scaled(time.Millisecond))
	}
	w.WriteString("\x03")

	ret := <-done
	if ret.err != nil {
		t.Fatal(ret.err)
	}
	if diff := cmp.Diff([]string{"first", "second"}, ed.Buffer()); diff != "" {
		t.Errorf("Buffer (-want +got):\n%s", diff)
	}
	// The pipe is left open by the writer; Run returning means the line
	// reader was stopped by closing it.
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestApp_RedrawError(t *testing.T) {
	r, w := testutil.MustPipe()
	defer r.Close()
	defer w.Close()
	a := NewApp(AppSpec{Engine: newEngine(t, editor.Config{}, "x"), In: r, Out: failWriter{}})
	if _, err := a.Run(context.Background()); err != errWrite {
		t.Errorf("Run -> %v, want %v", err, errWrite)
	}
}

func TestApp_PTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty.Open: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 40})

	restore, err := term.Setup(tty)
	if err != nil {
		t.Fatal(err)
	}
	defer restore()
	go io.Copy(io.Discard, ptmx)

	a := NewApp(AppSpec{Engine: newEngine(t, editor.Config{}, "ls - list"), In: tty})
	ptmx.Write([]byte("-l\r\033[D\r\r"))
	res, err := a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := Result{Command: "grep", Args: []string{"-l"}, Confirmed: true}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Result (-want +got):\n%s", diff)
	}
}
