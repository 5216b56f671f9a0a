// Package cli implements the interactive session: the events read from the
// terminal and from redirected standard input, how they are applied to the
// prompt engine, and the event loop that serializes them.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"src.manwith.dev/pkg/cli/term"
	"src.manwith.dev/pkg/editor"
	"src.manwith.dev/pkg/history"
	"src.manwith.dev/pkg/logutil"
	"src.manwith.dev/pkg/sys"
)

var logger = logutil.GetLogger("[cli] ")

// AppSpec specifies the collaborators of an App.
type AppSpec struct {
	// Engine holding the state of the session. Required.
	Engine *editor.Engine
	// Terminal to read keys from. Required.
	In *os.File
	// Where the engine is drawn. Defaults to In.
	Out io.Writer
	// Redirected standard input whose lines are added to the reference, or nil.
	// It is closed when Run returns if it implements io.Closer.
	Pipe io.Reader
	// Key bindings. Defaults to DefaultBindings().
	Bindings Bindings
	// Store receiving the composed command when the session is confirmed, or
	// nil.
	History history.Store
}

// Result is the outcome of a session.
type Result struct {
	Command string
	Args    []string
	// Whether the session ended with Enter rather than Quit.
	Confirmed bool
}

// App runs an interactive session.
type App struct {
	spec      AppSpec
	ctx       context.Context
	loop      *loop
	writer    term.Writer
	confirmed bool
}

// NewApp creates a new App from the given specification.
func NewApp(spec AppSpec) *App {
	if spec.Out == nil {
		spec.Out = spec.In
	}
	if spec.Bindings == nil {
		spec.Bindings = DefaultBindings()
	}
	a := &App{spec: spec, loop: newLoop(), writer: term.NewWriter(spec.Out)}
	a.loop.HandleCb(a.handle)
	a.loop.RedrawCb(a.redraw)
	return a
}

// Run runs the session until it is confirmed or quit. The engine is only
// touched by the goroutine calling Run. All goroutines started by Run have
// returned when it returns.
func (a *App) Run(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.ctx = ctx

	reader, err := term.NewReader(a.spec.In)
	if err != nil {
		return Result{}, fmt.Errorf("can't read terminal: %w", err)
	}
	a.updateWidth()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sys.SIGWINCH)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		readKeys(ctx, reader, a.spec.Bindings, a.loop)
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case sig := <-sigCh:
				if !a.loop.InputCtx(ctx, sig) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	if a.spec.Pipe != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			readLines(ctx, a.spec.Pipe, a.loop)
		}()
	}

	err = a.loop.Run()

	cancel()
	signal.Stop(sigCh)
	reader.Close()
	if c, ok := a.spec.Pipe.(io.Closer); ok {
		c.Close()
	}
	wg.Wait()

	command, args := a.spec.Engine.Result()
	res := Result{command, args, a.confirmed}
	if err != nil {
		return res, err
	}
	if a.confirmed && a.spec.History != nil {
		if _, err := history.Save(a.spec.History, command, args); err != nil {
			logger.Println("saving history:", err)
		}
	}
	logger.Printf("session ended, confirmed %v: %s %q", res.Confirmed, res.Command, res.Args)
	return res, nil
}

func (a *App) updateWidth() {
	if _, col := sys.WinSize(a.spec.In); col > 0 {
		a.spec.Engine.SetWidth(col)
	}
}

func (a *App) handle(e event) {
	switch e := e.(type) {
	case os.Signal:
		if e == sys.SIGWINCH {
			a.updateWidth()
			a.loop.Redraw(true)
		}
	case Event:
		out, err := dispatch(a.ctx, a.spec.Engine, e)
		if err != nil {
			logger.Printf("handling %v: %v", e, err)
		}
		switch out {
		case finish:
			a.confirmed = true
			a.loop.Return(nil)
		case quit:
			a.loop.Return(nil)
		}
	}
}

func (a *App) redraw(flag redrawFlag) error {
	if flag&finalRedraw != 0 {
		return a.spec.Engine.Clear(a.writer)
	}
	return a.spec.Engine.Show(a.writer)
}
