// Package compose is the interactive subprogram of man-with. It shows the
// reference of a command while its arguments are composed, and runs the
// command once the session is confirmed.
package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"src.manwith.dev/pkg/cli"
	"src.manwith.dev/pkg/cli/term"
	"src.manwith.dev/pkg/config"
	"src.manwith.dev/pkg/editor"
	"src.manwith.dev/pkg/fsutil"
	"src.manwith.dev/pkg/history"
	"src.manwith.dev/pkg/logutil"
	"src.manwith.dev/pkg/prog"
	"src.manwith.dev/pkg/reference"
	"src.manwith.dev/pkg/sys"
)

var logger = logutil.GetLogger("[compose] ")

// Program is the compose subprogram.
type Program struct {
	// Runs man and --help. Defaults to reference.ExecInvoker.
	Invoker reference.Invoker
	// Opens the terminal that keys are read from when stdin is redirected.
	// Defaults to sys.OpenTTY.
	OpenTTY func() (*os.File, error)
}

// Settings are the configuration values of a session, after flags have been
// applied over the configuration file.
type Settings struct {
	Size        int
	Kind        reference.SourceKind
	Mode        editor.Mode
	LineNumbers bool
	History     string
	DB          string
	Bindings    cli.Bindings
}

func (p *Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) != 1 {
		return prog.BadUsage("exactly one COMMAND is required")
	}
	command := args[0]

	cfg, err := loadConfig(f.Config)
	if err != nil {
		return err
	}
	piped := !sys.IsATTY(fds[0].Fd())
	s, err := Resolve(cfg, f, piped)
	if err != nil {
		return err
	}

	in, out, pipe := fds[0], io.Writer(fds[1]), io.Reader(nil)
	if piped {
		openTTY := p.OpenTTY
		if openTTY == nil {
			openTTY = sys.OpenTTY
		}
		tty, err := openTTY()
		if err != nil {
			return err
		}
		defer tty.Close()
		dup, err := sys.DupFile(fds[0])
		if err != nil {
			return err
		}
		defer dup.Close()
		in, out, pipe = tty, tty, dup
	}

	store, err := openStore(s)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	res, err := session(p.Invoker, command, s, in, out, pipe, store)
	if err != nil {
		return err
	}
	if !res.Confirmed {
		return nil
	}
	return execute(res, in, fds)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			logger.Println("no default config path:", err)
			return config.Parse(nil)
		}
	}
	return config.Load(path)
}

// Resolve combines the configuration file with command-line flags. Flags take
// precedence. When stdin is piped, its lines are the reference.
func Resolve(cfg *config.Config, f *prog.Flags, piped bool) (Settings, error) {
	s := Settings{
		Size:        cfg.Size,
		LineNumbers: cfg.LineNumbers,
		History:     cfg.History,
		DB:          cfg.DB,
		Bindings:    cli.DefaultBindings(),
	}
	if err := s.Bindings.Bind(cfg.Bindings); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	switch cfg.Source {
	case "help":
		s.Kind = reference.Help
	case "file":
		s.Mode = editor.File
	}

	if f.IsSet("size") {
		if f.Size < 1 {
			return Settings{}, prog.BadUsage(fmt.Sprintf("-size must be positive, got %d", f.Size))
		}
		s.Size = f.Size
	}
	if f.UseHelp {
		s.Kind = reference.Help
	}
	if f.IsSet("line-numbers") {
		s.LineNumbers = f.LineNumbers
	}
	if f.IsSet("history") {
		path, err := fsutil.ExpandTilde(f.History)
		if err != nil {
			return Settings{}, err
		}
		s.History = path
	}
	if f.IsSet("db") {
		path, err := fsutil.ExpandTilde(f.DB)
		if err != nil {
			return Settings{}, err
		}
		s.DB = path
	}
	if f.File {
		s.Mode = editor.File
	}
	if f.Choose {
		s.Mode = editor.Choose
	}
	if piped {
		s.Kind = reference.Stdin
	}
	return s, nil
}

func openStore(s Settings) (history.Store, error) {
	switch {
	case s.DB != "":
		logger.Println("history database", fsutil.TildeAbbr(s.DB))
		return history.NewDBStore(s.DB)
	case s.History != "":
		logger.Println("history file", fsutil.TildeAbbr(s.History))
		return history.NewFileStore(s.History), nil
	}
	logger.Println("history disabled")
	return nil, nil
}

func session(inv reference.Invoker, command string, s Settings,
	in *os.File, out io.Writer, pipe io.Reader, store history.Store) (cli.Result, error) {

	ctx := context.Background()
	var records []history.Record
	if store != nil {
		var err error
		records, err = store.Records(command)
		if err != nil {
			logger.Println("can't read history:", err)
		}
	}

	decoration := reference.Normal
	if s.LineNumbers {
		decoration = reference.LineNumber
	}
	provider := reference.New(command, reference.Config{
		Kind: s.Kind, Invoker: inv, Decoration: decoration})
	engine, err := editor.New(ctx, provider, editor.Config{
		Size: s.Size, Mode: s.Mode, Records: records})
	if err != nil {
		return cli.Result{}, err
	}

	restore, err := term.Setup(in)
	if err != nil {
		return cli.Result{}, err
	}
	defer func() {
		if err := restore(); err != nil {
			logger.Println(err)
		}
	}()

	logger.Printf("session for %s: source %v, mode %v, size %d",
		command, s.Kind, s.Mode, s.Size)
	app := cli.NewApp(cli.AppSpec{
		Engine: engine, In: in, Out: out, Pipe: pipe,
		Bindings: s.Bindings, History: store})
	return app.Run(ctx)
}

// Runs the composed command with the terminal as its stdin and waits for it.
func execute(res cli.Result, tty *os.File, fds [3]*os.File) error {
	logger.Printf("running %s %q", res.Command, res.Args)
	cmd := exec.Command(res.Command, res.Args...)
	cmd.Stdin = tty
	cmd.Stdout = fds[1]
	cmd.Stderr = fds[2]
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return prog.Exit(exitErr.ExitCode())
	}
	return err
}
