package prog_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"src.manwith.dev/pkg/logutil"
	. "src.manwith.dev/pkg/prog"
	"src.manwith.dev/pkg/prog/progtest"
	"src.manwith.dev/pkg/testutil"
)

var (
	Test        = progtest.Test
	ThatManWith = progtest.ThatManWith
)

func TestCommonFlagHandling(t *testing.T) {
	dir := testutil.TempDir(t)

	Test(t, testProgram{},
		ThatManWith("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatManWith("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatManWith("-help").
			WritesStdoutContaining("Usage: man-with [flags] COMMAND"),

		ThatManWith("-cpuprofile", filepath.Join(dir, "cpuprof")).DoesNothing(),
		ThatManWith("-cpuprofile", "/a/bad/path").
			WritesStderrContaining("Warning: cannot create CPU profile:"),

		ThatManWith("-size", "x").
			ExitsWith(2).
			WritesStderrContaining("invalid value \"x\" for flag -size"),
	)

	// There isn't much to test beyond a sanity check that the profile file
	// now exists.
	if _, err := os.Stat(filepath.Join(dir, "cpuprof")); err != nil {
		t.Errorf("CPU profile file does not exist: %v", err)
	}
}

func TestLogFlag(t *testing.T) {
	dir := testutil.TempDir(t)
	t.Cleanup(func() { logutil.SetOutput(io.Discard) })
	Test(t, testProgram{},
		ThatManWith("-log", filepath.Join(dir, "log")).DoesNothing(),
		ThatManWith("-log", filepath.Join(dir, "no/such/dir/log")).
			WritesStderrContaining("no such file or directory"),
	)
	if _, err := os.Stat(filepath.Join(dir, "log")); err != nil {
		t.Errorf("log file does not exist: %v", err)
	}
}

var isSetTests = []struct {
	args []string
	want string
}{
	{[]string{}, "size=false use-help=false file=false"},
	{[]string{"-size", "3"}, "size=true use-help=false file=false"},
	{[]string{"-s", "3", "-p"}, "size=true use-help=true file=false"},
	{[]string{"-size=0", "-file", "ls"}, "size=true use-help=false file=true"},
}

func TestFlags_IsSet(t *testing.T) {
	for _, test := range isSetTests {
		var got string
		p := funcProgram(func(_ [3]*os.File, f *Flags, _ []string) error {
			got = fmt.Sprintf("size=%v use-help=%v file=%v",
				f.IsSet("size"), f.IsSet("use-help"), f.IsSet("file"))
			return nil
		})
		progtest.Run(p, "", test.args...)
		if got != test.want {
			t.Errorf("with %q got %s, want %s", test.args, got, test.want)
		}
	}
}

func TestFlags_Aliases(t *testing.T) {
	var size int
	var useHelp bool
	p := funcProgram(func(_ [3]*os.File, f *Flags, _ []string) error {
		size, useHelp = f.Size, f.UseHelp
		return nil
	})
	progtest.Run(p, "", "-s", "7", "-p")
	if size != 7 || !useHelp {
		t.Errorf("got Size=%v UseHelp=%v, want 7 true", size, useHelp)
	}
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatManWith().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatManWith().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatManWith().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatManWith().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatManWith().ExitsWith(2).WritesStderrContaining("lorem ipsum\nUsage:"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatManWith().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatManWith().ExitsWith(0),
	)
}

func TestOtherError(t *testing.T) {
	Test(t, testProgram{returnErr: fmt.Errorf("boom")},
		ThatManWith().ExitsWith(2).WritesStderr("boom\n"),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
}

func (p testProgram) Run(fds [3]*os.File, _ *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}

type funcProgram func(fds [3]*os.File, f *Flags, args []string) error

func (p funcProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	return p(fds, f, args)
}
