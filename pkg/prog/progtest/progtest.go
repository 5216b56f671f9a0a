// Package progtest provides a framework for testing subprograms.
//
// The entry point is Test, which runs a [prog.Program] with each of the given
// cases and checks the exit status and the output:
//
//	progtest.Test(t, p,
//		progtest.ThatManWith("-bad-flag").ExitsWith(2).
//			WritesStderrContaining("flag provided but not defined"))
//
// Unless specified otherwise, a case expects the program to exit with 0 and
// write nothing to stdout and stderr.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.manwith.dev/pkg/prog"
	"src.manwith.dev/pkg/testutil"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) matches(s string) bool {
	if o.partial {
		return strings.Contains(s, o.content)
	}
	return o.content == s
}

// ThatManWith returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "man-with -bad-flag" exits with 2 is
// written as:
//
//	ThatManWith("-bad-flag").ExitsWith(2)
func ThatManWith(args ...string) Case {
	return Case{args: args}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatManWith("-log", "x").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if exit != c.want.exitCode {
				t.Errorf("got exit %v, want %v", exit, c.want.exitCode)
			}
			if !c.want.stdout.matches(stdout) {
				t.Errorf("got stdout %q, want %s", stdout, c.want.stdout)
			}
			if !c.want.stderr.matches(stderr) {
				t.Errorf("got stderr %q, want %s", stderr, c.want.stderr)
			}
		})
	}
}

func (o output) String() string {
	if o.partial {
		return "containing " + quote(o.content)
	}
	return quote(o.content)
}

func quote(s string) string { return strings.ReplaceAll(`"`+s+`"`, "\n", `\n`) }

// Run runs a program with the given stdin and arguments, and returns its exit
// status and the output it wrote to stdout and stderr. The arguments don't
// include the program name.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := testutil.MustPipe()
	r1, w1 := testutil.MustPipe()
	r2, w2 := testutil.MustPipe()
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	outCh := readAllAsync(r1)
	errCh := readAllAsync(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2},
		append([]string{"man-with"}, args...), p)
	w1.Close()
	w2.Close()
	stdout, stderr = <-outCh, <-errCh
	r0.Close()
	return exit, stdout, stderr
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}
