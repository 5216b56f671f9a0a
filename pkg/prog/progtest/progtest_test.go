package progtest

import (
	"fmt"
	"io"
	"os"
	"testing"

	"src.manwith.dev/pkg/prog"
)

type echoProgram struct{}

func (echoProgram) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	in, _ := io.ReadAll(fds[0])
	fmt.Fprint(fds[1], string(in))
	fmt.Fprint(fds[2], args)
	if len(args) > 0 && args[0] == "fail" {
		return prog.Exit(3)
	}
	return nil
}

func TestTest(t *testing.T) {
	Test(t, echoProgram{},
		ThatManWith().WritesStderr("[]"),
		ThatManWith("a", "b").WritesStderr("[a b]"),
		ThatManWith().WithStdin("foo\n").
			WritesStdout("foo\n").WritesStderrContaining("["),
		ThatManWith("fail").ExitsWith(3).WritesStderr("[fail]"),
	)
}

func TestRun(t *testing.T) {
	exit, stdout, stderr := Run(echoProgram{}, "input", "x")
	if exit != 0 || stdout != "input" || stderr != "[x]" {
		t.Errorf("Run -> %v, %q, %q", exit, stdout, stderr)
	}
}

func TestOutputString(t *testing.T) {
	tests := []struct {
		o    output
		want string
	}{
		{output{content: "a\nb"}, `"a\nb"`},
		{output{content: "x", partial: true}, `containing "x"`},
	}
	for _, test := range tests {
		if got := test.o.String(); got != test.want {
			t.Errorf("String() = %s, want %s", got, test.want)
		}
	}
}
