// Man-with composes the arguments of a command while showing its manual page,
// its --help output, piped text or a listing of files, and then runs it.
//
// Usage:
//
//	man-with [flags] COMMAND
//	some-command | man-with [flags] COMMAND
package main

import (
	"os"

	"src.manwith.dev/pkg/buildinfo"
	"src.manwith.dev/pkg/compose"
	"src.manwith.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			buildinfo.Program{}, compose.SchemaProgram{}, &compose.Program{})))
}
