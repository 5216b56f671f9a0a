// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.manwith.dev/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"src.manwith.dev/pkg/prog"
)

// Version identifies the version of man-with. On development commits, it
// identifies the next release.
const Version = "0.1.0"

// VersionSuffix is appended to Version to build the full version string.
var VersionSuffix = "-dev.unknown"

// Info keeps the information reported by -version.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains the build information of this binary.
var Value = Info{Version: Version + VersionSuffix, GoVersion: runtime.Version()}

// Program is the version subprogram. It runs when -version is given.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	if f.JSON {
		b, err := json.Marshal(Value)
		if err != nil {
			return err
		}
		fmt.Fprintln(fds[1], string(b))
		return nil
	}
	fmt.Fprintf(fds[1], "man-with %s (%s)\n", Value.Version, Value.GoVersion)
	return nil
}
