package compose

import (
	"os"

	"src.manwith.dev/pkg/history"
	"src.manwith.dev/pkg/prog"
)

// SchemaProgram prints the JSON schema of history records when
// -history-schema is given.
type SchemaProgram struct{}

func (SchemaProgram) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.HistorySchema {
		return prog.ErrNotSuitable
	}
	schema, err := history.Schema()
	if err != nil {
		return err
	}
	_, err = fds[1].Write(append(schema, '\n'))
	return err
}
