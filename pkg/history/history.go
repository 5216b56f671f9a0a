// Package history stores the invocations composed in past sessions and
// replays them, most recent first.
package history

import (
	"encoding/json"
	"errors"

	"github.com/invopop/jsonschema"

	"src.manwith.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[history] ")

// ErrEndOfHistory is returned by Cursor when there are no more records.
var ErrEndOfHistory = errors.New("end of history")

// Record is a single composed invocation.
type Record struct {
	Command  string   `json:"command" jsonschema:"description=Name of the command"`
	Argument []string `json:"argument" jsonschema:"description=Arguments of the command in order"`
}

// Store is the backend of history records.
type Store interface {
	// Records returns all records of command, oldest first.
	Records(command string) ([]Record, error)
	// Add appends a record.
	Add(r Record) error
	// Close releases resources held by the store.
	Close() error
}

// Save appends a record of command with the non-empty arguments in args. It
// does nothing and returns false if no argument is non-empty.
func Save(s Store, command string, args []string) (bool, error) {
	var kept []string
	for _, arg := range args {
		if arg != "" {
			kept = append(kept, arg)
		}
	}
	if len(kept) == 0 {
		return false, nil
	}
	if err := s.Add(Record{Command: command, Argument: kept}); err != nil {
		return false, err
	}
	return true, nil
}

// Schema returns the JSON schema of a Record, which is also the schema of each
// line of a history file.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	return json.MarshalIndent(reflector.Reflect(&Record{}), "", "  ")
}
