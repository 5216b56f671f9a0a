package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// FileStore keeps records in a file, one JSON object per line.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by the file at path. The file is
// created when the first record is added.
func NewFileStore(path string) *FileStore {
	return &FileStore{path}
}

// Records reads the records of command. Lines that are not valid records are
// skipped. A missing file has no records.
func (s *FileStore) Records(command string) ([]Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []Record
	reader := bufio.NewReader(f)
	for lineno := 1; ; lineno++ {
		line, err := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			var r Record
			if err := json.Unmarshal(line, &r); err != nil {
				logger.Printf("%s:%d: skipping malformed record: %v", s.path, lineno, err)
			} else if r.Command == command {
				records = append(records, r)
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return records, fmt.Errorf("read %s: %w", s.path, err)
		}
	}
	logger.Printf("read %d records of %s from %s", len(records), command, s.path)
	return records, nil
}

// Add appends a record as a single line, creating the file if needed.
func (s *FileStore) Add(r Record) error {
	line, err := json.Marshal(r)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	_, err = f.Write(append(line, '\n'))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Close does nothing, since the file is only opened during Records and Add.
func (s *FileStore) Close() error { return nil }
