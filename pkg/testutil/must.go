package testutil

import (
	"os"
	"path/filepath"
)

// Must panics if the error value is not nil. It is typically used like this:
//
//	testutil.Must(a_function())
//
// Where `a_function` returns a single error value. This is useful with
// functions like os.Mkdir to succinctly ensure the test fails to proceed if a
// "can't happen" failure does, in fact, happen.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 is like Must, for functions that return one value and an error.
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

// MustPipe wraps os.Pipe.
func MustPipe() (*os.File, *os.File) {
	r, w, err := os.Pipe()
	Must(err)
	return r, w
}

// MustMkdirAll calls os.MkdirAll for each argument.
func MustMkdirAll(names ...string) {
	for _, name := range names {
		Must(os.MkdirAll(name, 0700))
	}
}

// MustCreateEmpty creates empty files, after creating all ancestor
// directories that don't exist.
func MustCreateEmpty(names ...string) {
	for _, name := range names {
		Must(os.MkdirAll(filepath.Dir(name), 0700))
		Must(Must1(os.Create(name)).Close())
	}
}

// MustWriteFile writes data to a file, after creating all ancestor
// directories that don't exist.
func MustWriteFile(filename, data string) {
	Must(os.MkdirAll(filepath.Dir(filename), 0700))
	Must(os.WriteFile(filename, []byte(data), 0600))
}
