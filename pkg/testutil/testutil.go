// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. It is different from testing.TB.TempDir in that it
// resolves symlinks in the path of the directory, so that tests comparing
// paths listed by the code under test against the directory work on systems
// where the temporary directory is behind a symlink.
//
// It panics if the test directory cannot be created or symlinks cannot be
// resolved. It is only suitable for use in tests.
func TempDir(c Cleanuper) string {
	dir := Must1(os.MkdirTemp("", "manwithtest."))
	dir = Must1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}

// InTempDir is like TempDir, but also changes into the directory, and changes
// back to the original working directory when the test finishes.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when the test finishes. It returns the directory for easier chaining.
func Chdir(c Cleanuper, dir string) string {
	oldWd := Must1(os.Getwd())
	Must(os.Chdir(dir))
	c.Cleanup(func() { Must(os.Chdir(oldWd)) })
	return dir
}

// Setenv sets the value of an environment variable for the duration of a test.
// It returns value.
func Setenv(c Cleanuper, name, value string) string {
	oldValue, existed := os.LookupEnv(name)
	if existed {
		c.Cleanup(func() { os.Setenv(name, oldValue) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
	os.Setenv(name, value)
	return value
}

// TimeScaleEnv names the environment variable read by Scaled.
const TimeScaleEnv = "MANWITH_TEST_TIME_SCALE"

// Scaled returns d scaled by $MANWITH_TEST_TIME_SCALE. If the environment
// variable does not exist or contains an invalid value, the scale defaults to
// 1.
func Scaled(d time.Duration) time.Duration {
	scale, err := strconv.ParseFloat(os.Getenv(TimeScaleEnv), 64)
	if err != nil || scale <= 0 {
		scale = 1
	}
	return time.Duration(float64(d) * scale)
}
