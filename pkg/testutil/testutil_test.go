package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// cleanuper records cleanups so that tests can run them at a chosen time.
type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}

func TestTempDir_CleanupRemovesDir(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)
	MustWriteFile(filepath.Join(dir, "a", "b"), "test")

	c.runCleanups()
	if _, err := os.Stat(dir); err == nil {
		t.Errorf("dir %q still exists after cleanup", dir)
	}
}

func TestInTempDir_RestoresWd(t *testing.T) {
	oldWd := Must1(os.Getwd())
	c := &cleanuper{}
	dir := InTempDir(c)
	if wd := Must1(os.Getwd()); wd != dir {
		t.Errorf("wd = %q, want %q", wd, dir)
	}
	c.runCleanups()
	if wd := Must1(os.Getwd()); wd != oldWd {
		t.Errorf("wd after cleanup = %q, want %q", wd, oldWd)
	}
}

func TestSetenv(t *testing.T) {
	c := &cleanuper{}
	os.Unsetenv("MANWITH_TESTUTIL_VAR")
	Setenv(c, "MANWITH_TESTUTIL_VAR", "x")
	if v := os.Getenv("MANWITH_TESTUTIL_VAR"); v != "x" {
		t.Errorf("got %q, want x", v)
	}
	c.runCleanups()
	if _, ok := os.LookupEnv("MANWITH_TESTUTIL_VAR"); ok {
		t.Errorf("variable still set after cleanup")
	}
}

func TestScaled(t *testing.T) {
	Setenv(t, TimeScaleEnv, "2")
	if d := Scaled(time.Second); d != 2*time.Second {
		t.Errorf("Scaled -> %v, want 2s", d)
	}
	Setenv(t, TimeScaleEnv, "bad")
	if d := Scaled(time.Second); d != time.Second {
		t.Errorf("Scaled with bad scale -> %v, want 1s", d)
	}
}
