package reference

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ExecInvoker runs man and --help as child processes.
type ExecInvoker struct{}

// Man runs "man command | col -bx" in a shell. col strips the overstrike
// sequences man uses for bold and underline.
func (ExecInvoker) Man(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", `man "$1" | col -bx`, "sh", command)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

// Help runs "command --help". Many programs print their help to stderr, or exit
// with a non-zero status after printing it; stderr is used when nothing is
// written to stdout.
func (ExecInvoker) Help(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, command, "--help")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", err
	}
	if stdout.Len() == 0 {
		return stderr.String(), nil
	}
	return stdout.String(), nil
}

// ListFiles returns the paths under root, one per line, root included. An
// empty root means the working directory. Entries that can't be read are
// skipped.
func ListFiles(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		root = wd
	}
	var sb strings.Builder
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Println("skipping", path, err)
			return nil
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(path)
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
