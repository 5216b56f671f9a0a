// Package fsutil provides filesystem utilities.
package fsutil

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// GetHome finds the home directory of a specified user. When given an empty
// string, it finds the home directory of the current user.
func GetHome(uname string) (string, error) {
	if uname == "" {
		// Use $HOME as override if we are looking for the home of the current
		// user.
		if home := os.Getenv("HOME"); home != "" {
			if home = strings.TrimRight(home, "/"); home == "" {
				return "/", nil
			}
			return home, nil
		}
		dir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("can't resolve ~: %w", err)
		}
		return dir, nil
	}
	u, err := user.Lookup(uname)
	if err != nil {
		return "", fmt.Errorf("can't resolve ~%s: %w", uname, err)
	}
	return u.HomeDir, nil
}

// ExpandTilde expands a leading ~ or ~user in path. A trailing slash is
// preserved. The path is returned unchanged if it doesn't start with a tilde.
func ExpandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	uname, rest, _ := strings.Cut(path[1:], "/")
	home, err := GetHome(uname)
	if err != nil {
		return "", err
	}
	if rest == "" {
		if strings.HasSuffix(path, "/") {
			return home + "/", nil
		}
		return home, nil
	}
	expanded := filepath.Join(home, rest)
	if strings.HasSuffix(rest, "/") {
		expanded += "/"
	}
	return expanded, nil
}

// TildeAbbr abbreviates the user's home directory to ~.
func TildeAbbr(path string) string {
	home, err := GetHome("")
	if err != nil || home == "" || home == "/" {
		// Abbreviating "" or "/" would make the path longer.
		return path
	}
	if path == home {
		return "~"
	} else if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}
