package editor

import (
	"os"
	"strings"

	"src.manwith.dev/pkg/fsutil"
)

// Reports whether r can be part of a flag or path candidate.
func isArgRune(r rune) bool {
	switch r {
	case '-', '_', '=', ':', '{', '}', '.':
		return true
	}
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}

// Candidates returns the completion candidates of the selected argument, in
// the order they are found: tokens of matching buffer lines first, then
// filesystem entries if the argument looks like a path. Only candidates that
// extend the argument are returned. There are no candidates when the cursor
// is at the start of the argument.
func (e *Engine) Candidates() []string {
	if e.cursor == 0 {
		return nil
	}
	n := e.input()
	var candidates []string
	add := func(c string) {
		if len(c) > len(n) && strings.HasPrefix(c, n) {
			candidates = append(candidates, c)
		}
	}
	for _, line := range e.buffer {
		if !strings.Contains(line, n) {
			continue
		}
		for _, token := range strings.Fields(line) {
			if !strings.Contains(token, n) {
				continue
			}
			for _, run := range strings.FieldsFunc(token, func(r rune) bool { return !isArgRune(r) }) {
				if strings.Contains(run, n) {
					add(run)
				}
			}
		}
	}
	if strings.HasPrefix(n, ".") || strings.HasPrefix(n, "~") {
		for _, c := range pathCandidates(n) {
			add(c)
		}
	}
	return candidates
}

// Lists the entries of the directory named by the part of n up to its last
// slash, in the same form as n. Directories have a trailing slash. Errors
// yield no candidates.
func pathCandidates(n string) []string {
	prefix := n[:strings.LastIndexByte(n, '/')+1]
	dir, err := fsutil.ExpandTilde(prefix)
	if err != nil {
		logger.Println(err)
		return nil
	}
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Println("can't list", dir, err)
		return nil
	}
	var candidates []string
	for _, entry := range entries {
		c := prefix + entry.Name()
		if entry.IsDir() {
			c += "/"
		}
		if strings.HasPrefix(c, n) {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// ShowCandidate returns the suffix that completing the selected argument
// would add, and records it as the pending completion.
func (e *Engine) ShowCandidate() (string, bool) {
	candidates := e.Candidates()
	if len(candidates) == 0 {
		e.clearCompletion()
		return "", false
	}
	e.completion = candidates[0][len(e.input()):]
	e.hasCompletion = true
	return e.completion, true
}

// Completion appends the pending completion to the selected argument and
// moves the viewport to the top. If no completion is pending, the candidate is
// computed first.
func (e *Engine) Completion() {
	if !e.hasCompletion {
		if _, ok := e.ShowCandidate(); !ok {
			return
		}
	}
	e.args[e.selected] += e.completion
	e.cursor = len(e.args[e.selected])
	e.clearCompletion()
	e.pos = 0
}
