package patch

import (
	"sort"
	"strings"
)

// FileChange is one file's slice of a unified diff.
type FileChange struct {
	Path         string
	Body         string // the ---/+++/@@ section for this file
	LinesAdded   int
	LinesDeleted int
}

// SplitFiles parses a normalized unified diff into per-file changes, in
// order of appearance.
func SplitFiles(diff string) []FileChange {
	var changes []FileChange
	var cur *FileChange
	var body strings.Builder

	flush := func() {
		if cur != nil {
			cur.Body = body.String()
			changes = append(changes, *cur)
		}
		cur = nil
		body.Reset()
	}

	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		if strings.HasPrefix(line, "--- ") {
			flush()
			cur = &FileChange{}
		}
		if cur == nil {
			continue
		}
		if strings.HasPrefix(line, "+++ ") {
			cur.Path = stripPathPrefix(strings.TrimSpace(line[len("+++ "):]))
		}
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++ "):
			cur.LinesAdded++
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "--- "):
			cur.LinesDeleted++
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	flush()
	return changes
}

func stripPathPrefix(p string) string {
	for _, prefix := range []string{"a/", "b/"} {
		if strings.HasPrefix(p, prefix) {
			return p[len(prefix):]
		}
	}
	if p == "/dev/null" {
		return ""
	}
	return p
}

// Files returns the sorted set of paths a unified diff touches.
func Files(diff string) []string {
	seen := make(map[string]bool)
	for _, c := range SplitFiles(diff) {
		if c.Path != "" {
			seen[c.Path] = true
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// ChangedLines counts added plus deleted lines across the whole diff.
func ChangedLines(diff string) int {
	var n int
	for _, c := range SplitFiles(diff) {
		n += c.LinesAdded + c.LinesDeleted
	}
	return n
}
