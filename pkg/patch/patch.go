// Package patch detects and normalizes the diff dialects that LLMs emit
// into plain unified diffs the rest of the pipeline can parse and apply.
package patch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Format is the detected diff dialect.
type Format string

// Diff dialects seen in model output.
const (
	FormatUnified       Format = "unified"        // plain ---/+++/@@ hunks
	FormatGit           Format = "git"            // unified wrapped in "diff --git" headers
	FormatFenced        Format = "fenced"         // any of the above inside a ``` fence
	FormatSearchReplace Format = "search_replace" // SEARCH/REPLACE conflict-marker blocks
	FormatUnknown       Format = "unknown"
)

var (
	fenceRe       = regexp.MustCompile("(?s)```(?:diff|patch)?\\s*\\n(.*?)\\n?```")
	hunkHeaderRe  = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+\d+(?:,\d+)? @@`)
	searchBlockRe = regexp.MustCompile(`(?s)<<<<<<+ *SEARCH *(?:\n|$)(.*?)\n?======+ *\n(.*?)\n?>>>>>>+ *REPLACE`)
	fileMarkerRe  = regexp.MustCompile(`(?m)^(?:###|File|file):\s*(\S+)\s*$`)
)

// DetectFormat classifies raw model output by dialect.
func DetectFormat(raw string) Format {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return FormatUnknown
	}
	if fenceRe.MatchString(trimmed) {
		return FormatFenced
	}
	if searchBlockRe.MatchString(trimmed) {
		return FormatSearchReplace
	}
	if strings.HasPrefix(trimmed, "diff --git ") || strings.Contains(trimmed, "\ndiff --git ") {
		return FormatGit
	}
	if isUnified(trimmed) {
		return FormatUnified
	}
	return FormatUnknown
}

func isUnified(s string) bool {
	var sawOld, sawNew bool
	for _, line := range strings.Split(s, "\n") {
		switch {
		case strings.HasPrefix(line, "--- "):
			sawOld = true
		case strings.HasPrefix(line, "+++ "):
			sawNew = true
		case hunkHeaderRe.MatchString(line):
			if sawOld && sawNew {
				return true
			}
		}
	}
	return false
}

// Normalize converts raw model output into a plain unified diff. The result
// always ends with a single trailing newline. Unified input passes through
// unchanged apart from whitespace normalization, so detection after
// normalization is stable.
func Normalize(raw string) (string, error) {
	switch DetectFormat(raw) {
	case FormatUnified:
		return ensureTrailingNewline(strings.TrimRight(raw, "\n")), nil
	case FormatGit:
		return normalizeGit(raw), nil
	case FormatFenced:
		inner := extractFenced(raw)
		if inner == "" {
			return "", fmt.Errorf("fenced block contains no diff")
		}
		return Normalize(inner)
	case FormatSearchReplace:
		return normalizeSearchReplace(raw)
	default:
		return "", fmt.Errorf("unrecognized diff format")
	}
}

func extractFenced(raw string) string {
	var parts []string
	for _, m := range fenceRe.FindAllStringSubmatch(raw, -1) {
		if strings.TrimSpace(m[1]) != "" {
			parts = append(parts, strings.TrimRight(m[1], "\n"))
		}
	}
	return strings.Join(parts, "\n")
}

// normalizeGit strips the git-specific header lines and keeps the unified
// body. Index and mode lines carry no information the applier needs.
func normalizeGit(raw string) string {
	var out []string
	for _, line := range strings.Split(strings.TrimRight(raw, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "),
			strings.HasPrefix(line, "index "),
			strings.HasPrefix(line, "new file mode"),
			strings.HasPrefix(line, "deleted file mode"),
			strings.HasPrefix(line, "old mode"),
			strings.HasPrefix(line, "new mode"),
			strings.HasPrefix(line, "similarity index"),
			strings.HasPrefix(line, "rename from"),
			strings.HasPrefix(line, "rename to"):
			continue
		}
		// Git paths carry a/ b/ prefixes; the applier expects bare paths.
		if strings.HasPrefix(line, "--- a/") {
			line = "--- " + line[len("--- a/"):]
		} else if strings.HasPrefix(line, "+++ b/") {
			line = "+++ " + line[len("+++ b/"):]
		}
		out = append(out, line)
	}
	return ensureTrailingNewline(strings.Join(out, "\n"))
}

// normalizeSearchReplace synthesizes unified hunks by diffing each SEARCH
// block against its REPLACE block. File attribution comes from a preceding
// "File:" marker; blocks without one are rejected since an unanchored hunk
// cannot be applied.
func normalizeSearchReplace(raw string) (string, error) {
	markers := fileMarkerRe.FindAllStringSubmatchIndex(raw, -1)
	blocks := searchBlockRe.FindAllStringSubmatchIndex(raw, -1)
	if len(blocks) == 0 {
		return "", fmt.Errorf("no search/replace blocks found")
	}

	fileFor := func(blockStart int) string {
		name := ""
		for _, m := range markers {
			if m[0] < blockStart {
				name = raw[m[2]:m[3]]
			}
		}
		return name
	}

	dmp := diffmatchpatch.New()
	var b strings.Builder
	for _, m := range blocks {
		file := fileFor(m[0])
		if file == "" {
			return "", fmt.Errorf("search/replace block at offset %d has no file marker", m[0])
		}
		search := raw[m[2]:m[3]]
		replace := raw[m[4]:m[5]]

		oldLines := splitLines(search)
		newLines := splitLines(replace)
		fmt.Fprintf(&b, "--- %s\n+++ %s\n", file, file)
		fmt.Fprintf(&b, "@@ -1,%d +1,%d @@\n", len(oldLines), len(newLines))

		a, bb, arr := dmp.DiffLinesToChars(search+"\n", replace+"\n")
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, bb, false), arr)
		for _, d := range diffs {
			prefix := " "
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				prefix = "-"
			case diffmatchpatch.DiffInsert:
				prefix = "+"
			}
			for _, line := range splitLines(d.Text) {
				b.WriteString(prefix)
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}
	return b.String(), nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
