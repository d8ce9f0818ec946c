package masking

import (
	"regexp"
	"strings"
)

// sensitiveKey matches env-style variable names that carry credentials.
var sensitiveKey = regexp.MustCompile(`(?i)(?:^|_)(?:token|secret|password|passwd|key|credential|auth)s?(?:_|$)|(?:token|secret|password|key)$`)

// envLine matches one KEY=VALUE assignment at the start of a line.
var envLine = regexp.MustCompile(`(?m)^(\s*(?:export\s+)?)([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// DotenvMasker masks values of sensitive variables in env-file style
// output. Build tools that print their environment (or cat a .env file)
// leak every secret a workspace holds; this catches the whole line rather
// than relying on the value's shape.
type DotenvMasker struct{}

// Name implements Masker.
func (m *DotenvMasker) Name() string { return "dotenv" }

// AppliesTo reports whether the content contains KEY=VALUE lines.
func (m *DotenvMasker) AppliesTo(content string) bool {
	return envLine.MatchString(content)
}

// Mask replaces the value of every sensitive-looking assignment.
func (m *DotenvMasker) Mask(content string) string {
	return envLine.ReplaceAllStringFunc(content, func(line string) string {
		parts := envLine.FindStringSubmatch(line)
		if parts == nil {
			return line
		}
		prefix, key, value := parts[1], parts[2], parts[3]
		if strings.TrimSpace(value) == "" || !sensitiveKey.MatchString(key) {
			return line
		}
		return prefix + key + "=__MASKED_ENV_VALUE__"
	})
}
