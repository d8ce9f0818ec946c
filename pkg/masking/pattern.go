package masking

import (
	"log/slog"
	"regexp"
)

// Pattern defines one regex-based masking rule.
type Pattern struct {
	Name        string
	Pattern     string
	Replacement string
	Description string
}

// CompiledPattern is a Pattern with its regex compiled.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns covers the credential shapes that show up in build and
// test output: tokens pasted into URLs, keys echoed from env files, PEM
// blocks read by mistake.
func builtinPatterns() []Pattern {
	return []Pattern{
		{
			Name:        "api_key",
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `api_key=__MASKED_API_KEY__`,
			Description: "API keys",
		},
		{
			Name:        "password",
			Pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `password=__MASKED_PASSWORD__`,
			Description: "Passwords",
		},
		{
			Name:        "token",
			Pattern:     `(?i)(?:token|bearer)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `token=__MASKED_TOKEN__`,
			Description: "Access tokens",
		},
		{
			Name:        "secret_key",
			Pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `secret_key=__MASKED_SECRET_KEY__`,
			Description: "Secret keys",
		},
		{
			Name:        "github_token",
			Pattern:     `gh[pousr]_[A-Za-z0-9_]{36,255}`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
		{
			Name:        "basic_auth_url",
			Pattern:     `(https?://)[^/\s:@]+:[^/\s:@]+@`,
			Replacement: `${1}__MASKED_CREDENTIALS__@`,
			Description: "Credentials embedded in URLs",
		},
		{
			Name:        "aws_access_key",
			Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			Replacement: `__MASKED_AWS_KEY__`,
			Description: "AWS access key IDs",
		},
		{
			Name:        "aws_secret_key",
			Pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
			Replacement: `aws_secret_access_key=__MASKED_AWS_SECRET__`,
			Description: "AWS secret keys",
		},
		{
			Name:        "pem_block",
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_PEM_BLOCK__`,
			Description: "PEM certificates and private keys",
		},
		{
			Name:        "ssh_key",
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
		{
			Name:        "slack_token",
			Pattern:     `xox[baprs]-[A-Za-z0-9-]{10,72}`,
			Replacement: `__MASKED_SLACK_TOKEN__`,
			Description: "Slack tokens",
		},
	}
}

// compilePatterns compiles the given patterns. Invalid patterns are logged
// and skipped.
func compilePatterns(patterns []Pattern) []*CompiledPattern {
	out := make([]*CompiledPattern, 0, len(patterns))
	for _, p := range patterns {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		out = append(out, &CompiledPattern{
			Name:        p.Name,
			Regex:       compiled,
			Replacement: p.Replacement,
			Description: p.Description,
		})
	}
	return out
}
