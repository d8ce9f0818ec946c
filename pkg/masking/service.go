package masking

import "log/slog"

// Service applies data masking to captured output. Created once at
// application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	patterns []*CompiledPattern
	maskers  []Masker
}

// NewService creates a masking service with the built-in patterns and
// code maskers compiled. Extra patterns extend the built-in set.
func NewService(extra ...Pattern) *Service {
	patterns := builtinPatterns()
	patterns = append(patterns, extra...)

	s := &Service{
		patterns: compilePatterns(patterns),
		maskers:  []Masker{&DotenvMasker{}},
	}

	slog.Debug("Masking service initialized",
		"patterns", len(s.patterns),
		"code_maskers", len(s.maskers))
	return s
}

// Mask replaces credential-shaped substrings in content. Code-based
// maskers run first (they understand structure), then the regex sweep.
func (s *Service) Mask(content string) string {
	if content == "" {
		return content
	}

	masked := content
	for _, m := range s.maskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}
