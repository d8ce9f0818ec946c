// Package masking scrubs credentials from text the pipeline captures:
// sandboxed command output, webhook payloads, and anything else that may
// echo a secret into the database or the logs.
package masking

// Masker is a code-based masker for content that needs structural parsing
// beyond what a regex sweep can do safely.
type Masker interface {
	// Name returns the masker's registration name.
	Name() string
	// AppliesTo reports whether the content looks like this masker's format.
	AppliesTo(content string) bool
	// Mask returns the content with sensitive values replaced.
	Mask(content string) string
}
