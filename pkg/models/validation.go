package models

// CheckType identifies one validator check.
type CheckType string

// Validator checks, in pipeline order.
const (
	CheckDiffFormat CheckType = "diff_format"
	CheckSyntax     CheckType = "syntax"
	CheckTypes      CheckType = "typecheck"
	CheckLint       CheckType = "lint"
	CheckUnitTest   CheckType = "unit_test"
	CheckBuild      CheckType = "build"
)

// CheckStatus is the outcome of one check.
type CheckStatus string

// Check outcomes. Skipped checks count neither for nor against confidence.
const (
	CheckPassed  CheckStatus = "passed"
	CheckFailed  CheckStatus = "failed"
	CheckSkipped CheckStatus = "skipped"
	CheckErrored CheckStatus = "error"
)

// CheckResult is the outcome of a single validation check.
type CheckResult struct {
	Type         CheckType   `json:"type"`
	Status       CheckStatus `json:"status"`
	DurationMs   int64       `json:"duration_ms"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	Output       string      `json:"output,omitempty"`
	SkipReason   string      `json:"skip_reason,omitempty"`
}

// IssueSeverity orders categorized issues for the fixer.
type IssueSeverity string

// Issue severities, most urgent first.
const (
	SeverityCritical IssueSeverity = "critical"
	SeverityError    IssueSeverity = "error"
	SeverityWarning  IssueSeverity = "warning"
)

// severityRank maps severity to sort order.
var severityRank = map[IssueSeverity]int{
	SeverityCritical: 0,
	SeverityError:    1,
	SeverityWarning:  2,
}

// Rank returns the sort order of the severity; unknown sorts last.
func (s IssueSeverity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// CategorizedIssue is a single actionable problem extracted from check
// output, normalized so the fixer agent can consume it.
type CategorizedIssue struct {
	ID            string        `json:"id"`
	Category      CheckType     `json:"category"`
	Severity      IssueSeverity `json:"severity"`
	Description   string        `json:"description"`
	File          string        `json:"file,omitempty"`
	Line          int           `json:"line,omitempty"`
	Code          string        `json:"code,omitempty"` // tool-native code, e.g. TS2304
	SuggestedFix  string        `json:"suggested_fix,omitempty"`
	RelatedIssues []string      `json:"related_issues,omitempty"`
}

// FixStrategy tells the loop how to respond to a failed validation.
type FixStrategy string

// Fix strategies derived from the issue mix.
const (
	FixTargeted   FixStrategy = "targeted"   // few localized issues, patch in place
	FixStructural FixStrategy = "structural" // widespread issues, rework the diff
	FixNone       FixStrategy = "none"       // nothing actionable, escalate
)

// ValidationVerdict is the aggregated outcome of a validation run.
type ValidationVerdict struct {
	Passed         bool               `json:"passed"`
	Checks         []CheckResult      `json:"checks"`
	Issues         []CategorizedIssue `json:"issues"`
	Confidence     float64            `json:"confidence"`
	FixStrategy    FixStrategy        `json:"fix_strategy"`
	FixPlan        string             `json:"fix_plan,omitempty"` // step-by-step guidance for the fixer
	TerminalReason string             `json:"terminal_reason,omitempty"`
}

// Terminal reports whether the verdict forbids further fix attempts.
func (v *ValidationVerdict) Terminal() bool { return v.TerminalReason != "" }

// ComputeConfidence derives confidence as the passed fraction of executed
// checks. Skipped checks are excluded; a run with nothing executed scores 0.
func ComputeConfidence(checks []CheckResult) float64 {
	var passed, executed int
	for _, c := range checks {
		switch c.Status {
		case CheckPassed:
			passed++
			executed++
		case CheckFailed, CheckErrored:
			executed++
		}
	}
	if executed == 0 {
		return 0
	}
	return float64(passed) / float64(executed)
}
