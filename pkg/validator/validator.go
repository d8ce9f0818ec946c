// Package validator runs fast deterministic checks against a candidate
// diff and returns a structured verdict with prioritized feedback for the
// fix loop.
package validator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/patch"
)

// TerminalInvalidDiff is the verdict reason for an empty or unparseable
// diff; the task fails without entering the fix loop.
const TerminalInvalidDiff = "Invalid diff format"

// CommandOutput is the raw result of one check command.
type CommandOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Combined returns stdout and stderr joined for parsing.
func (o CommandOutput) Combined() string {
	if o.Stdout == "" {
		return o.Stderr
	}
	if o.Stderr == "" {
		return o.Stdout
	}
	return o.Stdout + "\n" + o.Stderr
}

// CheckRunner executes the tool side of each check inside the task
// workspace. The sandbox provides the real implementation.
type CheckRunner interface {
	Typecheck(ctx context.Context) (CommandOutput, error)
	Lint(ctx context.Context) (CommandOutput, error)
	UnitTest(ctx context.Context, relatedFiles []string) (CommandOutput, error)
	Build(ctx context.Context) (CommandOutput, error)

	// HasRelatedTests reports whether test files exist for any of the
	// target files; without them the unit_test check is skipped.
	HasRelatedTests(files []string) bool
	// HasBuildTarget reports whether the workspace defines a build step.
	HasBuildTarget() bool
}

// Validator is the check pipeline.
type Validator struct {
	runner CheckRunner
	cfg    *config.ValidatorConfig
}

// New creates a validator over the given runner.
func New(runner CheckRunner, cfg *config.ValidatorConfig) *Validator {
	if runner == nil {
		panic("validator.New: runner must not be nil")
	}
	if cfg == nil {
		panic("validator.New: cfg must not be nil")
	}
	return &Validator{runner: runner, cfg: cfg}
}

// Validate runs the check sequence fail-fast:
//
//  1. diff_format — empty or structurally invalid is terminal
//  2. typecheck — critical codes short-circuit; >max errors is terminal
//  3. lint
//  4. unit_test — only when related test files exist
//  5. build — only when a build target exists
//
// Checks run serially so the result sequence is deterministic.
func (v *Validator) Validate(ctx context.Context, diff string, targetFiles []string) (*models.ValidationVerdict, error) {
	verdict := &models.ValidationVerdict{}

	// 1. diff_format
	start := time.Now()
	normalized, err := patch.Normalize(diff)
	if err != nil || patch.ChangedLines(normalized) == 0 {
		verdict.Checks = append(verdict.Checks, models.CheckResult{
			Type:       models.CheckDiffFormat,
			Status:     models.CheckFailed,
			DurationMs: time.Since(start).Milliseconds(),
			ErrorCount: 1,
			Output:     errString(err),
		})
		verdict.TerminalReason = TerminalInvalidDiff
		verdict.FixStrategy = models.FixNone
		verdict.Confidence = models.ComputeConfidence(verdict.Checks)
		return verdict, nil
	}
	verdict.Checks = append(verdict.Checks, models.CheckResult{
		Type:       models.CheckDiffFormat,
		Status:     models.CheckPassed,
		DurationMs: time.Since(start).Milliseconds(),
	})

	// 2. typecheck
	out, runErr := v.runner.Typecheck(ctx)
	issues, result := evalTypecheck(out, runErr)
	verdict.Checks = append(verdict.Checks, result)
	verdict.Issues = append(verdict.Issues, issues...)

	if result.ErrorCount > v.cfg.MaxTypeErrors {
		verdict.TerminalReason = models.ReasonTooManyTypeErrors
		verdict.FixStrategy = models.FixNone
		verdict.Confidence = models.ComputeConfidence(verdict.Checks)
		return verdict, nil
	}
	if hasCriticalIssue(issues) {
		slog.Debug("Critical type errors, skipping remaining checks",
			"errors", result.ErrorCount)
		finishVerdict(verdict)
		return verdict, nil
	}

	// 3. lint
	out, runErr = v.runner.Lint(ctx)
	lintIssues, lintResult := evalLint(out, runErr)
	verdict.Checks = append(verdict.Checks, lintResult)
	verdict.Issues = append(verdict.Issues, lintIssues...)

	// 4. unit_test
	if v.runner.HasRelatedTests(targetFiles) {
		out, runErr = v.runner.UnitTest(ctx, targetFiles)
		testIssues, testResult := evalTests(out, runErr)
		verdict.Checks = append(verdict.Checks, testResult)
		verdict.Issues = append(verdict.Issues, testIssues...)
	} else {
		verdict.Checks = append(verdict.Checks, models.CheckResult{
			Type:       models.CheckUnitTest,
			Status:     models.CheckSkipped,
			SkipReason: "no related test files for target files",
		})
	}

	// 5. build
	if v.runner.HasBuildTarget() {
		out, runErr = v.runner.Build(ctx)
		buildIssues, buildResult := evalBuild(out, runErr)
		verdict.Checks = append(verdict.Checks, buildResult)
		verdict.Issues = append(verdict.Issues, buildIssues...)
	} else {
		verdict.Checks = append(verdict.Checks, models.CheckResult{
			Type:       models.CheckBuild,
			Status:     models.CheckSkipped,
			SkipReason: "no build target detected",
		})
	}

	finishVerdict(verdict)
	return verdict, nil
}

func finishVerdict(v *models.ValidationVerdict) {
	sortIssues(v.Issues)
	v.Confidence = models.ComputeConfidence(v.Checks)
	v.Passed = true
	for _, c := range v.Checks {
		if c.Status == models.CheckFailed || c.Status == models.CheckErrored {
			v.Passed = false
			break
		}
	}
	switch {
	case v.Passed:
		v.FixStrategy = models.FixNone
	case len(v.Issues) > 0 && len(v.Issues) <= 5:
		v.FixStrategy = models.FixTargeted
	case len(v.Issues) > 5:
		v.FixStrategy = models.FixStructural
	default:
		v.FixStrategy = models.FixNone
	}
	if !v.Passed {
		v.FixPlan = buildFixPlan(v.Issues)
	}
}

// buildFixPlan renders the sorted issues as numbered steps for the fixer.
func buildFixPlan(issues []models.CategorizedIssue) string {
	if len(issues) == 0 {
		return ""
	}
	var b strings.Builder
	for i, issue := range issues {
		fmt.Fprintf(&b, "%d. [%s] %s", i+1, issue.Severity, issue.Description)
		if issue.File != "" {
			fmt.Fprintf(&b, " (%s:%d)", issue.File, issue.Line)
		}
		if issue.SuggestedFix != "" {
			fmt.Fprintf(&b, " -> suggested: %s", issue.SuggestedFix)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func errString(err error) string {
	if err == nil {
		return "diff contains no changes"
	}
	return err.Error()
}
