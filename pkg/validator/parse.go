package validator

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/forgeflow/forgeflow/pkg/models"
)

// tscErrorRe matches compiler diagnostics of the form
// "src/foo.ts(12,5): error TS2304: Cannot find name 'x'."
var tscErrorRe = regexp.MustCompile(`(?m)^(.+?)\((\d+),\d+\): (error|warning) (TS\d+): (.+)$`)

// lintErrorRe matches unix-format lint output "file:line:col: message".
var lintErrorRe = regexp.MustCompile(`(?m)^(.+?):(\d+):\d+:\s+(.+)$`)

// failedTestRe matches per-test failure lines from common runners.
var failedTestRe = regexp.MustCompile(`(?m)^\s*(?:✕|FAIL|not ok \d+ -?)\s+(.+)$`)

var cannotFindNameRe = regexp.MustCompile(`[Cc]annot find name '([^']+)'`)
var cannotFindModuleRe = regexp.MustCompile(`[Cc]annot find module '([^']+)'`)

// criticalTypeCode reports whether a compiler code blocks further checking:
// grammar errors (TS1xxx) and name/module resolution failures leave the
// later checks meaningless.
func criticalTypeCode(code string) bool {
	if strings.HasPrefix(code, "TS1") && len(code) == 6 {
		return true
	}
	switch code {
	case "TS2304", "TS2307":
		return true
	}
	return false
}

func evalTypecheck(out CommandOutput, runErr error) ([]models.CategorizedIssue, models.CheckResult) {
	result := models.CheckResult{
		Type:       models.CheckTypes,
		DurationMs: out.Duration.Milliseconds(),
	}
	if runErr != nil {
		result.Status = models.CheckErrored
		result.Output = runErr.Error()
		return nil, result
	}

	var issues []models.CategorizedIssue
	for i, m := range tscErrorRe.FindAllStringSubmatch(out.Combined(), -1) {
		file, lineStr, level, code, msg := m[1], m[2], m[3], m[4], m[5]
		line, _ := strconv.Atoi(lineStr)
		severity := models.SeverityError
		if level == "warning" {
			severity = models.SeverityWarning
		} else if criticalTypeCode(code) {
			severity = models.SeverityCritical
		}
		issue := models.CategorizedIssue{
			ID:           fmt.Sprintf("typecheck-%d", i+1),
			Category:     models.CheckTypes,
			Severity:     severity,
			Description:  fmt.Sprintf("%s: %s", code, msg),
			File:         file,
			Line:         line,
			Code:         code,
			SuggestedFix: suggestedFix(code, msg),
		}
		issues = append(issues, issue)
		if severity == models.SeverityWarning {
			result.WarningCount++
		} else {
			result.ErrorCount++
		}
	}

	if result.ErrorCount > 0 || (out.ExitCode != 0 && len(issues) == 0) {
		result.Status = models.CheckFailed
		if len(issues) == 0 {
			result.ErrorCount = 1
			result.Output = tail(out.Combined())
		}
	} else {
		result.Status = models.CheckPassed
	}
	return issues, result
}

// suggestedFix maps well-known compiler codes to an actionable hint.
func suggestedFix(code, msg string) string {
	switch code {
	case "TS2304":
		if m := cannotFindNameRe.FindStringSubmatch(msg); m != nil {
			return fmt.Sprintf("add import for %s", m[1])
		}
		return "add the missing import"
	case "TS2307":
		if m := cannotFindModuleRe.FindStringSubmatch(msg); m != nil {
			return fmt.Sprintf("install or correct the path of module %s", m[1])
		}
		return "install the missing module or correct the import path"
	case "TS2322":
		return "align the assigned value's type with the declared type"
	case "TS2339":
		return "check the property name against the type definition"
	case "TS2345":
		return "adjust the argument to match the parameter type"
	}
	return ""
}

func evalLint(out CommandOutput, runErr error) ([]models.CategorizedIssue, models.CheckResult) {
	result := models.CheckResult{
		Type:       models.CheckLint,
		DurationMs: out.Duration.Milliseconds(),
	}
	if runErr != nil {
		result.Status = models.CheckErrored
		result.Output = runErr.Error()
		return nil, result
	}
	if out.ExitCode == 0 {
		result.Status = models.CheckPassed
		return nil, result
	}

	var issues []models.CategorizedIssue
	for i, m := range lintErrorRe.FindAllStringSubmatch(out.Combined(), -1) {
		line, _ := strconv.Atoi(m[2])
		issues = append(issues, models.CategorizedIssue{
			ID:          fmt.Sprintf("lint-%d", i+1),
			Category:    models.CheckLint,
			Severity:    models.SeverityWarning,
			Description: m[3],
			File:        m[1],
			Line:        line,
		})
		result.WarningCount++
	}
	result.Status = models.CheckFailed
	if len(issues) == 0 {
		result.WarningCount = 1
		result.Output = tail(out.Combined())
	}
	return issues, result
}

func evalTests(out CommandOutput, runErr error) ([]models.CategorizedIssue, models.CheckResult) {
	result := models.CheckResult{
		Type:       models.CheckUnitTest,
		DurationMs: out.Duration.Milliseconds(),
	}
	if runErr != nil {
		result.Status = models.CheckErrored
		result.Output = runErr.Error()
		return nil, result
	}
	if out.ExitCode == 0 {
		result.Status = models.CheckPassed
		return nil, result
	}

	result.Status = models.CheckFailed
	var issues []models.CategorizedIssue
	for i, m := range failedTestRe.FindAllStringSubmatch(out.Combined(), -1) {
		issues = append(issues, models.CategorizedIssue{
			ID:          fmt.Sprintf("unit_test-%d", i+1),
			Category:    models.CheckUnitTest,
			Severity:    models.SeverityError,
			Description: fmt.Sprintf("test failed: %s", strings.TrimSpace(m[1])),
		})
		result.ErrorCount++
	}
	if len(issues) == 0 {
		result.ErrorCount = 1
		result.Output = tail(out.Combined())
		issues = append(issues, models.CategorizedIssue{
			ID:          "unit_test-1",
			Category:    models.CheckUnitTest,
			Severity:    models.SeverityError,
			Description: "test run failed: " + tail(out.Combined()),
		})
	}
	return issues, result
}

func evalBuild(out CommandOutput, runErr error) ([]models.CategorizedIssue, models.CheckResult) {
	result := models.CheckResult{
		Type:       models.CheckBuild,
		DurationMs: out.Duration.Milliseconds(),
	}
	if runErr != nil {
		result.Status = models.CheckErrored
		result.Output = runErr.Error()
		return nil, result
	}
	if out.ExitCode == 0 {
		result.Status = models.CheckPassed
		return nil, result
	}
	result.Status = models.CheckFailed
	result.ErrorCount = 1
	result.Output = tail(out.Combined())
	return []models.CategorizedIssue{{
		ID:          "build-1",
		Category:    models.CheckBuild,
		Severity:    models.SeverityError,
		Description: "build failed: " + tail(out.Combined()),
	}}, result
}

func hasCriticalIssue(issues []models.CategorizedIssue) bool {
	for _, i := range issues {
		if i.Severity == models.SeverityCritical {
			return true
		}
	}
	return false
}

// sortIssues orders critical → error → warning, stable within a severity.
func sortIssues(issues []models.CategorizedIssue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.Rank() < issues[j].Severity.Rank()
	})
}

// tail bounds free-form tool output carried in the verdict.
func tail(s string) string {
	const limit = 2000
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[len(s)-limit:]
}
