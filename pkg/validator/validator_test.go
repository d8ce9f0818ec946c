package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/models"
)

const validDiff = `--- src/util.ts
+++ src/util.ts
@@ -1,1 +1,2 @@
+import { x } from './x';
 export const y = x;
`

type fakeRunner struct {
	typecheck    CommandOutput
	lint         CommandOutput
	test         CommandOutput
	build        CommandOutput
	relatedTests bool
	buildTarget  bool

	calls []string
}

func (f *fakeRunner) Typecheck(context.Context) (CommandOutput, error) {
	f.calls = append(f.calls, "typecheck")
	return f.typecheck, nil
}

func (f *fakeRunner) Lint(context.Context) (CommandOutput, error) {
	f.calls = append(f.calls, "lint")
	return f.lint, nil
}

func (f *fakeRunner) UnitTest(context.Context, []string) (CommandOutput, error) {
	f.calls = append(f.calls, "unit_test")
	return f.test, nil
}

func (f *fakeRunner) Build(context.Context) (CommandOutput, error) {
	f.calls = append(f.calls, "build")
	return f.build, nil
}

func (f *fakeRunner) HasRelatedTests([]string) bool { return f.relatedTests }
func (f *fakeRunner) HasBuildTarget() bool          { return f.buildTarget }

func newValidator(r CheckRunner) *Validator {
	return New(r, &config.ValidatorConfig{MaxTypeErrors: 50})
}

func TestEmptyDiffIsTerminal(t *testing.T) {
	runner := &fakeRunner{}
	v := newValidator(runner)

	verdict, err := v.Validate(context.Background(), "", nil)
	require.NoError(t, err)
	assert.True(t, verdict.Terminal())
	assert.Equal(t, TerminalInvalidDiff, verdict.TerminalReason)
	assert.False(t, verdict.Passed)
	require.Len(t, verdict.Checks, 1)
	assert.Equal(t, models.CheckDiffFormat, verdict.Checks[0].Type)
	assert.Equal(t, models.CheckFailed, verdict.Checks[0].Status)
	assert.Empty(t, runner.calls, "no tool runs after a terminal diff_format failure")
}

func TestHappyPathAllChecksPass(t *testing.T) {
	runner := &fakeRunner{relatedTests: true, buildTarget: true}
	v := newValidator(runner)

	verdict, err := v.Validate(context.Background(), validDiff, []string{"src/util.ts"})
	require.NoError(t, err)
	assert.True(t, verdict.Passed)
	assert.False(t, verdict.Terminal())
	assert.InDelta(t, 1.0, verdict.Confidence, 1e-9)
	assert.Equal(t, []string{"typecheck", "lint", "unit_test", "build"}, runner.calls)
}

func TestCriticalTypeErrorShortCircuits(t *testing.T) {
	runner := &fakeRunner{
		typecheck: CommandOutput{
			ExitCode: 1,
			Stdout:   "src/util.ts(3,7): error TS2304: Cannot find name 'x'.",
		},
		relatedTests: true,
		buildTarget:  true,
	}
	v := newValidator(runner)

	verdict, err := v.Validate(context.Background(), validDiff, []string{"src/util.ts"})
	require.NoError(t, err)
	assert.False(t, verdict.Passed)
	assert.False(t, verdict.Terminal())
	assert.Equal(t, []string{"typecheck"}, runner.calls, "later checks are skipped")

	require.NotEmpty(t, verdict.Issues)
	issue := verdict.Issues[0]
	assert.Equal(t, models.SeverityCritical, issue.Severity)
	assert.Equal(t, "TS2304", issue.Code)
	assert.Equal(t, "add import for x", issue.SuggestedFix)
	assert.Contains(t, verdict.FixPlan, "add import for x")
}

func TestTooManyTypeErrorsIsTerminal(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		sb.WriteString("src/util.ts(1,1): error TS2322: Type 'a' is not assignable to type 'b'.\n")
	}
	runner := &fakeRunner{typecheck: CommandOutput{ExitCode: 1, Stdout: sb.String()}}
	v := newValidator(runner)

	verdict, err := v.Validate(context.Background(), validDiff, nil)
	require.NoError(t, err)
	assert.True(t, verdict.Terminal())
	assert.Equal(t, models.ReasonTooManyTypeErrors, verdict.TerminalReason)
}

func TestUnitTestSkippedWithoutRelatedTests(t *testing.T) {
	runner := &fakeRunner{relatedTests: false, buildTarget: false}
	v := newValidator(runner)

	verdict, err := v.Validate(context.Background(), validDiff, []string{"src/util.ts"})
	require.NoError(t, err)
	assert.True(t, verdict.Passed)

	byType := map[models.CheckType]models.CheckResult{}
	for _, c := range verdict.Checks {
		byType[c.Type] = c
	}
	assert.Equal(t, models.CheckSkipped, byType[models.CheckUnitTest].Status)
	assert.Equal(t, models.CheckSkipped, byType[models.CheckBuild].Status)
	// Skipped checks do not dilute confidence.
	assert.InDelta(t, 1.0, verdict.Confidence, 1e-9)
}

func TestIssuesSortedBySeverity(t *testing.T) {
	runner := &fakeRunner{
		typecheck: CommandOutput{
			ExitCode: 1,
			Stdout: "src/a.ts(1,1): warning TS6133: 'y' is declared but never used.\n" +
				"src/a.ts(2,1): error TS2322: Type mismatch.\n",
		},
		lint: CommandOutput{ExitCode: 1, Stdout: "src/a.ts:5:1: missing semicolon"},
	}
	v := newValidator(runner)

	verdict, err := v.Validate(context.Background(), validDiff, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(verdict.Issues), 3)
	for i := 1; i < len(verdict.Issues); i++ {
		assert.LessOrEqual(t,
			verdict.Issues[i-1].Severity.Rank(),
			verdict.Issues[i].Severity.Rank())
	}
}

func TestFailedTestsProduceIssues(t *testing.T) {
	runner := &fakeRunner{
		relatedTests: true,
		test: CommandOutput{
			ExitCode: 1,
			Stdout:   "PASS src/a.test.ts\n  ✕ renders the header\nFAIL src/b.test.ts",
		},
	}
	v := newValidator(runner)

	verdict, err := v.Validate(context.Background(), validDiff, []string{"src/a.ts"})
	require.NoError(t, err)
	assert.False(t, verdict.Passed)
	var testIssues int
	for _, issue := range verdict.Issues {
		if issue.Category == models.CheckUnitTest {
			testIssues++
		}
	}
	assert.Equal(t, 2, testIssues)
	assert.Equal(t, models.FixTargeted, verdict.FixStrategy)
}

func TestConfidenceIsPassedFraction(t *testing.T) {
	runner := &fakeRunner{
		lint: CommandOutput{ExitCode: 1, Stdout: "src/a.ts:1:1: style nit"},
	}
	v := newValidator(runner)

	verdict, err := v.Validate(context.Background(), validDiff, nil)
	require.NoError(t, err)
	// diff_format, typecheck pass; lint fails; unit_test and build skipped.
	assert.InDelta(t, 2.0/3.0, verdict.Confidence, 1e-9)
}
