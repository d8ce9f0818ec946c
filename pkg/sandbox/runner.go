package sandbox

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/forgeflow/forgeflow/pkg/validator"
)

// WorkspaceRunner adapts the executor to the validator's CheckRunner over
// one prepared workspace directory.
type WorkspaceRunner struct {
	executor *Executor
	dir      string
	stack    Stack
	timeout  time.Duration
}

// NewWorkspaceRunner probes the workspace and returns a runner for it.
func NewWorkspaceRunner(executor *Executor, dir string, timeout time.Duration) *WorkspaceRunner {
	return &WorkspaceRunner{
		executor: executor,
		dir:      dir,
		stack:    DetectStack(dir),
		timeout:  timeout,
	}
}

// Typecheck implements validator.CheckRunner.
func (r *WorkspaceRunner) Typecheck(ctx context.Context) (validator.CommandOutput, error) {
	return r.run(ctx, TypeCheck()), nil
}

// Lint implements validator.CheckRunner.
func (r *WorkspaceRunner) Lint(ctx context.Context) (validator.CommandOutput, error) {
	return r.run(ctx, Command{Kind: cmdScript, Argv: []string{"npx", "eslint", ".", "--format", "unix"}}), nil
}

// UnitTest implements validator.CheckRunner, restricted to tests related
// to the changed files.
func (r *WorkspaceRunner) UnitTest(ctx context.Context, relatedFiles []string) (validator.CommandOutput, error) {
	argv := []string{"npx", "jest", "--findRelatedTests", "--passWithNoTests"}
	argv = append(argv, relatedFiles...)
	return r.run(ctx, Command{Kind: cmdScript, Argv: argv}), nil
}

// Build implements validator.CheckRunner.
func (r *WorkspaceRunner) Build(ctx context.Context) (validator.CommandOutput, error) {
	return r.run(ctx, scriptCommand(r.stack.PackageManager, "build")), nil
}

// HasRelatedTests probes for sibling test files of the targets.
func (r *WorkspaceRunner) HasRelatedTests(files []string) bool {
	for _, f := range files {
		ext := filepath.Ext(f)
		base := strings.TrimSuffix(f, ext)
		candidates := []string{
			base + ".test" + ext,
			base + ".spec" + ext,
			filepath.Join(filepath.Dir(f), "__tests__", filepath.Base(f)),
		}
		for _, c := range candidates {
			if fileExists(filepath.Join(r.dir, c)) {
				return true
			}
		}
	}
	return false
}

// HasBuildTarget reports whether the workspace declares a build script.
func (r *WorkspaceRunner) HasBuildTarget() bool {
	return r.stack.HasBuildScript
}

func (r *WorkspaceRunner) run(ctx context.Context, cmd Command) validator.CommandOutput {
	res := r.executor.Run(ctx, r.dir, cmd, r.timeout)
	return validator.CommandOutput{
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		Duration: res.Duration,
	}
}
