package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// Foreman re-runs the full verification cycle in an isolated scratch
// workspace: clone, apply, install, type-check, test. It is the last gate
// before a PR is opened.
type Foreman struct {
	executor *Executor
	cfg      *config.SandboxConfig
}

// NewForeman creates a Foreman over the given executor.
func NewForeman(executor *Executor, cfg *config.SandboxConfig) *Foreman {
	if executor == nil {
		panic("NewForeman: executor must not be nil")
	}
	if cfg == nil {
		panic("NewForeman: cfg must not be nil")
	}
	return &Foreman{executor: executor, cfg: cfg}
}

// RunInput describes one Foreman invocation.
type RunInput struct {
	TaskID   string
	CloneURL string
	Branch   string
	Diff     string // normalized unified diff

	// KeepWorkspace retains the workspace on success so the caller can
	// commit and push from it. The caller owns cleanup.
	KeepWorkspace bool
}

// RunResult reports the outcome. WorkDir is set only on failure, for
// forensic capture; successful runs clean up unless configured otherwise.
type RunResult struct {
	Passed  bool
	WorkDir string
	Stage   string // stage that failed: clone, apply, install, typecheck, test
	Output  string
}

// Run executes the isolation cycle. Every stage has its own wall-clock
// timeout from configuration.
func (f *Foreman) Run(ctx context.Context, in RunInput) (*RunResult, error) {
	workDir, err := os.MkdirTemp(f.cfg.WorkDirRoot, "foreman-"+in.TaskID+"-")
	if err != nil {
		return nil, fmt.Errorf("create foreman workspace: %w", err)
	}
	log := slog.With("task_id", in.TaskID, "workdir", workDir)

	fail := func(stage string, res ExecResult) (*RunResult, error) {
		log.Warn("Foreman stage failed", "stage", stage, "error", res.Error)
		return &RunResult{
			Passed:  false,
			WorkDir: workDir,
			Stage:   stage,
			Output:  res.Stdout + res.Stderr + res.Error,
		}, nil
	}

	// Clone at the task branch. Shallow: the foreman never needs history.
	clone := gitCommand("clone", "--depth", "1", "--branch", in.Branch, in.CloneURL, ".")
	if res := f.executor.Run(ctx, workDir, clone, f.cfg.CloneTimeout.Std()); !res.Success {
		return fail("clone", res)
	}

	// Apply the candidate diff.
	patchPath := filepath.Join(workDir, ".forgeflow.patch")
	if err := os.WriteFile(patchPath, []byte(in.Diff), 0o600); err != nil {
		return nil, fmt.Errorf("write patch file: %w", err)
	}
	apply := gitCommand("apply", "--whitespace=nowarn", ".forgeflow.patch")
	if res := f.executor.Run(ctx, workDir, apply, f.cfg.CloneTimeout.Std()); !res.Success {
		return fail("apply", res)
	}
	_ = os.Remove(patchPath)

	stack := DetectStack(workDir)
	log.Info("Foreman workspace ready", "package_manager", stack.PackageManager)

	install, err := InstallDeps(stack.PackageManager)
	if err != nil {
		return nil, err
	}
	if res := f.executor.Run(ctx, workDir, install, f.cfg.InstallTimeout.Std()); !res.Success {
		return fail("install", res)
	}

	if stack.HasTypeScript {
		if res := f.executor.Run(ctx, workDir, TypeCheck(), f.cfg.TypecheckTimeout.Std()); !res.Success {
			return fail("typecheck", res)
		}
	}

	if stack.TestScript != "" {
		test := scriptCommand(stack.PackageManager, "test")
		if res := f.executor.Run(ctx, workDir, test, f.cfg.TestTimeout.Std()); !res.Success {
			return fail("test", res)
		}
	}

	if !in.KeepWorkspace && f.cfg.CleanupOnSuccessEnabled() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Warn("Foreman cleanup failed", "error", err)
		}
		workDir = ""
	}
	return &RunResult{Passed: true, WorkDir: workDir}, nil
}

// Cleanup removes a retained workspace, used when a failed task is closed
// out or cancelled.
func (f *Foreman) Cleanup(workDir string) error {
	if workDir == "" {
		return nil
	}
	if err := os.RemoveAll(workDir); err != nil {
		return models.NewKindError(models.KindInternal, "sandbox_cleanup", err)
	}
	return nil
}
