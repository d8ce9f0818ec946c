package sandbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/forgeflow/forgeflow/pkg/config"
)

// Workspace is a long-lived checkout used by the validation pipeline during
// the fix loop. Unlike the Foreman's single-shot scratch dir, a Workspace
// is prepared once (clone + install) and re-primed with each candidate
// diff.
type Workspace struct {
	Dir   string
	Stack Stack

	executor *Executor
	cfg      *config.SandboxConfig
}

// PrepareWorkspace clones the repo at the given branch and installs
// dependencies.
func PrepareWorkspace(ctx context.Context, executor *Executor, cfg *config.SandboxConfig, taskID, cloneURL, branch string) (*Workspace, error) {
	dir, err := os.MkdirTemp(cfg.WorkDirRoot, "workspace-"+taskID+"-")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	w := &Workspace{Dir: dir, executor: executor, cfg: cfg}

	clone := gitCommand("clone", "--depth", "1", "--branch", branch, cloneURL, ".")
	if res := executor.Run(ctx, dir, clone, cfg.CloneTimeout.Std()); !res.Success {
		_ = w.Close()
		return nil, fmt.Errorf("workspace clone failed: %s", res.Stderr+res.Error)
	}

	w.Stack = DetectStack(dir)
	install, err := InstallDeps(w.Stack.PackageManager)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if res := executor.Run(ctx, dir, install, cfg.InstallTimeout.Std()); !res.Success {
		_ = w.Close()
		return nil, fmt.Errorf("workspace install failed: %s", res.Stderr+res.Error)
	}
	return w, nil
}

// ApplyDiff resets the checkout to the branch head and applies a candidate
// diff on top.
func (w *Workspace) ApplyDiff(ctx context.Context, diff string) error {
	timeout := w.cfg.CloneTimeout.Std()

	if res := w.executor.Run(ctx, w.Dir, gitCommand("checkout", "--", "."), timeout); !res.Success {
		return fmt.Errorf("workspace reset failed: %s", res.Stderr+res.Error)
	}
	if res := w.executor.Run(ctx, w.Dir, gitCommand("clean", "-fd", "--exclude=node_modules"), timeout); !res.Success {
		return fmt.Errorf("workspace clean failed: %s", res.Stderr+res.Error)
	}

	patchPath := filepath.Join(w.Dir, ".forgeflow.patch")
	if err := os.WriteFile(patchPath, []byte(diff), 0o600); err != nil {
		return fmt.Errorf("write patch file: %w", err)
	}
	defer os.Remove(patchPath)

	apply := gitCommand("apply", "--whitespace=nowarn", ".forgeflow.patch")
	if res := w.executor.Run(ctx, w.Dir, apply, timeout); !res.Success {
		return fmt.Errorf("diff does not apply: %s", res.Stderr+res.Error)
	}
	return nil
}

// Runner returns a check runner bound to this workspace.
func (w *Workspace) Runner(timeout time.Duration) *WorkspaceRunner {
	return NewWorkspaceRunner(w.executor, w.Dir, timeout)
}

// Close removes the workspace directory.
func (w *Workspace) Close() error {
	if w.Dir == "" {
		return nil
	}
	err := os.RemoveAll(w.Dir)
	w.Dir = ""
	return err
}
