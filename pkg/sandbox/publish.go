package sandbox

import (
	"context"
	"fmt"
)

// Publish commits everything in a retained foreman workspace to a new
// branch and pushes it. The workspace must hold an applied, verified diff.
func (f *Foreman) Publish(ctx context.Context, workDir, branch, message string) error {
	if workDir == "" {
		return fmt.Errorf("publish requires a retained workspace")
	}
	timeout := f.cfg.CloneTimeout.Std()

	steps := []Command{
		gitCommand("checkout", "-b", branch),
		gitCommand("add", "-A"),
		gitCommand("-c", "user.name=forgeflow", "-c", "user.email=forgeflow@localhost",
			"commit", "-m", message),
		gitCommand("push", "origin", branch),
	}
	for _, cmd := range steps {
		if res := f.executor.Run(ctx, workDir, cmd, timeout); !res.Success {
			return fmt.Errorf("publish step %q failed: %s", cmd.String(), res.Stderr+res.Error)
		}
	}
	return nil
}
