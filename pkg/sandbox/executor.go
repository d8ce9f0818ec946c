package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/forgeflow/forgeflow/pkg/masking"
)

// BlockedPrefix starts every error message for a denylisted command.
const BlockedPrefix = "Blocked: Matches blocked pattern"

// logFieldLimit bounds each captured field in the execution log.
const logFieldLimit = 10 * 1024

// ExecResult is the outcome of one executor invocation.
type ExecResult struct {
	Success  bool
	Blocked  bool
	DryRun   bool
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Error    string
}

// LogEntry is one audit record. Fields are truncated to 10KB.
type LogEntry struct {
	Time    time.Time
	Command string
	Kind    CommandKind
	Blocked bool
	DryRun  bool
	Success bool
	Stdout  string
	Stderr  string
}

// Executor launches validated commands without a shell. It owns the
// denylist gate, the custom-command policy, dry-run short-circuiting, and
// the bounded audit log.
type Executor struct {
	allowCustom bool
	dryRun      bool
	mask        *masking.Service

	mu  sync.Mutex
	log []LogEntry
}

// NewExecutor creates an executor. allowCustom gates Custom commands;
// dryRun short-circuits every execution with a marker result. Captured
// output is masked before it is stored or returned.
func NewExecutor(allowCustom, dryRun bool) *Executor {
	return &Executor{
		allowCustom: allowCustom,
		dryRun:      dryRun,
		mask:        masking.NewService(),
	}
}

// Run executes a command in workDir with the given timeout. No shell is
// involved; argv[0] is resolved on PATH and arguments pass through as-is.
func (e *Executor) Run(ctx context.Context, workDir string, cmd Command, timeout time.Duration) ExecResult {
	line := cmd.String()

	if name := matchDenylist(line); name != "" {
		res := ExecResult{
			Blocked: true,
			Error:   fmt.Sprintf("%s: %s", BlockedPrefix, name),
		}
		e.record(cmd, res)
		slog.Warn("Command blocked by denylist", "pattern", name, "kind", cmd.Kind)
		return res
	}

	if cmd.Kind == CmdCustom {
		if !e.allowCustom {
			res := ExecResult{Error: "custom commands are disabled"}
			e.record(cmd, res)
			return res
		}
		if !cmd.CustomAcknowledged {
			res := ExecResult{Error: "custom command requires explicit acknowledgment"}
			e.record(cmd, res)
			return res
		}
	}

	if e.dryRun {
		res := ExecResult{Success: true, DryRun: true, Stdout: "[dry-run] " + line}
		e.record(cmd, res)
		return res
	}

	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	proc := exec.CommandContext(runCtx, cmd.Argv[0], cmd.Argv[1:]...)
	proc.Dir = workDir
	stdout, err := proc.Output()

	res := ExecResult{
		Stdout:   e.mask.Mask(string(stdout)),
		Duration: time.Since(start),
	}
	switch err := err.(type) {
	case nil:
		res.Success = true
	case *exec.ExitError:
		res.ExitCode = err.ExitCode()
		res.Stderr = e.mask.Mask(string(err.Stderr))
		res.Error = fmt.Sprintf("exit status %d", res.ExitCode)
	default:
		res.ExitCode = -1
		res.Error = err.Error()
	}
	if runCtx.Err() == context.DeadlineExceeded {
		res.Error = fmt.Sprintf("timed out after %s", timeout)
	}

	e.record(cmd, res)
	return res
}

// Log returns a copy of the audit log.
func (e *Executor) Log() []LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]LogEntry, len(e.log))
	copy(out, e.log)
	return out
}

func (e *Executor) record(cmd Command, res ExecResult) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = append(e.log, LogEntry{
		Time:    time.Now(),
		Command: truncate(cmd.String()),
		Kind:    cmd.Kind,
		Blocked: res.Blocked,
		DryRun:  res.DryRun,
		Success: res.Success,
		Stdout:  truncate(res.Stdout),
		Stderr:  truncate(res.Stderr),
	})
}

func truncate(s string) string {
	if len(s) <= logFieldLimit {
		return s
	}
	return s[:logFieldLimit]
}
