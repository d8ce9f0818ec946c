package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/agent"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/githost"
	"github.com/forgeflow/forgeflow/pkg/guidance"
	"github.com/forgeflow/forgeflow/pkg/loop"
	"github.com/forgeflow/forgeflow/pkg/memory/archival"
	"github.com/forgeflow/forgeflow/pkg/memory/hooks"
	"github.com/forgeflow/forgeflow/pkg/memory/session"
	"github.com/forgeflow/forgeflow/pkg/memory/static"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/patch"
	"github.com/forgeflow/forgeflow/pkg/sandbox"
	"github.com/forgeflow/forgeflow/pkg/services"
	"github.com/forgeflow/forgeflow/pkg/tracker"
	"github.com/forgeflow/forgeflow/pkg/validator"
)

// decomposeThreshold is the complexity at or above which a multi-file plan
// is split into sub-tasks.
const decomposeThreshold = models.ComplexityM

// subtaskPollInterval is how often an orchestrating parent checks its
// children.
const subtaskPollInterval = 5 * time.Second

// PipelineExecutor runs one task end to end: session setup, planning,
// coding, validation with the fix loop, optional decomposition, the
// foreman gate, and PR creation. It implements TaskExecutor.
type PipelineExecutor struct {
	client    *ent.Client
	cfg       *config.Config
	tasks     *services.TaskService
	sessions  *session.Manager
	policies  *static.Store
	archive   *archival.Store
	planner   *agent.Planner
	coder     *agent.Coder
	fixer     *agent.Fixer
	reflector *agent.Reflector
	foreman   *sandbox.Foreman
	commands  *sandbox.Executor
	host      *githost.Client
	tracker   *tracker.Client
	bus       *hooks.Bus
	guides    *guidance.Service
}

// NewPipelineExecutor wires the executor. tracker may be nil.
func NewPipelineExecutor(
	client *ent.Client,
	cfg *config.Config,
	tasks *services.TaskService,
	sessions *session.Manager,
	policies *static.Store,
	archive *archival.Store,
	planner *agent.Planner,
	coder *agent.Coder,
	fixer *agent.Fixer,
	reflector *agent.Reflector,
	foreman *sandbox.Foreman,
	commands *sandbox.Executor,
	host *githost.Client,
	trackerClient *tracker.Client,
	bus *hooks.Bus,
) *PipelineExecutor {
	return &PipelineExecutor{
		client:    client,
		cfg:       cfg,
		tasks:     tasks,
		sessions:  sessions,
		policies:  policies,
		archive:   archive,
		planner:   planner,
		coder:     coder,
		fixer:     fixer,
		reflector: reflector,
		foreman:   foreman,
		commands:  commands,
		host:      host,
		tracker:   trackerClient,
		bus:       bus,
		guides:    guidance.NewService(host),
	}
}

// run holds the mutable state of one execution.
type run struct {
	task          *ent.Task
	taskCtx       models.TaskContext
	policy        *static.Policy
	repo          *githost.Repo
	plan          *models.Plan
	diff          string
	commitMessage string
	replansUsed   int
	workspace     *sandbox.Workspace
	log           *slog.Logger
}

// Execute runs the full pipeline for one claimed task.
func (e *PipelineExecutor) Execute(ctx context.Context, t *ent.Task) *ExecutionResult {
	r := &run{
		task: t,
		log:  slog.With("task_id", t.ID, "repo", t.Repo, "issue", t.IssueNumber),
	}
	defer func() {
		if r.workspace != nil {
			_ = r.workspace.Close()
		}
	}()

	result := e.execute(ctx, r)
	e.emit(ctx, r, hooks.EventTaskEnd, map[string]interface{}{
		"status":         string(result.Status),
		"failure_reason": result.FailureReason,
		"pr_url":         result.PRURL,
		"repo":           t.Repo,
		"issue":          t.IssueNumber,
		"title":          t.Title,
	})
	return result
}

func (e *PipelineExecutor) execute(ctx context.Context, r *run) *ExecutionResult {
	t := r.task

	if err := e.setup(ctx, r); err != nil {
		return e.fail(ctx, r, "setup_failed", err)
	}
	e.emit(ctx, r, hooks.EventTaskStart, map[string]interface{}{
		"repo":  t.Repo,
		"issue": t.IssueNumber,
		"title": t.Title,
	})

	for attempt := 0; ; attempt++ {
		if r.plan == nil {
			if res := e.phasePlan(ctx, r); res != nil {
				return res
			}
		}

		// A parent with an eligible multi-file plan fans out instead of
		// coding itself. A nil result means decomposition was unavailable
		// and the task proceeds single-track.
		if e.shouldDecompose(r) {
			if res := e.runOrchestrated(ctx, r); res != nil {
				return res
			}
		}

		if res := e.phaseCode(ctx, r); res != nil {
			return res
		}
		if t.DryRun {
			return e.finishDryRun(ctx, r)
		}

		verdict, res := e.phaseValidate(ctx, r)
		if res != nil {
			return res
		}
		if verdict.Passed {
			break
		}

		loopResult, res := e.phaseReflect(ctx, r, verdict)
		if res != nil {
			return res
		}
		if loopResult.Replanned {
			// Fresh plan from the loop; re-enter coding with it.
			if err := e.sessions.ResetForReplan(ctx, t.ID); err != nil {
				return e.fail(ctx, r, "persistence_failed", err)
			}
			r.plan = loopResult.Plan
			r.replansUsed = loopResult.Replans
			continue
		}
		if !loopResult.Success {
			reason := loopResult.Reason
			if reason == "" {
				reason = models.ReasonMaxIterations
			}
			return e.fail(ctx, r, reason, fmt.Errorf("fix loop did not converge"))
		}
		if loopResult.Diff != r.diff {
			e.recordPatch(ctx, r, "fixer", loopResult.Diff)
		}
		r.diff = loopResult.Diff
		break
	}

	// Sub-tasks stop here: the parent aggregates, verifies, and opens the
	// PR.
	if t.ParentTaskID != nil {
		return e.finishSubtask(ctx, r)
	}

	body := e.renderSingleBody(r)
	return e.publishAndOpenPR(ctx, r, r.diff, r.commitMessage, body)
}

// setup loads repo metadata, the path policy, and session memory.
func (e *PipelineExecutor) setup(ctx context.Context, r *run) error {
	t := r.task

	repo, err := e.host.GetRepo(ctx, t.Repo)
	if err != nil {
		return err
	}
	r.repo = repo

	enabled, err := e.syncRepository(ctx, t.Repo, repo)
	if err != nil {
		r.log.Warn("Failed to sync repository metadata", "error", err)
	} else if !enabled {
		return fmt.Errorf("repository %s is disabled for automation", t.Repo)
	}

	owner, name := splitRepo(t.Repo)
	policy, err := e.policies.Get(ctx, owner, name)
	if err != nil {
		return err
	}
	r.policy = policy

	r.taskCtx = models.TaskContext{
		Repo:             t.Repo,
		IssueNumber:      t.IssueNumber,
		Title:            t.Title,
		Body:             t.Body,
		TargetFiles:      t.TargetFiles,
		DefinitionOfDone: t.DefinitionOfDone,
	}

	// A requeued task resumes its existing session.
	if _, err := e.sessions.Load(ctx, t.ID); err != nil {
		if !ent.IsNotFound(err) {
			return err
		}
		if _, cerr := e.sessions.Create(ctx, t.ID, &r.taskCtx); cerr != nil {
			return cerr
		}
	}
	return nil
}

// phasePlan runs the planner and enforces the path policy on its output.
func (e *PipelineExecutor) phasePlan(ctx context.Context, r *run) *ExecutionResult {
	t := r.task
	if res := e.advance(ctx, r, models.PhasePlanning); res != nil {
		return res
	}

	knowledge := e.recallKnowledge(ctx, r)
	if docs := e.guides.Resolve(ctx, t.Repo, r.repo.DefaultBranch); docs != "" {
		if knowledge != "" {
			knowledge += "\n\n"
		}
		knowledge += "# Repository guidance\n\n" + docs
	}
	started := time.Now()
	plan, err := e.planner.Plan(ctx, agent.PlanInput{
		Task:         r.taskCtx,
		AllowedPaths: r.policy.AllowedPaths,
		BlockedPaths: r.policy.BlockedPaths,
		TechStack:    r.policy.TechStack,
		Knowledge:    knowledge,
	})
	if err != nil {
		e.recordAttempt(ctx, t.ID, attemptrecord.ActionPlan, attemptrecord.ResultFailure, err)
		return e.fail(ctx, r, "planning_failed", err)
	}
	e.recordAttempt(ctx, t.ID, attemptrecord.ActionPlan, attemptrecord.ResultSuccess, nil)

	files := plan.Files()
	for _, f := range files {
		if !r.policy.PathAllowed(f) {
			return e.fail(ctx, r, models.ReasonPathOutsideAllowlist,
				fmt.Errorf("plan targets blocked path %s", f))
		}
	}
	if t.ParentTaskID != nil && len(files) > r.policy.MaxFilesPerTask {
		return e.fail(ctx, r, models.ReasonTooManyFiles,
			fmt.Errorf("sub-task plan targets %d files, limit %d", len(files), r.policy.MaxFilesPerTask))
	}

	r.plan = plan
	r.taskCtx.TargetFiles = files
	r.taskCtx.DefinitionOfDone = plan.DefinitionOfDone
	r.taskCtx.EstimatedComplexity = plan.EstimatedComplexity

	if err := e.sessions.SetAgentOutput(ctx, t.ID, "planner", plan); err != nil {
		r.log.Warn("Failed to persist planner output", "error", err)
	}
	e.progress(ctx, r, "plan_complete", "planner",
		fmt.Sprintf("%d steps, %d files, complexity %s", len(plan.Steps), len(files), plan.EstimatedComplexity),
		time.Since(started))
	return nil
}

// phaseCode fetches the working set and runs the coder.
func (e *PipelineExecutor) phaseCode(ctx context.Context, r *run) *ExecutionResult {
	t := r.task
	if res := e.advance(ctx, r, models.PhaseCoding); res != nil {
		return res
	}

	files := e.fetchFiles(ctx, r)
	started := time.Now()
	out, err := e.coder.Code(ctx, agent.CodeInput{
		Task:  r.taskCtx,
		Plan:  r.plan,
		Files: files,
	})
	if err != nil {
		e.recordAttempt(ctx, t.ID, attemptrecord.ActionCode, attemptrecord.ResultFailure, err)
		if models.Classify(err) == models.KindTerminal {
			return e.fail(ctx, r, models.Reason(err), err)
		}
		return e.fail(ctx, r, "coding_failed", err)
	}
	e.recordAttempt(ctx, t.ID, attemptrecord.ActionCode, attemptrecord.ResultSuccess, nil)

	if lines := patch.ChangedLines(out.Diff); lines > r.policy.MaxDiffLines {
		return e.fail(ctx, r, models.ReasonDiffTooLarge,
			fmt.Errorf("diff changes %d lines, limit %d", lines, r.policy.MaxDiffLines))
	}
	for _, f := range patch.Files(out.Diff) {
		if !r.policy.PathAllowed(f) {
			return e.fail(ctx, r, models.ReasonPathOutsideAllowlist,
				fmt.Errorf("diff touches blocked path %s", f))
		}
	}

	r.diff = out.Diff
	r.commitMessage = out.CommitMessage
	if err := e.sessions.SetAgentOutput(ctx, t.ID, "coder", out); err != nil {
		r.log.Warn("Failed to persist coder output", "error", err)
	}
	if err := e.client.Task.UpdateOneID(t.ID).
		SetCurrentDiff(out.Diff).
		SetCommitMessage(out.CommitMessage).
		Exec(ctx); err != nil {
		r.log.Warn("Failed to persist candidate diff", "error", err)
	}
	e.recordPatch(ctx, r, "coder", out.Diff)
	e.progress(ctx, r, "code_complete", "coder",
		fmt.Sprintf("%d files changed", len(patch.Files(out.Diff))), time.Since(started))
	return nil
}

// phaseValidate prepares the workspace lazily and runs the deterministic
// check pipeline against the current diff.
func (e *PipelineExecutor) phaseValidate(ctx context.Context, r *run) (*models.ValidationVerdict, *ExecutionResult) {
	t := r.task
	if res := e.advance(ctx, r, models.PhaseValidating); res != nil {
		return nil, res
	}

	verdict, err := e.validateDiff(ctx, r, r.diff)
	if err != nil {
		return nil, e.fail(ctx, r, "validation_failed", err)
	}
	if err := e.sessions.SetAgentOutput(ctx, t.ID, "validator", verdict); err != nil {
		r.log.Warn("Failed to persist validation verdict", "error", err)
	}
	e.progress(ctx, r, "validation_complete", "validator",
		fmt.Sprintf("passed=%v confidence=%.2f", verdict.Passed, verdict.Confidence), 0)

	if verdict.Terminal() {
		return nil, e.fail(ctx, r, verdict.TerminalReason,
			fmt.Errorf("validation is terminal: %s", verdict.TerminalReason))
	}
	return verdict, nil
}

// phaseReflect hands a failed verdict to the fix loop.
func (e *PipelineExecutor) phaseReflect(ctx context.Context, r *run, verdict *models.ValidationVerdict) (*models.LoopResult, *ExecutionResult) {
	t := r.task
	if res := e.advance(ctx, r, models.PhaseReflecting); res != nil {
		return nil, res
	}

	attempts, err := e.sessions.ListAttempts(ctx, t.ID)
	if err != nil {
		r.log.Warn("Failed to load attempt history", "error", err)
	}

	l := loop.New(e.reflector, e.fixer, e.planner,
		func(ctx context.Context, diff string, targetFiles []string) (*models.ValidationVerdict, error) {
			return e.validateDiff(ctx, r, diff)
		},
		e.sessions, e.bus, e.cfg.Loop)

	result, err := l.Run(ctx, loop.RunInput{
		TaskID:      t.ID,
		Task:        r.taskCtx,
		Plan:        r.plan,
		Diff:        r.diff,
		Verdict:     verdict,
		TestOutput:  checkOutput(verdict),
		ReplansUsed: r.replansUsed,
		Attempts:    summarizeAttempts(attempts),
	})
	if err != nil {
		return nil, e.fail(ctx, r, "fix_loop_failed", err)
	}
	if result.Success && result.Iterations > 0 {
		e.learnFixPattern(ctx, r, result)
	}
	return result, nil
}

// validateDiff applies a candidate diff to the shared workspace and runs
// the check pipeline.
func (e *PipelineExecutor) validateDiff(ctx context.Context, r *run, diff string) (*models.ValidationVerdict, error) {
	if r.workspace == nil {
		ws, err := sandbox.PrepareWorkspace(ctx, e.commands, e.cfg.Sandbox,
			r.task.ID, e.host.AuthenticatedCloneURL(r.repo.CloneURL), r.repo.DefaultBranch)
		if err != nil {
			return nil, err
		}
		r.workspace = ws
	}
	if err := r.workspace.ApplyDiff(ctx, diff); err != nil {
		// A diff that does not apply is equivalent to an invalid format.
		return &models.ValidationVerdict{
			Passed:         false,
			TerminalReason: models.ReasonInvalidDiffFormat,
			Checks: []models.CheckResult{{
				Type:   models.CheckDiffFormat,
				Status: models.CheckFailed,
				Output: err.Error(),
			}},
		}, nil
	}

	runner := r.workspace.Runner(e.cfg.Validator.CheckTimeout.Std())
	return validator.New(runner, e.cfg.Validator).Validate(ctx, diff, r.taskCtx.TargetFiles)
}

// publishAndOpenPR runs the foreman gate, pushes the branch, and opens the
// draft PR. A foreman failure parks the task for a human instead of
// failing it: the change passed validation but not the clean room.
func (e *PipelineExecutor) publishAndOpenPR(ctx context.Context, r *run, diff, commitMessage, body string) *ExecutionResult {
	t := r.task
	if res := e.advance(ctx, r, models.PhaseForeman); res != nil {
		return res
	}

	branch := fmt.Sprintf("forgeflow/task-%s", shortID(t.ID))
	foremanResult, err := e.foreman.Run(ctx, sandbox.RunInput{
		TaskID:        t.ID,
		CloneURL:      e.host.AuthenticatedCloneURL(r.repo.CloneURL),
		Branch:        r.repo.DefaultBranch,
		Diff:          diff,
		KeepWorkspace: true,
	})
	if err != nil {
		return e.fail(ctx, r, "foreman_failed", err)
	}
	if !foremanResult.Passed {
		r.log.Warn("Foreman rejected validated diff, waiting for human",
			"stage", foremanResult.Stage, "workdir", foremanResult.WorkDir)
		if err := e.sessions.SetPhase(ctx, t.ID, models.PhaseWaitingHuman); err != nil {
			r.log.Warn("Failed to set waiting_human phase", "error", err)
		}
		e.progress(ctx, r, "foreman_failed", "",
			fmt.Sprintf("stage %s failed, workspace retained at %s", foremanResult.Stage, foremanResult.WorkDir), 0)
		return &ExecutionResult{
			Status:        task.StatusWaitingHuman,
			FailureReason: "foreman_" + foremanResult.Stage,
			Error:         fmt.Errorf("foreman stage %s failed", foremanResult.Stage),
		}
	}
	defer func() { _ = e.foreman.Cleanup(foremanResult.WorkDir) }()

	if res := e.advance(ctx, r, models.PhasePRCreating); res != nil {
		return res
	}
	if commitMessage == "" {
		commitMessage = fmt.Sprintf("%s (#%d)", t.Title, t.IssueNumber)
	}
	if err := e.foreman.Publish(ctx, foremanResult.WorkDir, branch, commitMessage); err != nil {
		return e.fail(ctx, r, "publish_failed", err)
	}

	pr, err := e.host.CreateDraftPR(ctx, t.Repo, t.Title, body, branch, r.repo.DefaultBranch)
	if err != nil {
		return e.fail(ctx, r, "pr_creation_failed", err)
	}
	if err := e.sessions.SetPhase(ctx, t.ID, models.PhasePROpened); err != nil {
		r.log.Warn("Failed to set pr_opened phase", "error", err)
	}
	if err := e.client.Task.UpdateOneID(t.ID).SetBranch(branch).Exec(ctx); err != nil {
		r.log.Warn("Failed to persist branch name", "error", err)
	}
	e.progress(ctx, r, "pr_opened", "", pr.URL, 0)

	if e.tracker != nil {
		if err := e.tracker.MarkInReview(ctx, t.Repo, t.IssueNumber, pr.URL); err != nil {
			r.log.Warn("Tracker transition failed", "error", err)
		}
	}

	e.finishMemory(ctx, r, true, pr.URL)
	if err := e.sessions.SetPhase(ctx, t.ID, models.PhaseCompleted); err != nil {
		r.log.Warn("Failed to set completed phase", "error", err)
	}
	return &ExecutionResult{Status: task.StatusCompleted, PRURL: pr.URL, PRNumber: pr.Number}
}

// advance moves the session phase forward with a checkpoint taken first.
func (e *PipelineExecutor) advance(ctx context.Context, r *run, phase models.Phase) *ExecutionResult {
	if _, err := e.sessions.SaveCheckpoint(ctx, r.task.ID, "before_"+string(phase)); err != nil {
		r.log.Warn("Checkpoint failed", "phase", phase, "error", err)
	}
	if err := e.sessions.SetPhase(ctx, r.task.ID, phase); err != nil {
		return e.fail(ctx, r, "persistence_failed", err)
	}
	e.emit(ctx, r, hooks.EventPhaseChange, map[string]interface{}{"phase": string(phase)})
	return nil
}

// fail finalizes a failed run.
func (e *PipelineExecutor) fail(ctx context.Context, r *run, reason string, err error) *ExecutionResult {
	r.log.Error("Task failed", "reason", reason, "error", err)
	e.emit(ctx, r, hooks.EventError, map[string]interface{}{
		"reason": reason,
		"error":  errString(err),
	})
	if serr := e.sessions.SetPhase(ctx, r.task.ID, models.PhaseFailed); serr != nil {
		r.log.Warn("Failed to set failed phase", "error", serr)
	}
	e.finishMemory(ctx, r, false, "")
	return &ExecutionResult{Status: task.StatusFailed, FailureReason: reason, Error: err}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func splitRepo(repo string) (owner, name string) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 {
		return repo, ""
	}
	return parts[0], parts[1]
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
