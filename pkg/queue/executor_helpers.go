package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/archivalmemory"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/ent/learnedpattern"
	"github.com/forgeflow/forgeflow/ent/repository"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/pkg/agent"
	"github.com/forgeflow/forgeflow/pkg/aggregator"
	"github.com/forgeflow/forgeflow/pkg/githost"
	"github.com/forgeflow/forgeflow/pkg/memory/archival"
	"github.com/forgeflow/forgeflow/pkg/memory/hooks"
	"github.com/forgeflow/forgeflow/pkg/memory/session"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/patch"
)

// shouldDecompose reports whether a parent task's plan fans out into
// sub-tasks: complexity at or above the threshold and more than one target
// file. Sub-tasks and dry runs never decompose.
func (e *PipelineExecutor) shouldDecompose(r *run) bool {
	t := r.task
	if t.ParentTaskID != nil || t.IsOrchestrated || t.DryRun {
		return false
	}
	return r.plan.EstimatedComplexity.AtLeast(decomposeThreshold) && len(r.plan.Files()) > 1
}

// runOrchestrated fans a plan out into sub-tasks, waits for them, and
// aggregates their diffs into one verified PR. A nil result means
// decomposition was unavailable and the caller should continue
// single-track.
func (e *PipelineExecutor) runOrchestrated(ctx context.Context, r *run) *ExecutionResult {
	t := r.task

	subtasks, err := e.planner.Decompose(ctx, agent.DecomposeInput{Task: r.taskCtx, Plan: r.plan})
	if err != nil || len(subtasks) < 2 {
		r.log.Warn("Decomposition unavailable, running single-track", "error", err)
		return nil
	}

	if err := e.client.Task.UpdateOneID(t.ID).SetIsOrchestrated(true).Exec(ctx); err != nil {
		return e.fail(ctx, r, "persistence_failed", err)
	}
	created := make([]*ent.Task, 0, len(subtasks))
	for _, sub := range subtasks {
		child, err := e.tasks.CreateSubtask(ctx, t, sub, false)
		if err != nil {
			return e.fail(ctx, r, "subtask_creation_failed", err)
		}
		created = append(created, child)
	}
	if err := e.sessions.SetOrchestration(ctx, t.ID, map[string]interface{}{
		"subtask_count": len(created),
		"subtask_ids":   taskIDs(created),
	}); err != nil {
		r.log.Warn("Failed to persist orchestration block", "error", err)
	}
	e.progress(ctx, r, "decomposed", "planner",
		fmt.Sprintf("%d sub-tasks created", len(created)), 0)

	finished, res := e.waitForSubtasks(ctx, r)
	if res != nil {
		return res
	}

	results := make([]aggregator.SubtaskResult, 0, len(finished))
	for _, child := range finished {
		idx := 0
		if child.SubtaskIndex != nil {
			idx = *child.SubtaskIndex
		}
		results = append(results, aggregator.SubtaskResult{
			Subtask: models.Subtask{
				Index: idx,
				Title: child.Title,
			},
			Diff:          child.CurrentDiff,
			CommitMessage: child.CommitMessage,
		})
	}
	combined, err := aggregator.Aggregate(r.taskCtx, results)
	if err != nil {
		return e.fail(ctx, r, "aggregation_failed", err)
	}
	e.recordPatch(ctx, r, "aggregator", combined.Diff)
	if len(combined.Conflicts) > 0 {
		e.progress(ctx, r, "aggregation_conflicts", "",
			fmt.Sprintf("%d files resolved last-writer-wins", len(combined.Conflicts)), 0)
	}

	// The combined diff gets one more full validation before the foreman.
	verdict, err := e.validateDiff(ctx, r, combined.Diff)
	if err != nil {
		return e.fail(ctx, r, "validation_failed", err)
	}
	if !verdict.Passed {
		return e.fail(ctx, r, "aggregate_validation_failed",
			fmt.Errorf("combined diff failed validation: %s", firstIssueDescription(verdict)))
	}

	return e.publishAndOpenPR(ctx, r, combined.Diff,
		aggregator.CommitMessage(r.taskCtx, results), combined.Body)
}

// waitForSubtasks polls until every child is terminal. Any failed child
// fails the parent.
func (e *PipelineExecutor) waitForSubtasks(ctx context.Context, r *run) ([]*ent.Task, *ExecutionResult) {
	for {
		select {
		case <-ctx.Done():
			return nil, e.fail(ctx, r, "cancelled", ctx.Err())
		case <-time.After(subtaskPollInterval):
		}

		children, err := e.tasks.ListSubtasks(ctx, r.task.ID)
		if err != nil {
			return nil, e.fail(ctx, r, "persistence_failed", err)
		}

		pending := 0
		for _, child := range children {
			switch child.Status {
			case task.StatusCompleted:
			case task.StatusFailed, task.StatusCancelled:
				reason := "subtask_failed"
				if child.FailureReason != nil {
					reason = "subtask_" + *child.FailureReason
				}
				return nil, e.fail(ctx, r, reason,
					fmt.Errorf("sub-task %s (%s) did not complete", child.ID, child.Title))
			default:
				pending++
			}
		}
		if pending == 0 {
			return children, nil
		}
	}
}

// finishSubtask completes a child task: its diff is the artifact, the
// parent opens the PR.
func (e *PipelineExecutor) finishSubtask(ctx context.Context, r *run) *ExecutionResult {
	t := r.task
	if err := e.client.Task.UpdateOneID(t.ID).
		SetCurrentDiff(r.diff).
		SetCommitMessage(r.commitMessage).
		Exec(ctx); err != nil {
		return e.fail(ctx, r, "persistence_failed", err)
	}
	e.finishMemory(ctx, r, true, "")
	if err := e.sessions.SetPhase(ctx, t.ID, models.PhaseCompleted); err != nil {
		r.log.Warn("Failed to set completed phase", "error", err)
	}
	return &ExecutionResult{Status: task.StatusCompleted}
}

// finishDryRun stores the coding artifact and completes without opening a
// PR.
func (e *PipelineExecutor) finishDryRun(ctx context.Context, r *run) *ExecutionResult {
	t := r.task
	result := models.DryRunResult{
		TaskID:           t.ID,
		Diff:             r.diff,
		CommitMessage:    r.commitMessage,
		FilesModified:    r.taskCtx.TargetFiles,
		TargetFiles:      r.taskCtx.TargetFiles,
		DefinitionOfDone: r.taskCtx.DefinitionOfDone,
	}
	if err := e.sessions.SetAgentOutput(ctx, t.ID, "dry_run", result); err != nil {
		r.log.Warn("Failed to persist dry-run result", "error", err)
	}
	e.progress(ctx, r, "dry_run_complete", "", "diff produced, no PR opened", 0)
	if err := e.sessions.SetPhase(ctx, t.ID, models.PhaseCompleted); err != nil {
		r.log.Warn("Failed to set completed phase", "error", err)
	}
	return &ExecutionResult{Status: task.StatusCompleted}
}

// fetchFiles loads the plan's target files from the code host at the
// default branch. Files the host cannot serve (new files, moves) are
// simply absent from the working set.
func (e *PipelineExecutor) fetchFiles(ctx context.Context, r *run) []agent.FileContent {
	var files []agent.FileContent
	for _, path := range r.plan.Files() {
		content, err := e.host.GetFileContent(ctx, r.task.Repo, path, r.repo.DefaultBranch)
		if err != nil {
			if !githost.IsNotFound(err) {
				r.log.Warn("Failed to fetch file", "path", path, "error", err)
			}
			continue
		}
		files = append(files, agent.FileContent{Path: path, Content: content})
	}
	return files
}

// recallKnowledge renders the progressive-disclosure recall into the
// planner's knowledge block.
func (e *PipelineExecutor) recallKnowledge(ctx context.Context, r *run) string {
	recall, err := e.archive.Recall(ctx, archival.SearchQuery{
		Query:         r.taskCtx.Title + "\n" + r.taskCtx.Body,
		Repo:          r.task.Repo,
		IncludeGlobal: true,
	})
	if err != nil {
		r.log.Warn("Archival recall failed", "error", err)
		return ""
	}

	var b strings.Builder
	if len(recall.Full) > 0 {
		b.WriteString("Relevant prior context:\n")
		for _, item := range recall.Full {
			b.WriteString(item.Content)
			b.WriteString("\n---\n")
		}
	}
	for _, item := range recall.Summaries {
		fmt.Fprintf(&b, "- %s\n", item.Summary)
	}
	if len(recall.Patterns) > 0 {
		b.WriteString("Learned patterns for this repository:\n")
		for _, p := range recall.Patterns {
			fmt.Fprintf(&b, "- %s", p.Description)
			if p.Solution != "" {
				fmt.Fprintf(&b, " => %s", p.Solution)
			}
			fmt.Fprintf(&b, " (confidence %.2f)\n", p.Confidence)
		}
	}
	return b.String()
}

// learnFixPattern records a fix that made validation pass as a learned
// pattern scoped to this task; promotion to global happens on completion.
func (e *PipelineExecutor) learnFixPattern(ctx context.Context, r *run, result *models.LoopResult) {
	if result.Reflection == nil || result.Reflection.Feedback == "" {
		return
	}
	trigger := ""
	if result.Verdict != nil {
		trigger = firstIssueDescription(result.Verdict)
	}
	pattern, err := e.archive.RecordPattern(ctx, archival.PatternInput{
		PatternType:    learnedpattern.PatternTypeFix,
		TriggerPattern: trigger,
		Description:    result.Reflection.Diagnosis,
		Solution:       result.Reflection.Feedback,
		Repo:           r.task.Repo,
		TaskID:         r.task.ID,
	})
	if err != nil {
		r.log.Warn("Failed to record fix pattern", "error", err)
		return
	}
	if _, err := e.archive.UpdatePatternOutcome(ctx, pattern.ID, true); err != nil {
		r.log.Warn("Failed to update pattern outcome", "error", err)
	}
}

// finishMemory archives the task outcome and, on success, promotes
// task-scoped patterns and important archival rows to global scope.
func (e *PipelineExecutor) finishMemory(ctx context.Context, r *run, success bool, prURL string) {
	t := r.task

	outcome := "failed"
	if success {
		outcome = "completed"
	}
	summary := fmt.Sprintf("Task %s for %s#%d %s", shortID(t.ID), t.Repo, t.IssueNumber, outcome)
	if prURL != "" {
		summary += " with " + prURL
	}
	if _, err := e.archive.Insert(ctx, archival.InsertInput{
		Content:    summary + "\n\n" + t.Title + "\n" + t.Body,
		Summary:    summary,
		SourceType: archivalmemory.SourceTypeBlock,
		SourceID:   t.ID,
		Repo:       t.Repo,
		TaskID:     t.ID,
	}); err != nil {
		r.log.Warn("Failed to archive task outcome", "error", err)
	}

	if !success {
		return
	}
	if n, err := e.archive.PromotePatterns(ctx, t.ID); err != nil {
		r.log.Warn("Pattern promotion failed", "error", err)
	} else if n > 0 {
		r.log.Info("Patterns promoted to global scope", "count", n)
	}
	if n, err := e.archive.PromoteImportant(ctx, t.ID); err != nil {
		r.log.Warn("Archival promotion failed", "error", err)
	} else if n > 0 {
		r.log.Info("Archival entries promoted", "count", n)
	}
}

// renderSingleBody builds the PR body for an undecomposed task.
func (e *PipelineExecutor) renderSingleBody(r *run) string {
	results := []aggregator.SubtaskResult{{
		Subtask:       models.Subtask{Index: 0, Title: r.task.Title},
		Diff:          r.diff,
		CommitMessage: r.commitMessage,
	}}
	combined, err := aggregator.Aggregate(r.taskCtx, results)
	if err != nil {
		return fmt.Sprintf("Resolves #%d: %s\n", r.task.IssueNumber, r.task.Title)
	}
	return combined.Body
}

// progress appends a progress entry, logging failures instead of
// propagating them.
func (e *PipelineExecutor) progress(ctx context.Context, r *run, eventType, agentName, summary string, d time.Duration) {
	if _, err := e.sessions.AppendProgress(ctx, r.task.ID, session.ProgressInput{
		EventType:     eventType,
		Agent:         agentName,
		OutputSummary: summary,
		DurationMs:    d.Milliseconds(),
	}); err != nil {
		r.log.Warn("Failed to append progress", "event", eventType, "error", err)
	}
}

// recordAttempt appends to the attempt ledger without failing the run.
func (e *PipelineExecutor) recordAttempt(ctx context.Context, taskID string, action attemptrecord.Action, result attemptrecord.Result, err error) {
	if _, rerr := e.sessions.RecordAttempt(ctx, taskID, 0, action, result, errString(err)); rerr != nil {
		slog.Warn("Failed to record attempt", "task_id", taskID, "error", rerr)
	}
}

func (e *PipelineExecutor) emit(ctx context.Context, r *run, t hooks.EventType, data map[string]interface{}) {
	if e.bus == nil {
		return
	}
	e.bus.Emit(ctx, hooks.Event{
		Type:   t,
		TaskID: r.task.ID,
		Data:   data,
	})
}

func summarizeAttempts(attempts []*ent.AttemptRecord) []agent.AttemptSummary {
	out := make([]agent.AttemptSummary, 0, len(attempts))
	for _, a := range attempts {
		s := agent.AttemptSummary{
			Iteration: a.Iteration,
			Action:    string(a.Action),
			Result:    string(a.Result),
		}
		if a.Error != nil {
			s.Error = *a.Error
		}
		out = append(out, s)
	}
	return out
}

func checkOutput(v *models.ValidationVerdict) string {
	var b strings.Builder
	for _, c := range v.Checks {
		if c.Output != "" {
			b.WriteString(c.Output)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func firstIssueDescription(v *models.ValidationVerdict) string {
	if v == nil || len(v.Issues) == 0 {
		return ""
	}
	return v.Issues[0].Description
}

func taskIDs(tasks []*ent.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// recordPatch retains an agent-produced diff in the patch audit trail.
// Retention failures never fail the run.
func (e *PipelineExecutor) recordPatch(ctx context.Context, r *run, source, diff string) {
	if diff == "" {
		return
	}
	err := e.client.Patch.Create().
		SetID(uuid.New().String()).
		SetTaskID(r.task.ID).
		SetAttempt(r.task.AttemptCount).
		SetSource(source).
		SetFormat(string(patch.DetectFormat(diff))).
		SetDiff(diff).
		SetFilesModified(patch.Files(diff)).
		Exec(ctx)
	if err != nil {
		r.log.Warn("Failed to retain patch", "source", source, "error", err)
	}
}

// syncRepository mirrors code host metadata into the repositories table and
// reports whether automation is enabled for the repo. A row is created on
// first contact; operators flip enabled off to pause a repo.
func (e *PipelineExecutor) syncRepository(ctx context.Context, repoFull string, meta *githost.Repo) (bool, error) {
	owner, name := splitRepo(repoFull)
	existing, err := e.client.Repository.Query().
		Where(repository.Owner(owner), repository.Name(name)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return false, err
		}
		err = e.client.Repository.Create().
			SetID(uuid.New().String()).
			SetOwner(owner).
			SetName(name).
			SetDefaultBranch(meta.DefaultBranch).
			Exec(ctx)
		return true, err
	}
	if existing.DefaultBranch != meta.DefaultBranch {
		if err := e.client.Repository.UpdateOne(existing).
			SetDefaultBranch(meta.DefaultBranch).
			Exec(ctx); err != nil {
			return existing.Enabled, err
		}
	}
	return existing.Enabled, nil
}
