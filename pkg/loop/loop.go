// Package loop implements self-correction after a failed validation:
// reflect, then fix or replan within configured budgets.
package loop

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/pkg/agent"
	"github.com/forgeflow/forgeflow/pkg/config"
	"github.com/forgeflow/forgeflow/pkg/memory/hooks"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// Loop event names carried in hook payloads.
const (
	eventReflectionComplete = "reflection_complete"
	eventReplanTriggered    = "replan_triggered"
	eventFixAttempted       = "fix_attempted"
	eventIterationComplete  = "iteration_complete"
)

// Reflector, Fixer, and Replanner are the agent surfaces the loop drives.
type Reflector interface {
	Reflect(ctx context.Context, in agent.ReflectInput) (*models.Reflection, error)
}

type Fixer interface {
	Fix(ctx context.Context, in agent.FixInput) (*models.CodeOutput, error)
}

type Replanner interface {
	Plan(ctx context.Context, in agent.PlanInput) (*models.Plan, error)
}

// ValidateFunc re-runs validation against a corrected diff.
type ValidateFunc func(ctx context.Context, diff string, targetFiles []string) (*models.ValidationVerdict, error)

// AttemptRecorder appends to the task's attempt history. Satisfied by the
// session memory manager.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, taskID string, iteration int, action attemptrecord.Action, result attemptrecord.Result, attemptErr string) (*ent.AttemptRecord, error)
}

// Loop drives the reflect/fix cycle for one failed validation.
type Loop struct {
	reflector Reflector
	fixer     Fixer
	planner   Replanner
	validate  ValidateFunc
	attempts  AttemptRecorder
	bus       *hooks.Bus
	cfg       *config.LoopConfig
}

// New assembles the loop.
func New(reflector Reflector, fixer Fixer, planner Replanner, validate ValidateFunc, attempts AttemptRecorder, bus *hooks.Bus, cfg *config.LoopConfig) *Loop {
	return &Loop{
		reflector: reflector,
		fixer:     fixer,
		planner:   planner,
		validate:  validate,
		attempts:  attempts,
		bus:       bus,
		cfg:       cfg,
	}
}

// RunInput is the failed state handed to the loop.
type RunInput struct {
	TaskID      string
	Task        models.TaskContext
	Plan        *models.Plan
	Diff        string
	Verdict     *models.ValidationVerdict
	TestOutput  string
	ReplansUsed int // replans consumed by earlier loop entries for this task
	Attempts    []agent.AttemptSummary
}

// Run iterates reflect -> (fix | replan | abort) until validation passes or
// a budget runs out. A replan returns early with Replanned set; the caller
// re-enters coding with the new plan. The last reflection is always present
// on the result.
func (l *Loop) Run(ctx context.Context, in RunInput) (*models.LoopResult, error) {
	log := slog.With("task_id", in.TaskID)
	result := &models.LoopResult{Replans: in.ReplansUsed}
	diff := in.Diff
	verdict := in.Verdict
	testOutput := in.TestOutput

	// Iterations counts validator runs: the failed validation that entered
	// the loop plus one revalidation per completed fix cycle.
	for iter := 1; iter <= l.cfg.MaxIterations; iter++ {
		result.Iterations = iter

		reflection, err := l.reflector.Reflect(ctx, agent.ReflectInput{
			Task:        in.Task,
			Plan:        in.Plan,
			CurrentDiff: diff,
			Verdict:     verdict,
			TestOutput:  testOutput,
			Attempts:    in.Attempts,
		})
		if err != nil {
			return nil, fmt.Errorf("reflection failed: %w", err)
		}
		result.Reflection = reflection
		l.emit(ctx, in, eventReflectionComplete, map[string]interface{}{
			"recommendation": string(reflection.Recommendation),
			"root_cause":     string(reflection.RootCause),
			"confidence":     reflection.Confidence,
		})

		if reflection.Recommendation == models.RecommendAbort {
			result.Reason = reflection.Diagnosis
			result.Diff = diff
			result.Verdict = verdict
			return result, nil
		}
		if reflection.Confidence < l.cfg.ConfidenceThreshold {
			log.Warn("Reflection confidence below threshold, proceeding",
				"confidence", reflection.Confidence,
				"threshold", l.cfg.ConfidenceThreshold)
		}

		if reflection.Recommendation == models.RecommendReplan && result.Replans < l.cfg.MaxReplans {
			plan, err := l.replan(ctx, in, reflection)
			if err != nil {
				return nil, err
			}
			result.Replans++
			result.Replanned = true
			result.Plan = plan
			result.Diff = diff
			result.Verdict = verdict
			l.emit(ctx, in, eventReplanTriggered, map[string]interface{}{
				"replans": result.Replans,
			})
			return result, nil
		}
		if reflection.Recommendation == models.RecommendReplan {
			// Budget exhausted: fall through to a fix and record the decision.
			log.Info("Replan budget exhausted, falling back to fix",
				"replans", result.Replans, "max_replans", l.cfg.MaxReplans)
			l.emit(ctx, in, eventFixAttempted, map[string]interface{}{
				"fallback_from": "replan",
			})
		}

		fixed, err := l.fixer.Fix(ctx, agent.FixInput{
			Task:        in.Task,
			CurrentDiff: diff,
			Verdict:     verdict,
			Feedback:    reflection.Feedback,
			TestOutput:  testOutput,
		})
		if err != nil {
			l.recordAttempt(ctx, in.TaskID, iter, attemptrecord.ActionFix, attemptrecord.ResultFailure, err.Error())
			if models.Classify(err) == models.KindTerminal {
				result.Reason = err.Error()
				result.Verdict = verdict
				return result, nil
			}
			return nil, fmt.Errorf("fix failed: %w", err)
		}
		diff = fixed.Diff
		l.emit(ctx, in, eventFixAttempted, map[string]interface{}{
			"files": fixed.FilesModified,
		})

		verdict, err = l.validate(ctx, diff, in.Task.TargetFiles)
		if err != nil {
			return nil, fmt.Errorf("revalidation failed: %w", err)
		}
		result.Iterations = iter + 1
		testOutput = checkOutputs(verdict)

		attemptResult := attemptrecord.ResultFailure
		if verdict.Passed {
			attemptResult = attemptrecord.ResultSuccess
		}
		l.recordAttempt(ctx, in.TaskID, iter, attemptrecord.ActionFix, attemptResult, firstIssue(verdict))
		l.emit(ctx, in, eventIterationComplete, map[string]interface{}{
			"iteration": iter,
			"passed":    verdict.Passed,
		})

		if verdict.Passed {
			result.Success = true
			result.Diff = diff
			result.Verdict = verdict
			return result, nil
		}
		if verdict.Terminal() {
			result.Reason = verdict.TerminalReason
			result.Diff = diff
			result.Verdict = verdict
			return result, nil
		}
	}

	result.Reason = models.ReasonMaxIterations
	result.Diff = diff
	result.Verdict = verdict
	return result, nil
}

// replan reruns the planner with the reflection feedback folded in and
// records the attempt.
func (l *Loop) replan(ctx context.Context, in RunInput, reflection *models.Reflection) (*models.Plan, error) {
	plan, err := l.planner.Plan(ctx, agent.PlanInput{
		Task:     in.Task,
		Feedback: reflection.Feedback,
	})
	if err != nil {
		l.recordAttempt(ctx, in.TaskID, 0, attemptrecord.ActionPlan, attemptrecord.ResultFailure, err.Error())
		return nil, fmt.Errorf("replan failed: %w", err)
	}
	l.recordAttempt(ctx, in.TaskID, 0, attemptrecord.ActionPlan, attemptrecord.ResultSuccess, "")
	return plan, nil
}

func (l *Loop) recordAttempt(ctx context.Context, taskID string, iteration int, action attemptrecord.Action, res attemptrecord.Result, errMsg string) {
	if l.attempts == nil {
		return
	}
	if _, err := l.attempts.RecordAttempt(ctx, taskID, iteration, action, res, errMsg); err != nil {
		slog.Error("Failed to record attempt", "task_id", taskID, "error", err)
	}
}

func (l *Loop) emit(ctx context.Context, in RunInput, loopEvent string, data map[string]interface{}) {
	if l.bus == nil {
		return
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	data["loop_event"] = loopEvent
	l.bus.Emit(ctx, hooks.Event{
		Type:   hooks.EventMemoryUpdate,
		TaskID: in.TaskID,
		Phase:  models.PhaseReflecting,
		Data:   data,
	})
}

func checkOutputs(v *models.ValidationVerdict) string {
	if v == nil {
		return ""
	}
	out := ""
	for _, c := range v.Checks {
		if c.Output != "" {
			out += c.Output + "\n"
		}
	}
	return out
}

func firstIssue(v *models.ValidationVerdict) string {
	if v == nil || v.Passed || len(v.Issues) == 0 {
		return ""
	}
	return v.Issues[0].Description
}
