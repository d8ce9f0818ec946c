package archival

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/forgeflow/forgeflow/ent"
	"github.com/forgeflow/forgeflow/ent/learnedpattern"
)

// PatternInput describes one learned pattern.
type PatternInput struct {
	PatternType    learnedpattern.PatternType
	TriggerPattern string
	Description    string
	Solution       string
	Examples       []string
	Repo           string
	Language       string
	FilePattern    string
	TaskID         string
}

// RecordPattern creates a pattern, or appends an example to an existing one
// with the same type, trigger, and scope.
func (s *Store) RecordPattern(ctx context.Context, in PatternInput) (*ent.LearnedPattern, error) {
	if in.Description == "" {
		return nil, fmt.Errorf("pattern requires a description")
	}

	query := s.client.LearnedPattern.Query().
		Where(learnedpattern.PatternTypeEQ(in.PatternType))
	if in.TriggerPattern != "" {
		query.Where(learnedpattern.TriggerPattern(in.TriggerPattern))
	} else {
		query.Where(learnedpattern.Description(in.Description))
	}
	if in.Repo != "" {
		query.Where(learnedpattern.Repo(in.Repo))
	}

	existing, err := query.First(ctx)
	if err == nil {
		examples := existing.Examples
		for _, ex := range in.Examples {
			examples = appendUnique(examples, ex)
		}
		updated, err := s.client.LearnedPattern.UpdateOne(existing).
			SetExamples(examples).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update pattern %s: %w", existing.ID, err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("look up existing pattern: %w", err)
	}

	builder := s.client.LearnedPattern.Create().
		SetID(uuid.New().String()).
		SetPatternType(in.PatternType).
		SetDescription(in.Description).
		SetEmbedding(s.embed(ctx, in.Description)).
		SetExamples(in.Examples)
	if in.TriggerPattern != "" {
		builder.SetTriggerPattern(in.TriggerPattern)
	}
	if in.Solution != "" {
		builder.SetSolution(in.Solution)
	}
	if in.Repo != "" {
		builder.SetRepo(in.Repo)
	}
	if in.Language != "" {
		builder.SetLanguage(in.Language)
	}
	if in.FilePattern != "" {
		builder.SetFilePattern(in.FilePattern)
	}
	if in.TaskID != "" {
		builder.SetTaskID(in.TaskID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record pattern: %w", err)
	}
	return row, nil
}

// UpdatePatternOutcome bumps the outcome counters and recomputes
// confidence = success / (success + failure + 1). The read and write share
// a transaction so concurrent outcomes serialize.
func (s *Store) UpdatePatternOutcome(ctx context.Context, patternID string, success bool) (*ent.LearnedPattern, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin pattern outcome transaction: %w", err)
	}

	p, err := tx.LearnedPattern.Get(ctx, patternID)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("load pattern %s: %w", patternID, err)
	}

	successes, failures := p.SuccessCount, p.FailureCount
	if success {
		successes++
	} else {
		failures++
	}
	confidence := float64(successes) / float64(successes+failures+1)

	updated, err := tx.LearnedPattern.UpdateOne(p).
		SetSuccessCount(successes).
		SetFailureCount(failures).
		SetConfidence(confidence).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("update pattern %s outcome: %w", patternID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit pattern %s outcome: %w", patternID, err)
	}
	return updated, nil
}

// PromotePatterns strips the task binding from a completed task's patterns
// whose confidence clears the configured gate, making them global.
func (s *Store) PromotePatterns(ctx context.Context, taskID string) (int, error) {
	n, err := s.client.LearnedPattern.Update().
		Where(
			learnedpattern.TaskID(taskID),
			learnedpattern.ConfidenceGTE(s.cfg.MinConfidence),
		).
		ClearTaskID().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("promote patterns for task %s: %w", taskID, err)
	}
	return n, nil
}

// RelatedPatterns returns repo-or-global patterns above the given
// confidence, most trusted first.
func (s *Store) RelatedPatterns(ctx context.Context, repo string, minConfidence float64, limit int) ([]*ent.LearnedPattern, error) {
	query := s.client.LearnedPattern.Query().
		Where(learnedpattern.ConfidenceGT(minConfidence))
	if repo != "" {
		query.Where(learnedpattern.Or(
			learnedpattern.Repo(repo),
			learnedpattern.RepoIsNil(),
		))
	}
	if limit > 0 {
		query.Limit(limit)
	}
	patterns, err := query.Order(ent.Desc(learnedpattern.FieldConfidence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load related patterns: %w", err)
	}
	return patterns, nil
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}
