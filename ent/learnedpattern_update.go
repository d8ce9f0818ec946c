// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/learnedpattern"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// LearnedPatternUpdate is the builder for updating LearnedPattern entities.
type LearnedPatternUpdate struct {
	config
	hooks    []Hook
	mutation *LearnedPatternMutation
}

// Where appends a list predicates to the LearnedPatternUpdate builder.
func (_u *LearnedPatternUpdate) Where(ps ...predicate.LearnedPattern) *LearnedPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *LearnedPatternUpdate) SetPatternType(v learnedpattern.PatternType) *LearnedPatternUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillablePatternType(v *learnedpattern.PatternType) *LearnedPatternUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetTriggerPattern sets the "trigger_pattern" field.
func (_u *LearnedPatternUpdate) SetTriggerPattern(v string) *LearnedPatternUpdate {
	_u.mutation.SetTriggerPattern(v)
	return _u
}

// SetNillableTriggerPattern sets the "trigger_pattern" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableTriggerPattern(v *string) *LearnedPatternUpdate {
	if v != nil {
		_u.SetTriggerPattern(*v)
	}
	return _u
}

// ClearTriggerPattern clears the value of the "trigger_pattern" field.
func (_u *LearnedPatternUpdate) ClearTriggerPattern() *LearnedPatternUpdate {
	_u.mutation.ClearTriggerPattern()
	return _u
}

// SetDescription sets the "description" field.
func (_u *LearnedPatternUpdate) SetDescription(v string) *LearnedPatternUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableDescription(v *string) *LearnedPatternUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSolution sets the "solution" field.
func (_u *LearnedPatternUpdate) SetSolution(v string) *LearnedPatternUpdate {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableSolution(v *string) *LearnedPatternUpdate {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// ClearSolution clears the value of the "solution" field.
func (_u *LearnedPatternUpdate) ClearSolution() *LearnedPatternUpdate {
	_u.mutation.ClearSolution()
	return _u
}

// SetExamples sets the "examples" field.
func (_u *LearnedPatternUpdate) SetExamples(v []string) *LearnedPatternUpdate {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *LearnedPatternUpdate) AppendExamples(v []string) *LearnedPatternUpdate {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *LearnedPatternUpdate) ClearExamples() *LearnedPatternUpdate {
	_u.mutation.ClearExamples()
	return _u
}

// SetRepo sets the "repo" field.
func (_u *LearnedPatternUpdate) SetRepo(v string) *LearnedPatternUpdate {
	_u.mutation.SetRepo(v)
	return _u
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableRepo(v *string) *LearnedPatternUpdate {
	if v != nil {
		_u.SetRepo(*v)
	}
	return _u
}

// ClearRepo clears the value of the "repo" field.
func (_u *LearnedPatternUpdate) ClearRepo() *LearnedPatternUpdate {
	_u.mutation.ClearRepo()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *LearnedPatternUpdate) SetLanguage(v string) *LearnedPatternUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableLanguage(v *string) *LearnedPatternUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *LearnedPatternUpdate) ClearLanguage() *LearnedPatternUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetFilePattern sets the "file_pattern" field.
func (_u *LearnedPatternUpdate) SetFilePattern(v string) *LearnedPatternUpdate {
	_u.mutation.SetFilePattern(v)
	return _u
}

// SetNillableFilePattern sets the "file_pattern" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableFilePattern(v *string) *LearnedPatternUpdate {
	if v != nil {
		_u.SetFilePattern(*v)
	}
	return _u
}

// ClearFilePattern clears the value of the "file_pattern" field.
func (_u *LearnedPatternUpdate) ClearFilePattern() *LearnedPatternUpdate {
	_u.mutation.ClearFilePattern()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *LearnedPatternUpdate) SetTaskID(v string) *LearnedPatternUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableTaskID(v *string) *LearnedPatternUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *LearnedPatternUpdate) ClearTaskID() *LearnedPatternUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LearnedPatternUpdate) SetConfidence(v float64) *LearnedPatternUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableConfidence(v *float64) *LearnedPatternUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LearnedPatternUpdate) AddConfidence(v float64) *LearnedPatternUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *LearnedPatternUpdate) SetSuccessCount(v int) *LearnedPatternUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableSuccessCount(v *int) *LearnedPatternUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *LearnedPatternUpdate) AddSuccessCount(v int) *LearnedPatternUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *LearnedPatternUpdate) SetFailureCount(v int) *LearnedPatternUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableFailureCount(v *int) *LearnedPatternUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *LearnedPatternUpdate) AddFailureCount(v int) *LearnedPatternUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *LearnedPatternUpdate) SetEmbedding(v []float32) *LearnedPatternUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *LearnedPatternUpdate) AppendEmbedding(v []float32) *LearnedPatternUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *LearnedPatternUpdate) ClearEmbedding() *LearnedPatternUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnedPatternUpdate) SetUpdatedAt(v time.Time) *LearnedPatternUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnedPatternMutation object of the builder.
func (_u *LearnedPatternUpdate) Mutation() *LearnedPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnedPatternUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnedPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnedPatternUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnedpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedPatternUpdate) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := learnedpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "LearnedPattern.pattern_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnedpattern.Table, learnedpattern.Columns, sqlgraph.NewFieldSpec(learnedpattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(learnedpattern.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerPattern(); ok {
		_spec.SetField(learnedpattern.FieldTriggerPattern, field.TypeString, value)
	}
	if _u.mutation.TriggerPatternCleared() {
		_spec.ClearField(learnedpattern.FieldTriggerPattern, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(learnedpattern.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(learnedpattern.FieldSolution, field.TypeString, value)
	}
	if _u.mutation.SolutionCleared() {
		_spec.ClearField(learnedpattern.FieldSolution, field.TypeString)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(learnedpattern.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnedpattern.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(learnedpattern.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Repo(); ok {
		_spec.SetField(learnedpattern.FieldRepo, field.TypeString, value)
	}
	if _u.mutation.RepoCleared() {
		_spec.ClearField(learnedpattern.FieldRepo, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(learnedpattern.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(learnedpattern.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.FilePattern(); ok {
		_spec.SetField(learnedpattern.FieldFilePattern, field.TypeString, value)
	}
	if _u.mutation.FilePatternCleared() {
		_spec.ClearField(learnedpattern.FieldFilePattern, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(learnedpattern.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(learnedpattern.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(learnedpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(learnedpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(learnedpattern.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(learnedpattern.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(learnedpattern.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(learnedpattern.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(learnedpattern.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnedpattern.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(learnedpattern.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnedpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnedpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnedPatternUpdateOne is the builder for updating a single LearnedPattern entity.
type LearnedPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnedPatternMutation
}

// SetPatternType sets the "pattern_type" field.
func (_u *LearnedPatternUpdateOne) SetPatternType(v learnedpattern.PatternType) *LearnedPatternUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillablePatternType(v *learnedpattern.PatternType) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetTriggerPattern sets the "trigger_pattern" field.
func (_u *LearnedPatternUpdateOne) SetTriggerPattern(v string) *LearnedPatternUpdateOne {
	_u.mutation.SetTriggerPattern(v)
	return _u
}

// SetNillableTriggerPattern sets the "trigger_pattern" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableTriggerPattern(v *string) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetTriggerPattern(*v)
	}
	return _u
}

// ClearTriggerPattern clears the value of the "trigger_pattern" field.
func (_u *LearnedPatternUpdateOne) ClearTriggerPattern() *LearnedPatternUpdateOne {
	_u.mutation.ClearTriggerPattern()
	return _u
}

// SetDescription sets the "description" field.
func (_u *LearnedPatternUpdateOne) SetDescription(v string) *LearnedPatternUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableDescription(v *string) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSolution sets the "solution" field.
func (_u *LearnedPatternUpdateOne) SetSolution(v string) *LearnedPatternUpdateOne {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableSolution(v *string) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// ClearSolution clears the value of the "solution" field.
func (_u *LearnedPatternUpdateOne) ClearSolution() *LearnedPatternUpdateOne {
	_u.mutation.ClearSolution()
	return _u
}

// SetExamples sets the "examples" field.
func (_u *LearnedPatternUpdateOne) SetExamples(v []string) *LearnedPatternUpdateOne {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *LearnedPatternUpdateOne) AppendExamples(v []string) *LearnedPatternUpdateOne {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *LearnedPatternUpdateOne) ClearExamples() *LearnedPatternUpdateOne {
	_u.mutation.ClearExamples()
	return _u
}

// SetRepo sets the "repo" field.
func (_u *LearnedPatternUpdateOne) SetRepo(v string) *LearnedPatternUpdateOne {
	_u.mutation.SetRepo(v)
	return _u
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableRepo(v *string) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetRepo(*v)
	}
	return _u
}

// ClearRepo clears the value of the "repo" field.
func (_u *LearnedPatternUpdateOne) ClearRepo() *LearnedPatternUpdateOne {
	_u.mutation.ClearRepo()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *LearnedPatternUpdateOne) SetLanguage(v string) *LearnedPatternUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableLanguage(v *string) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *LearnedPatternUpdateOne) ClearLanguage() *LearnedPatternUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetFilePattern sets the "file_pattern" field.
func (_u *LearnedPatternUpdateOne) SetFilePattern(v string) *LearnedPatternUpdateOne {
	_u.mutation.SetFilePattern(v)
	return _u
}

// SetNillableFilePattern sets the "file_pattern" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableFilePattern(v *string) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetFilePattern(*v)
	}
	return _u
}

// ClearFilePattern clears the value of the "file_pattern" field.
func (_u *LearnedPatternUpdateOne) ClearFilePattern() *LearnedPatternUpdateOne {
	_u.mutation.ClearFilePattern()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *LearnedPatternUpdateOne) SetTaskID(v string) *LearnedPatternUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableTaskID(v *string) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *LearnedPatternUpdateOne) ClearTaskID() *LearnedPatternUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LearnedPatternUpdateOne) SetConfidence(v float64) *LearnedPatternUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableConfidence(v *float64) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LearnedPatternUpdateOne) AddConfidence(v float64) *LearnedPatternUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *LearnedPatternUpdateOne) SetSuccessCount(v int) *LearnedPatternUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableSuccessCount(v *int) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *LearnedPatternUpdateOne) AddSuccessCount(v int) *LearnedPatternUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *LearnedPatternUpdateOne) SetFailureCount(v int) *LearnedPatternUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableFailureCount(v *int) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *LearnedPatternUpdateOne) AddFailureCount(v int) *LearnedPatternUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *LearnedPatternUpdateOne) SetEmbedding(v []float32) *LearnedPatternUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *LearnedPatternUpdateOne) AppendEmbedding(v []float32) *LearnedPatternUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *LearnedPatternUpdateOne) ClearEmbedding() *LearnedPatternUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnedPatternUpdateOne) SetUpdatedAt(v time.Time) *LearnedPatternUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnedPatternMutation object of the builder.
func (_u *LearnedPatternUpdateOne) Mutation() *LearnedPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnedPatternUpdate builder.
func (_u *LearnedPatternUpdateOne) Where(ps ...predicate.LearnedPattern) *LearnedPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnedPatternUpdateOne) Select(field string, fields ...string) *LearnedPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnedPattern entity.
func (_u *LearnedPatternUpdateOne) Save(ctx context.Context) (*LearnedPattern, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedPatternUpdateOne) SaveX(ctx context.Context) *LearnedPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnedPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnedPatternUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnedpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedPatternUpdateOne) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := learnedpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "LearnedPattern.pattern_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedPatternUpdateOne) sqlSave(ctx context.Context) (_node *LearnedPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnedpattern.Table, learnedpattern.Columns, sqlgraph.NewFieldSpec(learnedpattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnedPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnedpattern.FieldID)
		for _, f := range fields {
			if !learnedpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnedpattern.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(learnedpattern.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerPattern(); ok {
		_spec.SetField(learnedpattern.FieldTriggerPattern, field.TypeString, value)
	}
	if _u.mutation.TriggerPatternCleared() {
		_spec.ClearField(learnedpattern.FieldTriggerPattern, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(learnedpattern.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(learnedpattern.FieldSolution, field.TypeString, value)
	}
	if _u.mutation.SolutionCleared() {
		_spec.ClearField(learnedpattern.FieldSolution, field.TypeString)
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(learnedpattern.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnedpattern.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(learnedpattern.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Repo(); ok {
		_spec.SetField(learnedpattern.FieldRepo, field.TypeString, value)
	}
	if _u.mutation.RepoCleared() {
		_spec.ClearField(learnedpattern.FieldRepo, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(learnedpattern.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(learnedpattern.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.FilePattern(); ok {
		_spec.SetField(learnedpattern.FieldFilePattern, field.TypeString, value)
	}
	if _u.mutation.FilePatternCleared() {
		_spec.ClearField(learnedpattern.FieldFilePattern, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(learnedpattern.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(learnedpattern.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(learnedpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(learnedpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(learnedpattern.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(learnedpattern.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(learnedpattern.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(learnedpattern.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(learnedpattern.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnedpattern.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(learnedpattern.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnedpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnedPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnedpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
