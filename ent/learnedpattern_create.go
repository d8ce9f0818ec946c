// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/learnedpattern"
)

// LearnedPatternCreate is the builder for creating a LearnedPattern entity.
type LearnedPatternCreate struct {
	config
	mutation *LearnedPatternMutation
	hooks    []Hook
}

// SetPatternType sets the "pattern_type" field.
func (_c *LearnedPatternCreate) SetPatternType(v learnedpattern.PatternType) *LearnedPatternCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetTriggerPattern sets the "trigger_pattern" field.
func (_c *LearnedPatternCreate) SetTriggerPattern(v string) *LearnedPatternCreate {
	_c.mutation.SetTriggerPattern(v)
	return _c
}

// SetNillableTriggerPattern sets the "trigger_pattern" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableTriggerPattern(v *string) *LearnedPatternCreate {
	if v != nil {
		_c.SetTriggerPattern(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *LearnedPatternCreate) SetDescription(v string) *LearnedPatternCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetSolution sets the "solution" field.
func (_c *LearnedPatternCreate) SetSolution(v string) *LearnedPatternCreate {
	_c.mutation.SetSolution(v)
	return _c
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableSolution(v *string) *LearnedPatternCreate {
	if v != nil {
		_c.SetSolution(*v)
	}
	return _c
}

// SetExamples sets the "examples" field.
func (_c *LearnedPatternCreate) SetExamples(v []string) *LearnedPatternCreate {
	_c.mutation.SetExamples(v)
	return _c
}

// SetRepo sets the "repo" field.
func (_c *LearnedPatternCreate) SetRepo(v string) *LearnedPatternCreate {
	_c.mutation.SetRepo(v)
	return _c
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableRepo(v *string) *LearnedPatternCreate {
	if v != nil {
		_c.SetRepo(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *LearnedPatternCreate) SetLanguage(v string) *LearnedPatternCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableLanguage(v *string) *LearnedPatternCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetFilePattern sets the "file_pattern" field.
func (_c *LearnedPatternCreate) SetFilePattern(v string) *LearnedPatternCreate {
	_c.mutation.SetFilePattern(v)
	return _c
}

// SetNillableFilePattern sets the "file_pattern" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableFilePattern(v *string) *LearnedPatternCreate {
	if v != nil {
		_c.SetFilePattern(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *LearnedPatternCreate) SetTaskID(v string) *LearnedPatternCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableTaskID(v *string) *LearnedPatternCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *LearnedPatternCreate) SetConfidence(v float64) *LearnedPatternCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableConfidence(v *float64) *LearnedPatternCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *LearnedPatternCreate) SetSuccessCount(v int) *LearnedPatternCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableSuccessCount(v *int) *LearnedPatternCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *LearnedPatternCreate) SetFailureCount(v int) *LearnedPatternCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableFailureCount(v *int) *LearnedPatternCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *LearnedPatternCreate) SetEmbedding(v []float32) *LearnedPatternCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnedPatternCreate) SetCreatedAt(v time.Time) *LearnedPatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableCreatedAt(v *time.Time) *LearnedPatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnedPatternCreate) SetUpdatedAt(v time.Time) *LearnedPatternCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableUpdatedAt(v *time.Time) *LearnedPatternCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearnedPatternCreate) SetID(v string) *LearnedPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearnedPatternMutation object of the builder.
func (_c *LearnedPatternCreate) Mutation() *LearnedPatternMutation {
	return _c.mutation
}

// Save creates the LearnedPattern in the database.
func (_c *LearnedPatternCreate) Save(ctx context.Context) (*LearnedPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnedPatternCreate) SaveX(ctx context.Context) *LearnedPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnedPatternCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := learnedpattern.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := learnedpattern.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := learnedpattern.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learnedpattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnedpattern.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnedPatternCreate) check() error {
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "LearnedPattern.pattern_type"`)}
	}
	if v, ok := _c.mutation.PatternType(); ok {
		if err := learnedpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "LearnedPattern.pattern_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "LearnedPattern.description"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "LearnedPattern.confidence"`)}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "LearnedPattern.success_count"`)}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`ent: missing required field "LearnedPattern.failure_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearnedPattern.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnedPattern.updated_at"`)}
	}
	return nil
}

func (_c *LearnedPatternCreate) sqlSave(ctx context.Context) (*LearnedPattern, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LearnedPattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnedPatternCreate) createSpec() (*LearnedPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnedPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnedpattern.Table, sqlgraph.NewFieldSpec(learnedpattern.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(learnedpattern.FieldPatternType, field.TypeEnum, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.TriggerPattern(); ok {
		_spec.SetField(learnedpattern.FieldTriggerPattern, field.TypeString, value)
		_node.TriggerPattern = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(learnedpattern.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Solution(); ok {
		_spec.SetField(learnedpattern.FieldSolution, field.TypeString, value)
		_node.Solution = value
	}
	if value, ok := _c.mutation.Examples(); ok {
		_spec.SetField(learnedpattern.FieldExamples, field.TypeJSON, value)
		_node.Examples = value
	}
	if value, ok := _c.mutation.Repo(); ok {
		_spec.SetField(learnedpattern.FieldRepo, field.TypeString, value)
		_node.Repo = &value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(learnedpattern.FieldLanguage, field.TypeString, value)
		_node.Language = &value
	}
	if value, ok := _c.mutation.FilePattern(); ok {
		_spec.SetField(learnedpattern.FieldFilePattern, field.TypeString, value)
		_node.FilePattern = &value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(learnedpattern.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(learnedpattern.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(learnedpattern.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(learnedpattern.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(learnedpattern.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learnedpattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnedpattern.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnedPatternCreateBulk is the builder for creating many LearnedPattern entities in bulk.
type LearnedPatternCreateBulk struct {
	config
	err      error
	builders []*LearnedPatternCreate
}

// Save creates the LearnedPattern entities in the database.
func (_c *LearnedPatternCreateBulk) Save(ctx context.Context) ([]*LearnedPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnedPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnedPatternMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearnedPatternCreateBulk) SaveX(ctx context.Context) []*LearnedPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
