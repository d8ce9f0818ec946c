// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/progressentry"
)

// ProgressEntryCreate is the builder for creating a ProgressEntry entity.
type ProgressEntryCreate struct {
	config
	mutation *ProgressEntryMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ProgressEntryCreate) SetTaskID(v string) *ProgressEntryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ProgressEntryCreate) SetSequence(v int) *ProgressEntryCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ProgressEntryCreate) SetEventType(v string) *ProgressEntryCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *ProgressEntryCreate) SetAgent(v string) *ProgressEntryCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_c *ProgressEntryCreate) SetNillableAgent(v *string) *ProgressEntryCreate {
	if v != nil {
		_c.SetAgent(*v)
	}
	return _c
}

// SetInputSummary sets the "input_summary" field.
func (_c *ProgressEntryCreate) SetInputSummary(v string) *ProgressEntryCreate {
	_c.mutation.SetInputSummary(v)
	return _c
}

// SetNillableInputSummary sets the "input_summary" field if the given value is not nil.
func (_c *ProgressEntryCreate) SetNillableInputSummary(v *string) *ProgressEntryCreate {
	if v != nil {
		_c.SetInputSummary(*v)
	}
	return _c
}

// SetOutputSummary sets the "output_summary" field.
func (_c *ProgressEntryCreate) SetOutputSummary(v string) *ProgressEntryCreate {
	_c.mutation.SetOutputSummary(v)
	return _c
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_c *ProgressEntryCreate) SetNillableOutputSummary(v *string) *ProgressEntryCreate {
	if v != nil {
		_c.SetOutputSummary(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ProgressEntryCreate) SetDurationMs(v int64) *ProgressEntryCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ProgressEntryCreate) SetNillableDurationMs(v *int64) *ProgressEntryCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ProgressEntryCreate) SetMetadata(v map[string]interface{}) *ProgressEntryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProgressEntryCreate) SetCreatedAt(v time.Time) *ProgressEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProgressEntryCreate) SetNillableCreatedAt(v *time.Time) *ProgressEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProgressEntryCreate) SetID(v string) *ProgressEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProgressEntryMutation object of the builder.
func (_c *ProgressEntryCreate) Mutation() *ProgressEntryMutation {
	return _c.mutation
}

// Save creates the ProgressEntry in the database.
func (_c *ProgressEntryCreate) Save(ctx context.Context) (*ProgressEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressEntryCreate) SaveX(ctx context.Context) *ProgressEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := progressentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressEntryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ProgressEntry.task_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProgressEntry.sequence"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ProgressEntry.event_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProgressEntry.created_at"`)}
	}
	return nil
}

func (_c *ProgressEntryCreate) sqlSave(ctx context.Context) (*ProgressEntry, error) {
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
			return nil, fmt.Errorf("unexpected ProgressEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressEntryCreate) createSpec() (*ProgressEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressentry.Table, sqlgraph.NewFieldSpec(progressentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(progressentry.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(progressentry.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(progressentry.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(progressentry.FieldAgent, field.TypeString, value)
		_node.Agent = &value
	}
	if value, ok := _c.mutation.InputSummary(); ok {
		_spec.SetField(progressentry.FieldInputSummary, field.TypeString, value)
		_node.InputSummary = value
	}
	if value, ok := _c.mutation.OutputSummary(); ok {
		_spec.SetField(progressentry.FieldOutputSummary, field.TypeString, value)
		_node.OutputSummary = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(progressentry.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(progressentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(progressentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProgressEntryCreateBulk is the builder for creating many ProgressEntry entities in bulk.
type ProgressEntryCreateBulk struct {
	config
	err      error
	builders []*ProgressEntryCreate
}

// Save creates the ProgressEntry entities in the database.
func (_c *ProgressEntryCreateBulk) Save(ctx context.Context) ([]*ProgressEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressEntryMutation)
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
func (_c *ProgressEntryCreateBulk) SaveX(ctx context.Context) []*ProgressEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
