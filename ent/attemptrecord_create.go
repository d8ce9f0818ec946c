// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
)

// AttemptRecordCreate is the builder for creating a AttemptRecord entity.
type AttemptRecordCreate struct {
	config
	mutation *AttemptRecordMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *AttemptRecordCreate) SetTaskID(v string) *AttemptRecordCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *AttemptRecordCreate) SetIteration(v int) *AttemptRecordCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AttemptRecordCreate) SetAction(v attemptrecord.Action) *AttemptRecordCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *AttemptRecordCreate) SetResult(v attemptrecord.Result) *AttemptRecordCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetError sets the "error" field.
func (_c *AttemptRecordCreate) SetError(v string) *AttemptRecordCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableError(v *string) *AttemptRecordCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptRecordCreate) SetCreatedAt(v time.Time) *AttemptRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableCreatedAt(v *time.Time) *AttemptRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttemptRecordCreate) SetID(v string) *AttemptRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AttemptRecordMutation object of the builder.
func (_c *AttemptRecordCreate) Mutation() *AttemptRecordMutation {
	return _c.mutation
}

// Save creates the AttemptRecord in the database.
func (_c *AttemptRecordCreate) Save(ctx context.Context) (*AttemptRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptRecordCreate) SaveX(ctx context.Context) *AttemptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attemptrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptRecordCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "AttemptRecord.task_id"`)}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "AttemptRecord.iteration"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AttemptRecord.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := attemptrecord.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AttemptRecord.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "AttemptRecord.result"`)}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := attemptrecord.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "AttemptRecord.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AttemptRecord.created_at"`)}
	}
	return nil
}

func (_c *AttemptRecordCreate) sqlSave(ctx context.Context) (*AttemptRecord, error) {
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
			return nil, fmt.Errorf("unexpected AttemptRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptRecordCreate) createSpec() (*AttemptRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptrecord.Table, sqlgraph.NewFieldSpec(attemptrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(attemptrecord.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(attemptrecord.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(attemptrecord.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(attemptrecord.FieldResult, field.TypeEnum, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(attemptrecord.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attemptrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AttemptRecordCreateBulk is the builder for creating many AttemptRecord entities in bulk.
type AttemptRecordCreateBulk struct {
	config
	err      error
	builders []*AttemptRecordCreate
}

// Save creates the AttemptRecord entities in the database.
func (_c *AttemptRecordCreateBulk) Save(ctx context.Context) ([]*AttemptRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptRecordMutation)
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
func (_c *AttemptRecordCreateBulk) SaveX(ctx context.Context) []*AttemptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
