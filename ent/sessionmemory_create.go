// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
)

// SessionMemoryCreate is the builder for creating a SessionMemory entity.
type SessionMemoryCreate struct {
	config
	mutation *SessionMemoryMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *SessionMemoryCreate) SetTaskID(v string) *SessionMemoryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *SessionMemoryCreate) SetPhase(v sessionmemory.Phase) *SessionMemoryCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillablePhase(v *sessionmemory.Phase) *SessionMemoryCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionMemoryCreate) SetStatus(v string) *SessionMemoryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableStatus(v *string) *SessionMemoryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTaskContext sets the "task_context" field.
func (_c *SessionMemoryCreate) SetTaskContext(v map[string]interface{}) *SessionMemoryCreate {
	_c.mutation.SetTaskContext(v)
	return _c
}

// SetAgentOutputs sets the "agent_outputs" field.
func (_c *SessionMemoryCreate) SetAgentOutputs(v map[string]interface{}) *SessionMemoryCreate {
	_c.mutation.SetAgentOutputs(v)
	return _c
}

// SetOrchestration sets the "orchestration" field.
func (_c *SessionMemoryCreate) SetOrchestration(v map[string]interface{}) *SessionMemoryCreate {
	_c.mutation.SetOrchestration(v)
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *SessionMemoryCreate) SetErrorCount(v int) *SessionMemoryCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableErrorCount(v *int) *SessionMemoryCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *SessionMemoryCreate) SetRetryCount(v int) *SessionMemoryCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableRetryCount(v *int) *SessionMemoryCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastCheckpoint sets the "last_checkpoint" field.
func (_c *SessionMemoryCreate) SetLastCheckpoint(v string) *SessionMemoryCreate {
	_c.mutation.SetLastCheckpoint(v)
	return _c
}

// SetNillableLastCheckpoint sets the "last_checkpoint" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableLastCheckpoint(v *string) *SessionMemoryCreate {
	if v != nil {
		_c.SetLastCheckpoint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionMemoryCreate) SetCreatedAt(v time.Time) *SessionMemoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableCreatedAt(v *time.Time) *SessionMemoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionMemoryCreate) SetUpdatedAt(v time.Time) *SessionMemoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableUpdatedAt(v *time.Time) *SessionMemoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionMemoryCreate) SetID(v string) *SessionMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_c *SessionMemoryCreate) Mutation() *SessionMemoryMutation {
	return _c.mutation
}

// Save creates the SessionMemory in the database.
func (_c *SessionMemoryCreate) Save(ctx context.Context) (*SessionMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionMemoryCreate) SaveX(ctx context.Context) *SessionMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionMemoryCreate) defaults() {
	if _, ok := _c.mutation.Phase(); !ok {
		v := sessionmemory.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sessionmemory.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := sessionmemory.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := sessionmemory.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionmemory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionmemory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionMemoryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SessionMemory.task_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "SessionMemory.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := sessionmemory.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SessionMemory.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SessionMemory.status"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "SessionMemory.error_count"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "SessionMemory.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionMemory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionMemory.updated_at"`)}
	}
	return nil
}

func (_c *SessionMemoryCreate) sqlSave(ctx context.Context) (*SessionMemory, error) {
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
			return nil, fmt.Errorf("unexpected SessionMemory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionMemoryCreate) createSpec() (*SessionMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionmemory.Table, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(sessionmemory.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(sessionmemory.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sessionmemory.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TaskContext(); ok {
		_spec.SetField(sessionmemory.FieldTaskContext, field.TypeJSON, value)
		_node.TaskContext = value
	}
	if value, ok := _c.mutation.AgentOutputs(); ok {
		_spec.SetField(sessionmemory.FieldAgentOutputs, field.TypeJSON, value)
		_node.AgentOutputs = value
	}
	if value, ok := _c.mutation.Orchestration(); ok {
		_spec.SetField(sessionmemory.FieldOrchestration, field.TypeJSON, value)
		_node.Orchestration = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(sessionmemory.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(sessionmemory.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastCheckpoint(); ok {
		_spec.SetField(sessionmemory.FieldLastCheckpoint, field.TypeString, value)
		_node.LastCheckpoint = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionmemory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionMemoryCreateBulk is the builder for creating many SessionMemory entities in bulk.
type SessionMemoryCreateBulk struct {
	config
	err      error
	builders []*SessionMemoryCreate
}

// Save creates the SessionMemory entities in the database.
func (_c *SessionMemoryCreateBulk) Save(ctx context.Context) ([]*SessionMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMemoryMutation)
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
func (_c *SessionMemoryCreateBulk) SaveX(ctx context.Context) []*SessionMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
