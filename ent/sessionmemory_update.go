// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/predicate"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
)

// SessionMemoryUpdate is the builder for updating SessionMemory entities.
type SessionMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMemoryMutation
}

// Where appends a list predicates to the SessionMemoryUpdate builder.
func (_u *SessionMemoryUpdate) Where(ps ...predicate.SessionMemory) *SessionMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SessionMemoryUpdate) SetTaskID(v string) *SessionMemoryUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableTaskID(v *string) *SessionMemoryUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionMemoryUpdate) SetPhase(v sessionmemory.Phase) *SessionMemoryUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillablePhase(v *sessionmemory.Phase) *SessionMemoryUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionMemoryUpdate) SetStatus(v string) *SessionMemoryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableStatus(v *string) *SessionMemoryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTaskContext sets the "task_context" field.
func (_u *SessionMemoryUpdate) SetTaskContext(v map[string]interface{}) *SessionMemoryUpdate {
	_u.mutation.SetTaskContext(v)
	return _u
}

// ClearTaskContext clears the value of the "task_context" field.
func (_u *SessionMemoryUpdate) ClearTaskContext() *SessionMemoryUpdate {
	_u.mutation.ClearTaskContext()
	return _u
}

// SetAgentOutputs sets the "agent_outputs" field.
func (_u *SessionMemoryUpdate) SetAgentOutputs(v map[string]interface{}) *SessionMemoryUpdate {
	_u.mutation.SetAgentOutputs(v)
	return _u
}

// ClearAgentOutputs clears the value of the "agent_outputs" field.
func (_u *SessionMemoryUpdate) ClearAgentOutputs() *SessionMemoryUpdate {
	_u.mutation.ClearAgentOutputs()
	return _u
}

// SetOrchestration sets the "orchestration" field.
func (_u *SessionMemoryUpdate) SetOrchestration(v map[string]interface{}) *SessionMemoryUpdate {
	_u.mutation.SetOrchestration(v)
	return _u
}

// ClearOrchestration clears the value of the "orchestration" field.
func (_u *SessionMemoryUpdate) ClearOrchestration() *SessionMemoryUpdate {
	_u.mutation.ClearOrchestration()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *SessionMemoryUpdate) SetErrorCount(v int) *SessionMemoryUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableErrorCount(v *int) *SessionMemoryUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *SessionMemoryUpdate) AddErrorCount(v int) *SessionMemoryUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SessionMemoryUpdate) SetRetryCount(v int) *SessionMemoryUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableRetryCount(v *int) *SessionMemoryUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SessionMemoryUpdate) AddRetryCount(v int) *SessionMemoryUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastCheckpoint sets the "last_checkpoint" field.
func (_u *SessionMemoryUpdate) SetLastCheckpoint(v string) *SessionMemoryUpdate {
	_u.mutation.SetLastCheckpoint(v)
	return _u
}

// SetNillableLastCheckpoint sets the "last_checkpoint" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableLastCheckpoint(v *string) *SessionMemoryUpdate {
	if v != nil {
		_u.SetLastCheckpoint(*v)
	}
	return _u
}

// ClearLastCheckpoint clears the value of the "last_checkpoint" field.
func (_u *SessionMemoryUpdate) ClearLastCheckpoint() *SessionMemoryUpdate {
	_u.mutation.ClearLastCheckpoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMemoryUpdate) SetUpdatedAt(v time.Time) *SessionMemoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_u *SessionMemoryUpdate) Mutation() *SessionMemoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionMemoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMemoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMemoryUpdate) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := sessionmemory.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SessionMemory.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmemory.Table, sessionmemory.Columns, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(sessionmemory.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionmemory.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionmemory.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskContext(); ok {
		_spec.SetField(sessionmemory.FieldTaskContext, field.TypeJSON, value)
	}
	if _u.mutation.TaskContextCleared() {
		_spec.ClearField(sessionmemory.FieldTaskContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentOutputs(); ok {
		_spec.SetField(sessionmemory.FieldAgentOutputs, field.TypeJSON, value)
	}
	if _u.mutation.AgentOutputsCleared() {
		_spec.ClearField(sessionmemory.FieldAgentOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Orchestration(); ok {
		_spec.SetField(sessionmemory.FieldOrchestration, field.TypeJSON, value)
	}
	if _u.mutation.OrchestrationCleared() {
		_spec.ClearField(sessionmemory.FieldOrchestration, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(sessionmemory.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(sessionmemory.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(sessionmemory.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(sessionmemory.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCheckpoint(); ok {
		_spec.SetField(sessionmemory.FieldLastCheckpoint, field.TypeString, value)
	}
	if _u.mutation.LastCheckpointCleared() {
		_spec.ClearField(sessionmemory.FieldLastCheckpoint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionMemoryUpdateOne is the builder for updating a single SessionMemory entity.
type SessionMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMemoryMutation
}

// SetTaskID sets the "task_id" field.
func (_u *SessionMemoryUpdateOne) SetTaskID(v string) *SessionMemoryUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableTaskID(v *string) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionMemoryUpdateOne) SetPhase(v sessionmemory.Phase) *SessionMemoryUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillablePhase(v *sessionmemory.Phase) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionMemoryUpdateOne) SetStatus(v string) *SessionMemoryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableStatus(v *string) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTaskContext sets the "task_context" field.
func (_u *SessionMemoryUpdateOne) SetTaskContext(v map[string]interface{}) *SessionMemoryUpdateOne {
	_u.mutation.SetTaskContext(v)
	return _u
}

// ClearTaskContext clears the value of the "task_context" field.
func (_u *SessionMemoryUpdateOne) ClearTaskContext() *SessionMemoryUpdateOne {
	_u.mutation.ClearTaskContext()
	return _u
}

// SetAgentOutputs sets the "agent_outputs" field.
func (_u *SessionMemoryUpdateOne) SetAgentOutputs(v map[string]interface{}) *SessionMemoryUpdateOne {
	_u.mutation.SetAgentOutputs(v)
	return _u
}

// ClearAgentOutputs clears the value of the "agent_outputs" field.
func (_u *SessionMemoryUpdateOne) ClearAgentOutputs() *SessionMemoryUpdateOne {
	_u.mutation.ClearAgentOutputs()
	return _u
}

// SetOrchestration sets the "orchestration" field.
func (_u *SessionMemoryUpdateOne) SetOrchestration(v map[string]interface{}) *SessionMemoryUpdateOne {
	_u.mutation.SetOrchestration(v)
	return _u
}

// ClearOrchestration clears the value of the "orchestration" field.
func (_u *SessionMemoryUpdateOne) ClearOrchestration() *SessionMemoryUpdateOne {
	_u.mutation.ClearOrchestration()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *SessionMemoryUpdateOne) SetErrorCount(v int) *SessionMemoryUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableErrorCount(v *int) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *SessionMemoryUpdateOne) AddErrorCount(v int) *SessionMemoryUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SessionMemoryUpdateOne) SetRetryCount(v int) *SessionMemoryUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableRetryCount(v *int) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SessionMemoryUpdateOne) AddRetryCount(v int) *SessionMemoryUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastCheckpoint sets the "last_checkpoint" field.
func (_u *SessionMemoryUpdateOne) SetLastCheckpoint(v string) *SessionMemoryUpdateOne {
	_u.mutation.SetLastCheckpoint(v)
	return _u
}

// SetNillableLastCheckpoint sets the "last_checkpoint" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableLastCheckpoint(v *string) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetLastCheckpoint(*v)
	}
	return _u
}

// ClearLastCheckpoint clears the value of the "last_checkpoint" field.
func (_u *SessionMemoryUpdateOne) ClearLastCheckpoint() *SessionMemoryUpdateOne {
	_u.mutation.ClearLastCheckpoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMemoryUpdateOne) SetUpdatedAt(v time.Time) *SessionMemoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_u *SessionMemoryUpdateOne) Mutation() *SessionMemoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionMemoryUpdate builder.
func (_u *SessionMemoryUpdateOne) Where(ps ...predicate.SessionMemory) *SessionMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionMemoryUpdateOne) Select(field string, fields ...string) *SessionMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionMemory entity.
func (_u *SessionMemoryUpdateOne) Save(ctx context.Context) (*SessionMemory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMemoryUpdateOne) SaveX(ctx context.Context) *SessionMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMemoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMemoryUpdateOne) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := sessionmemory.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SessionMemory.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionMemoryUpdateOne) sqlSave(ctx context.Context) (_node *SessionMemory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmemory.Table, sessionmemory.Columns, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionmemory.FieldID)
		for _, f := range fields {
			if !sessionmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionmemory.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(sessionmemory.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionmemory.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionmemory.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskContext(); ok {
		_spec.SetField(sessionmemory.FieldTaskContext, field.TypeJSON, value)
	}
	if _u.mutation.TaskContextCleared() {
		_spec.ClearField(sessionmemory.FieldTaskContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentOutputs(); ok {
		_spec.SetField(sessionmemory.FieldAgentOutputs, field.TypeJSON, value)
	}
	if _u.mutation.AgentOutputsCleared() {
		_spec.ClearField(sessionmemory.FieldAgentOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Orchestration(); ok {
		_spec.SetField(sessionmemory.FieldOrchestration, field.TypeJSON, value)
	}
	if _u.mutation.OrchestrationCleared() {
		_spec.ClearField(sessionmemory.FieldOrchestration, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(sessionmemory.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(sessionmemory.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(sessionmemory.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(sessionmemory.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCheckpoint(); ok {
		_spec.SetField(sessionmemory.FieldLastCheckpoint, field.TypeString, value)
	}
	if _u.mutation.LastCheckpointCleared() {
		_spec.ClearField(sessionmemory.FieldLastCheckpoint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
