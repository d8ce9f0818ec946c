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
	"github.com/forgeflow/forgeflow/ent/archivalmemory"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ArchivalMemoryUpdate is the builder for updating ArchivalMemory entities.
type ArchivalMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *ArchivalMemoryMutation
}

// Where appends a list predicates to the ArchivalMemoryUpdate builder.
func (_u *ArchivalMemoryUpdate) Where(ps ...predicate.ArchivalMemory) *ArchivalMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ArchivalMemoryUpdate) SetTaskID(v string) *ArchivalMemoryUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ArchivalMemoryUpdate) SetNillableTaskID(v *string) *ArchivalMemoryUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ArchivalMemoryUpdate) ClearTaskID() *ArchivalMemoryUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetIsGlobal sets the "is_global" field.
func (_u *ArchivalMemoryUpdate) SetIsGlobal(v bool) *ArchivalMemoryUpdate {
	_u.mutation.SetIsGlobal(v)
	return _u
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (_u *ArchivalMemoryUpdate) SetNillableIsGlobal(v *bool) *ArchivalMemoryUpdate {
	if v != nil {
		_u.SetIsGlobal(*v)
	}
	return _u
}

// SetImportanceScore sets the "importance_score" field.
func (_u *ArchivalMemoryUpdate) SetImportanceScore(v float64) *ArchivalMemoryUpdate {
	_u.mutation.ResetImportanceScore()
	_u.mutation.SetImportanceScore(v)
	return _u
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_u *ArchivalMemoryUpdate) SetNillableImportanceScore(v *float64) *ArchivalMemoryUpdate {
	if v != nil {
		_u.SetImportanceScore(*v)
	}
	return _u
}

// AddImportanceScore adds value to the "importance_score" field.
func (_u *ArchivalMemoryUpdate) AddImportanceScore(v float64) *ArchivalMemoryUpdate {
	_u.mutation.AddImportanceScore(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *ArchivalMemoryUpdate) SetAccessCount(v int) *ArchivalMemoryUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *ArchivalMemoryUpdate) SetNillableAccessCount(v *int) *ArchivalMemoryUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *ArchivalMemoryUpdate) AddAccessCount(v int) *ArchivalMemoryUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *ArchivalMemoryUpdate) SetLastAccessedAt(v time.Time) *ArchivalMemoryUpdate {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *ArchivalMemoryUpdate) SetNillableLastAccessedAt(v *time.Time) *ArchivalMemoryUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *ArchivalMemoryUpdate) ClearLastAccessedAt() *ArchivalMemoryUpdate {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ArchivalMemoryUpdate) SetExpiresAt(v time.Time) *ArchivalMemoryUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ArchivalMemoryUpdate) SetNillableExpiresAt(v *time.Time) *ArchivalMemoryUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ArchivalMemoryUpdate) ClearExpiresAt() *ArchivalMemoryUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the ArchivalMemoryMutation object of the builder.
func (_u *ArchivalMemoryUpdate) Mutation() *ArchivalMemoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArchivalMemoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchivalMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArchivalMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchivalMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArchivalMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(archivalmemory.Table, archivalmemory.Columns, sqlgraph.NewFieldSpec(archivalmemory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(archivalmemory.FieldSummary, field.TypeString)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(archivalmemory.FieldSourceID, field.TypeString)
	}
	if _u.mutation.RepoCleared() {
		_spec.ClearField(archivalmemory.FieldRepo, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(archivalmemory.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(archivalmemory.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.IsGlobal(); ok {
		_spec.SetField(archivalmemory.FieldIsGlobal, field.TypeBool, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(archivalmemory.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(archivalmemory.FieldTokenCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ImportanceScore(); ok {
		_spec.SetField(archivalmemory.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportanceScore(); ok {
		_spec.AddField(archivalmemory.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(archivalmemory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(archivalmemory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(archivalmemory.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(archivalmemory.FieldLastAccessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(archivalmemory.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(archivalmemory.FieldExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archivalmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArchivalMemoryUpdateOne is the builder for updating a single ArchivalMemory entity.
type ArchivalMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArchivalMemoryMutation
}

// SetTaskID sets the "task_id" field.
func (_u *ArchivalMemoryUpdateOne) SetTaskID(v string) *ArchivalMemoryUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ArchivalMemoryUpdateOne) SetNillableTaskID(v *string) *ArchivalMemoryUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ArchivalMemoryUpdateOne) ClearTaskID() *ArchivalMemoryUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetIsGlobal sets the "is_global" field.
func (_u *ArchivalMemoryUpdateOne) SetIsGlobal(v bool) *ArchivalMemoryUpdateOne {
	_u.mutation.SetIsGlobal(v)
	return _u
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (_u *ArchivalMemoryUpdateOne) SetNillableIsGlobal(v *bool) *ArchivalMemoryUpdateOne {
	if v != nil {
		_u.SetIsGlobal(*v)
	}
	return _u
}

// SetImportanceScore sets the "importance_score" field.
func (_u *ArchivalMemoryUpdateOne) SetImportanceScore(v float64) *ArchivalMemoryUpdateOne {
	_u.mutation.ResetImportanceScore()
	_u.mutation.SetImportanceScore(v)
	return _u
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_u *ArchivalMemoryUpdateOne) SetNillableImportanceScore(v *float64) *ArchivalMemoryUpdateOne {
	if v != nil {
		_u.SetImportanceScore(*v)
	}
	return _u
}

// AddImportanceScore adds value to the "importance_score" field.
func (_u *ArchivalMemoryUpdateOne) AddImportanceScore(v float64) *ArchivalMemoryUpdateOne {
	_u.mutation.AddImportanceScore(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *ArchivalMemoryUpdateOne) SetAccessCount(v int) *ArchivalMemoryUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *ArchivalMemoryUpdateOne) SetNillableAccessCount(v *int) *ArchivalMemoryUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *ArchivalMemoryUpdateOne) AddAccessCount(v int) *ArchivalMemoryUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *ArchivalMemoryUpdateOne) SetLastAccessedAt(v time.Time) *ArchivalMemoryUpdateOne {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *ArchivalMemoryUpdateOne) SetNillableLastAccessedAt(v *time.Time) *ArchivalMemoryUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *ArchivalMemoryUpdateOne) ClearLastAccessedAt() *ArchivalMemoryUpdateOne {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ArchivalMemoryUpdateOne) SetExpiresAt(v time.Time) *ArchivalMemoryUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ArchivalMemoryUpdateOne) SetNillableExpiresAt(v *time.Time) *ArchivalMemoryUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ArchivalMemoryUpdateOne) ClearExpiresAt() *ArchivalMemoryUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the ArchivalMemoryMutation object of the builder.
func (_u *ArchivalMemoryUpdateOne) Mutation() *ArchivalMemoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArchivalMemoryUpdate builder.
func (_u *ArchivalMemoryUpdateOne) Where(ps ...predicate.ArchivalMemory) *ArchivalMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArchivalMemoryUpdateOne) Select(field string, fields ...string) *ArchivalMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArchivalMemory entity.
func (_u *ArchivalMemoryUpdateOne) Save(ctx context.Context) (*ArchivalMemory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchivalMemoryUpdateOne) SaveX(ctx context.Context) *ArchivalMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArchivalMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchivalMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArchivalMemoryUpdateOne) sqlSave(ctx context.Context) (_node *ArchivalMemory, err error) {
	_spec := sqlgraph.NewUpdateSpec(archivalmemory.Table, archivalmemory.Columns, sqlgraph.NewFieldSpec(archivalmemory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArchivalMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, archivalmemory.FieldID)
		for _, f := range fields {
			if !archivalmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != archivalmemory.FieldID {
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
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(archivalmemory.FieldSummary, field.TypeString)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(archivalmemory.FieldSourceID, field.TypeString)
	}
	if _u.mutation.RepoCleared() {
		_spec.ClearField(archivalmemory.FieldRepo, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(archivalmemory.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(archivalmemory.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.IsGlobal(); ok {
		_spec.SetField(archivalmemory.FieldIsGlobal, field.TypeBool, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(archivalmemory.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(archivalmemory.FieldTokenCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ImportanceScore(); ok {
		_spec.SetField(archivalmemory.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportanceScore(); ok {
		_spec.AddField(archivalmemory.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(archivalmemory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(archivalmemory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(archivalmemory.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(archivalmemory.FieldLastAccessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(archivalmemory.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(archivalmemory.FieldExpiresAt, field.TypeTime)
	}
	_node = &ArchivalMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archivalmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
