// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/predicate"
	"github.com/forgeflow/forgeflow/ent/progressentry"
)

// ProgressEntryUpdate is the builder for updating ProgressEntry entities.
type ProgressEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressEntryMutation
}

// Where appends a list predicates to the ProgressEntryUpdate builder.
func (_u *ProgressEntryUpdate) Where(ps ...predicate.ProgressEntry) *ProgressEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ProgressEntryMutation object of the builder.
func (_u *ProgressEntryUpdate) Mutation() *ProgressEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressentry.Table, progressentry.Columns, sqlgraph.NewFieldSpec(progressentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(progressentry.FieldAgent, field.TypeString)
	}
	if _u.mutation.InputSummaryCleared() {
		_spec.ClearField(progressentry.FieldInputSummary, field.TypeString)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(progressentry.FieldOutputSummary, field.TypeString)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(progressentry.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(progressentry.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressEntryUpdateOne is the builder for updating a single ProgressEntry entity.
type ProgressEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressEntryMutation
}

// Mutation returns the ProgressEntryMutation object of the builder.
func (_u *ProgressEntryUpdateOne) Mutation() *ProgressEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressEntryUpdate builder.
func (_u *ProgressEntryUpdateOne) Where(ps ...predicate.ProgressEntry) *ProgressEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressEntryUpdateOne) Select(field string, fields ...string) *ProgressEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressEntry entity.
func (_u *ProgressEntryUpdateOne) Save(ctx context.Context) (*ProgressEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEntryUpdateOne) SaveX(ctx context.Context) *ProgressEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressEntryUpdateOne) sqlSave(ctx context.Context) (_node *ProgressEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressentry.Table, progressentry.Columns, sqlgraph.NewFieldSpec(progressentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressentry.FieldID)
		for _, f := range fields {
			if !progressentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressentry.FieldID {
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
	if _u.mutation.AgentCleared() {
		_spec.ClearField(progressentry.FieldAgent, field.TypeString)
	}
	if _u.mutation.InputSummaryCleared() {
		_spec.ClearField(progressentry.FieldInputSummary, field.TypeString)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(progressentry.FieldOutputSummary, field.TypeString)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(progressentry.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(progressentry.FieldMetadata, field.TypeJSON)
	}
	_node = &ProgressEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
