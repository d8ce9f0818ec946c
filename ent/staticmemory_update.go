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
	"github.com/forgeflow/forgeflow/ent/staticmemory"
)

// StaticMemoryUpdate is the builder for updating StaticMemory entities.
type StaticMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *StaticMemoryMutation
}

// Where appends a list predicates to the StaticMemoryUpdate builder.
func (_u *StaticMemoryUpdate) Where(ps ...predicate.StaticMemory) *StaticMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaticMemoryUpdate) SetUpdatedAt(v time.Time) *StaticMemoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StaticMemoryMutation object of the builder.
func (_u *StaticMemoryUpdate) Mutation() *StaticMemoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StaticMemoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaticMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StaticMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaticMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaticMemoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staticmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StaticMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(staticmemory.Table, staticmemory.Columns, sqlgraph.NewFieldSpec(staticmemory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.AllowedPathsCleared() {
		_spec.ClearField(staticmemory.FieldAllowedPaths, field.TypeJSON)
	}
	if _u.mutation.BlockedPathsCleared() {
		_spec.ClearField(staticmemory.FieldBlockedPaths, field.TypeJSON)
	}
	if _u.mutation.TechStackCleared() {
		_spec.ClearField(staticmemory.FieldTechStack, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staticmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staticmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StaticMemoryUpdateOne is the builder for updating a single StaticMemory entity.
type StaticMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StaticMemoryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaticMemoryUpdateOne) SetUpdatedAt(v time.Time) *StaticMemoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StaticMemoryMutation object of the builder.
func (_u *StaticMemoryUpdateOne) Mutation() *StaticMemoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the StaticMemoryUpdate builder.
func (_u *StaticMemoryUpdateOne) Where(ps ...predicate.StaticMemory) *StaticMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StaticMemoryUpdateOne) Select(field string, fields ...string) *StaticMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StaticMemory entity.
func (_u *StaticMemoryUpdateOne) Save(ctx context.Context) (*StaticMemory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaticMemoryUpdateOne) SaveX(ctx context.Context) *StaticMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StaticMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaticMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaticMemoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staticmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StaticMemoryUpdateOne) sqlSave(ctx context.Context) (_node *StaticMemory, err error) {
	_spec := sqlgraph.NewUpdateSpec(staticmemory.Table, staticmemory.Columns, sqlgraph.NewFieldSpec(staticmemory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StaticMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staticmemory.FieldID)
		for _, f := range fields {
			if !staticmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != staticmemory.FieldID {
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
	if _u.mutation.AllowedPathsCleared() {
		_spec.ClearField(staticmemory.FieldAllowedPaths, field.TypeJSON)
	}
	if _u.mutation.BlockedPathsCleared() {
		_spec.ClearField(staticmemory.FieldBlockedPaths, field.TypeJSON)
	}
	if _u.mutation.TechStackCleared() {
		_spec.ClearField(staticmemory.FieldTechStack, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staticmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StaticMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staticmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
