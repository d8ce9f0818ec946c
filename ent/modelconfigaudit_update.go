// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/modelconfigaudit"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ModelConfigAuditUpdate is the builder for updating ModelConfigAudit entities.
type ModelConfigAuditUpdate struct {
	config
	hooks    []Hook
	mutation *ModelConfigAuditMutation
}

// Where appends a list predicates to the ModelConfigAuditUpdate builder.
func (_u *ModelConfigAuditUpdate) Where(ps ...predicate.ModelConfigAudit) *ModelConfigAuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ModelConfigAuditMutation object of the builder.
func (_u *ModelConfigAuditUpdate) Mutation() *ModelConfigAuditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelConfigAuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigAuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelConfigAuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigAuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelConfigAuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelconfigaudit.Table, modelconfigaudit.Columns, sqlgraph.NewFieldSpec(modelconfigaudit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PreviousCleared() {
		_spec.ClearField(modelconfigaudit.FieldPrevious, field.TypeJSON)
	}
	if _u.mutation.ChangedByCleared() {
		_spec.ClearField(modelconfigaudit.FieldChangedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfigaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelConfigAuditUpdateOne is the builder for updating a single ModelConfigAudit entity.
type ModelConfigAuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelConfigAuditMutation
}

// Mutation returns the ModelConfigAuditMutation object of the builder.
func (_u *ModelConfigAuditUpdateOne) Mutation() *ModelConfigAuditMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelConfigAuditUpdate builder.
func (_u *ModelConfigAuditUpdateOne) Where(ps ...predicate.ModelConfigAudit) *ModelConfigAuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelConfigAuditUpdateOne) Select(field string, fields ...string) *ModelConfigAuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelConfigAudit entity.
func (_u *ModelConfigAuditUpdateOne) Save(ctx context.Context) (*ModelConfigAudit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigAuditUpdateOne) SaveX(ctx context.Context) *ModelConfigAudit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelConfigAuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigAuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelConfigAuditUpdateOne) sqlSave(ctx context.Context) (_node *ModelConfigAudit, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelconfigaudit.Table, modelconfigaudit.Columns, sqlgraph.NewFieldSpec(modelconfigaudit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelConfigAudit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelconfigaudit.FieldID)
		for _, f := range fields {
			if !modelconfigaudit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelconfigaudit.FieldID {
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
	if _u.mutation.PreviousCleared() {
		_spec.ClearField(modelconfigaudit.FieldPrevious, field.TypeJSON)
	}
	if _u.mutation.ChangedByCleared() {
		_spec.ClearField(modelconfigaudit.FieldChangedBy, field.TypeString)
	}
	_node = &ModelConfigAudit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfigaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
