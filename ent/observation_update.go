// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/observation"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ObservationUpdate is the builder for updating Observation entities.
type ObservationUpdate struct {
	config
	hooks    []Hook
	mutation *ObservationMutation
}

// Where appends a list predicates to the ObservationUpdate builder.
func (_u *ObservationUpdate) Where(ps ...predicate.Observation) *ObservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ObservationMutation object of the builder.
func (_u *ObservationUpdate) Mutation() *ObservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObservationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ObservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(observation.Table, observation.Columns, sqlgraph.NewFieldSpec(observation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(observation.FieldAgent, field.TypeString)
	}
	if _u.mutation.ToolCleared() {
		_spec.ClearField(observation.FieldTool, field.TypeString)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(observation.FieldTokensUsed, field.TypeInt)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(observation.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(observation.FieldTags, field.TypeJSON)
	}
	if _u.mutation.FileRefsCleared() {
		_spec.ClearField(observation.FieldFileRefs, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObservationUpdateOne is the builder for updating a single Observation entity.
type ObservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObservationMutation
}

// Mutation returns the ObservationMutation object of the builder.
func (_u *ObservationUpdateOne) Mutation() *ObservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ObservationUpdate builder.
func (_u *ObservationUpdateOne) Where(ps ...predicate.Observation) *ObservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObservationUpdateOne) Select(field string, fields ...string) *ObservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Observation entity.
func (_u *ObservationUpdateOne) Save(ctx context.Context) (*Observation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationUpdateOne) SaveX(ctx context.Context) *Observation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ObservationUpdateOne) sqlSave(ctx context.Context) (_node *Observation, err error) {
	_spec := sqlgraph.NewUpdateSpec(observation.Table, observation.Columns, sqlgraph.NewFieldSpec(observation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Observation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, observation.FieldID)
		for _, f := range fields {
			if !observation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != observation.FieldID {
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
		_spec.ClearField(observation.FieldAgent, field.TypeString)
	}
	if _u.mutation.ToolCleared() {
		_spec.ClearField(observation.FieldTool, field.TypeString)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(observation.FieldTokensUsed, field.TypeInt)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(observation.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(observation.FieldTags, field.TypeJSON)
	}
	if _u.mutation.FileRefsCleared() {
		_spec.ClearField(observation.FieldFileRefs, field.TypeJSON)
	}
	_node = &Observation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
