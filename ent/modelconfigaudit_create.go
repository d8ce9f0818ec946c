// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/modelconfigaudit"
)

// ModelConfigAuditCreate is the builder for creating a ModelConfigAudit entity.
type ModelConfigAuditCreate struct {
	config
	mutation *ModelConfigAuditMutation
	hooks    []Hook
}

// SetPurpose sets the "purpose" field.
func (_c *ModelConfigAuditCreate) SetPurpose(v string) *ModelConfigAuditCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetPrevious sets the "previous" field.
func (_c *ModelConfigAuditCreate) SetPrevious(v map[string]interface{}) *ModelConfigAuditCreate {
	_c.mutation.SetPrevious(v)
	return _c
}

// SetCurrent sets the "current" field.
func (_c *ModelConfigAuditCreate) SetCurrent(v map[string]interface{}) *ModelConfigAuditCreate {
	_c.mutation.SetCurrent(v)
	return _c
}

// SetChangedBy sets the "changed_by" field.
func (_c *ModelConfigAuditCreate) SetChangedBy(v string) *ModelConfigAuditCreate {
	_c.mutation.SetChangedBy(v)
	return _c
}

// SetNillableChangedBy sets the "changed_by" field if the given value is not nil.
func (_c *ModelConfigAuditCreate) SetNillableChangedBy(v *string) *ModelConfigAuditCreate {
	if v != nil {
		_c.SetChangedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelConfigAuditCreate) SetCreatedAt(v time.Time) *ModelConfigAuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelConfigAuditCreate) SetNillableCreatedAt(v *time.Time) *ModelConfigAuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelConfigAuditCreate) SetID(v string) *ModelConfigAuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelConfigAuditMutation object of the builder.
func (_c *ModelConfigAuditCreate) Mutation() *ModelConfigAuditMutation {
	return _c.mutation
}

// Save creates the ModelConfigAudit in the database.
func (_c *ModelConfigAuditCreate) Save(ctx context.Context) (*ModelConfigAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelConfigAuditCreate) SaveX(ctx context.Context) *ModelConfigAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelConfigAuditCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelconfigaudit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelConfigAuditCreate) check() error {
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "ModelConfigAudit.purpose"`)}
	}
	if _, ok := _c.mutation.Current(); !ok {
		return &ValidationError{Name: "current", err: errors.New(`ent: missing required field "ModelConfigAudit.current"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelConfigAudit.created_at"`)}
	}
	return nil
}

func (_c *ModelConfigAuditCreate) sqlSave(ctx context.Context) (*ModelConfigAudit, error) {
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
			return nil, fmt.Errorf("unexpected ModelConfigAudit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelConfigAuditCreate) createSpec() (*ModelConfigAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelConfigAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelconfigaudit.Table, sqlgraph.NewFieldSpec(modelconfigaudit.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(modelconfigaudit.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.Previous(); ok {
		_spec.SetField(modelconfigaudit.FieldPrevious, field.TypeJSON, value)
		_node.Previous = value
	}
	if value, ok := _c.mutation.Current(); ok {
		_spec.SetField(modelconfigaudit.FieldCurrent, field.TypeJSON, value)
		_node.Current = value
	}
	if value, ok := _c.mutation.ChangedBy(); ok {
		_spec.SetField(modelconfigaudit.FieldChangedBy, field.TypeString, value)
		_node.ChangedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelconfigaudit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ModelConfigAuditCreateBulk is the builder for creating many ModelConfigAudit entities in bulk.
type ModelConfigAuditCreateBulk struct {
	config
	err      error
	builders []*ModelConfigAuditCreate
}

// Save creates the ModelConfigAudit entities in the database.
func (_c *ModelConfigAuditCreateBulk) Save(ctx context.Context) ([]*ModelConfigAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelConfigAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelConfigAuditMutation)
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
func (_c *ModelConfigAuditCreateBulk) SaveX(ctx context.Context) []*ModelConfigAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
