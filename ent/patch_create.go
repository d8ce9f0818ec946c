// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/patch"
)

// PatchCreate is the builder for creating a Patch entity.
type PatchCreate struct {
	config
	mutation *PatchMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *PatchCreate) SetTaskID(v string) *PatchCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *PatchCreate) SetAttempt(v int) *PatchCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *PatchCreate) SetSource(v string) *PatchCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *PatchCreate) SetFormat(v string) *PatchCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetDiff sets the "diff" field.
func (_c *PatchCreate) SetDiff(v string) *PatchCreate {
	_c.mutation.SetDiff(v)
	return _c
}

// SetFilesModified sets the "files_modified" field.
func (_c *PatchCreate) SetFilesModified(v []string) *PatchCreate {
	_c.mutation.SetFilesModified(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatchCreate) SetCreatedAt(v time.Time) *PatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatchCreate) SetNillableCreatedAt(v *time.Time) *PatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatchCreate) SetID(v string) *PatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PatchMutation object of the builder.
func (_c *PatchCreate) Mutation() *PatchMutation {
	return _c.mutation
}

// Save creates the Patch in the database.
func (_c *PatchCreate) Save(ctx context.Context) (*Patch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatchCreate) SaveX(ctx context.Context) *Patch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatchCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatchCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Patch.task_id"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "Patch.attempt"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Patch.source"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "Patch.format"`)}
	}
	if _, ok := _c.mutation.Diff(); !ok {
		return &ValidationError{Name: "diff", err: errors.New(`ent: missing required field "Patch.diff"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Patch.created_at"`)}
	}
	return nil
}

func (_c *PatchCreate) sqlSave(ctx context.Context) (*Patch, error) {
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
			return nil, fmt.Errorf("unexpected Patch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatchCreate) createSpec() (*Patch, *sqlgraph.CreateSpec) {
	var (
		_node = &Patch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patch.Table, sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(patch.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(patch.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(patch.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(patch.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Diff(); ok {
		_spec.SetField(patch.FieldDiff, field.TypeString, value)
		_node.Diff = value
	}
	if value, ok := _c.mutation.FilesModified(); ok {
		_spec.SetField(patch.FieldFilesModified, field.TypeJSON, value)
		_node.FilesModified = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PatchCreateBulk is the builder for creating many Patch entities in bulk.
type PatchCreateBulk struct {
	config
	err      error
	builders []*PatchCreate
}

// Save creates the Patch entities in the database.
func (_c *PatchCreateBulk) Save(ctx context.Context) ([]*Patch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatchMutation)
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
func (_c *PatchCreateBulk) SaveX(ctx context.Context) []*Patch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
