// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/staticmemory"
)

// StaticMemoryCreate is the builder for creating a StaticMemory entity.
type StaticMemoryCreate struct {
	config
	mutation *StaticMemoryMutation
	hooks    []Hook
}

// SetOwner sets the "owner" field.
func (_c *StaticMemoryCreate) SetOwner(v string) *StaticMemoryCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetRepo sets the "repo" field.
func (_c *StaticMemoryCreate) SetRepo(v string) *StaticMemoryCreate {
	_c.mutation.SetRepo(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *StaticMemoryCreate) SetVersion(v int) *StaticMemoryCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *StaticMemoryCreate) SetNillableVersion(v *int) *StaticMemoryCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetAllowedPaths sets the "allowed_paths" field.
func (_c *StaticMemoryCreate) SetAllowedPaths(v []string) *StaticMemoryCreate {
	_c.mutation.SetAllowedPaths(v)
	return _c
}

// SetBlockedPaths sets the "blocked_paths" field.
func (_c *StaticMemoryCreate) SetBlockedPaths(v []string) *StaticMemoryCreate {
	_c.mutation.SetBlockedPaths(v)
	return _c
}

// SetMaxDiffLines sets the "max_diff_lines" field.
func (_c *StaticMemoryCreate) SetMaxDiffLines(v int) *StaticMemoryCreate {
	_c.mutation.SetMaxDiffLines(v)
	return _c
}

// SetNillableMaxDiffLines sets the "max_diff_lines" field if the given value is not nil.
func (_c *StaticMemoryCreate) SetNillableMaxDiffLines(v *int) *StaticMemoryCreate {
	if v != nil {
		_c.SetMaxDiffLines(*v)
	}
	return _c
}

// SetMaxFilesPerTask sets the "max_files_per_task" field.
func (_c *StaticMemoryCreate) SetMaxFilesPerTask(v int) *StaticMemoryCreate {
	_c.mutation.SetMaxFilesPerTask(v)
	return _c
}

// SetNillableMaxFilesPerTask sets the "max_files_per_task" field if the given value is not nil.
func (_c *StaticMemoryCreate) SetNillableMaxFilesPerTask(v *int) *StaticMemoryCreate {
	if v != nil {
		_c.SetMaxFilesPerTask(*v)
	}
	return _c
}

// SetTechStack sets the "tech_stack" field.
func (_c *StaticMemoryCreate) SetTechStack(v []string) *StaticMemoryCreate {
	_c.mutation.SetTechStack(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StaticMemoryCreate) SetCreatedAt(v time.Time) *StaticMemoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StaticMemoryCreate) SetNillableCreatedAt(v *time.Time) *StaticMemoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StaticMemoryCreate) SetUpdatedAt(v time.Time) *StaticMemoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StaticMemoryCreate) SetNillableUpdatedAt(v *time.Time) *StaticMemoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StaticMemoryCreate) SetID(v string) *StaticMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StaticMemoryMutation object of the builder.
func (_c *StaticMemoryCreate) Mutation() *StaticMemoryMutation {
	return _c.mutation
}

// Save creates the StaticMemory in the database.
func (_c *StaticMemoryCreate) Save(ctx context.Context) (*StaticMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StaticMemoryCreate) SaveX(ctx context.Context) *StaticMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaticMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaticMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StaticMemoryCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := staticmemory.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.MaxDiffLines(); !ok {
		v := staticmemory.DefaultMaxDiffLines
		_c.mutation.SetMaxDiffLines(v)
	}
	if _, ok := _c.mutation.MaxFilesPerTask(); !ok {
		v := staticmemory.DefaultMaxFilesPerTask
		_c.mutation.SetMaxFilesPerTask(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := staticmemory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := staticmemory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StaticMemoryCreate) check() error {
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "StaticMemory.owner"`)}
	}
	if _, ok := _c.mutation.Repo(); !ok {
		return &ValidationError{Name: "repo", err: errors.New(`ent: missing required field "StaticMemory.repo"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "StaticMemory.version"`)}
	}
	if _, ok := _c.mutation.MaxDiffLines(); !ok {
		return &ValidationError{Name: "max_diff_lines", err: errors.New(`ent: missing required field "StaticMemory.max_diff_lines"`)}
	}
	if _, ok := _c.mutation.MaxFilesPerTask(); !ok {
		return &ValidationError{Name: "max_files_per_task", err: errors.New(`ent: missing required field "StaticMemory.max_files_per_task"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StaticMemory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StaticMemory.updated_at"`)}
	}
	return nil
}

func (_c *StaticMemoryCreate) sqlSave(ctx context.Context) (*StaticMemory, error) {
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
			return nil, fmt.Errorf("unexpected StaticMemory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StaticMemoryCreate) createSpec() (*StaticMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &StaticMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(staticmemory.Table, sqlgraph.NewFieldSpec(staticmemory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(staticmemory.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.Repo(); ok {
		_spec.SetField(staticmemory.FieldRepo, field.TypeString, value)
		_node.Repo = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(staticmemory.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.AllowedPaths(); ok {
		_spec.SetField(staticmemory.FieldAllowedPaths, field.TypeJSON, value)
		_node.AllowedPaths = value
	}
	if value, ok := _c.mutation.BlockedPaths(); ok {
		_spec.SetField(staticmemory.FieldBlockedPaths, field.TypeJSON, value)
		_node.BlockedPaths = value
	}
	if value, ok := _c.mutation.MaxDiffLines(); ok {
		_spec.SetField(staticmemory.FieldMaxDiffLines, field.TypeInt, value)
		_node.MaxDiffLines = value
	}
	if value, ok := _c.mutation.MaxFilesPerTask(); ok {
		_spec.SetField(staticmemory.FieldMaxFilesPerTask, field.TypeInt, value)
		_node.MaxFilesPerTask = value
	}
	if value, ok := _c.mutation.TechStack(); ok {
		_spec.SetField(staticmemory.FieldTechStack, field.TypeJSON, value)
		_node.TechStack = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(staticmemory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(staticmemory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StaticMemoryCreateBulk is the builder for creating many StaticMemory entities in bulk.
type StaticMemoryCreateBulk struct {
	config
	err      error
	builders []*StaticMemoryCreate
}

// Save creates the StaticMemory entities in the database.
func (_c *StaticMemoryCreateBulk) Save(ctx context.Context) ([]*StaticMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StaticMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StaticMemoryMutation)
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
func (_c *StaticMemoryCreateBulk) SaveX(ctx context.Context) []*StaticMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaticMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaticMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
