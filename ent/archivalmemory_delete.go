// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/archivalmemory"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ArchivalMemoryDelete is the builder for deleting a ArchivalMemory entity.
type ArchivalMemoryDelete struct {
	config
	hooks    []Hook
	mutation *ArchivalMemoryMutation
}

// Where appends a list predicates to the ArchivalMemoryDelete builder.
func (_d *ArchivalMemoryDelete) Where(ps ...predicate.ArchivalMemory) *ArchivalMemoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArchivalMemoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchivalMemoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArchivalMemoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(archivalmemory.Table, sqlgraph.NewFieldSpec(archivalmemory.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ArchivalMemoryDeleteOne is the builder for deleting a single ArchivalMemory entity.
type ArchivalMemoryDeleteOne struct {
	_d *ArchivalMemoryDelete
}

// Where appends a list predicates to the ArchivalMemoryDelete builder.
func (_d *ArchivalMemoryDeleteOne) Where(ps ...predicate.ArchivalMemory) *ArchivalMemoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArchivalMemoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{archivalmemory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchivalMemoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
