// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/archivalmemory"
)

// ArchivalMemoryCreate is the builder for creating a ArchivalMemory entity.
type ArchivalMemoryCreate struct {
	config
	mutation *ArchivalMemoryMutation
	hooks    []Hook
}

// SetContent sets the "content" field.
func (_c *ArchivalMemoryCreate) SetContent(v string) *ArchivalMemoryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ArchivalMemoryCreate) SetSummary(v string) *ArchivalMemoryCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableSummary(v *string) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ArchivalMemoryCreate) SetEmbedding(v []float32) *ArchivalMemoryCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *ArchivalMemoryCreate) SetSourceType(v archivalmemory.SourceType) *ArchivalMemoryCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *ArchivalMemoryCreate) SetSourceID(v string) *ArchivalMemoryCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableSourceID(v *string) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetSourceID(*v)
	}
	return _c
}

// SetRepo sets the "repo" field.
func (_c *ArchivalMemoryCreate) SetRepo(v string) *ArchivalMemoryCreate {
	_c.mutation.SetRepo(v)
	return _c
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableRepo(v *string) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetRepo(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ArchivalMemoryCreate) SetTaskID(v string) *ArchivalMemoryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableTaskID(v *string) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetIsGlobal sets the "is_global" field.
func (_c *ArchivalMemoryCreate) SetIsGlobal(v bool) *ArchivalMemoryCreate {
	_c.mutation.SetIsGlobal(v)
	return _c
}

// SetNillableIsGlobal sets the "is_global" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableIsGlobal(v *bool) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetIsGlobal(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ArchivalMemoryCreate) SetMetadata(v map[string]interface{}) *ArchivalMemoryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *ArchivalMemoryCreate) SetTokenCount(v int) *ArchivalMemoryCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableTokenCount(v *int) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetImportanceScore sets the "importance_score" field.
func (_c *ArchivalMemoryCreate) SetImportanceScore(v float64) *ArchivalMemoryCreate {
	_c.mutation.SetImportanceScore(v)
	return _c
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableImportanceScore(v *float64) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetImportanceScore(*v)
	}
	return _c
}

// SetAccessCount sets the "access_count" field.
func (_c *ArchivalMemoryCreate) SetAccessCount(v int) *ArchivalMemoryCreate {
	_c.mutation.SetAccessCount(v)
	return _c
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableAccessCount(v *int) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetAccessCount(*v)
	}
	return _c
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_c *ArchivalMemoryCreate) SetLastAccessedAt(v time.Time) *ArchivalMemoryCreate {
	_c.mutation.SetLastAccessedAt(v)
	return _c
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableLastAccessedAt(v *time.Time) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetLastAccessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArchivalMemoryCreate) SetCreatedAt(v time.Time) *ArchivalMemoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableCreatedAt(v *time.Time) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ArchivalMemoryCreate) SetExpiresAt(v time.Time) *ArchivalMemoryCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ArchivalMemoryCreate) SetNillableExpiresAt(v *time.Time) *ArchivalMemoryCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArchivalMemoryCreate) SetID(v string) *ArchivalMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ArchivalMemoryMutation object of the builder.
func (_c *ArchivalMemoryCreate) Mutation() *ArchivalMemoryMutation {
	return _c.mutation
}

// Save creates the ArchivalMemory in the database.
func (_c *ArchivalMemoryCreate) Save(ctx context.Context) (*ArchivalMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArchivalMemoryCreate) SaveX(ctx context.Context) *ArchivalMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchivalMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchivalMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArchivalMemoryCreate) defaults() {
	if _, ok := _c.mutation.IsGlobal(); !ok {
		v := archivalmemory.DefaultIsGlobal
		_c.mutation.SetIsGlobal(v)
	}
	if _, ok := _c.mutation.ImportanceScore(); !ok {
		v := archivalmemory.DefaultImportanceScore
		_c.mutation.SetImportanceScore(v)
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		v := archivalmemory.DefaultAccessCount
		_c.mutation.SetAccessCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := archivalmemory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArchivalMemoryCreate) check() error {
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ArchivalMemory.content"`)}
	}
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "ArchivalMemory.embedding"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "ArchivalMemory.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := archivalmemory.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ArchivalMemory.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsGlobal(); !ok {
		return &ValidationError{Name: "is_global", err: errors.New(`ent: missing required field "ArchivalMemory.is_global"`)}
	}
	if _, ok := _c.mutation.ImportanceScore(); !ok {
		return &ValidationError{Name: "importance_score", err: errors.New(`ent: missing required field "ArchivalMemory.importance_score"`)}
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		return &ValidationError{Name: "access_count", err: errors.New(`ent: missing required field "ArchivalMemory.access_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ArchivalMemory.created_at"`)}
	}
	return nil
}

func (_c *ArchivalMemoryCreate) sqlSave(ctx context.Context) (*ArchivalMemory, error) {
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
			return nil, fmt.Errorf("unexpected ArchivalMemory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArchivalMemoryCreate) createSpec() (*ArchivalMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &ArchivalMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(archivalmemory.Table, sqlgraph.NewFieldSpec(archivalmemory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(archivalmemory.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(archivalmemory.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(archivalmemory.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(archivalmemory.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(archivalmemory.FieldSourceID, field.TypeString, value)
		_node.SourceID = &value
	}
	if value, ok := _c.mutation.Repo(); ok {
		_spec.SetField(archivalmemory.FieldRepo, field.TypeString, value)
		_node.Repo = &value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(archivalmemory.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.IsGlobal(); ok {
		_spec.SetField(archivalmemory.FieldIsGlobal, field.TypeBool, value)
		_node.IsGlobal = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(archivalmemory.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(archivalmemory.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = &value
	}
	if value, ok := _c.mutation.ImportanceScore(); ok {
		_spec.SetField(archivalmemory.FieldImportanceScore, field.TypeFloat64, value)
		_node.ImportanceScore = value
	}
	if value, ok := _c.mutation.AccessCount(); ok {
		_spec.SetField(archivalmemory.FieldAccessCount, field.TypeInt, value)
		_node.AccessCount = value
	}
	if value, ok := _c.mutation.LastAccessedAt(); ok {
		_spec.SetField(archivalmemory.FieldLastAccessedAt, field.TypeTime, value)
		_node.LastAccessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(archivalmemory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(archivalmemory.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	return _node, _spec
}

// ArchivalMemoryCreateBulk is the builder for creating many ArchivalMemory entities in bulk.
type ArchivalMemoryCreateBulk struct {
	config
	err      error
	builders []*ArchivalMemoryCreate
}

// Save creates the ArchivalMemory entities in the database.
func (_c *ArchivalMemoryCreateBulk) Save(ctx context.Context) ([]*ArchivalMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArchivalMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArchivalMemoryMutation)
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
func (_c *ArchivalMemoryCreateBulk) SaveX(ctx context.Context) []*ArchivalMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchivalMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchivalMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
