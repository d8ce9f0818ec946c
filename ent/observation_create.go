// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/observation"
)

// ObservationCreate is the builder for creating a Observation entity.
type ObservationCreate struct {
	config
	mutation *ObservationMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ObservationCreate) SetTaskID(v string) *ObservationCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ObservationCreate) SetSequence(v int) *ObservationCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ObservationCreate) SetType(v observation.Type) *ObservationCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *ObservationCreate) SetAgent(v string) *ObservationCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableAgent(v *string) *ObservationCreate {
	if v != nil {
		_c.SetAgent(*v)
	}
	return _c
}

// SetTool sets the "tool" field.
func (_c *ObservationCreate) SetTool(v string) *ObservationCreate {
	_c.mutation.SetTool(v)
	return _c
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableTool(v *string) *ObservationCreate {
	if v != nil {
		_c.SetTool(*v)
	}
	return _c
}

// SetFullContent sets the "full_content" field.
func (_c *ObservationCreate) SetFullContent(v string) *ObservationCreate {
	_c.mutation.SetFullContent(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ObservationCreate) SetSummary(v string) *ObservationCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *ObservationCreate) SetTokensUsed(v int) *ObservationCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableTokensUsed(v *int) *ObservationCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ObservationCreate) SetDurationMs(v int64) *ObservationCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableDurationMs(v *int64) *ObservationCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ObservationCreate) SetTags(v []string) *ObservationCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetFileRefs sets the "file_refs" field.
func (_c *ObservationCreate) SetFileRefs(v []string) *ObservationCreate {
	_c.mutation.SetFileRefs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ObservationCreate) SetCreatedAt(v time.Time) *ObservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableCreatedAt(v *time.Time) *ObservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ObservationCreate) SetID(v string) *ObservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ObservationMutation object of the builder.
func (_c *ObservationCreate) Mutation() *ObservationMutation {
	return _c.mutation
}

// Save creates the Observation in the database.
func (_c *ObservationCreate) Save(ctx context.Context) (*Observation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObservationCreate) SaveX(ctx context.Context) *Observation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ObservationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := observation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObservationCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Observation.task_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Observation.sequence"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Observation.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := observation.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Observation.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullContent(); !ok {
		return &ValidationError{Name: "full_content", err: errors.New(`ent: missing required field "Observation.full_content"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Observation.summary"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := observation.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "Observation.summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Observation.created_at"`)}
	}
	return nil
}

func (_c *ObservationCreate) sqlSave(ctx context.Context) (*Observation, error) {
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
			return nil, fmt.Errorf("unexpected Observation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ObservationCreate) createSpec() (*Observation, *sqlgraph.CreateSpec) {
	var (
		_node = &Observation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(observation.Table, sqlgraph.NewFieldSpec(observation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(observation.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(observation.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(observation.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(observation.FieldAgent, field.TypeString, value)
		_node.Agent = &value
	}
	if value, ok := _c.mutation.Tool(); ok {
		_spec.SetField(observation.FieldTool, field.TypeString, value)
		_node.Tool = &value
	}
	if value, ok := _c.mutation.FullContent(); ok {
		_spec.SetField(observation.FieldFullContent, field.TypeString, value)
		_node.FullContent = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(observation.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(observation.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(observation.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(observation.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.FileRefs(); ok {
		_spec.SetField(observation.FieldFileRefs, field.TypeJSON, value)
		_node.FileRefs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(observation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ObservationCreateBulk is the builder for creating many Observation entities in bulk.
type ObservationCreateBulk struct {
	config
	err      error
	builders []*ObservationCreate
}

// Save creates the Observation entities in the database.
func (_c *ObservationCreateBulk) Save(ctx context.Context) ([]*Observation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Observation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObservationMutation)
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
func (_c *ObservationCreateBulk) SaveX(ctx context.Context) []*Observation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
