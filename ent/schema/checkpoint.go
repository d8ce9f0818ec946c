package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// Immutable snapshots taken at phase boundaries; listed newest-first.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("reason").
			Immutable(),
		field.String("phase").
			Immutable().
			Comment("Session phase at snapshot time"),
		field.JSON("data", map[string]interface{}{}).
			Immutable().
			Comment("Snapshot of agent outputs and task context"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
	}
}
