package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patch holds the schema definition for the Patch entity.
// Every diff an agent produces is retained here, one row per attempt —
// the aggregator never rewrites these.
type Patch struct {
	ent.Schema
}

// Fields of the Patch.
func (Patch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("patch_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("attempt").
			Immutable(),
		field.String("source").
			Immutable().
			Comment("Producing agent: coder, fixer, aggregator"),
		field.String("format").
			Immutable().
			Comment("Detected dialect before normalization"),
		field.Text("diff").
			Immutable().
			Comment("Normalized unified diff"),
		field.JSON("files_modified", []string{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Patch.
func (Patch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "attempt"),
	}
}
