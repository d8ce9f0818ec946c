package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEntry holds the schema definition for the ProgressEntry entity.
// Append-only per-task progress log; sequence is strictly monotonic per task.
type ProgressEntry struct {
	ent.Schema
}

// Fields of the ProgressEntry.
func (ProgressEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("sequence").
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.String("agent").
			Optional().
			Nillable().
			Immutable(),
		field.Text("input_summary").
			Optional().
			Immutable(),
		field.Text("output_summary").
			Optional().
			Immutable(),
		field.Int64("duration_ms").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProgressEntry.
func (ProgressEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "sequence").Unique(),
		index.Fields("task_id", "created_at"),
	}
}
