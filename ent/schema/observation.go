package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Observation holds the schema definition for the Observation entity.
// Bifurcated capture: full_content is archival, summary is working memory.
type Observation struct {
	ent.Schema
}

// Fields of the Observation.
func (Observation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("observation_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("sequence").
			Immutable().
			Comment("Per-task monotonic"),
		field.Enum("type").
			Values("tool_call", "decision", "error", "fix", "learning").
			Immutable(),
		field.String("agent").
			Optional().
			Nillable().
			Immutable(),
		field.String("tool").
			Optional().
			Nillable().
			Immutable(),
		field.Text("full_content").
			Immutable(),
		field.String("summary").
			MaxLen(2000).
			Immutable(),
		field.Int("tokens_used").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("duration_ms").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("tags", []string{}).
			Optional().
			Immutable(),
		field.JSON("file_refs", []string{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Observation.
func (Observation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "sequence").Unique(),
		index.Fields("type"),
	}
}
