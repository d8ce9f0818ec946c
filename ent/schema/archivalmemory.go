package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArchivalMemory holds the schema definition for the ArchivalMemory entity.
// Insert-only at the content layer; only access metadata mutates on read.
// A zero embedding vector means "no embedding available" — search for such
// rows degrades to full-text rank (GIN index created in pkg/database).
type ArchivalMemory struct {
	ent.Schema
}

// Fields of the ArchivalMemory.
func (ArchivalMemory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.Text("content").
			Immutable().
			Comment("Full content (full-text searchable)"),
		field.Text("summary").
			Optional().
			Immutable(),
		field.JSON("embedding", []float32{}).
			Immutable().
			Comment("Fixed-dimension content embedding (1536)"),
		field.Enum("source_type").
			Values("observation", "feedback", "block", "checkpoint").
			Immutable(),
		field.String("source_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("repo").
			Optional().
			Nillable().
			Immutable(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.Bool("is_global").
			Default(false).
			Comment("Global rows survive task deletion and are visible cross-task"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Int("token_count").
			Optional().
			Nillable().
			Immutable(),
		field.Float("importance_score").
			Default(0.5),
		field.Int("access_count").
			Default(0),
		field.Time("last_accessed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ArchivalMemory.
func (ArchivalMemory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("repo"),
		index.Fields("task_id"),
		index.Fields("source_type"),
		index.Fields("is_global"),
		index.Fields("expires_at").
			Annotations(entsql.IndexWhere("expires_at IS NOT NULL")),
	}
}
