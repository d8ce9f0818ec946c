package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptRecord holds the schema definition for the AttemptRecord entity.
// Strictly chronological, append-only; entries are never mutated or truncated.
type AttemptRecord struct {
	ent.Schema
}

// Fields of the AttemptRecord.
func (AttemptRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attempt_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("iteration").
			Immutable(),
		field.Enum("action").
			Values("plan", "code", "fix").
			Immutable(),
		field.Enum("result").
			Values("success", "failure").
			Immutable(),
		field.Text("error").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AttemptRecord.
func (AttemptRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
	}
}
