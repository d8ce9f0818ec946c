package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnedPattern holds the schema definition for the LearnedPattern entity.
// Patterns accumulate outcome counters; confidence is always
// success/(success+failure+1), recomputed on every outcome.
type LearnedPattern struct {
	ent.Schema
}

// Fields of the LearnedPattern.
func (LearnedPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pattern_id").
			Unique().
			Immutable(),
		field.Enum("pattern_type").
			Values("fix", "convention", "error", "style", "refactor"),
		field.Text("trigger_pattern").
			Optional().
			Comment("Error text / situation that activates the pattern"),
		field.Text("description"),
		field.Text("solution").
			Optional(),
		field.JSON("examples", []string{}).
			Optional(),
		field.String("repo").
			Optional().
			Nillable().
			Comment("Scope: empty means all repos"),
		field.String("language").
			Optional().
			Nillable(),
		field.String("file_pattern").
			Optional().
			Nillable().
			Comment("Glob scope, e.g. src/**/*.ts"),
		field.String("task_id").
			Optional().
			Nillable().
			Comment("Origin task; cleared on promotion to global"),
		field.Float("confidence").
			Default(0),
		field.Int("success_count").
			Default(0),
		field.Int("failure_count").
			Default(0),
		field.JSON("embedding", []float32{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the LearnedPattern.
func (LearnedPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pattern_type"),
		index.Fields("repo"),
		index.Fields("confidence"),
	}
}
