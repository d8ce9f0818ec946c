package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StaticMemory holds the schema definition for the StaticMemory entity.
// Immutable per-repo constraints. Admin updates insert a new version row;
// running tasks keep the version they captured at start.
type StaticMemory struct {
	ent.Schema
}

// Fields of the StaticMemory.
func (StaticMemory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("static_id").
			Unique().
			Immutable(),
		field.String("owner").
			Immutable(),
		field.String("repo").
			Immutable(),
		field.Int("version").
			Default(1).
			Immutable(),
		field.JSON("allowed_paths", []string{}).
			Optional().
			Immutable().
			Comment("Globs; empty means everything below the repo root"),
		field.JSON("blocked_paths", []string{}).
			Optional().
			Immutable(),
		field.Int("max_diff_lines").
			Default(1500).
			Immutable(),
		field.Int("max_files_per_task").
			Default(10).
			Immutable(),
		field.JSON("tech_stack", []string{}).
			Optional().
			Immutable().
			Comment("Hints for the planner, e.g. [typescript, react]"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the StaticMemory.
func (StaticMemory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner", "repo", "version").Unique(),
	}
}
