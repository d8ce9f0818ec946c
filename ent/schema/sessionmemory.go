package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionMemory holds the schema definition for the SessionMemory entity.
// The per-task mutable ledger: phase, context, agent outputs, counters.
// Progress entries, attempt records and checkpoints live in their own tables
// because they are append-only; this row carries the mutable head state.
type SessionMemory struct {
	ent.Schema
}

// Fields of the SessionMemory.
func (SessionMemory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Unique(),
		field.Enum("phase").
			Values("new", "planning", "coding", "validating", "reflecting",
				"foreman", "pr_creating", "pr_opened", "completed", "failed", "waiting_human").
			Default("new"),
		field.String("status").
			Default("active"),
		field.JSON("task_context", map[string]interface{}{}).
			Optional().
			Comment("Issue metadata, target files, DoD, estimated complexity"),
		field.JSON("agent_outputs", map[string]interface{}{}).
			Optional().
			Comment("Keyed by agent (planner/coder/fixer/reflector), latest output each"),
		field.JSON("orchestration", map[string]interface{}{}).
			Optional().
			Comment("Present only on orchestrated parents: sub-task ids, dependencies, strategy"),
		field.Int("error_count").
			Default(0),
		field.Int("retry_count").
			Default(0),
		field.String("last_checkpoint").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SessionMemory.
func (SessionMemory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id").Unique(),
		index.Fields("phase"),
	}
}
