package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A task turns one issue into one reviewed draft pull request.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("repo").
			Comment("owner/name of the target repository"),
		field.Int("issue_number"),
		field.String("title"),
		field.Text("body").
			Optional(),
		field.Enum("status").
			Values("queued", "running", "completed", "failed", "waiting_human", "cancelled").
			Default("queued"),
		field.JSON("plan", []string{}).
			Optional().
			Comment("Ordered plan steps from the planner"),
		field.JSON("definition_of_done", []string{}).
			Optional(),
		field.JSON("target_files", []string{}).
			Optional(),
		field.Text("current_diff").
			Optional().
			Comment("Latest candidate unified diff"),
		field.String("commit_message").
			Optional(),
		field.Int("attempt_count").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("failure_reason").
			Optional().
			Nillable().
			Comment("Machine-readable terminal reason (budget_exhausted, cancelled, ...)"),
		field.String("parent_task_id").
			Optional().
			Nillable().
			Comment("Set for sub-tasks produced by decomposition"),
		field.Int("subtask_index").
			Optional().
			Nillable(),
		field.Bool("is_orchestrated").
			Default(false).
			Comment("True when this task fans out sub-tasks"),
		field.Bool("dry_run").
			Default(false),
		field.String("branch").
			Optional(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.Int("pr_number").
			Optional().
			Nillable(),
		field.String("delivery_id").
			Optional().
			Nillable().
			Comment("Webhook delivery that created this task"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("session", SessionMemory.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("progress_entries", ProgressEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("attempt_records", AttemptRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("observations", Observation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("patches", Patch.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("task_events", TaskEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
//
// Uniqueness of (repo, issue_number) is a partial unique index restricted to
// parent tasks (parent_task_id IS NULL) — sub-tasks share their parent's
// issue. The partial index and the no-nested-orchestration check constraint
// are created in pkg/database/migrations.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("repo"),
		index.Fields("parent_task_id"),
		index.Fields("delivery_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
