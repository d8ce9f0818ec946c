// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArchivalMemoriesColumns holds the columns for the "archival_memories" table.
	ArchivalMemoriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "embedding", Type: field.TypeJSON},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"observation", "feedback", "block", "checkpoint"}},
		{Name: "source_id", Type: field.TypeString, Nullable: true},
		{Name: "repo", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "is_global", Type: field.TypeBool, Default: false},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "token_count", Type: field.TypeInt, Nullable: true},
		{Name: "importance_score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "access_count", Type: field.TypeInt, Default: 0},
		{Name: "last_accessed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
	}
	// ArchivalMemoriesTable holds the schema information for the "archival_memories" table.
	ArchivalMemoriesTable = &schema.Table{
		Name:       "archival_memories",
		Columns:    ArchivalMemoriesColumns,
		PrimaryKey: []*schema.Column{ArchivalMemoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "archivalmemory_repo",
				Unique:  false,
				Columns: []*schema.Column{ArchivalMemoriesColumns[6]},
			},
			{
				Name:    "archivalmemory_task_id",
				Unique:  false,
				Columns: []*schema.Column{ArchivalMemoriesColumns[7]},
			},
			{
				Name:    "archivalmemory_source_type",
				Unique:  false,
				Columns: []*schema.Column{ArchivalMemoriesColumns[4]},
			},
			{
				Name:    "archivalmemory_is_global",
				Unique:  false,
				Columns: []*schema.Column{ArchivalMemoriesColumns[8]},
			},
			{
				Name:    "archivalmemory_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ArchivalMemoriesColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					Where: "expires_at IS NOT NULL",
				},
			},
		},
	}
	// AttemptRecordsColumns holds the columns for the "attempt_records" table.
	AttemptRecordsColumns = []*schema.Column{
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "iteration", Type: field.TypeInt},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"plan", "code", "fix"}},
		{Name: "result", Type: field.TypeEnum, Enums: []string{"success", "failure"}},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_attempt_records", Type: field.TypeString, Nullable: true},
	}
	// AttemptRecordsTable holds the schema information for the "attempt_records" table.
	AttemptRecordsTable = &schema.Table{
		Name:       "attempt_records",
		Columns:    AttemptRecordsColumns,
		PrimaryKey: []*schema.Column{AttemptRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempt_records_tasks_attempt_records",
				Columns:    []*schema.Column{AttemptRecordsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attemptrecord_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptRecordsColumns[1], AttemptRecordsColumns[6]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_checkpoints", Type: field.TypeString, Nullable: true},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_tasks_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1], CheckpointsColumns[5]},
			},
		},
	}
	// LearnedPatternsColumns holds the columns for the "learned_patterns" table.
	LearnedPatternsColumns = []*schema.Column{
		{Name: "pattern_id", Type: field.TypeString, Unique: true},
		{Name: "pattern_type", Type: field.TypeEnum, Enums: []string{"fix", "convention", "error", "style", "refactor"}},
		{Name: "trigger_pattern", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "solution", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "examples", Type: field.TypeJSON, Nullable: true},
		{Name: "repo", Type: field.TypeString, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "file_pattern", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnedPatternsTable holds the schema information for the "learned_patterns" table.
	LearnedPatternsTable = &schema.Table{
		Name:       "learned_patterns",
		Columns:    LearnedPatternsColumns,
		PrimaryKey: []*schema.Column{LearnedPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnedpattern_pattern_type",
				Unique:  false,
				Columns: []*schema.Column{LearnedPatternsColumns[1]},
			},
			{
				Name:    "learnedpattern_repo",
				Unique:  false,
				Columns: []*schema.Column{LearnedPatternsColumns[6]},
			},
			{
				Name:    "learnedpattern_confidence",
				Unique:  false,
				Columns: []*schema.Column{LearnedPatternsColumns[10]},
			},
		},
	}
	// ModelConfigsColumns holds the columns for the "model_configs" table.
	ModelConfigsColumns = []*schema.Column{
		{Name: "config_id", Type: field.TypeString, Unique: true},
		{Name: "purpose", Type: field.TypeEnum, Enums: []string{"plan", "code", "fix", "reflect", "summarize", "embed"}},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "max_tokens", Type: field.TypeInt, Default: 4096},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.2},
		{Name: "reasoning_effort", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModelConfigsTable holds the schema information for the "model_configs" table.
	ModelConfigsTable = &schema.Table{
		Name:       "model_configs",
		Columns:    ModelConfigsColumns,
		PrimaryKey: []*schema.Column{ModelConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modelconfig_purpose",
				Unique:  true,
				Columns: []*schema.Column{ModelConfigsColumns[1]},
			},
		},
	}
	// ModelConfigAuditsColumns holds the columns for the "model_config_audits" table.
	ModelConfigAuditsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "purpose", Type: field.TypeString},
		{Name: "previous", Type: field.TypeJSON, Nullable: true},
		{Name: "current", Type: field.TypeJSON},
		{Name: "changed_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ModelConfigAuditsTable holds the schema information for the "model_config_audits" table.
	ModelConfigAuditsTable = &schema.Table{
		Name:       "model_config_audits",
		Columns:    ModelConfigAuditsColumns,
		PrimaryKey: []*schema.Column{ModelConfigAuditsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modelconfigaudit_purpose_created_at",
				Unique:  false,
				Columns: []*schema.Column{ModelConfigAuditsColumns[1], ModelConfigAuditsColumns[5]},
			},
		},
	}
	// ObservationsColumns holds the columns for the "observations" table.
	ObservationsColumns = []*schema.Column{
		{Name: "observation_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"tool_call", "decision", "error", "fix", "learning"}},
		{Name: "agent", Type: field.TypeString, Nullable: true},
		{Name: "tool", Type: field.TypeString, Nullable: true},
		{Name: "full_content", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Size: 2000},
		{Name: "tokens_used", Type: field.TypeInt, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "file_refs", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_observations", Type: field.TypeString, Nullable: true},
	}
	// ObservationsTable holds the schema information for the "observations" table.
	ObservationsTable = &schema.Table{
		Name:       "observations",
		Columns:    ObservationsColumns,
		PrimaryKey: []*schema.Column{ObservationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "observations_tasks_observations",
				Columns:    []*schema.Column{ObservationsColumns[13]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "observation_task_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ObservationsColumns[1], ObservationsColumns[2]},
			},
			{
				Name:    "observation_type",
				Unique:  false,
				Columns: []*schema.Column{ObservationsColumns[3]},
			},
		},
	}
	// PatchesColumns holds the columns for the "patches" table.
	PatchesColumns = []*schema.Column{
		{Name: "patch_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "diff", Type: field.TypeString, Size: 2147483647},
		{Name: "files_modified", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_patches", Type: field.TypeString, Nullable: true},
	}
	// PatchesTable holds the schema information for the "patches" table.
	PatchesTable = &schema.Table{
		Name:       "patches",
		Columns:    PatchesColumns,
		PrimaryKey: []*schema.Column{PatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patches_tasks_patches",
				Columns:    []*schema.Column{PatchesColumns[8]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patch_task_id_attempt",
				Unique:  false,
				Columns: []*schema.Column{PatchesColumns[1], PatchesColumns[2]},
			},
		},
	}
	// ProgressEntriesColumns holds the columns for the "progress_entries" table.
	ProgressEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString, Nullable: true},
		{Name: "input_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_progress_entries", Type: field.TypeString, Nullable: true},
	}
	// ProgressEntriesTable holds the schema information for the "progress_entries" table.
	ProgressEntriesTable = &schema.Table{
		Name:       "progress_entries",
		Columns:    ProgressEntriesColumns,
		PrimaryKey: []*schema.Column{ProgressEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "progress_entries_tasks_progress_entries",
				Columns:    []*schema.Column{ProgressEntriesColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "progressentry_task_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ProgressEntriesColumns[1], ProgressEntriesColumns[2]},
			},
			{
				Name:    "progressentry_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProgressEntriesColumns[1], ProgressEntriesColumns[9]},
			},
		},
	}
	// RepositoriesColumns holds the columns for the "repositories" table.
	RepositoriesColumns = []*schema.Column{
		{Name: "repository_id", Type: field.TypeString, Unique: true},
		{Name: "owner", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "default_branch", Type: field.TypeString, Default: "main"},
		{Name: "tracker_project", Type: field.TypeString, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RepositoriesTable holds the schema information for the "repositories" table.
	RepositoriesTable = &schema.Table{
		Name:       "repositories",
		Columns:    RepositoriesColumns,
		PrimaryKey: []*schema.Column{RepositoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "repository_owner_name",
				Unique:  true,
				Columns: []*schema.Column{RepositoriesColumns[1], RepositoriesColumns[2]},
			},
		},
	}
	// SessionMemoriesColumns holds the columns for the "session_memories" table.
	SessionMemoriesColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"new", "planning", "coding", "validating", "reflecting", "foreman", "pr_creating", "pr_opened", "completed", "failed", "waiting_human"}, Default: "new"},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "task_context", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "orchestration", Type: field.TypeJSON, Nullable: true},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_checkpoint", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionMemoriesTable holds the schema information for the "session_memories" table.
	SessionMemoriesTable = &schema.Table{
		Name:       "session_memories",
		Columns:    SessionMemoriesColumns,
		PrimaryKey: []*schema.Column{SessionMemoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionmemory_task_id",
				Unique:  true,
				Columns: []*schema.Column{SessionMemoriesColumns[1]},
			},
			{
				Name:    "sessionmemory_phase",
				Unique:  false,
				Columns: []*schema.Column{SessionMemoriesColumns[2]},
			},
		},
	}
	// StaticMemoriesColumns holds the columns for the "static_memories" table.
	StaticMemoriesColumns = []*schema.Column{
		{Name: "static_id", Type: field.TypeString, Unique: true},
		{Name: "owner", Type: field.TypeString},
		{Name: "repo", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "allowed_paths", Type: field.TypeJSON, Nullable: true},
		{Name: "blocked_paths", Type: field.TypeJSON, Nullable: true},
		{Name: "max_diff_lines", Type: field.TypeInt, Default: 1500},
		{Name: "max_files_per_task", Type: field.TypeInt, Default: 10},
		{Name: "tech_stack", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StaticMemoriesTable holds the schema information for the "static_memories" table.
	StaticMemoriesTable = &schema.Table{
		Name:       "static_memories",
		Columns:    StaticMemoriesColumns,
		PrimaryKey: []*schema.Column{StaticMemoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "staticmemory_owner_repo_version",
				Unique:  true,
				Columns: []*schema.Column{StaticMemoriesColumns[1], StaticMemoriesColumns[2], StaticMemoriesColumns[3]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "repo", Type: field.TypeString},
		{Name: "issue_number", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "completed", "failed", "waiting_human", "cancelled"}, Default: "queued"},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "definition_of_done", Type: field.TypeJSON, Nullable: true},
		{Name: "target_files", Type: field.TypeJSON, Nullable: true},
		{Name: "current_diff", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "commit_message", Type: field.TypeString, Nullable: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "parent_task_id", Type: field.TypeString, Nullable: true},
		{Name: "subtask_index", Type: field.TypeInt, Nullable: true},
		{Name: "is_orchestrated", Type: field.TypeBool, Default: false},
		{Name: "dry_run", Type: field.TypeBool, Default: false},
		{Name: "branch", Type: field.TypeString, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "pr_number", Type: field.TypeInt, Nullable: true},
		{Name: "delivery_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_session", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_session_memories_session",
				Columns:    []*schema.Column{TasksColumns[30]},
				RefColumns: []*schema.Column{SessionMemoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5]},
			},
			{
				Name:    "task_repo",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_parent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[15]},
			},
			{
				Name:    "task_delivery_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[22]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[25]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[24]},
			},
			{
				Name:    "task_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[29]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_task_events", Type: field.TypeString, Nullable: true},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_events_tasks_task_events",
				Columns:    []*schema.Column{TaskEventsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[1], TaskEventsColumns[6]},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "delivery_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "failed", "completed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 5},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_delivery_id",
				Unique:  true,
				Columns: []*schema.Column{WebhookEventsColumns[1]},
			},
			{
				Name:    "webhookevent_status_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[5], WebhookEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArchivalMemoriesTable,
		AttemptRecordsTable,
		CheckpointsTable,
		LearnedPatternsTable,
		ModelConfigsTable,
		ModelConfigAuditsTable,
		ObservationsTable,
		PatchesTable,
		ProgressEntriesTable,
		RepositoriesTable,
		SessionMemoriesTable,
		StaticMemoriesTable,
		TasksTable,
		TaskEventsTable,
		WebhookEventsTable,
	}
)

func init() {
	AttemptRecordsTable.ForeignKeys[0].RefTable = TasksTable
	CheckpointsTable.ForeignKeys[0].RefTable = TasksTable
	ObservationsTable.ForeignKeys[0].RefTable = TasksTable
	PatchesTable.ForeignKeys[0].RefTable = TasksTable
	ProgressEntriesTable.ForeignKeys[0].RefTable = TasksTable
	TasksTable.ForeignKeys[0].RefTable = SessionMemoriesTable
	TaskEventsTable.ForeignKeys[0].RefTable = TasksTable
}
