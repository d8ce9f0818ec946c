// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldRepo holds the string denoting the repo field in the database.
	FieldRepo = "repo"
	// FieldIssueNumber holds the string denoting the issue_number field in the database.
	FieldIssueNumber = "issue_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldDefinitionOfDone holds the string denoting the definition_of_done field in the database.
	FieldDefinitionOfDone = "definition_of_done"
	// FieldTargetFiles holds the string denoting the target_files field in the database.
	FieldTargetFiles = "target_files"
	// FieldCurrentDiff holds the string denoting the current_diff field in the database.
	FieldCurrentDiff = "current_diff"
	// FieldCommitMessage holds the string denoting the commit_message field in the database.
	FieldCommitMessage = "commit_message"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldParentTaskID holds the string denoting the parent_task_id field in the database.
	FieldParentTaskID = "parent_task_id"
	// FieldSubtaskIndex holds the string denoting the subtask_index field in the database.
	FieldSubtaskIndex = "subtask_index"
	// FieldIsOrchestrated holds the string denoting the is_orchestrated field in the database.
	FieldIsOrchestrated = "is_orchestrated"
	// FieldDryRun holds the string denoting the dry_run field in the database.
	FieldDryRun = "dry_run"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldPrNumber holds the string denoting the pr_number field in the database.
	FieldPrNumber = "pr_number"
	// FieldDeliveryID holds the string denoting the delivery_id field in the database.
	FieldDeliveryID = "delivery_id"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeProgressEntries holds the string denoting the progress_entries edge name in mutations.
	EdgeProgressEntries = "progress_entries"
	// EdgeAttemptRecords holds the string denoting the attempt_records edge name in mutations.
	EdgeAttemptRecords = "attempt_records"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeObservations holds the string denoting the observations edge name in mutations.
	EdgeObservations = "observations"
	// EdgePatches holds the string denoting the patches edge name in mutations.
	EdgePatches = "patches"
	// EdgeTaskEvents holds the string denoting the task_events edge name in mutations.
	EdgeTaskEvents = "task_events"
	// SessionMemoryFieldID holds the string denoting the ID field of the SessionMemory.
	SessionMemoryFieldID = "session_id"
	// ProgressEntryFieldID holds the string denoting the ID field of the ProgressEntry.
	ProgressEntryFieldID = "entry_id"
	// AttemptRecordFieldID holds the string denoting the ID field of the AttemptRecord.
	AttemptRecordFieldID = "attempt_id"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "checkpoint_id"
	// ObservationFieldID holds the string denoting the ID field of the Observation.
	ObservationFieldID = "observation_id"
	// PatchFieldID holds the string denoting the ID field of the Patch.
	PatchFieldID = "patch_id"
	// TaskEventFieldID holds the string denoting the ID field of the TaskEvent.
	TaskEventFieldID = "event_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "tasks"
	// SessionInverseTable is the table name for the SessionMemory entity.
	// It exists in this package in order to avoid circular dependency with the "sessionmemory" package.
	SessionInverseTable = "session_memories"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "task_session"
	// ProgressEntriesTable is the table that holds the progress_entries relation/edge.
	ProgressEntriesTable = "progress_entries"
	// ProgressEntriesInverseTable is the table name for the ProgressEntry entity.
	// It exists in this package in order to avoid circular dependency with the "progressentry" package.
	ProgressEntriesInverseTable = "progress_entries"
	// ProgressEntriesColumn is the table column denoting the progress_entries relation/edge.
	ProgressEntriesColumn = "task_progress_entries"
	// AttemptRecordsTable is the table that holds the attempt_records relation/edge.
	AttemptRecordsTable = "attempt_records"
	// AttemptRecordsInverseTable is the table name for the AttemptRecord entity.
	// It exists in this package in order to avoid circular dependency with the "attemptrecord" package.
	AttemptRecordsInverseTable = "attempt_records"
	// AttemptRecordsColumn is the table column denoting the attempt_records relation/edge.
	AttemptRecordsColumn = "task_attempt_records"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "task_checkpoints"
	// ObservationsTable is the table that holds the observations relation/edge.
	ObservationsTable = "observations"
	// ObservationsInverseTable is the table name for the Observation entity.
	// It exists in this package in order to avoid circular dependency with the "observation" package.
	ObservationsInverseTable = "observations"
	// ObservationsColumn is the table column denoting the observations relation/edge.
	ObservationsColumn = "task_observations"
	// PatchesTable is the table that holds the patches relation/edge.
	PatchesTable = "patches"
	// PatchesInverseTable is the table name for the Patch entity.
	// It exists in this package in order to avoid circular dependency with the "patch" package.
	PatchesInverseTable = "patches"
	// PatchesColumn is the table column denoting the patches relation/edge.
	PatchesColumn = "task_patches"
	// TaskEventsTable is the table that holds the task_events relation/edge.
	TaskEventsTable = "task_events"
	// TaskEventsInverseTable is the table name for the TaskEvent entity.
	// It exists in this package in order to avoid circular dependency with the "taskevent" package.
	TaskEventsInverseTable = "task_events"
	// TaskEventsColumn is the table column denoting the task_events relation/edge.
	TaskEventsColumn = "task_task_events"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldRepo,
	FieldIssueNumber,
	FieldTitle,
	FieldBody,
	FieldStatus,
	FieldPlan,
	FieldDefinitionOfDone,
	FieldTargetFiles,
	FieldCurrentDiff,
	FieldCommitMessage,
	FieldAttemptCount,
	FieldMaxAttempts,
	FieldLastError,
	FieldFailureReason,
	FieldParentTaskID,
	FieldSubtaskIndex,
	FieldIsOrchestrated,
	FieldDryRun,
	FieldBranch,
	FieldPrURL,
	FieldPrNumber,
	FieldDeliveryID,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDeletedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "tasks"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"task_session",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultIsOrchestrated holds the default value on creation for the "is_orchestrated" field.
	DefaultIsOrchestrated bool
	// DefaultDryRun holds the default value on creation for the "dry_run" field.
	DefaultDryRun bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued       Status = "queued"
	StatusRunning      Status = "running"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
	StatusWaitingHuman Status = "waiting_human"
	StatusCancelled    Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusCompleted, StatusFailed, StatusWaitingHuman, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRepo orders the results by the repo field.
func ByRepo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepo, opts...).ToFunc()
}

// ByIssueNumber orders the results by the issue_number field.
func ByIssueNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentDiff orders the results by the current_diff field.
func ByCurrentDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentDiff, opts...).ToFunc()
}

// ByCommitMessage orders the results by the commit_message field.
func ByCommitMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitMessage, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByParentTaskID orders the results by the parent_task_id field.
func ByParentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTaskID, opts...).ToFunc()
}

// BySubtaskIndex orders the results by the subtask_index field.
func BySubtaskIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtaskIndex, opts...).ToFunc()
}

// ByIsOrchestrated orders the results by the is_orchestrated field.
func ByIsOrchestrated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOrchestrated, opts...).ToFunc()
}

// ByDryRun orders the results by the dry_run field.
func ByDryRun(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDryRun, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByPrNumber orders the results by the pr_number field.
func ByPrNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrNumber, opts...).ToFunc()
}

// ByDeliveryID orders the results by the delivery_id field.
func ByDeliveryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryID, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByProgressEntriesCount orders the results by progress_entries count.
func ByProgressEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProgressEntriesStep(), opts...)
	}
}

// ByProgressEntries orders the results by progress_entries terms.
func ByProgressEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProgressEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttemptRecordsCount orders the results by attempt_records count.
func ByAttemptRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptRecordsStep(), opts...)
	}
}

// ByAttemptRecords orders the results by attempt_records terms.
func ByAttemptRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByObservationsCount orders the results by observations count.
func ByObservationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newObservationsStep(), opts...)
	}
}

// ByObservations orders the results by observations terms.
func ByObservations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newObservationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPatchesCount orders the results by patches count.
func ByPatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPatchesStep(), opts...)
	}
}

// ByPatches orders the results by patches terms.
func ByPatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTaskEventsCount orders the results by task_events count.
func ByTaskEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTaskEventsStep(), opts...)
	}
}

// ByTaskEvents orders the results by task_events terms.
func ByTaskEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionMemoryFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, SessionTable, SessionColumn),
	)
}
func newProgressEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProgressEntriesInverseTable, ProgressEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProgressEntriesTable, ProgressEntriesColumn),
	)
}
func newAttemptRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptRecordsInverseTable, AttemptRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptRecordsTable, AttemptRecordsColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newObservationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ObservationsInverseTable, ObservationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ObservationsTable, ObservationsColumn),
	)
}
func newPatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatchesInverseTable, PatchFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PatchesTable, PatchesColumn),
	)
}
func newTaskEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskEventsInverseTable, TaskEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TaskEventsTable, TaskEventsColumn),
	)
}
