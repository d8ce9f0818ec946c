// Code generated by ent, DO NOT EDIT.

package sessionmemory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionmemory type in the database.
	Label = "session_memory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTaskContext holds the string denoting the task_context field in the database.
	FieldTaskContext = "task_context"
	// FieldAgentOutputs holds the string denoting the agent_outputs field in the database.
	FieldAgentOutputs = "agent_outputs"
	// FieldOrchestration holds the string denoting the orchestration field in the database.
	FieldOrchestration = "orchestration"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldLastCheckpoint holds the string denoting the last_checkpoint field in the database.
	FieldLastCheckpoint = "last_checkpoint"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sessionmemory in the database.
	Table = "session_memories"
)

// Columns holds all SQL columns for sessionmemory fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldPhase,
	FieldStatus,
	FieldTaskContext,
	FieldAgentOutputs,
	FieldOrchestration,
	FieldErrorCount,
	FieldRetryCount,
	FieldLastCheckpoint,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseNew is the default value of the Phase enum.
const DefaultPhase = PhaseNew

// Phase values.
const (
	PhaseNew          Phase = "new"
	PhasePlanning     Phase = "planning"
	PhaseCoding       Phase = "coding"
	PhaseValidating   Phase = "validating"
	PhaseReflecting   Phase = "reflecting"
	PhaseForeman      Phase = "foreman"
	PhasePrCreating   Phase = "pr_creating"
	PhasePrOpened     Phase = "pr_opened"
	PhaseCompleted    Phase = "completed"
	PhaseFailed       Phase = "failed"
	PhaseWaitingHuman Phase = "waiting_human"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseNew, PhasePlanning, PhaseCoding, PhaseValidating, PhaseReflecting, PhaseForeman, PhasePrCreating, PhasePrOpened, PhaseCompleted, PhaseFailed, PhaseWaitingHuman:
		return nil
	default:
		return fmt.Errorf("sessionmemory: invalid enum value for phase field: %q", ph)
	}
}

// OrderOption defines the ordering options for the SessionMemory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByLastCheckpoint orders the results by the last_checkpoint field.
func ByLastCheckpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCheckpoint, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
