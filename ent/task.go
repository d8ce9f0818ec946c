// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
	"github.com/forgeflow/forgeflow/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// owner/name of the target repository
	Repo string `json:"repo,omitempty"`
	// IssueNumber holds the value of the "issue_number" field.
	IssueNumber int `json:"issue_number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// Ordered plan steps from the planner
	Plan []string `json:"plan,omitempty"`
	// DefinitionOfDone holds the value of the "definition_of_done" field.
	DefinitionOfDone []string `json:"definition_of_done,omitempty"`
	// TargetFiles holds the value of the "target_files" field.
	TargetFiles []string `json:"target_files,omitempty"`
	// Latest candidate unified diff
	CurrentDiff string `json:"current_diff,omitempty"`
	// CommitMessage holds the value of the "commit_message" field.
	CommitMessage string `json:"commit_message,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// MaxAttempts holds the value of the "max_attempts" field.
	MaxAttempts int `json:"max_attempts,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// Machine-readable terminal reason (budget_exhausted, cancelled, ...)
	FailureReason *string `json:"failure_reason,omitempty"`
	// Set for sub-tasks produced by decomposition
	ParentTaskID *string `json:"parent_task_id,omitempty"`
	// SubtaskIndex holds the value of the "subtask_index" field.
	SubtaskIndex *int `json:"subtask_index,omitempty"`
	// True when this task fans out sub-tasks
	IsOrchestrated bool `json:"is_orchestrated,omitempty"`
	// DryRun holds the value of the "dry_run" field.
	DryRun bool `json:"dry_run,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL *string `json:"pr_url,omitempty"`
	// PrNumber holds the value of the "pr_number" field.
	PrNumber *int `json:"pr_number,omitempty"`
	// Webhook delivery that created this task
	DeliveryID *string `json:"delivery_id,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	task_session *string
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Session holds the value of the session edge.
	Session *SessionMemory `json:"session,omitempty"`
	// ProgressEntries holds the value of the progress_entries edge.
	ProgressEntries []*ProgressEntry `json:"progress_entries,omitempty"`
	// AttemptRecords holds the value of the attempt_records edge.
	AttemptRecords []*AttemptRecord `json:"attempt_records,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// Observations holds the value of the observations edge.
	Observations []*Observation `json:"observations,omitempty"`
	// Patches holds the value of the patches edge.
	Patches []*Patch `json:"patches,omitempty"`
	// TaskEvents holds the value of the task_events edge.
	TaskEvents []*TaskEvent `json:"task_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) SessionOrErr() (*SessionMemory, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sessionmemory.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ProgressEntriesOrErr returns the ProgressEntries value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ProgressEntriesOrErr() ([]*ProgressEntry, error) {
	if e.loadedTypes[1] {
		return e.ProgressEntries, nil
	}
	return nil, &NotLoadedError{edge: "progress_entries"}
}

// AttemptRecordsOrErr returns the AttemptRecords value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) AttemptRecordsOrErr() ([]*AttemptRecord, error) {
	if e.loadedTypes[2] {
		return e.AttemptRecords, nil
	}
	return nil, &NotLoadedError{edge: "attempt_records"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[3] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// ObservationsOrErr returns the Observations value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ObservationsOrErr() ([]*Observation, error) {
	if e.loadedTypes[4] {
		return e.Observations, nil
	}
	return nil, &NotLoadedError{edge: "observations"}
}

// PatchesOrErr returns the Patches value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) PatchesOrErr() ([]*Patch, error) {
	if e.loadedTypes[5] {
		return e.Patches, nil
	}
	return nil, &NotLoadedError{edge: "patches"}
}

// TaskEventsOrErr returns the TaskEvents value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) TaskEventsOrErr() ([]*TaskEvent, error) {
	if e.loadedTypes[6] {
		return e.TaskEvents, nil
	}
	return nil, &NotLoadedError{edge: "task_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldPlan, task.FieldDefinitionOfDone, task.FieldTargetFiles:
			values[i] = new([]byte)
		case task.FieldIsOrchestrated, task.FieldDryRun:
			values[i] = new(sql.NullBool)
		case task.FieldIssueNumber, task.FieldAttemptCount, task.FieldMaxAttempts, task.FieldSubtaskIndex, task.FieldPrNumber:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldRepo, task.FieldTitle, task.FieldBody, task.FieldStatus, task.FieldCurrentDiff, task.FieldCommitMessage, task.FieldLastError, task.FieldFailureReason, task.FieldParentTaskID, task.FieldBranch, task.FieldPrURL, task.FieldDeliveryID, task.FieldPodID:
			values[i] = new(sql.NullString)
		case task.FieldLastHeartbeatAt, task.FieldCreatedAt, task.FieldUpdatedAt, task.FieldStartedAt, task.FieldCompletedAt, task.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case task.ForeignKeys[0]: // task_session
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldRepo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo", values[i])
			} else if value.Valid {
				_m.Repo = value.String
			}
		case task.FieldIssueNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field issue_number", values[i])
			} else if value.Valid {
				_m.IssueNumber = int(value.Int64)
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Plan); err != nil {
					return fmt.Errorf("unmarshal field plan: %w", err)
				}
			}
		case task.FieldDefinitionOfDone:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field definition_of_done", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DefinitionOfDone); err != nil {
					return fmt.Errorf("unmarshal field definition_of_done: %w", err)
				}
			}
		case task.FieldTargetFiles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target_files", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetFiles); err != nil {
					return fmt.Errorf("unmarshal field target_files: %w", err)
				}
			}
		case task.FieldCurrentDiff:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_diff", values[i])
			} else if value.Valid {
				_m.CurrentDiff = value.String
			}
		case task.FieldCommitMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_message", values[i])
			} else if value.Valid {
				_m.CommitMessage = value.String
			}
		case task.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case task.FieldMaxAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attempts", values[i])
			} else if value.Valid {
				_m.MaxAttempts = int(value.Int64)
			}
		case task.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case task.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case task.FieldParentTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_task_id", values[i])
			} else if value.Valid {
				_m.ParentTaskID = new(string)
				*_m.ParentTaskID = value.String
			}
		case task.FieldSubtaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtask_index", values[i])
			} else if value.Valid {
				_m.SubtaskIndex = new(int)
				*_m.SubtaskIndex = int(value.Int64)
			}
		case task.FieldIsOrchestrated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_orchestrated", values[i])
			} else if value.Valid {
				_m.IsOrchestrated = value.Bool
			}
		case task.FieldDryRun:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field dry_run", values[i])
			} else if value.Valid {
				_m.DryRun = value.Bool
			}
		case task.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case task.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = new(string)
				*_m.PrURL = value.String
			}
		case task.FieldPrNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pr_number", values[i])
			} else if value.Valid {
				_m.PrNumber = new(int)
				*_m.PrNumber = int(value.Int64)
			}
		case task.FieldDeliveryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_id", values[i])
			} else if value.Valid {
				_m.DeliveryID = new(string)
				*_m.DeliveryID = value.String
			}
		case task.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case task.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case task.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case task.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_session", values[i])
			} else if value.Valid {
				_m.task_session = new(string)
				*_m.task_session = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Task entity.
func (_m *Task) QuerySession() *SessionMemoryQuery {
	return NewTaskClient(_m.config).QuerySession(_m)
}

// QueryProgressEntries queries the "progress_entries" edge of the Task entity.
func (_m *Task) QueryProgressEntries() *ProgressEntryQuery {
	return NewTaskClient(_m.config).QueryProgressEntries(_m)
}

// QueryAttemptRecords queries the "attempt_records" edge of the Task entity.
func (_m *Task) QueryAttemptRecords() *AttemptRecordQuery {
	return NewTaskClient(_m.config).QueryAttemptRecords(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Task entity.
func (_m *Task) QueryCheckpoints() *CheckpointQuery {
	return NewTaskClient(_m.config).QueryCheckpoints(_m)
}

// QueryObservations queries the "observations" edge of the Task entity.
func (_m *Task) QueryObservations() *ObservationQuery {
	return NewTaskClient(_m.config).QueryObservations(_m)
}

// QueryPatches queries the "patches" edge of the Task entity.
func (_m *Task) QueryPatches() *PatchQuery {
	return NewTaskClient(_m.config).QueryPatches(_m)
}

// QueryTaskEvents queries the "task_events" edge of the Task entity.
func (_m *Task) QueryTaskEvents() *TaskEventQuery {
	return NewTaskClient(_m.config).QueryTaskEvents(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("repo=")
	builder.WriteString(_m.Repo)
	builder.WriteString(", ")
	builder.WriteString("issue_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.IssueNumber))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteString(", ")
	builder.WriteString("definition_of_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefinitionOfDone))
	builder.WriteString(", ")
	builder.WriteString("target_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetFiles))
	builder.WriteString(", ")
	builder.WriteString("current_diff=")
	builder.WriteString(_m.CurrentDiff)
	builder.WriteString(", ")
	builder.WriteString("commit_message=")
	builder.WriteString(_m.CommitMessage)
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("max_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAttempts))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentTaskID; v != nil {
		builder.WriteString("parent_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubtaskIndex; v != nil {
		builder.WriteString("subtask_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_orchestrated=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOrchestrated))
	builder.WriteString(", ")
	builder.WriteString("dry_run=")
	builder.WriteString(fmt.Sprintf("%v", _m.DryRun))
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	if v := _m.PrURL; v != nil {
		builder.WriteString("pr_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrNumber; v != nil {
		builder.WriteString("pr_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeliveryID; v != nil {
		builder.WriteString("delivery_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
