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
)

// SessionMemory is the model entity for the SessionMemory schema.
type SessionMemory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase sessionmemory.Phase `json:"phase,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Issue metadata, target files, DoD, estimated complexity
	TaskContext map[string]interface{} `json:"task_context,omitempty"`
	// Keyed by agent (planner/coder/fixer/reflector), latest output each
	AgentOutputs map[string]interface{} `json:"agent_outputs,omitempty"`
	// Present only on orchestrated parents: sub-task ids, dependencies, strategy
	Orchestration map[string]interface{} `json:"orchestration,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// LastCheckpoint holds the value of the "last_checkpoint" field.
	LastCheckpoint *string `json:"last_checkpoint,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionmemory.FieldTaskContext, sessionmemory.FieldAgentOutputs, sessionmemory.FieldOrchestration:
			values[i] = new([]byte)
		case sessionmemory.FieldErrorCount, sessionmemory.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case sessionmemory.FieldID, sessionmemory.FieldTaskID, sessionmemory.FieldPhase, sessionmemory.FieldStatus, sessionmemory.FieldLastCheckpoint:
			values[i] = new(sql.NullString)
		case sessionmemory.FieldCreatedAt, sessionmemory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionMemory fields.
func (_m *SessionMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionmemory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionmemory.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case sessionmemory.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = sessionmemory.Phase(value.String)
			}
		case sessionmemory.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case sessionmemory.FieldTaskContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field task_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TaskContext); err != nil {
					return fmt.Errorf("unmarshal field task_context: %w", err)
				}
			}
		case sessionmemory.FieldAgentOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentOutputs); err != nil {
					return fmt.Errorf("unmarshal field agent_outputs: %w", err)
				}
			}
		case sessionmemory.FieldOrchestration:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field orchestration", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Orchestration); err != nil {
					return fmt.Errorf("unmarshal field orchestration: %w", err)
				}
			}
		case sessionmemory.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case sessionmemory.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case sessionmemory.FieldLastCheckpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_checkpoint", values[i])
			} else if value.Valid {
				_m.LastCheckpoint = new(string)
				*_m.LastCheckpoint = value.String
			}
		case sessionmemory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessionmemory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionMemory.
// This includes values selected through modifiers, order, etc.
func (_m *SessionMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionMemory.
// Note that you need to call SessionMemory.Unwrap() before calling this method if this SessionMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionMemory) Update() *SessionMemoryUpdateOne {
	return NewSessionMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionMemory) Unwrap() *SessionMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionMemory) String() string {
	var builder strings.Builder
	builder.WriteString("SessionMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("task_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskContext))
	builder.WriteString(", ")
	builder.WriteString("agent_outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentOutputs))
	builder.WriteString(", ")
	builder.WriteString("orchestration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Orchestration))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.LastCheckpoint; v != nil {
		builder.WriteString("last_checkpoint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionMemories is a parsable slice of SessionMemory.
type SessionMemories []*SessionMemory
