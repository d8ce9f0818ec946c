// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
)

// AttemptRecord is the model entity for the AttemptRecord schema.
type AttemptRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Iteration holds the value of the "iteration" field.
	Iteration int `json:"iteration,omitempty"`
	// Action holds the value of the "action" field.
	Action attemptrecord.Action `json:"action,omitempty"`
	// Result holds the value of the "result" field.
	Result attemptrecord.Result `json:"result,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt            time.Time `json:"created_at,omitempty"`
	task_attempt_records *string
	selectValues         sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptrecord.FieldIteration:
			values[i] = new(sql.NullInt64)
		case attemptrecord.FieldID, attemptrecord.FieldTaskID, attemptrecord.FieldAction, attemptrecord.FieldResult, attemptrecord.FieldError:
			values[i] = new(sql.NullString)
		case attemptrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case attemptrecord.ForeignKeys[0]: // task_attempt_records
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptRecord fields.
func (_m *AttemptRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case attemptrecord.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case attemptrecord.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				_m.Iteration = int(value.Int64)
			}
		case attemptrecord.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = attemptrecord.Action(value.String)
			}
		case attemptrecord.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = attemptrecord.Result(value.String)
			}
		case attemptrecord.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case attemptrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case attemptrecord.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_attempt_records", values[i])
			} else if value.Valid {
				_m.task_attempt_records = new(string)
				*_m.task_attempt_records = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptRecord.
// Note that you need to call AttemptRecord.Unwrap() before calling this method if this AttemptRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptRecord) Update() *AttemptRecordUpdateOne {
	return NewAttemptRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptRecord) Unwrap() *AttemptRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iteration))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptRecords is a parsable slice of AttemptRecord.
type AttemptRecords []*AttemptRecord
