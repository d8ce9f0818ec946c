// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/patch"
)

// Patch is the model entity for the Patch schema.
type Patch struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Attempt holds the value of the "attempt" field.
	Attempt int `json:"attempt,omitempty"`
	// Producing agent: coder, fixer, aggregator
	Source string `json:"source,omitempty"`
	// Detected dialect before normalization
	Format string `json:"format,omitempty"`
	// Normalized unified diff
	Diff string `json:"diff,omitempty"`
	// FilesModified holds the value of the "files_modified" field.
	FilesModified []string `json:"files_modified,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	task_patches *string
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patch.FieldFilesModified:
			values[i] = new([]byte)
		case patch.FieldAttempt:
			values[i] = new(sql.NullInt64)
		case patch.FieldID, patch.FieldTaskID, patch.FieldSource, patch.FieldFormat, patch.FieldDiff:
			values[i] = new(sql.NullString)
		case patch.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case patch.ForeignKeys[0]: // task_patches
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patch fields.
func (_m *Patch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patch.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case patch.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case patch.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case patch.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case patch.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case patch.FieldDiff:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diff", values[i])
			} else if value.Valid {
				_m.Diff = value.String
			}
		case patch.FieldFilesModified:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field files_modified", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FilesModified); err != nil {
					return fmt.Errorf("unmarshal field files_modified: %w", err)
				}
			}
		case patch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patch.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_patches", values[i])
			} else if value.Valid {
				_m.task_patches = new(string)
				*_m.task_patches = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patch.
// This includes values selected through modifiers, order, etc.
func (_m *Patch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Patch.
// Note that you need to call Patch.Unwrap() before calling this method if this Patch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patch) Update() *PatchUpdateOne {
	return NewPatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patch) Unwrap() *Patch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Patch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patch) String() string {
	var builder strings.Builder
	builder.WriteString("Patch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("diff=")
	builder.WriteString(_m.Diff)
	builder.WriteString(", ")
	builder.WriteString("files_modified=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilesModified))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Patches is a parsable slice of Patch.
type Patches []*Patch
