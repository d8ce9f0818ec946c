// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/staticmemory"
)

// StaticMemory is the model entity for the StaticMemory schema.
type StaticMemory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner string `json:"owner,omitempty"`
	// Repo holds the value of the "repo" field.
	Repo string `json:"repo,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Globs; empty means everything below the repo root
	AllowedPaths []string `json:"allowed_paths,omitempty"`
	// BlockedPaths holds the value of the "blocked_paths" field.
	BlockedPaths []string `json:"blocked_paths,omitempty"`
	// MaxDiffLines holds the value of the "max_diff_lines" field.
	MaxDiffLines int `json:"max_diff_lines,omitempty"`
	// MaxFilesPerTask holds the value of the "max_files_per_task" field.
	MaxFilesPerTask int `json:"max_files_per_task,omitempty"`
	// Hints for the planner, e.g. [typescript, react]
	TechStack []string `json:"tech_stack,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StaticMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case staticmemory.FieldAllowedPaths, staticmemory.FieldBlockedPaths, staticmemory.FieldTechStack:
			values[i] = new([]byte)
		case staticmemory.FieldVersion, staticmemory.FieldMaxDiffLines, staticmemory.FieldMaxFilesPerTask:
			values[i] = new(sql.NullInt64)
		case staticmemory.FieldID, staticmemory.FieldOwner, staticmemory.FieldRepo:
			values[i] = new(sql.NullString)
		case staticmemory.FieldCreatedAt, staticmemory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StaticMemory fields.
func (_m *StaticMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case staticmemory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case staticmemory.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case staticmemory.FieldRepo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo", values[i])
			} else if value.Valid {
				_m.Repo = value.String
			}
		case staticmemory.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case staticmemory.FieldAllowedPaths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_paths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedPaths); err != nil {
					return fmt.Errorf("unmarshal field allowed_paths: %w", err)
				}
			}
		case staticmemory.FieldBlockedPaths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_paths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BlockedPaths); err != nil {
					return fmt.Errorf("unmarshal field blocked_paths: %w", err)
				}
			}
		case staticmemory.FieldMaxDiffLines:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_diff_lines", values[i])
			} else if value.Valid {
				_m.MaxDiffLines = int(value.Int64)
			}
		case staticmemory.FieldMaxFilesPerTask:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_files_per_task", values[i])
			} else if value.Valid {
				_m.MaxFilesPerTask = int(value.Int64)
			}
		case staticmemory.FieldTechStack:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tech_stack", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TechStack); err != nil {
					return fmt.Errorf("unmarshal field tech_stack: %w", err)
				}
			}
		case staticmemory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case staticmemory.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StaticMemory.
// This includes values selected through modifiers, order, etc.
func (_m *StaticMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StaticMemory.
// Note that you need to call StaticMemory.Unwrap() before calling this method if this StaticMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StaticMemory) Update() *StaticMemoryUpdateOne {
	return NewStaticMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StaticMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StaticMemory) Unwrap() *StaticMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StaticMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StaticMemory) String() string {
	var builder strings.Builder
	builder.WriteString("StaticMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner=")
	builder.WriteString(_m.Owner)
	builder.WriteString(", ")
	builder.WriteString("repo=")
	builder.WriteString(_m.Repo)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("allowed_paths=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedPaths))
	builder.WriteString(", ")
	builder.WriteString("blocked_paths=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockedPaths))
	builder.WriteString(", ")
	builder.WriteString("max_diff_lines=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDiffLines))
	builder.WriteString(", ")
	builder.WriteString("max_files_per_task=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxFilesPerTask))
	builder.WriteString(", ")
	builder.WriteString("tech_stack=")
	builder.WriteString(fmt.Sprintf("%v", _m.TechStack))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StaticMemories is a parsable slice of StaticMemory.
type StaticMemories []*StaticMemory
