// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/observation"
)

// Observation is the model entity for the Observation schema.
type Observation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Per-task monotonic
	Sequence int `json:"sequence,omitempty"`
	// Type holds the value of the "type" field.
	Type observation.Type `json:"type,omitempty"`
	// Agent holds the value of the "agent" field.
	Agent *string `json:"agent,omitempty"`
	// Tool holds the value of the "tool" field.
	Tool *string `json:"tool,omitempty"`
	// FullContent holds the value of the "full_content" field.
	FullContent string `json:"full_content,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed *int `json:"tokens_used,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// FileRefs holds the value of the "file_refs" field.
	FileRefs []string `json:"file_refs,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt         time.Time `json:"created_at,omitempty"`
	task_observations *string
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Observation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case observation.FieldTags, observation.FieldFileRefs:
			values[i] = new([]byte)
		case observation.FieldSequence, observation.FieldTokensUsed, observation.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case observation.FieldID, observation.FieldTaskID, observation.FieldType, observation.FieldAgent, observation.FieldTool, observation.FieldFullContent, observation.FieldSummary:
			values[i] = new(sql.NullString)
		case observation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case observation.ForeignKeys[0]: // task_observations
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Observation fields.
func (_m *Observation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case observation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case observation.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case observation.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case observation.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = observation.Type(value.String)
			}
		case observation.FieldAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent", values[i])
			} else if value.Valid {
				_m.Agent = new(string)
				*_m.Agent = value.String
			}
		case observation.FieldTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool", values[i])
			} else if value.Valid {
				_m.Tool = new(string)
				*_m.Tool = value.String
			}
		case observation.FieldFullContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_content", values[i])
			} else if value.Valid {
				_m.FullContent = value.String
			}
		case observation.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case observation.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = new(int)
				*_m.TokensUsed = int(value.Int64)
			}
		case observation.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		case observation.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case observation.FieldFileRefs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field file_refs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FileRefs); err != nil {
					return fmt.Errorf("unmarshal field file_refs: %w", err)
				}
			}
		case observation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case observation.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_observations", values[i])
			} else if value.Valid {
				_m.task_observations = new(string)
				*_m.task_observations = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Observation.
// This includes values selected through modifiers, order, etc.
func (_m *Observation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Observation.
// Note that you need to call Observation.Unwrap() before calling this method if this Observation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Observation) Update() *ObservationUpdateOne {
	return NewObservationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Observation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Observation) Unwrap() *Observation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Observation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Observation) String() string {
	var builder strings.Builder
	builder.WriteString("Observation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	if v := _m.Agent; v != nil {
		builder.WriteString("agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Tool; v != nil {
		builder.WriteString("tool=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("full_content=")
	builder.WriteString(_m.FullContent)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	if v := _m.TokensUsed; v != nil {
		builder.WriteString("tokens_used=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("file_refs=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileRefs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Observations is a parsable slice of Observation.
type Observations []*Observation
