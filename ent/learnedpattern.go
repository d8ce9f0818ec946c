// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/learnedpattern"
)

// LearnedPattern is the model entity for the LearnedPattern schema.
type LearnedPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PatternType holds the value of the "pattern_type" field.
	PatternType learnedpattern.PatternType `json:"pattern_type,omitempty"`
	// Error text / situation that activates the pattern
	TriggerPattern string `json:"trigger_pattern,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Solution holds the value of the "solution" field.
	Solution string `json:"solution,omitempty"`
	// Examples holds the value of the "examples" field.
	Examples []string `json:"examples,omitempty"`
	// Scope: empty means all repos
	Repo *string `json:"repo,omitempty"`
	// Language holds the value of the "language" field.
	Language *string `json:"language,omitempty"`
	// Glob scope, e.g. src/**/*.ts
	FilePattern *string `json:"file_pattern,omitempty"`
	// Origin task; cleared on promotion to global
	TaskID *string `json:"task_id,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// SuccessCount holds the value of the "success_count" field.
	SuccessCount int `json:"success_count,omitempty"`
	// FailureCount holds the value of the "failure_count" field.
	FailureCount int `json:"failure_count,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float32 `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnedPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnedpattern.FieldExamples, learnedpattern.FieldEmbedding:
			values[i] = new([]byte)
		case learnedpattern.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case learnedpattern.FieldSuccessCount, learnedpattern.FieldFailureCount:
			values[i] = new(sql.NullInt64)
		case learnedpattern.FieldID, learnedpattern.FieldPatternType, learnedpattern.FieldTriggerPattern, learnedpattern.FieldDescription, learnedpattern.FieldSolution, learnedpattern.FieldRepo, learnedpattern.FieldLanguage, learnedpattern.FieldFilePattern, learnedpattern.FieldTaskID:
			values[i] = new(sql.NullString)
		case learnedpattern.FieldCreatedAt, learnedpattern.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnedPattern fields.
func (_m *LearnedPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnedpattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learnedpattern.FieldPatternType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_type", values[i])
			} else if value.Valid {
				_m.PatternType = learnedpattern.PatternType(value.String)
			}
		case learnedpattern.FieldTriggerPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_pattern", values[i])
			} else if value.Valid {
				_m.TriggerPattern = value.String
			}
		case learnedpattern.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case learnedpattern.FieldSolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution", values[i])
			} else if value.Valid {
				_m.Solution = value.String
			}
		case learnedpattern.FieldExamples:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field examples", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Examples); err != nil {
					return fmt.Errorf("unmarshal field examples: %w", err)
				}
			}
		case learnedpattern.FieldRepo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo", values[i])
			} else if value.Valid {
				_m.Repo = new(string)
				*_m.Repo = value.String
			}
		case learnedpattern.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = new(string)
				*_m.Language = value.String
			}
		case learnedpattern.FieldFilePattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_pattern", values[i])
			} else if value.Valid {
				_m.FilePattern = new(string)
				*_m.FilePattern = value.String
			}
		case learnedpattern.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(string)
				*_m.TaskID = value.String
			}
		case learnedpattern.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case learnedpattern.FieldSuccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_count", values[i])
			} else if value.Valid {
				_m.SuccessCount = int(value.Int64)
			}
		case learnedpattern.FieldFailureCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failure_count", values[i])
			} else if value.Valid {
				_m.FailureCount = int(value.Int64)
			}
		case learnedpattern.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case learnedpattern.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learnedpattern.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LearnedPattern.
// This includes values selected through modifiers, order, etc.
func (_m *LearnedPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnedPattern.
// Note that you need to call LearnedPattern.Unwrap() before calling this method if this LearnedPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnedPattern) Update() *LearnedPatternUpdateOne {
	return NewLearnedPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnedPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnedPattern) Unwrap() *LearnedPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnedPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnedPattern) String() string {
	var builder strings.Builder
	builder.WriteString("LearnedPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatternType))
	builder.WriteString(", ")
	builder.WriteString("trigger_pattern=")
	builder.WriteString(_m.TriggerPattern)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("solution=")
	builder.WriteString(_m.Solution)
	builder.WriteString(", ")
	builder.WriteString("examples=")
	builder.WriteString(fmt.Sprintf("%v", _m.Examples))
	builder.WriteString(", ")
	if v := _m.Repo; v != nil {
		builder.WriteString("repo=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Language; v != nil {
		builder.WriteString("language=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FilePattern; v != nil {
		builder.WriteString("file_pattern=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("success_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCount))
	builder.WriteString(", ")
	builder.WriteString("failure_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureCount))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnedPatterns is a parsable slice of LearnedPattern.
type LearnedPatterns []*LearnedPattern
