// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/modelconfigaudit"
)

// ModelConfigAudit is the model entity for the ModelConfigAudit schema.
type ModelConfigAudit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose string `json:"purpose,omitempty"`
	// Previous holds the value of the "previous" field.
	Previous map[string]interface{} `json:"previous,omitempty"`
	// Current holds the value of the "current" field.
	Current map[string]interface{} `json:"current,omitempty"`
	// ChangedBy holds the value of the "changed_by" field.
	ChangedBy string `json:"changed_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelConfigAudit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelconfigaudit.FieldPrevious, modelconfigaudit.FieldCurrent:
			values[i] = new([]byte)
		case modelconfigaudit.FieldID, modelconfigaudit.FieldPurpose, modelconfigaudit.FieldChangedBy:
			values[i] = new(sql.NullString)
		case modelconfigaudit.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelConfigAudit fields.
func (_m *ModelConfigAudit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelconfigaudit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case modelconfigaudit.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = value.String
			}
		case modelconfigaudit.FieldPrevious:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field previous", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Previous); err != nil {
					return fmt.Errorf("unmarshal field previous: %w", err)
				}
			}
		case modelconfigaudit.FieldCurrent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field current", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Current); err != nil {
					return fmt.Errorf("unmarshal field current: %w", err)
				}
			}
		case modelconfigaudit.FieldChangedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by", values[i])
			} else if value.Valid {
				_m.ChangedBy = value.String
			}
		case modelconfigaudit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModelConfigAudit.
// This includes values selected through modifiers, order, etc.
func (_m *ModelConfigAudit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelConfigAudit.
// Note that you need to call ModelConfigAudit.Unwrap() before calling this method if this ModelConfigAudit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelConfigAudit) Update() *ModelConfigAuditUpdateOne {
	return NewModelConfigAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelConfigAudit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelConfigAudit) Unwrap() *ModelConfigAudit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelConfigAudit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelConfigAudit) String() string {
	var builder strings.Builder
	builder.WriteString("ModelConfigAudit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("purpose=")
	builder.WriteString(_m.Purpose)
	builder.WriteString(", ")
	builder.WriteString("previous=")
	builder.WriteString(fmt.Sprintf("%v", _m.Previous))
	builder.WriteString(", ")
	builder.WriteString("current=")
	builder.WriteString(fmt.Sprintf("%v", _m.Current))
	builder.WriteString(", ")
	builder.WriteString("changed_by=")
	builder.WriteString(_m.ChangedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelConfigAudits is a parsable slice of ModelConfigAudit.
type ModelConfigAudits []*ModelConfigAudit
