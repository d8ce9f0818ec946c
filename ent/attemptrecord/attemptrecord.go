// Code generated by ent, DO NOT EDIT.

package attemptrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptrecord type in the database.
	Label = "attempt_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "attempt_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldIteration holds the string denoting the iteration field in the database.
	FieldIteration = "iteration"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the attemptrecord in the database.
	Table = "attempt_records"
)

// Columns holds all SQL columns for attemptrecord fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldIteration,
	FieldAction,
	FieldResult,
	FieldError,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "attempt_records"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"task_attempt_records",
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionPlan Action = "plan"
	ActionCode Action = "code"
	ActionFix  Action = "fix"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionPlan, ActionCode, ActionFix:
		return nil
	default:
		return fmt.Errorf("attemptrecord: invalid enum value for action field: %q", a)
	}
}

// Result defines the type for the "result" enum field.
type Result string

// Result values.
const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
)

func (r Result) String() string {
	return string(r)
}

// ResultValidator is a validator for the "result" field enum values. It is called by the builders before save.
func ResultValidator(r Result) error {
	switch r {
	case ResultSuccess, ResultFailure:
		return nil
	default:
		return fmt.Errorf("attemptrecord: invalid enum value for result field: %q", r)
	}
}

// OrderOption defines the ordering options for the AttemptRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByIteration orders the results by the iteration field.
func ByIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIteration, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
