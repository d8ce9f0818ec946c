// Code generated by ent, DO NOT EDIT.

package observation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the observation type in the database.
	Label = "observation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "observation_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldTool holds the string denoting the tool field in the database.
	FieldTool = "tool"
	// FieldFullContent holds the string denoting the full_content field in the database.
	FieldFullContent = "full_content"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldFileRefs holds the string denoting the file_refs field in the database.
	FieldFileRefs = "file_refs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the observation in the database.
	Table = "observations"
)

// Columns holds all SQL columns for observation fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldSequence,
	FieldType,
	FieldAgent,
	FieldTool,
	FieldFullContent,
	FieldSummary,
	FieldTokensUsed,
	FieldDurationMs,
	FieldTags,
	FieldFileRefs,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "observations"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"task_observations",
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
	// SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	SummaryValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeToolCall Type = "tool_call"
	TypeDecision Type = "decision"
	TypeError    Type = "error"
	TypeFix      Type = "fix"
	TypeLearning Type = "learning"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeToolCall, TypeDecision, TypeError, TypeFix, TypeLearning:
		return nil
	default:
		return fmt.Errorf("observation: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Observation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByTool orders the results by the tool field.
func ByTool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTool, opts...).ToFunc()
}

// ByFullContent orders the results by the full_content field.
func ByFullContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullContent, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
