// Code generated by ent, DO NOT EDIT.

package learnedpattern

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnedpattern type in the database.
	Label = "learned_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pattern_id"
	// FieldPatternType holds the string denoting the pattern_type field in the database.
	FieldPatternType = "pattern_type"
	// FieldTriggerPattern holds the string denoting the trigger_pattern field in the database.
	FieldTriggerPattern = "trigger_pattern"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSolution holds the string denoting the solution field in the database.
	FieldSolution = "solution"
	// FieldExamples holds the string denoting the examples field in the database.
	FieldExamples = "examples"
	// FieldRepo holds the string denoting the repo field in the database.
	FieldRepo = "repo"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldFilePattern holds the string denoting the file_pattern field in the database.
	FieldFilePattern = "file_pattern"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSuccessCount holds the string denoting the success_count field in the database.
	FieldSuccessCount = "success_count"
	// FieldFailureCount holds the string denoting the failure_count field in the database.
	FieldFailureCount = "failure_count"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learnedpattern in the database.
	Table = "learned_patterns"
)

// Columns holds all SQL columns for learnedpattern fields.
var Columns = []string{
	FieldID,
	FieldPatternType,
	FieldTriggerPattern,
	FieldDescription,
	FieldSolution,
	FieldExamples,
	FieldRepo,
	FieldLanguage,
	FieldFilePattern,
	FieldTaskID,
	FieldConfidence,
	FieldSuccessCount,
	FieldFailureCount,
	FieldEmbedding,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultSuccessCount holds the default value on creation for the "success_count" field.
	DefaultSuccessCount int
	// DefaultFailureCount holds the default value on creation for the "failure_count" field.
	DefaultFailureCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// PatternType defines the type for the "pattern_type" enum field.
type PatternType string

// PatternType values.
const (
	PatternTypeFix        PatternType = "fix"
	PatternTypeConvention PatternType = "convention"
	PatternTypeError      PatternType = "error"
	PatternTypeStyle      PatternType = "style"
	PatternTypeRefactor   PatternType = "refactor"
)

func (pt PatternType) String() string {
	return string(pt)
}

// PatternTypeValidator is a validator for the "pattern_type" field enum values. It is called by the builders before save.
func PatternTypeValidator(pt PatternType) error {
	switch pt {
	case PatternTypeFix, PatternTypeConvention, PatternTypeError, PatternTypeStyle, PatternTypeRefactor:
		return nil
	default:
		return fmt.Errorf("learnedpattern: invalid enum value for pattern_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the LearnedPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatternType orders the results by the pattern_type field.
func ByPatternType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternType, opts...).ToFunc()
}

// ByTriggerPattern orders the results by the trigger_pattern field.
func ByTriggerPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerPattern, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySolution orders the results by the solution field.
func BySolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolution, opts...).ToFunc()
}

// ByRepo orders the results by the repo field.
func ByRepo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepo, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByFilePattern orders the results by the file_pattern field.
func ByFilePattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePattern, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySuccessCount orders the results by the success_count field.
func BySuccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessCount, opts...).ToFunc()
}

// ByFailureCount orders the results by the failure_count field.
func ByFailureCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
