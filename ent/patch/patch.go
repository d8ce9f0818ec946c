// Code generated by ent, DO NOT EDIT.

package patch

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the patch type in the database.
	Label = "patch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "patch_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldDiff holds the string denoting the diff field in the database.
	FieldDiff = "diff"
	// FieldFilesModified holds the string denoting the files_modified field in the database.
	FieldFilesModified = "files_modified"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the patch in the database.
	Table = "patches"
)

// Columns holds all SQL columns for patch fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldAttempt,
	FieldSource,
	FieldFormat,
	FieldDiff,
	FieldFilesModified,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "patches"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"task_patches",
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

// OrderOption defines the ordering options for the Patch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByDiff orders the results by the diff field.
func ByDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiff, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
