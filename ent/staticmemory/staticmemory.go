// Code generated by ent, DO NOT EDIT.

package staticmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the staticmemory type in the database.
	Label = "static_memory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "static_id"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldRepo holds the string denoting the repo field in the database.
	FieldRepo = "repo"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldAllowedPaths holds the string denoting the allowed_paths field in the database.
	FieldAllowedPaths = "allowed_paths"
	// FieldBlockedPaths holds the string denoting the blocked_paths field in the database.
	FieldBlockedPaths = "blocked_paths"
	// FieldMaxDiffLines holds the string denoting the max_diff_lines field in the database.
	FieldMaxDiffLines = "max_diff_lines"
	// FieldMaxFilesPerTask holds the string denoting the max_files_per_task field in the database.
	FieldMaxFilesPerTask = "max_files_per_task"
	// FieldTechStack holds the string denoting the tech_stack field in the database.
	FieldTechStack = "tech_stack"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the staticmemory in the database.
	Table = "static_memories"
)

// Columns holds all SQL columns for staticmemory fields.
var Columns = []string{
	FieldID,
	FieldOwner,
	FieldRepo,
	FieldVersion,
	FieldAllowedPaths,
	FieldBlockedPaths,
	FieldMaxDiffLines,
	FieldMaxFilesPerTask,
	FieldTechStack,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultMaxDiffLines holds the default value on creation for the "max_diff_lines" field.
	DefaultMaxDiffLines int
	// DefaultMaxFilesPerTask holds the default value on creation for the "max_files_per_task" field.
	DefaultMaxFilesPerTask int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StaticMemory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByRepo orders the results by the repo field.
func ByRepo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepo, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByMaxDiffLines orders the results by the max_diff_lines field.
func ByMaxDiffLines(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDiffLines, opts...).ToFunc()
}

// ByMaxFilesPerTask orders the results by the max_files_per_task field.
func ByMaxFilesPerTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxFilesPerTask, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
