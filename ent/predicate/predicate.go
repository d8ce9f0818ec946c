// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ArchivalMemory is the predicate function for archivalmemory builders.
type ArchivalMemory func(*sql.Selector)

// AttemptRecord is the predicate function for attemptrecord builders.
type AttemptRecord func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// LearnedPattern is the predicate function for learnedpattern builders.
type LearnedPattern func(*sql.Selector)

// ModelConfig is the predicate function for modelconfig builders.
type ModelConfig func(*sql.Selector)

// ModelConfigAudit is the predicate function for modelconfigaudit builders.
type ModelConfigAudit func(*sql.Selector)

// Observation is the predicate function for observation builders.
type Observation func(*sql.Selector)

// Patch is the predicate function for patch builders.
type Patch func(*sql.Selector)

// ProgressEntry is the predicate function for progressentry builders.
type ProgressEntry func(*sql.Selector)

// Repository is the predicate function for repository builders.
type Repository func(*sql.Selector)

// SessionMemory is the predicate function for sessionmemory builders.
type SessionMemory func(*sql.Selector)

// StaticMemory is the predicate function for staticmemory builders.
type StaticMemory func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskEvent is the predicate function for taskevent builders.
type TaskEvent func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
