package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// Archival content and summaries are searched with ts_rank when no embedding
// is available, so both columns carry tsvector indexes.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_archival_memories_content_gin
		ON archival_memories USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create archival content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_archival_memories_summary_gin
		ON archival_memories USING gin(to_tsvector('english', COALESCE(summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create archival summary GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_body_gin
		ON tasks USING gin(to_tsvector('english', COALESCE(body, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create task body GIN index: %w", err)
	}

	return nil
}

// CreateTaskConstraints creates PostgreSQL constraints that Ent/Atlas cannot
// express. These must match the constraints in 000001_init.up.sql and exist
// so tests using Ent's schema.Create get the same guarantees as migrated DBs:
//
//   - (repo, issue_number) unique among parent tasks only — sub-tasks share
//     their parent's issue
//   - a task with a parent can never itself be orchestrated (one-level
//     decomposition)
func CreateTaskConstraints(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS task_repo_issue_number_parent
		ON tasks (repo, issue_number)
		WHERE parent_task_id IS NULL AND deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create repo/issue unique index: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'task_no_nested_orchestration'
			) THEN
				ALTER TABLE tasks ADD CONSTRAINT task_no_nested_orchestration
				CHECK (NOT (parent_task_id IS NOT NULL AND is_orchestrated));
			END IF;
		END $$`)
	if err != nil {
		return fmt.Errorf("failed to create nested orchestration check: %w", err)
	}

	return nil
}
