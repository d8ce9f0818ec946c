// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/ent/checkpoint"
	"github.com/forgeflow/forgeflow/ent/observation"
	"github.com/forgeflow/forgeflow/ent/patch"
	"github.com/forgeflow/forgeflow/ent/progressentry"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/taskevent"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetRepo sets the "repo" field.
func (_c *TaskCreate) SetRepo(v string) *TaskCreate {
	_c.mutation.SetRepo(v)
	return _c
}

// SetIssueNumber sets the "issue_number" field.
func (_c *TaskCreate) SetIssueNumber(v int) *TaskCreate {
	_c.mutation.SetIssueNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *TaskCreate) SetBody(v string) *TaskCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *TaskCreate) SetNillableBody(v *string) *TaskCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *TaskCreate) SetPlan(v []string) *TaskCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (_c *TaskCreate) SetDefinitionOfDone(v []string) *TaskCreate {
	_c.mutation.SetDefinitionOfDone(v)
	return _c
}

// SetTargetFiles sets the "target_files" field.
func (_c *TaskCreate) SetTargetFiles(v []string) *TaskCreate {
	_c.mutation.SetTargetFiles(v)
	return _c
}

// SetCurrentDiff sets the "current_diff" field.
func (_c *TaskCreate) SetCurrentDiff(v string) *TaskCreate {
	_c.mutation.SetCurrentDiff(v)
	return _c
}

// SetNillableCurrentDiff sets the "current_diff" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCurrentDiff(v *string) *TaskCreate {
	if v != nil {
		_c.SetCurrentDiff(*v)
	}
	return _c
}

// SetCommitMessage sets the "commit_message" field.
func (_c *TaskCreate) SetCommitMessage(v string) *TaskCreate {
	_c.mutation.SetCommitMessage(v)
	return _c
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCommitMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetCommitMessage(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *TaskCreate) SetAttemptCount(v int) *TaskCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAttemptCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *TaskCreate) SetMaxAttempts(v int) *TaskCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxAttempts(v *int) *TaskCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *TaskCreate) SetLastError(v string) *TaskCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastError(v *string) *TaskCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *TaskCreate) SetFailureReason(v string) *TaskCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFailureReason(v *string) *TaskCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetParentTaskID sets the "parent_task_id" field.
func (_c *TaskCreate) SetParentTaskID(v string) *TaskCreate {
	_c.mutation.SetParentTaskID(v)
	return _c
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableParentTaskID(v *string) *TaskCreate {
	if v != nil {
		_c.SetParentTaskID(*v)
	}
	return _c
}

// SetSubtaskIndex sets the "subtask_index" field.
func (_c *TaskCreate) SetSubtaskIndex(v int) *TaskCreate {
	_c.mutation.SetSubtaskIndex(v)
	return _c
}

// SetNillableSubtaskIndex sets the "subtask_index" field if the given value is not nil.
func (_c *TaskCreate) SetNillableSubtaskIndex(v *int) *TaskCreate {
	if v != nil {
		_c.SetSubtaskIndex(*v)
	}
	return _c
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (_c *TaskCreate) SetIsOrchestrated(v bool) *TaskCreate {
	_c.mutation.SetIsOrchestrated(v)
	return _c
}

// SetNillableIsOrchestrated sets the "is_orchestrated" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIsOrchestrated(v *bool) *TaskCreate {
	if v != nil {
		_c.SetIsOrchestrated(*v)
	}
	return _c
}

// SetDryRun sets the "dry_run" field.
func (_c *TaskCreate) SetDryRun(v bool) *TaskCreate {
	_c.mutation.SetDryRun(v)
	return _c
}

// SetNillableDryRun sets the "dry_run" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDryRun(v *bool) *TaskCreate {
	if v != nil {
		_c.SetDryRun(*v)
	}
	return _c
}

// SetBranch sets the "branch" field.
func (_c *TaskCreate) SetBranch(v string) *TaskCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *TaskCreate) SetNillableBranch(v *string) *TaskCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *TaskCreate) SetPrURL(v string) *TaskCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePrURL(v *string) *TaskCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetPrNumber sets the "pr_number" field.
func (_c *TaskCreate) SetPrNumber(v int) *TaskCreate {
	_c.mutation.SetPrNumber(v)
	return _c
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePrNumber(v *int) *TaskCreate {
	if v != nil {
		_c.SetPrNumber(*v)
	}
	return _c
}

// SetDeliveryID sets the "delivery_id" field.
func (_c *TaskCreate) SetDeliveryID(v string) *TaskCreate {
	_c.mutation.SetDeliveryID(v)
	return _c
}

// SetNillableDeliveryID sets the "delivery_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDeliveryID(v *string) *TaskCreate {
	if v != nil {
		_c.SetDeliveryID(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *TaskCreate) SetPodID(v string) *TaskCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePodID(v *string) *TaskCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *TaskCreate) SetLastHeartbeatAt(v time.Time) *TaskCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastHeartbeatAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *TaskCreate) SetDeletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDeletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSessionID sets the "session" edge to the SessionMemory entity by ID.
func (_c *TaskCreate) SetSessionID(id string) *TaskCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetNillableSessionID sets the "session" edge to the SessionMemory entity by ID if the given value is not nil.
func (_c *TaskCreate) SetNillableSessionID(id *string) *TaskCreate {
	if id != nil {
		_c = _c.SetSessionID(*id)
	}
	return _c
}

// SetSession sets the "session" edge to the SessionMemory entity.
func (_c *TaskCreate) SetSession(v *SessionMemory) *TaskCreate {
	return _c.SetSessionID(v.ID)
}

// AddProgressEntryIDs adds the "progress_entries" edge to the ProgressEntry entity by IDs.
func (_c *TaskCreate) AddProgressEntryIDs(ids ...string) *TaskCreate {
	_c.mutation.AddProgressEntryIDs(ids...)
	return _c
}

// AddProgressEntries adds the "progress_entries" edges to the ProgressEntry entity.
func (_c *TaskCreate) AddProgressEntries(v ...*ProgressEntry) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProgressEntryIDs(ids...)
}

// AddAttemptRecordIDs adds the "attempt_records" edge to the AttemptRecord entity by IDs.
func (_c *TaskCreate) AddAttemptRecordIDs(ids ...string) *TaskCreate {
	_c.mutation.AddAttemptRecordIDs(ids...)
	return _c
}

// AddAttemptRecords adds the "attempt_records" edges to the AttemptRecord entity.
func (_c *TaskCreate) AddAttemptRecords(v ...*AttemptRecord) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptRecordIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *TaskCreate) AddCheckpointIDs(ids ...string) *TaskCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *TaskCreate) AddCheckpoints(v ...*Checkpoint) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddObservationIDs adds the "observations" edge to the Observation entity by IDs.
func (_c *TaskCreate) AddObservationIDs(ids ...string) *TaskCreate {
	_c.mutation.AddObservationIDs(ids...)
	return _c
}

// AddObservations adds the "observations" edges to the Observation entity.
func (_c *TaskCreate) AddObservations(v ...*Observation) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddObservationIDs(ids...)
}

// AddPatchIDs adds the "patches" edge to the Patch entity by IDs.
func (_c *TaskCreate) AddPatchIDs(ids ...string) *TaskCreate {
	_c.mutation.AddPatchIDs(ids...)
	return _c
}

// AddPatches adds the "patches" edges to the Patch entity.
func (_c *TaskCreate) AddPatches(v ...*Patch) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPatchIDs(ids...)
}

// AddTaskEventIDs adds the "task_events" edge to the TaskEvent entity by IDs.
func (_c *TaskCreate) AddTaskEventIDs(ids ...string) *TaskCreate {
	_c.mutation.AddTaskEventIDs(ids...)
	return _c
}

// AddTaskEvents adds the "task_events" edges to the TaskEvent entity.
func (_c *TaskCreate) AddTaskEvents(v ...*TaskEvent) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := task.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := task.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.IsOrchestrated(); !ok {
		v := task.DefaultIsOrchestrated
		_c.mutation.SetIsOrchestrated(v)
	}
	if _, ok := _c.mutation.DryRun(); !ok {
		v := task.DefaultDryRun
		_c.mutation.SetDryRun(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.Repo(); !ok {
		return &ValidationError{Name: "repo", err: errors.New(`ent: missing required field "Task.repo"`)}
	}
	if _, ok := _c.mutation.IssueNumber(); !ok {
		return &ValidationError{Name: "issue_number", err: errors.New(`ent: missing required field "Task.issue_number"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "Task.attempt_count"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Task.max_attempts"`)}
	}
	if _, ok := _c.mutation.IsOrchestrated(); !ok {
		return &ValidationError{Name: "is_orchestrated", err: errors.New(`ent: missing required field "Task.is_orchestrated"`)}
	}
	if _, ok := _c.mutation.DryRun(); !ok {
		return &ValidationError{Name: "dry_run", err: errors.New(`ent: missing required field "Task.dry_run"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Repo(); ok {
		_spec.SetField(task.FieldRepo, field.TypeString, value)
		_node.Repo = value
	}
	if value, ok := _c.mutation.IssueNumber(); ok {
		_spec.SetField(task.FieldIssueNumber, field.TypeInt, value)
		_node.IssueNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(task.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(task.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.DefinitionOfDone(); ok {
		_spec.SetField(task.FieldDefinitionOfDone, field.TypeJSON, value)
		_node.DefinitionOfDone = value
	}
	if value, ok := _c.mutation.TargetFiles(); ok {
		_spec.SetField(task.FieldTargetFiles, field.TypeJSON, value)
		_node.TargetFiles = value
	}
	if value, ok := _c.mutation.CurrentDiff(); ok {
		_spec.SetField(task.FieldCurrentDiff, field.TypeString, value)
		_node.CurrentDiff = value
	}
	if value, ok := _c.mutation.CommitMessage(); ok {
		_spec.SetField(task.FieldCommitMessage, field.TypeString, value)
		_node.CommitMessage = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(task.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
		_node.ParentTaskID = &value
	}
	if value, ok := _c.mutation.SubtaskIndex(); ok {
		_spec.SetField(task.FieldSubtaskIndex, field.TypeInt, value)
		_node.SubtaskIndex = &value
	}
	if value, ok := _c.mutation.IsOrchestrated(); ok {
		_spec.SetField(task.FieldIsOrchestrated, field.TypeBool, value)
		_node.IsOrchestrated = value
	}
	if value, ok := _c.mutation.DryRun(); ok {
		_spec.SetField(task.FieldDryRun, field.TypeBool, value)
		_node.DryRun = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(task.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(task.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.PrNumber(); ok {
		_spec.SetField(task.FieldPrNumber, field.TypeInt, value)
		_node.PrNumber = &value
	}
	if value, ok := _c.mutation.DeliveryID(); ok {
		_spec.SetField(task.FieldDeliveryID, field.TypeString, value)
		_node.DeliveryID = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.SessionTable,
			Columns: []string{task.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.task_session = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProgressEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ProgressEntriesTable,
			Columns: []string{task.ProgressEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(progressentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttemptRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AttemptRecordsTable,
			Columns: []string{task.AttemptRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attemptrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CheckpointsTable,
			Columns: []string{task.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ObservationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ObservationsTable,
			Columns: []string{task.ObservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(observation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.PatchesTable,
			Columns: []string{task.PatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TaskEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TaskEventsTable,
			Columns: []string{task.TaskEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
