// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/forgeflow/forgeflow/ent/attemptrecord"
	"github.com/forgeflow/forgeflow/ent/checkpoint"
	"github.com/forgeflow/forgeflow/ent/observation"
	"github.com/forgeflow/forgeflow/ent/patch"
	"github.com/forgeflow/forgeflow/ent/predicate"
	"github.com/forgeflow/forgeflow/ent/progressentry"
	"github.com/forgeflow/forgeflow/ent/sessionmemory"
	"github.com/forgeflow/forgeflow/ent/task"
	"github.com/forgeflow/forgeflow/ent/taskevent"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRepo sets the "repo" field.
func (_u *TaskUpdate) SetRepo(v string) *TaskUpdate {
	_u.mutation.SetRepo(v)
	return _u
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRepo(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRepo(*v)
	}
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *TaskUpdate) SetIssueNumber(v int) *TaskUpdate {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIssueNumber(v *int) *TaskUpdate {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *TaskUpdate) AddIssueNumber(v int) *TaskUpdate {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *TaskUpdate) SetBody(v string) *TaskUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBody(v *string) *TaskUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *TaskUpdate) ClearBody() *TaskUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskUpdate) SetPlan(v []string) *TaskUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *TaskUpdate) AppendPlan(v []string) *TaskUpdate {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *TaskUpdate) ClearPlan() *TaskUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (_u *TaskUpdate) SetDefinitionOfDone(v []string) *TaskUpdate {
	_u.mutation.SetDefinitionOfDone(v)
	return _u
}

// AppendDefinitionOfDone appends value to the "definition_of_done" field.
func (_u *TaskUpdate) AppendDefinitionOfDone(v []string) *TaskUpdate {
	_u.mutation.AppendDefinitionOfDone(v)
	return _u
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (_u *TaskUpdate) ClearDefinitionOfDone() *TaskUpdate {
	_u.mutation.ClearDefinitionOfDone()
	return _u
}

// SetTargetFiles sets the "target_files" field.
func (_u *TaskUpdate) SetTargetFiles(v []string) *TaskUpdate {
	_u.mutation.SetTargetFiles(v)
	return _u
}

// AppendTargetFiles appends value to the "target_files" field.
func (_u *TaskUpdate) AppendTargetFiles(v []string) *TaskUpdate {
	_u.mutation.AppendTargetFiles(v)
	return _u
}

// ClearTargetFiles clears the value of the "target_files" field.
func (_u *TaskUpdate) ClearTargetFiles() *TaskUpdate {
	_u.mutation.ClearTargetFiles()
	return _u
}

// SetCurrentDiff sets the "current_diff" field.
func (_u *TaskUpdate) SetCurrentDiff(v string) *TaskUpdate {
	_u.mutation.SetCurrentDiff(v)
	return _u
}

// SetNillableCurrentDiff sets the "current_diff" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurrentDiff(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCurrentDiff(*v)
	}
	return _u
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (_u *TaskUpdate) ClearCurrentDiff() *TaskUpdate {
	_u.mutation.ClearCurrentDiff()
	return _u
}

// SetCommitMessage sets the "commit_message" field.
func (_u *TaskUpdate) SetCommitMessage(v string) *TaskUpdate {
	_u.mutation.SetCommitMessage(v)
	return _u
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCommitMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCommitMessage(*v)
	}
	return _u
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (_u *TaskUpdate) ClearCommitMessage() *TaskUpdate {
	_u.mutation.ClearCommitMessage()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *TaskUpdate) SetAttemptCount(v int) *TaskUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAttemptCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *TaskUpdate) AddAttemptCount(v int) *TaskUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdate) SetMaxAttempts(v int) *TaskUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdate) AddMaxAttempts(v int) *TaskUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdate) SetLastError(v string) *TaskUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastError(v *string) *TaskUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdate) ClearLastError() *TaskUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdate) SetFailureReason(v string) *TaskUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFailureReason(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdate) ClearFailureReason() *TaskUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdate) SetParentTaskID(v string) *TaskUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdate) ClearParentTaskID() *TaskUpdate {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetSubtaskIndex sets the "subtask_index" field.
func (_u *TaskUpdate) SetSubtaskIndex(v int) *TaskUpdate {
	_u.mutation.ResetSubtaskIndex()
	_u.mutation.SetSubtaskIndex(v)
	return _u
}

// SetNillableSubtaskIndex sets the "subtask_index" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSubtaskIndex(v *int) *TaskUpdate {
	if v != nil {
		_u.SetSubtaskIndex(*v)
	}
	return _u
}

// AddSubtaskIndex adds value to the "subtask_index" field.
func (_u *TaskUpdate) AddSubtaskIndex(v int) *TaskUpdate {
	_u.mutation.AddSubtaskIndex(v)
	return _u
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (_u *TaskUpdate) ClearSubtaskIndex() *TaskUpdate {
	_u.mutation.ClearSubtaskIndex()
	return _u
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (_u *TaskUpdate) SetIsOrchestrated(v bool) *TaskUpdate {
	_u.mutation.SetIsOrchestrated(v)
	return _u
}

// SetNillableIsOrchestrated sets the "is_orchestrated" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIsOrchestrated(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetIsOrchestrated(*v)
	}
	return _u
}

// SetDryRun sets the "dry_run" field.
func (_u *TaskUpdate) SetDryRun(v bool) *TaskUpdate {
	_u.mutation.SetDryRun(v)
	return _u
}

// SetNillableDryRun sets the "dry_run" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDryRun(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetDryRun(*v)
	}
	return _u
}

// SetBranch sets the "branch" field.
func (_u *TaskUpdate) SetBranch(v string) *TaskUpdate {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBranch(v *string) *TaskUpdate {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *TaskUpdate) ClearBranch() *TaskUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TaskUpdate) SetPrURL(v string) *TaskUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrURL(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TaskUpdate) ClearPrURL() *TaskUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *TaskUpdate) SetPrNumber(v int) *TaskUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrNumber(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *TaskUpdate) AddPrNumber(v int) *TaskUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *TaskUpdate) ClearPrNumber() *TaskUpdate {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetDeliveryID sets the "delivery_id" field.
func (_u *TaskUpdate) SetDeliveryID(v string) *TaskUpdate {
	_u.mutation.SetDeliveryID(v)
	return _u
}

// SetNillableDeliveryID sets the "delivery_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeliveryID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDeliveryID(*v)
	}
	return _u
}

// ClearDeliveryID clears the value of the "delivery_id" field.
func (_u *TaskUpdate) ClearDeliveryID() *TaskUpdate {
	_u.mutation.ClearDeliveryID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdate) SetPodID(v string) *TaskUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePodID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdate) ClearPodID() *TaskUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdate) SetLastHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdate) ClearLastHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskUpdate) SetDeletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskUpdate) ClearDeletedAt() *TaskUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetSessionID sets the "session" edge to the SessionMemory entity by ID.
func (_u *TaskUpdate) SetSessionID(id string) *TaskUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the SessionMemory entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableSessionID(id *string) *TaskUpdate {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the SessionMemory entity.
func (_u *TaskUpdate) SetSession(v *SessionMemory) *TaskUpdate {
	return _u.SetSessionID(v.ID)
}

// AddProgressEntryIDs adds the "progress_entries" edge to the ProgressEntry entity by IDs.
func (_u *TaskUpdate) AddProgressEntryIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddProgressEntryIDs(ids...)
	return _u
}

// AddProgressEntries adds the "progress_entries" edges to the ProgressEntry entity.
func (_u *TaskUpdate) AddProgressEntries(v ...*ProgressEntry) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgressEntryIDs(ids...)
}

// AddAttemptRecordIDs adds the "attempt_records" edge to the AttemptRecord entity by IDs.
func (_u *TaskUpdate) AddAttemptRecordIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddAttemptRecordIDs(ids...)
	return _u
}

// AddAttemptRecords adds the "attempt_records" edges to the AttemptRecord entity.
func (_u *TaskUpdate) AddAttemptRecords(v ...*AttemptRecord) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptRecordIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *TaskUpdate) AddCheckpointIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdate) AddCheckpoints(v ...*Checkpoint) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddObservationIDs adds the "observations" edge to the Observation entity by IDs.
func (_u *TaskUpdate) AddObservationIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddObservationIDs(ids...)
	return _u
}

// AddObservations adds the "observations" edges to the Observation entity.
func (_u *TaskUpdate) AddObservations(v ...*Observation) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddObservationIDs(ids...)
}

// AddPatchIDs adds the "patches" edge to the Patch entity by IDs.
func (_u *TaskUpdate) AddPatchIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddPatchIDs(ids...)
	return _u
}

// AddPatches adds the "patches" edges to the Patch entity.
func (_u *TaskUpdate) AddPatches(v ...*Patch) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPatchIDs(ids...)
}

// AddTaskEventIDs adds the "task_events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdate) AddTaskEventIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddTaskEventIDs(ids...)
	return _u
}

// AddTaskEvents adds the "task_events" edges to the TaskEvent entity.
func (_u *TaskUpdate) AddTaskEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the SessionMemory entity.
func (_u *TaskUpdate) ClearSession() *TaskUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearProgressEntries clears all "progress_entries" edges to the ProgressEntry entity.
func (_u *TaskUpdate) ClearProgressEntries() *TaskUpdate {
	_u.mutation.ClearProgressEntries()
	return _u
}

// RemoveProgressEntryIDs removes the "progress_entries" edge to ProgressEntry entities by IDs.
func (_u *TaskUpdate) RemoveProgressEntryIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveProgressEntryIDs(ids...)
	return _u
}

// RemoveProgressEntries removes "progress_entries" edges to ProgressEntry entities.
func (_u *TaskUpdate) RemoveProgressEntries(v ...*ProgressEntry) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgressEntryIDs(ids...)
}

// ClearAttemptRecords clears all "attempt_records" edges to the AttemptRecord entity.
func (_u *TaskUpdate) ClearAttemptRecords() *TaskUpdate {
	_u.mutation.ClearAttemptRecords()
	return _u
}

// RemoveAttemptRecordIDs removes the "attempt_records" edge to AttemptRecord entities by IDs.
func (_u *TaskUpdate) RemoveAttemptRecordIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveAttemptRecordIDs(ids...)
	return _u
}

// RemoveAttemptRecords removes "attempt_records" edges to AttemptRecord entities.
func (_u *TaskUpdate) RemoveAttemptRecords(v ...*AttemptRecord) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptRecordIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdate) ClearCheckpoints() *TaskUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *TaskUpdate) RemoveCheckpointIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *TaskUpdate) RemoveCheckpoints(v ...*Checkpoint) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearObservations clears all "observations" edges to the Observation entity.
func (_u *TaskUpdate) ClearObservations() *TaskUpdate {
	_u.mutation.ClearObservations()
	return _u
}

// RemoveObservationIDs removes the "observations" edge to Observation entities by IDs.
func (_u *TaskUpdate) RemoveObservationIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveObservationIDs(ids...)
	return _u
}

// RemoveObservations removes "observations" edges to Observation entities.
func (_u *TaskUpdate) RemoveObservations(v ...*Observation) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveObservationIDs(ids...)
}

// ClearPatches clears all "patches" edges to the Patch entity.
func (_u *TaskUpdate) ClearPatches() *TaskUpdate {
	_u.mutation.ClearPatches()
	return _u
}

// RemovePatchIDs removes the "patches" edge to Patch entities by IDs.
func (_u *TaskUpdate) RemovePatchIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemovePatchIDs(ids...)
	return _u
}

// RemovePatches removes "patches" edges to Patch entities.
func (_u *TaskUpdate) RemovePatches(v ...*Patch) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePatchIDs(ids...)
}

// ClearTaskEvents clears all "task_events" edges to the TaskEvent entity.
func (_u *TaskUpdate) ClearTaskEvents() *TaskUpdate {
	_u.mutation.ClearTaskEvents()
	return _u
}

// RemoveTaskEventIDs removes the "task_events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdate) RemoveTaskEventIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveTaskEventIDs(ids...)
	return _u
}

// RemoveTaskEvents removes "task_events" edges to TaskEvent entities.
func (_u *TaskUpdate) RemoveTaskEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Repo(); ok {
		_spec.SetField(task.FieldRepo, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(task.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(task.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(task.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(task.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(task.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(task.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefinitionOfDone(); ok {
		_spec.SetField(task.FieldDefinitionOfDone, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefinitionOfDone(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDefinitionOfDone, value)
		})
	}
	if _u.mutation.DefinitionOfDoneCleared() {
		_spec.ClearField(task.FieldDefinitionOfDone, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetFiles(); ok {
		_spec.SetField(task.FieldTargetFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTargetFiles, value)
		})
	}
	if _u.mutation.TargetFilesCleared() {
		_spec.ClearField(task.FieldTargetFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentDiff(); ok {
		_spec.SetField(task.FieldCurrentDiff, field.TypeString, value)
	}
	if _u.mutation.CurrentDiffCleared() {
		_spec.ClearField(task.FieldCurrentDiff, field.TypeString)
	}
	if value, ok := _u.mutation.CommitMessage(); ok {
		_spec.SetField(task.FieldCommitMessage, field.TypeString, value)
	}
	if _u.mutation.CommitMessageCleared() {
		_spec.ClearField(task.FieldCommitMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.SubtaskIndex(); ok {
		_spec.SetField(task.FieldSubtaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtaskIndex(); ok {
		_spec.AddField(task.FieldSubtaskIndex, field.TypeInt, value)
	}
	if _u.mutation.SubtaskIndexCleared() {
		_spec.ClearField(task.FieldSubtaskIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.IsOrchestrated(); ok {
		_spec.SetField(task.FieldIsOrchestrated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DryRun(); ok {
		_spec.SetField(task.FieldDryRun, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(task.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(task.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(task.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(task.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(task.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(task.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(task.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.DeliveryID(); ok {
		_spec.SetField(task.FieldDeliveryID, field.TypeString, value)
	}
	if _u.mutation.DeliveryIDCleared() {
		_spec.ClearField(task.FieldDeliveryID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(task.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgressEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressEntriesIDs(); len(nodes) > 0 && !_u.mutation.ProgressEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptRecordsIDs(); len(nodes) > 0 && !_u.mutation.AttemptRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ObservationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedObservationsIDs(); len(nodes) > 0 && !_u.mutation.ObservationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ObservationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPatchesIDs(); len(nodes) > 0 && !_u.mutation.PatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaskEventsIDs(); len(nodes) > 0 && !_u.mutation.TaskEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetRepo sets the "repo" field.
func (_u *TaskUpdateOne) SetRepo(v string) *TaskUpdateOne {
	_u.mutation.SetRepo(v)
	return _u
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRepo(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRepo(*v)
	}
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *TaskUpdateOne) SetIssueNumber(v int) *TaskUpdateOne {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIssueNumber(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *TaskUpdateOne) AddIssueNumber(v int) *TaskUpdateOne {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *TaskUpdateOne) SetBody(v string) *TaskUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBody(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *TaskUpdateOne) ClearBody() *TaskUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskUpdateOne) SetPlan(v []string) *TaskUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *TaskUpdateOne) AppendPlan(v []string) *TaskUpdateOne {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *TaskUpdateOne) ClearPlan() *TaskUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (_u *TaskUpdateOne) SetDefinitionOfDone(v []string) *TaskUpdateOne {
	_u.mutation.SetDefinitionOfDone(v)
	return _u
}

// AppendDefinitionOfDone appends value to the "definition_of_done" field.
func (_u *TaskUpdateOne) AppendDefinitionOfDone(v []string) *TaskUpdateOne {
	_u.mutation.AppendDefinitionOfDone(v)
	return _u
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (_u *TaskUpdateOne) ClearDefinitionOfDone() *TaskUpdateOne {
	_u.mutation.ClearDefinitionOfDone()
	return _u
}

// SetTargetFiles sets the "target_files" field.
func (_u *TaskUpdateOne) SetTargetFiles(v []string) *TaskUpdateOne {
	_u.mutation.SetTargetFiles(v)
	return _u
}

// AppendTargetFiles appends value to the "target_files" field.
func (_u *TaskUpdateOne) AppendTargetFiles(v []string) *TaskUpdateOne {
	_u.mutation.AppendTargetFiles(v)
	return _u
}

// ClearTargetFiles clears the value of the "target_files" field.
func (_u *TaskUpdateOne) ClearTargetFiles() *TaskUpdateOne {
	_u.mutation.ClearTargetFiles()
	return _u
}

// SetCurrentDiff sets the "current_diff" field.
func (_u *TaskUpdateOne) SetCurrentDiff(v string) *TaskUpdateOne {
	_u.mutation.SetCurrentDiff(v)
	return _u
}

// SetNillableCurrentDiff sets the "current_diff" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurrentDiff(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCurrentDiff(*v)
	}
	return _u
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (_u *TaskUpdateOne) ClearCurrentDiff() *TaskUpdateOne {
	_u.mutation.ClearCurrentDiff()
	return _u
}

// SetCommitMessage sets the "commit_message" field.
func (_u *TaskUpdateOne) SetCommitMessage(v string) *TaskUpdateOne {
	_u.mutation.SetCommitMessage(v)
	return _u
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCommitMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCommitMessage(*v)
	}
	return _u
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (_u *TaskUpdateOne) ClearCommitMessage() *TaskUpdateOne {
	_u.mutation.ClearCommitMessage()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *TaskUpdateOne) SetAttemptCount(v int) *TaskUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAttemptCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *TaskUpdateOne) AddAttemptCount(v int) *TaskUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdateOne) SetMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdateOne) AddMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdateOne) SetLastError(v string) *TaskUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastError(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdateOne) ClearLastError() *TaskUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *TaskUpdateOne) SetFailureReason(v string) *TaskUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFailureReason(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *TaskUpdateOne) ClearFailureReason() *TaskUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdateOne) SetParentTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdateOne) ClearParentTaskID() *TaskUpdateOne {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetSubtaskIndex sets the "subtask_index" field.
func (_u *TaskUpdateOne) SetSubtaskIndex(v int) *TaskUpdateOne {
	_u.mutation.ResetSubtaskIndex()
	_u.mutation.SetSubtaskIndex(v)
	return _u
}

// SetNillableSubtaskIndex sets the "subtask_index" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSubtaskIndex(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetSubtaskIndex(*v)
	}
	return _u
}

// AddSubtaskIndex adds value to the "subtask_index" field.
func (_u *TaskUpdateOne) AddSubtaskIndex(v int) *TaskUpdateOne {
	_u.mutation.AddSubtaskIndex(v)
	return _u
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (_u *TaskUpdateOne) ClearSubtaskIndex() *TaskUpdateOne {
	_u.mutation.ClearSubtaskIndex()
	return _u
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (_u *TaskUpdateOne) SetIsOrchestrated(v bool) *TaskUpdateOne {
	_u.mutation.SetIsOrchestrated(v)
	return _u
}

// SetNillableIsOrchestrated sets the "is_orchestrated" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIsOrchestrated(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetIsOrchestrated(*v)
	}
	return _u
}

// SetDryRun sets the "dry_run" field.
func (_u *TaskUpdateOne) SetDryRun(v bool) *TaskUpdateOne {
	_u.mutation.SetDryRun(v)
	return _u
}

// SetNillableDryRun sets the "dry_run" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDryRun(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetDryRun(*v)
	}
	return _u
}

// SetBranch sets the "branch" field.
func (_u *TaskUpdateOne) SetBranch(v string) *TaskUpdateOne {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBranch(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *TaskUpdateOne) ClearBranch() *TaskUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TaskUpdateOne) SetPrURL(v string) *TaskUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrURL(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TaskUpdateOne) ClearPrURL() *TaskUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *TaskUpdateOne) SetPrNumber(v int) *TaskUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrNumber(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *TaskUpdateOne) AddPrNumber(v int) *TaskUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *TaskUpdateOne) ClearPrNumber() *TaskUpdateOne {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetDeliveryID sets the "delivery_id" field.
func (_u *TaskUpdateOne) SetDeliveryID(v string) *TaskUpdateOne {
	_u.mutation.SetDeliveryID(v)
	return _u
}

// SetNillableDeliveryID sets the "delivery_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeliveryID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDeliveryID(*v)
	}
	return _u
}

// ClearDeliveryID clears the value of the "delivery_id" field.
func (_u *TaskUpdateOne) ClearDeliveryID() *TaskUpdateOne {
	_u.mutation.ClearDeliveryID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdateOne) SetPodID(v string) *TaskUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePodID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdateOne) ClearPodID() *TaskUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) SetLastHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) ClearLastHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskUpdateOne) SetDeletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskUpdateOne) ClearDeletedAt() *TaskUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetSessionID sets the "session" edge to the SessionMemory entity by ID.
func (_u *TaskUpdateOne) SetSessionID(id string) *TaskUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the SessionMemory entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSessionID(id *string) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the SessionMemory entity.
func (_u *TaskUpdateOne) SetSession(v *SessionMemory) *TaskUpdateOne {
	return _u.SetSessionID(v.ID)
}

// AddProgressEntryIDs adds the "progress_entries" edge to the ProgressEntry entity by IDs.
func (_u *TaskUpdateOne) AddProgressEntryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddProgressEntryIDs(ids...)
	return _u
}

// AddProgressEntries adds the "progress_entries" edges to the ProgressEntry entity.
func (_u *TaskUpdateOne) AddProgressEntries(v ...*ProgressEntry) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgressEntryIDs(ids...)
}

// AddAttemptRecordIDs adds the "attempt_records" edge to the AttemptRecord entity by IDs.
func (_u *TaskUpdateOne) AddAttemptRecordIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddAttemptRecordIDs(ids...)
	return _u
}

// AddAttemptRecords adds the "attempt_records" edges to the AttemptRecord entity.
func (_u *TaskUpdateOne) AddAttemptRecords(v ...*AttemptRecord) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptRecordIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *TaskUpdateOne) AddCheckpointIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdateOne) AddCheckpoints(v ...*Checkpoint) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddObservationIDs adds the "observations" edge to the Observation entity by IDs.
func (_u *TaskUpdateOne) AddObservationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddObservationIDs(ids...)
	return _u
}

// AddObservations adds the "observations" edges to the Observation entity.
func (_u *TaskUpdateOne) AddObservations(v ...*Observation) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddObservationIDs(ids...)
}

// AddPatchIDs adds the "patches" edge to the Patch entity by IDs.
func (_u *TaskUpdateOne) AddPatchIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddPatchIDs(ids...)
	return _u
}

// AddPatches adds the "patches" edges to the Patch entity.
func (_u *TaskUpdateOne) AddPatches(v ...*Patch) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPatchIDs(ids...)
}

// AddTaskEventIDs adds the "task_events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdateOne) AddTaskEventIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddTaskEventIDs(ids...)
	return _u
}

// AddTaskEvents adds the "task_events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) AddTaskEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the SessionMemory entity.
func (_u *TaskUpdateOne) ClearSession() *TaskUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearProgressEntries clears all "progress_entries" edges to the ProgressEntry entity.
func (_u *TaskUpdateOne) ClearProgressEntries() *TaskUpdateOne {
	_u.mutation.ClearProgressEntries()
	return _u
}

// RemoveProgressEntryIDs removes the "progress_entries" edge to ProgressEntry entities by IDs.
func (_u *TaskUpdateOne) RemoveProgressEntryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveProgressEntryIDs(ids...)
	return _u
}

// RemoveProgressEntries removes "progress_entries" edges to ProgressEntry entities.
func (_u *TaskUpdateOne) RemoveProgressEntries(v ...*ProgressEntry) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgressEntryIDs(ids...)
}

// ClearAttemptRecords clears all "attempt_records" edges to the AttemptRecord entity.
func (_u *TaskUpdateOne) ClearAttemptRecords() *TaskUpdateOne {
	_u.mutation.ClearAttemptRecords()
	return _u
}

// RemoveAttemptRecordIDs removes the "attempt_records" edge to AttemptRecord entities by IDs.
func (_u *TaskUpdateOne) RemoveAttemptRecordIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveAttemptRecordIDs(ids...)
	return _u
}

// RemoveAttemptRecords removes "attempt_records" edges to AttemptRecord entities.
func (_u *TaskUpdateOne) RemoveAttemptRecords(v ...*AttemptRecord) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptRecordIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *TaskUpdateOne) ClearCheckpoints() *TaskUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *TaskUpdateOne) RemoveCheckpointIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *TaskUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearObservations clears all "observations" edges to the Observation entity.
func (_u *TaskUpdateOne) ClearObservations() *TaskUpdateOne {
	_u.mutation.ClearObservations()
	return _u
}

// RemoveObservationIDs removes the "observations" edge to Observation entities by IDs.
func (_u *TaskUpdateOne) RemoveObservationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveObservationIDs(ids...)
	return _u
}

// RemoveObservations removes "observations" edges to Observation entities.
func (_u *TaskUpdateOne) RemoveObservations(v ...*Observation) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveObservationIDs(ids...)
}

// ClearPatches clears all "patches" edges to the Patch entity.
func (_u *TaskUpdateOne) ClearPatches() *TaskUpdateOne {
	_u.mutation.ClearPatches()
	return _u
}

// RemovePatchIDs removes the "patches" edge to Patch entities by IDs.
func (_u *TaskUpdateOne) RemovePatchIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemovePatchIDs(ids...)
	return _u
}

// RemovePatches removes "patches" edges to Patch entities.
func (_u *TaskUpdateOne) RemovePatches(v ...*Patch) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePatchIDs(ids...)
}

// ClearTaskEvents clears all "task_events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) ClearTaskEvents() *TaskUpdateOne {
	_u.mutation.ClearTaskEvents()
	return _u
}

// RemoveTaskEventIDs removes the "task_events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdateOne) RemoveTaskEventIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveTaskEventIDs(ids...)
	return _u
}

// RemoveTaskEvents removes "task_events" edges to TaskEvent entities.
func (_u *TaskUpdateOne) RemoveTaskEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskEventIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Repo(); ok {
		_spec.SetField(task.FieldRepo, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(task.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(task.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(task.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(task.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(task.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(task.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefinitionOfDone(); ok {
		_spec.SetField(task.FieldDefinitionOfDone, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefinitionOfDone(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDefinitionOfDone, value)
		})
	}
	if _u.mutation.DefinitionOfDoneCleared() {
		_spec.ClearField(task.FieldDefinitionOfDone, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetFiles(); ok {
		_spec.SetField(task.FieldTargetFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTargetFiles, value)
		})
	}
	if _u.mutation.TargetFilesCleared() {
		_spec.ClearField(task.FieldTargetFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentDiff(); ok {
		_spec.SetField(task.FieldCurrentDiff, field.TypeString, value)
	}
	if _u.mutation.CurrentDiffCleared() {
		_spec.ClearField(task.FieldCurrentDiff, field.TypeString)
	}
	if value, ok := _u.mutation.CommitMessage(); ok {
		_spec.SetField(task.FieldCommitMessage, field.TypeString, value)
	}
	if _u.mutation.CommitMessageCleared() {
		_spec.ClearField(task.FieldCommitMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.SubtaskIndex(); ok {
		_spec.SetField(task.FieldSubtaskIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtaskIndex(); ok {
		_spec.AddField(task.FieldSubtaskIndex, field.TypeInt, value)
	}
	if _u.mutation.SubtaskIndexCleared() {
		_spec.ClearField(task.FieldSubtaskIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.IsOrchestrated(); ok {
		_spec.SetField(task.FieldIsOrchestrated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DryRun(); ok {
		_spec.SetField(task.FieldDryRun, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(task.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(task.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(task.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(task.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(task.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(task.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(task.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.DeliveryID(); ok {
		_spec.SetField(task.FieldDeliveryID, field.TypeString, value)
	}
	if _u.mutation.DeliveryIDCleared() {
		_spec.ClearField(task.FieldDeliveryID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(task.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgressEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressEntriesIDs(); len(nodes) > 0 && !_u.mutation.ProgressEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptRecordsIDs(); len(nodes) > 0 && !_u.mutation.AttemptRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ObservationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedObservationsIDs(); len(nodes) > 0 && !_u.mutation.ObservationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ObservationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPatchesIDs(); len(nodes) > 0 && !_u.mutation.PatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTaskEventsIDs(); len(nodes) > 0 && !_u.mutation.TaskEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
