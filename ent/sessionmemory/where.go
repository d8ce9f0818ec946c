// Code generated by ent, DO NOT EDIT.

package sessionmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldTaskID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldStatus, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldErrorCount, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldRetryCount, v))
}

// LastCheckpoint applies equality check predicate on the "last_checkpoint" field. It's identical to LastCheckpointEQ.
func LastCheckpoint(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldLastCheckpoint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldTaskID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldPhase, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldStatus, v))
}

// TaskContextIsNil applies the IsNil predicate on the "task_context" field.
func TaskContextIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldTaskContext))
}

// TaskContextNotNil applies the NotNil predicate on the "task_context" field.
func TaskContextNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldTaskContext))
}

// AgentOutputsIsNil applies the IsNil predicate on the "agent_outputs" field.
func AgentOutputsIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldAgentOutputs))
}

// AgentOutputsNotNil applies the NotNil predicate on the "agent_outputs" field.
func AgentOutputsNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldAgentOutputs))
}

// OrchestrationIsNil applies the IsNil predicate on the "orchestration" field.
func OrchestrationIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldOrchestration))
}

// OrchestrationNotNil applies the NotNil predicate on the "orchestration" field.
func OrchestrationNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldOrchestration))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldErrorCount, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldRetryCount, v))
}

// LastCheckpointEQ applies the EQ predicate on the "last_checkpoint" field.
func LastCheckpointEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldLastCheckpoint, v))
}

// LastCheckpointNEQ applies the NEQ predicate on the "last_checkpoint" field.
func LastCheckpointNEQ(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldLastCheckpoint, v))
}

// LastCheckpointIn applies the In predicate on the "last_checkpoint" field.
func LastCheckpointIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldLastCheckpoint, vs...))
}

// LastCheckpointNotIn applies the NotIn predicate on the "last_checkpoint" field.
func LastCheckpointNotIn(vs ...string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldLastCheckpoint, vs...))
}

// LastCheckpointGT applies the GT predicate on the "last_checkpoint" field.
func LastCheckpointGT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldLastCheckpoint, v))
}

// LastCheckpointGTE applies the GTE predicate on the "last_checkpoint" field.
func LastCheckpointGTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldLastCheckpoint, v))
}

// LastCheckpointLT applies the LT predicate on the "last_checkpoint" field.
func LastCheckpointLT(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldLastCheckpoint, v))
}

// LastCheckpointLTE applies the LTE predicate on the "last_checkpoint" field.
func LastCheckpointLTE(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldLastCheckpoint, v))
}

// LastCheckpointContains applies the Contains predicate on the "last_checkpoint" field.
func LastCheckpointContains(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContains(FieldLastCheckpoint, v))
}

// LastCheckpointHasPrefix applies the HasPrefix predicate on the "last_checkpoint" field.
func LastCheckpointHasPrefix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasPrefix(FieldLastCheckpoint, v))
}

// LastCheckpointHasSuffix applies the HasSuffix predicate on the "last_checkpoint" field.
func LastCheckpointHasSuffix(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldHasSuffix(FieldLastCheckpoint, v))
}

// LastCheckpointIsNil applies the IsNil predicate on the "last_checkpoint" field.
func LastCheckpointIsNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIsNull(FieldLastCheckpoint))
}

// LastCheckpointNotNil applies the NotNil predicate on the "last_checkpoint" field.
func LastCheckpointNotNil() predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotNull(FieldLastCheckpoint))
}

// LastCheckpointEqualFold applies the EqualFold predicate on the "last_checkpoint" field.
func LastCheckpointEqualFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEqualFold(FieldLastCheckpoint, v))
}

// LastCheckpointContainsFold applies the ContainsFold predicate on the "last_checkpoint" field.
func LastCheckpointContainsFold(v string) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldContainsFold(FieldLastCheckpoint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionMemory {
	return predicate.SessionMemory(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionMemory) predicate.SessionMemory {
	return predicate.SessionMemory(sql.NotPredicates(p))
}
