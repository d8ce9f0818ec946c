// Code generated by ent, DO NOT EDIT.

package progressentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldTaskID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldSequence, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldEventType, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldAgent, v))
}

// InputSummary applies equality check predicate on the "input_summary" field. It's identical to InputSummaryEQ.
func InputSummary(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldInputSummary, v))
}

// OutputSummary applies equality check predicate on the "output_summary" field. It's identical to OutputSummaryEQ.
func OutputSummary(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldOutputSummary, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContainsFold(FieldTaskID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLTE(FieldSequence, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContainsFold(FieldEventType, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentIsNil applies the IsNil predicate on the "agent" field.
func AgentIsNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIsNull(FieldAgent))
}

// AgentNotNil applies the NotNil predicate on the "agent" field.
func AgentNotNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotNull(FieldAgent))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContainsFold(FieldAgent, v))
}

// InputSummaryEQ applies the EQ predicate on the "input_summary" field.
func InputSummaryEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldInputSummary, v))
}

// InputSummaryNEQ applies the NEQ predicate on the "input_summary" field.
func InputSummaryNEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNEQ(FieldInputSummary, v))
}

// InputSummaryIn applies the In predicate on the "input_summary" field.
func InputSummaryIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIn(FieldInputSummary, vs...))
}

// InputSummaryNotIn applies the NotIn predicate on the "input_summary" field.
func InputSummaryNotIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotIn(FieldInputSummary, vs...))
}

// InputSummaryGT applies the GT predicate on the "input_summary" field.
func InputSummaryGT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGT(FieldInputSummary, v))
}

// InputSummaryGTE applies the GTE predicate on the "input_summary" field.
func InputSummaryGTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGTE(FieldInputSummary, v))
}

// InputSummaryLT applies the LT predicate on the "input_summary" field.
func InputSummaryLT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLT(FieldInputSummary, v))
}

// InputSummaryLTE applies the LTE predicate on the "input_summary" field.
func InputSummaryLTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLTE(FieldInputSummary, v))
}

// InputSummaryContains applies the Contains predicate on the "input_summary" field.
func InputSummaryContains(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContains(FieldInputSummary, v))
}

// InputSummaryHasPrefix applies the HasPrefix predicate on the "input_summary" field.
func InputSummaryHasPrefix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasPrefix(FieldInputSummary, v))
}

// InputSummaryHasSuffix applies the HasSuffix predicate on the "input_summary" field.
func InputSummaryHasSuffix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasSuffix(FieldInputSummary, v))
}

// InputSummaryIsNil applies the IsNil predicate on the "input_summary" field.
func InputSummaryIsNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIsNull(FieldInputSummary))
}

// InputSummaryNotNil applies the NotNil predicate on the "input_summary" field.
func InputSummaryNotNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotNull(FieldInputSummary))
}

// InputSummaryEqualFold applies the EqualFold predicate on the "input_summary" field.
func InputSummaryEqualFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEqualFold(FieldInputSummary, v))
}

// InputSummaryContainsFold applies the ContainsFold predicate on the "input_summary" field.
func InputSummaryContainsFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContainsFold(FieldInputSummary, v))
}

// OutputSummaryEQ applies the EQ predicate on the "output_summary" field.
func OutputSummaryEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldOutputSummary, v))
}

// OutputSummaryNEQ applies the NEQ predicate on the "output_summary" field.
func OutputSummaryNEQ(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNEQ(FieldOutputSummary, v))
}

// OutputSummaryIn applies the In predicate on the "output_summary" field.
func OutputSummaryIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIn(FieldOutputSummary, vs...))
}

// OutputSummaryNotIn applies the NotIn predicate on the "output_summary" field.
func OutputSummaryNotIn(vs ...string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotIn(FieldOutputSummary, vs...))
}

// OutputSummaryGT applies the GT predicate on the "output_summary" field.
func OutputSummaryGT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGT(FieldOutputSummary, v))
}

// OutputSummaryGTE applies the GTE predicate on the "output_summary" field.
func OutputSummaryGTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGTE(FieldOutputSummary, v))
}

// OutputSummaryLT applies the LT predicate on the "output_summary" field.
func OutputSummaryLT(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLT(FieldOutputSummary, v))
}

// OutputSummaryLTE applies the LTE predicate on the "output_summary" field.
func OutputSummaryLTE(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLTE(FieldOutputSummary, v))
}

// OutputSummaryContains applies the Contains predicate on the "output_summary" field.
func OutputSummaryContains(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContains(FieldOutputSummary, v))
}

// OutputSummaryHasPrefix applies the HasPrefix predicate on the "output_summary" field.
func OutputSummaryHasPrefix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasPrefix(FieldOutputSummary, v))
}

// OutputSummaryHasSuffix applies the HasSuffix predicate on the "output_summary" field.
func OutputSummaryHasSuffix(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldHasSuffix(FieldOutputSummary, v))
}

// OutputSummaryIsNil applies the IsNil predicate on the "output_summary" field.
func OutputSummaryIsNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIsNull(FieldOutputSummary))
}

// OutputSummaryNotNil applies the NotNil predicate on the "output_summary" field.
func OutputSummaryNotNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotNull(FieldOutputSummary))
}

// OutputSummaryEqualFold applies the EqualFold predicate on the "output_summary" field.
func OutputSummaryEqualFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEqualFold(FieldOutputSummary, v))
}

// OutputSummaryContainsFold applies the ContainsFold predicate on the "output_summary" field.
func OutputSummaryContainsFold(v string) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldContainsFold(FieldOutputSummary, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotNull(FieldDurationMs))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressEntry) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressEntry) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressEntry) predicate.ProgressEntry {
	return predicate.ProgressEntry(sql.NotPredicates(p))
}
