// Code generated by ent, DO NOT EDIT.

package observation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldTaskID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldSequence, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldAgent, v))
}

// Tool applies equality check predicate on the "tool" field. It's identical to ToolEQ.
func Tool(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldTool, v))
}

// FullContent applies equality check predicate on the "full_content" field. It's identical to FullContentEQ.
func FullContent(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldFullContent, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldSummary, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldTokensUsed, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldTaskID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldSequence, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldType, vs...))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentIsNil applies the IsNil predicate on the "agent" field.
func AgentIsNil() predicate.Observation {
	return predicate.Observation(sql.FieldIsNull(FieldAgent))
}

// AgentNotNil applies the NotNil predicate on the "agent" field.
func AgentNotNil() predicate.Observation {
	return predicate.Observation(sql.FieldNotNull(FieldAgent))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldAgent, v))
}

// ToolEQ applies the EQ predicate on the "tool" field.
func ToolEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldTool, v))
}

// ToolNEQ applies the NEQ predicate on the "tool" field.
func ToolNEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldTool, v))
}

// ToolIn applies the In predicate on the "tool" field.
func ToolIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldTool, vs...))
}

// ToolNotIn applies the NotIn predicate on the "tool" field.
func ToolNotIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldTool, vs...))
}

// ToolGT applies the GT predicate on the "tool" field.
func ToolGT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldTool, v))
}

// ToolGTE applies the GTE predicate on the "tool" field.
func ToolGTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldTool, v))
}

// ToolLT applies the LT predicate on the "tool" field.
func ToolLT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldTool, v))
}

// ToolLTE applies the LTE predicate on the "tool" field.
func ToolLTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldTool, v))
}

// ToolContains applies the Contains predicate on the "tool" field.
func ToolContains(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContains(FieldTool, v))
}

// ToolHasPrefix applies the HasPrefix predicate on the "tool" field.
func ToolHasPrefix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasPrefix(FieldTool, v))
}

// ToolHasSuffix applies the HasSuffix predicate on the "tool" field.
func ToolHasSuffix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasSuffix(FieldTool, v))
}

// ToolIsNil applies the IsNil predicate on the "tool" field.
func ToolIsNil() predicate.Observation {
	return predicate.Observation(sql.FieldIsNull(FieldTool))
}

// ToolNotNil applies the NotNil predicate on the "tool" field.
func ToolNotNil() predicate.Observation {
	return predicate.Observation(sql.FieldNotNull(FieldTool))
}

// ToolEqualFold applies the EqualFold predicate on the "tool" field.
func ToolEqualFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldTool, v))
}

// ToolContainsFold applies the ContainsFold predicate on the "tool" field.
func ToolContainsFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldTool, v))
}

// FullContentEQ applies the EQ predicate on the "full_content" field.
func FullContentEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldFullContent, v))
}

// FullContentNEQ applies the NEQ predicate on the "full_content" field.
func FullContentNEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldFullContent, v))
}

// FullContentIn applies the In predicate on the "full_content" field.
func FullContentIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldFullContent, vs...))
}

// FullContentNotIn applies the NotIn predicate on the "full_content" field.
func FullContentNotIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldFullContent, vs...))
}

// FullContentGT applies the GT predicate on the "full_content" field.
func FullContentGT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldFullContent, v))
}

// FullContentGTE applies the GTE predicate on the "full_content" field.
func FullContentGTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldFullContent, v))
}

// FullContentLT applies the LT predicate on the "full_content" field.
func FullContentLT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldFullContent, v))
}

// FullContentLTE applies the LTE predicate on the "full_content" field.
func FullContentLTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldFullContent, v))
}

// FullContentContains applies the Contains predicate on the "full_content" field.
func FullContentContains(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContains(FieldFullContent, v))
}

// FullContentHasPrefix applies the HasPrefix predicate on the "full_content" field.
func FullContentHasPrefix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasPrefix(FieldFullContent, v))
}

// FullContentHasSuffix applies the HasSuffix predicate on the "full_content" field.
func FullContentHasSuffix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasSuffix(FieldFullContent, v))
}

// FullContentEqualFold applies the EqualFold predicate on the "full_content" field.
func FullContentEqualFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldFullContent, v))
}

// FullContentContainsFold applies the ContainsFold predicate on the "full_content" field.
func FullContentContainsFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldFullContent, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Observation {
	return predicate.Observation(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Observation {
	return predicate.Observation(sql.FieldContainsFold(FieldSummary, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldTokensUsed, v))
}

// TokensUsedIsNil applies the IsNil predicate on the "tokens_used" field.
func TokensUsedIsNil() predicate.Observation {
	return predicate.Observation(sql.FieldIsNull(FieldTokensUsed))
}

// TokensUsedNotNil applies the NotNil predicate on the "tokens_used" field.
func TokensUsedNotNil() predicate.Observation {
	return predicate.Observation(sql.FieldNotNull(FieldTokensUsed))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.Observation {
	return predicate.Observation(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.Observation {
	return predicate.Observation(sql.FieldNotNull(FieldDurationMs))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Observation {
	return predicate.Observation(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Observation {
	return predicate.Observation(sql.FieldNotNull(FieldTags))
}

// FileRefsIsNil applies the IsNil predicate on the "file_refs" field.
func FileRefsIsNil() predicate.Observation {
	return predicate.Observation(sql.FieldIsNull(FieldFileRefs))
}

// FileRefsNotNil applies the NotNil predicate on the "file_refs" field.
func FileRefsNotNil() predicate.Observation {
	return predicate.Observation(sql.FieldNotNull(FieldFileRefs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Observation {
	return predicate.Observation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Observation) predicate.Observation {
	return predicate.Observation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Observation) predicate.Observation {
	return predicate.Observation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Observation) predicate.Observation {
	return predicate.Observation(sql.NotPredicates(p))
}
