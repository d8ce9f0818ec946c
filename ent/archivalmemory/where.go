// Code generated by ent, DO NOT EDIT.

package archivalmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContainsFold(FieldID, id))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldContent, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldSummary, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldSourceID, v))
}

// Repo applies equality check predicate on the "repo" field. It's identical to RepoEQ.
func Repo(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldRepo, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldTaskID, v))
}

// IsGlobal applies equality check predicate on the "is_global" field. It's identical to IsGlobalEQ.
func IsGlobal(v bool) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldIsGlobal, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldTokenCount, v))
}

// ImportanceScore applies equality check predicate on the "importance_score" field. It's identical to ImportanceScoreEQ.
func ImportanceScore(v float64) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldImportanceScore, v))
}

// AccessCount applies equality check predicate on the "access_count" field. It's identical to AccessCountEQ.
func AccessCount(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldAccessCount, v))
}

// LastAccessedAt applies equality check predicate on the "last_accessed_at" field. It's identical to LastAccessedAtEQ.
func LastAccessedAt(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldLastAccessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldExpiresAt, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContainsFold(FieldContent, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContainsFold(FieldSummary, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDIsNil applies the IsNil predicate on the "source_id" field.
func SourceIDIsNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIsNull(FieldSourceID))
}

// SourceIDNotNil applies the NotNil predicate on the "source_id" field.
func SourceIDNotNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotNull(FieldSourceID))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContainsFold(FieldSourceID, v))
}

// RepoEQ applies the EQ predicate on the "repo" field.
func RepoEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldRepo, v))
}

// RepoNEQ applies the NEQ predicate on the "repo" field.
func RepoNEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldRepo, v))
}

// RepoIn applies the In predicate on the "repo" field.
func RepoIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldRepo, vs...))
}

// RepoNotIn applies the NotIn predicate on the "repo" field.
func RepoNotIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldRepo, vs...))
}

// RepoGT applies the GT predicate on the "repo" field.
func RepoGT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldRepo, v))
}

// RepoGTE applies the GTE predicate on the "repo" field.
func RepoGTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldRepo, v))
}

// RepoLT applies the LT predicate on the "repo" field.
func RepoLT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldRepo, v))
}

// RepoLTE applies the LTE predicate on the "repo" field.
func RepoLTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldRepo, v))
}

// RepoContains applies the Contains predicate on the "repo" field.
func RepoContains(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContains(FieldRepo, v))
}

// RepoHasPrefix applies the HasPrefix predicate on the "repo" field.
func RepoHasPrefix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasPrefix(FieldRepo, v))
}

// RepoHasSuffix applies the HasSuffix predicate on the "repo" field.
func RepoHasSuffix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasSuffix(FieldRepo, v))
}

// RepoIsNil applies the IsNil predicate on the "repo" field.
func RepoIsNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIsNull(FieldRepo))
}

// RepoNotNil applies the NotNil predicate on the "repo" field.
func RepoNotNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotNull(FieldRepo))
}

// RepoEqualFold applies the EqualFold predicate on the "repo" field.
func RepoEqualFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEqualFold(FieldRepo, v))
}

// RepoContainsFold applies the ContainsFold predicate on the "repo" field.
func RepoContainsFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContainsFold(FieldRepo, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldContainsFold(FieldTaskID, v))
}

// IsGlobalEQ applies the EQ predicate on the "is_global" field.
func IsGlobalEQ(v bool) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldIsGlobal, v))
}

// IsGlobalNEQ applies the NEQ predicate on the "is_global" field.
func IsGlobalNEQ(v bool) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldIsGlobal, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotNull(FieldMetadata))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldTokenCount, v))
}

// TokenCountIsNil applies the IsNil predicate on the "token_count" field.
func TokenCountIsNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIsNull(FieldTokenCount))
}

// TokenCountNotNil applies the NotNil predicate on the "token_count" field.
func TokenCountNotNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotNull(FieldTokenCount))
}

// ImportanceScoreEQ applies the EQ predicate on the "importance_score" field.
func ImportanceScoreEQ(v float64) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldImportanceScore, v))
}

// ImportanceScoreNEQ applies the NEQ predicate on the "importance_score" field.
func ImportanceScoreNEQ(v float64) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldImportanceScore, v))
}

// ImportanceScoreIn applies the In predicate on the "importance_score" field.
func ImportanceScoreIn(vs ...float64) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldImportanceScore, vs...))
}

// ImportanceScoreNotIn applies the NotIn predicate on the "importance_score" field.
func ImportanceScoreNotIn(vs ...float64) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldImportanceScore, vs...))
}

// ImportanceScoreGT applies the GT predicate on the "importance_score" field.
func ImportanceScoreGT(v float64) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldImportanceScore, v))
}

// ImportanceScoreGTE applies the GTE predicate on the "importance_score" field.
func ImportanceScoreGTE(v float64) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldImportanceScore, v))
}

// ImportanceScoreLT applies the LT predicate on the "importance_score" field.
func ImportanceScoreLT(v float64) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldImportanceScore, v))
}

// ImportanceScoreLTE applies the LTE predicate on the "importance_score" field.
func ImportanceScoreLTE(v float64) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldImportanceScore, v))
}

// AccessCountEQ applies the EQ predicate on the "access_count" field.
func AccessCountEQ(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldAccessCount, v))
}

// AccessCountNEQ applies the NEQ predicate on the "access_count" field.
func AccessCountNEQ(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldAccessCount, v))
}

// AccessCountIn applies the In predicate on the "access_count" field.
func AccessCountIn(vs ...int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldAccessCount, vs...))
}

// AccessCountNotIn applies the NotIn predicate on the "access_count" field.
func AccessCountNotIn(vs ...int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldAccessCount, vs...))
}

// AccessCountGT applies the GT predicate on the "access_count" field.
func AccessCountGT(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldAccessCount, v))
}

// AccessCountGTE applies the GTE predicate on the "access_count" field.
func AccessCountGTE(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldAccessCount, v))
}

// AccessCountLT applies the LT predicate on the "access_count" field.
func AccessCountLT(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldAccessCount, v))
}

// AccessCountLTE applies the LTE predicate on the "access_count" field.
func AccessCountLTE(v int) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldAccessCount, v))
}

// LastAccessedAtEQ applies the EQ predicate on the "last_accessed_at" field.
func LastAccessedAtEQ(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtNEQ applies the NEQ predicate on the "last_accessed_at" field.
func LastAccessedAtNEQ(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldLastAccessedAt, v))
}

// LastAccessedAtIn applies the In predicate on the "last_accessed_at" field.
func LastAccessedAtIn(vs ...time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtNotIn applies the NotIn predicate on the "last_accessed_at" field.
func LastAccessedAtNotIn(vs ...time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldLastAccessedAt, vs...))
}

// LastAccessedAtGT applies the GT predicate on the "last_accessed_at" field.
func LastAccessedAtGT(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldLastAccessedAt, v))
}

// LastAccessedAtGTE applies the GTE predicate on the "last_accessed_at" field.
func LastAccessedAtGTE(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldLastAccessedAt, v))
}

// LastAccessedAtLT applies the LT predicate on the "last_accessed_at" field.
func LastAccessedAtLT(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldLastAccessedAt, v))
}

// LastAccessedAtLTE applies the LTE predicate on the "last_accessed_at" field.
func LastAccessedAtLTE(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldLastAccessedAt, v))
}

// LastAccessedAtIsNil applies the IsNil predicate on the "last_accessed_at" field.
func LastAccessedAtIsNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIsNull(FieldLastAccessedAt))
}

// LastAccessedAtNotNil applies the NotNil predicate on the "last_accessed_at" field.
func LastAccessedAtNotNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotNull(FieldLastAccessedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.FieldNotNull(FieldExpiresAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArchivalMemory) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArchivalMemory) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArchivalMemory) predicate.ArchivalMemory {
	return predicate.ArchivalMemory(sql.NotPredicates(p))
}
