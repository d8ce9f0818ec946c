// Code generated by ent, DO NOT EDIT.

package patch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldTaskID, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldAttempt, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldSource, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldFormat, v))
}

// Diff applies equality check predicate on the "diff" field. It's identical to DiffEQ.
func Diff(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldDiff, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldTaskID, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldAttempt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldSource, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldFormat, v))
}

// DiffEQ applies the EQ predicate on the "diff" field.
func DiffEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldDiff, v))
}

// DiffNEQ applies the NEQ predicate on the "diff" field.
func DiffNEQ(v string) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldDiff, v))
}

// DiffIn applies the In predicate on the "diff" field.
func DiffIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldDiff, vs...))
}

// DiffNotIn applies the NotIn predicate on the "diff" field.
func DiffNotIn(vs ...string) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldDiff, vs...))
}

// DiffGT applies the GT predicate on the "diff" field.
func DiffGT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldDiff, v))
}

// DiffGTE applies the GTE predicate on the "diff" field.
func DiffGTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldDiff, v))
}

// DiffLT applies the LT predicate on the "diff" field.
func DiffLT(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldDiff, v))
}

// DiffLTE applies the LTE predicate on the "diff" field.
func DiffLTE(v string) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldDiff, v))
}

// DiffContains applies the Contains predicate on the "diff" field.
func DiffContains(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContains(FieldDiff, v))
}

// DiffHasPrefix applies the HasPrefix predicate on the "diff" field.
func DiffHasPrefix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasPrefix(FieldDiff, v))
}

// DiffHasSuffix applies the HasSuffix predicate on the "diff" field.
func DiffHasSuffix(v string) predicate.Patch {
	return predicate.Patch(sql.FieldHasSuffix(FieldDiff, v))
}

// DiffEqualFold applies the EqualFold predicate on the "diff" field.
func DiffEqualFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldEqualFold(FieldDiff, v))
}

// DiffContainsFold applies the ContainsFold predicate on the "diff" field.
func DiffContainsFold(v string) predicate.Patch {
	return predicate.Patch(sql.FieldContainsFold(FieldDiff, v))
}

// FilesModifiedIsNil applies the IsNil predicate on the "files_modified" field.
func FilesModifiedIsNil() predicate.Patch {
	return predicate.Patch(sql.FieldIsNull(FieldFilesModified))
}

// FilesModifiedNotNil applies the NotNil predicate on the "files_modified" field.
func FilesModifiedNotNil() predicate.Patch {
	return predicate.Patch(sql.FieldNotNull(FieldFilesModified))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patch {
	return predicate.Patch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patch {
	return predicate.Patch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patch {
	return predicate.Patch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patch {
	return predicate.Patch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patch {
	return predicate.Patch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patch {
	return predicate.Patch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patch {
	return predicate.Patch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patch {
	return predicate.Patch(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patch) predicate.Patch {
	return predicate.Patch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patch) predicate.Patch {
	return predicate.Patch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patch) predicate.Patch {
	return predicate.Patch(sql.NotPredicates(p))
}
