// Code generated by ent, DO NOT EDIT.

package staticmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldContainsFold(FieldID, id))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldOwner, v))
}

// Repo applies equality check predicate on the "repo" field. It's identical to RepoEQ.
func Repo(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldRepo, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldVersion, v))
}

// MaxDiffLines applies equality check predicate on the "max_diff_lines" field. It's identical to MaxDiffLinesEQ.
func MaxDiffLines(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldMaxDiffLines, v))
}

// MaxFilesPerTask applies equality check predicate on the "max_files_per_task" field. It's identical to MaxFilesPerTaskEQ.
func MaxFilesPerTask(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldMaxFilesPerTask, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldContainsFold(FieldOwner, v))
}

// RepoEQ applies the EQ predicate on the "repo" field.
func RepoEQ(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldRepo, v))
}

// RepoNEQ applies the NEQ predicate on the "repo" field.
func RepoNEQ(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldRepo, v))
}

// RepoIn applies the In predicate on the "repo" field.
func RepoIn(vs ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldRepo, vs...))
}

// RepoNotIn applies the NotIn predicate on the "repo" field.
func RepoNotIn(vs ...string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldRepo, vs...))
}

// RepoGT applies the GT predicate on the "repo" field.
func RepoGT(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldRepo, v))
}

// RepoGTE applies the GTE predicate on the "repo" field.
func RepoGTE(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldRepo, v))
}

// RepoLT applies the LT predicate on the "repo" field.
func RepoLT(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldRepo, v))
}

// RepoLTE applies the LTE predicate on the "repo" field.
func RepoLTE(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldRepo, v))
}

// RepoContains applies the Contains predicate on the "repo" field.
func RepoContains(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldContains(FieldRepo, v))
}

// RepoHasPrefix applies the HasPrefix predicate on the "repo" field.
func RepoHasPrefix(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldHasPrefix(FieldRepo, v))
}

// RepoHasSuffix applies the HasSuffix predicate on the "repo" field.
func RepoHasSuffix(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldHasSuffix(FieldRepo, v))
}

// RepoEqualFold applies the EqualFold predicate on the "repo" field.
func RepoEqualFold(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEqualFold(FieldRepo, v))
}

// RepoContainsFold applies the ContainsFold predicate on the "repo" field.
func RepoContainsFold(v string) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldContainsFold(FieldRepo, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldVersion, v))
}

// AllowedPathsIsNil applies the IsNil predicate on the "allowed_paths" field.
func AllowedPathsIsNil() predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIsNull(FieldAllowedPaths))
}

// AllowedPathsNotNil applies the NotNil predicate on the "allowed_paths" field.
func AllowedPathsNotNil() predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotNull(FieldAllowedPaths))
}

// BlockedPathsIsNil applies the IsNil predicate on the "blocked_paths" field.
func BlockedPathsIsNil() predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIsNull(FieldBlockedPaths))
}

// BlockedPathsNotNil applies the NotNil predicate on the "blocked_paths" field.
func BlockedPathsNotNil() predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotNull(FieldBlockedPaths))
}

// MaxDiffLinesEQ applies the EQ predicate on the "max_diff_lines" field.
func MaxDiffLinesEQ(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldMaxDiffLines, v))
}

// MaxDiffLinesNEQ applies the NEQ predicate on the "max_diff_lines" field.
func MaxDiffLinesNEQ(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldMaxDiffLines, v))
}

// MaxDiffLinesIn applies the In predicate on the "max_diff_lines" field.
func MaxDiffLinesIn(vs ...int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldMaxDiffLines, vs...))
}

// MaxDiffLinesNotIn applies the NotIn predicate on the "max_diff_lines" field.
func MaxDiffLinesNotIn(vs ...int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldMaxDiffLines, vs...))
}

// MaxDiffLinesGT applies the GT predicate on the "max_diff_lines" field.
func MaxDiffLinesGT(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldMaxDiffLines, v))
}

// MaxDiffLinesGTE applies the GTE predicate on the "max_diff_lines" field.
func MaxDiffLinesGTE(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldMaxDiffLines, v))
}

// MaxDiffLinesLT applies the LT predicate on the "max_diff_lines" field.
func MaxDiffLinesLT(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldMaxDiffLines, v))
}

// MaxDiffLinesLTE applies the LTE predicate on the "max_diff_lines" field.
func MaxDiffLinesLTE(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldMaxDiffLines, v))
}

// MaxFilesPerTaskEQ applies the EQ predicate on the "max_files_per_task" field.
func MaxFilesPerTaskEQ(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldMaxFilesPerTask, v))
}

// MaxFilesPerTaskNEQ applies the NEQ predicate on the "max_files_per_task" field.
func MaxFilesPerTaskNEQ(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldMaxFilesPerTask, v))
}

// MaxFilesPerTaskIn applies the In predicate on the "max_files_per_task" field.
func MaxFilesPerTaskIn(vs ...int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldMaxFilesPerTask, vs...))
}

// MaxFilesPerTaskNotIn applies the NotIn predicate on the "max_files_per_task" field.
func MaxFilesPerTaskNotIn(vs ...int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldMaxFilesPerTask, vs...))
}

// MaxFilesPerTaskGT applies the GT predicate on the "max_files_per_task" field.
func MaxFilesPerTaskGT(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldMaxFilesPerTask, v))
}

// MaxFilesPerTaskGTE applies the GTE predicate on the "max_files_per_task" field.
func MaxFilesPerTaskGTE(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldMaxFilesPerTask, v))
}

// MaxFilesPerTaskLT applies the LT predicate on the "max_files_per_task" field.
func MaxFilesPerTaskLT(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldMaxFilesPerTask, v))
}

// MaxFilesPerTaskLTE applies the LTE predicate on the "max_files_per_task" field.
func MaxFilesPerTaskLTE(v int) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldMaxFilesPerTask, v))
}

// TechStackIsNil applies the IsNil predicate on the "tech_stack" field.
func TechStackIsNil() predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIsNull(FieldTechStack))
}

// TechStackNotNil applies the NotNil predicate on the "tech_stack" field.
func TechStackNotNil() predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotNull(FieldTechStack))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StaticMemory {
	return predicate.StaticMemory(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StaticMemory) predicate.StaticMemory {
	return predicate.StaticMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StaticMemory) predicate.StaticMemory {
	return predicate.StaticMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StaticMemory) predicate.StaticMemory {
	return predicate.StaticMemory(sql.NotPredicates(p))
}
