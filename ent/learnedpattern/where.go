// Code generated by ent, DO NOT EDIT.

package learnedpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldID, id))
}

// TriggerPattern applies equality check predicate on the "trigger_pattern" field. It's identical to TriggerPatternEQ.
func TriggerPattern(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldTriggerPattern, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldDescription, v))
}

// Solution applies equality check predicate on the "solution" field. It's identical to SolutionEQ.
func Solution(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldSolution, v))
}

// Repo applies equality check predicate on the "repo" field. It's identical to RepoEQ.
func Repo(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldRepo, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldLanguage, v))
}

// FilePattern applies equality check predicate on the "file_pattern" field. It's identical to FilePatternEQ.
func FilePattern(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldFilePattern, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldTaskID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldConfidence, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldSuccessCount, v))
}

// FailureCount applies equality check predicate on the "failure_count" field. It's identical to FailureCountEQ.
func FailureCount(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldFailureCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatternTypeEQ applies the EQ predicate on the "pattern_type" field.
func PatternTypeEQ(v PatternType) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldPatternType, v))
}

// PatternTypeNEQ applies the NEQ predicate on the "pattern_type" field.
func PatternTypeNEQ(v PatternType) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldPatternType, v))
}

// PatternTypeIn applies the In predicate on the "pattern_type" field.
func PatternTypeIn(vs ...PatternType) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldPatternType, vs...))
}

// PatternTypeNotIn applies the NotIn predicate on the "pattern_type" field.
func PatternTypeNotIn(vs ...PatternType) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldPatternType, vs...))
}

// TriggerPatternEQ applies the EQ predicate on the "trigger_pattern" field.
func TriggerPatternEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldTriggerPattern, v))
}

// TriggerPatternNEQ applies the NEQ predicate on the "trigger_pattern" field.
func TriggerPatternNEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldTriggerPattern, v))
}

// TriggerPatternIn applies the In predicate on the "trigger_pattern" field.
func TriggerPatternIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldTriggerPattern, vs...))
}

// TriggerPatternNotIn applies the NotIn predicate on the "trigger_pattern" field.
func TriggerPatternNotIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldTriggerPattern, vs...))
}

// TriggerPatternGT applies the GT predicate on the "trigger_pattern" field.
func TriggerPatternGT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldTriggerPattern, v))
}

// TriggerPatternGTE applies the GTE predicate on the "trigger_pattern" field.
func TriggerPatternGTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldTriggerPattern, v))
}

// TriggerPatternLT applies the LT predicate on the "trigger_pattern" field.
func TriggerPatternLT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldTriggerPattern, v))
}

// TriggerPatternLTE applies the LTE predicate on the "trigger_pattern" field.
func TriggerPatternLTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldTriggerPattern, v))
}

// TriggerPatternContains applies the Contains predicate on the "trigger_pattern" field.
func TriggerPatternContains(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContains(FieldTriggerPattern, v))
}

// TriggerPatternHasPrefix applies the HasPrefix predicate on the "trigger_pattern" field.
func TriggerPatternHasPrefix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasPrefix(FieldTriggerPattern, v))
}

// TriggerPatternHasSuffix applies the HasSuffix predicate on the "trigger_pattern" field.
func TriggerPatternHasSuffix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasSuffix(FieldTriggerPattern, v))
}

// TriggerPatternIsNil applies the IsNil predicate on the "trigger_pattern" field.
func TriggerPatternIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldTriggerPattern))
}

// TriggerPatternNotNil applies the NotNil predicate on the "trigger_pattern" field.
func TriggerPatternNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldTriggerPattern))
}

// TriggerPatternEqualFold applies the EqualFold predicate on the "trigger_pattern" field.
func TriggerPatternEqualFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldTriggerPattern, v))
}

// TriggerPatternContainsFold applies the ContainsFold predicate on the "trigger_pattern" field.
func TriggerPatternContainsFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldTriggerPattern, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldDescription, v))
}

// SolutionEQ applies the EQ predicate on the "solution" field.
func SolutionEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldSolution, v))
}

// SolutionNEQ applies the NEQ predicate on the "solution" field.
func SolutionNEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldSolution, v))
}

// SolutionIn applies the In predicate on the "solution" field.
func SolutionIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldSolution, vs...))
}

// SolutionNotIn applies the NotIn predicate on the "solution" field.
func SolutionNotIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldSolution, vs...))
}

// SolutionGT applies the GT predicate on the "solution" field.
func SolutionGT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldSolution, v))
}

// SolutionGTE applies the GTE predicate on the "solution" field.
func SolutionGTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldSolution, v))
}

// SolutionLT applies the LT predicate on the "solution" field.
func SolutionLT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldSolution, v))
}

// SolutionLTE applies the LTE predicate on the "solution" field.
func SolutionLTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldSolution, v))
}

// SolutionContains applies the Contains predicate on the "solution" field.
func SolutionContains(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContains(FieldSolution, v))
}

// SolutionHasPrefix applies the HasPrefix predicate on the "solution" field.
func SolutionHasPrefix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasPrefix(FieldSolution, v))
}

// SolutionHasSuffix applies the HasSuffix predicate on the "solution" field.
func SolutionHasSuffix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasSuffix(FieldSolution, v))
}

// SolutionIsNil applies the IsNil predicate on the "solution" field.
func SolutionIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldSolution))
}

// SolutionNotNil applies the NotNil predicate on the "solution" field.
func SolutionNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldSolution))
}

// SolutionEqualFold applies the EqualFold predicate on the "solution" field.
func SolutionEqualFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldSolution, v))
}

// SolutionContainsFold applies the ContainsFold predicate on the "solution" field.
func SolutionContainsFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldSolution, v))
}

// ExamplesIsNil applies the IsNil predicate on the "examples" field.
func ExamplesIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldExamples))
}

// ExamplesNotNil applies the NotNil predicate on the "examples" field.
func ExamplesNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldExamples))
}

// RepoEQ applies the EQ predicate on the "repo" field.
func RepoEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldRepo, v))
}

// RepoNEQ applies the NEQ predicate on the "repo" field.
func RepoNEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldRepo, v))
}

// RepoIn applies the In predicate on the "repo" field.
func RepoIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldRepo, vs...))
}

// RepoNotIn applies the NotIn predicate on the "repo" field.
func RepoNotIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldRepo, vs...))
}

// RepoGT applies the GT predicate on the "repo" field.
func RepoGT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldRepo, v))
}

// RepoGTE applies the GTE predicate on the "repo" field.
func RepoGTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldRepo, v))
}

// RepoLT applies the LT predicate on the "repo" field.
func RepoLT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldRepo, v))
}

// RepoLTE applies the LTE predicate on the "repo" field.
func RepoLTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldRepo, v))
}

// RepoContains applies the Contains predicate on the "repo" field.
func RepoContains(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContains(FieldRepo, v))
}

// RepoHasPrefix applies the HasPrefix predicate on the "repo" field.
func RepoHasPrefix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasPrefix(FieldRepo, v))
}

// RepoHasSuffix applies the HasSuffix predicate on the "repo" field.
func RepoHasSuffix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasSuffix(FieldRepo, v))
}

// RepoIsNil applies the IsNil predicate on the "repo" field.
func RepoIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldRepo))
}

// RepoNotNil applies the NotNil predicate on the "repo" field.
func RepoNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldRepo))
}

// RepoEqualFold applies the EqualFold predicate on the "repo" field.
func RepoEqualFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldRepo, v))
}

// RepoContainsFold applies the ContainsFold predicate on the "repo" field.
func RepoContainsFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldRepo, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldLanguage, v))
}

// FilePatternEQ applies the EQ predicate on the "file_pattern" field.
func FilePatternEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldFilePattern, v))
}

// FilePatternNEQ applies the NEQ predicate on the "file_pattern" field.
func FilePatternNEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldFilePattern, v))
}

// FilePatternIn applies the In predicate on the "file_pattern" field.
func FilePatternIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldFilePattern, vs...))
}

// FilePatternNotIn applies the NotIn predicate on the "file_pattern" field.
func FilePatternNotIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldFilePattern, vs...))
}

// FilePatternGT applies the GT predicate on the "file_pattern" field.
func FilePatternGT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldFilePattern, v))
}

// FilePatternGTE applies the GTE predicate on the "file_pattern" field.
func FilePatternGTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldFilePattern, v))
}

// FilePatternLT applies the LT predicate on the "file_pattern" field.
func FilePatternLT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldFilePattern, v))
}

// FilePatternLTE applies the LTE predicate on the "file_pattern" field.
func FilePatternLTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldFilePattern, v))
}

// FilePatternContains applies the Contains predicate on the "file_pattern" field.
func FilePatternContains(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContains(FieldFilePattern, v))
}

// FilePatternHasPrefix applies the HasPrefix predicate on the "file_pattern" field.
func FilePatternHasPrefix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasPrefix(FieldFilePattern, v))
}

// FilePatternHasSuffix applies the HasSuffix predicate on the "file_pattern" field.
func FilePatternHasSuffix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasSuffix(FieldFilePattern, v))
}

// FilePatternIsNil applies the IsNil predicate on the "file_pattern" field.
func FilePatternIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldFilePattern))
}

// FilePatternNotNil applies the NotNil predicate on the "file_pattern" field.
func FilePatternNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldFilePattern))
}

// FilePatternEqualFold applies the EqualFold predicate on the "file_pattern" field.
func FilePatternEqualFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldFilePattern, v))
}

// FilePatternContainsFold applies the ContainsFold predicate on the "file_pattern" field.
func FilePatternContainsFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldFilePattern, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldTaskID, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldConfidence, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldSuccessCount, v))
}

// FailureCountEQ applies the EQ predicate on the "failure_count" field.
func FailureCountEQ(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldFailureCount, v))
}

// FailureCountNEQ applies the NEQ predicate on the "failure_count" field.
func FailureCountNEQ(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldFailureCount, v))
}

// FailureCountIn applies the In predicate on the "failure_count" field.
func FailureCountIn(vs ...int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldFailureCount, vs...))
}

// FailureCountNotIn applies the NotIn predicate on the "failure_count" field.
func FailureCountNotIn(vs ...int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldFailureCount, vs...))
}

// FailureCountGT applies the GT predicate on the "failure_count" field.
func FailureCountGT(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldFailureCount, v))
}

// FailureCountGTE applies the GTE predicate on the "failure_count" field.
func FailureCountGTE(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldFailureCount, v))
}

// FailureCountLT applies the LT predicate on the "failure_count" field.
func FailureCountLT(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldFailureCount, v))
}

// FailureCountLTE applies the LTE predicate on the "failure_count" field.
func FailureCountLTE(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldFailureCount, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnedPattern) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnedPattern) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnedPattern) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.NotPredicates(p))
}
