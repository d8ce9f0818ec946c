// Code generated by ent, DO NOT EDIT.

package modelconfigaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeflow/forgeflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContainsFold(FieldID, id))
}

// Purpose applies equality check predicate on the "purpose" field. It's identical to PurposeEQ.
func Purpose(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldPurpose, v))
}

// ChangedBy applies equality check predicate on the "changed_by" field. It's identical to ChangedByEQ.
func ChangedBy(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldChangedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldPurpose, vs...))
}

// PurposeGT applies the GT predicate on the "purpose" field.
func PurposeGT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldPurpose, v))
}

// PurposeGTE applies the GTE predicate on the "purpose" field.
func PurposeGTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldPurpose, v))
}

// PurposeLT applies the LT predicate on the "purpose" field.
func PurposeLT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldPurpose, v))
}

// PurposeLTE applies the LTE predicate on the "purpose" field.
func PurposeLTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldPurpose, v))
}

// PurposeContains applies the Contains predicate on the "purpose" field.
func PurposeContains(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContains(FieldPurpose, v))
}

// PurposeHasPrefix applies the HasPrefix predicate on the "purpose" field.
func PurposeHasPrefix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasPrefix(FieldPurpose, v))
}

// PurposeHasSuffix applies the HasSuffix predicate on the "purpose" field.
func PurposeHasSuffix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasSuffix(FieldPurpose, v))
}

// PurposeEqualFold applies the EqualFold predicate on the "purpose" field.
func PurposeEqualFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEqualFold(FieldPurpose, v))
}

// PurposeContainsFold applies the ContainsFold predicate on the "purpose" field.
func PurposeContainsFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContainsFold(FieldPurpose, v))
}

// PreviousIsNil applies the IsNil predicate on the "previous" field.
func PreviousIsNil() predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIsNull(FieldPrevious))
}

// PreviousNotNil applies the NotNil predicate on the "previous" field.
func PreviousNotNil() predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotNull(FieldPrevious))
}

// ChangedByEQ applies the EQ predicate on the "changed_by" field.
func ChangedByEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldChangedBy, v))
}

// ChangedByNEQ applies the NEQ predicate on the "changed_by" field.
func ChangedByNEQ(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldChangedBy, v))
}

// ChangedByIn applies the In predicate on the "changed_by" field.
func ChangedByIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldChangedBy, vs...))
}

// ChangedByNotIn applies the NotIn predicate on the "changed_by" field.
func ChangedByNotIn(vs ...string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldChangedBy, vs...))
}

// ChangedByGT applies the GT predicate on the "changed_by" field.
func ChangedByGT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldChangedBy, v))
}

// ChangedByGTE applies the GTE predicate on the "changed_by" field.
func ChangedByGTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldChangedBy, v))
}

// ChangedByLT applies the LT predicate on the "changed_by" field.
func ChangedByLT(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldChangedBy, v))
}

// ChangedByLTE applies the LTE predicate on the "changed_by" field.
func ChangedByLTE(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldChangedBy, v))
}

// ChangedByContains applies the Contains predicate on the "changed_by" field.
func ChangedByContains(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContains(FieldChangedBy, v))
}

// ChangedByHasPrefix applies the HasPrefix predicate on the "changed_by" field.
func ChangedByHasPrefix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasPrefix(FieldChangedBy, v))
}

// ChangedByHasSuffix applies the HasSuffix predicate on the "changed_by" field.
func ChangedByHasSuffix(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldHasSuffix(FieldChangedBy, v))
}

// ChangedByIsNil applies the IsNil predicate on the "changed_by" field.
func ChangedByIsNil() predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIsNull(FieldChangedBy))
}

// ChangedByNotNil applies the NotNil predicate on the "changed_by" field.
func ChangedByNotNil() predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotNull(FieldChangedBy))
}

// ChangedByEqualFold applies the EqualFold predicate on the "changed_by" field.
func ChangedByEqualFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEqualFold(FieldChangedBy, v))
}

// ChangedByContainsFold applies the ContainsFold predicate on the "changed_by" field.
func ChangedByContainsFold(v string) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldContainsFold(FieldChangedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelConfigAudit) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelConfigAudit) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelConfigAudit) predicate.ModelConfigAudit {
	return predicate.ModelConfigAudit(sql.NotPredicates(p))
}
