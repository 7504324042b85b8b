// Code generated by ent, DO NOT EDIT.

package queuestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/appforge/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QueueState {
	return predicate.QueueState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QueueState {
	return predicate.QueueState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QueueState {
	return predicate.QueueState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QueueState {
	return predicate.QueueState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QueueState {
	return predicate.QueueState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QueueState {
	return predicate.QueueState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QueueState {
	return predicate.QueueState(sql.FieldLTE(FieldID, id))
}

// Queue applies equality check predicate on the "queue" field. It's identical to QueueEQ.
func Queue(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldQueue, v))
}

// Paused applies equality check predicate on the "paused" field. It's identical to PausedEQ.
func Paused(v bool) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldPaused, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldReason, v))
}

// PausedUntil applies equality check predicate on the "paused_until" field. It's identical to PausedUntilEQ.
func PausedUntil(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldPausedUntil, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldUpdatedAt, v))
}

// QueueEQ applies the EQ predicate on the "queue" field.
func QueueEQ(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldQueue, v))
}

// QueueNEQ applies the NEQ predicate on the "queue" field.
func QueueNEQ(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldNEQ(FieldQueue, v))
}

// QueueIn applies the In predicate on the "queue" field.
func QueueIn(vs ...string) predicate.QueueState {
	return predicate.QueueState(sql.FieldIn(FieldQueue, vs...))
}

// QueueNotIn applies the NotIn predicate on the "queue" field.
func QueueNotIn(vs ...string) predicate.QueueState {
	return predicate.QueueState(sql.FieldNotIn(FieldQueue, vs...))
}

// QueueGT applies the GT predicate on the "queue" field.
func QueueGT(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldGT(FieldQueue, v))
}

// QueueGTE applies the GTE predicate on the "queue" field.
func QueueGTE(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldGTE(FieldQueue, v))
}

// QueueLT applies the LT predicate on the "queue" field.
func QueueLT(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldLT(FieldQueue, v))
}

// QueueLTE applies the LTE predicate on the "queue" field.
func QueueLTE(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldLTE(FieldQueue, v))
}

// QueueContains applies the Contains predicate on the "queue" field.
func QueueContains(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldContains(FieldQueue, v))
}

// QueueHasPrefix applies the HasPrefix predicate on the "queue" field.
func QueueHasPrefix(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldHasPrefix(FieldQueue, v))
}

// QueueHasSuffix applies the HasSuffix predicate on the "queue" field.
func QueueHasSuffix(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldHasSuffix(FieldQueue, v))
}

// QueueEqualFold applies the EqualFold predicate on the "queue" field.
func QueueEqualFold(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldEqualFold(FieldQueue, v))
}

// QueueContainsFold applies the ContainsFold predicate on the "queue" field.
func QueueContainsFold(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldContainsFold(FieldQueue, v))
}

// PausedEQ applies the EQ predicate on the "paused" field.
func PausedEQ(v bool) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldPaused, v))
}

// PausedNEQ applies the NEQ predicate on the "paused" field.
func PausedNEQ(v bool) predicate.QueueState {
	return predicate.QueueState(sql.FieldNEQ(FieldPaused, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.QueueState {
	return predicate.QueueState(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.QueueState {
	return predicate.QueueState(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.QueueState {
	return predicate.QueueState(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.QueueState {
	return predicate.QueueState(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.QueueState {
	return predicate.QueueState(sql.FieldContainsFold(FieldReason, v))
}

// PausedUntilEQ applies the EQ predicate on the "paused_until" field.
func PausedUntilEQ(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldPausedUntil, v))
}

// PausedUntilNEQ applies the NEQ predicate on the "paused_until" field.
func PausedUntilNEQ(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldNEQ(FieldPausedUntil, v))
}

// PausedUntilIn applies the In predicate on the "paused_until" field.
func PausedUntilIn(vs ...time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldIn(FieldPausedUntil, vs...))
}

// PausedUntilNotIn applies the NotIn predicate on the "paused_until" field.
func PausedUntilNotIn(vs ...time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldNotIn(FieldPausedUntil, vs...))
}

// PausedUntilGT applies the GT predicate on the "paused_until" field.
func PausedUntilGT(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldGT(FieldPausedUntil, v))
}

// PausedUntilGTE applies the GTE predicate on the "paused_until" field.
func PausedUntilGTE(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldGTE(FieldPausedUntil, v))
}

// PausedUntilLT applies the LT predicate on the "paused_until" field.
func PausedUntilLT(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldLT(FieldPausedUntil, v))
}

// PausedUntilLTE applies the LTE predicate on the "paused_until" field.
func PausedUntilLTE(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldLTE(FieldPausedUntil, v))
}

// PausedUntilIsNil applies the IsNil predicate on the "paused_until" field.
func PausedUntilIsNil() predicate.QueueState {
	return predicate.QueueState(sql.FieldIsNull(FieldPausedUntil))
}

// PausedUntilNotNil applies the NotNil predicate on the "paused_until" field.
func PausedUntilNotNil() predicate.QueueState {
	return predicate.QueueState(sql.FieldNotNull(FieldPausedUntil))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QueueState {
	return predicate.QueueState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueueState) predicate.QueueState {
	return predicate.QueueState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueueState) predicate.QueueState {
	return predicate.QueueState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueueState) predicate.QueueState {
	return predicate.QueueState(sql.NotPredicates(p))
}
