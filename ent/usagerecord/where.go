// Code generated by ent, DO NOT EDIT.

package usagerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/appforge/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldID, id))
}

// BuildID applies equality check predicate on the "build_id" field. It's identical to BuildIDEQ.
func BuildID(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldBuildID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldUserID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldEndedAt, v))
}

// Seconds applies equality check predicate on the "seconds" field. It's identical to SecondsEQ.
func Seconds(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldSeconds, v))
}

// Refunded applies equality check predicate on the "refunded" field. It's identical to RefundedEQ.
func Refunded(v bool) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldRefunded, v))
}

// BuildIDEQ applies the EQ predicate on the "build_id" field.
func BuildIDEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldBuildID, v))
}

// BuildIDNEQ applies the NEQ predicate on the "build_id" field.
func BuildIDNEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldBuildID, v))
}

// BuildIDIn applies the In predicate on the "build_id" field.
func BuildIDIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldBuildID, vs...))
}

// BuildIDNotIn applies the NotIn predicate on the "build_id" field.
func BuildIDNotIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldBuildID, vs...))
}

// BuildIDGT applies the GT predicate on the "build_id" field.
func BuildIDGT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldBuildID, v))
}

// BuildIDGTE applies the GTE predicate on the "build_id" field.
func BuildIDGTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldBuildID, v))
}

// BuildIDLT applies the LT predicate on the "build_id" field.
func BuildIDLT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldBuildID, v))
}

// BuildIDLTE applies the LTE predicate on the "build_id" field.
func BuildIDLTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldBuildID, v))
}

// BuildIDContains applies the Contains predicate on the "build_id" field.
func BuildIDContains(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContains(FieldBuildID, v))
}

// BuildIDHasPrefix applies the HasPrefix predicate on the "build_id" field.
func BuildIDHasPrefix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasPrefix(FieldBuildID, v))
}

// BuildIDHasSuffix applies the HasSuffix predicate on the "build_id" field.
func BuildIDHasSuffix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasSuffix(FieldBuildID, v))
}

// BuildIDEqualFold applies the EqualFold predicate on the "build_id" field.
func BuildIDEqualFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEqualFold(FieldBuildID, v))
}

// BuildIDContainsFold applies the ContainsFold predicate on the "build_id" field.
func BuildIDContainsFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContainsFold(FieldBuildID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContainsFold(FieldUserID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotNull(FieldEndedAt))
}

// SecondsEQ applies the EQ predicate on the "seconds" field.
func SecondsEQ(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldSeconds, v))
}

// SecondsNEQ applies the NEQ predicate on the "seconds" field.
func SecondsNEQ(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldSeconds, v))
}

// SecondsIn applies the In predicate on the "seconds" field.
func SecondsIn(vs ...int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldSeconds, vs...))
}

// SecondsNotIn applies the NotIn predicate on the "seconds" field.
func SecondsNotIn(vs ...int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldSeconds, vs...))
}

// SecondsGT applies the GT predicate on the "seconds" field.
func SecondsGT(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldSeconds, v))
}

// SecondsGTE applies the GTE predicate on the "seconds" field.
func SecondsGTE(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldSeconds, v))
}

// SecondsLT applies the LT predicate on the "seconds" field.
func SecondsLT(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldSeconds, v))
}

// SecondsLTE applies the LTE predicate on the "seconds" field.
func SecondsLTE(v int64) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldSeconds, v))
}

// RefundedEQ applies the EQ predicate on the "refunded" field.
func RefundedEQ(v bool) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldRefunded, v))
}

// RefundedNEQ applies the NEQ predicate on the "refunded" field.
func RefundedNEQ(v bool) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldRefunded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageRecord) predicate.UsageRecord {
	return predicate.UsageRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageRecord) predicate.UsageRecord {
	return predicate.UsageRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageRecord) predicate.UsageRecord {
	return predicate.UsageRecord(sql.NotPredicates(p))
}
