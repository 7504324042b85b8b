// Code generated by ent, DO NOT EDIT.

package version

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/appforge/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldProjectID, v))
}

// BuildID applies equality check predicate on the "build_id" field. It's identical to BuildIDEQ.
func BuildID(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldBuildID, v))
}

// DisplayCounter applies equality check predicate on the "display_counter" field. It's identical to DisplayCounterEQ.
func DisplayCounter(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldDisplayCounter, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldDisplayName, v))
}

// Major applies equality check predicate on the "major" field. It's identical to MajorEQ.
func Major(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMajor, v))
}

// Minor applies equality check predicate on the "minor" field. It's identical to MinorEQ.
func Minor(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMinor, v))
}

// Patch applies equality check predicate on the "patch" field. It's identical to PatchEQ.
func Patch(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldPatch, v))
}

// AgentSessionID applies equality check predicate on the "agent_session_id" field. It's identical to AgentSessionIDEQ.
func AgentSessionID(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldAgentSessionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldProjectID, v))
}

// BuildIDEQ applies the EQ predicate on the "build_id" field.
func BuildIDEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldBuildID, v))
}

// BuildIDNEQ applies the NEQ predicate on the "build_id" field.
func BuildIDNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldBuildID, v))
}

// BuildIDIn applies the In predicate on the "build_id" field.
func BuildIDIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldBuildID, vs...))
}

// BuildIDNotIn applies the NotIn predicate on the "build_id" field.
func BuildIDNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldBuildID, vs...))
}

// BuildIDGT applies the GT predicate on the "build_id" field.
func BuildIDGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldBuildID, v))
}

// BuildIDGTE applies the GTE predicate on the "build_id" field.
func BuildIDGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldBuildID, v))
}

// BuildIDLT applies the LT predicate on the "build_id" field.
func BuildIDLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldBuildID, v))
}

// BuildIDLTE applies the LTE predicate on the "build_id" field.
func BuildIDLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldBuildID, v))
}

// BuildIDContains applies the Contains predicate on the "build_id" field.
func BuildIDContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldBuildID, v))
}

// BuildIDHasPrefix applies the HasPrefix predicate on the "build_id" field.
func BuildIDHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldBuildID, v))
}

// BuildIDHasSuffix applies the HasSuffix predicate on the "build_id" field.
func BuildIDHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldBuildID, v))
}

// BuildIDEqualFold applies the EqualFold predicate on the "build_id" field.
func BuildIDEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldBuildID, v))
}

// BuildIDContainsFold applies the ContainsFold predicate on the "build_id" field.
func BuildIDContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldBuildID, v))
}

// DisplayCounterEQ applies the EQ predicate on the "display_counter" field.
func DisplayCounterEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldDisplayCounter, v))
}

// DisplayCounterNEQ applies the NEQ predicate on the "display_counter" field.
func DisplayCounterNEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldDisplayCounter, v))
}

// DisplayCounterIn applies the In predicate on the "display_counter" field.
func DisplayCounterIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldDisplayCounter, vs...))
}

// DisplayCounterNotIn applies the NotIn predicate on the "display_counter" field.
func DisplayCounterNotIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldDisplayCounter, vs...))
}

// DisplayCounterGT applies the GT predicate on the "display_counter" field.
func DisplayCounterGT(v int) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldDisplayCounter, v))
}

// DisplayCounterGTE applies the GTE predicate on the "display_counter" field.
func DisplayCounterGTE(v int) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldDisplayCounter, v))
}

// DisplayCounterLT applies the LT predicate on the "display_counter" field.
func DisplayCounterLT(v int) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldDisplayCounter, v))
}

// DisplayCounterLTE applies the LTE predicate on the "display_counter" field.
func DisplayCounterLTE(v int) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldDisplayCounter, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldDisplayName, v))
}

// MajorEQ applies the EQ predicate on the "major" field.
func MajorEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMajor, v))
}

// MajorNEQ applies the NEQ predicate on the "major" field.
func MajorNEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldMajor, v))
}

// MajorIn applies the In predicate on the "major" field.
func MajorIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldMajor, vs...))
}

// MajorNotIn applies the NotIn predicate on the "major" field.
func MajorNotIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldMajor, vs...))
}

// MajorGT applies the GT predicate on the "major" field.
func MajorGT(v int) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldMajor, v))
}

// MajorGTE applies the GTE predicate on the "major" field.
func MajorGTE(v int) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldMajor, v))
}

// MajorLT applies the LT predicate on the "major" field.
func MajorLT(v int) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldMajor, v))
}

// MajorLTE applies the LTE predicate on the "major" field.
func MajorLTE(v int) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldMajor, v))
}

// MinorEQ applies the EQ predicate on the "minor" field.
func MinorEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMinor, v))
}

// MinorNEQ applies the NEQ predicate on the "minor" field.
func MinorNEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldMinor, v))
}

// MinorIn applies the In predicate on the "minor" field.
func MinorIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldMinor, vs...))
}

// MinorNotIn applies the NotIn predicate on the "minor" field.
func MinorNotIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldMinor, vs...))
}

// MinorGT applies the GT predicate on the "minor" field.
func MinorGT(v int) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldMinor, v))
}

// MinorGTE applies the GTE predicate on the "minor" field.
func MinorGTE(v int) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldMinor, v))
}

// MinorLT applies the LT predicate on the "minor" field.
func MinorLT(v int) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldMinor, v))
}

// MinorLTE applies the LTE predicate on the "minor" field.
func MinorLTE(v int) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldMinor, v))
}

// PatchEQ applies the EQ predicate on the "patch" field.
func PatchEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldPatch, v))
}

// PatchNEQ applies the NEQ predicate on the "patch" field.
func PatchNEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldPatch, v))
}

// PatchIn applies the In predicate on the "patch" field.
func PatchIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldPatch, vs...))
}

// PatchNotIn applies the NotIn predicate on the "patch" field.
func PatchNotIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldPatch, vs...))
}

// PatchGT applies the GT predicate on the "patch" field.
func PatchGT(v int) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldPatch, v))
}

// PatchGTE applies the GTE predicate on the "patch" field.
func PatchGTE(v int) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldPatch, v))
}

// PatchLT applies the LT predicate on the "patch" field.
func PatchLT(v int) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldPatch, v))
}

// PatchLTE applies the LTE predicate on the "patch" field.
func PatchLTE(v int) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldPatch, v))
}

// ChangeTypeEQ applies the EQ predicate on the "change_type" field.
func ChangeTypeEQ(v ChangeType) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldChangeType, v))
}

// ChangeTypeNEQ applies the NEQ predicate on the "change_type" field.
func ChangeTypeNEQ(v ChangeType) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldChangeType, v))
}

// ChangeTypeIn applies the In predicate on the "change_type" field.
func ChangeTypeIn(vs ...ChangeType) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldChangeType, vs...))
}

// ChangeTypeNotIn applies the NotIn predicate on the "change_type" field.
func ChangeTypeNotIn(vs ...ChangeType) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldChangeType, vs...))
}

// ChangeTypeIsNil applies the IsNil predicate on the "change_type" field.
func ChangeTypeIsNil() predicate.Version {
	return predicate.Version(sql.FieldIsNull(FieldChangeType))
}

// ChangeTypeNotNil applies the NotNil predicate on the "change_type" field.
func ChangeTypeNotNil() predicate.Version {
	return predicate.Version(sql.FieldNotNull(FieldChangeType))
}

// AgentSessionIDEQ applies the EQ predicate on the "agent_session_id" field.
func AgentSessionIDEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldAgentSessionID, v))
}

// AgentSessionIDNEQ applies the NEQ predicate on the "agent_session_id" field.
func AgentSessionIDNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldAgentSessionID, v))
}

// AgentSessionIDIn applies the In predicate on the "agent_session_id" field.
func AgentSessionIDIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldAgentSessionID, vs...))
}

// AgentSessionIDNotIn applies the NotIn predicate on the "agent_session_id" field.
func AgentSessionIDNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldAgentSessionID, vs...))
}

// AgentSessionIDGT applies the GT predicate on the "agent_session_id" field.
func AgentSessionIDGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldAgentSessionID, v))
}

// AgentSessionIDGTE applies the GTE predicate on the "agent_session_id" field.
func AgentSessionIDGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldAgentSessionID, v))
}

// AgentSessionIDLT applies the LT predicate on the "agent_session_id" field.
func AgentSessionIDLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldAgentSessionID, v))
}

// AgentSessionIDLTE applies the LTE predicate on the "agent_session_id" field.
func AgentSessionIDLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldAgentSessionID, v))
}

// AgentSessionIDContains applies the Contains predicate on the "agent_session_id" field.
func AgentSessionIDContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldAgentSessionID, v))
}

// AgentSessionIDHasPrefix applies the HasPrefix predicate on the "agent_session_id" field.
func AgentSessionIDHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldAgentSessionID, v))
}

// AgentSessionIDHasSuffix applies the HasSuffix predicate on the "agent_session_id" field.
func AgentSessionIDHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldAgentSessionID, v))
}

// AgentSessionIDIsNil applies the IsNil predicate on the "agent_session_id" field.
func AgentSessionIDIsNil() predicate.Version {
	return predicate.Version(sql.FieldIsNull(FieldAgentSessionID))
}

// AgentSessionIDNotNil applies the NotNil predicate on the "agent_session_id" field.
func AgentSessionIDNotNil() predicate.Version {
	return predicate.Version(sql.FieldNotNull(FieldAgentSessionID))
}

// AgentSessionIDEqualFold applies the EqualFold predicate on the "agent_session_id" field.
func AgentSessionIDEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldAgentSessionID, v))
}

// AgentSessionIDContainsFold applies the ContainsFold predicate on the "agent_session_id" field.
func AgentSessionIDContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldAgentSessionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Version {
	return predicate.Version(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Version {
	return predicate.Version(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBuild applies the HasEdge predicate on the "build" edge.
func HasBuild() predicate.Version {
	return predicate.Version(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, BuildTable, BuildColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuildWith applies the HasEdge predicate on the "build" edge with a given conditions (other predicates).
func HasBuildWith(preds ...predicate.Build) predicate.Version {
	return predicate.Version(func(s *sql.Selector) {
		step := newBuildStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Version) predicate.Version {
	return predicate.Version(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Version) predicate.Version {
	return predicate.Version(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Version) predicate.Version {
	return predicate.Version(sql.NotPredicates(p))
}
