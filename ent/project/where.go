// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/appforge/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// Framework applies equality check predicate on the "framework" field. It's identical to FrameworkEQ.
func Framework(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldFramework, v))
}

// CurrentBuildID applies equality check predicate on the "current_build_id" field. It's identical to CurrentBuildIDEQ.
func CurrentBuildID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentBuildID, v))
}

// CurrentVersionID applies equality check predicate on the "current_version_id" field. It's identical to CurrentVersionIDEQ.
func CurrentVersionID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentVersionID, v))
}

// CurrentVersionName applies equality check predicate on the "current_version_name" field. It's identical to CurrentVersionNameEQ.
func CurrentVersionName(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentVersionName, v))
}

// LastAgentSessionID applies equality check predicate on the "last_agent_session_id" field. It's identical to LastAgentSessionIDEQ.
func LastAgentSessionID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastAgentSessionID, v))
}

// PreviewURL applies equality check predicate on the "preview_url" field. It's identical to PreviewURLEQ.
func PreviewURL(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPreviewURL, v))
}

// DeployLane applies equality check predicate on the "deploy_lane" field. It's identical to DeployLaneEQ.
func DeployLane(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDeployLane, v))
}

// LastBuildStartedAt applies equality check predicate on the "last_build_started_at" field. It's identical to LastBuildStartedAtEQ.
func LastBuildStartedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastBuildStartedAt, v))
}

// LastBuildCompletedAt applies equality check predicate on the "last_build_completed_at" field. It's identical to LastBuildCompletedAtEQ.
func LastBuildCompletedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastBuildCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// FrameworkEQ applies the EQ predicate on the "framework" field.
func FrameworkEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldFramework, v))
}

// FrameworkNEQ applies the NEQ predicate on the "framework" field.
func FrameworkNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldFramework, v))
}

// FrameworkIn applies the In predicate on the "framework" field.
func FrameworkIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldFramework, vs...))
}

// FrameworkNotIn applies the NotIn predicate on the "framework" field.
func FrameworkNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldFramework, vs...))
}

// FrameworkGT applies the GT predicate on the "framework" field.
func FrameworkGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldFramework, v))
}

// FrameworkGTE applies the GTE predicate on the "framework" field.
func FrameworkGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldFramework, v))
}

// FrameworkLT applies the LT predicate on the "framework" field.
func FrameworkLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldFramework, v))
}

// FrameworkLTE applies the LTE predicate on the "framework" field.
func FrameworkLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldFramework, v))
}

// FrameworkContains applies the Contains predicate on the "framework" field.
func FrameworkContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldFramework, v))
}

// FrameworkHasPrefix applies the HasPrefix predicate on the "framework" field.
func FrameworkHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldFramework, v))
}

// FrameworkHasSuffix applies the HasSuffix predicate on the "framework" field.
func FrameworkHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldFramework, v))
}

// FrameworkIsNil applies the IsNil predicate on the "framework" field.
func FrameworkIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldFramework))
}

// FrameworkNotNil applies the NotNil predicate on the "framework" field.
func FrameworkNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldFramework))
}

// FrameworkEqualFold applies the EqualFold predicate on the "framework" field.
func FrameworkEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldFramework, v))
}

// FrameworkContainsFold applies the ContainsFold predicate on the "framework" field.
func FrameworkContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldFramework, v))
}

// BuildStatusEQ applies the EQ predicate on the "build_status" field.
func BuildStatusEQ(v BuildStatus) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldBuildStatus, v))
}

// BuildStatusNEQ applies the NEQ predicate on the "build_status" field.
func BuildStatusNEQ(v BuildStatus) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldBuildStatus, v))
}

// BuildStatusIn applies the In predicate on the "build_status" field.
func BuildStatusIn(vs ...BuildStatus) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldBuildStatus, vs...))
}

// BuildStatusNotIn applies the NotIn predicate on the "build_status" field.
func BuildStatusNotIn(vs ...BuildStatus) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldBuildStatus, vs...))
}

// BuildStatusIsNil applies the IsNil predicate on the "build_status" field.
func BuildStatusIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldBuildStatus))
}

// BuildStatusNotNil applies the NotNil predicate on the "build_status" field.
func BuildStatusNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldBuildStatus))
}

// CurrentBuildIDEQ applies the EQ predicate on the "current_build_id" field.
func CurrentBuildIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentBuildID, v))
}

// CurrentBuildIDNEQ applies the NEQ predicate on the "current_build_id" field.
func CurrentBuildIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCurrentBuildID, v))
}

// CurrentBuildIDIn applies the In predicate on the "current_build_id" field.
func CurrentBuildIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCurrentBuildID, vs...))
}

// CurrentBuildIDNotIn applies the NotIn predicate on the "current_build_id" field.
func CurrentBuildIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCurrentBuildID, vs...))
}

// CurrentBuildIDGT applies the GT predicate on the "current_build_id" field.
func CurrentBuildIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCurrentBuildID, v))
}

// CurrentBuildIDGTE applies the GTE predicate on the "current_build_id" field.
func CurrentBuildIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCurrentBuildID, v))
}

// CurrentBuildIDLT applies the LT predicate on the "current_build_id" field.
func CurrentBuildIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCurrentBuildID, v))
}

// CurrentBuildIDLTE applies the LTE predicate on the "current_build_id" field.
func CurrentBuildIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCurrentBuildID, v))
}

// CurrentBuildIDContains applies the Contains predicate on the "current_build_id" field.
func CurrentBuildIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldCurrentBuildID, v))
}

// CurrentBuildIDHasPrefix applies the HasPrefix predicate on the "current_build_id" field.
func CurrentBuildIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldCurrentBuildID, v))
}

// CurrentBuildIDHasSuffix applies the HasSuffix predicate on the "current_build_id" field.
func CurrentBuildIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldCurrentBuildID, v))
}

// CurrentBuildIDIsNil applies the IsNil predicate on the "current_build_id" field.
func CurrentBuildIDIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldCurrentBuildID))
}

// CurrentBuildIDNotNil applies the NotNil predicate on the "current_build_id" field.
func CurrentBuildIDNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldCurrentBuildID))
}

// CurrentBuildIDEqualFold applies the EqualFold predicate on the "current_build_id" field.
func CurrentBuildIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldCurrentBuildID, v))
}

// CurrentBuildIDContainsFold applies the ContainsFold predicate on the "current_build_id" field.
func CurrentBuildIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldCurrentBuildID, v))
}

// CurrentVersionIDEQ applies the EQ predicate on the "current_version_id" field.
func CurrentVersionIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentVersionID, v))
}

// CurrentVersionIDNEQ applies the NEQ predicate on the "current_version_id" field.
func CurrentVersionIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCurrentVersionID, v))
}

// CurrentVersionIDIn applies the In predicate on the "current_version_id" field.
func CurrentVersionIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCurrentVersionID, vs...))
}

// CurrentVersionIDNotIn applies the NotIn predicate on the "current_version_id" field.
func CurrentVersionIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCurrentVersionID, vs...))
}

// CurrentVersionIDGT applies the GT predicate on the "current_version_id" field.
func CurrentVersionIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCurrentVersionID, v))
}

// CurrentVersionIDGTE applies the GTE predicate on the "current_version_id" field.
func CurrentVersionIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCurrentVersionID, v))
}

// CurrentVersionIDLT applies the LT predicate on the "current_version_id" field.
func CurrentVersionIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCurrentVersionID, v))
}

// CurrentVersionIDLTE applies the LTE predicate on the "current_version_id" field.
func CurrentVersionIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCurrentVersionID, v))
}

// CurrentVersionIDContains applies the Contains predicate on the "current_version_id" field.
func CurrentVersionIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldCurrentVersionID, v))
}

// CurrentVersionIDHasPrefix applies the HasPrefix predicate on the "current_version_id" field.
func CurrentVersionIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldCurrentVersionID, v))
}

// CurrentVersionIDHasSuffix applies the HasSuffix predicate on the "current_version_id" field.
func CurrentVersionIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldCurrentVersionID, v))
}

// CurrentVersionIDIsNil applies the IsNil predicate on the "current_version_id" field.
func CurrentVersionIDIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldCurrentVersionID))
}

// CurrentVersionIDNotNil applies the NotNil predicate on the "current_version_id" field.
func CurrentVersionIDNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldCurrentVersionID))
}

// CurrentVersionIDEqualFold applies the EqualFold predicate on the "current_version_id" field.
func CurrentVersionIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldCurrentVersionID, v))
}

// CurrentVersionIDContainsFold applies the ContainsFold predicate on the "current_version_id" field.
func CurrentVersionIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldCurrentVersionID, v))
}

// CurrentVersionNameEQ applies the EQ predicate on the "current_version_name" field.
func CurrentVersionNameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentVersionName, v))
}

// CurrentVersionNameNEQ applies the NEQ predicate on the "current_version_name" field.
func CurrentVersionNameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCurrentVersionName, v))
}

// CurrentVersionNameIn applies the In predicate on the "current_version_name" field.
func CurrentVersionNameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCurrentVersionName, vs...))
}

// CurrentVersionNameNotIn applies the NotIn predicate on the "current_version_name" field.
func CurrentVersionNameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCurrentVersionName, vs...))
}

// CurrentVersionNameGT applies the GT predicate on the "current_version_name" field.
func CurrentVersionNameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCurrentVersionName, v))
}

// CurrentVersionNameGTE applies the GTE predicate on the "current_version_name" field.
func CurrentVersionNameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCurrentVersionName, v))
}

// CurrentVersionNameLT applies the LT predicate on the "current_version_name" field.
func CurrentVersionNameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCurrentVersionName, v))
}

// CurrentVersionNameLTE applies the LTE predicate on the "current_version_name" field.
func CurrentVersionNameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCurrentVersionName, v))
}

// CurrentVersionNameContains applies the Contains predicate on the "current_version_name" field.
func CurrentVersionNameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldCurrentVersionName, v))
}

// CurrentVersionNameHasPrefix applies the HasPrefix predicate on the "current_version_name" field.
func CurrentVersionNameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldCurrentVersionName, v))
}

// CurrentVersionNameHasSuffix applies the HasSuffix predicate on the "current_version_name" field.
func CurrentVersionNameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldCurrentVersionName, v))
}

// CurrentVersionNameIsNil applies the IsNil predicate on the "current_version_name" field.
func CurrentVersionNameIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldCurrentVersionName))
}

// CurrentVersionNameNotNil applies the NotNil predicate on the "current_version_name" field.
func CurrentVersionNameNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldCurrentVersionName))
}

// CurrentVersionNameEqualFold applies the EqualFold predicate on the "current_version_name" field.
func CurrentVersionNameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldCurrentVersionName, v))
}

// CurrentVersionNameContainsFold applies the ContainsFold predicate on the "current_version_name" field.
func CurrentVersionNameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldCurrentVersionName, v))
}

// LastAgentSessionIDEQ applies the EQ predicate on the "last_agent_session_id" field.
func LastAgentSessionIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDNEQ applies the NEQ predicate on the "last_agent_session_id" field.
func LastAgentSessionIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDIn applies the In predicate on the "last_agent_session_id" field.
func LastAgentSessionIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldLastAgentSessionID, vs...))
}

// LastAgentSessionIDNotIn applies the NotIn predicate on the "last_agent_session_id" field.
func LastAgentSessionIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldLastAgentSessionID, vs...))
}

// LastAgentSessionIDGT applies the GT predicate on the "last_agent_session_id" field.
func LastAgentSessionIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDGTE applies the GTE predicate on the "last_agent_session_id" field.
func LastAgentSessionIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDLT applies the LT predicate on the "last_agent_session_id" field.
func LastAgentSessionIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDLTE applies the LTE predicate on the "last_agent_session_id" field.
func LastAgentSessionIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDContains applies the Contains predicate on the "last_agent_session_id" field.
func LastAgentSessionIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDHasPrefix applies the HasPrefix predicate on the "last_agent_session_id" field.
func LastAgentSessionIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDHasSuffix applies the HasSuffix predicate on the "last_agent_session_id" field.
func LastAgentSessionIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDIsNil applies the IsNil predicate on the "last_agent_session_id" field.
func LastAgentSessionIDIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldLastAgentSessionID))
}

// LastAgentSessionIDNotNil applies the NotNil predicate on the "last_agent_session_id" field.
func LastAgentSessionIDNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldLastAgentSessionID))
}

// LastAgentSessionIDEqualFold applies the EqualFold predicate on the "last_agent_session_id" field.
func LastAgentSessionIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldLastAgentSessionID, v))
}

// LastAgentSessionIDContainsFold applies the ContainsFold predicate on the "last_agent_session_id" field.
func LastAgentSessionIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldLastAgentSessionID, v))
}

// PreviewURLEQ applies the EQ predicate on the "preview_url" field.
func PreviewURLEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPreviewURL, v))
}

// PreviewURLNEQ applies the NEQ predicate on the "preview_url" field.
func PreviewURLNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldPreviewURL, v))
}

// PreviewURLIn applies the In predicate on the "preview_url" field.
func PreviewURLIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldPreviewURL, vs...))
}

// PreviewURLNotIn applies the NotIn predicate on the "preview_url" field.
func PreviewURLNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldPreviewURL, vs...))
}

// PreviewURLGT applies the GT predicate on the "preview_url" field.
func PreviewURLGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldPreviewURL, v))
}

// PreviewURLGTE applies the GTE predicate on the "preview_url" field.
func PreviewURLGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldPreviewURL, v))
}

// PreviewURLLT applies the LT predicate on the "preview_url" field.
func PreviewURLLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldPreviewURL, v))
}

// PreviewURLLTE applies the LTE predicate on the "preview_url" field.
func PreviewURLLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldPreviewURL, v))
}

// PreviewURLContains applies the Contains predicate on the "preview_url" field.
func PreviewURLContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldPreviewURL, v))
}

// PreviewURLHasPrefix applies the HasPrefix predicate on the "preview_url" field.
func PreviewURLHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldPreviewURL, v))
}

// PreviewURLHasSuffix applies the HasSuffix predicate on the "preview_url" field.
func PreviewURLHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldPreviewURL, v))
}

// PreviewURLIsNil applies the IsNil predicate on the "preview_url" field.
func PreviewURLIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldPreviewURL))
}

// PreviewURLNotNil applies the NotNil predicate on the "preview_url" field.
func PreviewURLNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldPreviewURL))
}

// PreviewURLEqualFold applies the EqualFold predicate on the "preview_url" field.
func PreviewURLEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldPreviewURL, v))
}

// PreviewURLContainsFold applies the ContainsFold predicate on the "preview_url" field.
func PreviewURLContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldPreviewURL, v))
}

// DeployLaneEQ applies the EQ predicate on the "deploy_lane" field.
func DeployLaneEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDeployLane, v))
}

// DeployLaneNEQ applies the NEQ predicate on the "deploy_lane" field.
func DeployLaneNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldDeployLane, v))
}

// DeployLaneIn applies the In predicate on the "deploy_lane" field.
func DeployLaneIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldDeployLane, vs...))
}

// DeployLaneNotIn applies the NotIn predicate on the "deploy_lane" field.
func DeployLaneNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldDeployLane, vs...))
}

// DeployLaneGT applies the GT predicate on the "deploy_lane" field.
func DeployLaneGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldDeployLane, v))
}

// DeployLaneGTE applies the GTE predicate on the "deploy_lane" field.
func DeployLaneGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldDeployLane, v))
}

// DeployLaneLT applies the LT predicate on the "deploy_lane" field.
func DeployLaneLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldDeployLane, v))
}

// DeployLaneLTE applies the LTE predicate on the "deploy_lane" field.
func DeployLaneLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldDeployLane, v))
}

// DeployLaneContains applies the Contains predicate on the "deploy_lane" field.
func DeployLaneContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldDeployLane, v))
}

// DeployLaneHasPrefix applies the HasPrefix predicate on the "deploy_lane" field.
func DeployLaneHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldDeployLane, v))
}

// DeployLaneHasSuffix applies the HasSuffix predicate on the "deploy_lane" field.
func DeployLaneHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldDeployLane, v))
}

// DeployLaneIsNil applies the IsNil predicate on the "deploy_lane" field.
func DeployLaneIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldDeployLane))
}

// DeployLaneNotNil applies the NotNil predicate on the "deploy_lane" field.
func DeployLaneNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldDeployLane))
}

// DeployLaneEqualFold applies the EqualFold predicate on the "deploy_lane" field.
func DeployLaneEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldDeployLane, v))
}

// DeployLaneContainsFold applies the ContainsFold predicate on the "deploy_lane" field.
func DeployLaneContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldDeployLane, v))
}

// LastBuildStartedAtEQ applies the EQ predicate on the "last_build_started_at" field.
func LastBuildStartedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastBuildStartedAt, v))
}

// LastBuildStartedAtNEQ applies the NEQ predicate on the "last_build_started_at" field.
func LastBuildStartedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldLastBuildStartedAt, v))
}

// LastBuildStartedAtIn applies the In predicate on the "last_build_started_at" field.
func LastBuildStartedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldLastBuildStartedAt, vs...))
}

// LastBuildStartedAtNotIn applies the NotIn predicate on the "last_build_started_at" field.
func LastBuildStartedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldLastBuildStartedAt, vs...))
}

// LastBuildStartedAtGT applies the GT predicate on the "last_build_started_at" field.
func LastBuildStartedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldLastBuildStartedAt, v))
}

// LastBuildStartedAtGTE applies the GTE predicate on the "last_build_started_at" field.
func LastBuildStartedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldLastBuildStartedAt, v))
}

// LastBuildStartedAtLT applies the LT predicate on the "last_build_started_at" field.
func LastBuildStartedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldLastBuildStartedAt, v))
}

// LastBuildStartedAtLTE applies the LTE predicate on the "last_build_started_at" field.
func LastBuildStartedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldLastBuildStartedAt, v))
}

// LastBuildStartedAtIsNil applies the IsNil predicate on the "last_build_started_at" field.
func LastBuildStartedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldLastBuildStartedAt))
}

// LastBuildStartedAtNotNil applies the NotNil predicate on the "last_build_started_at" field.
func LastBuildStartedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldLastBuildStartedAt))
}

// LastBuildCompletedAtEQ applies the EQ predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastBuildCompletedAt, v))
}

// LastBuildCompletedAtNEQ applies the NEQ predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldLastBuildCompletedAt, v))
}

// LastBuildCompletedAtIn applies the In predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldLastBuildCompletedAt, vs...))
}

// LastBuildCompletedAtNotIn applies the NotIn predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldLastBuildCompletedAt, vs...))
}

// LastBuildCompletedAtGT applies the GT predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldLastBuildCompletedAt, v))
}

// LastBuildCompletedAtGTE applies the GTE predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldLastBuildCompletedAt, v))
}

// LastBuildCompletedAtLT applies the LT predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldLastBuildCompletedAt, v))
}

// LastBuildCompletedAtLTE applies the LTE predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldLastBuildCompletedAt, v))
}

// LastBuildCompletedAtIsNil applies the IsNil predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldLastBuildCompletedAt))
}

// LastBuildCompletedAtNotNil applies the NotNil predicate on the "last_build_completed_at" field.
func LastBuildCompletedAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldLastBuildCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBuilds applies the HasEdge predicate on the "builds" edge.
func HasBuilds() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BuildsTable, BuildsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuildsWith applies the HasEdge predicate on the "builds" edge with a given conditions (other predicates).
func HasBuildsWith(preds ...predicate.Build) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newBuildsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.Version) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOperations applies the HasEdge predicate on the "operations" edge.
func HasOperations() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OperationsTable, OperationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOperationsWith applies the HasEdge predicate on the "operations" edge with a given conditions (other predicates).
func HasOperationsWith(preds ...predicate.BuildOperation) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newOperationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
