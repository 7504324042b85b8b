// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/buildoperation"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/ent/version"
)

// ProjectCreate is the builder for creating a Project entity.
type ProjectCreate struct {
	config
	mutation *ProjectMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerID sets the "owner_id" field.
func (_c *ProjectCreate) SetOwnerID(v string) *ProjectCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProjectCreate) SetName(v string) *ProjectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableName(v *string) *ProjectCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetFramework sets the "framework" field.
func (_c *ProjectCreate) SetFramework(v string) *ProjectCreate {
	_c.mutation.SetFramework(v)
	return _c
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableFramework(v *string) *ProjectCreate {
	if v != nil {
		_c.SetFramework(*v)
	}
	return _c
}

// SetBuildStatus sets the "build_status" field.
func (_c *ProjectCreate) SetBuildStatus(v project.BuildStatus) *ProjectCreate {
	_c.mutation.SetBuildStatus(v)
	return _c
}

// SetNillableBuildStatus sets the "build_status" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableBuildStatus(v *project.BuildStatus) *ProjectCreate {
	if v != nil {
		_c.SetBuildStatus(*v)
	}
	return _c
}

// SetCurrentBuildID sets the "current_build_id" field.
func (_c *ProjectCreate) SetCurrentBuildID(v string) *ProjectCreate {
	_c.mutation.SetCurrentBuildID(v)
	return _c
}

// SetNillableCurrentBuildID sets the "current_build_id" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCurrentBuildID(v *string) *ProjectCreate {
	if v != nil {
		_c.SetCurrentBuildID(*v)
	}
	return _c
}

// SetCurrentVersionID sets the "current_version_id" field.
func (_c *ProjectCreate) SetCurrentVersionID(v string) *ProjectCreate {
	_c.mutation.SetCurrentVersionID(v)
	return _c
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCurrentVersionID(v *string) *ProjectCreate {
	if v != nil {
		_c.SetCurrentVersionID(*v)
	}
	return _c
}

// SetCurrentVersionName sets the "current_version_name" field.
func (_c *ProjectCreate) SetCurrentVersionName(v string) *ProjectCreate {
	_c.mutation.SetCurrentVersionName(v)
	return _c
}

// SetNillableCurrentVersionName sets the "current_version_name" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCurrentVersionName(v *string) *ProjectCreate {
	if v != nil {
		_c.SetCurrentVersionName(*v)
	}
	return _c
}

// SetLastAgentSessionID sets the "last_agent_session_id" field.
func (_c *ProjectCreate) SetLastAgentSessionID(v string) *ProjectCreate {
	_c.mutation.SetLastAgentSessionID(v)
	return _c
}

// SetNillableLastAgentSessionID sets the "last_agent_session_id" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableLastAgentSessionID(v *string) *ProjectCreate {
	if v != nil {
		_c.SetLastAgentSessionID(*v)
	}
	return _c
}

// SetPreviewURL sets the "preview_url" field.
func (_c *ProjectCreate) SetPreviewURL(v string) *ProjectCreate {
	_c.mutation.SetPreviewURL(v)
	return _c
}

// SetNillablePreviewURL sets the "preview_url" field if the given value is not nil.
func (_c *ProjectCreate) SetNillablePreviewURL(v *string) *ProjectCreate {
	if v != nil {
		_c.SetPreviewURL(*v)
	}
	return _c
}

// SetDeployLane sets the "deploy_lane" field.
func (_c *ProjectCreate) SetDeployLane(v string) *ProjectCreate {
	_c.mutation.SetDeployLane(v)
	return _c
}

// SetNillableDeployLane sets the "deploy_lane" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableDeployLane(v *string) *ProjectCreate {
	if v != nil {
		_c.SetDeployLane(*v)
	}
	return _c
}

// SetLastBuildStartedAt sets the "last_build_started_at" field.
func (_c *ProjectCreate) SetLastBuildStartedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetLastBuildStartedAt(v)
	return _c
}

// SetNillableLastBuildStartedAt sets the "last_build_started_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableLastBuildStartedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetLastBuildStartedAt(*v)
	}
	return _c
}

// SetLastBuildCompletedAt sets the "last_build_completed_at" field.
func (_c *ProjectCreate) SetLastBuildCompletedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetLastBuildCompletedAt(v)
	return _c
}

// SetNillableLastBuildCompletedAt sets the "last_build_completed_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableLastBuildCompletedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetLastBuildCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectCreate) SetCreatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableCreatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectCreate) SetUpdatedAt(v time.Time) *ProjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectCreate) SetNillableUpdatedAt(v *time.Time) *ProjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectCreate) SetID(v string) *ProjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddBuildIDs adds the "builds" edge to the Build entity by IDs.
func (_c *ProjectCreate) AddBuildIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddBuildIDs(ids...)
	return _c
}

// AddBuilds adds the "builds" edges to the Build entity.
func (_c *ProjectCreate) AddBuilds(v ...*Build) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBuildIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the Version entity by IDs.
func (_c *ProjectCreate) AddVersionIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the Version entity.
func (_c *ProjectCreate) AddVersions(v ...*Version) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ProjectCreate) AddMessageIDs(ids ...string) *ProjectCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ProjectCreate) AddMessages(v ...*Message) *ProjectCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddOperationIDs adds the "operations" edge to the BuildOperation entity by IDs.
func (_c *ProjectCreate) AddOperationIDs(ids ...int) *ProjectCreate {
	_c.mutation.AddOperationIDs(ids...)
	return _c
}

// AddOperations adds the "operations" edges to the BuildOperation entity.
func (_c *ProjectCreate) AddOperations(v ...*BuildOperation) *ProjectCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOperationIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_c *ProjectCreate) Mutation() *ProjectMutation {
	return _c.mutation
}

// Save creates the Project in the database.
func (_c *ProjectCreate) Save(ctx context.Context) (*Project, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectCreate) SaveX(ctx context.Context) *Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := project.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := project.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Project.owner_id"`)}
	}
	if v, ok := _c.mutation.BuildStatus(); ok {
		if err := project.BuildStatusValidator(v); err != nil {
			return &ValidationError{Name: "build_status", err: fmt.Errorf(`ent: validator failed for field "Project.build_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Project.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Project.updated_at"`)}
	}
	return nil
}

func (_c *ProjectCreate) sqlSave(ctx context.Context) (*Project, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Project.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectCreate) createSpec() (*Project, *sqlgraph.CreateSpec) {
	var (
		_node = &Project{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(project.Table, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(project.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Framework(); ok {
		_spec.SetField(project.FieldFramework, field.TypeString, value)
		_node.Framework = value
	}
	if value, ok := _c.mutation.BuildStatus(); ok {
		_spec.SetField(project.FieldBuildStatus, field.TypeEnum, value)
		_node.BuildStatus = value
	}
	if value, ok := _c.mutation.CurrentBuildID(); ok {
		_spec.SetField(project.FieldCurrentBuildID, field.TypeString, value)
		_node.CurrentBuildID = &value
	}
	if value, ok := _c.mutation.CurrentVersionID(); ok {
		_spec.SetField(project.FieldCurrentVersionID, field.TypeString, value)
		_node.CurrentVersionID = &value
	}
	if value, ok := _c.mutation.CurrentVersionName(); ok {
		_spec.SetField(project.FieldCurrentVersionName, field.TypeString, value)
		_node.CurrentVersionName = &value
	}
	if value, ok := _c.mutation.LastAgentSessionID(); ok {
		_spec.SetField(project.FieldLastAgentSessionID, field.TypeString, value)
		_node.LastAgentSessionID = &value
	}
	if value, ok := _c.mutation.PreviewURL(); ok {
		_spec.SetField(project.FieldPreviewURL, field.TypeString, value)
		_node.PreviewURL = &value
	}
	if value, ok := _c.mutation.DeployLane(); ok {
		_spec.SetField(project.FieldDeployLane, field.TypeString, value)
		_node.DeployLane = &value
	}
	if value, ok := _c.mutation.LastBuildStartedAt(); ok {
		_spec.SetField(project.FieldLastBuildStartedAt, field.TypeTime, value)
		_node.LastBuildStartedAt = &value
	}
	if value, ok := _c.mutation.LastBuildCompletedAt(); ok {
		_spec.SetField(project.FieldLastBuildCompletedAt, field.TypeTime, value)
		_node.LastBuildCompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BuildsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.BuildsTable,
			Columns: []string{project.BuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(build.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.VersionsTable,
			Columns: []string{project.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(version.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.MessagesTable,
			Columns: []string{project.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OperationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.OperationsTable,
			Columns: []string{project.OperationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(buildoperation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Project.Create().
//		SetOwnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectUpsert) {
//			SetOwnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectCreate) OnConflict(opts ...sql.ConflictOption) *ProjectUpsertOne {
	_c.conflict = opts
	return &ProjectUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectCreate) OnConflictColumns(columns ...string) *ProjectUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectUpsertOne{
		create: _c,
	}
}

type (
	// ProjectUpsertOne is the builder for "upsert"-ing
	//  one Project node.
	ProjectUpsertOne struct {
		create *ProjectCreate
	}

	// ProjectUpsert is the "OnConflict" setter.
	ProjectUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerID sets the "owner_id" field.
func (u *ProjectUpsert) SetOwnerID(v string) *ProjectUpsert {
	u.Set(project.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateOwnerID() *ProjectUpsert {
	u.SetExcluded(project.FieldOwnerID)
	return u
}

// SetName sets the "name" field.
func (u *ProjectUpsert) SetName(v string) *ProjectUpsert {
	u.Set(project.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateName() *ProjectUpsert {
	u.SetExcluded(project.FieldName)
	return u
}

// ClearName clears the value of the "name" field.
func (u *ProjectUpsert) ClearName() *ProjectUpsert {
	u.SetNull(project.FieldName)
	return u
}

// SetFramework sets the "framework" field.
func (u *ProjectUpsert) SetFramework(v string) *ProjectUpsert {
	u.Set(project.FieldFramework, v)
	return u
}

// UpdateFramework sets the "framework" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateFramework() *ProjectUpsert {
	u.SetExcluded(project.FieldFramework)
	return u
}

// ClearFramework clears the value of the "framework" field.
func (u *ProjectUpsert) ClearFramework() *ProjectUpsert {
	u.SetNull(project.FieldFramework)
	return u
}

// SetBuildStatus sets the "build_status" field.
func (u *ProjectUpsert) SetBuildStatus(v project.BuildStatus) *ProjectUpsert {
	u.Set(project.FieldBuildStatus, v)
	return u
}

// UpdateBuildStatus sets the "build_status" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateBuildStatus() *ProjectUpsert {
	u.SetExcluded(project.FieldBuildStatus)
	return u
}

// ClearBuildStatus clears the value of the "build_status" field.
func (u *ProjectUpsert) ClearBuildStatus() *ProjectUpsert {
	u.SetNull(project.FieldBuildStatus)
	return u
}

// SetCurrentBuildID sets the "current_build_id" field.
func (u *ProjectUpsert) SetCurrentBuildID(v string) *ProjectUpsert {
	u.Set(project.FieldCurrentBuildID, v)
	return u
}

// UpdateCurrentBuildID sets the "current_build_id" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateCurrentBuildID() *ProjectUpsert {
	u.SetExcluded(project.FieldCurrentBuildID)
	return u
}

// ClearCurrentBuildID clears the value of the "current_build_id" field.
func (u *ProjectUpsert) ClearCurrentBuildID() *ProjectUpsert {
	u.SetNull(project.FieldCurrentBuildID)
	return u
}

// SetCurrentVersionID sets the "current_version_id" field.
func (u *ProjectUpsert) SetCurrentVersionID(v string) *ProjectUpsert {
	u.Set(project.FieldCurrentVersionID, v)
	return u
}

// UpdateCurrentVersionID sets the "current_version_id" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateCurrentVersionID() *ProjectUpsert {
	u.SetExcluded(project.FieldCurrentVersionID)
	return u
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (u *ProjectUpsert) ClearCurrentVersionID() *ProjectUpsert {
	u.SetNull(project.FieldCurrentVersionID)
	return u
}

// SetCurrentVersionName sets the "current_version_name" field.
func (u *ProjectUpsert) SetCurrentVersionName(v string) *ProjectUpsert {
	u.Set(project.FieldCurrentVersionName, v)
	return u
}

// UpdateCurrentVersionName sets the "current_version_name" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateCurrentVersionName() *ProjectUpsert {
	u.SetExcluded(project.FieldCurrentVersionName)
	return u
}

// ClearCurrentVersionName clears the value of the "current_version_name" field.
func (u *ProjectUpsert) ClearCurrentVersionName() *ProjectUpsert {
	u.SetNull(project.FieldCurrentVersionName)
	return u
}

// SetLastAgentSessionID sets the "last_agent_session_id" field.
func (u *ProjectUpsert) SetLastAgentSessionID(v string) *ProjectUpsert {
	u.Set(project.FieldLastAgentSessionID, v)
	return u
}

// UpdateLastAgentSessionID sets the "last_agent_session_id" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateLastAgentSessionID() *ProjectUpsert {
	u.SetExcluded(project.FieldLastAgentSessionID)
	return u
}

// ClearLastAgentSessionID clears the value of the "last_agent_session_id" field.
func (u *ProjectUpsert) ClearLastAgentSessionID() *ProjectUpsert {
	u.SetNull(project.FieldLastAgentSessionID)
	return u
}

// SetPreviewURL sets the "preview_url" field.
func (u *ProjectUpsert) SetPreviewURL(v string) *ProjectUpsert {
	u.Set(project.FieldPreviewURL, v)
	return u
}

// UpdatePreviewURL sets the "preview_url" field to the value that was provided on create.
func (u *ProjectUpsert) UpdatePreviewURL() *ProjectUpsert {
	u.SetExcluded(project.FieldPreviewURL)
	return u
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (u *ProjectUpsert) ClearPreviewURL() *ProjectUpsert {
	u.SetNull(project.FieldPreviewURL)
	return u
}

// SetDeployLane sets the "deploy_lane" field.
func (u *ProjectUpsert) SetDeployLane(v string) *ProjectUpsert {
	u.Set(project.FieldDeployLane, v)
	return u
}

// UpdateDeployLane sets the "deploy_lane" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateDeployLane() *ProjectUpsert {
	u.SetExcluded(project.FieldDeployLane)
	return u
}

// ClearDeployLane clears the value of the "deploy_lane" field.
func (u *ProjectUpsert) ClearDeployLane() *ProjectUpsert {
	u.SetNull(project.FieldDeployLane)
	return u
}

// SetLastBuildStartedAt sets the "last_build_started_at" field.
func (u *ProjectUpsert) SetLastBuildStartedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldLastBuildStartedAt, v)
	return u
}

// UpdateLastBuildStartedAt sets the "last_build_started_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateLastBuildStartedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldLastBuildStartedAt)
	return u
}

// ClearLastBuildStartedAt clears the value of the "last_build_started_at" field.
func (u *ProjectUpsert) ClearLastBuildStartedAt() *ProjectUpsert {
	u.SetNull(project.FieldLastBuildStartedAt)
	return u
}

// SetLastBuildCompletedAt sets the "last_build_completed_at" field.
func (u *ProjectUpsert) SetLastBuildCompletedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldLastBuildCompletedAt, v)
	return u
}

// UpdateLastBuildCompletedAt sets the "last_build_completed_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateLastBuildCompletedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldLastBuildCompletedAt)
	return u
}

// ClearLastBuildCompletedAt clears the value of the "last_build_completed_at" field.
func (u *ProjectUpsert) ClearLastBuildCompletedAt() *ProjectUpsert {
	u.SetNull(project.FieldLastBuildCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsert) SetUpdatedAt(v time.Time) *ProjectUpsert {
	u.Set(project.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsert) UpdateUpdatedAt() *ProjectUpsert {
	u.SetExcluded(project.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(project.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectUpsertOne) UpdateNewValues() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(project.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(project.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProjectUpsertOne) Ignore() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectUpsertOne) DoNothing() *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectCreate.OnConflict
// documentation for more info.
func (u *ProjectUpsertOne) Update(set func(*ProjectUpsert)) *ProjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *ProjectUpsertOne) SetOwnerID(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateOwnerID() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateOwnerID()
	})
}

// SetName sets the "name" field.
func (u *ProjectUpsertOne) SetName(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateName() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *ProjectUpsertOne) ClearName() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearName()
	})
}

// SetFramework sets the "framework" field.
func (u *ProjectUpsertOne) SetFramework(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetFramework(v)
	})
}

// UpdateFramework sets the "framework" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateFramework() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateFramework()
	})
}

// ClearFramework clears the value of the "framework" field.
func (u *ProjectUpsertOne) ClearFramework() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearFramework()
	})
}

// SetBuildStatus sets the "build_status" field.
func (u *ProjectUpsertOne) SetBuildStatus(v project.BuildStatus) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetBuildStatus(v)
	})
}

// UpdateBuildStatus sets the "build_status" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateBuildStatus() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateBuildStatus()
	})
}

// ClearBuildStatus clears the value of the "build_status" field.
func (u *ProjectUpsertOne) ClearBuildStatus() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearBuildStatus()
	})
}

// SetCurrentBuildID sets the "current_build_id" field.
func (u *ProjectUpsertOne) SetCurrentBuildID(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCurrentBuildID(v)
	})
}

// UpdateCurrentBuildID sets the "current_build_id" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateCurrentBuildID() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCurrentBuildID()
	})
}

// ClearCurrentBuildID clears the value of the "current_build_id" field.
func (u *ProjectUpsertOne) ClearCurrentBuildID() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCurrentBuildID()
	})
}

// SetCurrentVersionID sets the "current_version_id" field.
func (u *ProjectUpsertOne) SetCurrentVersionID(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCurrentVersionID(v)
	})
}

// UpdateCurrentVersionID sets the "current_version_id" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateCurrentVersionID() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCurrentVersionID()
	})
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (u *ProjectUpsertOne) ClearCurrentVersionID() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCurrentVersionID()
	})
}

// SetCurrentVersionName sets the "current_version_name" field.
func (u *ProjectUpsertOne) SetCurrentVersionName(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCurrentVersionName(v)
	})
}

// UpdateCurrentVersionName sets the "current_version_name" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateCurrentVersionName() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCurrentVersionName()
	})
}

// ClearCurrentVersionName clears the value of the "current_version_name" field.
func (u *ProjectUpsertOne) ClearCurrentVersionName() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCurrentVersionName()
	})
}

// SetLastAgentSessionID sets the "last_agent_session_id" field.
func (u *ProjectUpsertOne) SetLastAgentSessionID(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLastAgentSessionID(v)
	})
}

// UpdateLastAgentSessionID sets the "last_agent_session_id" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateLastAgentSessionID() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLastAgentSessionID()
	})
}

// ClearLastAgentSessionID clears the value of the "last_agent_session_id" field.
func (u *ProjectUpsertOne) ClearLastAgentSessionID() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLastAgentSessionID()
	})
}

// SetPreviewURL sets the "preview_url" field.
func (u *ProjectUpsertOne) SetPreviewURL(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetPreviewURL(v)
	})
}

// UpdatePreviewURL sets the "preview_url" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdatePreviewURL() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdatePreviewURL()
	})
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (u *ProjectUpsertOne) ClearPreviewURL() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearPreviewURL()
	})
}

// SetDeployLane sets the "deploy_lane" field.
func (u *ProjectUpsertOne) SetDeployLane(v string) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDeployLane(v)
	})
}

// UpdateDeployLane sets the "deploy_lane" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateDeployLane() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDeployLane()
	})
}

// ClearDeployLane clears the value of the "deploy_lane" field.
func (u *ProjectUpsertOne) ClearDeployLane() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearDeployLane()
	})
}

// SetLastBuildStartedAt sets the "last_build_started_at" field.
func (u *ProjectUpsertOne) SetLastBuildStartedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLastBuildStartedAt(v)
	})
}

// UpdateLastBuildStartedAt sets the "last_build_started_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateLastBuildStartedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLastBuildStartedAt()
	})
}

// ClearLastBuildStartedAt clears the value of the "last_build_started_at" field.
func (u *ProjectUpsertOne) ClearLastBuildStartedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLastBuildStartedAt()
	})
}

// SetLastBuildCompletedAt sets the "last_build_completed_at" field.
func (u *ProjectUpsertOne) SetLastBuildCompletedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLastBuildCompletedAt(v)
	})
}

// UpdateLastBuildCompletedAt sets the "last_build_completed_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateLastBuildCompletedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLastBuildCompletedAt()
	})
}

// ClearLastBuildCompletedAt clears the value of the "last_build_completed_at" field.
func (u *ProjectUpsertOne) ClearLastBuildCompletedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLastBuildCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsertOne) SetUpdatedAt(v time.Time) *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsertOne) UpdateUpdatedAt() *ProjectUpsertOne {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProjectUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProjectUpsertOne.ID is not supported by MySQL driver. Use ProjectUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProjectUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProjectCreateBulk is the builder for creating many Project entities in bulk.
type ProjectCreateBulk struct {
	config
	err      error
	builders []*ProjectCreate
	conflict []sql.ConflictOption
}

// Save creates the Project entities in the database.
func (_c *ProjectCreateBulk) Save(ctx context.Context) ([]*Project, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Project, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProjectCreateBulk) SaveX(ctx context.Context) []*Project {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Project.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectUpsert) {
//			SetOwnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProjectUpsertBulk {
	_c.conflict = opts
	return &ProjectUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectCreateBulk) OnConflictColumns(columns ...string) *ProjectUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectUpsertBulk{
		create: _c,
	}
}

// ProjectUpsertBulk is the builder for "upsert"-ing
// a bulk of Project nodes.
type ProjectUpsertBulk struct {
	create *ProjectCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(project.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectUpsertBulk) UpdateNewValues() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(project.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(project.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Project.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProjectUpsertBulk) Ignore() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectUpsertBulk) DoNothing() *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectCreateBulk.OnConflict
// documentation for more info.
func (u *ProjectUpsertBulk) Update(set func(*ProjectUpsert)) *ProjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *ProjectUpsertBulk) SetOwnerID(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateOwnerID() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateOwnerID()
	})
}

// SetName sets the "name" field.
func (u *ProjectUpsertBulk) SetName(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateName() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateName()
	})
}

// ClearName clears the value of the "name" field.
func (u *ProjectUpsertBulk) ClearName() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearName()
	})
}

// SetFramework sets the "framework" field.
func (u *ProjectUpsertBulk) SetFramework(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetFramework(v)
	})
}

// UpdateFramework sets the "framework" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateFramework() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateFramework()
	})
}

// ClearFramework clears the value of the "framework" field.
func (u *ProjectUpsertBulk) ClearFramework() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearFramework()
	})
}

// SetBuildStatus sets the "build_status" field.
func (u *ProjectUpsertBulk) SetBuildStatus(v project.BuildStatus) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetBuildStatus(v)
	})
}

// UpdateBuildStatus sets the "build_status" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateBuildStatus() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateBuildStatus()
	})
}

// ClearBuildStatus clears the value of the "build_status" field.
func (u *ProjectUpsertBulk) ClearBuildStatus() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearBuildStatus()
	})
}

// SetCurrentBuildID sets the "current_build_id" field.
func (u *ProjectUpsertBulk) SetCurrentBuildID(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCurrentBuildID(v)
	})
}

// UpdateCurrentBuildID sets the "current_build_id" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateCurrentBuildID() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCurrentBuildID()
	})
}

// ClearCurrentBuildID clears the value of the "current_build_id" field.
func (u *ProjectUpsertBulk) ClearCurrentBuildID() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCurrentBuildID()
	})
}

// SetCurrentVersionID sets the "current_version_id" field.
func (u *ProjectUpsertBulk) SetCurrentVersionID(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCurrentVersionID(v)
	})
}

// UpdateCurrentVersionID sets the "current_version_id" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateCurrentVersionID() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCurrentVersionID()
	})
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (u *ProjectUpsertBulk) ClearCurrentVersionID() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCurrentVersionID()
	})
}

// SetCurrentVersionName sets the "current_version_name" field.
func (u *ProjectUpsertBulk) SetCurrentVersionName(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetCurrentVersionName(v)
	})
}

// UpdateCurrentVersionName sets the "current_version_name" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateCurrentVersionName() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateCurrentVersionName()
	})
}

// ClearCurrentVersionName clears the value of the "current_version_name" field.
func (u *ProjectUpsertBulk) ClearCurrentVersionName() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearCurrentVersionName()
	})
}

// SetLastAgentSessionID sets the "last_agent_session_id" field.
func (u *ProjectUpsertBulk) SetLastAgentSessionID(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLastAgentSessionID(v)
	})
}

// UpdateLastAgentSessionID sets the "last_agent_session_id" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateLastAgentSessionID() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLastAgentSessionID()
	})
}

// ClearLastAgentSessionID clears the value of the "last_agent_session_id" field.
func (u *ProjectUpsertBulk) ClearLastAgentSessionID() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLastAgentSessionID()
	})
}

// SetPreviewURL sets the "preview_url" field.
func (u *ProjectUpsertBulk) SetPreviewURL(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetPreviewURL(v)
	})
}

// UpdatePreviewURL sets the "preview_url" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdatePreviewURL() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdatePreviewURL()
	})
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (u *ProjectUpsertBulk) ClearPreviewURL() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearPreviewURL()
	})
}

// SetDeployLane sets the "deploy_lane" field.
func (u *ProjectUpsertBulk) SetDeployLane(v string) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetDeployLane(v)
	})
}

// UpdateDeployLane sets the "deploy_lane" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateDeployLane() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateDeployLane()
	})
}

// ClearDeployLane clears the value of the "deploy_lane" field.
func (u *ProjectUpsertBulk) ClearDeployLane() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearDeployLane()
	})
}

// SetLastBuildStartedAt sets the "last_build_started_at" field.
func (u *ProjectUpsertBulk) SetLastBuildStartedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLastBuildStartedAt(v)
	})
}

// UpdateLastBuildStartedAt sets the "last_build_started_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateLastBuildStartedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLastBuildStartedAt()
	})
}

// ClearLastBuildStartedAt clears the value of the "last_build_started_at" field.
func (u *ProjectUpsertBulk) ClearLastBuildStartedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLastBuildStartedAt()
	})
}

// SetLastBuildCompletedAt sets the "last_build_completed_at" field.
func (u *ProjectUpsertBulk) SetLastBuildCompletedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetLastBuildCompletedAt(v)
	})
}

// UpdateLastBuildCompletedAt sets the "last_build_completed_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateLastBuildCompletedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateLastBuildCompletedAt()
	})
}

// ClearLastBuildCompletedAt clears the value of the "last_build_completed_at" field.
func (u *ProjectUpsertBulk) ClearLastBuildCompletedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.ClearLastBuildCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectUpsertBulk) SetUpdatedAt(v time.Time) *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectUpsertBulk) UpdateUpdatedAt() *ProjectUpsertBulk {
	return u.Update(func(s *ProjectUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProjectCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
