// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/buildoperation"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/ent/predicate"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/ent/version"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ProjectUpdate) SetOwnerID(v string) *ProjectUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableOwnerID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ProjectUpdate) ClearName() *ProjectUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetFramework sets the "framework" field.
func (_u *ProjectUpdate) SetFramework(v string) *ProjectUpdate {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableFramework(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// ClearFramework clears the value of the "framework" field.
func (_u *ProjectUpdate) ClearFramework() *ProjectUpdate {
	_u.mutation.ClearFramework()
	return _u
}

// SetBuildStatus sets the "build_status" field.
func (_u *ProjectUpdate) SetBuildStatus(v project.BuildStatus) *ProjectUpdate {
	_u.mutation.SetBuildStatus(v)
	return _u
}

// SetNillableBuildStatus sets the "build_status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableBuildStatus(v *project.BuildStatus) *ProjectUpdate {
	if v != nil {
		_u.SetBuildStatus(*v)
	}
	return _u
}

// ClearBuildStatus clears the value of the "build_status" field.
func (_u *ProjectUpdate) ClearBuildStatus() *ProjectUpdate {
	_u.mutation.ClearBuildStatus()
	return _u
}

// SetCurrentBuildID sets the "current_build_id" field.
func (_u *ProjectUpdate) SetCurrentBuildID(v string) *ProjectUpdate {
	_u.mutation.SetCurrentBuildID(v)
	return _u
}

// SetNillableCurrentBuildID sets the "current_build_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCurrentBuildID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetCurrentBuildID(*v)
	}
	return _u
}

// ClearCurrentBuildID clears the value of the "current_build_id" field.
func (_u *ProjectUpdate) ClearCurrentBuildID() *ProjectUpdate {
	_u.mutation.ClearCurrentBuildID()
	return _u
}

// SetCurrentVersionID sets the "current_version_id" field.
func (_u *ProjectUpdate) SetCurrentVersionID(v string) *ProjectUpdate {
	_u.mutation.SetCurrentVersionID(v)
	return _u
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCurrentVersionID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetCurrentVersionID(*v)
	}
	return _u
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (_u *ProjectUpdate) ClearCurrentVersionID() *ProjectUpdate {
	_u.mutation.ClearCurrentVersionID()
	return _u
}

// SetCurrentVersionName sets the "current_version_name" field.
func (_u *ProjectUpdate) SetCurrentVersionName(v string) *ProjectUpdate {
	_u.mutation.SetCurrentVersionName(v)
	return _u
}

// SetNillableCurrentVersionName sets the "current_version_name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCurrentVersionName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetCurrentVersionName(*v)
	}
	return _u
}

// ClearCurrentVersionName clears the value of the "current_version_name" field.
func (_u *ProjectUpdate) ClearCurrentVersionName() *ProjectUpdate {
	_u.mutation.ClearCurrentVersionName()
	return _u
}

// SetLastAgentSessionID sets the "last_agent_session_id" field.
func (_u *ProjectUpdate) SetLastAgentSessionID(v string) *ProjectUpdate {
	_u.mutation.SetLastAgentSessionID(v)
	return _u
}

// SetNillableLastAgentSessionID sets the "last_agent_session_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableLastAgentSessionID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetLastAgentSessionID(*v)
	}
	return _u
}

// ClearLastAgentSessionID clears the value of the "last_agent_session_id" field.
func (_u *ProjectUpdate) ClearLastAgentSessionID() *ProjectUpdate {
	_u.mutation.ClearLastAgentSessionID()
	return _u
}

// SetPreviewURL sets the "preview_url" field.
func (_u *ProjectUpdate) SetPreviewURL(v string) *ProjectUpdate {
	_u.mutation.SetPreviewURL(v)
	return _u
}

// SetNillablePreviewURL sets the "preview_url" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillablePreviewURL(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetPreviewURL(*v)
	}
	return _u
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (_u *ProjectUpdate) ClearPreviewURL() *ProjectUpdate {
	_u.mutation.ClearPreviewURL()
	return _u
}

// SetDeployLane sets the "deploy_lane" field.
func (_u *ProjectUpdate) SetDeployLane(v string) *ProjectUpdate {
	_u.mutation.SetDeployLane(v)
	return _u
}

// SetNillableDeployLane sets the "deploy_lane" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDeployLane(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetDeployLane(*v)
	}
	return _u
}

// ClearDeployLane clears the value of the "deploy_lane" field.
func (_u *ProjectUpdate) ClearDeployLane() *ProjectUpdate {
	_u.mutation.ClearDeployLane()
	return _u
}

// SetLastBuildStartedAt sets the "last_build_started_at" field.
func (_u *ProjectUpdate) SetLastBuildStartedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetLastBuildStartedAt(v)
	return _u
}

// SetNillableLastBuildStartedAt sets the "last_build_started_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableLastBuildStartedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetLastBuildStartedAt(*v)
	}
	return _u
}

// ClearLastBuildStartedAt clears the value of the "last_build_started_at" field.
func (_u *ProjectUpdate) ClearLastBuildStartedAt() *ProjectUpdate {
	_u.mutation.ClearLastBuildStartedAt()
	return _u
}

// SetLastBuildCompletedAt sets the "last_build_completed_at" field.
func (_u *ProjectUpdate) SetLastBuildCompletedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetLastBuildCompletedAt(v)
	return _u
}

// SetNillableLastBuildCompletedAt sets the "last_build_completed_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableLastBuildCompletedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetLastBuildCompletedAt(*v)
	}
	return _u
}

// ClearLastBuildCompletedAt clears the value of the "last_build_completed_at" field.
func (_u *ProjectUpdate) ClearLastBuildCompletedAt() *ProjectUpdate {
	_u.mutation.ClearLastBuildCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBuildIDs adds the "builds" edge to the Build entity by IDs.
func (_u *ProjectUpdate) AddBuildIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddBuildIDs(ids...)
	return _u
}

// AddBuilds adds the "builds" edges to the Build entity.
func (_u *ProjectUpdate) AddBuilds(v ...*Build) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBuildIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the Version entity by IDs.
func (_u *ProjectUpdate) AddVersionIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the Version entity.
func (_u *ProjectUpdate) AddVersions(v ...*Version) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ProjectUpdate) AddMessageIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ProjectUpdate) AddMessages(v ...*Message) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddOperationIDs adds the "operations" edge to the BuildOperation entity by IDs.
func (_u *ProjectUpdate) AddOperationIDs(ids ...int) *ProjectUpdate {
	_u.mutation.AddOperationIDs(ids...)
	return _u
}

// AddOperations adds the "operations" edges to the BuildOperation entity.
func (_u *ProjectUpdate) AddOperations(v ...*BuildOperation) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearBuilds clears all "builds" edges to the Build entity.
func (_u *ProjectUpdate) ClearBuilds() *ProjectUpdate {
	_u.mutation.ClearBuilds()
	return _u
}

// RemoveBuildIDs removes the "builds" edge to Build entities by IDs.
func (_u *ProjectUpdate) RemoveBuildIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveBuildIDs(ids...)
	return _u
}

// RemoveBuilds removes "builds" edges to Build entities.
func (_u *ProjectUpdate) RemoveBuilds(v ...*Build) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBuildIDs(ids...)
}

// ClearVersions clears all "versions" edges to the Version entity.
func (_u *ProjectUpdate) ClearVersions() *ProjectUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to Version entities by IDs.
func (_u *ProjectUpdate) RemoveVersionIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to Version entities.
func (_u *ProjectUpdate) RemoveVersions(v ...*Version) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ProjectUpdate) ClearMessages() *ProjectUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ProjectUpdate) RemoveMessageIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ProjectUpdate) RemoveMessages(v ...*Message) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearOperations clears all "operations" edges to the BuildOperation entity.
func (_u *ProjectUpdate) ClearOperations() *ProjectUpdate {
	_u.mutation.ClearOperations()
	return _u
}

// RemoveOperationIDs removes the "operations" edge to BuildOperation entities by IDs.
func (_u *ProjectUpdate) RemoveOperationIDs(ids ...int) *ProjectUpdate {
	_u.mutation.RemoveOperationIDs(ids...)
	return _u
}

// RemoveOperations removes "operations" edges to BuildOperation entities.
func (_u *ProjectUpdate) RemoveOperations(v ...*BuildOperation) *ProjectUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.BuildStatus(); ok {
		if err := project.BuildStatusValidator(v); err != nil {
			return &ValidationError{Name: "build_status", err: fmt.Errorf(`ent: validator failed for field "Project.build_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(project.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(project.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(project.FieldFramework, field.TypeString, value)
	}
	if _u.mutation.FrameworkCleared() {
		_spec.ClearField(project.FieldFramework, field.TypeString)
	}
	if value, ok := _u.mutation.BuildStatus(); ok {
		_spec.SetField(project.FieldBuildStatus, field.TypeEnum, value)
	}
	if _u.mutation.BuildStatusCleared() {
		_spec.ClearField(project.FieldBuildStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.CurrentBuildID(); ok {
		_spec.SetField(project.FieldCurrentBuildID, field.TypeString, value)
	}
	if _u.mutation.CurrentBuildIDCleared() {
		_spec.ClearField(project.FieldCurrentBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentVersionID(); ok {
		_spec.SetField(project.FieldCurrentVersionID, field.TypeString, value)
	}
	if _u.mutation.CurrentVersionIDCleared() {
		_spec.ClearField(project.FieldCurrentVersionID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentVersionName(); ok {
		_spec.SetField(project.FieldCurrentVersionName, field.TypeString, value)
	}
	if _u.mutation.CurrentVersionNameCleared() {
		_spec.ClearField(project.FieldCurrentVersionName, field.TypeString)
	}
	if value, ok := _u.mutation.LastAgentSessionID(); ok {
		_spec.SetField(project.FieldLastAgentSessionID, field.TypeString, value)
	}
	if _u.mutation.LastAgentSessionIDCleared() {
		_spec.ClearField(project.FieldLastAgentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PreviewURL(); ok {
		_spec.SetField(project.FieldPreviewURL, field.TypeString, value)
	}
	if _u.mutation.PreviewURLCleared() {
		_spec.ClearField(project.FieldPreviewURL, field.TypeString)
	}
	if value, ok := _u.mutation.DeployLane(); ok {
		_spec.SetField(project.FieldDeployLane, field.TypeString, value)
	}
	if _u.mutation.DeployLaneCleared() {
		_spec.ClearField(project.FieldDeployLane, field.TypeString)
	}
	if value, ok := _u.mutation.LastBuildStartedAt(); ok {
		_spec.SetField(project.FieldLastBuildStartedAt, field.TypeTime, value)
	}
	if _u.mutation.LastBuildStartedAtCleared() {
		_spec.ClearField(project.FieldLastBuildStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastBuildCompletedAt(); ok {
		_spec.SetField(project.FieldLastBuildCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.LastBuildCompletedAtCleared() {
		_spec.ClearField(project.FieldLastBuildCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BuildsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBuildsIDs(); len(nodes) > 0 && !_u.mutation.BuildsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuildsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationsIDs(); len(nodes) > 0 && !_u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *ProjectUpdateOne) SetOwnerID(v string) *ProjectUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableOwnerID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ProjectUpdateOne) ClearName() *ProjectUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetFramework sets the "framework" field.
func (_u *ProjectUpdateOne) SetFramework(v string) *ProjectUpdateOne {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableFramework(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// ClearFramework clears the value of the "framework" field.
func (_u *ProjectUpdateOne) ClearFramework() *ProjectUpdateOne {
	_u.mutation.ClearFramework()
	return _u
}

// SetBuildStatus sets the "build_status" field.
func (_u *ProjectUpdateOne) SetBuildStatus(v project.BuildStatus) *ProjectUpdateOne {
	_u.mutation.SetBuildStatus(v)
	return _u
}

// SetNillableBuildStatus sets the "build_status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableBuildStatus(v *project.BuildStatus) *ProjectUpdateOne {
	if v != nil {
		_u.SetBuildStatus(*v)
	}
	return _u
}

// ClearBuildStatus clears the value of the "build_status" field.
func (_u *ProjectUpdateOne) ClearBuildStatus() *ProjectUpdateOne {
	_u.mutation.ClearBuildStatus()
	return _u
}

// SetCurrentBuildID sets the "current_build_id" field.
func (_u *ProjectUpdateOne) SetCurrentBuildID(v string) *ProjectUpdateOne {
	_u.mutation.SetCurrentBuildID(v)
	return _u
}

// SetNillableCurrentBuildID sets the "current_build_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCurrentBuildID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetCurrentBuildID(*v)
	}
	return _u
}

// ClearCurrentBuildID clears the value of the "current_build_id" field.
func (_u *ProjectUpdateOne) ClearCurrentBuildID() *ProjectUpdateOne {
	_u.mutation.ClearCurrentBuildID()
	return _u
}

// SetCurrentVersionID sets the "current_version_id" field.
func (_u *ProjectUpdateOne) SetCurrentVersionID(v string) *ProjectUpdateOne {
	_u.mutation.SetCurrentVersionID(v)
	return _u
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCurrentVersionID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetCurrentVersionID(*v)
	}
	return _u
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (_u *ProjectUpdateOne) ClearCurrentVersionID() *ProjectUpdateOne {
	_u.mutation.ClearCurrentVersionID()
	return _u
}

// SetCurrentVersionName sets the "current_version_name" field.
func (_u *ProjectUpdateOne) SetCurrentVersionName(v string) *ProjectUpdateOne {
	_u.mutation.SetCurrentVersionName(v)
	return _u
}

// SetNillableCurrentVersionName sets the "current_version_name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCurrentVersionName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetCurrentVersionName(*v)
	}
	return _u
}

// ClearCurrentVersionName clears the value of the "current_version_name" field.
func (_u *ProjectUpdateOne) ClearCurrentVersionName() *ProjectUpdateOne {
	_u.mutation.ClearCurrentVersionName()
	return _u
}

// SetLastAgentSessionID sets the "last_agent_session_id" field.
func (_u *ProjectUpdateOne) SetLastAgentSessionID(v string) *ProjectUpdateOne {
	_u.mutation.SetLastAgentSessionID(v)
	return _u
}

// SetNillableLastAgentSessionID sets the "last_agent_session_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableLastAgentSessionID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetLastAgentSessionID(*v)
	}
	return _u
}

// ClearLastAgentSessionID clears the value of the "last_agent_session_id" field.
func (_u *ProjectUpdateOne) ClearLastAgentSessionID() *ProjectUpdateOne {
	_u.mutation.ClearLastAgentSessionID()
	return _u
}

// SetPreviewURL sets the "preview_url" field.
func (_u *ProjectUpdateOne) SetPreviewURL(v string) *ProjectUpdateOne {
	_u.mutation.SetPreviewURL(v)
	return _u
}

// SetNillablePreviewURL sets the "preview_url" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillablePreviewURL(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetPreviewURL(*v)
	}
	return _u
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (_u *ProjectUpdateOne) ClearPreviewURL() *ProjectUpdateOne {
	_u.mutation.ClearPreviewURL()
	return _u
}

// SetDeployLane sets the "deploy_lane" field.
func (_u *ProjectUpdateOne) SetDeployLane(v string) *ProjectUpdateOne {
	_u.mutation.SetDeployLane(v)
	return _u
}

// SetNillableDeployLane sets the "deploy_lane" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDeployLane(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetDeployLane(*v)
	}
	return _u
}

// ClearDeployLane clears the value of the "deploy_lane" field.
func (_u *ProjectUpdateOne) ClearDeployLane() *ProjectUpdateOne {
	_u.mutation.ClearDeployLane()
	return _u
}

// SetLastBuildStartedAt sets the "last_build_started_at" field.
func (_u *ProjectUpdateOne) SetLastBuildStartedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetLastBuildStartedAt(v)
	return _u
}

// SetNillableLastBuildStartedAt sets the "last_build_started_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableLastBuildStartedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetLastBuildStartedAt(*v)
	}
	return _u
}

// ClearLastBuildStartedAt clears the value of the "last_build_started_at" field.
func (_u *ProjectUpdateOne) ClearLastBuildStartedAt() *ProjectUpdateOne {
	_u.mutation.ClearLastBuildStartedAt()
	return _u
}

// SetLastBuildCompletedAt sets the "last_build_completed_at" field.
func (_u *ProjectUpdateOne) SetLastBuildCompletedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetLastBuildCompletedAt(v)
	return _u
}

// SetNillableLastBuildCompletedAt sets the "last_build_completed_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableLastBuildCompletedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetLastBuildCompletedAt(*v)
	}
	return _u
}

// ClearLastBuildCompletedAt clears the value of the "last_build_completed_at" field.
func (_u *ProjectUpdateOne) ClearLastBuildCompletedAt() *ProjectUpdateOne {
	_u.mutation.ClearLastBuildCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBuildIDs adds the "builds" edge to the Build entity by IDs.
func (_u *ProjectUpdateOne) AddBuildIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddBuildIDs(ids...)
	return _u
}

// AddBuilds adds the "builds" edges to the Build entity.
func (_u *ProjectUpdateOne) AddBuilds(v ...*Build) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBuildIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the Version entity by IDs.
func (_u *ProjectUpdateOne) AddVersionIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the Version entity.
func (_u *ProjectUpdateOne) AddVersions(v ...*Version) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ProjectUpdateOne) AddMessageIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ProjectUpdateOne) AddMessages(v ...*Message) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddOperationIDs adds the "operations" edge to the BuildOperation entity by IDs.
func (_u *ProjectUpdateOne) AddOperationIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.AddOperationIDs(ids...)
	return _u
}

// AddOperations adds the "operations" edges to the BuildOperation entity.
func (_u *ProjectUpdateOne) AddOperations(v ...*BuildOperation) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearBuilds clears all "builds" edges to the Build entity.
func (_u *ProjectUpdateOne) ClearBuilds() *ProjectUpdateOne {
	_u.mutation.ClearBuilds()
	return _u
}

// RemoveBuildIDs removes the "builds" edge to Build entities by IDs.
func (_u *ProjectUpdateOne) RemoveBuildIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveBuildIDs(ids...)
	return _u
}

// RemoveBuilds removes "builds" edges to Build entities.
func (_u *ProjectUpdateOne) RemoveBuilds(v ...*Build) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBuildIDs(ids...)
}

// ClearVersions clears all "versions" edges to the Version entity.
func (_u *ProjectUpdateOne) ClearVersions() *ProjectUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to Version entities by IDs.
func (_u *ProjectUpdateOne) RemoveVersionIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to Version entities.
func (_u *ProjectUpdateOne) RemoveVersions(v ...*Version) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ProjectUpdateOne) ClearMessages() *ProjectUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ProjectUpdateOne) RemoveMessageIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ProjectUpdateOne) RemoveMessages(v ...*Message) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearOperations clears all "operations" edges to the BuildOperation entity.
func (_u *ProjectUpdateOne) ClearOperations() *ProjectUpdateOne {
	_u.mutation.ClearOperations()
	return _u
}

// RemoveOperationIDs removes the "operations" edge to BuildOperation entities by IDs.
func (_u *ProjectUpdateOne) RemoveOperationIDs(ids ...int) *ProjectUpdateOne {
	_u.mutation.RemoveOperationIDs(ids...)
	return _u
}

// RemoveOperations removes "operations" edges to BuildOperation entities.
func (_u *ProjectUpdateOne) RemoveOperations(v ...*BuildOperation) *ProjectUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.BuildStatus(); ok {
		if err := project.BuildStatusValidator(v); err != nil {
			return &ValidationError{Name: "build_status", err: fmt.Errorf(`ent: validator failed for field "Project.build_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(project.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(project.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(project.FieldFramework, field.TypeString, value)
	}
	if _u.mutation.FrameworkCleared() {
		_spec.ClearField(project.FieldFramework, field.TypeString)
	}
	if value, ok := _u.mutation.BuildStatus(); ok {
		_spec.SetField(project.FieldBuildStatus, field.TypeEnum, value)
	}
	if _u.mutation.BuildStatusCleared() {
		_spec.ClearField(project.FieldBuildStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.CurrentBuildID(); ok {
		_spec.SetField(project.FieldCurrentBuildID, field.TypeString, value)
	}
	if _u.mutation.CurrentBuildIDCleared() {
		_spec.ClearField(project.FieldCurrentBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentVersionID(); ok {
		_spec.SetField(project.FieldCurrentVersionID, field.TypeString, value)
	}
	if _u.mutation.CurrentVersionIDCleared() {
		_spec.ClearField(project.FieldCurrentVersionID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentVersionName(); ok {
		_spec.SetField(project.FieldCurrentVersionName, field.TypeString, value)
	}
	if _u.mutation.CurrentVersionNameCleared() {
		_spec.ClearField(project.FieldCurrentVersionName, field.TypeString)
	}
	if value, ok := _u.mutation.LastAgentSessionID(); ok {
		_spec.SetField(project.FieldLastAgentSessionID, field.TypeString, value)
	}
	if _u.mutation.LastAgentSessionIDCleared() {
		_spec.ClearField(project.FieldLastAgentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PreviewURL(); ok {
		_spec.SetField(project.FieldPreviewURL, field.TypeString, value)
	}
	if _u.mutation.PreviewURLCleared() {
		_spec.ClearField(project.FieldPreviewURL, field.TypeString)
	}
	if value, ok := _u.mutation.DeployLane(); ok {
		_spec.SetField(project.FieldDeployLane, field.TypeString, value)
	}
	if _u.mutation.DeployLaneCleared() {
		_spec.ClearField(project.FieldDeployLane, field.TypeString)
	}
	if value, ok := _u.mutation.LastBuildStartedAt(); ok {
		_spec.SetField(project.FieldLastBuildStartedAt, field.TypeTime, value)
	}
	if _u.mutation.LastBuildStartedAtCleared() {
		_spec.ClearField(project.FieldLastBuildStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastBuildCompletedAt(); ok {
		_spec.SetField(project.FieldLastBuildCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.LastBuildCompletedAtCleared() {
		_spec.ClearField(project.FieldLastBuildCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BuildsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBuildsIDs(); len(nodes) > 0 && !_u.mutation.BuildsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuildsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationsIDs(); len(nodes) > 0 && !_u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
