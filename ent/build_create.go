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
	"github.com/appforge/forge/ent/checkpoint"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/ent/version"
)

// BuildCreate is the builder for creating a Build entity.
type BuildCreate struct {
	config
	mutation *BuildMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *BuildCreate) SetProjectID(v string) *BuildCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BuildCreate) SetUserID(v string) *BuildCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BuildCreate) SetStatus(v build.Status) *BuildCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BuildCreate) SetNillableStatus(v *build.Status) *BuildCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *BuildCreate) SetAttempt(v int) *BuildCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *BuildCreate) SetNillableAttempt(v *int) *BuildCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_c *BuildCreate) SetAgentSessionID(v string) *BuildCreate {
	_c.mutation.SetAgentSessionID(v)
	return _c
}

// SetNillableAgentSessionID sets the "agent_session_id" field if the given value is not nil.
func (_c *BuildCreate) SetNillableAgentSessionID(v *string) *BuildCreate {
	if v != nil {
		_c.SetAgentSessionID(*v)
	}
	return _c
}

// SetIsInitialBuild sets the "is_initial_build" field.
func (_c *BuildCreate) SetIsInitialBuild(v bool) *BuildCreate {
	_c.mutation.SetIsInitialBuild(v)
	return _c
}

// SetNillableIsInitialBuild sets the "is_initial_build" field if the given value is not nil.
func (_c *BuildCreate) SetNillableIsInitialBuild(v *bool) *BuildCreate {
	if v != nil {
		_c.SetIsInitialBuild(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *BuildCreate) SetPrompt(v string) *BuildCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *BuildCreate) SetNillablePrompt(v *string) *BuildCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *BuildCreate) SetStartedAt(v time.Time) *BuildCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *BuildCreate) SetNillableStartedAt(v *time.Time) *BuildCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BuildCreate) SetCompletedAt(v time.Time) *BuildCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BuildCreate) SetNillableCompletedAt(v *time.Time) *BuildCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *BuildCreate) SetErrorType(v string) *BuildCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *BuildCreate) SetNillableErrorType(v *string) *BuildCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BuildCreate) SetErrorMessage(v string) *BuildCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BuildCreate) SetNillableErrorMessage(v *string) *BuildCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BuildCreate) SetID(v string) *BuildCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *BuildCreate) SetProject(v *Project) *BuildCreate {
	return _c.SetProjectID(v.ID)
}

// SetVersionID sets the "version" edge to the Version entity by ID.
func (_c *BuildCreate) SetVersionID(id string) *BuildCreate {
	_c.mutation.SetVersionID(id)
	return _c
}

// SetNillableVersionID sets the "version" edge to the Version entity by ID if the given value is not nil.
func (_c *BuildCreate) SetNillableVersionID(id *string) *BuildCreate {
	if id != nil {
		_c = _c.SetVersionID(*id)
	}
	return _c
}

// SetVersion sets the "version" edge to the Version entity.
func (_c *BuildCreate) SetVersion(v *Version) *BuildCreate {
	return _c.SetVersionID(v.ID)
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_c *BuildCreate) SetCheckpointID(id int) *BuildCreate {
	_c.mutation.SetCheckpointID(id)
	return _c
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_c *BuildCreate) SetNillableCheckpointID(id *int) *BuildCreate {
	if id != nil {
		_c = _c.SetCheckpointID(*id)
	}
	return _c
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_c *BuildCreate) SetCheckpoint(v *Checkpoint) *BuildCreate {
	return _c.SetCheckpointID(v.ID)
}

// Mutation returns the BuildMutation object of the builder.
func (_c *BuildCreate) Mutation() *BuildMutation {
	return _c.mutation
}

// Save creates the Build in the database.
func (_c *BuildCreate) Save(ctx context.Context) (*Build, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BuildCreate) SaveX(ctx context.Context) *Build {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BuildCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := build.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := build.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.IsInitialBuild(); !ok {
		v := build.DefaultIsInitialBuild
		_c.mutation.SetIsInitialBuild(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := build.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BuildCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Build.project_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Build.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Build.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := build.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Build.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "Build.attempt"`)}
	}
	if _, ok := _c.mutation.IsInitialBuild(); !ok {
		return &ValidationError{Name: "is_initial_build", err: errors.New(`ent: missing required field "Build.is_initial_build"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Build.started_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := build.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Build.id": %w`, err)}
		}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Build.project"`)}
	}
	return nil
}

func (_c *BuildCreate) sqlSave(ctx context.Context) (*Build, error) {
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
			return nil, fmt.Errorf("unexpected Build.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BuildCreate) createSpec() (*Build, *sqlgraph.CreateSpec) {
	var (
		_node = &Build{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(build.Table, sqlgraph.NewFieldSpec(build.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(build.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(build.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(build.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.AgentSessionID(); ok {
		_spec.SetField(build.FieldAgentSessionID, field.TypeString, value)
		_node.AgentSessionID = &value
	}
	if value, ok := _c.mutation.IsInitialBuild(); ok {
		_spec.SetField(build.FieldIsInitialBuild, field.TypeBool, value)
		_node.IsInitialBuild = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(build.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(build.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(build.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(build.FieldErrorType, field.TypeString, value)
		_node.ErrorType = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(build.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   build.ProjectTable,
			Columns: []string{build.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   build.VersionTable,
			Columns: []string{build.VersionColumn},
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
	if nodes := _c.mutation.CheckpointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   build.CheckpointTable,
			Columns: []string{build.CheckpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt),
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
//	client.Build.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildCreate) OnConflict(opts ...sql.ConflictOption) *BuildUpsertOne {
	_c.conflict = opts
	return &BuildUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Build.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildCreate) OnConflictColumns(columns ...string) *BuildUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildUpsertOne{
		create: _c,
	}
}

type (
	// BuildUpsertOne is the builder for "upsert"-ing
	//  one Build node.
	BuildUpsertOne struct {
		create *BuildCreate
	}

	// BuildUpsert is the "OnConflict" setter.
	BuildUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *BuildUpsert) SetStatus(v build.Status) *BuildUpsert {
	u.Set(build.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BuildUpsert) UpdateStatus() *BuildUpsert {
	u.SetExcluded(build.FieldStatus)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *BuildUpsert) SetAttempt(v int) *BuildUpsert {
	u.Set(build.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *BuildUpsert) UpdateAttempt() *BuildUpsert {
	u.SetExcluded(build.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *BuildUpsert) AddAttempt(v int) *BuildUpsert {
	u.Add(build.FieldAttempt, v)
	return u
}

// SetAgentSessionID sets the "agent_session_id" field.
func (u *BuildUpsert) SetAgentSessionID(v string) *BuildUpsert {
	u.Set(build.FieldAgentSessionID, v)
	return u
}

// UpdateAgentSessionID sets the "agent_session_id" field to the value that was provided on create.
func (u *BuildUpsert) UpdateAgentSessionID() *BuildUpsert {
	u.SetExcluded(build.FieldAgentSessionID)
	return u
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (u *BuildUpsert) ClearAgentSessionID() *BuildUpsert {
	u.SetNull(build.FieldAgentSessionID)
	return u
}

// SetIsInitialBuild sets the "is_initial_build" field.
func (u *BuildUpsert) SetIsInitialBuild(v bool) *BuildUpsert {
	u.Set(build.FieldIsInitialBuild, v)
	return u
}

// UpdateIsInitialBuild sets the "is_initial_build" field to the value that was provided on create.
func (u *BuildUpsert) UpdateIsInitialBuild() *BuildUpsert {
	u.SetExcluded(build.FieldIsInitialBuild)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *BuildUpsert) SetPrompt(v string) *BuildUpsert {
	u.Set(build.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *BuildUpsert) UpdatePrompt() *BuildUpsert {
	u.SetExcluded(build.FieldPrompt)
	return u
}

// ClearPrompt clears the value of the "prompt" field.
func (u *BuildUpsert) ClearPrompt() *BuildUpsert {
	u.SetNull(build.FieldPrompt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *BuildUpsert) SetStartedAt(v time.Time) *BuildUpsert {
	u.Set(build.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *BuildUpsert) UpdateStartedAt() *BuildUpsert {
	u.SetExcluded(build.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *BuildUpsert) SetCompletedAt(v time.Time) *BuildUpsert {
	u.Set(build.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BuildUpsert) UpdateCompletedAt() *BuildUpsert {
	u.SetExcluded(build.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BuildUpsert) ClearCompletedAt() *BuildUpsert {
	u.SetNull(build.FieldCompletedAt)
	return u
}

// SetErrorType sets the "error_type" field.
func (u *BuildUpsert) SetErrorType(v string) *BuildUpsert {
	u.Set(build.FieldErrorType, v)
	return u
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *BuildUpsert) UpdateErrorType() *BuildUpsert {
	u.SetExcluded(build.FieldErrorType)
	return u
}

// ClearErrorType clears the value of the "error_type" field.
func (u *BuildUpsert) ClearErrorType() *BuildUpsert {
	u.SetNull(build.FieldErrorType)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *BuildUpsert) SetErrorMessage(v string) *BuildUpsert {
	u.Set(build.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *BuildUpsert) UpdateErrorMessage() *BuildUpsert {
	u.SetExcluded(build.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *BuildUpsert) ClearErrorMessage() *BuildUpsert {
	u.SetNull(build.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Build.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(build.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildUpsertOne) UpdateNewValues() *BuildUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(build.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(build.FieldProjectID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(build.FieldUserID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Build.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BuildUpsertOne) Ignore() *BuildUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildUpsertOne) DoNothing() *BuildUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildCreate.OnConflict
// documentation for more info.
func (u *BuildUpsertOne) Update(set func(*BuildUpsert)) *BuildUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *BuildUpsertOne) SetStatus(v build.Status) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BuildUpsertOne) UpdateStatus() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempt sets the "attempt" field.
func (u *BuildUpsertOne) SetAttempt(v int) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *BuildUpsertOne) AddAttempt(v int) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *BuildUpsertOne) UpdateAttempt() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateAttempt()
	})
}

// SetAgentSessionID sets the "agent_session_id" field.
func (u *BuildUpsertOne) SetAgentSessionID(v string) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.SetAgentSessionID(v)
	})
}

// UpdateAgentSessionID sets the "agent_session_id" field to the value that was provided on create.
func (u *BuildUpsertOne) UpdateAgentSessionID() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateAgentSessionID()
	})
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (u *BuildUpsertOne) ClearAgentSessionID() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.ClearAgentSessionID()
	})
}

// SetIsInitialBuild sets the "is_initial_build" field.
func (u *BuildUpsertOne) SetIsInitialBuild(v bool) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.SetIsInitialBuild(v)
	})
}

// UpdateIsInitialBuild sets the "is_initial_build" field to the value that was provided on create.
func (u *BuildUpsertOne) UpdateIsInitialBuild() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateIsInitialBuild()
	})
}

// SetPrompt sets the "prompt" field.
func (u *BuildUpsertOne) SetPrompt(v string) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *BuildUpsertOne) UpdatePrompt() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.UpdatePrompt()
	})
}

// ClearPrompt clears the value of the "prompt" field.
func (u *BuildUpsertOne) ClearPrompt() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.ClearPrompt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *BuildUpsertOne) SetStartedAt(v time.Time) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *BuildUpsertOne) UpdateStartedAt() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *BuildUpsertOne) SetCompletedAt(v time.Time) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BuildUpsertOne) UpdateCompletedAt() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BuildUpsertOne) ClearCompletedAt() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorType sets the "error_type" field.
func (u *BuildUpsertOne) SetErrorType(v string) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.SetErrorType(v)
	})
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *BuildUpsertOne) UpdateErrorType() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateErrorType()
	})
}

// ClearErrorType clears the value of the "error_type" field.
func (u *BuildUpsertOne) ClearErrorType() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.ClearErrorType()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *BuildUpsertOne) SetErrorMessage(v string) *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *BuildUpsertOne) UpdateErrorMessage() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *BuildUpsertOne) ClearErrorMessage() *BuildUpsertOne {
	return u.Update(func(s *BuildUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *BuildUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BuildUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BuildUpsertOne.ID is not supported by MySQL driver. Use BuildUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BuildUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BuildCreateBulk is the builder for creating many Build entities in bulk.
type BuildCreateBulk struct {
	config
	err      error
	builders []*BuildCreate
	conflict []sql.ConflictOption
}

// Save creates the Build entities in the database.
func (_c *BuildCreateBulk) Save(ctx context.Context) ([]*Build, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Build, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuildMutation)
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
func (_c *BuildCreateBulk) SaveX(ctx context.Context) []*Build {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Build.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildCreateBulk) OnConflict(opts ...sql.ConflictOption) *BuildUpsertBulk {
	_c.conflict = opts
	return &BuildUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Build.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildCreateBulk) OnConflictColumns(columns ...string) *BuildUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildUpsertBulk{
		create: _c,
	}
}

// BuildUpsertBulk is the builder for "upsert"-ing
// a bulk of Build nodes.
type BuildUpsertBulk struct {
	create *BuildCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Build.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(build.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildUpsertBulk) UpdateNewValues() *BuildUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(build.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(build.FieldProjectID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(build.FieldUserID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Build.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BuildUpsertBulk) Ignore() *BuildUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildUpsertBulk) DoNothing() *BuildUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildCreateBulk.OnConflict
// documentation for more info.
func (u *BuildUpsertBulk) Update(set func(*BuildUpsert)) *BuildUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *BuildUpsertBulk) SetStatus(v build.Status) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BuildUpsertBulk) UpdateStatus() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempt sets the "attempt" field.
func (u *BuildUpsertBulk) SetAttempt(v int) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *BuildUpsertBulk) AddAttempt(v int) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *BuildUpsertBulk) UpdateAttempt() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateAttempt()
	})
}

// SetAgentSessionID sets the "agent_session_id" field.
func (u *BuildUpsertBulk) SetAgentSessionID(v string) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.SetAgentSessionID(v)
	})
}

// UpdateAgentSessionID sets the "agent_session_id" field to the value that was provided on create.
func (u *BuildUpsertBulk) UpdateAgentSessionID() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateAgentSessionID()
	})
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (u *BuildUpsertBulk) ClearAgentSessionID() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.ClearAgentSessionID()
	})
}

// SetIsInitialBuild sets the "is_initial_build" field.
func (u *BuildUpsertBulk) SetIsInitialBuild(v bool) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.SetIsInitialBuild(v)
	})
}

// UpdateIsInitialBuild sets the "is_initial_build" field to the value that was provided on create.
func (u *BuildUpsertBulk) UpdateIsInitialBuild() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateIsInitialBuild()
	})
}

// SetPrompt sets the "prompt" field.
func (u *BuildUpsertBulk) SetPrompt(v string) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *BuildUpsertBulk) UpdatePrompt() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.UpdatePrompt()
	})
}

// ClearPrompt clears the value of the "prompt" field.
func (u *BuildUpsertBulk) ClearPrompt() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.ClearPrompt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *BuildUpsertBulk) SetStartedAt(v time.Time) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *BuildUpsertBulk) UpdateStartedAt() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *BuildUpsertBulk) SetCompletedAt(v time.Time) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *BuildUpsertBulk) UpdateCompletedAt() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *BuildUpsertBulk) ClearCompletedAt() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorType sets the "error_type" field.
func (u *BuildUpsertBulk) SetErrorType(v string) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.SetErrorType(v)
	})
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *BuildUpsertBulk) UpdateErrorType() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateErrorType()
	})
}

// ClearErrorType clears the value of the "error_type" field.
func (u *BuildUpsertBulk) ClearErrorType() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.ClearErrorType()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *BuildUpsertBulk) SetErrorMessage(v string) *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *BuildUpsertBulk) UpdateErrorMessage() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *BuildUpsertBulk) ClearErrorMessage() *BuildUpsertBulk {
	return u.Update(func(s *BuildUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *BuildUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BuildCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
