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
	"github.com/appforge/forge/ent/checkpoint"
	"github.com/appforge/forge/ent/predicate"
	"github.com/appforge/forge/ent/version"
)

// BuildUpdate is the builder for updating Build entities.
type BuildUpdate struct {
	config
	hooks    []Hook
	mutation *BuildMutation
}

// Where appends a list predicates to the BuildUpdate builder.
func (_u *BuildUpdate) Where(ps ...predicate.Build) *BuildUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BuildUpdate) SetStatus(v build.Status) *BuildUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableStatus(v *build.Status) *BuildUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *BuildUpdate) SetAttempt(v int) *BuildUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableAttempt(v *int) *BuildUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *BuildUpdate) AddAttempt(v int) *BuildUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_u *BuildUpdate) SetAgentSessionID(v string) *BuildUpdate {
	_u.mutation.SetAgentSessionID(v)
	return _u
}

// SetNillableAgentSessionID sets the "agent_session_id" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableAgentSessionID(v *string) *BuildUpdate {
	if v != nil {
		_u.SetAgentSessionID(*v)
	}
	return _u
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (_u *BuildUpdate) ClearAgentSessionID() *BuildUpdate {
	_u.mutation.ClearAgentSessionID()
	return _u
}

// SetIsInitialBuild sets the "is_initial_build" field.
func (_u *BuildUpdate) SetIsInitialBuild(v bool) *BuildUpdate {
	_u.mutation.SetIsInitialBuild(v)
	return _u
}

// SetNillableIsInitialBuild sets the "is_initial_build" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableIsInitialBuild(v *bool) *BuildUpdate {
	if v != nil {
		_u.SetIsInitialBuild(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *BuildUpdate) SetPrompt(v string) *BuildUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *BuildUpdate) SetNillablePrompt(v *string) *BuildUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *BuildUpdate) ClearPrompt() *BuildUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BuildUpdate) SetStartedAt(v time.Time) *BuildUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableStartedAt(v *time.Time) *BuildUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BuildUpdate) SetCompletedAt(v time.Time) *BuildUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableCompletedAt(v *time.Time) *BuildUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BuildUpdate) ClearCompletedAt() *BuildUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *BuildUpdate) SetErrorType(v string) *BuildUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableErrorType(v *string) *BuildUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *BuildUpdate) ClearErrorType() *BuildUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BuildUpdate) SetErrorMessage(v string) *BuildUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableErrorMessage(v *string) *BuildUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BuildUpdate) ClearErrorMessage() *BuildUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVersionID sets the "version" edge to the Version entity by ID.
func (_u *BuildUpdate) SetVersionID(id string) *BuildUpdate {
	_u.mutation.SetVersionID(id)
	return _u
}

// SetNillableVersionID sets the "version" edge to the Version entity by ID if the given value is not nil.
func (_u *BuildUpdate) SetNillableVersionID(id *string) *BuildUpdate {
	if id != nil {
		_u = _u.SetVersionID(*id)
	}
	return _u
}

// SetVersion sets the "version" edge to the Version entity.
func (_u *BuildUpdate) SetVersion(v *Version) *BuildUpdate {
	return _u.SetVersionID(v.ID)
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_u *BuildUpdate) SetCheckpointID(id int) *BuildUpdate {
	_u.mutation.SetCheckpointID(id)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_u *BuildUpdate) SetNillableCheckpointID(id *int) *BuildUpdate {
	if id != nil {
		_u = _u.SetCheckpointID(*id)
	}
	return _u
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_u *BuildUpdate) SetCheckpoint(v *Checkpoint) *BuildUpdate {
	return _u.SetCheckpointID(v.ID)
}

// Mutation returns the BuildMutation object of the builder.
func (_u *BuildUpdate) Mutation() *BuildMutation {
	return _u.mutation
}

// ClearVersion clears the "version" edge to the Version entity.
func (_u *BuildUpdate) ClearVersion() *BuildUpdate {
	_u.mutation.ClearVersion()
	return _u
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (_u *BuildUpdate) ClearCheckpoint() *BuildUpdate {
	_u.mutation.ClearCheckpoint()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BuildUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BuildUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := build.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Build.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Build.project"`)
	}
	return nil
}

func (_u *BuildUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(build.Table, build.Columns, sqlgraph.NewFieldSpec(build.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(build.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(build.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(build.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentSessionID(); ok {
		_spec.SetField(build.FieldAgentSessionID, field.TypeString, value)
	}
	if _u.mutation.AgentSessionIDCleared() {
		_spec.ClearField(build.FieldAgentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.IsInitialBuild(); ok {
		_spec.SetField(build.FieldIsInitialBuild, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(build.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(build.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(build.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(build.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(build.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(build.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(build.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(build.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(build.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.VersionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{build.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BuildUpdateOne is the builder for updating a single Build entity.
type BuildUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BuildMutation
}

// SetStatus sets the "status" field.
func (_u *BuildUpdateOne) SetStatus(v build.Status) *BuildUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableStatus(v *build.Status) *BuildUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *BuildUpdateOne) SetAttempt(v int) *BuildUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableAttempt(v *int) *BuildUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *BuildUpdateOne) AddAttempt(v int) *BuildUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_u *BuildUpdateOne) SetAgentSessionID(v string) *BuildUpdateOne {
	_u.mutation.SetAgentSessionID(v)
	return _u
}

// SetNillableAgentSessionID sets the "agent_session_id" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableAgentSessionID(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetAgentSessionID(*v)
	}
	return _u
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (_u *BuildUpdateOne) ClearAgentSessionID() *BuildUpdateOne {
	_u.mutation.ClearAgentSessionID()
	return _u
}

// SetIsInitialBuild sets the "is_initial_build" field.
func (_u *BuildUpdateOne) SetIsInitialBuild(v bool) *BuildUpdateOne {
	_u.mutation.SetIsInitialBuild(v)
	return _u
}

// SetNillableIsInitialBuild sets the "is_initial_build" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableIsInitialBuild(v *bool) *BuildUpdateOne {
	if v != nil {
		_u.SetIsInitialBuild(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *BuildUpdateOne) SetPrompt(v string) *BuildUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillablePrompt(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *BuildUpdateOne) ClearPrompt() *BuildUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BuildUpdateOne) SetStartedAt(v time.Time) *BuildUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableStartedAt(v *time.Time) *BuildUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BuildUpdateOne) SetCompletedAt(v time.Time) *BuildUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableCompletedAt(v *time.Time) *BuildUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BuildUpdateOne) ClearCompletedAt() *BuildUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *BuildUpdateOne) SetErrorType(v string) *BuildUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableErrorType(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *BuildUpdateOne) ClearErrorType() *BuildUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BuildUpdateOne) SetErrorMessage(v string) *BuildUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableErrorMessage(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BuildUpdateOne) ClearErrorMessage() *BuildUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVersionID sets the "version" edge to the Version entity by ID.
func (_u *BuildUpdateOne) SetVersionID(id string) *BuildUpdateOne {
	_u.mutation.SetVersionID(id)
	return _u
}

// SetNillableVersionID sets the "version" edge to the Version entity by ID if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableVersionID(id *string) *BuildUpdateOne {
	if id != nil {
		_u = _u.SetVersionID(*id)
	}
	return _u
}

// SetVersion sets the "version" edge to the Version entity.
func (_u *BuildUpdateOne) SetVersion(v *Version) *BuildUpdateOne {
	return _u.SetVersionID(v.ID)
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID.
func (_u *BuildUpdateOne) SetCheckpointID(id int) *BuildUpdateOne {
	_u.mutation.SetCheckpointID(id)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint" edge to the Checkpoint entity by ID if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableCheckpointID(id *int) *BuildUpdateOne {
	if id != nil {
		_u = _u.SetCheckpointID(*id)
	}
	return _u
}

// SetCheckpoint sets the "checkpoint" edge to the Checkpoint entity.
func (_u *BuildUpdateOne) SetCheckpoint(v *Checkpoint) *BuildUpdateOne {
	return _u.SetCheckpointID(v.ID)
}

// Mutation returns the BuildMutation object of the builder.
func (_u *BuildUpdateOne) Mutation() *BuildMutation {
	return _u.mutation
}

// ClearVersion clears the "version" edge to the Version entity.
func (_u *BuildUpdateOne) ClearVersion() *BuildUpdateOne {
	_u.mutation.ClearVersion()
	return _u
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (_u *BuildUpdateOne) ClearCheckpoint() *BuildUpdateOne {
	_u.mutation.ClearCheckpoint()
	return _u
}

// Where appends a list predicates to the BuildUpdate builder.
func (_u *BuildUpdateOne) Where(ps ...predicate.Build) *BuildUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BuildUpdateOne) Select(field string, fields ...string) *BuildUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Build entity.
func (_u *BuildUpdateOne) Save(ctx context.Context) (*Build, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildUpdateOne) SaveX(ctx context.Context) *Build {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BuildUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := build.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Build.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Build.project"`)
	}
	return nil
}

func (_u *BuildUpdateOne) sqlSave(ctx context.Context) (_node *Build, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(build.Table, build.Columns, sqlgraph.NewFieldSpec(build.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Build.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, build.FieldID)
		for _, f := range fields {
			if !build.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != build.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(build.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(build.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(build.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentSessionID(); ok {
		_spec.SetField(build.FieldAgentSessionID, field.TypeString, value)
	}
	if _u.mutation.AgentSessionIDCleared() {
		_spec.ClearField(build.FieldAgentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.IsInitialBuild(); ok {
		_spec.SetField(build.FieldIsInitialBuild, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(build.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(build.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(build.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(build.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(build.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(build.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(build.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(build.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(build.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.VersionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Build{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{build.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
