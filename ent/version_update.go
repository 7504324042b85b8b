// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/appforge/forge/ent/predicate"
	"github.com/appforge/forge/ent/version"
)

// VersionUpdate is the builder for updating Version entities.
type VersionUpdate struct {
	config
	hooks    []Hook
	mutation *VersionMutation
}

// Where appends a list predicates to the VersionUpdate builder.
func (_u *VersionUpdate) Where(ps ...predicate.Version) *VersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayCounter sets the "display_counter" field.
func (_u *VersionUpdate) SetDisplayCounter(v int) *VersionUpdate {
	_u.mutation.ResetDisplayCounter()
	_u.mutation.SetDisplayCounter(v)
	return _u
}

// SetNillableDisplayCounter sets the "display_counter" field if the given value is not nil.
func (_u *VersionUpdate) SetNillableDisplayCounter(v *int) *VersionUpdate {
	if v != nil {
		_u.SetDisplayCounter(*v)
	}
	return _u
}

// AddDisplayCounter adds value to the "display_counter" field.
func (_u *VersionUpdate) AddDisplayCounter(v int) *VersionUpdate {
	_u.mutation.AddDisplayCounter(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *VersionUpdate) SetDisplayName(v string) *VersionUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *VersionUpdate) SetNillableDisplayName(v *string) *VersionUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetMajor sets the "major" field.
func (_u *VersionUpdate) SetMajor(v int) *VersionUpdate {
	_u.mutation.ResetMajor()
	_u.mutation.SetMajor(v)
	return _u
}

// SetNillableMajor sets the "major" field if the given value is not nil.
func (_u *VersionUpdate) SetNillableMajor(v *int) *VersionUpdate {
	if v != nil {
		_u.SetMajor(*v)
	}
	return _u
}

// AddMajor adds value to the "major" field.
func (_u *VersionUpdate) AddMajor(v int) *VersionUpdate {
	_u.mutation.AddMajor(v)
	return _u
}

// SetMinor sets the "minor" field.
func (_u *VersionUpdate) SetMinor(v int) *VersionUpdate {
	_u.mutation.ResetMinor()
	_u.mutation.SetMinor(v)
	return _u
}

// SetNillableMinor sets the "minor" field if the given value is not nil.
func (_u *VersionUpdate) SetNillableMinor(v *int) *VersionUpdate {
	if v != nil {
		_u.SetMinor(*v)
	}
	return _u
}

// AddMinor adds value to the "minor" field.
func (_u *VersionUpdate) AddMinor(v int) *VersionUpdate {
	_u.mutation.AddMinor(v)
	return _u
}

// SetPatch sets the "patch" field.
func (_u *VersionUpdate) SetPatch(v int) *VersionUpdate {
	_u.mutation.ResetPatch()
	_u.mutation.SetPatch(v)
	return _u
}

// SetNillablePatch sets the "patch" field if the given value is not nil.
func (_u *VersionUpdate) SetNillablePatch(v *int) *VersionUpdate {
	if v != nil {
		_u.SetPatch(*v)
	}
	return _u
}

// AddPatch adds value to the "patch" field.
func (_u *VersionUpdate) AddPatch(v int) *VersionUpdate {
	_u.mutation.AddPatch(v)
	return _u
}

// SetChangeType sets the "change_type" field.
func (_u *VersionUpdate) SetChangeType(v version.ChangeType) *VersionUpdate {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *VersionUpdate) SetNillableChangeType(v *version.ChangeType) *VersionUpdate {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// ClearChangeType clears the value of the "change_type" field.
func (_u *VersionUpdate) ClearChangeType() *VersionUpdate {
	_u.mutation.ClearChangeType()
	return _u
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_u *VersionUpdate) SetAgentSessionID(v string) *VersionUpdate {
	_u.mutation.SetAgentSessionID(v)
	return _u
}

// SetNillableAgentSessionID sets the "agent_session_id" field if the given value is not nil.
func (_u *VersionUpdate) SetNillableAgentSessionID(v *string) *VersionUpdate {
	if v != nil {
		_u.SetAgentSessionID(*v)
	}
	return _u
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (_u *VersionUpdate) ClearAgentSessionID() *VersionUpdate {
	_u.mutation.ClearAgentSessionID()
	return _u
}

// Mutation returns the VersionMutation object of the builder.
func (_u *VersionUpdate) Mutation() *VersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VersionUpdate) check() error {
	if v, ok := _u.mutation.ChangeType(); ok {
		if err := version.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "Version.change_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Version.project"`)
	}
	if _u.mutation.BuildCleared() && len(_u.mutation.BuildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Version.build"`)
	}
	return nil
}

func (_u *VersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(version.Table, version.Columns, sqlgraph.NewFieldSpec(version.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayCounter(); ok {
		_spec.SetField(version.FieldDisplayCounter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayCounter(); ok {
		_spec.AddField(version.FieldDisplayCounter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(version.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Major(); ok {
		_spec.SetField(version.FieldMajor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMajor(); ok {
		_spec.AddField(version.FieldMajor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Minor(); ok {
		_spec.SetField(version.FieldMinor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinor(); ok {
		_spec.AddField(version.FieldMinor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Patch(); ok {
		_spec.SetField(version.FieldPatch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatch(); ok {
		_spec.AddField(version.FieldPatch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(version.FieldChangeType, field.TypeEnum, value)
	}
	if _u.mutation.ChangeTypeCleared() {
		_spec.ClearField(version.FieldChangeType, field.TypeEnum)
	}
	if value, ok := _u.mutation.AgentSessionID(); ok {
		_spec.SetField(version.FieldAgentSessionID, field.TypeString, value)
	}
	if _u.mutation.AgentSessionIDCleared() {
		_spec.ClearField(version.FieldAgentSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{version.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VersionUpdateOne is the builder for updating a single Version entity.
type VersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VersionMutation
}

// SetDisplayCounter sets the "display_counter" field.
func (_u *VersionUpdateOne) SetDisplayCounter(v int) *VersionUpdateOne {
	_u.mutation.ResetDisplayCounter()
	_u.mutation.SetDisplayCounter(v)
	return _u
}

// SetNillableDisplayCounter sets the "display_counter" field if the given value is not nil.
func (_u *VersionUpdateOne) SetNillableDisplayCounter(v *int) *VersionUpdateOne {
	if v != nil {
		_u.SetDisplayCounter(*v)
	}
	return _u
}

// AddDisplayCounter adds value to the "display_counter" field.
func (_u *VersionUpdateOne) AddDisplayCounter(v int) *VersionUpdateOne {
	_u.mutation.AddDisplayCounter(v)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *VersionUpdateOne) SetDisplayName(v string) *VersionUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *VersionUpdateOne) SetNillableDisplayName(v *string) *VersionUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetMajor sets the "major" field.
func (_u *VersionUpdateOne) SetMajor(v int) *VersionUpdateOne {
	_u.mutation.ResetMajor()
	_u.mutation.SetMajor(v)
	return _u
}

// SetNillableMajor sets the "major" field if the given value is not nil.
func (_u *VersionUpdateOne) SetNillableMajor(v *int) *VersionUpdateOne {
	if v != nil {
		_u.SetMajor(*v)
	}
	return _u
}

// AddMajor adds value to the "major" field.
func (_u *VersionUpdateOne) AddMajor(v int) *VersionUpdateOne {
	_u.mutation.AddMajor(v)
	return _u
}

// SetMinor sets the "minor" field.
func (_u *VersionUpdateOne) SetMinor(v int) *VersionUpdateOne {
	_u.mutation.ResetMinor()
	_u.mutation.SetMinor(v)
	return _u
}

// SetNillableMinor sets the "minor" field if the given value is not nil.
func (_u *VersionUpdateOne) SetNillableMinor(v *int) *VersionUpdateOne {
	if v != nil {
		_u.SetMinor(*v)
	}
	return _u
}

// AddMinor adds value to the "minor" field.
func (_u *VersionUpdateOne) AddMinor(v int) *VersionUpdateOne {
	_u.mutation.AddMinor(v)
	return _u
}

// SetPatch sets the "patch" field.
func (_u *VersionUpdateOne) SetPatch(v int) *VersionUpdateOne {
	_u.mutation.ResetPatch()
	_u.mutation.SetPatch(v)
	return _u
}

// SetNillablePatch sets the "patch" field if the given value is not nil.
func (_u *VersionUpdateOne) SetNillablePatch(v *int) *VersionUpdateOne {
	if v != nil {
		_u.SetPatch(*v)
	}
	return _u
}

// AddPatch adds value to the "patch" field.
func (_u *VersionUpdateOne) AddPatch(v int) *VersionUpdateOne {
	_u.mutation.AddPatch(v)
	return _u
}

// SetChangeType sets the "change_type" field.
func (_u *VersionUpdateOne) SetChangeType(v version.ChangeType) *VersionUpdateOne {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *VersionUpdateOne) SetNillableChangeType(v *version.ChangeType) *VersionUpdateOne {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// ClearChangeType clears the value of the "change_type" field.
func (_u *VersionUpdateOne) ClearChangeType() *VersionUpdateOne {
	_u.mutation.ClearChangeType()
	return _u
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_u *VersionUpdateOne) SetAgentSessionID(v string) *VersionUpdateOne {
	_u.mutation.SetAgentSessionID(v)
	return _u
}

// SetNillableAgentSessionID sets the "agent_session_id" field if the given value is not nil.
func (_u *VersionUpdateOne) SetNillableAgentSessionID(v *string) *VersionUpdateOne {
	if v != nil {
		_u.SetAgentSessionID(*v)
	}
	return _u
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (_u *VersionUpdateOne) ClearAgentSessionID() *VersionUpdateOne {
	_u.mutation.ClearAgentSessionID()
	return _u
}

// Mutation returns the VersionMutation object of the builder.
func (_u *VersionUpdateOne) Mutation() *VersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the VersionUpdate builder.
func (_u *VersionUpdateOne) Where(ps ...predicate.Version) *VersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VersionUpdateOne) Select(field string, fields ...string) *VersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Version entity.
func (_u *VersionUpdateOne) Save(ctx context.Context) (*Version, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VersionUpdateOne) SaveX(ctx context.Context) *Version {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VersionUpdateOne) check() error {
	if v, ok := _u.mutation.ChangeType(); ok {
		if err := version.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "Version.change_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Version.project"`)
	}
	if _u.mutation.BuildCleared() && len(_u.mutation.BuildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Version.build"`)
	}
	return nil
}

func (_u *VersionUpdateOne) sqlSave(ctx context.Context) (_node *Version, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(version.Table, version.Columns, sqlgraph.NewFieldSpec(version.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Version.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, version.FieldID)
		for _, f := range fields {
			if !version.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != version.FieldID {
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
	if value, ok := _u.mutation.DisplayCounter(); ok {
		_spec.SetField(version.FieldDisplayCounter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayCounter(); ok {
		_spec.AddField(version.FieldDisplayCounter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(version.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Major(); ok {
		_spec.SetField(version.FieldMajor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMajor(); ok {
		_spec.AddField(version.FieldMajor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Minor(); ok {
		_spec.SetField(version.FieldMinor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinor(); ok {
		_spec.AddField(version.FieldMinor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Patch(); ok {
		_spec.SetField(version.FieldPatch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatch(); ok {
		_spec.AddField(version.FieldPatch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(version.FieldChangeType, field.TypeEnum, value)
	}
	if _u.mutation.ChangeTypeCleared() {
		_spec.ClearField(version.FieldChangeType, field.TypeEnum)
	}
	if value, ok := _u.mutation.AgentSessionID(); ok {
		_spec.SetField(version.FieldAgentSessionID, field.TypeString, value)
	}
	if _u.mutation.AgentSessionIDCleared() {
		_spec.ClearField(version.FieldAgentSessionID, field.TypeString)
	}
	_node = &Version{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{version.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
