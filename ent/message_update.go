// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActorType sets the "actor_type" field.
func (_u *MessageUpdate) SetActorType(v message.ActorType) *MessageUpdate {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableActorType(v *message.ActorType) *MessageUpdate {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *MessageUpdate) SetMode(v message.Mode) *MessageUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMode(v *message.Mode) *MessageUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetParentMessageID sets the "parent_message_id" field.
func (_u *MessageUpdate) SetParentMessageID(v string) *MessageUpdate {
	_u.mutation.SetParentMessageID(v)
	return _u
}

// SetNillableParentMessageID sets the "parent_message_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableParentMessageID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetParentMessageID(*v)
	}
	return _u
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (_u *MessageUpdate) ClearParentMessageID() *MessageUpdate {
	_u.mutation.ClearParentMessageID()
	return _u
}

// SetBuildID sets the "build_id" field.
func (_u *MessageUpdate) SetBuildID(v string) *MessageUpdate {
	_u.mutation.SetBuildID(v)
	return _u
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableBuildID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetBuildID(*v)
	}
	return _u
}

// ClearBuildID clears the value of the "build_id" field.
func (_u *MessageUpdate) ClearBuildID() *MessageUpdate {
	_u.mutation.ClearBuildID()
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *MessageUpdate) SetResponse(v map[string]interface{}) *MessageUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *MessageUpdate) ClearResponse() *MessageUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.ActorType(); ok {
		if err := message.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Message.actor_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := message.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Message.mode": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.project"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(message.FieldActorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(message.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentMessageID(); ok {
		_spec.SetField(message.FieldParentMessageID, field.TypeString, value)
	}
	if _u.mutation.ParentMessageIDCleared() {
		_spec.ClearField(message.FieldParentMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.BuildID(); ok {
		_spec.SetField(message.FieldBuildID, field.TypeString, value)
	}
	if _u.mutation.BuildIDCleared() {
		_spec.ClearField(message.FieldBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(message.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(message.FieldResponse, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetActorType sets the "actor_type" field.
func (_u *MessageUpdateOne) SetActorType(v message.ActorType) *MessageUpdateOne {
	_u.mutation.SetActorType(v)
	return _u
}

// SetNillableActorType sets the "actor_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableActorType(v *message.ActorType) *MessageUpdateOne {
	if v != nil {
		_u.SetActorType(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *MessageUpdateOne) SetMode(v message.Mode) *MessageUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMode(v *message.Mode) *MessageUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetParentMessageID sets the "parent_message_id" field.
func (_u *MessageUpdateOne) SetParentMessageID(v string) *MessageUpdateOne {
	_u.mutation.SetParentMessageID(v)
	return _u
}

// SetNillableParentMessageID sets the "parent_message_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableParentMessageID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetParentMessageID(*v)
	}
	return _u
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (_u *MessageUpdateOne) ClearParentMessageID() *MessageUpdateOne {
	_u.mutation.ClearParentMessageID()
	return _u
}

// SetBuildID sets the "build_id" field.
func (_u *MessageUpdateOne) SetBuildID(v string) *MessageUpdateOne {
	_u.mutation.SetBuildID(v)
	return _u
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableBuildID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetBuildID(*v)
	}
	return _u
}

// ClearBuildID clears the value of the "build_id" field.
func (_u *MessageUpdateOne) ClearBuildID() *MessageUpdateOne {
	_u.mutation.ClearBuildID()
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *MessageUpdateOne) SetResponse(v map[string]interface{}) *MessageUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *MessageUpdateOne) ClearResponse() *MessageUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.ActorType(); ok {
		if err := message.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Message.actor_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := message.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Message.mode": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.project"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.ActorType(); ok {
		_spec.SetField(message.FieldActorType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(message.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentMessageID(); ok {
		_spec.SetField(message.FieldParentMessageID, field.TypeString, value)
	}
	if _u.mutation.ParentMessageIDCleared() {
		_spec.ClearField(message.FieldParentMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.BuildID(); ok {
		_spec.SetField(message.FieldBuildID, field.TypeString, value)
	}
	if _u.mutation.BuildIDCleared() {
		_spec.ClearField(message.FieldBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(message.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(message.FieldResponse, field.TypeJSON)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
