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
	"github.com/appforge/forge/ent/predicate"
	"github.com/appforge/forge/ent/ratelimitstate"
)

// RateLimitStateUpdate is the builder for updating RateLimitState entities.
type RateLimitStateUpdate struct {
	config
	hooks    []Hook
	mutation *RateLimitStateMutation
}

// Where appends a list predicates to the RateLimitStateUpdate builder.
func (_u *RateLimitStateUpdate) Where(ps ...predicate.RateLimitState) *RateLimitStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActive sets the "active" field.
func (_u *RateLimitStateUpdate) SetActive(v bool) *RateLimitStateUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *RateLimitStateUpdate) SetNillableActive(v *bool) *RateLimitStateUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetResetAt sets the "reset_at" field.
func (_u *RateLimitStateUpdate) SetResetAt(v time.Time) *RateLimitStateUpdate {
	_u.mutation.SetResetAt(v)
	return _u
}

// SetNillableResetAt sets the "reset_at" field if the given value is not nil.
func (_u *RateLimitStateUpdate) SetNillableResetAt(v *time.Time) *RateLimitStateUpdate {
	if v != nil {
		_u.SetResetAt(*v)
	}
	return _u
}

// ClearResetAt clears the value of the "reset_at" field.
func (_u *RateLimitStateUpdate) ClearResetAt() *RateLimitStateUpdate {
	_u.mutation.ClearResetAt()
	return _u
}

// SetReason sets the "reason" field.
func (_u *RateLimitStateUpdate) SetReason(v string) *RateLimitStateUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RateLimitStateUpdate) SetNillableReason(v *string) *RateLimitStateUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *RateLimitStateUpdate) ClearReason() *RateLimitStateUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RateLimitStateUpdate) SetUpdatedAt(v time.Time) *RateLimitStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RateLimitStateMutation object of the builder.
func (_u *RateLimitStateUpdate) Mutation() *RateLimitStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RateLimitStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RateLimitStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RateLimitStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ratelimitstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RateLimitStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitstate.Table, ratelimitstate.Columns, sqlgraph.NewFieldSpec(ratelimitstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(ratelimitstate.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResetAt(); ok {
		_spec.SetField(ratelimitstate.FieldResetAt, field.TypeTime, value)
	}
	if _u.mutation.ResetAtCleared() {
		_spec.ClearField(ratelimitstate.FieldResetAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(ratelimitstate.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(ratelimitstate.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ratelimitstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RateLimitStateUpdateOne is the builder for updating a single RateLimitState entity.
type RateLimitStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RateLimitStateMutation
}

// SetActive sets the "active" field.
func (_u *RateLimitStateUpdateOne) SetActive(v bool) *RateLimitStateUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *RateLimitStateUpdateOne) SetNillableActive(v *bool) *RateLimitStateUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetResetAt sets the "reset_at" field.
func (_u *RateLimitStateUpdateOne) SetResetAt(v time.Time) *RateLimitStateUpdateOne {
	_u.mutation.SetResetAt(v)
	return _u
}

// SetNillableResetAt sets the "reset_at" field if the given value is not nil.
func (_u *RateLimitStateUpdateOne) SetNillableResetAt(v *time.Time) *RateLimitStateUpdateOne {
	if v != nil {
		_u.SetResetAt(*v)
	}
	return _u
}

// ClearResetAt clears the value of the "reset_at" field.
func (_u *RateLimitStateUpdateOne) ClearResetAt() *RateLimitStateUpdateOne {
	_u.mutation.ClearResetAt()
	return _u
}

// SetReason sets the "reason" field.
func (_u *RateLimitStateUpdateOne) SetReason(v string) *RateLimitStateUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RateLimitStateUpdateOne) SetNillableReason(v *string) *RateLimitStateUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *RateLimitStateUpdateOne) ClearReason() *RateLimitStateUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RateLimitStateUpdateOne) SetUpdatedAt(v time.Time) *RateLimitStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RateLimitStateMutation object of the builder.
func (_u *RateLimitStateUpdateOne) Mutation() *RateLimitStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the RateLimitStateUpdate builder.
func (_u *RateLimitStateUpdateOne) Where(ps ...predicate.RateLimitState) *RateLimitStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RateLimitStateUpdateOne) Select(field string, fields ...string) *RateLimitStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RateLimitState entity.
func (_u *RateLimitStateUpdateOne) Save(ctx context.Context) (*RateLimitState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitStateUpdateOne) SaveX(ctx context.Context) *RateLimitState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RateLimitStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RateLimitStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ratelimitstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RateLimitStateUpdateOne) sqlSave(ctx context.Context) (_node *RateLimitState, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitstate.Table, ratelimitstate.Columns, sqlgraph.NewFieldSpec(ratelimitstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RateLimitState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratelimitstate.FieldID)
		for _, f := range fields {
			if !ratelimitstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratelimitstate.FieldID {
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
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(ratelimitstate.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResetAt(); ok {
		_spec.SetField(ratelimitstate.FieldResetAt, field.TypeTime, value)
	}
	if _u.mutation.ResetAtCleared() {
		_spec.ClearField(ratelimitstate.FieldResetAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(ratelimitstate.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(ratelimitstate.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ratelimitstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RateLimitState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
