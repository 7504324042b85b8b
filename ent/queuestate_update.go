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
	"github.com/appforge/forge/ent/queuestate"
)

// QueueStateUpdate is the builder for updating QueueState entities.
type QueueStateUpdate struct {
	config
	hooks    []Hook
	mutation *QueueStateMutation
}

// Where appends a list predicates to the QueueStateUpdate builder.
func (_u *QueueStateUpdate) Where(ps ...predicate.QueueState) *QueueStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPaused sets the "paused" field.
func (_u *QueueStateUpdate) SetPaused(v bool) *QueueStateUpdate {
	_u.mutation.SetPaused(v)
	return _u
}

// SetNillablePaused sets the "paused" field if the given value is not nil.
func (_u *QueueStateUpdate) SetNillablePaused(v *bool) *QueueStateUpdate {
	if v != nil {
		_u.SetPaused(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *QueueStateUpdate) SetReason(v string) *QueueStateUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *QueueStateUpdate) SetNillableReason(v *string) *QueueStateUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *QueueStateUpdate) ClearReason() *QueueStateUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetPausedUntil sets the "paused_until" field.
func (_u *QueueStateUpdate) SetPausedUntil(v time.Time) *QueueStateUpdate {
	_u.mutation.SetPausedUntil(v)
	return _u
}

// SetNillablePausedUntil sets the "paused_until" field if the given value is not nil.
func (_u *QueueStateUpdate) SetNillablePausedUntil(v *time.Time) *QueueStateUpdate {
	if v != nil {
		_u.SetPausedUntil(*v)
	}
	return _u
}

// ClearPausedUntil clears the value of the "paused_until" field.
func (_u *QueueStateUpdate) ClearPausedUntil() *QueueStateUpdate {
	_u.mutation.ClearPausedUntil()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueStateUpdate) SetUpdatedAt(v time.Time) *QueueStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueStateMutation object of the builder.
func (_u *QueueStateUpdate) Mutation() *QueueStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QueueStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(queuestate.Table, queuestate.Columns, sqlgraph.NewFieldSpec(queuestate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Paused(); ok {
		_spec.SetField(queuestate.FieldPaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(queuestate.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(queuestate.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.PausedUntil(); ok {
		_spec.SetField(queuestate.FieldPausedUntil, field.TypeTime, value)
	}
	if _u.mutation.PausedUntilCleared() {
		_spec.ClearField(queuestate.FieldPausedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueStateUpdateOne is the builder for updating a single QueueState entity.
type QueueStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueStateMutation
}

// SetPaused sets the "paused" field.
func (_u *QueueStateUpdateOne) SetPaused(v bool) *QueueStateUpdateOne {
	_u.mutation.SetPaused(v)
	return _u
}

// SetNillablePaused sets the "paused" field if the given value is not nil.
func (_u *QueueStateUpdateOne) SetNillablePaused(v *bool) *QueueStateUpdateOne {
	if v != nil {
		_u.SetPaused(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *QueueStateUpdateOne) SetReason(v string) *QueueStateUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *QueueStateUpdateOne) SetNillableReason(v *string) *QueueStateUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *QueueStateUpdateOne) ClearReason() *QueueStateUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetPausedUntil sets the "paused_until" field.
func (_u *QueueStateUpdateOne) SetPausedUntil(v time.Time) *QueueStateUpdateOne {
	_u.mutation.SetPausedUntil(v)
	return _u
}

// SetNillablePausedUntil sets the "paused_until" field if the given value is not nil.
func (_u *QueueStateUpdateOne) SetNillablePausedUntil(v *time.Time) *QueueStateUpdateOne {
	if v != nil {
		_u.SetPausedUntil(*v)
	}
	return _u
}

// ClearPausedUntil clears the value of the "paused_until" field.
func (_u *QueueStateUpdateOne) ClearPausedUntil() *QueueStateUpdateOne {
	_u.mutation.ClearPausedUntil()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueStateUpdateOne) SetUpdatedAt(v time.Time) *QueueStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueStateMutation object of the builder.
func (_u *QueueStateUpdateOne) Mutation() *QueueStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueStateUpdate builder.
func (_u *QueueStateUpdateOne) Where(ps ...predicate.QueueState) *QueueStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueStateUpdateOne) Select(field string, fields ...string) *QueueStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueState entity.
func (_u *QueueStateUpdateOne) Save(ctx context.Context) (*QueueState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueStateUpdateOne) SaveX(ctx context.Context) *QueueState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QueueStateUpdateOne) sqlSave(ctx context.Context) (_node *QueueState, err error) {
	_spec := sqlgraph.NewUpdateSpec(queuestate.Table, queuestate.Columns, sqlgraph.NewFieldSpec(queuestate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuestate.FieldID)
		for _, f := range fields {
			if !queuestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuestate.FieldID {
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
	if value, ok := _u.mutation.Paused(); ok {
		_spec.SetField(queuestate.FieldPaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(queuestate.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(queuestate.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.PausedUntil(); ok {
		_spec.SetField(queuestate.FieldPausedUntil, field.TypeTime, value)
	}
	if _u.mutation.PausedUntilCleared() {
		_spec.ClearField(queuestate.FieldPausedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuestate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QueueState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
