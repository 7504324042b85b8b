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
	"github.com/appforge/forge/ent/usagerecord"
)

// UsageRecordUpdate is the builder for updating UsageRecord entities.
type UsageRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UsageRecordMutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdate) Where(ps ...predicate.UsageRecord) *UsageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *UsageRecordUpdate) SetEndedAt(v time.Time) *UsageRecordUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableEndedAt(v *time.Time) *UsageRecordUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *UsageRecordUpdate) ClearEndedAt() *UsageRecordUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *UsageRecordUpdate) SetSeconds(v int64) *UsageRecordUpdate {
	_u.mutation.ResetSeconds()
	_u.mutation.SetSeconds(v)
	return _u
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableSeconds(v *int64) *UsageRecordUpdate {
	if v != nil {
		_u.SetSeconds(*v)
	}
	return _u
}

// AddSeconds adds value to the "seconds" field.
func (_u *UsageRecordUpdate) AddSeconds(v int64) *UsageRecordUpdate {
	_u.mutation.AddSeconds(v)
	return _u
}

// SetRefunded sets the "refunded" field.
func (_u *UsageRecordUpdate) SetRefunded(v bool) *UsageRecordUpdate {
	_u.mutation.SetRefunded(v)
	return _u
}

// SetNillableRefunded sets the "refunded" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableRefunded(v *bool) *UsageRecordUpdate {
	if v != nil {
		_u.SetRefunded(*v)
	}
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdate) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(usagerecord.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(usagerecord.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(usagerecord.FieldSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeconds(); ok {
		_spec.AddField(usagerecord.FieldSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Refunded(); ok {
		_spec.SetField(usagerecord.FieldRefunded, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageRecordUpdateOne is the builder for updating a single UsageRecord entity.
type UsageRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageRecordMutation
}

// SetEndedAt sets the "ended_at" field.
func (_u *UsageRecordUpdateOne) SetEndedAt(v time.Time) *UsageRecordUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableEndedAt(v *time.Time) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *UsageRecordUpdateOne) ClearEndedAt() *UsageRecordUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *UsageRecordUpdateOne) SetSeconds(v int64) *UsageRecordUpdateOne {
	_u.mutation.ResetSeconds()
	_u.mutation.SetSeconds(v)
	return _u
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableSeconds(v *int64) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetSeconds(*v)
	}
	return _u
}

// AddSeconds adds value to the "seconds" field.
func (_u *UsageRecordUpdateOne) AddSeconds(v int64) *UsageRecordUpdateOne {
	_u.mutation.AddSeconds(v)
	return _u
}

// SetRefunded sets the "refunded" field.
func (_u *UsageRecordUpdateOne) SetRefunded(v bool) *UsageRecordUpdateOne {
	_u.mutation.SetRefunded(v)
	return _u
}

// SetNillableRefunded sets the "refunded" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableRefunded(v *bool) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetRefunded(*v)
	}
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdateOne) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdateOne) Where(ps ...predicate.UsageRecord) *UsageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageRecordUpdateOne) Select(field string, fields ...string) *UsageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageRecord entity.
func (_u *UsageRecordUpdateOne) Save(ctx context.Context) (*UsageRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) SaveX(ctx context.Context) *UsageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UsageRecordUpdateOne) sqlSave(ctx context.Context) (_node *UsageRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagerecord.FieldID)
		for _, f := range fields {
			if !usagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagerecord.FieldID {
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
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(usagerecord.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(usagerecord.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(usagerecord.FieldSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeconds(); ok {
		_spec.AddField(usagerecord.FieldSeconds, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Refunded(); ok {
		_spec.SetField(usagerecord.FieldRefunded, field.TypeBool, value)
	}
	_node = &UsageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
