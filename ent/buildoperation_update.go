// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/appforge/forge/ent/buildoperation"
	"github.com/appforge/forge/ent/predicate"
)

// BuildOperationUpdate is the builder for updating BuildOperation entities.
type BuildOperationUpdate struct {
	config
	hooks    []Hook
	mutation *BuildOperationMutation
}

// Where appends a list predicates to the BuildOperationUpdate builder.
func (_u *BuildOperationUpdate) Where(ps ...predicate.BuildOperation) *BuildOperationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *BuildOperationUpdate) SetJobID(v string) *BuildOperationUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *BuildOperationUpdate) SetNillableJobID(v *string) *BuildOperationUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *BuildOperationUpdate) ClearJobID() *BuildOperationUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BuildOperationUpdate) SetStatus(v buildoperation.Status) *BuildOperationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BuildOperationUpdate) SetNillableStatus(v *buildoperation.Status) *BuildOperationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the BuildOperationMutation object of the builder.
func (_u *BuildOperationUpdate) Mutation() *BuildOperationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BuildOperationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildOperationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BuildOperationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildOperationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildOperationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := buildoperation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BuildOperation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BuildOperationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(buildoperation.Table, buildoperation.Columns, sqlgraph.NewFieldSpec(buildoperation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(buildoperation.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(buildoperation.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(buildoperation.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{buildoperation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BuildOperationUpdateOne is the builder for updating a single BuildOperation entity.
type BuildOperationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BuildOperationMutation
}

// SetJobID sets the "job_id" field.
func (_u *BuildOperationUpdateOne) SetJobID(v string) *BuildOperationUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *BuildOperationUpdateOne) SetNillableJobID(v *string) *BuildOperationUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *BuildOperationUpdateOne) ClearJobID() *BuildOperationUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BuildOperationUpdateOne) SetStatus(v buildoperation.Status) *BuildOperationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BuildOperationUpdateOne) SetNillableStatus(v *buildoperation.Status) *BuildOperationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the BuildOperationMutation object of the builder.
func (_u *BuildOperationUpdateOne) Mutation() *BuildOperationMutation {
	return _u.mutation
}

// Where appends a list predicates to the BuildOperationUpdate builder.
func (_u *BuildOperationUpdateOne) Where(ps ...predicate.BuildOperation) *BuildOperationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BuildOperationUpdateOne) Select(field string, fields ...string) *BuildOperationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BuildOperation entity.
func (_u *BuildOperationUpdateOne) Save(ctx context.Context) (*BuildOperation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildOperationUpdateOne) SaveX(ctx context.Context) *BuildOperation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BuildOperationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildOperationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildOperationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := buildoperation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BuildOperation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BuildOperationUpdateOne) sqlSave(ctx context.Context) (_node *BuildOperation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(buildoperation.Table, buildoperation.Columns, sqlgraph.NewFieldSpec(buildoperation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BuildOperation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, buildoperation.FieldID)
		for _, f := range fields {
			if !buildoperation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != buildoperation.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(buildoperation.FieldJobID, field.TypeString, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(buildoperation.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(buildoperation.FieldStatus, field.TypeEnum, value)
	}
	_node = &BuildOperation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{buildoperation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
