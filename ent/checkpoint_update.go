// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/appforge/forge/ent/checkpoint"
	"github.com/appforge/forge/ent/predicate"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_u *CheckpointUpdate) SetAgentSessionID(v string) *CheckpointUpdate {
	_u.mutation.SetAgentSessionID(v)
	return _u
}

// SetNillableAgentSessionID sets the "agent_session_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableAgentSessionID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetAgentSessionID(*v)
	}
	return _u
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (_u *CheckpointUpdate) ClearAgentSessionID() *CheckpointUpdate {
	_u.mutation.ClearAgentSessionID()
	return _u
}

// SetPreexistingFiles sets the "preexisting_files" field.
func (_u *CheckpointUpdate) SetPreexistingFiles(v []string) *CheckpointUpdate {
	_u.mutation.SetPreexistingFiles(v)
	return _u
}

// AppendPreexistingFiles appends value to the "preexisting_files" field.
func (_u *CheckpointUpdate) AppendPreexistingFiles(v []string) *CheckpointUpdate {
	_u.mutation.AppendPreexistingFiles(v)
	return _u
}

// ClearPreexistingFiles clears the value of the "preexisting_files" field.
func (_u *CheckpointUpdate) ClearPreexistingFiles() *CheckpointUpdate {
	_u.mutation.ClearPreexistingFiles()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *CheckpointUpdate) SetTokensUsed(v int64) *CheckpointUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableTokensUsed(v *int64) *CheckpointUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *CheckpointUpdate) AddTokensUsed(v int64) *CheckpointUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostCents sets the "cost_cents" field.
func (_u *CheckpointUpdate) SetCostCents(v int64) *CheckpointUpdate {
	_u.mutation.ResetCostCents()
	_u.mutation.SetCostCents(v)
	return _u
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableCostCents(v *int64) *CheckpointUpdate {
	if v != nil {
		_u.SetCostCents(*v)
	}
	return _u
}

// AddCostCents adds value to the "cost_cents" field.
func (_u *CheckpointUpdate) AddCostCents(v int64) *CheckpointUpdate {
	_u.mutation.AddCostCents(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *CheckpointUpdate) SetLastError(v string) *CheckpointUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableLastError(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *CheckpointUpdate) ClearLastError() *CheckpointUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *CheckpointUpdate) SetAttempt(v int) *CheckpointUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableAttempt(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *CheckpointUpdate) AddAttempt(v int) *CheckpointUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckpointUpdate) SetUpdatedAt(v time.Time) *CheckpointUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckpointUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if _u.mutation.BuildCleared() && len(_u.mutation.BuildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.build"`)
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentSessionID(); ok {
		_spec.SetField(checkpoint.FieldAgentSessionID, field.TypeString, value)
	}
	if _u.mutation.AgentSessionIDCleared() {
		_spec.ClearField(checkpoint.FieldAgentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PreexistingFiles(); ok {
		_spec.SetField(checkpoint.FieldPreexistingFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreexistingFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldPreexistingFiles, value)
		})
	}
	if _u.mutation.PreexistingFilesCleared() {
		_spec.ClearField(checkpoint.FieldPreexistingFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostCents(); ok {
		_spec.SetField(checkpoint.FieldCostCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCostCents(); ok {
		_spec.AddField(checkpoint.FieldCostCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(checkpoint.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(checkpoint.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(checkpoint.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(checkpoint.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_u *CheckpointUpdateOne) SetAgentSessionID(v string) *CheckpointUpdateOne {
	_u.mutation.SetAgentSessionID(v)
	return _u
}

// SetNillableAgentSessionID sets the "agent_session_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableAgentSessionID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetAgentSessionID(*v)
	}
	return _u
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (_u *CheckpointUpdateOne) ClearAgentSessionID() *CheckpointUpdateOne {
	_u.mutation.ClearAgentSessionID()
	return _u
}

// SetPreexistingFiles sets the "preexisting_files" field.
func (_u *CheckpointUpdateOne) SetPreexistingFiles(v []string) *CheckpointUpdateOne {
	_u.mutation.SetPreexistingFiles(v)
	return _u
}

// AppendPreexistingFiles appends value to the "preexisting_files" field.
func (_u *CheckpointUpdateOne) AppendPreexistingFiles(v []string) *CheckpointUpdateOne {
	_u.mutation.AppendPreexistingFiles(v)
	return _u
}

// ClearPreexistingFiles clears the value of the "preexisting_files" field.
func (_u *CheckpointUpdateOne) ClearPreexistingFiles() *CheckpointUpdateOne {
	_u.mutation.ClearPreexistingFiles()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *CheckpointUpdateOne) SetTokensUsed(v int64) *CheckpointUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableTokensUsed(v *int64) *CheckpointUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *CheckpointUpdateOne) AddTokensUsed(v int64) *CheckpointUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostCents sets the "cost_cents" field.
func (_u *CheckpointUpdateOne) SetCostCents(v int64) *CheckpointUpdateOne {
	_u.mutation.ResetCostCents()
	_u.mutation.SetCostCents(v)
	return _u
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableCostCents(v *int64) *CheckpointUpdateOne {
	if v != nil {
		_u.SetCostCents(*v)
	}
	return _u
}

// AddCostCents adds value to the "cost_cents" field.
func (_u *CheckpointUpdateOne) AddCostCents(v int64) *CheckpointUpdateOne {
	_u.mutation.AddCostCents(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *CheckpointUpdateOne) SetLastError(v string) *CheckpointUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableLastError(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *CheckpointUpdateOne) ClearLastError() *CheckpointUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *CheckpointUpdateOne) SetAttempt(v int) *CheckpointUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableAttempt(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *CheckpointUpdateOne) AddAttempt(v int) *CheckpointUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckpointUpdateOne) SetUpdatedAt(v time.Time) *CheckpointUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckpointUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if _u.mutation.BuildCleared() && len(_u.mutation.BuildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.build"`)
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
	if value, ok := _u.mutation.AgentSessionID(); ok {
		_spec.SetField(checkpoint.FieldAgentSessionID, field.TypeString, value)
	}
	if _u.mutation.AgentSessionIDCleared() {
		_spec.ClearField(checkpoint.FieldAgentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PreexistingFiles(); ok {
		_spec.SetField(checkpoint.FieldPreexistingFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreexistingFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, checkpoint.FieldPreexistingFiles, value)
		})
	}
	if _u.mutation.PreexistingFilesCleared() {
		_spec.ClearField(checkpoint.FieldPreexistingFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostCents(); ok {
		_spec.SetField(checkpoint.FieldCostCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCostCents(); ok {
		_spec.AddField(checkpoint.FieldCostCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(checkpoint.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(checkpoint.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(checkpoint.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(checkpoint.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
