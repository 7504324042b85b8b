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
)

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuildID sets the "build_id" field.
func (_c *CheckpointCreate) SetBuildID(v string) *CheckpointCreate {
	_c.mutation.SetBuildID(v)
	return _c
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_c *CheckpointCreate) SetAgentSessionID(v string) *CheckpointCreate {
	_c.mutation.SetAgentSessionID(v)
	return _c
}

// SetNillableAgentSessionID sets the "agent_session_id" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableAgentSessionID(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetAgentSessionID(*v)
	}
	return _c
}

// SetPreexistingFiles sets the "preexisting_files" field.
func (_c *CheckpointCreate) SetPreexistingFiles(v []string) *CheckpointCreate {
	_c.mutation.SetPreexistingFiles(v)
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *CheckpointCreate) SetTokensUsed(v int64) *CheckpointCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableTokensUsed(v *int64) *CheckpointCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCostCents sets the "cost_cents" field.
func (_c *CheckpointCreate) SetCostCents(v int64) *CheckpointCreate {
	_c.mutation.SetCostCents(v)
	return _c
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableCostCents(v *int64) *CheckpointCreate {
	if v != nil {
		_c.SetCostCents(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *CheckpointCreate) SetLastError(v string) *CheckpointCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableLastError(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *CheckpointCreate) SetAttempt(v int) *CheckpointCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableAttempt(v *int) *CheckpointCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CheckpointCreate) SetUpdatedAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableUpdatedAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBuild sets the "build" edge to the Build entity.
func (_c *CheckpointCreate) SetBuild(v *Build) *CheckpointCreate {
	return _c.SetBuildID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := checkpoint.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CostCents(); !ok {
		v := checkpoint.DefaultCostCents
		_c.mutation.SetCostCents(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := checkpoint.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := checkpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.BuildID(); !ok {
		return &ValidationError{Name: "build_id", err: errors.New(`ent: missing required field "Checkpoint.build_id"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "Checkpoint.tokens_used"`)}
	}
	if _, ok := _c.mutation.CostCents(); !ok {
		return &ValidationError{Name: "cost_cents", err: errors.New(`ent: missing required field "Checkpoint.cost_cents"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "Checkpoint.attempt"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Checkpoint.updated_at"`)}
	}
	if len(_c.mutation.BuildIDs()) == 0 {
		return &ValidationError{Name: "build", err: errors.New(`ent: missing required edge "Checkpoint.build"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AgentSessionID(); ok {
		_spec.SetField(checkpoint.FieldAgentSessionID, field.TypeString, value)
		_node.AgentSessionID = &value
	}
	if value, ok := _c.mutation.PreexistingFiles(); ok {
		_spec.SetField(checkpoint.FieldPreexistingFiles, field.TypeJSON, value)
		_node.PreexistingFiles = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(checkpoint.FieldTokensUsed, field.TypeInt64, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CostCents(); ok {
		_spec.SetField(checkpoint.FieldCostCents, field.TypeInt64, value)
		_node.CostCents = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(checkpoint.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(checkpoint.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(checkpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BuildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   checkpoint.BuildTable,
			Columns: []string{checkpoint.BuildColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(build.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BuildID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkpoint.Create().
//		SetBuildID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckpointUpsert) {
//			SetBuildID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckpointCreate) OnConflict(opts ...sql.ConflictOption) *CheckpointUpsertOne {
	_c.conflict = opts
	return &CheckpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckpointCreate) OnConflictColumns(columns ...string) *CheckpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckpointUpsertOne{
		create: _c,
	}
}

type (
	// CheckpointUpsertOne is the builder for "upsert"-ing
	//  one Checkpoint node.
	CheckpointUpsertOne struct {
		create *CheckpointCreate
	}

	// CheckpointUpsert is the "OnConflict" setter.
	CheckpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentSessionID sets the "agent_session_id" field.
func (u *CheckpointUpsert) SetAgentSessionID(v string) *CheckpointUpsert {
	u.Set(checkpoint.FieldAgentSessionID, v)
	return u
}

// UpdateAgentSessionID sets the "agent_session_id" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateAgentSessionID() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldAgentSessionID)
	return u
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (u *CheckpointUpsert) ClearAgentSessionID() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldAgentSessionID)
	return u
}

// SetPreexistingFiles sets the "preexisting_files" field.
func (u *CheckpointUpsert) SetPreexistingFiles(v []string) *CheckpointUpsert {
	u.Set(checkpoint.FieldPreexistingFiles, v)
	return u
}

// UpdatePreexistingFiles sets the "preexisting_files" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdatePreexistingFiles() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldPreexistingFiles)
	return u
}

// ClearPreexistingFiles clears the value of the "preexisting_files" field.
func (u *CheckpointUpsert) ClearPreexistingFiles() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldPreexistingFiles)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *CheckpointUpsert) SetTokensUsed(v int64) *CheckpointUpsert {
	u.Set(checkpoint.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateTokensUsed() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *CheckpointUpsert) AddTokensUsed(v int64) *CheckpointUpsert {
	u.Add(checkpoint.FieldTokensUsed, v)
	return u
}

// SetCostCents sets the "cost_cents" field.
func (u *CheckpointUpsert) SetCostCents(v int64) *CheckpointUpsert {
	u.Set(checkpoint.FieldCostCents, v)
	return u
}

// UpdateCostCents sets the "cost_cents" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateCostCents() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldCostCents)
	return u
}

// AddCostCents adds v to the "cost_cents" field.
func (u *CheckpointUpsert) AddCostCents(v int64) *CheckpointUpsert {
	u.Add(checkpoint.FieldCostCents, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *CheckpointUpsert) SetLastError(v string) *CheckpointUpsert {
	u.Set(checkpoint.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateLastError() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *CheckpointUpsert) ClearLastError() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldLastError)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *CheckpointUpsert) SetAttempt(v int) *CheckpointUpsert {
	u.Set(checkpoint.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateAttempt() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *CheckpointUpsert) AddAttempt(v int) *CheckpointUpsert {
	u.Add(checkpoint.FieldAttempt, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckpointUpsert) SetUpdatedAt(v time.Time) *CheckpointUpsert {
	u.Set(checkpoint.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateUpdatedAt() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CheckpointUpsertOne) UpdateNewValues() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.BuildID(); exists {
			s.SetIgnore(checkpoint.FieldBuildID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CheckpointUpsertOne) Ignore() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckpointUpsertOne) DoNothing() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckpointCreate.OnConflict
// documentation for more info.
func (u *CheckpointUpsertOne) Update(set func(*CheckpointUpsert)) *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentSessionID sets the "agent_session_id" field.
func (u *CheckpointUpsertOne) SetAgentSessionID(v string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetAgentSessionID(v)
	})
}

// UpdateAgentSessionID sets the "agent_session_id" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateAgentSessionID() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateAgentSessionID()
	})
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (u *CheckpointUpsertOne) ClearAgentSessionID() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearAgentSessionID()
	})
}

// SetPreexistingFiles sets the "preexisting_files" field.
func (u *CheckpointUpsertOne) SetPreexistingFiles(v []string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetPreexistingFiles(v)
	})
}

// UpdatePreexistingFiles sets the "preexisting_files" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdatePreexistingFiles() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdatePreexistingFiles()
	})
}

// ClearPreexistingFiles clears the value of the "preexisting_files" field.
func (u *CheckpointUpsertOne) ClearPreexistingFiles() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearPreexistingFiles()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *CheckpointUpsertOne) SetTokensUsed(v int64) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *CheckpointUpsertOne) AddTokensUsed(v int64) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateTokensUsed() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCostCents sets the "cost_cents" field.
func (u *CheckpointUpsertOne) SetCostCents(v int64) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetCostCents(v)
	})
}

// AddCostCents adds v to the "cost_cents" field.
func (u *CheckpointUpsertOne) AddCostCents(v int64) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddCostCents(v)
	})
}

// UpdateCostCents sets the "cost_cents" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateCostCents() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateCostCents()
	})
}

// SetLastError sets the "last_error" field.
func (u *CheckpointUpsertOne) SetLastError(v string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateLastError() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *CheckpointUpsertOne) ClearLastError() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearLastError()
	})
}

// SetAttempt sets the "attempt" field.
func (u *CheckpointUpsertOne) SetAttempt(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *CheckpointUpsertOne) AddAttempt(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateAttempt() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateAttempt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckpointUpsertOne) SetUpdatedAt(v time.Time) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateUpdatedAt() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CheckpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CheckpointUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CheckpointUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
	conflict []sql.ConflictOption
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckpointUpsert) {
//			SetBuildID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *CheckpointUpsertBulk {
	_c.conflict = opts
	return &CheckpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckpointCreateBulk) OnConflictColumns(columns ...string) *CheckpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckpointUpsertBulk{
		create: _c,
	}
}

// CheckpointUpsertBulk is the builder for "upsert"-ing
// a bulk of Checkpoint nodes.
type CheckpointUpsertBulk struct {
	create *CheckpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CheckpointUpsertBulk) UpdateNewValues() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.BuildID(); exists {
				s.SetIgnore(checkpoint.FieldBuildID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CheckpointUpsertBulk) Ignore() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckpointUpsertBulk) DoNothing() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckpointCreateBulk.OnConflict
// documentation for more info.
func (u *CheckpointUpsertBulk) Update(set func(*CheckpointUpsert)) *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentSessionID sets the "agent_session_id" field.
func (u *CheckpointUpsertBulk) SetAgentSessionID(v string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetAgentSessionID(v)
	})
}

// UpdateAgentSessionID sets the "agent_session_id" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateAgentSessionID() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateAgentSessionID()
	})
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (u *CheckpointUpsertBulk) ClearAgentSessionID() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearAgentSessionID()
	})
}

// SetPreexistingFiles sets the "preexisting_files" field.
func (u *CheckpointUpsertBulk) SetPreexistingFiles(v []string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetPreexistingFiles(v)
	})
}

// UpdatePreexistingFiles sets the "preexisting_files" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdatePreexistingFiles() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdatePreexistingFiles()
	})
}

// ClearPreexistingFiles clears the value of the "preexisting_files" field.
func (u *CheckpointUpsertBulk) ClearPreexistingFiles() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearPreexistingFiles()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *CheckpointUpsertBulk) SetTokensUsed(v int64) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *CheckpointUpsertBulk) AddTokensUsed(v int64) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateTokensUsed() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCostCents sets the "cost_cents" field.
func (u *CheckpointUpsertBulk) SetCostCents(v int64) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetCostCents(v)
	})
}

// AddCostCents adds v to the "cost_cents" field.
func (u *CheckpointUpsertBulk) AddCostCents(v int64) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddCostCents(v)
	})
}

// UpdateCostCents sets the "cost_cents" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateCostCents() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateCostCents()
	})
}

// SetLastError sets the "last_error" field.
func (u *CheckpointUpsertBulk) SetLastError(v string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateLastError() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *CheckpointUpsertBulk) ClearLastError() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearLastError()
	})
}

// SetAttempt sets the "attempt" field.
func (u *CheckpointUpsertBulk) SetAttempt(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *CheckpointUpsertBulk) AddAttempt(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateAttempt() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateAttempt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckpointUpsertBulk) SetUpdatedAt(v time.Time) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateUpdatedAt() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CheckpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CheckpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
