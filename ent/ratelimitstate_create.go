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
	"github.com/appforge/forge/ent/ratelimitstate"
)

// RateLimitStateCreate is the builder for creating a RateLimitState entity.
type RateLimitStateCreate struct {
	config
	mutation *RateLimitStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetActive sets the "active" field.
func (_c *RateLimitStateCreate) SetActive(v bool) *RateLimitStateCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *RateLimitStateCreate) SetNillableActive(v *bool) *RateLimitStateCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetResetAt sets the "reset_at" field.
func (_c *RateLimitStateCreate) SetResetAt(v time.Time) *RateLimitStateCreate {
	_c.mutation.SetResetAt(v)
	return _c
}

// SetNillableResetAt sets the "reset_at" field if the given value is not nil.
func (_c *RateLimitStateCreate) SetNillableResetAt(v *time.Time) *RateLimitStateCreate {
	if v != nil {
		_c.SetResetAt(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *RateLimitStateCreate) SetReason(v string) *RateLimitStateCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *RateLimitStateCreate) SetNillableReason(v *string) *RateLimitStateCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RateLimitStateCreate) SetUpdatedAt(v time.Time) *RateLimitStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RateLimitStateCreate) SetNillableUpdatedAt(v *time.Time) *RateLimitStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RateLimitStateCreate) SetID(v int) *RateLimitStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RateLimitStateMutation object of the builder.
func (_c *RateLimitStateCreate) Mutation() *RateLimitStateMutation {
	return _c.mutation
}

// Save creates the RateLimitState in the database.
func (_c *RateLimitStateCreate) Save(ctx context.Context) (*RateLimitState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RateLimitStateCreate) SaveX(ctx context.Context) *RateLimitState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RateLimitStateCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := ratelimitstate.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ratelimitstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RateLimitStateCreate) check() error {
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "RateLimitState.active"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RateLimitState.updated_at"`)}
	}
	return nil
}

func (_c *RateLimitStateCreate) sqlSave(ctx context.Context) (*RateLimitState, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RateLimitStateCreate) createSpec() (*RateLimitState, *sqlgraph.CreateSpec) {
	var (
		_node = &RateLimitState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ratelimitstate.Table, sqlgraph.NewFieldSpec(ratelimitstate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(ratelimitstate.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.ResetAt(); ok {
		_spec.SetField(ratelimitstate.FieldResetAt, field.TypeTime, value)
		_node.ResetAt = &value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(ratelimitstate.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ratelimitstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitState.Create().
//		SetActive(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitStateUpsert) {
//			SetActive(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitStateCreate) OnConflict(opts ...sql.ConflictOption) *RateLimitStateUpsertOne {
	_c.conflict = opts
	return &RateLimitStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitStateCreate) OnConflictColumns(columns ...string) *RateLimitStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitStateUpsertOne{
		create: _c,
	}
}

type (
	// RateLimitStateUpsertOne is the builder for "upsert"-ing
	//  one RateLimitState node.
	RateLimitStateUpsertOne struct {
		create *RateLimitStateCreate
	}

	// RateLimitStateUpsert is the "OnConflict" setter.
	RateLimitStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetActive sets the "active" field.
func (u *RateLimitStateUpsert) SetActive(v bool) *RateLimitStateUpsert {
	u.Set(ratelimitstate.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *RateLimitStateUpsert) UpdateActive() *RateLimitStateUpsert {
	u.SetExcluded(ratelimitstate.FieldActive)
	return u
}

// SetResetAt sets the "reset_at" field.
func (u *RateLimitStateUpsert) SetResetAt(v time.Time) *RateLimitStateUpsert {
	u.Set(ratelimitstate.FieldResetAt, v)
	return u
}

// UpdateResetAt sets the "reset_at" field to the value that was provided on create.
func (u *RateLimitStateUpsert) UpdateResetAt() *RateLimitStateUpsert {
	u.SetExcluded(ratelimitstate.FieldResetAt)
	return u
}

// ClearResetAt clears the value of the "reset_at" field.
func (u *RateLimitStateUpsert) ClearResetAt() *RateLimitStateUpsert {
	u.SetNull(ratelimitstate.FieldResetAt)
	return u
}

// SetReason sets the "reason" field.
func (u *RateLimitStateUpsert) SetReason(v string) *RateLimitStateUpsert {
	u.Set(ratelimitstate.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RateLimitStateUpsert) UpdateReason() *RateLimitStateUpsert {
	u.SetExcluded(ratelimitstate.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *RateLimitStateUpsert) ClearReason() *RateLimitStateUpsert {
	u.SetNull(ratelimitstate.FieldReason)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RateLimitStateUpsert) SetUpdatedAt(v time.Time) *RateLimitStateUpsert {
	u.Set(ratelimitstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RateLimitStateUpsert) UpdateUpdatedAt() *RateLimitStateUpsert {
	u.SetExcluded(ratelimitstate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RateLimitState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ratelimitstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RateLimitStateUpsertOne) UpdateNewValues() *RateLimitStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ratelimitstate.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RateLimitStateUpsertOne) Ignore() *RateLimitStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitStateUpsertOne) DoNothing() *RateLimitStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitStateCreate.OnConflict
// documentation for more info.
func (u *RateLimitStateUpsertOne) Update(set func(*RateLimitStateUpsert)) *RateLimitStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetActive sets the "active" field.
func (u *RateLimitStateUpsertOne) SetActive(v bool) *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *RateLimitStateUpsertOne) UpdateActive() *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.UpdateActive()
	})
}

// SetResetAt sets the "reset_at" field.
func (u *RateLimitStateUpsertOne) SetResetAt(v time.Time) *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.SetResetAt(v)
	})
}

// UpdateResetAt sets the "reset_at" field to the value that was provided on create.
func (u *RateLimitStateUpsertOne) UpdateResetAt() *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.UpdateResetAt()
	})
}

// ClearResetAt clears the value of the "reset_at" field.
func (u *RateLimitStateUpsertOne) ClearResetAt() *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.ClearResetAt()
	})
}

// SetReason sets the "reason" field.
func (u *RateLimitStateUpsertOne) SetReason(v string) *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RateLimitStateUpsertOne) UpdateReason() *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *RateLimitStateUpsertOne) ClearReason() *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.ClearReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RateLimitStateUpsertOne) SetUpdatedAt(v time.Time) *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RateLimitStateUpsertOne) UpdateUpdatedAt() *RateLimitStateUpsertOne {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RateLimitStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RateLimitStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RateLimitStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RateLimitStateCreateBulk is the builder for creating many RateLimitState entities in bulk.
type RateLimitStateCreateBulk struct {
	config
	err      error
	builders []*RateLimitStateCreate
	conflict []sql.ConflictOption
}

// Save creates the RateLimitState entities in the database.
func (_c *RateLimitStateCreateBulk) Save(ctx context.Context) ([]*RateLimitState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RateLimitState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RateLimitStateMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
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
func (_c *RateLimitStateCreateBulk) SaveX(ctx context.Context) []*RateLimitState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RateLimitState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RateLimitStateUpsert) {
//			SetActive(v+v).
//		}).
//		Exec(ctx)
func (_c *RateLimitStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *RateLimitStateUpsertBulk {
	_c.conflict = opts
	return &RateLimitStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RateLimitState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RateLimitStateCreateBulk) OnConflictColumns(columns ...string) *RateLimitStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RateLimitStateUpsertBulk{
		create: _c,
	}
}

// RateLimitStateUpsertBulk is the builder for "upsert"-ing
// a bulk of RateLimitState nodes.
type RateLimitStateUpsertBulk struct {
	create *RateLimitStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RateLimitState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ratelimitstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RateLimitStateUpsertBulk) UpdateNewValues() *RateLimitStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ratelimitstate.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RateLimitState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RateLimitStateUpsertBulk) Ignore() *RateLimitStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RateLimitStateUpsertBulk) DoNothing() *RateLimitStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RateLimitStateCreateBulk.OnConflict
// documentation for more info.
func (u *RateLimitStateUpsertBulk) Update(set func(*RateLimitStateUpsert)) *RateLimitStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RateLimitStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetActive sets the "active" field.
func (u *RateLimitStateUpsertBulk) SetActive(v bool) *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *RateLimitStateUpsertBulk) UpdateActive() *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.UpdateActive()
	})
}

// SetResetAt sets the "reset_at" field.
func (u *RateLimitStateUpsertBulk) SetResetAt(v time.Time) *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.SetResetAt(v)
	})
}

// UpdateResetAt sets the "reset_at" field to the value that was provided on create.
func (u *RateLimitStateUpsertBulk) UpdateResetAt() *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.UpdateResetAt()
	})
}

// ClearResetAt clears the value of the "reset_at" field.
func (u *RateLimitStateUpsertBulk) ClearResetAt() *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.ClearResetAt()
	})
}

// SetReason sets the "reason" field.
func (u *RateLimitStateUpsertBulk) SetReason(v string) *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RateLimitStateUpsertBulk) UpdateReason() *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *RateLimitStateUpsertBulk) ClearReason() *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.ClearReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RateLimitStateUpsertBulk) SetUpdatedAt(v time.Time) *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RateLimitStateUpsertBulk) UpdateUpdatedAt() *RateLimitStateUpsertBulk {
	return u.Update(func(s *RateLimitStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RateLimitStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RateLimitStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RateLimitStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RateLimitStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
