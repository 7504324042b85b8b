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
	"github.com/appforge/forge/ent/queuestate"
)

// QueueStateCreate is the builder for creating a QueueState entity.
type QueueStateCreate struct {
	config
	mutation *QueueStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueue sets the "queue" field.
func (_c *QueueStateCreate) SetQueue(v string) *QueueStateCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetPaused sets the "paused" field.
func (_c *QueueStateCreate) SetPaused(v bool) *QueueStateCreate {
	_c.mutation.SetPaused(v)
	return _c
}

// SetNillablePaused sets the "paused" field if the given value is not nil.
func (_c *QueueStateCreate) SetNillablePaused(v *bool) *QueueStateCreate {
	if v != nil {
		_c.SetPaused(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *QueueStateCreate) SetReason(v string) *QueueStateCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *QueueStateCreate) SetNillableReason(v *string) *QueueStateCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetPausedUntil sets the "paused_until" field.
func (_c *QueueStateCreate) SetPausedUntil(v time.Time) *QueueStateCreate {
	_c.mutation.SetPausedUntil(v)
	return _c
}

// SetNillablePausedUntil sets the "paused_until" field if the given value is not nil.
func (_c *QueueStateCreate) SetNillablePausedUntil(v *time.Time) *QueueStateCreate {
	if v != nil {
		_c.SetPausedUntil(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueueStateCreate) SetUpdatedAt(v time.Time) *QueueStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueueStateCreate) SetNillableUpdatedAt(v *time.Time) *QueueStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the QueueStateMutation object of the builder.
func (_c *QueueStateCreate) Mutation() *QueueStateMutation {
	return _c.mutation
}

// Save creates the QueueState in the database.
func (_c *QueueStateCreate) Save(ctx context.Context) (*QueueState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueStateCreate) SaveX(ctx context.Context) *QueueState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueStateCreate) defaults() {
	if _, ok := _c.mutation.Paused(); !ok {
		v := queuestate.DefaultPaused
		_c.mutation.SetPaused(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := queuestate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueStateCreate) check() error {
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "QueueState.queue"`)}
	}
	if _, ok := _c.mutation.Paused(); !ok {
		return &ValidationError{Name: "paused", err: errors.New(`ent: missing required field "QueueState.paused"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueueState.updated_at"`)}
	}
	return nil
}

func (_c *QueueStateCreate) sqlSave(ctx context.Context) (*QueueState, error) {
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

func (_c *QueueStateCreate) createSpec() (*QueueState, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuestate.Table, sqlgraph.NewFieldSpec(queuestate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(queuestate.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Paused(); ok {
		_spec.SetField(queuestate.FieldPaused, field.TypeBool, value)
		_node.Paused = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(queuestate.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.PausedUntil(); ok {
		_spec.SetField(queuestate.FieldPausedUntil, field.TypeTime, value)
		_node.PausedUntil = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(queuestate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueState.Create().
//		SetQueue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueStateUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueStateCreate) OnConflict(opts ...sql.ConflictOption) *QueueStateUpsertOne {
	_c.conflict = opts
	return &QueueStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueStateCreate) OnConflictColumns(columns ...string) *QueueStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueStateUpsertOne{
		create: _c,
	}
}

type (
	// QueueStateUpsertOne is the builder for "upsert"-ing
	//  one QueueState node.
	QueueStateUpsertOne struct {
		create *QueueStateCreate
	}

	// QueueStateUpsert is the "OnConflict" setter.
	QueueStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetPaused sets the "paused" field.
func (u *QueueStateUpsert) SetPaused(v bool) *QueueStateUpsert {
	u.Set(queuestate.FieldPaused, v)
	return u
}

// UpdatePaused sets the "paused" field to the value that was provided on create.
func (u *QueueStateUpsert) UpdatePaused() *QueueStateUpsert {
	u.SetExcluded(queuestate.FieldPaused)
	return u
}

// SetReason sets the "reason" field.
func (u *QueueStateUpsert) SetReason(v string) *QueueStateUpsert {
	u.Set(queuestate.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *QueueStateUpsert) UpdateReason() *QueueStateUpsert {
	u.SetExcluded(queuestate.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *QueueStateUpsert) ClearReason() *QueueStateUpsert {
	u.SetNull(queuestate.FieldReason)
	return u
}

// SetPausedUntil sets the "paused_until" field.
func (u *QueueStateUpsert) SetPausedUntil(v time.Time) *QueueStateUpsert {
	u.Set(queuestate.FieldPausedUntil, v)
	return u
}

// UpdatePausedUntil sets the "paused_until" field to the value that was provided on create.
func (u *QueueStateUpsert) UpdatePausedUntil() *QueueStateUpsert {
	u.SetExcluded(queuestate.FieldPausedUntil)
	return u
}

// ClearPausedUntil clears the value of the "paused_until" field.
func (u *QueueStateUpsert) ClearPausedUntil() *QueueStateUpsert {
	u.SetNull(queuestate.FieldPausedUntil)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QueueStateUpsert) SetUpdatedAt(v time.Time) *QueueStateUpsert {
	u.Set(queuestate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QueueStateUpsert) UpdateUpdatedAt() *QueueStateUpsert {
	u.SetExcluded(queuestate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QueueState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QueueStateUpsertOne) UpdateNewValues() *QueueStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Queue(); exists {
			s.SetIgnore(queuestate.FieldQueue)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueueStateUpsertOne) Ignore() *QueueStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueStateUpsertOne) DoNothing() *QueueStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueStateCreate.OnConflict
// documentation for more info.
func (u *QueueStateUpsertOne) Update(set func(*QueueStateUpsert)) *QueueStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetPaused sets the "paused" field.
func (u *QueueStateUpsertOne) SetPaused(v bool) *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.SetPaused(v)
	})
}

// UpdatePaused sets the "paused" field to the value that was provided on create.
func (u *QueueStateUpsertOne) UpdatePaused() *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.UpdatePaused()
	})
}

// SetReason sets the "reason" field.
func (u *QueueStateUpsertOne) SetReason(v string) *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *QueueStateUpsertOne) UpdateReason() *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *QueueStateUpsertOne) ClearReason() *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.ClearReason()
	})
}

// SetPausedUntil sets the "paused_until" field.
func (u *QueueStateUpsertOne) SetPausedUntil(v time.Time) *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.SetPausedUntil(v)
	})
}

// UpdatePausedUntil sets the "paused_until" field to the value that was provided on create.
func (u *QueueStateUpsertOne) UpdatePausedUntil() *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.UpdatePausedUntil()
	})
}

// ClearPausedUntil clears the value of the "paused_until" field.
func (u *QueueStateUpsertOne) ClearPausedUntil() *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.ClearPausedUntil()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QueueStateUpsertOne) SetUpdatedAt(v time.Time) *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QueueStateUpsertOne) UpdateUpdatedAt() *QueueStateUpsertOne {
	return u.Update(func(s *QueueStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QueueStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueueStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueueStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueueStateCreateBulk is the builder for creating many QueueState entities in bulk.
type QueueStateCreateBulk struct {
	config
	err      error
	builders []*QueueStateCreate
	conflict []sql.ConflictOption
}

// Save creates the QueueState entities in the database.
func (_c *QueueStateCreateBulk) Save(ctx context.Context) ([]*QueueState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueStateMutation)
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
func (_c *QueueStateCreateBulk) SaveX(ctx context.Context) []*QueueState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueStateUpsert) {
//			SetQueue(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueueStateUpsertBulk {
	_c.conflict = opts
	return &QueueStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueStateCreateBulk) OnConflictColumns(columns ...string) *QueueStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueStateUpsertBulk{
		create: _c,
	}
}

// QueueStateUpsertBulk is the builder for "upsert"-ing
// a bulk of QueueState nodes.
type QueueStateUpsertBulk struct {
	create *QueueStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueueState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QueueStateUpsertBulk) UpdateNewValues() *QueueStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Queue(); exists {
				s.SetIgnore(queuestate.FieldQueue)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueueStateUpsertBulk) Ignore() *QueueStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueStateUpsertBulk) DoNothing() *QueueStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueStateCreateBulk.OnConflict
// documentation for more info.
func (u *QueueStateUpsertBulk) Update(set func(*QueueStateUpsert)) *QueueStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetPaused sets the "paused" field.
func (u *QueueStateUpsertBulk) SetPaused(v bool) *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.SetPaused(v)
	})
}

// UpdatePaused sets the "paused" field to the value that was provided on create.
func (u *QueueStateUpsertBulk) UpdatePaused() *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.UpdatePaused()
	})
}

// SetReason sets the "reason" field.
func (u *QueueStateUpsertBulk) SetReason(v string) *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *QueueStateUpsertBulk) UpdateReason() *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *QueueStateUpsertBulk) ClearReason() *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.ClearReason()
	})
}

// SetPausedUntil sets the "paused_until" field.
func (u *QueueStateUpsertBulk) SetPausedUntil(v time.Time) *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.SetPausedUntil(v)
	})
}

// UpdatePausedUntil sets the "paused_until" field to the value that was provided on create.
func (u *QueueStateUpsertBulk) UpdatePausedUntil() *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.UpdatePausedUntil()
	})
}

// ClearPausedUntil clears the value of the "paused_until" field.
func (u *QueueStateUpsertBulk) ClearPausedUntil() *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.ClearPausedUntil()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QueueStateUpsertBulk) SetUpdatedAt(v time.Time) *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QueueStateUpsertBulk) UpdateUpdatedAt() *QueueStateUpsertBulk {
	return u.Update(func(s *QueueStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QueueStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueueStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
