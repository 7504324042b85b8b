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
	"github.com/appforge/forge/ent/usagerecord"
)

// UsageRecordCreate is the builder for creating a UsageRecord entity.
type UsageRecordCreate struct {
	config
	mutation *UsageRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuildID sets the "build_id" field.
func (_c *UsageRecordCreate) SetBuildID(v string) *UsageRecordCreate {
	_c.mutation.SetBuildID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UsageRecordCreate) SetUserID(v string) *UsageRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *UsageRecordCreate) SetStartedAt(v time.Time) *UsageRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableStartedAt(v *time.Time) *UsageRecordCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *UsageRecordCreate) SetEndedAt(v time.Time) *UsageRecordCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableEndedAt(v *time.Time) *UsageRecordCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetSeconds sets the "seconds" field.
func (_c *UsageRecordCreate) SetSeconds(v int64) *UsageRecordCreate {
	_c.mutation.SetSeconds(v)
	return _c
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableSeconds(v *int64) *UsageRecordCreate {
	if v != nil {
		_c.SetSeconds(*v)
	}
	return _c
}

// SetRefunded sets the "refunded" field.
func (_c *UsageRecordCreate) SetRefunded(v bool) *UsageRecordCreate {
	_c.mutation.SetRefunded(v)
	return _c
}

// SetNillableRefunded sets the "refunded" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableRefunded(v *bool) *UsageRecordCreate {
	if v != nil {
		_c.SetRefunded(*v)
	}
	return _c
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_c *UsageRecordCreate) Mutation() *UsageRecordMutation {
	return _c.mutation
}

// Save creates the UsageRecord in the database.
func (_c *UsageRecordCreate) Save(ctx context.Context) (*UsageRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageRecordCreate) SaveX(ctx context.Context) *UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageRecordCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := usagerecord.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Seconds(); !ok {
		v := usagerecord.DefaultSeconds
		_c.mutation.SetSeconds(v)
	}
	if _, ok := _c.mutation.Refunded(); !ok {
		v := usagerecord.DefaultRefunded
		_c.mutation.SetRefunded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageRecordCreate) check() error {
	if _, ok := _c.mutation.BuildID(); !ok {
		return &ValidationError{Name: "build_id", err: errors.New(`ent: missing required field "UsageRecord.build_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageRecord.user_id"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "UsageRecord.started_at"`)}
	}
	if _, ok := _c.mutation.Seconds(); !ok {
		return &ValidationError{Name: "seconds", err: errors.New(`ent: missing required field "UsageRecord.seconds"`)}
	}
	if _, ok := _c.mutation.Refunded(); !ok {
		return &ValidationError{Name: "refunded", err: errors.New(`ent: missing required field "UsageRecord.refunded"`)}
	}
	return nil
}

func (_c *UsageRecordCreate) sqlSave(ctx context.Context) (*UsageRecord, error) {
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

func (_c *UsageRecordCreate) createSpec() (*UsageRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagerecord.Table, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.BuildID(); ok {
		_spec.SetField(usagerecord.FieldBuildID, field.TypeString, value)
		_node.BuildID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usagerecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(usagerecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(usagerecord.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.Seconds(); ok {
		_spec.SetField(usagerecord.FieldSeconds, field.TypeInt64, value)
		_node.Seconds = value
	}
	if value, ok := _c.mutation.Refunded(); ok {
		_spec.SetField(usagerecord.FieldRefunded, field.TypeBool, value)
		_node.Refunded = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageRecord.Create().
//		SetBuildID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageRecordUpsert) {
//			SetBuildID(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageRecordCreate) OnConflict(opts ...sql.ConflictOption) *UsageRecordUpsertOne {
	_c.conflict = opts
	return &UsageRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageRecordCreate) OnConflictColumns(columns ...string) *UsageRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageRecordUpsertOne{
		create: _c,
	}
}

type (
	// UsageRecordUpsertOne is the builder for "upsert"-ing
	//  one UsageRecord node.
	UsageRecordUpsertOne struct {
		create *UsageRecordCreate
	}

	// UsageRecordUpsert is the "OnConflict" setter.
	UsageRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetEndedAt sets the "ended_at" field.
func (u *UsageRecordUpsert) SetEndedAt(v time.Time) *UsageRecordUpsert {
	u.Set(usagerecord.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateEndedAt() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *UsageRecordUpsert) ClearEndedAt() *UsageRecordUpsert {
	u.SetNull(usagerecord.FieldEndedAt)
	return u
}

// SetSeconds sets the "seconds" field.
func (u *UsageRecordUpsert) SetSeconds(v int64) *UsageRecordUpsert {
	u.Set(usagerecord.FieldSeconds, v)
	return u
}

// UpdateSeconds sets the "seconds" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateSeconds() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldSeconds)
	return u
}

// AddSeconds adds v to the "seconds" field.
func (u *UsageRecordUpsert) AddSeconds(v int64) *UsageRecordUpsert {
	u.Add(usagerecord.FieldSeconds, v)
	return u
}

// SetRefunded sets the "refunded" field.
func (u *UsageRecordUpsert) SetRefunded(v bool) *UsageRecordUpsert {
	u.Set(usagerecord.FieldRefunded, v)
	return u
}

// UpdateRefunded sets the "refunded" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateRefunded() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldRefunded)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UsageRecordUpsertOne) UpdateNewValues() *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.BuildID(); exists {
			s.SetIgnore(usagerecord.FieldBuildID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(usagerecord.FieldUserID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(usagerecord.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UsageRecordUpsertOne) Ignore() *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageRecordUpsertOne) DoNothing() *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageRecordCreate.OnConflict
// documentation for more info.
func (u *UsageRecordUpsertOne) Update(set func(*UsageRecordUpsert)) *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *UsageRecordUpsertOne) SetEndedAt(v time.Time) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateEndedAt() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *UsageRecordUpsertOne) ClearEndedAt() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.ClearEndedAt()
	})
}

// SetSeconds sets the "seconds" field.
func (u *UsageRecordUpsertOne) SetSeconds(v int64) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetSeconds(v)
	})
}

// AddSeconds adds v to the "seconds" field.
func (u *UsageRecordUpsertOne) AddSeconds(v int64) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddSeconds(v)
	})
}

// UpdateSeconds sets the "seconds" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateSeconds() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateSeconds()
	})
}

// SetRefunded sets the "refunded" field.
func (u *UsageRecordUpsertOne) SetRefunded(v bool) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetRefunded(v)
	})
}

// UpdateRefunded sets the "refunded" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateRefunded() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateRefunded()
	})
}

// Exec executes the query.
func (u *UsageRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UsageRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UsageRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UsageRecordCreateBulk is the builder for creating many UsageRecord entities in bulk.
type UsageRecordCreateBulk struct {
	config
	err      error
	builders []*UsageRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the UsageRecord entities in the database.
func (_c *UsageRecordCreateBulk) Save(ctx context.Context) ([]*UsageRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageRecordMutation)
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
func (_c *UsageRecordCreateBulk) SaveX(ctx context.Context) []*UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageRecordUpsert) {
//			SetBuildID(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *UsageRecordUpsertBulk {
	_c.conflict = opts
	return &UsageRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageRecordCreateBulk) OnConflictColumns(columns ...string) *UsageRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageRecordUpsertBulk{
		create: _c,
	}
}

// UsageRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of UsageRecord nodes.
type UsageRecordUpsertBulk struct {
	create *UsageRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UsageRecordUpsertBulk) UpdateNewValues() *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.BuildID(); exists {
				s.SetIgnore(usagerecord.FieldBuildID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(usagerecord.FieldUserID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(usagerecord.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UsageRecordUpsertBulk) Ignore() *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageRecordUpsertBulk) DoNothing() *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageRecordCreateBulk.OnConflict
// documentation for more info.
func (u *UsageRecordUpsertBulk) Update(set func(*UsageRecordUpsert)) *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *UsageRecordUpsertBulk) SetEndedAt(v time.Time) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateEndedAt() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *UsageRecordUpsertBulk) ClearEndedAt() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.ClearEndedAt()
	})
}

// SetSeconds sets the "seconds" field.
func (u *UsageRecordUpsertBulk) SetSeconds(v int64) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetSeconds(v)
	})
}

// AddSeconds adds v to the "seconds" field.
func (u *UsageRecordUpsertBulk) AddSeconds(v int64) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddSeconds(v)
	})
}

// UpdateSeconds sets the "seconds" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateSeconds() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateSeconds()
	})
}

// SetRefunded sets the "refunded" field.
func (u *UsageRecordUpsertBulk) SetRefunded(v bool) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetRefunded(v)
	})
}

// UpdateRefunded sets the "refunded" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateRefunded() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateRefunded()
	})
}

// Exec executes the query.
func (u *UsageRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UsageRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
