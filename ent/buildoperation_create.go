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
	"github.com/appforge/forge/ent/buildoperation"
)

// BuildOperationCreate is the builder for creating a BuildOperation entity.
type BuildOperationCreate struct {
	config
	mutation *BuildOperationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *BuildOperationCreate) SetProjectID(v string) *BuildOperationCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetOperationID sets the "operation_id" field.
func (_c *BuildOperationCreate) SetOperationID(v string) *BuildOperationCreate {
	_c.mutation.SetOperationID(v)
	return _c
}

// SetBuildID sets the "build_id" field.
func (_c *BuildOperationCreate) SetBuildID(v string) *BuildOperationCreate {
	_c.mutation.SetBuildID(v)
	return _c
}

// SetVersionID sets the "version_id" field.
func (_c *BuildOperationCreate) SetVersionID(v string) *BuildOperationCreate {
	_c.mutation.SetVersionID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *BuildOperationCreate) SetJobID(v string) *BuildOperationCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *BuildOperationCreate) SetNillableJobID(v *string) *BuildOperationCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BuildOperationCreate) SetStatus(v buildoperation.Status) *BuildOperationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BuildOperationCreate) SetNillableStatus(v *buildoperation.Status) *BuildOperationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BuildOperationCreate) SetCreatedAt(v time.Time) *BuildOperationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BuildOperationCreate) SetNillableCreatedAt(v *time.Time) *BuildOperationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BuildOperationMutation object of the builder.
func (_c *BuildOperationCreate) Mutation() *BuildOperationMutation {
	return _c.mutation
}

// Save creates the BuildOperation in the database.
func (_c *BuildOperationCreate) Save(ctx context.Context) (*BuildOperation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BuildOperationCreate) SaveX(ctx context.Context) *BuildOperation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildOperationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildOperationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BuildOperationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := buildoperation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := buildoperation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BuildOperationCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "BuildOperation.project_id"`)}
	}
	if _, ok := _c.mutation.OperationID(); !ok {
		return &ValidationError{Name: "operation_id", err: errors.New(`ent: missing required field "BuildOperation.operation_id"`)}
	}
	if _, ok := _c.mutation.BuildID(); !ok {
		return &ValidationError{Name: "build_id", err: errors.New(`ent: missing required field "BuildOperation.build_id"`)}
	}
	if _, ok := _c.mutation.VersionID(); !ok {
		return &ValidationError{Name: "version_id", err: errors.New(`ent: missing required field "BuildOperation.version_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BuildOperation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := buildoperation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BuildOperation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BuildOperation.created_at"`)}
	}
	return nil
}

func (_c *BuildOperationCreate) sqlSave(ctx context.Context) (*BuildOperation, error) {
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

func (_c *BuildOperationCreate) createSpec() (*BuildOperation, *sqlgraph.CreateSpec) {
	var (
		_node = &BuildOperation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(buildoperation.Table, sqlgraph.NewFieldSpec(buildoperation.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(buildoperation.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.OperationID(); ok {
		_spec.SetField(buildoperation.FieldOperationID, field.TypeString, value)
		_node.OperationID = value
	}
	if value, ok := _c.mutation.BuildID(); ok {
		_spec.SetField(buildoperation.FieldBuildID, field.TypeString, value)
		_node.BuildID = value
	}
	if value, ok := _c.mutation.VersionID(); ok {
		_spec.SetField(buildoperation.FieldVersionID, field.TypeString, value)
		_node.VersionID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(buildoperation.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(buildoperation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(buildoperation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BuildOperation.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildOperationUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildOperationCreate) OnConflict(opts ...sql.ConflictOption) *BuildOperationUpsertOne {
	_c.conflict = opts
	return &BuildOperationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BuildOperation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildOperationCreate) OnConflictColumns(columns ...string) *BuildOperationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildOperationUpsertOne{
		create: _c,
	}
}

type (
	// BuildOperationUpsertOne is the builder for "upsert"-ing
	//  one BuildOperation node.
	BuildOperationUpsertOne struct {
		create *BuildOperationCreate
	}

	// BuildOperationUpsert is the "OnConflict" setter.
	BuildOperationUpsert struct {
		*sql.UpdateSet
	}
)

// SetJobID sets the "job_id" field.
func (u *BuildOperationUpsert) SetJobID(v string) *BuildOperationUpsert {
	u.Set(buildoperation.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *BuildOperationUpsert) UpdateJobID() *BuildOperationUpsert {
	u.SetExcluded(buildoperation.FieldJobID)
	return u
}

// ClearJobID clears the value of the "job_id" field.
func (u *BuildOperationUpsert) ClearJobID() *BuildOperationUpsert {
	u.SetNull(buildoperation.FieldJobID)
	return u
}

// SetStatus sets the "status" field.
func (u *BuildOperationUpsert) SetStatus(v buildoperation.Status) *BuildOperationUpsert {
	u.Set(buildoperation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BuildOperationUpsert) UpdateStatus() *BuildOperationUpsert {
	u.SetExcluded(buildoperation.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BuildOperation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BuildOperationUpsertOne) UpdateNewValues() *BuildOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(buildoperation.FieldProjectID)
		}
		if _, exists := u.create.mutation.OperationID(); exists {
			s.SetIgnore(buildoperation.FieldOperationID)
		}
		if _, exists := u.create.mutation.BuildID(); exists {
			s.SetIgnore(buildoperation.FieldBuildID)
		}
		if _, exists := u.create.mutation.VersionID(); exists {
			s.SetIgnore(buildoperation.FieldVersionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(buildoperation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BuildOperation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BuildOperationUpsertOne) Ignore() *BuildOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildOperationUpsertOne) DoNothing() *BuildOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildOperationCreate.OnConflict
// documentation for more info.
func (u *BuildOperationUpsertOne) Update(set func(*BuildOperationUpsert)) *BuildOperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildOperationUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobID sets the "job_id" field.
func (u *BuildOperationUpsertOne) SetJobID(v string) *BuildOperationUpsertOne {
	return u.Update(func(s *BuildOperationUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *BuildOperationUpsertOne) UpdateJobID() *BuildOperationUpsertOne {
	return u.Update(func(s *BuildOperationUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *BuildOperationUpsertOne) ClearJobID() *BuildOperationUpsertOne {
	return u.Update(func(s *BuildOperationUpsert) {
		s.ClearJobID()
	})
}

// SetStatus sets the "status" field.
func (u *BuildOperationUpsertOne) SetStatus(v buildoperation.Status) *BuildOperationUpsertOne {
	return u.Update(func(s *BuildOperationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BuildOperationUpsertOne) UpdateStatus() *BuildOperationUpsertOne {
	return u.Update(func(s *BuildOperationUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *BuildOperationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildOperationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildOperationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BuildOperationUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BuildOperationUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BuildOperationCreateBulk is the builder for creating many BuildOperation entities in bulk.
type BuildOperationCreateBulk struct {
	config
	err      error
	builders []*BuildOperationCreate
	conflict []sql.ConflictOption
}

// Save creates the BuildOperation entities in the database.
func (_c *BuildOperationCreateBulk) Save(ctx context.Context) ([]*BuildOperation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BuildOperation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuildOperationMutation)
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
func (_c *BuildOperationCreateBulk) SaveX(ctx context.Context) []*BuildOperation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildOperationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildOperationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BuildOperation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildOperationUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildOperationCreateBulk) OnConflict(opts ...sql.ConflictOption) *BuildOperationUpsertBulk {
	_c.conflict = opts
	return &BuildOperationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BuildOperation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildOperationCreateBulk) OnConflictColumns(columns ...string) *BuildOperationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildOperationUpsertBulk{
		create: _c,
	}
}

// BuildOperationUpsertBulk is the builder for "upsert"-ing
// a bulk of BuildOperation nodes.
type BuildOperationUpsertBulk struct {
	create *BuildOperationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BuildOperation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BuildOperationUpsertBulk) UpdateNewValues() *BuildOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(buildoperation.FieldProjectID)
			}
			if _, exists := b.mutation.OperationID(); exists {
				s.SetIgnore(buildoperation.FieldOperationID)
			}
			if _, exists := b.mutation.BuildID(); exists {
				s.SetIgnore(buildoperation.FieldBuildID)
			}
			if _, exists := b.mutation.VersionID(); exists {
				s.SetIgnore(buildoperation.FieldVersionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(buildoperation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BuildOperation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BuildOperationUpsertBulk) Ignore() *BuildOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildOperationUpsertBulk) DoNothing() *BuildOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildOperationCreateBulk.OnConflict
// documentation for more info.
func (u *BuildOperationUpsertBulk) Update(set func(*BuildOperationUpsert)) *BuildOperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildOperationUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobID sets the "job_id" field.
func (u *BuildOperationUpsertBulk) SetJobID(v string) *BuildOperationUpsertBulk {
	return u.Update(func(s *BuildOperationUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *BuildOperationUpsertBulk) UpdateJobID() *BuildOperationUpsertBulk {
	return u.Update(func(s *BuildOperationUpsert) {
		s.UpdateJobID()
	})
}

// ClearJobID clears the value of the "job_id" field.
func (u *BuildOperationUpsertBulk) ClearJobID() *BuildOperationUpsertBulk {
	return u.Update(func(s *BuildOperationUpsert) {
		s.ClearJobID()
	})
}

// SetStatus sets the "status" field.
func (u *BuildOperationUpsertBulk) SetStatus(v buildoperation.Status) *BuildOperationUpsertBulk {
	return u.Update(func(s *BuildOperationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BuildOperationUpsertBulk) UpdateStatus() *BuildOperationUpsertBulk {
	return u.Update(func(s *BuildOperationUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *BuildOperationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BuildOperationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildOperationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildOperationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
