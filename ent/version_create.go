// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/ent/version"
)

// VersionCreate is the builder for creating a Version entity.
type VersionCreate struct {
	config
	mutation *VersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *VersionCreate) SetProjectID(v string) *VersionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetBuildID sets the "build_id" field.
func (_c *VersionCreate) SetBuildID(v string) *VersionCreate {
	_c.mutation.SetBuildID(v)
	return _c
}

// SetDisplayCounter sets the "display_counter" field.
func (_c *VersionCreate) SetDisplayCounter(v int) *VersionCreate {
	_c.mutation.SetDisplayCounter(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *VersionCreate) SetDisplayName(v string) *VersionCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetMajor sets the "major" field.
func (_c *VersionCreate) SetMajor(v int) *VersionCreate {
	_c.mutation.SetMajor(v)
	return _c
}

// SetNillableMajor sets the "major" field if the given value is not nil.
func (_c *VersionCreate) SetNillableMajor(v *int) *VersionCreate {
	if v != nil {
		_c.SetMajor(*v)
	}
	return _c
}

// SetMinor sets the "minor" field.
func (_c *VersionCreate) SetMinor(v int) *VersionCreate {
	_c.mutation.SetMinor(v)
	return _c
}

// SetNillableMinor sets the "minor" field if the given value is not nil.
func (_c *VersionCreate) SetNillableMinor(v *int) *VersionCreate {
	if v != nil {
		_c.SetMinor(*v)
	}
	return _c
}

// SetPatch sets the "patch" field.
func (_c *VersionCreate) SetPatch(v int) *VersionCreate {
	_c.mutation.SetPatch(v)
	return _c
}

// SetNillablePatch sets the "patch" field if the given value is not nil.
func (_c *VersionCreate) SetNillablePatch(v *int) *VersionCreate {
	if v != nil {
		_c.SetPatch(*v)
	}
	return _c
}

// SetChangeType sets the "change_type" field.
func (_c *VersionCreate) SetChangeType(v version.ChangeType) *VersionCreate {
	_c.mutation.SetChangeType(v)
	return _c
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_c *VersionCreate) SetNillableChangeType(v *version.ChangeType) *VersionCreate {
	if v != nil {
		_c.SetChangeType(*v)
	}
	return _c
}

// SetAgentSessionID sets the "agent_session_id" field.
func (_c *VersionCreate) SetAgentSessionID(v string) *VersionCreate {
	_c.mutation.SetAgentSessionID(v)
	return _c
}

// SetNillableAgentSessionID sets the "agent_session_id" field if the given value is not nil.
func (_c *VersionCreate) SetNillableAgentSessionID(v *string) *VersionCreate {
	if v != nil {
		_c.SetAgentSessionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VersionCreate) SetCreatedAt(v time.Time) *VersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VersionCreate) SetNillableCreatedAt(v *time.Time) *VersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VersionCreate) SetID(v string) *VersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *VersionCreate) SetProject(v *Project) *VersionCreate {
	return _c.SetProjectID(v.ID)
}

// SetBuild sets the "build" edge to the Build entity.
func (_c *VersionCreate) SetBuild(v *Build) *VersionCreate {
	return _c.SetBuildID(v.ID)
}

// Mutation returns the VersionMutation object of the builder.
func (_c *VersionCreate) Mutation() *VersionMutation {
	return _c.mutation
}

// Save creates the Version in the database.
func (_c *VersionCreate) Save(ctx context.Context) (*Version, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VersionCreate) SaveX(ctx context.Context) *Version {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VersionCreate) defaults() {
	if _, ok := _c.mutation.Major(); !ok {
		v := version.DefaultMajor
		_c.mutation.SetMajor(v)
	}
	if _, ok := _c.mutation.Minor(); !ok {
		v := version.DefaultMinor
		_c.mutation.SetMinor(v)
	}
	if _, ok := _c.mutation.Patch(); !ok {
		v := version.DefaultPatch
		_c.mutation.SetPatch(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := version.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VersionCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Version.project_id"`)}
	}
	if _, ok := _c.mutation.BuildID(); !ok {
		return &ValidationError{Name: "build_id", err: errors.New(`ent: missing required field "Version.build_id"`)}
	}
	if _, ok := _c.mutation.DisplayCounter(); !ok {
		return &ValidationError{Name: "display_counter", err: errors.New(`ent: missing required field "Version.display_counter"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Version.display_name"`)}
	}
	if _, ok := _c.mutation.Major(); !ok {
		return &ValidationError{Name: "major", err: errors.New(`ent: missing required field "Version.major"`)}
	}
	if _, ok := _c.mutation.Minor(); !ok {
		return &ValidationError{Name: "minor", err: errors.New(`ent: missing required field "Version.minor"`)}
	}
	if _, ok := _c.mutation.Patch(); !ok {
		return &ValidationError{Name: "patch", err: errors.New(`ent: missing required field "Version.patch"`)}
	}
	if v, ok := _c.mutation.ChangeType(); ok {
		if err := version.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "Version.change_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Version.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := version.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Version.id": %w`, err)}
		}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Version.project"`)}
	}
	if len(_c.mutation.BuildIDs()) == 0 {
		return &ValidationError{Name: "build", err: errors.New(`ent: missing required edge "Version.build"`)}
	}
	return nil
}

func (_c *VersionCreate) sqlSave(ctx context.Context) (*Version, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Version.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VersionCreate) createSpec() (*Version, *sqlgraph.CreateSpec) {
	var (
		_node = &Version{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(version.Table, sqlgraph.NewFieldSpec(version.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DisplayCounter(); ok {
		_spec.SetField(version.FieldDisplayCounter, field.TypeInt, value)
		_node.DisplayCounter = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(version.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Major(); ok {
		_spec.SetField(version.FieldMajor, field.TypeInt, value)
		_node.Major = value
	}
	if value, ok := _c.mutation.Minor(); ok {
		_spec.SetField(version.FieldMinor, field.TypeInt, value)
		_node.Minor = value
	}
	if value, ok := _c.mutation.Patch(); ok {
		_spec.SetField(version.FieldPatch, field.TypeInt, value)
		_node.Patch = value
	}
	if value, ok := _c.mutation.ChangeType(); ok {
		_spec.SetField(version.FieldChangeType, field.TypeEnum, value)
		_node.ChangeType = value
	}
	if value, ok := _c.mutation.AgentSessionID(); ok {
		_spec.SetField(version.FieldAgentSessionID, field.TypeString, value)
		_node.AgentSessionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(version.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   version.ProjectTable,
			Columns: []string{version.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BuildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   version.BuildTable,
			Columns: []string{version.BuildColumn},
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
//	client.Version.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VersionUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *VersionCreate) OnConflict(opts ...sql.ConflictOption) *VersionUpsertOne {
	_c.conflict = opts
	return &VersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Version.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VersionCreate) OnConflictColumns(columns ...string) *VersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VersionUpsertOne{
		create: _c,
	}
}

type (
	// VersionUpsertOne is the builder for "upsert"-ing
	//  one Version node.
	VersionUpsertOne struct {
		create *VersionCreate
	}

	// VersionUpsert is the "OnConflict" setter.
	VersionUpsert struct {
		*sql.UpdateSet
	}
)

// SetDisplayCounter sets the "display_counter" field.
func (u *VersionUpsert) SetDisplayCounter(v int) *VersionUpsert {
	u.Set(version.FieldDisplayCounter, v)
	return u
}

// UpdateDisplayCounter sets the "display_counter" field to the value that was provided on create.
func (u *VersionUpsert) UpdateDisplayCounter() *VersionUpsert {
	u.SetExcluded(version.FieldDisplayCounter)
	return u
}

// AddDisplayCounter adds v to the "display_counter" field.
func (u *VersionUpsert) AddDisplayCounter(v int) *VersionUpsert {
	u.Add(version.FieldDisplayCounter, v)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *VersionUpsert) SetDisplayName(v string) *VersionUpsert {
	u.Set(version.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *VersionUpsert) UpdateDisplayName() *VersionUpsert {
	u.SetExcluded(version.FieldDisplayName)
	return u
}

// SetMajor sets the "major" field.
func (u *VersionUpsert) SetMajor(v int) *VersionUpsert {
	u.Set(version.FieldMajor, v)
	return u
}

// UpdateMajor sets the "major" field to the value that was provided on create.
func (u *VersionUpsert) UpdateMajor() *VersionUpsert {
	u.SetExcluded(version.FieldMajor)
	return u
}

// AddMajor adds v to the "major" field.
func (u *VersionUpsert) AddMajor(v int) *VersionUpsert {
	u.Add(version.FieldMajor, v)
	return u
}

// SetMinor sets the "minor" field.
func (u *VersionUpsert) SetMinor(v int) *VersionUpsert {
	u.Set(version.FieldMinor, v)
	return u
}

// UpdateMinor sets the "minor" field to the value that was provided on create.
func (u *VersionUpsert) UpdateMinor() *VersionUpsert {
	u.SetExcluded(version.FieldMinor)
	return u
}

// AddMinor adds v to the "minor" field.
func (u *VersionUpsert) AddMinor(v int) *VersionUpsert {
	u.Add(version.FieldMinor, v)
	return u
}

// SetPatch sets the "patch" field.
func (u *VersionUpsert) SetPatch(v int) *VersionUpsert {
	u.Set(version.FieldPatch, v)
	return u
}

// UpdatePatch sets the "patch" field to the value that was provided on create.
func (u *VersionUpsert) UpdatePatch() *VersionUpsert {
	u.SetExcluded(version.FieldPatch)
	return u
}

// AddPatch adds v to the "patch" field.
func (u *VersionUpsert) AddPatch(v int) *VersionUpsert {
	u.Add(version.FieldPatch, v)
	return u
}

// SetChangeType sets the "change_type" field.
func (u *VersionUpsert) SetChangeType(v version.ChangeType) *VersionUpsert {
	u.Set(version.FieldChangeType, v)
	return u
}

// UpdateChangeType sets the "change_type" field to the value that was provided on create.
func (u *VersionUpsert) UpdateChangeType() *VersionUpsert {
	u.SetExcluded(version.FieldChangeType)
	return u
}

// ClearChangeType clears the value of the "change_type" field.
func (u *VersionUpsert) ClearChangeType() *VersionUpsert {
	u.SetNull(version.FieldChangeType)
	return u
}

// SetAgentSessionID sets the "agent_session_id" field.
func (u *VersionUpsert) SetAgentSessionID(v string) *VersionUpsert {
	u.Set(version.FieldAgentSessionID, v)
	return u
}

// UpdateAgentSessionID sets the "agent_session_id" field to the value that was provided on create.
func (u *VersionUpsert) UpdateAgentSessionID() *VersionUpsert {
	u.SetExcluded(version.FieldAgentSessionID)
	return u
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (u *VersionUpsert) ClearAgentSessionID() *VersionUpsert {
	u.SetNull(version.FieldAgentSessionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Version.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(version.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VersionUpsertOne) UpdateNewValues() *VersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(version.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(version.FieldProjectID)
		}
		if _, exists := u.create.mutation.BuildID(); exists {
			s.SetIgnore(version.FieldBuildID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(version.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Version.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VersionUpsertOne) Ignore() *VersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VersionUpsertOne) DoNothing() *VersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VersionCreate.OnConflict
// documentation for more info.
func (u *VersionUpsertOne) Update(set func(*VersionUpsert)) *VersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayCounter sets the "display_counter" field.
func (u *VersionUpsertOne) SetDisplayCounter(v int) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.SetDisplayCounter(v)
	})
}

// AddDisplayCounter adds v to the "display_counter" field.
func (u *VersionUpsertOne) AddDisplayCounter(v int) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.AddDisplayCounter(v)
	})
}

// UpdateDisplayCounter sets the "display_counter" field to the value that was provided on create.
func (u *VersionUpsertOne) UpdateDisplayCounter() *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateDisplayCounter()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *VersionUpsertOne) SetDisplayName(v string) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *VersionUpsertOne) UpdateDisplayName() *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateDisplayName()
	})
}

// SetMajor sets the "major" field.
func (u *VersionUpsertOne) SetMajor(v int) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.SetMajor(v)
	})
}

// AddMajor adds v to the "major" field.
func (u *VersionUpsertOne) AddMajor(v int) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.AddMajor(v)
	})
}

// UpdateMajor sets the "major" field to the value that was provided on create.
func (u *VersionUpsertOne) UpdateMajor() *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateMajor()
	})
}

// SetMinor sets the "minor" field.
func (u *VersionUpsertOne) SetMinor(v int) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.SetMinor(v)
	})
}

// AddMinor adds v to the "minor" field.
func (u *VersionUpsertOne) AddMinor(v int) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.AddMinor(v)
	})
}

// UpdateMinor sets the "minor" field to the value that was provided on create.
func (u *VersionUpsertOne) UpdateMinor() *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateMinor()
	})
}

// SetPatch sets the "patch" field.
func (u *VersionUpsertOne) SetPatch(v int) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.SetPatch(v)
	})
}

// AddPatch adds v to the "patch" field.
func (u *VersionUpsertOne) AddPatch(v int) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.AddPatch(v)
	})
}

// UpdatePatch sets the "patch" field to the value that was provided on create.
func (u *VersionUpsertOne) UpdatePatch() *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.UpdatePatch()
	})
}

// SetChangeType sets the "change_type" field.
func (u *VersionUpsertOne) SetChangeType(v version.ChangeType) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.SetChangeType(v)
	})
}

// UpdateChangeType sets the "change_type" field to the value that was provided on create.
func (u *VersionUpsertOne) UpdateChangeType() *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateChangeType()
	})
}

// ClearChangeType clears the value of the "change_type" field.
func (u *VersionUpsertOne) ClearChangeType() *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.ClearChangeType()
	})
}

// SetAgentSessionID sets the "agent_session_id" field.
func (u *VersionUpsertOne) SetAgentSessionID(v string) *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.SetAgentSessionID(v)
	})
}

// UpdateAgentSessionID sets the "agent_session_id" field to the value that was provided on create.
func (u *VersionUpsertOne) UpdateAgentSessionID() *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateAgentSessionID()
	})
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (u *VersionUpsertOne) ClearAgentSessionID() *VersionUpsertOne {
	return u.Update(func(s *VersionUpsert) {
		s.ClearAgentSessionID()
	})
}

// Exec executes the query.
func (u *VersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VersionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VersionUpsertOne.ID is not supported by MySQL driver. Use VersionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VersionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VersionCreateBulk is the builder for creating many Version entities in bulk.
type VersionCreateBulk struct {
	config
	err      error
	builders []*VersionCreate
	conflict []sql.ConflictOption
}

// Save creates the Version entities in the database.
func (_c *VersionCreateBulk) Save(ctx context.Context) ([]*Version, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Version, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VersionMutation)
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
func (_c *VersionCreateBulk) SaveX(ctx context.Context) []*Version {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Version.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VersionUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *VersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *VersionUpsertBulk {
	_c.conflict = opts
	return &VersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Version.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VersionCreateBulk) OnConflictColumns(columns ...string) *VersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VersionUpsertBulk{
		create: _c,
	}
}

// VersionUpsertBulk is the builder for "upsert"-ing
// a bulk of Version nodes.
type VersionUpsertBulk struct {
	create *VersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Version.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(version.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VersionUpsertBulk) UpdateNewValues() *VersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(version.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(version.FieldProjectID)
			}
			if _, exists := b.mutation.BuildID(); exists {
				s.SetIgnore(version.FieldBuildID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(version.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Version.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VersionUpsertBulk) Ignore() *VersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VersionUpsertBulk) DoNothing() *VersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VersionCreateBulk.OnConflict
// documentation for more info.
func (u *VersionUpsertBulk) Update(set func(*VersionUpsert)) *VersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayCounter sets the "display_counter" field.
func (u *VersionUpsertBulk) SetDisplayCounter(v int) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.SetDisplayCounter(v)
	})
}

// AddDisplayCounter adds v to the "display_counter" field.
func (u *VersionUpsertBulk) AddDisplayCounter(v int) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.AddDisplayCounter(v)
	})
}

// UpdateDisplayCounter sets the "display_counter" field to the value that was provided on create.
func (u *VersionUpsertBulk) UpdateDisplayCounter() *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateDisplayCounter()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *VersionUpsertBulk) SetDisplayName(v string) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *VersionUpsertBulk) UpdateDisplayName() *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateDisplayName()
	})
}

// SetMajor sets the "major" field.
func (u *VersionUpsertBulk) SetMajor(v int) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.SetMajor(v)
	})
}

// AddMajor adds v to the "major" field.
func (u *VersionUpsertBulk) AddMajor(v int) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.AddMajor(v)
	})
}

// UpdateMajor sets the "major" field to the value that was provided on create.
func (u *VersionUpsertBulk) UpdateMajor() *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateMajor()
	})
}

// SetMinor sets the "minor" field.
func (u *VersionUpsertBulk) SetMinor(v int) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.SetMinor(v)
	})
}

// AddMinor adds v to the "minor" field.
func (u *VersionUpsertBulk) AddMinor(v int) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.AddMinor(v)
	})
}

// UpdateMinor sets the "minor" field to the value that was provided on create.
func (u *VersionUpsertBulk) UpdateMinor() *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateMinor()
	})
}

// SetPatch sets the "patch" field.
func (u *VersionUpsertBulk) SetPatch(v int) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.SetPatch(v)
	})
}

// AddPatch adds v to the "patch" field.
func (u *VersionUpsertBulk) AddPatch(v int) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.AddPatch(v)
	})
}

// UpdatePatch sets the "patch" field to the value that was provided on create.
func (u *VersionUpsertBulk) UpdatePatch() *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.UpdatePatch()
	})
}

// SetChangeType sets the "change_type" field.
func (u *VersionUpsertBulk) SetChangeType(v version.ChangeType) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.SetChangeType(v)
	})
}

// UpdateChangeType sets the "change_type" field to the value that was provided on create.
func (u *VersionUpsertBulk) UpdateChangeType() *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateChangeType()
	})
}

// ClearChangeType clears the value of the "change_type" field.
func (u *VersionUpsertBulk) ClearChangeType() *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.ClearChangeType()
	})
}

// SetAgentSessionID sets the "agent_session_id" field.
func (u *VersionUpsertBulk) SetAgentSessionID(v string) *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.SetAgentSessionID(v)
	})
}

// UpdateAgentSessionID sets the "agent_session_id" field to the value that was provided on create.
func (u *VersionUpsertBulk) UpdateAgentSessionID() *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.UpdateAgentSessionID()
	})
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (u *VersionUpsertBulk) ClearAgentSessionID() *VersionUpsertBulk {
	return u.Update(func(s *VersionUpsert) {
		s.ClearAgentSessionID()
	})
}

// Exec executes the query.
func (u *VersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
