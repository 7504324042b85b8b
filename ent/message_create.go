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
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/ent/project"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *MessageCreate) SetProjectID(v string) *MessageCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *MessageCreate) SetSeq(v int64) *MessageCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetActorType sets the "actor_type" field.
func (_c *MessageCreate) SetActorType(v message.ActorType) *MessageCreate {
	_c.mutation.SetActorType(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *MessageCreate) SetMode(v message.Mode) *MessageCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *MessageCreate) SetNillableMode(v *message.Mode) *MessageCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetParentMessageID sets the "parent_message_id" field.
func (_c *MessageCreate) SetParentMessageID(v string) *MessageCreate {
	_c.mutation.SetParentMessageID(v)
	return _c
}

// SetNillableParentMessageID sets the "parent_message_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableParentMessageID(v *string) *MessageCreate {
	if v != nil {
		_c.SetParentMessageID(*v)
	}
	return _c
}

// SetBuildID sets the "build_id" field.
func (_c *MessageCreate) SetBuildID(v string) *MessageCreate {
	_c.mutation.SetBuildID(v)
	return _c
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableBuildID(v *string) *MessageCreate {
	if v != nil {
		_c.SetBuildID(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *MessageCreate) SetResponse(v map[string]interface{}) *MessageCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *MessageCreate) SetProject(v *Project) *MessageCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := message.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Message.project_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Message.seq"`)}
	}
	if _, ok := _c.mutation.ActorType(); !ok {
		return &ValidationError{Name: "actor_type", err: errors.New(`ent: missing required field "Message.actor_type"`)}
	}
	if v, ok := _c.mutation.ActorType(); ok {
		if err := message.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "Message.actor_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "Message.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := message.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Message.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Message.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Message.project"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(message.FieldSeq, field.TypeInt64, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.ActorType(); ok {
		_spec.SetField(message.FieldActorType, field.TypeEnum, value)
		_node.ActorType = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(message.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.ParentMessageID(); ok {
		_spec.SetField(message.FieldParentMessageID, field.TypeString, value)
		_node.ParentMessageID = &value
	}
	if value, ok := _c.mutation.BuildID(); ok {
		_spec.SetField(message.FieldBuildID, field.TypeString, value)
		_node.BuildID = &value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(message.FieldResponse, field.TypeJSON, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ProjectTable,
			Columns: []string{message.ProjectColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetActorType sets the "actor_type" field.
func (u *MessageUpsert) SetActorType(v message.ActorType) *MessageUpsert {
	u.Set(message.FieldActorType, v)
	return u
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *MessageUpsert) UpdateActorType() *MessageUpsert {
	u.SetExcluded(message.FieldActorType)
	return u
}

// SetMode sets the "mode" field.
func (u *MessageUpsert) SetMode(v message.Mode) *MessageUpsert {
	u.Set(message.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *MessageUpsert) UpdateMode() *MessageUpsert {
	u.SetExcluded(message.FieldMode)
	return u
}

// SetParentMessageID sets the "parent_message_id" field.
func (u *MessageUpsert) SetParentMessageID(v string) *MessageUpsert {
	u.Set(message.FieldParentMessageID, v)
	return u
}

// UpdateParentMessageID sets the "parent_message_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateParentMessageID() *MessageUpsert {
	u.SetExcluded(message.FieldParentMessageID)
	return u
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (u *MessageUpsert) ClearParentMessageID() *MessageUpsert {
	u.SetNull(message.FieldParentMessageID)
	return u
}

// SetBuildID sets the "build_id" field.
func (u *MessageUpsert) SetBuildID(v string) *MessageUpsert {
	u.Set(message.FieldBuildID, v)
	return u
}

// UpdateBuildID sets the "build_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateBuildID() *MessageUpsert {
	u.SetExcluded(message.FieldBuildID)
	return u
}

// ClearBuildID clears the value of the "build_id" field.
func (u *MessageUpsert) ClearBuildID() *MessageUpsert {
	u.SetNull(message.FieldBuildID)
	return u
}

// SetContent sets the "content" field.
func (u *MessageUpsert) SetContent(v string) *MessageUpsert {
	u.Set(message.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsert) UpdateContent() *MessageUpsert {
	u.SetExcluded(message.FieldContent)
	return u
}

// SetResponse sets the "response" field.
func (u *MessageUpsert) SetResponse(v map[string]interface{}) *MessageUpsert {
	u.Set(message.FieldResponse, v)
	return u
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *MessageUpsert) UpdateResponse() *MessageUpsert {
	u.SetExcluded(message.FieldResponse)
	return u
}

// ClearResponse clears the value of the "response" field.
func (u *MessageUpsert) ClearResponse() *MessageUpsert {
	u.SetNull(message.FieldResponse)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(message.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(message.FieldProjectID)
		}
		if _, exists := u.create.mutation.Seq(); exists {
			s.SetIgnore(message.FieldSeq)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetActorType sets the "actor_type" field.
func (u *MessageUpsertOne) SetActorType(v message.ActorType) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateActorType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateActorType()
	})
}

// SetMode sets the "mode" field.
func (u *MessageUpsertOne) SetMode(v message.Mode) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateMode() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMode()
	})
}

// SetParentMessageID sets the "parent_message_id" field.
func (u *MessageUpsertOne) SetParentMessageID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetParentMessageID(v)
	})
}

// UpdateParentMessageID sets the "parent_message_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateParentMessageID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateParentMessageID()
	})
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (u *MessageUpsertOne) ClearParentMessageID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearParentMessageID()
	})
}

// SetBuildID sets the "build_id" field.
func (u *MessageUpsertOne) SetBuildID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetBuildID(v)
	})
}

// UpdateBuildID sets the "build_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateBuildID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateBuildID()
	})
}

// ClearBuildID clears the value of the "build_id" field.
func (u *MessageUpsertOne) ClearBuildID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearBuildID()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertOne) SetContent(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateContent() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetResponse sets the "response" field.
func (u *MessageUpsertOne) SetResponse(v map[string]interface{}) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateResponse() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateResponse()
	})
}

// ClearResponse clears the value of the "response" field.
func (u *MessageUpsertOne) ClearResponse() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearResponse()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageUpsertOne.ID is not supported by MySQL driver. Use MessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(message.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(message.FieldProjectID)
			}
			if _, exists := b.mutation.Seq(); exists {
				s.SetIgnore(message.FieldSeq)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetActorType sets the "actor_type" field.
func (u *MessageUpsertBulk) SetActorType(v message.ActorType) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetActorType(v)
	})
}

// UpdateActorType sets the "actor_type" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateActorType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateActorType()
	})
}

// SetMode sets the "mode" field.
func (u *MessageUpsertBulk) SetMode(v message.Mode) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateMode() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMode()
	})
}

// SetParentMessageID sets the "parent_message_id" field.
func (u *MessageUpsertBulk) SetParentMessageID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetParentMessageID(v)
	})
}

// UpdateParentMessageID sets the "parent_message_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateParentMessageID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateParentMessageID()
	})
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (u *MessageUpsertBulk) ClearParentMessageID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearParentMessageID()
	})
}

// SetBuildID sets the "build_id" field.
func (u *MessageUpsertBulk) SetBuildID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetBuildID(v)
	})
}

// UpdateBuildID sets the "build_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateBuildID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateBuildID()
	})
}

// ClearBuildID clears the value of the "build_id" field.
func (u *MessageUpsertBulk) ClearBuildID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearBuildID()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertBulk) SetContent(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateContent() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetResponse sets the "response" field.
func (u *MessageUpsertBulk) SetResponse(v map[string]interface{}) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateResponse() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateResponse()
	})
}

// ClearResponse clears the value of the "response" field.
func (u *MessageUpsertBulk) ClearResponse() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearResponse()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
