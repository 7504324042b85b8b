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
	"github.com/appforge/forge/ent/job"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobID sets the "job_id" field.
func (_c *JobCreate) SetJobID(v string) *JobCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetQueue sets the "queue" field.
func (_c *JobCreate) SetQueue(v string) *JobCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetName sets the "name" field.
func (_c *JobCreate) SetName(v string) *JobCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *JobCreate) SetPayload(v map[string]interface{}) *JobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v int) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *int) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *JobCreate) SetAttempt(v int) *JobCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *JobCreate) SetNillableAttempt(v *int) *JobCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *JobCreate) SetMaxAttempts(v int) *JobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetRunAt sets the "run_at" field.
func (_c *JobCreate) SetRunAt(v time.Time) *JobCreate {
	_c.mutation.SetRunAt(v)
	return _c
}

// SetNillableRunAt sets the "run_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableRunAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetRunAt(*v)
	}
	return _c
}

// SetDelayUntilRollbackComplete sets the "delay_until_rollback_complete" field.
func (_c *JobCreate) SetDelayUntilRollbackComplete(v bool) *JobCreate {
	_c.mutation.SetDelayUntilRollbackComplete(v)
	return _c
}

// SetNillableDelayUntilRollbackComplete sets the "delay_until_rollback_complete" field if the given value is not nil.
func (_c *JobCreate) SetNillableDelayUntilRollbackComplete(v *bool) *JobCreate {
	if v != nil {
		_c.SetDelayUntilRollbackComplete(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *JobCreate) SetLockedBy(v string) *JobCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *JobCreate) SetNillableLockedBy(v *string) *JobCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *JobCreate) SetLockedAt(v time.Time) *JobCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLockedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *JobCreate) SetHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *JobCreate) SetLastError(v string) *JobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastError(v *string) *JobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *JobCreate) SetFinishedAt(v time.Time) *JobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableFinishedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := job.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := job.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		v := job.DefaultRunAt()
		_c.mutation.SetRunAt(v)
	}
	if _, ok := _c.mutation.DelayUntilRollbackComplete(); !ok {
		v := job.DefaultDelayUntilRollbackComplete
		_c.mutation.SetDelayUntilRollbackComplete(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Job.job_id"`)}
	}
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "Job.queue"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Job.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "Job.attempt"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Job.max_attempts"`)}
	}
	if _, ok := _c.mutation.RunAt(); !ok {
		return &ValidationError{Name: "run_at", err: errors.New(`ent: missing required field "Job.run_at"`)}
	}
	if _, ok := _c.mutation.DelayUntilRollbackComplete(); !ok {
		return &ValidationError{Name: "delay_until_rollback_complete", err: errors.New(`ent: missing required field "Job.delay_until_rollback_complete"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(job.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(job.FieldQueue, field.TypeString, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(job.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(job.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(job.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.RunAt(); ok {
		_spec.SetField(job.FieldRunAt, field.TypeTime, value)
		_node.RunAt = value
	}
	if value, ok := _c.mutation.DelayUntilRollbackComplete(); ok {
		_spec.SetField(job.FieldDelayUntilRollbackComplete, field.TypeBool, value)
		_node.DelayUntilRollbackComplete = value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(job.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(job.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.Create().
//		SetJobID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreate) OnConflict(opts ...sql.ConflictOption) *JobUpsertOne {
	_c.conflict = opts
	return &JobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreate) OnConflictColumns(columns ...string) *JobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertOne{
		create: _c,
	}
}

type (
	// JobUpsertOne is the builder for "upsert"-ing
	//  one Job node.
	JobUpsertOne struct {
		create *JobCreate
	}

	// JobUpsert is the "OnConflict" setter.
	JobUpsert struct {
		*sql.UpdateSet
	}
)

// SetPayload sets the "payload" field.
func (u *JobUpsert) SetPayload(v map[string]interface{}) *JobUpsert {
	u.Set(job.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *JobUpsert) UpdatePayload() *JobUpsert {
	u.SetExcluded(job.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *JobUpsert) ClearPayload() *JobUpsert {
	u.SetNull(job.FieldPayload)
	return u
}

// SetStatus sets the "status" field.
func (u *JobUpsert) SetStatus(v job.Status) *JobUpsert {
	u.Set(job.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsert) UpdateStatus() *JobUpsert {
	u.SetExcluded(job.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *JobUpsert) SetPriority(v int) *JobUpsert {
	u.Set(job.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsert) UpdatePriority() *JobUpsert {
	u.SetExcluded(job.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsert) AddPriority(v int) *JobUpsert {
	u.Add(job.FieldPriority, v)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *JobUpsert) SetAttempt(v int) *JobUpsert {
	u.Set(job.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *JobUpsert) UpdateAttempt() *JobUpsert {
	u.SetExcluded(job.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *JobUpsert) AddAttempt(v int) *JobUpsert {
	u.Add(job.FieldAttempt, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *JobUpsert) SetMaxAttempts(v int) *JobUpsert {
	u.Set(job.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *JobUpsert) UpdateMaxAttempts() *JobUpsert {
	u.SetExcluded(job.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *JobUpsert) AddMaxAttempts(v int) *JobUpsert {
	u.Add(job.FieldMaxAttempts, v)
	return u
}

// SetRunAt sets the "run_at" field.
func (u *JobUpsert) SetRunAt(v time.Time) *JobUpsert {
	u.Set(job.FieldRunAt, v)
	return u
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateRunAt() *JobUpsert {
	u.SetExcluded(job.FieldRunAt)
	return u
}

// SetDelayUntilRollbackComplete sets the "delay_until_rollback_complete" field.
func (u *JobUpsert) SetDelayUntilRollbackComplete(v bool) *JobUpsert {
	u.Set(job.FieldDelayUntilRollbackComplete, v)
	return u
}

// UpdateDelayUntilRollbackComplete sets the "delay_until_rollback_complete" field to the value that was provided on create.
func (u *JobUpsert) UpdateDelayUntilRollbackComplete() *JobUpsert {
	u.SetExcluded(job.FieldDelayUntilRollbackComplete)
	return u
}

// SetLockedBy sets the "locked_by" field.
func (u *JobUpsert) SetLockedBy(v string) *JobUpsert {
	u.Set(job.FieldLockedBy, v)
	return u
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *JobUpsert) UpdateLockedBy() *JobUpsert {
	u.SetExcluded(job.FieldLockedBy)
	return u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *JobUpsert) ClearLockedBy() *JobUpsert {
	u.SetNull(job.FieldLockedBy)
	return u
}

// SetLockedAt sets the "locked_at" field.
func (u *JobUpsert) SetLockedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldLockedAt, v)
	return u
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateLockedAt() *JobUpsert {
	u.SetExcluded(job.FieldLockedAt)
	return u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *JobUpsert) ClearLockedAt() *JobUpsert {
	u.SetNull(job.FieldLockedAt)
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *JobUpsert) SetHeartbeatAt(v time.Time) *JobUpsert {
	u.Set(job.FieldHeartbeatAt, v)
	return u
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateHeartbeatAt() *JobUpsert {
	u.SetExcluded(job.FieldHeartbeatAt)
	return u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *JobUpsert) ClearHeartbeatAt() *JobUpsert {
	u.SetNull(job.FieldHeartbeatAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *JobUpsert) SetLastError(v string) *JobUpsert {
	u.Set(job.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *JobUpsert) UpdateLastError() *JobUpsert {
	u.SetExcluded(job.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *JobUpsert) ClearLastError() *JobUpsert {
	u.SetNull(job.FieldLastError)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *JobUpsert) SetFinishedAt(v time.Time) *JobUpsert {
	u.Set(job.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *JobUpsert) UpdateFinishedAt() *JobUpsert {
	u.SetExcluded(job.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *JobUpsert) ClearFinishedAt() *JobUpsert {
	u.SetNull(job.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertOne) UpdateNewValues() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(job.FieldID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(job.FieldJobID)
		}
		if _, exists := u.create.mutation.Queue(); exists {
			s.SetIgnore(job.FieldQueue)
		}
		if _, exists := u.create.mutation.Name(); exists {
			s.SetIgnore(job.FieldName)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(job.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *JobUpsertOne) Ignore() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertOne) DoNothing() *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreate.OnConflict
// documentation for more info.
func (u *JobUpsertOne) Update(set func(*JobUpsert)) *JobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *JobUpsertOne) SetPayload(v map[string]interface{}) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePayload() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *JobUpsertOne) ClearPayload() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertOne) SetStatus(v job.Status) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateStatus() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *JobUpsertOne) SetPriority(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsertOne) AddPriority(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertOne) UpdatePriority() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetAttempt sets the "attempt" field.
func (u *JobUpsertOne) SetAttempt(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *JobUpsertOne) AddAttempt(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateAttempt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAttempt()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *JobUpsertOne) SetMaxAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *JobUpsertOne) AddMaxAttempts(v int) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateMaxAttempts() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetRunAt sets the "run_at" field.
func (u *JobUpsertOne) SetRunAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateRunAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRunAt()
	})
}

// SetDelayUntilRollbackComplete sets the "delay_until_rollback_complete" field.
func (u *JobUpsertOne) SetDelayUntilRollbackComplete(v bool) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetDelayUntilRollbackComplete(v)
	})
}

// UpdateDelayUntilRollbackComplete sets the "delay_until_rollback_complete" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateDelayUntilRollbackComplete() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDelayUntilRollbackComplete()
	})
}

// SetLockedBy sets the "locked_by" field.
func (u *JobUpsertOne) SetLockedBy(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLockedBy(v)
	})
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLockedBy() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLockedBy()
	})
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *JobUpsertOne) ClearLockedBy() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLockedBy()
	})
}

// SetLockedAt sets the "locked_at" field.
func (u *JobUpsertOne) SetLockedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLockedAt(v)
	})
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLockedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLockedAt()
	})
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *JobUpsertOne) ClearLockedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLockedAt()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *JobUpsertOne) SetHeartbeatAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *JobUpsertOne) ClearHeartbeatAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *JobUpsertOne) SetLastError(v string) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateLastError() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *JobUpsertOne) ClearLastError() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastError()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *JobUpsertOne) SetFinishedAt(v time.Time) *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *JobUpsertOne) UpdateFinishedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *JobUpsertOne) ClearFinishedAt() *JobUpsertOne {
	return u.Update(func(s *JobUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *JobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: JobUpsertOne.ID is not supported by MySQL driver. Use JobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *JobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
	conflict []sql.ConflictOption
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Job.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.JobUpsert) {
//			SetJobID(v+v).
//		}).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflict(opts ...sql.ConflictOption) *JobUpsertBulk {
	_c.conflict = opts
	return &JobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *JobCreateBulk) OnConflictColumns(columns ...string) *JobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &JobUpsertBulk{
		create: _c,
	}
}

// JobUpsertBulk is the builder for "upsert"-ing
// a bulk of Job nodes.
type JobUpsertBulk struct {
	create *JobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(job.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *JobUpsertBulk) UpdateNewValues() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(job.FieldID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(job.FieldJobID)
			}
			if _, exists := b.mutation.Queue(); exists {
				s.SetIgnore(job.FieldQueue)
			}
			if _, exists := b.mutation.Name(); exists {
				s.SetIgnore(job.FieldName)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(job.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Job.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *JobUpsertBulk) Ignore() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *JobUpsertBulk) DoNothing() *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the JobCreateBulk.OnConflict
// documentation for more info.
func (u *JobUpsertBulk) Update(set func(*JobUpsert)) *JobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&JobUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *JobUpsertBulk) SetPayload(v map[string]interface{}) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePayload() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *JobUpsertBulk) ClearPayload() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearPayload()
	})
}

// SetStatus sets the "status" field.
func (u *JobUpsertBulk) SetStatus(v job.Status) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateStatus() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *JobUpsertBulk) SetPriority(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *JobUpsertBulk) AddPriority(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdatePriority() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdatePriority()
	})
}

// SetAttempt sets the "attempt" field.
func (u *JobUpsertBulk) SetAttempt(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *JobUpsertBulk) AddAttempt(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateAttempt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateAttempt()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *JobUpsertBulk) SetMaxAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *JobUpsertBulk) AddMaxAttempts(v int) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateMaxAttempts() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetRunAt sets the "run_at" field.
func (u *JobUpsertBulk) SetRunAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetRunAt(v)
	})
}

// UpdateRunAt sets the "run_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateRunAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateRunAt()
	})
}

// SetDelayUntilRollbackComplete sets the "delay_until_rollback_complete" field.
func (u *JobUpsertBulk) SetDelayUntilRollbackComplete(v bool) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetDelayUntilRollbackComplete(v)
	})
}

// UpdateDelayUntilRollbackComplete sets the "delay_until_rollback_complete" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateDelayUntilRollbackComplete() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateDelayUntilRollbackComplete()
	})
}

// SetLockedBy sets the "locked_by" field.
func (u *JobUpsertBulk) SetLockedBy(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLockedBy(v)
	})
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLockedBy() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLockedBy()
	})
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *JobUpsertBulk) ClearLockedBy() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLockedBy()
	})
}

// SetLockedAt sets the "locked_at" field.
func (u *JobUpsertBulk) SetLockedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLockedAt(v)
	})
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLockedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLockedAt()
	})
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *JobUpsertBulk) ClearLockedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLockedAt()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *JobUpsertBulk) SetHeartbeatAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *JobUpsertBulk) ClearHeartbeatAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *JobUpsertBulk) SetLastError(v string) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateLastError() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *JobUpsertBulk) ClearLastError() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearLastError()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *JobUpsertBulk) SetFinishedAt(v time.Time) *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *JobUpsertBulk) UpdateFinishedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *JobUpsertBulk) ClearFinishedAt() *JobUpsertBulk {
	return u.Update(func(s *JobUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *JobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the JobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for JobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *JobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
