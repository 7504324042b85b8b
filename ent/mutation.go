// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/appforge/forge/ent/account"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/buildoperation"
	"github.com/appforge/forge/ent/checkpoint"
	"github.com/appforge/forge/ent/event"
	"github.com/appforge/forge/ent/job"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/ent/predicate"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/ent/queuestate"
	"github.com/appforge/forge/ent/ratelimitstate"
	"github.com/appforge/forge/ent/usagerecord"
	"github.com/appforge/forge/ent/version"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount        = "Account"
	TypeBuild          = "Build"
	TypeBuildOperation = "BuildOperation"
	TypeCheckpoint     = "Checkpoint"
	TypeEvent          = "Event"
	TypeJob            = "Job"
	TypeMessage        = "Message"
	TypeProject        = "Project"
	TypeQueueState     = "QueueState"
	TypeRateLimitState = "RateLimitState"
	TypeUsageRecord    = "UsageRecord"
	TypeVersion        = "Version"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	balance_seconds    *int64
	addbalance_seconds *int64
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Account, error)
	predicates         []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id int) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AccountMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AccountMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AccountMutation) ResetUserID() {
	m.user_id = nil
}

// SetBalanceSeconds sets the "balance_seconds" field.
func (m *AccountMutation) SetBalanceSeconds(i int64) {
	m.balance_seconds = &i
	m.addbalance_seconds = nil
}

// BalanceSeconds returns the value of the "balance_seconds" field in the mutation.
func (m *AccountMutation) BalanceSeconds() (r int64, exists bool) {
	v := m.balance_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceSeconds returns the old "balance_seconds" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldBalanceSeconds(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceSeconds: %w", err)
	}
	return oldValue.BalanceSeconds, nil
}

// AddBalanceSeconds adds i to the "balance_seconds" field.
func (m *AccountMutation) AddBalanceSeconds(i int64) {
	if m.addbalance_seconds != nil {
		*m.addbalance_seconds += i
	} else {
		m.addbalance_seconds = &i
	}
}

// AddedBalanceSeconds returns the value that was added to the "balance_seconds" field in this mutation.
func (m *AccountMutation) AddedBalanceSeconds() (r int64, exists bool) {
	v := m.addbalance_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceSeconds resets all changes to the "balance_seconds" field.
func (m *AccountMutation) ResetBalanceSeconds() {
	m.balance_seconds = nil
	m.addbalance_seconds = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, account.FieldUserID)
	}
	if m.balance_seconds != nil {
		fields = append(fields, account.FieldBalanceSeconds)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldUserID:
		return m.UserID()
	case account.FieldBalanceSeconds:
		return m.BalanceSeconds()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldUserID:
		return m.OldUserID(ctx)
	case account.FieldBalanceSeconds:
		return m.OldBalanceSeconds(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case account.FieldBalanceSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceSeconds(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	var fields []string
	if m.addbalance_seconds != nil {
		fields = append(fields, account.FieldBalanceSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case account.FieldBalanceSeconds:
		return m.AddedBalanceSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case account.FieldBalanceSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldUserID:
		m.ResetUserID()
		return nil
	case account.FieldBalanceSeconds:
		m.ResetBalanceSeconds()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Account edge %s", name)
}

// BuildMutation represents an operation that mutates the Build nodes in the graph.
type BuildMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	status            *build.Status
	attempt           *int
	addattempt        *int
	agent_session_id  *string
	is_initial_build  *bool
	prompt            *string
	started_at        *time.Time
	completed_at      *time.Time
	error_type        *string
	error_message     *string
	clearedFields     map[string]struct{}
	project           *string
	clearedproject    bool
	version           *string
	clearedversion    bool
	checkpoint        *int
	clearedcheckpoint bool
	done              bool
	oldValue          func(context.Context) (*Build, error)
	predicates        []predicate.Build
}

var _ ent.Mutation = (*BuildMutation)(nil)

// buildOption allows management of the mutation configuration using functional options.
type buildOption func(*BuildMutation)

// newBuildMutation creates new mutation for the Build entity.
func newBuildMutation(c config, op Op, opts ...buildOption) *BuildMutation {
	m := &BuildMutation{
		config:        c,
		op:            op,
		typ:           TypeBuild,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuildID sets the ID field of the mutation.
func withBuildID(id string) buildOption {
	return func(m *BuildMutation) {
		var (
			err   error
			once  sync.Once
			value *Build
		)
		m.oldValue = func(ctx context.Context) (*Build, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Build.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuild sets the old Build of the mutation.
func withBuild(node *Build) buildOption {
	return func(m *BuildMutation) {
		m.oldValue = func(context.Context) (*Build, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuildMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuildMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Build entities.
func (m *BuildMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuildMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuildMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Build.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *BuildMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *BuildMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *BuildMutation) ResetProjectID() {
	m.project = nil
}

// SetUserID sets the "user_id" field.
func (m *BuildMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BuildMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BuildMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *BuildMutation) SetStatus(b build.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BuildMutation) Status() (r build.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldStatus(ctx context.Context) (v build.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BuildMutation) ResetStatus() {
	m.status = nil
}

// SetAttempt sets the "attempt" field.
func (m *BuildMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *BuildMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *BuildMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *BuildMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *BuildMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetAgentSessionID sets the "agent_session_id" field.
func (m *BuildMutation) SetAgentSessionID(s string) {
	m.agent_session_id = &s
}

// AgentSessionID returns the value of the "agent_session_id" field in the mutation.
func (m *BuildMutation) AgentSessionID() (r string, exists bool) {
	v := m.agent_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentSessionID returns the old "agent_session_id" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldAgentSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentSessionID: %w", err)
	}
	return oldValue.AgentSessionID, nil
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (m *BuildMutation) ClearAgentSessionID() {
	m.agent_session_id = nil
	m.clearedFields[build.FieldAgentSessionID] = struct{}{}
}

// AgentSessionIDCleared returns if the "agent_session_id" field was cleared in this mutation.
func (m *BuildMutation) AgentSessionIDCleared() bool {
	_, ok := m.clearedFields[build.FieldAgentSessionID]
	return ok
}

// ResetAgentSessionID resets all changes to the "agent_session_id" field.
func (m *BuildMutation) ResetAgentSessionID() {
	m.agent_session_id = nil
	delete(m.clearedFields, build.FieldAgentSessionID)
}

// SetIsInitialBuild sets the "is_initial_build" field.
func (m *BuildMutation) SetIsInitialBuild(b bool) {
	m.is_initial_build = &b
}

// IsInitialBuild returns the value of the "is_initial_build" field in the mutation.
func (m *BuildMutation) IsInitialBuild() (r bool, exists bool) {
	v := m.is_initial_build
	if v == nil {
		return
	}
	return *v, true
}

// OldIsInitialBuild returns the old "is_initial_build" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldIsInitialBuild(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsInitialBuild is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsInitialBuild requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsInitialBuild: %w", err)
	}
	return oldValue.IsInitialBuild, nil
}

// ResetIsInitialBuild resets all changes to the "is_initial_build" field.
func (m *BuildMutation) ResetIsInitialBuild() {
	m.is_initial_build = nil
}

// SetPrompt sets the "prompt" field.
func (m *BuildMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *BuildMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *BuildMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[build.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *BuildMutation) PromptCleared() bool {
	_, ok := m.clearedFields[build.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *BuildMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, build.FieldPrompt)
}

// SetStartedAt sets the "started_at" field.
func (m *BuildMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *BuildMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *BuildMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *BuildMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BuildMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BuildMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[build.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BuildMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[build.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BuildMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, build.FieldCompletedAt)
}

// SetErrorType sets the "error_type" field.
func (m *BuildMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *BuildMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *BuildMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[build.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *BuildMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[build.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *BuildMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, build.FieldErrorType)
}

// SetErrorMessage sets the "error_message" field.
func (m *BuildMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BuildMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BuildMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[build.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BuildMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[build.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BuildMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, build.FieldErrorMessage)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *BuildMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[build.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *BuildMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *BuildMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *BuildMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// SetVersionID sets the "version" edge to the Version entity by id.
func (m *BuildMutation) SetVersionID(id string) {
	m.version = &id
}

// ClearVersion clears the "version" edge to the Version entity.
func (m *BuildMutation) ClearVersion() {
	m.clearedversion = true
}

// VersionCleared reports if the "version" edge to the Version entity was cleared.
func (m *BuildMutation) VersionCleared() bool {
	return m.clearedversion
}

// VersionID returns the "version" edge ID in the mutation.
func (m *BuildMutation) VersionID() (id string, exists bool) {
	if m.version != nil {
		return *m.version, true
	}
	return
}

// VersionIDs returns the "version" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VersionID instead. It exists only for internal usage by the builders.
func (m *BuildMutation) VersionIDs() (ids []string) {
	if id := m.version; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVersion resets all changes to the "version" edge.
func (m *BuildMutation) ResetVersion() {
	m.version = nil
	m.clearedversion = false
}

// SetCheckpointID sets the "checkpoint" edge to the Checkpoint entity by id.
func (m *BuildMutation) SetCheckpointID(id int) {
	m.checkpoint = &id
}

// ClearCheckpoint clears the "checkpoint" edge to the Checkpoint entity.
func (m *BuildMutation) ClearCheckpoint() {
	m.clearedcheckpoint = true
}

// CheckpointCleared reports if the "checkpoint" edge to the Checkpoint entity was cleared.
func (m *BuildMutation) CheckpointCleared() bool {
	return m.clearedcheckpoint
}

// CheckpointID returns the "checkpoint" edge ID in the mutation.
func (m *BuildMutation) CheckpointID() (id int, exists bool) {
	if m.checkpoint != nil {
		return *m.checkpoint, true
	}
	return
}

// CheckpointIDs returns the "checkpoint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CheckpointID instead. It exists only for internal usage by the builders.
func (m *BuildMutation) CheckpointIDs() (ids []int) {
	if id := m.checkpoint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCheckpoint resets all changes to the "checkpoint" edge.
func (m *BuildMutation) ResetCheckpoint() {
	m.checkpoint = nil
	m.clearedcheckpoint = false
}

// Where appends a list predicates to the BuildMutation builder.
func (m *BuildMutation) Where(ps ...predicate.Build) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuildMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuildMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Build, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuildMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuildMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Build).
func (m *BuildMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuildMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.project != nil {
		fields = append(fields, build.FieldProjectID)
	}
	if m.user_id != nil {
		fields = append(fields, build.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, build.FieldStatus)
	}
	if m.attempt != nil {
		fields = append(fields, build.FieldAttempt)
	}
	if m.agent_session_id != nil {
		fields = append(fields, build.FieldAgentSessionID)
	}
	if m.is_initial_build != nil {
		fields = append(fields, build.FieldIsInitialBuild)
	}
	if m.prompt != nil {
		fields = append(fields, build.FieldPrompt)
	}
	if m.started_at != nil {
		fields = append(fields, build.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, build.FieldCompletedAt)
	}
	if m.error_type != nil {
		fields = append(fields, build.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, build.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuildMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case build.FieldProjectID:
		return m.ProjectID()
	case build.FieldUserID:
		return m.UserID()
	case build.FieldStatus:
		return m.Status()
	case build.FieldAttempt:
		return m.Attempt()
	case build.FieldAgentSessionID:
		return m.AgentSessionID()
	case build.FieldIsInitialBuild:
		return m.IsInitialBuild()
	case build.FieldPrompt:
		return m.Prompt()
	case build.FieldStartedAt:
		return m.StartedAt()
	case build.FieldCompletedAt:
		return m.CompletedAt()
	case build.FieldErrorType:
		return m.ErrorType()
	case build.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuildMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case build.FieldProjectID:
		return m.OldProjectID(ctx)
	case build.FieldUserID:
		return m.OldUserID(ctx)
	case build.FieldStatus:
		return m.OldStatus(ctx)
	case build.FieldAttempt:
		return m.OldAttempt(ctx)
	case build.FieldAgentSessionID:
		return m.OldAgentSessionID(ctx)
	case build.FieldIsInitialBuild:
		return m.OldIsInitialBuild(ctx)
	case build.FieldPrompt:
		return m.OldPrompt(ctx)
	case build.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case build.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case build.FieldErrorType:
		return m.OldErrorType(ctx)
	case build.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Build field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildMutation) SetField(name string, value ent.Value) error {
	switch name {
	case build.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case build.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case build.FieldStatus:
		v, ok := value.(build.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case build.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case build.FieldAgentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentSessionID(v)
		return nil
	case build.FieldIsInitialBuild:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsInitialBuild(v)
		return nil
	case build.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case build.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case build.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case build.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case build.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Build field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuildMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, build.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuildMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case build.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildMutation) AddField(name string, value ent.Value) error {
	switch name {
	case build.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Build numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuildMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(build.FieldAgentSessionID) {
		fields = append(fields, build.FieldAgentSessionID)
	}
	if m.FieldCleared(build.FieldPrompt) {
		fields = append(fields, build.FieldPrompt)
	}
	if m.FieldCleared(build.FieldCompletedAt) {
		fields = append(fields, build.FieldCompletedAt)
	}
	if m.FieldCleared(build.FieldErrorType) {
		fields = append(fields, build.FieldErrorType)
	}
	if m.FieldCleared(build.FieldErrorMessage) {
		fields = append(fields, build.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuildMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuildMutation) ClearField(name string) error {
	switch name {
	case build.FieldAgentSessionID:
		m.ClearAgentSessionID()
		return nil
	case build.FieldPrompt:
		m.ClearPrompt()
		return nil
	case build.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case build.FieldErrorType:
		m.ClearErrorType()
		return nil
	case build.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Build nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuildMutation) ResetField(name string) error {
	switch name {
	case build.FieldProjectID:
		m.ResetProjectID()
		return nil
	case build.FieldUserID:
		m.ResetUserID()
		return nil
	case build.FieldStatus:
		m.ResetStatus()
		return nil
	case build.FieldAttempt:
		m.ResetAttempt()
		return nil
	case build.FieldAgentSessionID:
		m.ResetAgentSessionID()
		return nil
	case build.FieldIsInitialBuild:
		m.ResetIsInitialBuild()
		return nil
	case build.FieldPrompt:
		m.ResetPrompt()
		return nil
	case build.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case build.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case build.FieldErrorType:
		m.ResetErrorType()
		return nil
	case build.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Build field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuildMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, build.EdgeProject)
	}
	if m.version != nil {
		edges = append(edges, build.EdgeVersion)
	}
	if m.checkpoint != nil {
		edges = append(edges, build.EdgeCheckpoint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuildMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case build.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case build.EdgeVersion:
		if id := m.version; id != nil {
			return []ent.Value{*id}
		}
	case build.EdgeCheckpoint:
		if id := m.checkpoint; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuildMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuildMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuildMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, build.EdgeProject)
	}
	if m.clearedversion {
		edges = append(edges, build.EdgeVersion)
	}
	if m.clearedcheckpoint {
		edges = append(edges, build.EdgeCheckpoint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuildMutation) EdgeCleared(name string) bool {
	switch name {
	case build.EdgeProject:
		return m.clearedproject
	case build.EdgeVersion:
		return m.clearedversion
	case build.EdgeCheckpoint:
		return m.clearedcheckpoint
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuildMutation) ClearEdge(name string) error {
	switch name {
	case build.EdgeProject:
		m.ClearProject()
		return nil
	case build.EdgeVersion:
		m.ClearVersion()
		return nil
	case build.EdgeCheckpoint:
		m.ClearCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown Build unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuildMutation) ResetEdge(name string) error {
	switch name {
	case build.EdgeProject:
		m.ResetProject()
		return nil
	case build.EdgeVersion:
		m.ResetVersion()
		return nil
	case build.EdgeCheckpoint:
		m.ResetCheckpoint()
		return nil
	}
	return fmt.Errorf("unknown Build edge %s", name)
}

// BuildOperationMutation represents an operation that mutates the BuildOperation nodes in the graph.
type BuildOperationMutation struct {
	config
	op            Op
	typ           string
	id            *int
	project_id    *string
	operation_id  *string
	build_id      *string
	version_id    *string
	job_id        *string
	status        *buildoperation.Status
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BuildOperation, error)
	predicates    []predicate.BuildOperation
}

var _ ent.Mutation = (*BuildOperationMutation)(nil)

// buildoperationOption allows management of the mutation configuration using functional options.
type buildoperationOption func(*BuildOperationMutation)

// newBuildOperationMutation creates new mutation for the BuildOperation entity.
func newBuildOperationMutation(c config, op Op, opts ...buildoperationOption) *BuildOperationMutation {
	m := &BuildOperationMutation{
		config:        c,
		op:            op,
		typ:           TypeBuildOperation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuildOperationID sets the ID field of the mutation.
func withBuildOperationID(id int) buildoperationOption {
	return func(m *BuildOperationMutation) {
		var (
			err   error
			once  sync.Once
			value *BuildOperation
		)
		m.oldValue = func(ctx context.Context) (*BuildOperation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BuildOperation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuildOperation sets the old BuildOperation of the mutation.
func withBuildOperation(node *BuildOperation) buildoperationOption {
	return func(m *BuildOperationMutation) {
		m.oldValue = func(context.Context) (*BuildOperation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuildOperationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuildOperationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuildOperationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuildOperationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BuildOperation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *BuildOperationMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *BuildOperationMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the BuildOperation entity.
// If the BuildOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildOperationMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *BuildOperationMutation) ResetProjectID() {
	m.project_id = nil
}

// SetOperationID sets the "operation_id" field.
func (m *BuildOperationMutation) SetOperationID(s string) {
	m.operation_id = &s
}

// OperationID returns the value of the "operation_id" field in the mutation.
func (m *BuildOperationMutation) OperationID() (r string, exists bool) {
	v := m.operation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationID returns the old "operation_id" field's value of the BuildOperation entity.
// If the BuildOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildOperationMutation) OldOperationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationID: %w", err)
	}
	return oldValue.OperationID, nil
}

// ResetOperationID resets all changes to the "operation_id" field.
func (m *BuildOperationMutation) ResetOperationID() {
	m.operation_id = nil
}

// SetBuildID sets the "build_id" field.
func (m *BuildOperationMutation) SetBuildID(s string) {
	m.build_id = &s
}

// BuildID returns the value of the "build_id" field in the mutation.
func (m *BuildOperationMutation) BuildID() (r string, exists bool) {
	v := m.build_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildID returns the old "build_id" field's value of the BuildOperation entity.
// If the BuildOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildOperationMutation) OldBuildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildID: %w", err)
	}
	return oldValue.BuildID, nil
}

// ResetBuildID resets all changes to the "build_id" field.
func (m *BuildOperationMutation) ResetBuildID() {
	m.build_id = nil
}

// SetVersionID sets the "version_id" field.
func (m *BuildOperationMutation) SetVersionID(s string) {
	m.version_id = &s
}

// VersionID returns the value of the "version_id" field in the mutation.
func (m *BuildOperationMutation) VersionID() (r string, exists bool) {
	v := m.version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionID returns the old "version_id" field's value of the BuildOperation entity.
// If the BuildOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildOperationMutation) OldVersionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionID: %w", err)
	}
	return oldValue.VersionID, nil
}

// ResetVersionID resets all changes to the "version_id" field.
func (m *BuildOperationMutation) ResetVersionID() {
	m.version_id = nil
}

// SetJobID sets the "job_id" field.
func (m *BuildOperationMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *BuildOperationMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the BuildOperation entity.
// If the BuildOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildOperationMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *BuildOperationMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[buildoperation.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *BuildOperationMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[buildoperation.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *BuildOperationMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, buildoperation.FieldJobID)
}

// SetStatus sets the "status" field.
func (m *BuildOperationMutation) SetStatus(b buildoperation.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BuildOperationMutation) Status() (r buildoperation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BuildOperation entity.
// If the BuildOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildOperationMutation) OldStatus(ctx context.Context) (v buildoperation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BuildOperationMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BuildOperationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BuildOperationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BuildOperation entity.
// If the BuildOperation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildOperationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BuildOperationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BuildOperationMutation builder.
func (m *BuildOperationMutation) Where(ps ...predicate.BuildOperation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuildOperationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuildOperationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BuildOperation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuildOperationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuildOperationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BuildOperation).
func (m *BuildOperationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuildOperationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.project_id != nil {
		fields = append(fields, buildoperation.FieldProjectID)
	}
	if m.operation_id != nil {
		fields = append(fields, buildoperation.FieldOperationID)
	}
	if m.build_id != nil {
		fields = append(fields, buildoperation.FieldBuildID)
	}
	if m.version_id != nil {
		fields = append(fields, buildoperation.FieldVersionID)
	}
	if m.job_id != nil {
		fields = append(fields, buildoperation.FieldJobID)
	}
	if m.status != nil {
		fields = append(fields, buildoperation.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, buildoperation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuildOperationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case buildoperation.FieldProjectID:
		return m.ProjectID()
	case buildoperation.FieldOperationID:
		return m.OperationID()
	case buildoperation.FieldBuildID:
		return m.BuildID()
	case buildoperation.FieldVersionID:
		return m.VersionID()
	case buildoperation.FieldJobID:
		return m.JobID()
	case buildoperation.FieldStatus:
		return m.Status()
	case buildoperation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuildOperationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case buildoperation.FieldProjectID:
		return m.OldProjectID(ctx)
	case buildoperation.FieldOperationID:
		return m.OldOperationID(ctx)
	case buildoperation.FieldBuildID:
		return m.OldBuildID(ctx)
	case buildoperation.FieldVersionID:
		return m.OldVersionID(ctx)
	case buildoperation.FieldJobID:
		return m.OldJobID(ctx)
	case buildoperation.FieldStatus:
		return m.OldStatus(ctx)
	case buildoperation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BuildOperation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildOperationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case buildoperation.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case buildoperation.FieldOperationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationID(v)
		return nil
	case buildoperation.FieldBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildID(v)
		return nil
	case buildoperation.FieldVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionID(v)
		return nil
	case buildoperation.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case buildoperation.FieldStatus:
		v, ok := value.(buildoperation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case buildoperation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BuildOperation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuildOperationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuildOperationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildOperationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BuildOperation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuildOperationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(buildoperation.FieldJobID) {
		fields = append(fields, buildoperation.FieldJobID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuildOperationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuildOperationMutation) ClearField(name string) error {
	switch name {
	case buildoperation.FieldJobID:
		m.ClearJobID()
		return nil
	}
	return fmt.Errorf("unknown BuildOperation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuildOperationMutation) ResetField(name string) error {
	switch name {
	case buildoperation.FieldProjectID:
		m.ResetProjectID()
		return nil
	case buildoperation.FieldOperationID:
		m.ResetOperationID()
		return nil
	case buildoperation.FieldBuildID:
		m.ResetBuildID()
		return nil
	case buildoperation.FieldVersionID:
		m.ResetVersionID()
		return nil
	case buildoperation.FieldJobID:
		m.ResetJobID()
		return nil
	case buildoperation.FieldStatus:
		m.ResetStatus()
		return nil
	case buildoperation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BuildOperation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuildOperationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuildOperationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuildOperationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuildOperationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuildOperationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuildOperationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuildOperationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BuildOperation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuildOperationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BuildOperation edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	agent_session_id        *string
	preexisting_files       *[]string
	appendpreexisting_files []string
	tokens_used             *int64
	addtokens_used          *int64
	cost_cents              *int64
	addcost_cents           *int64
	last_error              *string
	attempt                 *int
	addattempt              *int
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	build                   *string
	clearedbuild            bool
	done                    bool
	oldValue                func(context.Context) (*Checkpoint, error)
	predicates              []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id int) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuildID sets the "build_id" field.
func (m *CheckpointMutation) SetBuildID(s string) {
	m.build = &s
}

// BuildID returns the value of the "build_id" field in the mutation.
func (m *CheckpointMutation) BuildID() (r string, exists bool) {
	v := m.build
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildID returns the old "build_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldBuildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildID: %w", err)
	}
	return oldValue.BuildID, nil
}

// ResetBuildID resets all changes to the "build_id" field.
func (m *CheckpointMutation) ResetBuildID() {
	m.build = nil
}

// SetAgentSessionID sets the "agent_session_id" field.
func (m *CheckpointMutation) SetAgentSessionID(s string) {
	m.agent_session_id = &s
}

// AgentSessionID returns the value of the "agent_session_id" field in the mutation.
func (m *CheckpointMutation) AgentSessionID() (r string, exists bool) {
	v := m.agent_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentSessionID returns the old "agent_session_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldAgentSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentSessionID: %w", err)
	}
	return oldValue.AgentSessionID, nil
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (m *CheckpointMutation) ClearAgentSessionID() {
	m.agent_session_id = nil
	m.clearedFields[checkpoint.FieldAgentSessionID] = struct{}{}
}

// AgentSessionIDCleared returns if the "agent_session_id" field was cleared in this mutation.
func (m *CheckpointMutation) AgentSessionIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldAgentSessionID]
	return ok
}

// ResetAgentSessionID resets all changes to the "agent_session_id" field.
func (m *CheckpointMutation) ResetAgentSessionID() {
	m.agent_session_id = nil
	delete(m.clearedFields, checkpoint.FieldAgentSessionID)
}

// SetPreexistingFiles sets the "preexisting_files" field.
func (m *CheckpointMutation) SetPreexistingFiles(s []string) {
	m.preexisting_files = &s
	m.appendpreexisting_files = nil
}

// PreexistingFiles returns the value of the "preexisting_files" field in the mutation.
func (m *CheckpointMutation) PreexistingFiles() (r []string, exists bool) {
	v := m.preexisting_files
	if v == nil {
		return
	}
	return *v, true
}

// OldPreexistingFiles returns the old "preexisting_files" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPreexistingFiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreexistingFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreexistingFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreexistingFiles: %w", err)
	}
	return oldValue.PreexistingFiles, nil
}

// AppendPreexistingFiles adds s to the "preexisting_files" field.
func (m *CheckpointMutation) AppendPreexistingFiles(s []string) {
	m.appendpreexisting_files = append(m.appendpreexisting_files, s...)
}

// AppendedPreexistingFiles returns the list of values that were appended to the "preexisting_files" field in this mutation.
func (m *CheckpointMutation) AppendedPreexistingFiles() ([]string, bool) {
	if len(m.appendpreexisting_files) == 0 {
		return nil, false
	}
	return m.appendpreexisting_files, true
}

// ClearPreexistingFiles clears the value of the "preexisting_files" field.
func (m *CheckpointMutation) ClearPreexistingFiles() {
	m.preexisting_files = nil
	m.appendpreexisting_files = nil
	m.clearedFields[checkpoint.FieldPreexistingFiles] = struct{}{}
}

// PreexistingFilesCleared returns if the "preexisting_files" field was cleared in this mutation.
func (m *CheckpointMutation) PreexistingFilesCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldPreexistingFiles]
	return ok
}

// ResetPreexistingFiles resets all changes to the "preexisting_files" field.
func (m *CheckpointMutation) ResetPreexistingFiles() {
	m.preexisting_files = nil
	m.appendpreexisting_files = nil
	delete(m.clearedFields, checkpoint.FieldPreexistingFiles)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *CheckpointMutation) SetTokensUsed(i int64) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *CheckpointMutation) TokensUsed() (r int64, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTokensUsed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *CheckpointMutation) AddTokensUsed(i int64) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *CheckpointMutation) AddedTokensUsed() (r int64, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *CheckpointMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCostCents sets the "cost_cents" field.
func (m *CheckpointMutation) SetCostCents(i int64) {
	m.cost_cents = &i
	m.addcost_cents = nil
}

// CostCents returns the value of the "cost_cents" field in the mutation.
func (m *CheckpointMutation) CostCents() (r int64, exists bool) {
	v := m.cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldCostCents returns the old "cost_cents" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCostCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostCents: %w", err)
	}
	return oldValue.CostCents, nil
}

// AddCostCents adds i to the "cost_cents" field.
func (m *CheckpointMutation) AddCostCents(i int64) {
	if m.addcost_cents != nil {
		*m.addcost_cents += i
	} else {
		m.addcost_cents = &i
	}
}

// AddedCostCents returns the value that was added to the "cost_cents" field in this mutation.
func (m *CheckpointMutation) AddedCostCents() (r int64, exists bool) {
	v := m.addcost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostCents resets all changes to the "cost_cents" field.
func (m *CheckpointMutation) ResetCostCents() {
	m.cost_cents = nil
	m.addcost_cents = nil
}

// SetLastError sets the "last_error" field.
func (m *CheckpointMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *CheckpointMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *CheckpointMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[checkpoint.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *CheckpointMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *CheckpointMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, checkpoint.FieldLastError)
}

// SetAttempt sets the "attempt" field.
func (m *CheckpointMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *CheckpointMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *CheckpointMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *CheckpointMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *CheckpointMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CheckpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CheckpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CheckpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBuild clears the "build" edge to the Build entity.
func (m *CheckpointMutation) ClearBuild() {
	m.clearedbuild = true
	m.clearedFields[checkpoint.FieldBuildID] = struct{}{}
}

// BuildCleared reports if the "build" edge to the Build entity was cleared.
func (m *CheckpointMutation) BuildCleared() bool {
	return m.clearedbuild
}

// BuildIDs returns the "build" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuildID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) BuildIDs() (ids []string) {
	if id := m.build; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuild resets all changes to the "build" edge.
func (m *CheckpointMutation) ResetBuild() {
	m.build = nil
	m.clearedbuild = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.build != nil {
		fields = append(fields, checkpoint.FieldBuildID)
	}
	if m.agent_session_id != nil {
		fields = append(fields, checkpoint.FieldAgentSessionID)
	}
	if m.preexisting_files != nil {
		fields = append(fields, checkpoint.FieldPreexistingFiles)
	}
	if m.tokens_used != nil {
		fields = append(fields, checkpoint.FieldTokensUsed)
	}
	if m.cost_cents != nil {
		fields = append(fields, checkpoint.FieldCostCents)
	}
	if m.last_error != nil {
		fields = append(fields, checkpoint.FieldLastError)
	}
	if m.attempt != nil {
		fields = append(fields, checkpoint.FieldAttempt)
	}
	if m.updated_at != nil {
		fields = append(fields, checkpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldBuildID:
		return m.BuildID()
	case checkpoint.FieldAgentSessionID:
		return m.AgentSessionID()
	case checkpoint.FieldPreexistingFiles:
		return m.PreexistingFiles()
	case checkpoint.FieldTokensUsed:
		return m.TokensUsed()
	case checkpoint.FieldCostCents:
		return m.CostCents()
	case checkpoint.FieldLastError:
		return m.LastError()
	case checkpoint.FieldAttempt:
		return m.Attempt()
	case checkpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldBuildID:
		return m.OldBuildID(ctx)
	case checkpoint.FieldAgentSessionID:
		return m.OldAgentSessionID(ctx)
	case checkpoint.FieldPreexistingFiles:
		return m.OldPreexistingFiles(ctx)
	case checkpoint.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case checkpoint.FieldCostCents:
		return m.OldCostCents(ctx)
	case checkpoint.FieldLastError:
		return m.OldLastError(ctx)
	case checkpoint.FieldAttempt:
		return m.OldAttempt(ctx)
	case checkpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildID(v)
		return nil
	case checkpoint.FieldAgentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentSessionID(v)
		return nil
	case checkpoint.FieldPreexistingFiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreexistingFiles(v)
		return nil
	case checkpoint.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case checkpoint.FieldCostCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostCents(v)
		return nil
	case checkpoint.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case checkpoint.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case checkpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, checkpoint.FieldTokensUsed)
	}
	if m.addcost_cents != nil {
		fields = append(fields, checkpoint.FieldCostCents)
	}
	if m.addattempt != nil {
		fields = append(fields, checkpoint.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldTokensUsed:
		return m.AddedTokensUsed()
	case checkpoint.FieldCostCents:
		return m.AddedCostCents()
	case checkpoint.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case checkpoint.FieldCostCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostCents(v)
		return nil
	case checkpoint.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldAgentSessionID) {
		fields = append(fields, checkpoint.FieldAgentSessionID)
	}
	if m.FieldCleared(checkpoint.FieldPreexistingFiles) {
		fields = append(fields, checkpoint.FieldPreexistingFiles)
	}
	if m.FieldCleared(checkpoint.FieldLastError) {
		fields = append(fields, checkpoint.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldAgentSessionID:
		m.ClearAgentSessionID()
		return nil
	case checkpoint.FieldPreexistingFiles:
		m.ClearPreexistingFiles()
		return nil
	case checkpoint.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldBuildID:
		m.ResetBuildID()
		return nil
	case checkpoint.FieldAgentSessionID:
		m.ResetAgentSessionID()
		return nil
	case checkpoint.FieldPreexistingFiles:
		m.ResetPreexistingFiles()
		return nil
	case checkpoint.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case checkpoint.FieldCostCents:
		m.ResetCostCents()
		return nil
	case checkpoint.FieldLastError:
		m.ResetLastError()
		return nil
	case checkpoint.FieldAttempt:
		m.ResetAttempt()
		return nil
	case checkpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.build != nil {
		edges = append(edges, checkpoint.EdgeBuild)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeBuild:
		if id := m.build; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbuild {
		edges = append(edges, checkpoint.EdgeBuild)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeBuild:
		return m.clearedbuild
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeBuild:
		m.ClearBuild()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeBuild:
		m.ResetBuild()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	project_id    *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *EventMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EventMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EventMutation) ResetProjectID() {
	m.project_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project_id != nil {
		fields = append(fields, event.FieldProjectID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldProjectID:
		return m.ProjectID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldProjectID:
		return m.OldProjectID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldProjectID:
		m.ResetProjectID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	job_id                        *string
	queue                         *string
	name                          *string
	payload                       *map[string]interface{}
	status                        *job.Status
	priority                      *int
	addpriority                   *int
	attempt                       *int
	addattempt                    *int
	max_attempts                  *int
	addmax_attempts               *int
	run_at                        *time.Time
	delay_until_rollback_complete *bool
	locked_by                     *string
	locked_at                     *time.Time
	heartbeat_at                  *time.Time
	last_error                    *string
	created_at                    *time.Time
	finished_at                   *time.Time
	clearedFields                 map[string]struct{}
	done                          bool
	oldValue                      func(context.Context) (*Job, error)
	predicates                    []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobMutation) ResetJobID() {
	m.job_id = nil
}

// SetQueue sets the "queue" field.
func (m *JobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *JobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *JobMutation) ResetQueue() {
	m.queue = nil
}

// SetName sets the "name" field.
func (m *JobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *JobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *JobMutation) ResetName() {
	m.name = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *JobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[job.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *JobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[job.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, job.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAttempt sets the "attempt" field.
func (m *JobMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *JobMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *JobMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *JobMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *JobMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetRunAt sets the "run_at" field.
func (m *JobMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *JobMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *JobMutation) ResetRunAt() {
	m.run_at = nil
}

// SetDelayUntilRollbackComplete sets the "delay_until_rollback_complete" field.
func (m *JobMutation) SetDelayUntilRollbackComplete(b bool) {
	m.delay_until_rollback_complete = &b
}

// DelayUntilRollbackComplete returns the value of the "delay_until_rollback_complete" field in the mutation.
func (m *JobMutation) DelayUntilRollbackComplete() (r bool, exists bool) {
	v := m.delay_until_rollback_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldDelayUntilRollbackComplete returns the old "delay_until_rollback_complete" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDelayUntilRollbackComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelayUntilRollbackComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelayUntilRollbackComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelayUntilRollbackComplete: %w", err)
	}
	return oldValue.DelayUntilRollbackComplete, nil
}

// ResetDelayUntilRollbackComplete resets all changes to the "delay_until_rollback_complete" field.
func (m *JobMutation) ResetDelayUntilRollbackComplete() {
	m.delay_until_rollback_complete = nil
}

// SetLockedBy sets the "locked_by" field.
func (m *JobMutation) SetLockedBy(s string) {
	m.locked_by = &s
}

// LockedBy returns the value of the "locked_by" field in the mutation.
func (m *JobMutation) LockedBy() (r string, exists bool) {
	v := m.locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedBy returns the old "locked_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedBy: %w", err)
	}
	return oldValue.LockedBy, nil
}

// ClearLockedBy clears the value of the "locked_by" field.
func (m *JobMutation) ClearLockedBy() {
	m.locked_by = nil
	m.clearedFields[job.FieldLockedBy] = struct{}{}
}

// LockedByCleared returns if the "locked_by" field was cleared in this mutation.
func (m *JobMutation) LockedByCleared() bool {
	_, ok := m.clearedFields[job.FieldLockedBy]
	return ok
}

// ResetLockedBy resets all changes to the "locked_by" field.
func (m *JobMutation) ResetLockedBy() {
	m.locked_by = nil
	delete(m.clearedFields, job.FieldLockedBy)
}

// SetLockedAt sets the "locked_at" field.
func (m *JobMutation) SetLockedAt(t time.Time) {
	m.locked_at = &t
}

// LockedAt returns the value of the "locked_at" field in the mutation.
func (m *JobMutation) LockedAt() (r time.Time, exists bool) {
	v := m.locked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedAt returns the old "locked_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedAt: %w", err)
	}
	return oldValue.LockedAt, nil
}

// ClearLockedAt clears the value of the "locked_at" field.
func (m *JobMutation) ClearLockedAt() {
	m.locked_at = nil
	m.clearedFields[job.FieldLockedAt] = struct{}{}
}

// LockedAtCleared returns if the "locked_at" field was cleared in this mutation.
func (m *JobMutation) LockedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLockedAt]
	return ok
}

// ResetLockedAt resets all changes to the "locked_at" field.
func (m *JobMutation) ResetLockedAt() {
	m.locked_at = nil
	delete(m.clearedFields, job.FieldLockedAt)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *JobMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *JobMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *JobMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[job.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *JobMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, job.FieldHeartbeatAt)
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *JobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *JobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *JobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[job.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *JobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *JobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, job.FieldFinishedAt)
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.job_id != nil {
		fields = append(fields, job.FieldJobID)
	}
	if m.queue != nil {
		fields = append(fields, job.FieldQueue)
	}
	if m.name != nil {
		fields = append(fields, job.FieldName)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.attempt != nil {
		fields = append(fields, job.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.run_at != nil {
		fields = append(fields, job.FieldRunAt)
	}
	if m.delay_until_rollback_complete != nil {
		fields = append(fields, job.FieldDelayUntilRollbackComplete)
	}
	if m.locked_by != nil {
		fields = append(fields, job.FieldLockedBy)
	}
	if m.locked_at != nil {
		fields = append(fields, job.FieldLockedAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldJobID:
		return m.JobID()
	case job.FieldQueue:
		return m.Queue()
	case job.FieldName:
		return m.Name()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldAttempt:
		return m.Attempt()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldRunAt:
		return m.RunAt()
	case job.FieldDelayUntilRollbackComplete:
		return m.DelayUntilRollbackComplete()
	case job.FieldLockedBy:
		return m.LockedBy()
	case job.FieldLockedAt:
		return m.LockedAt()
	case job.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldJobID:
		return m.OldJobID(ctx)
	case job.FieldQueue:
		return m.OldQueue(ctx)
	case job.FieldName:
		return m.OldName(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldAttempt:
		return m.OldAttempt(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldRunAt:
		return m.OldRunAt(ctx)
	case job.FieldDelayUntilRollbackComplete:
		return m.OldDelayUntilRollbackComplete(ctx)
	case job.FieldLockedBy:
		return m.OldLockedBy(ctx)
	case job.FieldLockedAt:
		return m.OldLockedAt(ctx)
	case job.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case job.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case job.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	case job.FieldDelayUntilRollbackComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelayUntilRollbackComplete(v)
		return nil
	case job.FieldLockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedBy(v)
		return nil
	case job.FieldLockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedAt(v)
		return nil
	case job.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addattempt != nil {
		fields = append(fields, job.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldAttempt:
		return m.AddedAttempt()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldPayload) {
		fields = append(fields, job.FieldPayload)
	}
	if m.FieldCleared(job.FieldLockedBy) {
		fields = append(fields, job.FieldLockedBy)
	}
	if m.FieldCleared(job.FieldLockedAt) {
		fields = append(fields, job.FieldLockedAt)
	}
	if m.FieldCleared(job.FieldHeartbeatAt) {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	if m.FieldCleared(job.FieldFinishedAt) {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldPayload:
		m.ClearPayload()
		return nil
	case job.FieldLockedBy:
		m.ClearLockedBy()
		return nil
	case job.FieldLockedAt:
		m.ClearLockedAt()
		return nil
	case job.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	case job.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldJobID:
		m.ResetJobID()
		return nil
	case job.FieldQueue:
		m.ResetQueue()
		return nil
	case job.FieldName:
		m.ResetName()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldAttempt:
		m.ResetAttempt()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldRunAt:
		m.ResetRunAt()
		return nil
	case job.FieldDelayUntilRollbackComplete:
		m.ResetDelayUntilRollbackComplete()
		return nil
	case job.FieldLockedBy:
		m.ResetLockedBy()
		return nil
	case job.FieldLockedAt:
		m.ResetLockedAt()
		return nil
	case job.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	seq               *int64
	addseq            *int64
	actor_type        *message.ActorType
	mode              *message.Mode
	parent_message_id *string
	build_id          *string
	content           *string
	response          *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	project           *string
	clearedproject    bool
	done              bool
	oldValue          func(context.Context) (*Message, error)
	predicates        []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *MessageMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *MessageMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *MessageMutation) ResetProjectID() {
	m.project = nil
}

// SetSeq sets the "seq" field.
func (m *MessageMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *MessageMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *MessageMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *MessageMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *MessageMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetActorType sets the "actor_type" field.
func (m *MessageMutation) SetActorType(mt message.ActorType) {
	m.actor_type = &mt
}

// ActorType returns the value of the "actor_type" field in the mutation.
func (m *MessageMutation) ActorType() (r message.ActorType, exists bool) {
	v := m.actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActorType returns the old "actor_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldActorType(ctx context.Context) (v message.ActorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorType: %w", err)
	}
	return oldValue.ActorType, nil
}

// ResetActorType resets all changes to the "actor_type" field.
func (m *MessageMutation) ResetActorType() {
	m.actor_type = nil
}

// SetMode sets the "mode" field.
func (m *MessageMutation) SetMode(value message.Mode) {
	m.mode = &value
}

// Mode returns the value of the "mode" field in the mutation.
func (m *MessageMutation) Mode() (r message.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMode(ctx context.Context) (v message.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *MessageMutation) ResetMode() {
	m.mode = nil
}

// SetParentMessageID sets the "parent_message_id" field.
func (m *MessageMutation) SetParentMessageID(s string) {
	m.parent_message_id = &s
}

// ParentMessageID returns the value of the "parent_message_id" field in the mutation.
func (m *MessageMutation) ParentMessageID() (r string, exists bool) {
	v := m.parent_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentMessageID returns the old "parent_message_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldParentMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentMessageID: %w", err)
	}
	return oldValue.ParentMessageID, nil
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (m *MessageMutation) ClearParentMessageID() {
	m.parent_message_id = nil
	m.clearedFields[message.FieldParentMessageID] = struct{}{}
}

// ParentMessageIDCleared returns if the "parent_message_id" field was cleared in this mutation.
func (m *MessageMutation) ParentMessageIDCleared() bool {
	_, ok := m.clearedFields[message.FieldParentMessageID]
	return ok
}

// ResetParentMessageID resets all changes to the "parent_message_id" field.
func (m *MessageMutation) ResetParentMessageID() {
	m.parent_message_id = nil
	delete(m.clearedFields, message.FieldParentMessageID)
}

// SetBuildID sets the "build_id" field.
func (m *MessageMutation) SetBuildID(s string) {
	m.build_id = &s
}

// BuildID returns the value of the "build_id" field in the mutation.
func (m *MessageMutation) BuildID() (r string, exists bool) {
	v := m.build_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildID returns the old "build_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldBuildID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildID: %w", err)
	}
	return oldValue.BuildID, nil
}

// ClearBuildID clears the value of the "build_id" field.
func (m *MessageMutation) ClearBuildID() {
	m.build_id = nil
	m.clearedFields[message.FieldBuildID] = struct{}{}
}

// BuildIDCleared returns if the "build_id" field was cleared in this mutation.
func (m *MessageMutation) BuildIDCleared() bool {
	_, ok := m.clearedFields[message.FieldBuildID]
	return ok
}

// ResetBuildID resets all changes to the "build_id" field.
func (m *MessageMutation) ResetBuildID() {
	m.build_id = nil
	delete(m.clearedFields, message.FieldBuildID)
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetResponse sets the "response" field.
func (m *MessageMutation) SetResponse(value map[string]interface{}) {
	m.response = &value
}

// Response returns the value of the "response" field in the mutation.
func (m *MessageMutation) Response() (r map[string]interface{}, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *MessageMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[message.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *MessageMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[message.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *MessageMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, message.FieldResponse)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *MessageMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[message.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *MessageMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *MessageMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project != nil {
		fields = append(fields, message.FieldProjectID)
	}
	if m.seq != nil {
		fields = append(fields, message.FieldSeq)
	}
	if m.actor_type != nil {
		fields = append(fields, message.FieldActorType)
	}
	if m.mode != nil {
		fields = append(fields, message.FieldMode)
	}
	if m.parent_message_id != nil {
		fields = append(fields, message.FieldParentMessageID)
	}
	if m.build_id != nil {
		fields = append(fields, message.FieldBuildID)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.response != nil {
		fields = append(fields, message.FieldResponse)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldProjectID:
		return m.ProjectID()
	case message.FieldSeq:
		return m.Seq()
	case message.FieldActorType:
		return m.ActorType()
	case message.FieldMode:
		return m.Mode()
	case message.FieldParentMessageID:
		return m.ParentMessageID()
	case message.FieldBuildID:
		return m.BuildID()
	case message.FieldContent:
		return m.Content()
	case message.FieldResponse:
		return m.Response()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldProjectID:
		return m.OldProjectID(ctx)
	case message.FieldSeq:
		return m.OldSeq(ctx)
	case message.FieldActorType:
		return m.OldActorType(ctx)
	case message.FieldMode:
		return m.OldMode(ctx)
	case message.FieldParentMessageID:
		return m.OldParentMessageID(ctx)
	case message.FieldBuildID:
		return m.OldBuildID(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldResponse:
		return m.OldResponse(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case message.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case message.FieldActorType:
		v, ok := value.(message.ActorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorType(v)
		return nil
	case message.FieldMode:
		v, ok := value.(message.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case message.FieldParentMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentMessageID(v)
		return nil
	case message.FieldBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildID(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, message.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldParentMessageID) {
		fields = append(fields, message.FieldParentMessageID)
	}
	if m.FieldCleared(message.FieldBuildID) {
		fields = append(fields, message.FieldBuildID)
	}
	if m.FieldCleared(message.FieldResponse) {
		fields = append(fields, message.FieldResponse)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldParentMessageID:
		m.ClearParentMessageID()
		return nil
	case message.FieldBuildID:
		m.ClearBuildID()
		return nil
	case message.FieldResponse:
		m.ClearResponse()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldProjectID:
		m.ResetProjectID()
		return nil
	case message.FieldSeq:
		m.ResetSeq()
		return nil
	case message.FieldActorType:
		m.ResetActorType()
		return nil
	case message.FieldMode:
		m.ResetMode()
		return nil
	case message.FieldParentMessageID:
		m.ResetParentMessageID()
		return nil
	case message.FieldBuildID:
		m.ResetBuildID()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldResponse:
		m.ResetResponse()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, message.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, message.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	owner_id                *string
	name                    *string
	framework               *string
	build_status            *project.BuildStatus
	current_build_id        *string
	current_version_id      *string
	current_version_name    *string
	last_agent_session_id   *string
	preview_url             *string
	deploy_lane             *string
	last_build_started_at   *time.Time
	last_build_completed_at *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	builds                  map[string]struct{}
	removedbuilds           map[string]struct{}
	clearedbuilds           bool
	versions                map[string]struct{}
	removedversions         map[string]struct{}
	clearedversions         bool
	messages                map[string]struct{}
	removedmessages         map[string]struct{}
	clearedmessages         bool
	operations              map[int]struct{}
	removedoperations       map[int]struct{}
	clearedoperations       bool
	done                    bool
	oldValue                func(context.Context) (*Project, error)
	predicates              []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ProjectMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ProjectMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ProjectMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *ProjectMutation) ClearName() {
	m.name = nil
	m.clearedFields[project.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ProjectMutation) NameCleared() bool {
	_, ok := m.clearedFields[project.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, project.FieldName)
}

// SetFramework sets the "framework" field.
func (m *ProjectMutation) SetFramework(s string) {
	m.framework = &s
}

// Framework returns the value of the "framework" field in the mutation.
func (m *ProjectMutation) Framework() (r string, exists bool) {
	v := m.framework
	if v == nil {
		return
	}
	return *v, true
}

// OldFramework returns the old "framework" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldFramework(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFramework is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFramework requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFramework: %w", err)
	}
	return oldValue.Framework, nil
}

// ClearFramework clears the value of the "framework" field.
func (m *ProjectMutation) ClearFramework() {
	m.framework = nil
	m.clearedFields[project.FieldFramework] = struct{}{}
}

// FrameworkCleared returns if the "framework" field was cleared in this mutation.
func (m *ProjectMutation) FrameworkCleared() bool {
	_, ok := m.clearedFields[project.FieldFramework]
	return ok
}

// ResetFramework resets all changes to the "framework" field.
func (m *ProjectMutation) ResetFramework() {
	m.framework = nil
	delete(m.clearedFields, project.FieldFramework)
}

// SetBuildStatus sets the "build_status" field.
func (m *ProjectMutation) SetBuildStatus(ps project.BuildStatus) {
	m.build_status = &ps
}

// BuildStatus returns the value of the "build_status" field in the mutation.
func (m *ProjectMutation) BuildStatus() (r project.BuildStatus, exists bool) {
	v := m.build_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildStatus returns the old "build_status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldBuildStatus(ctx context.Context) (v project.BuildStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildStatus: %w", err)
	}
	return oldValue.BuildStatus, nil
}

// ClearBuildStatus clears the value of the "build_status" field.
func (m *ProjectMutation) ClearBuildStatus() {
	m.build_status = nil
	m.clearedFields[project.FieldBuildStatus] = struct{}{}
}

// BuildStatusCleared returns if the "build_status" field was cleared in this mutation.
func (m *ProjectMutation) BuildStatusCleared() bool {
	_, ok := m.clearedFields[project.FieldBuildStatus]
	return ok
}

// ResetBuildStatus resets all changes to the "build_status" field.
func (m *ProjectMutation) ResetBuildStatus() {
	m.build_status = nil
	delete(m.clearedFields, project.FieldBuildStatus)
}

// SetCurrentBuildID sets the "current_build_id" field.
func (m *ProjectMutation) SetCurrentBuildID(s string) {
	m.current_build_id = &s
}

// CurrentBuildID returns the value of the "current_build_id" field in the mutation.
func (m *ProjectMutation) CurrentBuildID() (r string, exists bool) {
	v := m.current_build_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentBuildID returns the old "current_build_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCurrentBuildID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentBuildID: %w", err)
	}
	return oldValue.CurrentBuildID, nil
}

// ClearCurrentBuildID clears the value of the "current_build_id" field.
func (m *ProjectMutation) ClearCurrentBuildID() {
	m.current_build_id = nil
	m.clearedFields[project.FieldCurrentBuildID] = struct{}{}
}

// CurrentBuildIDCleared returns if the "current_build_id" field was cleared in this mutation.
func (m *ProjectMutation) CurrentBuildIDCleared() bool {
	_, ok := m.clearedFields[project.FieldCurrentBuildID]
	return ok
}

// ResetCurrentBuildID resets all changes to the "current_build_id" field.
func (m *ProjectMutation) ResetCurrentBuildID() {
	m.current_build_id = nil
	delete(m.clearedFields, project.FieldCurrentBuildID)
}

// SetCurrentVersionID sets the "current_version_id" field.
func (m *ProjectMutation) SetCurrentVersionID(s string) {
	m.current_version_id = &s
}

// CurrentVersionID returns the value of the "current_version_id" field in the mutation.
func (m *ProjectMutation) CurrentVersionID() (r string, exists bool) {
	v := m.current_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersionID returns the old "current_version_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCurrentVersionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersionID: %w", err)
	}
	return oldValue.CurrentVersionID, nil
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (m *ProjectMutation) ClearCurrentVersionID() {
	m.current_version_id = nil
	m.clearedFields[project.FieldCurrentVersionID] = struct{}{}
}

// CurrentVersionIDCleared returns if the "current_version_id" field was cleared in this mutation.
func (m *ProjectMutation) CurrentVersionIDCleared() bool {
	_, ok := m.clearedFields[project.FieldCurrentVersionID]
	return ok
}

// ResetCurrentVersionID resets all changes to the "current_version_id" field.
func (m *ProjectMutation) ResetCurrentVersionID() {
	m.current_version_id = nil
	delete(m.clearedFields, project.FieldCurrentVersionID)
}

// SetCurrentVersionName sets the "current_version_name" field.
func (m *ProjectMutation) SetCurrentVersionName(s string) {
	m.current_version_name = &s
}

// CurrentVersionName returns the value of the "current_version_name" field in the mutation.
func (m *ProjectMutation) CurrentVersionName() (r string, exists bool) {
	v := m.current_version_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersionName returns the old "current_version_name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCurrentVersionName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersionName: %w", err)
	}
	return oldValue.CurrentVersionName, nil
}

// ClearCurrentVersionName clears the value of the "current_version_name" field.
func (m *ProjectMutation) ClearCurrentVersionName() {
	m.current_version_name = nil
	m.clearedFields[project.FieldCurrentVersionName] = struct{}{}
}

// CurrentVersionNameCleared returns if the "current_version_name" field was cleared in this mutation.
func (m *ProjectMutation) CurrentVersionNameCleared() bool {
	_, ok := m.clearedFields[project.FieldCurrentVersionName]
	return ok
}

// ResetCurrentVersionName resets all changes to the "current_version_name" field.
func (m *ProjectMutation) ResetCurrentVersionName() {
	m.current_version_name = nil
	delete(m.clearedFields, project.FieldCurrentVersionName)
}

// SetLastAgentSessionID sets the "last_agent_session_id" field.
func (m *ProjectMutation) SetLastAgentSessionID(s string) {
	m.last_agent_session_id = &s
}

// LastAgentSessionID returns the value of the "last_agent_session_id" field in the mutation.
func (m *ProjectMutation) LastAgentSessionID() (r string, exists bool) {
	v := m.last_agent_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAgentSessionID returns the old "last_agent_session_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLastAgentSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAgentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAgentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAgentSessionID: %w", err)
	}
	return oldValue.LastAgentSessionID, nil
}

// ClearLastAgentSessionID clears the value of the "last_agent_session_id" field.
func (m *ProjectMutation) ClearLastAgentSessionID() {
	m.last_agent_session_id = nil
	m.clearedFields[project.FieldLastAgentSessionID] = struct{}{}
}

// LastAgentSessionIDCleared returns if the "last_agent_session_id" field was cleared in this mutation.
func (m *ProjectMutation) LastAgentSessionIDCleared() bool {
	_, ok := m.clearedFields[project.FieldLastAgentSessionID]
	return ok
}

// ResetLastAgentSessionID resets all changes to the "last_agent_session_id" field.
func (m *ProjectMutation) ResetLastAgentSessionID() {
	m.last_agent_session_id = nil
	delete(m.clearedFields, project.FieldLastAgentSessionID)
}

// SetPreviewURL sets the "preview_url" field.
func (m *ProjectMutation) SetPreviewURL(s string) {
	m.preview_url = &s
}

// PreviewURL returns the value of the "preview_url" field in the mutation.
func (m *ProjectMutation) PreviewURL() (r string, exists bool) {
	v := m.preview_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviewURL returns the old "preview_url" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPreviewURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviewURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviewURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviewURL: %w", err)
	}
	return oldValue.PreviewURL, nil
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (m *ProjectMutation) ClearPreviewURL() {
	m.preview_url = nil
	m.clearedFields[project.FieldPreviewURL] = struct{}{}
}

// PreviewURLCleared returns if the "preview_url" field was cleared in this mutation.
func (m *ProjectMutation) PreviewURLCleared() bool {
	_, ok := m.clearedFields[project.FieldPreviewURL]
	return ok
}

// ResetPreviewURL resets all changes to the "preview_url" field.
func (m *ProjectMutation) ResetPreviewURL() {
	m.preview_url = nil
	delete(m.clearedFields, project.FieldPreviewURL)
}

// SetDeployLane sets the "deploy_lane" field.
func (m *ProjectMutation) SetDeployLane(s string) {
	m.deploy_lane = &s
}

// DeployLane returns the value of the "deploy_lane" field in the mutation.
func (m *ProjectMutation) DeployLane() (r string, exists bool) {
	v := m.deploy_lane
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployLane returns the old "deploy_lane" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDeployLane(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployLane is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployLane requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployLane: %w", err)
	}
	return oldValue.DeployLane, nil
}

// ClearDeployLane clears the value of the "deploy_lane" field.
func (m *ProjectMutation) ClearDeployLane() {
	m.deploy_lane = nil
	m.clearedFields[project.FieldDeployLane] = struct{}{}
}

// DeployLaneCleared returns if the "deploy_lane" field was cleared in this mutation.
func (m *ProjectMutation) DeployLaneCleared() bool {
	_, ok := m.clearedFields[project.FieldDeployLane]
	return ok
}

// ResetDeployLane resets all changes to the "deploy_lane" field.
func (m *ProjectMutation) ResetDeployLane() {
	m.deploy_lane = nil
	delete(m.clearedFields, project.FieldDeployLane)
}

// SetLastBuildStartedAt sets the "last_build_started_at" field.
func (m *ProjectMutation) SetLastBuildStartedAt(t time.Time) {
	m.last_build_started_at = &t
}

// LastBuildStartedAt returns the value of the "last_build_started_at" field in the mutation.
func (m *ProjectMutation) LastBuildStartedAt() (r time.Time, exists bool) {
	v := m.last_build_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBuildStartedAt returns the old "last_build_started_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLastBuildStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBuildStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBuildStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBuildStartedAt: %w", err)
	}
	return oldValue.LastBuildStartedAt, nil
}

// ClearLastBuildStartedAt clears the value of the "last_build_started_at" field.
func (m *ProjectMutation) ClearLastBuildStartedAt() {
	m.last_build_started_at = nil
	m.clearedFields[project.FieldLastBuildStartedAt] = struct{}{}
}

// LastBuildStartedAtCleared returns if the "last_build_started_at" field was cleared in this mutation.
func (m *ProjectMutation) LastBuildStartedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldLastBuildStartedAt]
	return ok
}

// ResetLastBuildStartedAt resets all changes to the "last_build_started_at" field.
func (m *ProjectMutation) ResetLastBuildStartedAt() {
	m.last_build_started_at = nil
	delete(m.clearedFields, project.FieldLastBuildStartedAt)
}

// SetLastBuildCompletedAt sets the "last_build_completed_at" field.
func (m *ProjectMutation) SetLastBuildCompletedAt(t time.Time) {
	m.last_build_completed_at = &t
}

// LastBuildCompletedAt returns the value of the "last_build_completed_at" field in the mutation.
func (m *ProjectMutation) LastBuildCompletedAt() (r time.Time, exists bool) {
	v := m.last_build_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBuildCompletedAt returns the old "last_build_completed_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLastBuildCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBuildCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBuildCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBuildCompletedAt: %w", err)
	}
	return oldValue.LastBuildCompletedAt, nil
}

// ClearLastBuildCompletedAt clears the value of the "last_build_completed_at" field.
func (m *ProjectMutation) ClearLastBuildCompletedAt() {
	m.last_build_completed_at = nil
	m.clearedFields[project.FieldLastBuildCompletedAt] = struct{}{}
}

// LastBuildCompletedAtCleared returns if the "last_build_completed_at" field was cleared in this mutation.
func (m *ProjectMutation) LastBuildCompletedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldLastBuildCompletedAt]
	return ok
}

// ResetLastBuildCompletedAt resets all changes to the "last_build_completed_at" field.
func (m *ProjectMutation) ResetLastBuildCompletedAt() {
	m.last_build_completed_at = nil
	delete(m.clearedFields, project.FieldLastBuildCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBuildIDs adds the "builds" edge to the Build entity by ids.
func (m *ProjectMutation) AddBuildIDs(ids ...string) {
	if m.builds == nil {
		m.builds = make(map[string]struct{})
	}
	for i := range ids {
		m.builds[ids[i]] = struct{}{}
	}
}

// ClearBuilds clears the "builds" edge to the Build entity.
func (m *ProjectMutation) ClearBuilds() {
	m.clearedbuilds = true
}

// BuildsCleared reports if the "builds" edge to the Build entity was cleared.
func (m *ProjectMutation) BuildsCleared() bool {
	return m.clearedbuilds
}

// RemoveBuildIDs removes the "builds" edge to the Build entity by IDs.
func (m *ProjectMutation) RemoveBuildIDs(ids ...string) {
	if m.removedbuilds == nil {
		m.removedbuilds = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.builds, ids[i])
		m.removedbuilds[ids[i]] = struct{}{}
	}
}

// RemovedBuilds returns the removed IDs of the "builds" edge to the Build entity.
func (m *ProjectMutation) RemovedBuildsIDs() (ids []string) {
	for id := range m.removedbuilds {
		ids = append(ids, id)
	}
	return
}

// BuildsIDs returns the "builds" edge IDs in the mutation.
func (m *ProjectMutation) BuildsIDs() (ids []string) {
	for id := range m.builds {
		ids = append(ids, id)
	}
	return
}

// ResetBuilds resets all changes to the "builds" edge.
func (m *ProjectMutation) ResetBuilds() {
	m.builds = nil
	m.clearedbuilds = false
	m.removedbuilds = nil
}

// AddVersionIDs adds the "versions" edge to the Version entity by ids.
func (m *ProjectMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the Version entity.
func (m *ProjectMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the Version entity was cleared.
func (m *ProjectMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the Version entity by IDs.
func (m *ProjectMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the Version entity.
func (m *ProjectMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *ProjectMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *ProjectMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ProjectMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ProjectMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ProjectMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ProjectMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ProjectMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ProjectMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ProjectMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddOperationIDs adds the "operations" edge to the BuildOperation entity by ids.
func (m *ProjectMutation) AddOperationIDs(ids ...int) {
	if m.operations == nil {
		m.operations = make(map[int]struct{})
	}
	for i := range ids {
		m.operations[ids[i]] = struct{}{}
	}
}

// ClearOperations clears the "operations" edge to the BuildOperation entity.
func (m *ProjectMutation) ClearOperations() {
	m.clearedoperations = true
}

// OperationsCleared reports if the "operations" edge to the BuildOperation entity was cleared.
func (m *ProjectMutation) OperationsCleared() bool {
	return m.clearedoperations
}

// RemoveOperationIDs removes the "operations" edge to the BuildOperation entity by IDs.
func (m *ProjectMutation) RemoveOperationIDs(ids ...int) {
	if m.removedoperations == nil {
		m.removedoperations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.operations, ids[i])
		m.removedoperations[ids[i]] = struct{}{}
	}
}

// RemovedOperations returns the removed IDs of the "operations" edge to the BuildOperation entity.
func (m *ProjectMutation) RemovedOperationsIDs() (ids []int) {
	for id := range m.removedoperations {
		ids = append(ids, id)
	}
	return
}

// OperationsIDs returns the "operations" edge IDs in the mutation.
func (m *ProjectMutation) OperationsIDs() (ids []int) {
	for id := range m.operations {
		ids = append(ids, id)
	}
	return
}

// ResetOperations resets all changes to the "operations" edge.
func (m *ProjectMutation) ResetOperations() {
	m.operations = nil
	m.clearedoperations = false
	m.removedoperations = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.owner_id != nil {
		fields = append(fields, project.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.framework != nil {
		fields = append(fields, project.FieldFramework)
	}
	if m.build_status != nil {
		fields = append(fields, project.FieldBuildStatus)
	}
	if m.current_build_id != nil {
		fields = append(fields, project.FieldCurrentBuildID)
	}
	if m.current_version_id != nil {
		fields = append(fields, project.FieldCurrentVersionID)
	}
	if m.current_version_name != nil {
		fields = append(fields, project.FieldCurrentVersionName)
	}
	if m.last_agent_session_id != nil {
		fields = append(fields, project.FieldLastAgentSessionID)
	}
	if m.preview_url != nil {
		fields = append(fields, project.FieldPreviewURL)
	}
	if m.deploy_lane != nil {
		fields = append(fields, project.FieldDeployLane)
	}
	if m.last_build_started_at != nil {
		fields = append(fields, project.FieldLastBuildStartedAt)
	}
	if m.last_build_completed_at != nil {
		fields = append(fields, project.FieldLastBuildCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldOwnerID:
		return m.OwnerID()
	case project.FieldName:
		return m.Name()
	case project.FieldFramework:
		return m.Framework()
	case project.FieldBuildStatus:
		return m.BuildStatus()
	case project.FieldCurrentBuildID:
		return m.CurrentBuildID()
	case project.FieldCurrentVersionID:
		return m.CurrentVersionID()
	case project.FieldCurrentVersionName:
		return m.CurrentVersionName()
	case project.FieldLastAgentSessionID:
		return m.LastAgentSessionID()
	case project.FieldPreviewURL:
		return m.PreviewURL()
	case project.FieldDeployLane:
		return m.DeployLane()
	case project.FieldLastBuildStartedAt:
		return m.LastBuildStartedAt()
	case project.FieldLastBuildCompletedAt:
		return m.LastBuildCompletedAt()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldFramework:
		return m.OldFramework(ctx)
	case project.FieldBuildStatus:
		return m.OldBuildStatus(ctx)
	case project.FieldCurrentBuildID:
		return m.OldCurrentBuildID(ctx)
	case project.FieldCurrentVersionID:
		return m.OldCurrentVersionID(ctx)
	case project.FieldCurrentVersionName:
		return m.OldCurrentVersionName(ctx)
	case project.FieldLastAgentSessionID:
		return m.OldLastAgentSessionID(ctx)
	case project.FieldPreviewURL:
		return m.OldPreviewURL(ctx)
	case project.FieldDeployLane:
		return m.OldDeployLane(ctx)
	case project.FieldLastBuildStartedAt:
		return m.OldLastBuildStartedAt(ctx)
	case project.FieldLastBuildCompletedAt:
		return m.OldLastBuildCompletedAt(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldFramework:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFramework(v)
		return nil
	case project.FieldBuildStatus:
		v, ok := value.(project.BuildStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildStatus(v)
		return nil
	case project.FieldCurrentBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentBuildID(v)
		return nil
	case project.FieldCurrentVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersionID(v)
		return nil
	case project.FieldCurrentVersionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersionName(v)
		return nil
	case project.FieldLastAgentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAgentSessionID(v)
		return nil
	case project.FieldPreviewURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviewURL(v)
		return nil
	case project.FieldDeployLane:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployLane(v)
		return nil
	case project.FieldLastBuildStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBuildStartedAt(v)
		return nil
	case project.FieldLastBuildCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBuildCompletedAt(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldName) {
		fields = append(fields, project.FieldName)
	}
	if m.FieldCleared(project.FieldFramework) {
		fields = append(fields, project.FieldFramework)
	}
	if m.FieldCleared(project.FieldBuildStatus) {
		fields = append(fields, project.FieldBuildStatus)
	}
	if m.FieldCleared(project.FieldCurrentBuildID) {
		fields = append(fields, project.FieldCurrentBuildID)
	}
	if m.FieldCleared(project.FieldCurrentVersionID) {
		fields = append(fields, project.FieldCurrentVersionID)
	}
	if m.FieldCleared(project.FieldCurrentVersionName) {
		fields = append(fields, project.FieldCurrentVersionName)
	}
	if m.FieldCleared(project.FieldLastAgentSessionID) {
		fields = append(fields, project.FieldLastAgentSessionID)
	}
	if m.FieldCleared(project.FieldPreviewURL) {
		fields = append(fields, project.FieldPreviewURL)
	}
	if m.FieldCleared(project.FieldDeployLane) {
		fields = append(fields, project.FieldDeployLane)
	}
	if m.FieldCleared(project.FieldLastBuildStartedAt) {
		fields = append(fields, project.FieldLastBuildStartedAt)
	}
	if m.FieldCleared(project.FieldLastBuildCompletedAt) {
		fields = append(fields, project.FieldLastBuildCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldName:
		m.ClearName()
		return nil
	case project.FieldFramework:
		m.ClearFramework()
		return nil
	case project.FieldBuildStatus:
		m.ClearBuildStatus()
		return nil
	case project.FieldCurrentBuildID:
		m.ClearCurrentBuildID()
		return nil
	case project.FieldCurrentVersionID:
		m.ClearCurrentVersionID()
		return nil
	case project.FieldCurrentVersionName:
		m.ClearCurrentVersionName()
		return nil
	case project.FieldLastAgentSessionID:
		m.ClearLastAgentSessionID()
		return nil
	case project.FieldPreviewURL:
		m.ClearPreviewURL()
		return nil
	case project.FieldDeployLane:
		m.ClearDeployLane()
		return nil
	case project.FieldLastBuildStartedAt:
		m.ClearLastBuildStartedAt()
		return nil
	case project.FieldLastBuildCompletedAt:
		m.ClearLastBuildCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldFramework:
		m.ResetFramework()
		return nil
	case project.FieldBuildStatus:
		m.ResetBuildStatus()
		return nil
	case project.FieldCurrentBuildID:
		m.ResetCurrentBuildID()
		return nil
	case project.FieldCurrentVersionID:
		m.ResetCurrentVersionID()
		return nil
	case project.FieldCurrentVersionName:
		m.ResetCurrentVersionName()
		return nil
	case project.FieldLastAgentSessionID:
		m.ResetLastAgentSessionID()
		return nil
	case project.FieldPreviewURL:
		m.ResetPreviewURL()
		return nil
	case project.FieldDeployLane:
		m.ResetDeployLane()
		return nil
	case project.FieldLastBuildStartedAt:
		m.ResetLastBuildStartedAt()
		return nil
	case project.FieldLastBuildCompletedAt:
		m.ResetLastBuildCompletedAt()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.builds != nil {
		edges = append(edges, project.EdgeBuilds)
	}
	if m.versions != nil {
		edges = append(edges, project.EdgeVersions)
	}
	if m.messages != nil {
		edges = append(edges, project.EdgeMessages)
	}
	if m.operations != nil {
		edges = append(edges, project.EdgeOperations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeBuilds:
		ids := make([]ent.Value, 0, len(m.builds))
		for id := range m.builds {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeOperations:
		ids := make([]ent.Value, 0, len(m.operations))
		for id := range m.operations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedbuilds != nil {
		edges = append(edges, project.EdgeBuilds)
	}
	if m.removedversions != nil {
		edges = append(edges, project.EdgeVersions)
	}
	if m.removedmessages != nil {
		edges = append(edges, project.EdgeMessages)
	}
	if m.removedoperations != nil {
		edges = append(edges, project.EdgeOperations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeBuilds:
		ids := make([]ent.Value, 0, len(m.removedbuilds))
		for id := range m.removedbuilds {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeOperations:
		ids := make([]ent.Value, 0, len(m.removedoperations))
		for id := range m.removedoperations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedbuilds {
		edges = append(edges, project.EdgeBuilds)
	}
	if m.clearedversions {
		edges = append(edges, project.EdgeVersions)
	}
	if m.clearedmessages {
		edges = append(edges, project.EdgeMessages)
	}
	if m.clearedoperations {
		edges = append(edges, project.EdgeOperations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeBuilds:
		return m.clearedbuilds
	case project.EdgeVersions:
		return m.clearedversions
	case project.EdgeMessages:
		return m.clearedmessages
	case project.EdgeOperations:
		return m.clearedoperations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeBuilds:
		m.ResetBuilds()
		return nil
	case project.EdgeVersions:
		m.ResetVersions()
		return nil
	case project.EdgeMessages:
		m.ResetMessages()
		return nil
	case project.EdgeOperations:
		m.ResetOperations()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// QueueStateMutation represents an operation that mutates the QueueState nodes in the graph.
type QueueStateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	queue         *string
	paused        *bool
	reason        *string
	paused_until  *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QueueState, error)
	predicates    []predicate.QueueState
}

var _ ent.Mutation = (*QueueStateMutation)(nil)

// queuestateOption allows management of the mutation configuration using functional options.
type queuestateOption func(*QueueStateMutation)

// newQueueStateMutation creates new mutation for the QueueState entity.
func newQueueStateMutation(c config, op Op, opts ...queuestateOption) *QueueStateMutation {
	m := &QueueStateMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueStateID sets the ID field of the mutation.
func withQueueStateID(id int) queuestateOption {
	return func(m *QueueStateMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueState
		)
		m.oldValue = func(ctx context.Context) (*QueueState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueState sets the old QueueState of the mutation.
func withQueueState(node *QueueState) queuestateOption {
	return func(m *QueueStateMutation) {
		m.oldValue = func(context.Context) (*QueueState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *QueueStateMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *QueueStateMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the QueueState entity.
// If the QueueState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueStateMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *QueueStateMutation) ResetQueue() {
	m.queue = nil
}

// SetPaused sets the "paused" field.
func (m *QueueStateMutation) SetPaused(b bool) {
	m.paused = &b
}

// Paused returns the value of the "paused" field in the mutation.
func (m *QueueStateMutation) Paused() (r bool, exists bool) {
	v := m.paused
	if v == nil {
		return
	}
	return *v, true
}

// OldPaused returns the old "paused" field's value of the QueueState entity.
// If the QueueState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueStateMutation) OldPaused(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaused is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaused requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaused: %w", err)
	}
	return oldValue.Paused, nil
}

// ResetPaused resets all changes to the "paused" field.
func (m *QueueStateMutation) ResetPaused() {
	m.paused = nil
}

// SetReason sets the "reason" field.
func (m *QueueStateMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *QueueStateMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the QueueState entity.
// If the QueueState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueStateMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *QueueStateMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[queuestate.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *QueueStateMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[queuestate.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *QueueStateMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, queuestate.FieldReason)
}

// SetPausedUntil sets the "paused_until" field.
func (m *QueueStateMutation) SetPausedUntil(t time.Time) {
	m.paused_until = &t
}

// PausedUntil returns the value of the "paused_until" field in the mutation.
func (m *QueueStateMutation) PausedUntil() (r time.Time, exists bool) {
	v := m.paused_until
	if v == nil {
		return
	}
	return *v, true
}

// OldPausedUntil returns the old "paused_until" field's value of the QueueState entity.
// If the QueueState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueStateMutation) OldPausedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPausedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPausedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPausedUntil: %w", err)
	}
	return oldValue.PausedUntil, nil
}

// ClearPausedUntil clears the value of the "paused_until" field.
func (m *QueueStateMutation) ClearPausedUntil() {
	m.paused_until = nil
	m.clearedFields[queuestate.FieldPausedUntil] = struct{}{}
}

// PausedUntilCleared returns if the "paused_until" field was cleared in this mutation.
func (m *QueueStateMutation) PausedUntilCleared() bool {
	_, ok := m.clearedFields[queuestate.FieldPausedUntil]
	return ok
}

// ResetPausedUntil resets all changes to the "paused_until" field.
func (m *QueueStateMutation) ResetPausedUntil() {
	m.paused_until = nil
	delete(m.clearedFields, queuestate.FieldPausedUntil)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QueueStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QueueStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QueueState entity.
// If the QueueState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QueueStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QueueStateMutation builder.
func (m *QueueStateMutation) Where(ps ...predicate.QueueState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueState).
func (m *QueueStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueStateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.queue != nil {
		fields = append(fields, queuestate.FieldQueue)
	}
	if m.paused != nil {
		fields = append(fields, queuestate.FieldPaused)
	}
	if m.reason != nil {
		fields = append(fields, queuestate.FieldReason)
	}
	if m.paused_until != nil {
		fields = append(fields, queuestate.FieldPausedUntil)
	}
	if m.updated_at != nil {
		fields = append(fields, queuestate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuestate.FieldQueue:
		return m.Queue()
	case queuestate.FieldPaused:
		return m.Paused()
	case queuestate.FieldReason:
		return m.Reason()
	case queuestate.FieldPausedUntil:
		return m.PausedUntil()
	case queuestate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuestate.FieldQueue:
		return m.OldQueue(ctx)
	case queuestate.FieldPaused:
		return m.OldPaused(ctx)
	case queuestate.FieldReason:
		return m.OldReason(ctx)
	case queuestate.FieldPausedUntil:
		return m.OldPausedUntil(ctx)
	case queuestate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuestate.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case queuestate.FieldPaused:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaused(v)
		return nil
	case queuestate.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case queuestate.FieldPausedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPausedUntil(v)
		return nil
	case queuestate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QueueState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuestate.FieldReason) {
		fields = append(fields, queuestate.FieldReason)
	}
	if m.FieldCleared(queuestate.FieldPausedUntil) {
		fields = append(fields, queuestate.FieldPausedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueStateMutation) ClearField(name string) error {
	switch name {
	case queuestate.FieldReason:
		m.ClearReason()
		return nil
	case queuestate.FieldPausedUntil:
		m.ClearPausedUntil()
		return nil
	}
	return fmt.Errorf("unknown QueueState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueStateMutation) ResetField(name string) error {
	switch name {
	case queuestate.FieldQueue:
		m.ResetQueue()
		return nil
	case queuestate.FieldPaused:
		m.ResetPaused()
		return nil
	case queuestate.FieldReason:
		m.ResetReason()
		return nil
	case queuestate.FieldPausedUntil:
		m.ResetPausedUntil()
		return nil
	case queuestate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueState edge %s", name)
}

// RateLimitStateMutation represents an operation that mutates the RateLimitState nodes in the graph.
type RateLimitStateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	active        *bool
	reset_at      *time.Time
	reason        *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RateLimitState, error)
	predicates    []predicate.RateLimitState
}

var _ ent.Mutation = (*RateLimitStateMutation)(nil)

// ratelimitstateOption allows management of the mutation configuration using functional options.
type ratelimitstateOption func(*RateLimitStateMutation)

// newRateLimitStateMutation creates new mutation for the RateLimitState entity.
func newRateLimitStateMutation(c config, op Op, opts ...ratelimitstateOption) *RateLimitStateMutation {
	m := &RateLimitStateMutation{
		config:        c,
		op:            op,
		typ:           TypeRateLimitState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRateLimitStateID sets the ID field of the mutation.
func withRateLimitStateID(id int) ratelimitstateOption {
	return func(m *RateLimitStateMutation) {
		var (
			err   error
			once  sync.Once
			value *RateLimitState
		)
		m.oldValue = func(ctx context.Context) (*RateLimitState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RateLimitState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRateLimitState sets the old RateLimitState of the mutation.
func withRateLimitState(node *RateLimitState) ratelimitstateOption {
	return func(m *RateLimitStateMutation) {
		m.oldValue = func(context.Context) (*RateLimitState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RateLimitStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RateLimitStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RateLimitState entities.
func (m *RateLimitStateMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RateLimitStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RateLimitStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RateLimitState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActive sets the "active" field.
func (m *RateLimitStateMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *RateLimitStateMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the RateLimitState entity.
// If the RateLimitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitStateMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *RateLimitStateMutation) ResetActive() {
	m.active = nil
}

// SetResetAt sets the "reset_at" field.
func (m *RateLimitStateMutation) SetResetAt(t time.Time) {
	m.reset_at = &t
}

// ResetAt returns the value of the "reset_at" field in the mutation.
func (m *RateLimitStateMutation) ResetAt() (r time.Time, exists bool) {
	v := m.reset_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResetAt returns the old "reset_at" field's value of the RateLimitState entity.
// If the RateLimitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitStateMutation) OldResetAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResetAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResetAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResetAt: %w", err)
	}
	return oldValue.ResetAt, nil
}

// ClearResetAt clears the value of the "reset_at" field.
func (m *RateLimitStateMutation) ClearResetAt() {
	m.reset_at = nil
	m.clearedFields[ratelimitstate.FieldResetAt] = struct{}{}
}

// ResetAtCleared returns if the "reset_at" field was cleared in this mutation.
func (m *RateLimitStateMutation) ResetAtCleared() bool {
	_, ok := m.clearedFields[ratelimitstate.FieldResetAt]
	return ok
}

// ResetResetAt resets all changes to the "reset_at" field.
func (m *RateLimitStateMutation) ResetResetAt() {
	m.reset_at = nil
	delete(m.clearedFields, ratelimitstate.FieldResetAt)
}

// SetReason sets the "reason" field.
func (m *RateLimitStateMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *RateLimitStateMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the RateLimitState entity.
// If the RateLimitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitStateMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *RateLimitStateMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[ratelimitstate.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *RateLimitStateMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[ratelimitstate.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *RateLimitStateMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, ratelimitstate.FieldReason)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RateLimitStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RateLimitStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RateLimitState entity.
// If the RateLimitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RateLimitStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RateLimitStateMutation builder.
func (m *RateLimitStateMutation) Where(ps ...predicate.RateLimitState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RateLimitStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RateLimitStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RateLimitState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RateLimitStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RateLimitStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RateLimitState).
func (m *RateLimitStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RateLimitStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.active != nil {
		fields = append(fields, ratelimitstate.FieldActive)
	}
	if m.reset_at != nil {
		fields = append(fields, ratelimitstate.FieldResetAt)
	}
	if m.reason != nil {
		fields = append(fields, ratelimitstate.FieldReason)
	}
	if m.updated_at != nil {
		fields = append(fields, ratelimitstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RateLimitStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ratelimitstate.FieldActive:
		return m.Active()
	case ratelimitstate.FieldResetAt:
		return m.ResetAt()
	case ratelimitstate.FieldReason:
		return m.Reason()
	case ratelimitstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RateLimitStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ratelimitstate.FieldActive:
		return m.OldActive(ctx)
	case ratelimitstate.FieldResetAt:
		return m.OldResetAt(ctx)
	case ratelimitstate.FieldReason:
		return m.OldReason(ctx)
	case ratelimitstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RateLimitState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ratelimitstate.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case ratelimitstate.FieldResetAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResetAt(v)
		return nil
	case ratelimitstate.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case ratelimitstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RateLimitStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RateLimitStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RateLimitState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RateLimitStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ratelimitstate.FieldResetAt) {
		fields = append(fields, ratelimitstate.FieldResetAt)
	}
	if m.FieldCleared(ratelimitstate.FieldReason) {
		fields = append(fields, ratelimitstate.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RateLimitStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RateLimitStateMutation) ClearField(name string) error {
	switch name {
	case ratelimitstate.FieldResetAt:
		m.ClearResetAt()
		return nil
	case ratelimitstate.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown RateLimitState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RateLimitStateMutation) ResetField(name string) error {
	switch name {
	case ratelimitstate.FieldActive:
		m.ResetActive()
		return nil
	case ratelimitstate.FieldResetAt:
		m.ResetResetAt()
		return nil
	case ratelimitstate.FieldReason:
		m.ResetReason()
		return nil
	case ratelimitstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RateLimitState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RateLimitStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RateLimitStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RateLimitStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RateLimitStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RateLimitStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RateLimitStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RateLimitStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RateLimitState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RateLimitStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RateLimitState edge %s", name)
}

// UsageRecordMutation represents an operation that mutates the UsageRecord nodes in the graph.
type UsageRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	build_id      *string
	user_id       *string
	started_at    *time.Time
	ended_at      *time.Time
	seconds       *int64
	addseconds    *int64
	refunded      *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UsageRecord, error)
	predicates    []predicate.UsageRecord
}

var _ ent.Mutation = (*UsageRecordMutation)(nil)

// usagerecordOption allows management of the mutation configuration using functional options.
type usagerecordOption func(*UsageRecordMutation)

// newUsageRecordMutation creates new mutation for the UsageRecord entity.
func newUsageRecordMutation(c config, op Op, opts ...usagerecordOption) *UsageRecordMutation {
	m := &UsageRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageRecordID sets the ID field of the mutation.
func withUsageRecordID(id int) usagerecordOption {
	return func(m *UsageRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageRecord
		)
		m.oldValue = func(ctx context.Context) (*UsageRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageRecord sets the old UsageRecord of the mutation.
func withUsageRecord(node *UsageRecord) usagerecordOption {
	return func(m *UsageRecordMutation) {
		m.oldValue = func(context.Context) (*UsageRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBuildID sets the "build_id" field.
func (m *UsageRecordMutation) SetBuildID(s string) {
	m.build_id = &s
}

// BuildID returns the value of the "build_id" field in the mutation.
func (m *UsageRecordMutation) BuildID() (r string, exists bool) {
	v := m.build_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildID returns the old "build_id" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldBuildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildID: %w", err)
	}
	return oldValue.BuildID, nil
}

// ResetBuildID resets all changes to the "build_id" field.
func (m *UsageRecordMutation) ResetBuildID() {
	m.build_id = nil
}

// SetUserID sets the "user_id" field.
func (m *UsageRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UsageRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UsageRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *UsageRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *UsageRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *UsageRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *UsageRecordMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *UsageRecordMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *UsageRecordMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[usagerecord.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *UsageRecordMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[usagerecord.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *UsageRecordMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, usagerecord.FieldEndedAt)
}

// SetSeconds sets the "seconds" field.
func (m *UsageRecordMutation) SetSeconds(i int64) {
	m.seconds = &i
	m.addseconds = nil
}

// Seconds returns the value of the "seconds" field in the mutation.
func (m *UsageRecordMutation) Seconds() (r int64, exists bool) {
	v := m.seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldSeconds returns the old "seconds" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldSeconds(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeconds: %w", err)
	}
	return oldValue.Seconds, nil
}

// AddSeconds adds i to the "seconds" field.
func (m *UsageRecordMutation) AddSeconds(i int64) {
	if m.addseconds != nil {
		*m.addseconds += i
	} else {
		m.addseconds = &i
	}
}

// AddedSeconds returns the value that was added to the "seconds" field in this mutation.
func (m *UsageRecordMutation) AddedSeconds() (r int64, exists bool) {
	v := m.addseconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeconds resets all changes to the "seconds" field.
func (m *UsageRecordMutation) ResetSeconds() {
	m.seconds = nil
	m.addseconds = nil
}

// SetRefunded sets the "refunded" field.
func (m *UsageRecordMutation) SetRefunded(b bool) {
	m.refunded = &b
}

// Refunded returns the value of the "refunded" field in the mutation.
func (m *UsageRecordMutation) Refunded() (r bool, exists bool) {
	v := m.refunded
	if v == nil {
		return
	}
	return *v, true
}

// OldRefunded returns the old "refunded" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldRefunded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefunded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefunded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefunded: %w", err)
	}
	return oldValue.Refunded, nil
}

// ResetRefunded resets all changes to the "refunded" field.
func (m *UsageRecordMutation) ResetRefunded() {
	m.refunded = nil
}

// Where appends a list predicates to the UsageRecordMutation builder.
func (m *UsageRecordMutation) Where(ps ...predicate.UsageRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageRecord).
func (m *UsageRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.build_id != nil {
		fields = append(fields, usagerecord.FieldBuildID)
	}
	if m.user_id != nil {
		fields = append(fields, usagerecord.FieldUserID)
	}
	if m.started_at != nil {
		fields = append(fields, usagerecord.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, usagerecord.FieldEndedAt)
	}
	if m.seconds != nil {
		fields = append(fields, usagerecord.FieldSeconds)
	}
	if m.refunded != nil {
		fields = append(fields, usagerecord.FieldRefunded)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldBuildID:
		return m.BuildID()
	case usagerecord.FieldUserID:
		return m.UserID()
	case usagerecord.FieldStartedAt:
		return m.StartedAt()
	case usagerecord.FieldEndedAt:
		return m.EndedAt()
	case usagerecord.FieldSeconds:
		return m.Seconds()
	case usagerecord.FieldRefunded:
		return m.Refunded()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagerecord.FieldBuildID:
		return m.OldBuildID(ctx)
	case usagerecord.FieldUserID:
		return m.OldUserID(ctx)
	case usagerecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case usagerecord.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case usagerecord.FieldSeconds:
		return m.OldSeconds(ctx)
	case usagerecord.FieldRefunded:
		return m.OldRefunded(ctx)
	}
	return nil, fmt.Errorf("unknown UsageRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildID(v)
		return nil
	case usagerecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usagerecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case usagerecord.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case usagerecord.FieldSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeconds(v)
		return nil
	case usagerecord.FieldRefunded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefunded(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageRecordMutation) AddedFields() []string {
	var fields []string
	if m.addseconds != nil {
		fields = append(fields, usagerecord.FieldSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldSeconds:
		return m.AddedSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldSeconds:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usagerecord.FieldEndedAt) {
		fields = append(fields, usagerecord.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageRecordMutation) ClearField(name string) error {
	switch name {
	case usagerecord.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageRecordMutation) ResetField(name string) error {
	switch name {
	case usagerecord.FieldBuildID:
		m.ResetBuildID()
		return nil
	case usagerecord.FieldUserID:
		m.ResetUserID()
		return nil
	case usagerecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case usagerecord.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case usagerecord.FieldSeconds:
		m.ResetSeconds()
		return nil
	case usagerecord.FieldRefunded:
		m.ResetRefunded()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageRecord edge %s", name)
}

// VersionMutation represents an operation that mutates the Version nodes in the graph.
type VersionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	display_counter    *int
	adddisplay_counter *int
	display_name       *string
	major              *int
	addmajor           *int
	minor              *int
	addminor           *int
	patch              *int
	addpatch           *int
	change_type        *version.ChangeType
	agent_session_id   *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	project            *string
	clearedproject     bool
	build              *string
	clearedbuild       bool
	done               bool
	oldValue           func(context.Context) (*Version, error)
	predicates         []predicate.Version
}

var _ ent.Mutation = (*VersionMutation)(nil)

// versionOption allows management of the mutation configuration using functional options.
type versionOption func(*VersionMutation)

// newVersionMutation creates new mutation for the Version entity.
func newVersionMutation(c config, op Op, opts ...versionOption) *VersionMutation {
	m := &VersionMutation{
		config:        c,
		op:            op,
		typ:           TypeVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVersionID sets the ID field of the mutation.
func withVersionID(id string) versionOption {
	return func(m *VersionMutation) {
		var (
			err   error
			once  sync.Once
			value *Version
		)
		m.oldValue = func(ctx context.Context) (*Version, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Version.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVersion sets the old Version of the mutation.
func withVersion(node *Version) versionOption {
	return func(m *VersionMutation) {
		m.oldValue = func(context.Context) (*Version, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Version entities.
func (m *VersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Version.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *VersionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *VersionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *VersionMutation) ResetProjectID() {
	m.project = nil
}

// SetBuildID sets the "build_id" field.
func (m *VersionMutation) SetBuildID(s string) {
	m.build = &s
}

// BuildID returns the value of the "build_id" field in the mutation.
func (m *VersionMutation) BuildID() (r string, exists bool) {
	v := m.build
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildID returns the old "build_id" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldBuildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildID: %w", err)
	}
	return oldValue.BuildID, nil
}

// ResetBuildID resets all changes to the "build_id" field.
func (m *VersionMutation) ResetBuildID() {
	m.build = nil
}

// SetDisplayCounter sets the "display_counter" field.
func (m *VersionMutation) SetDisplayCounter(i int) {
	m.display_counter = &i
	m.adddisplay_counter = nil
}

// DisplayCounter returns the value of the "display_counter" field in the mutation.
func (m *VersionMutation) DisplayCounter() (r int, exists bool) {
	v := m.display_counter
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayCounter returns the old "display_counter" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldDisplayCounter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayCounter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayCounter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayCounter: %w", err)
	}
	return oldValue.DisplayCounter, nil
}

// AddDisplayCounter adds i to the "display_counter" field.
func (m *VersionMutation) AddDisplayCounter(i int) {
	if m.adddisplay_counter != nil {
		*m.adddisplay_counter += i
	} else {
		m.adddisplay_counter = &i
	}
}

// AddedDisplayCounter returns the value that was added to the "display_counter" field in this mutation.
func (m *VersionMutation) AddedDisplayCounter() (r int, exists bool) {
	v := m.adddisplay_counter
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayCounter resets all changes to the "display_counter" field.
func (m *VersionMutation) ResetDisplayCounter() {
	m.display_counter = nil
	m.adddisplay_counter = nil
}

// SetDisplayName sets the "display_name" field.
func (m *VersionMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *VersionMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *VersionMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetMajor sets the "major" field.
func (m *VersionMutation) SetMajor(i int) {
	m.major = &i
	m.addmajor = nil
}

// Major returns the value of the "major" field in the mutation.
func (m *VersionMutation) Major() (r int, exists bool) {
	v := m.major
	if v == nil {
		return
	}
	return *v, true
}

// OldMajor returns the old "major" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldMajor(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMajor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMajor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMajor: %w", err)
	}
	return oldValue.Major, nil
}

// AddMajor adds i to the "major" field.
func (m *VersionMutation) AddMajor(i int) {
	if m.addmajor != nil {
		*m.addmajor += i
	} else {
		m.addmajor = &i
	}
}

// AddedMajor returns the value that was added to the "major" field in this mutation.
func (m *VersionMutation) AddedMajor() (r int, exists bool) {
	v := m.addmajor
	if v == nil {
		return
	}
	return *v, true
}

// ResetMajor resets all changes to the "major" field.
func (m *VersionMutation) ResetMajor() {
	m.major = nil
	m.addmajor = nil
}

// SetMinor sets the "minor" field.
func (m *VersionMutation) SetMinor(i int) {
	m.minor = &i
	m.addminor = nil
}

// Minor returns the value of the "minor" field in the mutation.
func (m *VersionMutation) Minor() (r int, exists bool) {
	v := m.minor
	if v == nil {
		return
	}
	return *v, true
}

// OldMinor returns the old "minor" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldMinor(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinor: %w", err)
	}
	return oldValue.Minor, nil
}

// AddMinor adds i to the "minor" field.
func (m *VersionMutation) AddMinor(i int) {
	if m.addminor != nil {
		*m.addminor += i
	} else {
		m.addminor = &i
	}
}

// AddedMinor returns the value that was added to the "minor" field in this mutation.
func (m *VersionMutation) AddedMinor() (r int, exists bool) {
	v := m.addminor
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinor resets all changes to the "minor" field.
func (m *VersionMutation) ResetMinor() {
	m.minor = nil
	m.addminor = nil
}

// SetPatch sets the "patch" field.
func (m *VersionMutation) SetPatch(i int) {
	m.patch = &i
	m.addpatch = nil
}

// Patch returns the value of the "patch" field in the mutation.
func (m *VersionMutation) Patch() (r int, exists bool) {
	v := m.patch
	if v == nil {
		return
	}
	return *v, true
}

// OldPatch returns the old "patch" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldPatch(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatch: %w", err)
	}
	return oldValue.Patch, nil
}

// AddPatch adds i to the "patch" field.
func (m *VersionMutation) AddPatch(i int) {
	if m.addpatch != nil {
		*m.addpatch += i
	} else {
		m.addpatch = &i
	}
}

// AddedPatch returns the value that was added to the "patch" field in this mutation.
func (m *VersionMutation) AddedPatch() (r int, exists bool) {
	v := m.addpatch
	if v == nil {
		return
	}
	return *v, true
}

// ResetPatch resets all changes to the "patch" field.
func (m *VersionMutation) ResetPatch() {
	m.patch = nil
	m.addpatch = nil
}

// SetChangeType sets the "change_type" field.
func (m *VersionMutation) SetChangeType(vt version.ChangeType) {
	m.change_type = &vt
}

// ChangeType returns the value of the "change_type" field in the mutation.
func (m *VersionMutation) ChangeType() (r version.ChangeType, exists bool) {
	v := m.change_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeType returns the old "change_type" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldChangeType(ctx context.Context) (v version.ChangeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeType: %w", err)
	}
	return oldValue.ChangeType, nil
}

// ClearChangeType clears the value of the "change_type" field.
func (m *VersionMutation) ClearChangeType() {
	m.change_type = nil
	m.clearedFields[version.FieldChangeType] = struct{}{}
}

// ChangeTypeCleared returns if the "change_type" field was cleared in this mutation.
func (m *VersionMutation) ChangeTypeCleared() bool {
	_, ok := m.clearedFields[version.FieldChangeType]
	return ok
}

// ResetChangeType resets all changes to the "change_type" field.
func (m *VersionMutation) ResetChangeType() {
	m.change_type = nil
	delete(m.clearedFields, version.FieldChangeType)
}

// SetAgentSessionID sets the "agent_session_id" field.
func (m *VersionMutation) SetAgentSessionID(s string) {
	m.agent_session_id = &s
}

// AgentSessionID returns the value of the "agent_session_id" field in the mutation.
func (m *VersionMutation) AgentSessionID() (r string, exists bool) {
	v := m.agent_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentSessionID returns the old "agent_session_id" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldAgentSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentSessionID: %w", err)
	}
	return oldValue.AgentSessionID, nil
}

// ClearAgentSessionID clears the value of the "agent_session_id" field.
func (m *VersionMutation) ClearAgentSessionID() {
	m.agent_session_id = nil
	m.clearedFields[version.FieldAgentSessionID] = struct{}{}
}

// AgentSessionIDCleared returns if the "agent_session_id" field was cleared in this mutation.
func (m *VersionMutation) AgentSessionIDCleared() bool {
	_, ok := m.clearedFields[version.FieldAgentSessionID]
	return ok
}

// ResetAgentSessionID resets all changes to the "agent_session_id" field.
func (m *VersionMutation) ResetAgentSessionID() {
	m.agent_session_id = nil
	delete(m.clearedFields, version.FieldAgentSessionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *VersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *VersionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[version.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *VersionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *VersionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *VersionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearBuild clears the "build" edge to the Build entity.
func (m *VersionMutation) ClearBuild() {
	m.clearedbuild = true
	m.clearedFields[version.FieldBuildID] = struct{}{}
}

// BuildCleared reports if the "build" edge to the Build entity was cleared.
func (m *VersionMutation) BuildCleared() bool {
	return m.clearedbuild
}

// BuildIDs returns the "build" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuildID instead. It exists only for internal usage by the builders.
func (m *VersionMutation) BuildIDs() (ids []string) {
	if id := m.build; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuild resets all changes to the "build" edge.
func (m *VersionMutation) ResetBuild() {
	m.build = nil
	m.clearedbuild = false
}

// Where appends a list predicates to the VersionMutation builder.
func (m *VersionMutation) Where(ps ...predicate.Version) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Version, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Version).
func (m *VersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VersionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.project != nil {
		fields = append(fields, version.FieldProjectID)
	}
	if m.build != nil {
		fields = append(fields, version.FieldBuildID)
	}
	if m.display_counter != nil {
		fields = append(fields, version.FieldDisplayCounter)
	}
	if m.display_name != nil {
		fields = append(fields, version.FieldDisplayName)
	}
	if m.major != nil {
		fields = append(fields, version.FieldMajor)
	}
	if m.minor != nil {
		fields = append(fields, version.FieldMinor)
	}
	if m.patch != nil {
		fields = append(fields, version.FieldPatch)
	}
	if m.change_type != nil {
		fields = append(fields, version.FieldChangeType)
	}
	if m.agent_session_id != nil {
		fields = append(fields, version.FieldAgentSessionID)
	}
	if m.created_at != nil {
		fields = append(fields, version.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case version.FieldProjectID:
		return m.ProjectID()
	case version.FieldBuildID:
		return m.BuildID()
	case version.FieldDisplayCounter:
		return m.DisplayCounter()
	case version.FieldDisplayName:
		return m.DisplayName()
	case version.FieldMajor:
		return m.Major()
	case version.FieldMinor:
		return m.Minor()
	case version.FieldPatch:
		return m.Patch()
	case version.FieldChangeType:
		return m.ChangeType()
	case version.FieldAgentSessionID:
		return m.AgentSessionID()
	case version.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case version.FieldProjectID:
		return m.OldProjectID(ctx)
	case version.FieldBuildID:
		return m.OldBuildID(ctx)
	case version.FieldDisplayCounter:
		return m.OldDisplayCounter(ctx)
	case version.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case version.FieldMajor:
		return m.OldMajor(ctx)
	case version.FieldMinor:
		return m.OldMinor(ctx)
	case version.FieldPatch:
		return m.OldPatch(ctx)
	case version.FieldChangeType:
		return m.OldChangeType(ctx)
	case version.FieldAgentSessionID:
		return m.OldAgentSessionID(ctx)
	case version.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Version field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case version.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case version.FieldBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildID(v)
		return nil
	case version.FieldDisplayCounter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayCounter(v)
		return nil
	case version.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case version.FieldMajor:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMajor(v)
		return nil
	case version.FieldMinor:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinor(v)
		return nil
	case version.FieldPatch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatch(v)
		return nil
	case version.FieldChangeType:
		v, ok := value.(version.ChangeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeType(v)
		return nil
	case version.FieldAgentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentSessionID(v)
		return nil
	case version.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Version field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VersionMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_counter != nil {
		fields = append(fields, version.FieldDisplayCounter)
	}
	if m.addmajor != nil {
		fields = append(fields, version.FieldMajor)
	}
	if m.addminor != nil {
		fields = append(fields, version.FieldMinor)
	}
	if m.addpatch != nil {
		fields = append(fields, version.FieldPatch)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case version.FieldDisplayCounter:
		return m.AddedDisplayCounter()
	case version.FieldMajor:
		return m.AddedMajor()
	case version.FieldMinor:
		return m.AddedMinor()
	case version.FieldPatch:
		return m.AddedPatch()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case version.FieldDisplayCounter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayCounter(v)
		return nil
	case version.FieldMajor:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMajor(v)
		return nil
	case version.FieldMinor:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinor(v)
		return nil
	case version.FieldPatch:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPatch(v)
		return nil
	}
	return fmt.Errorf("unknown Version numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(version.FieldChangeType) {
		fields = append(fields, version.FieldChangeType)
	}
	if m.FieldCleared(version.FieldAgentSessionID) {
		fields = append(fields, version.FieldAgentSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VersionMutation) ClearField(name string) error {
	switch name {
	case version.FieldChangeType:
		m.ClearChangeType()
		return nil
	case version.FieldAgentSessionID:
		m.ClearAgentSessionID()
		return nil
	}
	return fmt.Errorf("unknown Version nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VersionMutation) ResetField(name string) error {
	switch name {
	case version.FieldProjectID:
		m.ResetProjectID()
		return nil
	case version.FieldBuildID:
		m.ResetBuildID()
		return nil
	case version.FieldDisplayCounter:
		m.ResetDisplayCounter()
		return nil
	case version.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case version.FieldMajor:
		m.ResetMajor()
		return nil
	case version.FieldMinor:
		m.ResetMinor()
		return nil
	case version.FieldPatch:
		m.ResetPatch()
		return nil
	case version.FieldChangeType:
		m.ResetChangeType()
		return nil
	case version.FieldAgentSessionID:
		m.ResetAgentSessionID()
		return nil
	case version.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Version field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, version.EdgeProject)
	}
	if m.build != nil {
		edges = append(edges, version.EdgeBuild)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case version.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case version.EdgeBuild:
		if id := m.build; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, version.EdgeProject)
	}
	if m.clearedbuild {
		edges = append(edges, version.EdgeBuild)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VersionMutation) EdgeCleared(name string) bool {
	switch name {
	case version.EdgeProject:
		return m.clearedproject
	case version.EdgeBuild:
		return m.clearedbuild
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VersionMutation) ClearEdge(name string) error {
	switch name {
	case version.EdgeProject:
		m.ClearProject()
		return nil
	case version.EdgeBuild:
		m.ClearBuild()
		return nil
	}
	return fmt.Errorf("unknown Version unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VersionMutation) ResetEdge(name string) error {
	switch name {
	case version.EdgeProject:
		m.ResetProject()
		return nil
	case version.EdgeBuild:
		m.ResetBuild()
		return nil
	}
	return fmt.Errorf("unknown Version edge %s", name)
}
