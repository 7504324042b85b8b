// Code generated by ent, DO NOT EDIT.

package queuestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the queuestate type in the database.
	Label = "queue_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQueue holds the string denoting the queue field in the database.
	FieldQueue = "queue"
	// FieldPaused holds the string denoting the paused field in the database.
	FieldPaused = "paused"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldPausedUntil holds the string denoting the paused_until field in the database.
	FieldPausedUntil = "paused_until"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the queuestate in the database.
	Table = "queue_states"
)

// Columns holds all SQL columns for queuestate fields.
var Columns = []string{
	FieldID,
	FieldQueue,
	FieldPaused,
	FieldReason,
	FieldPausedUntil,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPaused holds the default value on creation for the "paused" field.
	DefaultPaused bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the QueueState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQueue orders the results by the queue field.
func ByQueue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueue, opts...).ToFunc()
}

// ByPaused orders the results by the paused field.
func ByPaused(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaused, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByPausedUntil orders the results by the paused_until field.
func ByPausedUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPausedUntil, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
