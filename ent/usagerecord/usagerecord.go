// Code generated by ent, DO NOT EDIT.

package usagerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usagerecord type in the database.
	Label = "usage_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBuildID holds the string denoting the build_id field in the database.
	FieldBuildID = "build_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldSeconds holds the string denoting the seconds field in the database.
	FieldSeconds = "seconds"
	// FieldRefunded holds the string denoting the refunded field in the database.
	FieldRefunded = "refunded"
	// Table holds the table name of the usagerecord in the database.
	Table = "usage_records"
)

// Columns holds all SQL columns for usagerecord fields.
var Columns = []string{
	FieldID,
	FieldBuildID,
	FieldUserID,
	FieldStartedAt,
	FieldEndedAt,
	FieldSeconds,
	FieldRefunded,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultSeconds holds the default value on creation for the "seconds" field.
	DefaultSeconds int64
	// DefaultRefunded holds the default value on creation for the "refunded" field.
	DefaultRefunded bool
)

// OrderOption defines the ordering options for the UsageRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBuildID orders the results by the build_id field.
func ByBuildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// BySeconds orders the results by the seconds field.
func BySeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeconds, opts...).ToFunc()
}

// ByRefunded orders the results by the refunded field.
func ByRefunded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefunded, opts...).ToFunc()
}
