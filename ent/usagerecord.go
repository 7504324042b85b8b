// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/appforge/forge/ent/usagerecord"
)

// UsageRecord is the model entity for the UsageRecord schema.
type UsageRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BuildID holds the value of the "build_id" field.
	BuildID string `json:"build_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Seconds holds the value of the "seconds" field.
	Seconds int64 `json:"seconds,omitempty"`
	// Refunded holds the value of the "refunded" field.
	Refunded     bool `json:"refunded,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usagerecord.FieldRefunded:
			values[i] = new(sql.NullBool)
		case usagerecord.FieldID, usagerecord.FieldSeconds:
			values[i] = new(sql.NullInt64)
		case usagerecord.FieldBuildID, usagerecord.FieldUserID:
			values[i] = new(sql.NullString)
		case usagerecord.FieldStartedAt, usagerecord.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageRecord fields.
func (_m *UsageRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usagerecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case usagerecord.FieldBuildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_id", values[i])
			} else if value.Valid {
				_m.BuildID = value.String
			}
		case usagerecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case usagerecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case usagerecord.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case usagerecord.FieldSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seconds", values[i])
			} else if value.Valid {
				_m.Seconds = value.Int64
			}
		case usagerecord.FieldRefunded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field refunded", values[i])
			} else if value.Valid {
				_m.Refunded = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageRecord.
// This includes values selected through modifiers, order, etc.
func (_m *UsageRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UsageRecord.
// Note that you need to call UsageRecord.Unwrap() before calling this method if this UsageRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageRecord) Update() *UsageRecordUpdateOne {
	return NewUsageRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageRecord) Unwrap() *UsageRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageRecord) String() string {
	var builder strings.Builder
	builder.WriteString("UsageRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("build_id=")
	builder.WriteString(_m.BuildID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seconds))
	builder.WriteString(", ")
	builder.WriteString("refunded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Refunded))
	builder.WriteByte(')')
	return builder.String()
}

// UsageRecords is a parsable slice of UsageRecord.
type UsageRecords []*UsageRecord
