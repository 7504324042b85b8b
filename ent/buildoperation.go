// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/appforge/forge/ent/buildoperation"
)

// BuildOperation is the model entity for the BuildOperation schema.
type BuildOperation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Caller-chosen idempotency key
	OperationID string `json:"operation_id,omitempty"`
	// BuildID holds the value of the "build_id" field.
	BuildID string `json:"build_id,omitempty"`
	// VersionID holds the value of the "version_id" field.
	VersionID string `json:"version_id,omitempty"`
	// Patched after successful enqueue; empty until then
	JobID string `json:"job_id,omitempty"`
	// Status holds the value of the "status" field.
	Status buildoperation.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt          time.Time `json:"created_at,omitempty"`
	project_operations *string
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BuildOperation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case buildoperation.FieldID:
			values[i] = new(sql.NullInt64)
		case buildoperation.FieldProjectID, buildoperation.FieldOperationID, buildoperation.FieldBuildID, buildoperation.FieldVersionID, buildoperation.FieldJobID, buildoperation.FieldStatus:
			values[i] = new(sql.NullString)
		case buildoperation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case buildoperation.ForeignKeys[0]: // project_operations
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BuildOperation fields.
func (_m *BuildOperation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case buildoperation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case buildoperation.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case buildoperation.FieldOperationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_id", values[i])
			} else if value.Valid {
				_m.OperationID = value.String
			}
		case buildoperation.FieldBuildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_id", values[i])
			} else if value.Valid {
				_m.BuildID = value.String
			}
		case buildoperation.FieldVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version_id", values[i])
			} else if value.Valid {
				_m.VersionID = value.String
			}
		case buildoperation.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case buildoperation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = buildoperation.Status(value.String)
			}
		case buildoperation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case buildoperation.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_operations", values[i])
			} else if value.Valid {
				_m.project_operations = new(string)
				*_m.project_operations = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BuildOperation.
// This includes values selected through modifiers, order, etc.
func (_m *BuildOperation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BuildOperation.
// Note that you need to call BuildOperation.Unwrap() before calling this method if this BuildOperation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BuildOperation) Update() *BuildOperationUpdateOne {
	return NewBuildOperationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BuildOperation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BuildOperation) Unwrap() *BuildOperation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BuildOperation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BuildOperation) String() string {
	var builder strings.Builder
	builder.WriteString("BuildOperation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("operation_id=")
	builder.WriteString(_m.OperationID)
	builder.WriteString(", ")
	builder.WriteString("build_id=")
	builder.WriteString(_m.BuildID)
	builder.WriteString(", ")
	builder.WriteString("version_id=")
	builder.WriteString(_m.VersionID)
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BuildOperations is a parsable slice of BuildOperation.
type BuildOperations []*BuildOperation
