// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/checkpoint"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/ent/version"
)

// Build is the model entity for the Build schema.
type Build struct {
	config `json:"-"`
	// ID of the ent.
	// ULID, 26 chars, sortable by creation time
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status build.Status `json:"status,omitempty"`
	// Monotonically increasing supervised execution counter; >= 1
	Attempt int `json:"attempt,omitempty"`
	// Learned from the first event of the agent's output stream
	AgentSessionID *string `json:"agent_session_id,omitempty"`
	// IsInitialBuild holds the value of the "is_initial_build" field.
	IsInitialBuild bool `json:"is_initial_build,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Wall-clock start; completed_at >= started_at enforced by DB check
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorType holds the value of the "error_type" field.
	ErrorType *string `json:"error_type,omitempty"`
	// Last error text; carried into the next attempt's prompt context
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BuildQuery when eager-loading is set.
	Edges        BuildEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BuildEdges holds the relations/edges for other nodes in the graph.
type BuildEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Version holds the value of the version edge.
	Version *Version `json:"version,omitempty"`
	// Checkpoint holds the value of the checkpoint edge.
	Checkpoint *Checkpoint `json:"checkpoint,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BuildEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// VersionOrErr returns the Version value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BuildEdges) VersionOrErr() (*Version, error) {
	if e.Version != nil {
		return e.Version, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: version.Label}
	}
	return nil, &NotLoadedError{edge: "version"}
}

// CheckpointOrErr returns the Checkpoint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BuildEdges) CheckpointOrErr() (*Checkpoint, error) {
	if e.Checkpoint != nil {
		return e.Checkpoint, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: checkpoint.Label}
	}
	return nil, &NotLoadedError{edge: "checkpoint"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Build) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case build.FieldIsInitialBuild:
			values[i] = new(sql.NullBool)
		case build.FieldAttempt:
			values[i] = new(sql.NullInt64)
		case build.FieldID, build.FieldProjectID, build.FieldUserID, build.FieldStatus, build.FieldAgentSessionID, build.FieldPrompt, build.FieldErrorType, build.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case build.FieldStartedAt, build.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Build fields.
func (_m *Build) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case build.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case build.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case build.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case build.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = build.Status(value.String)
			}
		case build.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case build.FieldAgentSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_session_id", values[i])
			} else if value.Valid {
				_m.AgentSessionID = new(string)
				*_m.AgentSessionID = value.String
			}
		case build.FieldIsInitialBuild:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_initial_build", values[i])
			} else if value.Valid {
				_m.IsInitialBuild = value.Bool
			}
		case build.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case build.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case build.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case build.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = new(string)
				*_m.ErrorType = value.String
			}
		case build.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Build.
// This includes values selected through modifiers, order, etc.
func (_m *Build) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Build entity.
func (_m *Build) QueryProject() *ProjectQuery {
	return NewBuildClient(_m.config).QueryProject(_m)
}

// QueryVersion queries the "version" edge of the Build entity.
func (_m *Build) QueryVersion() *VersionQuery {
	return NewBuildClient(_m.config).QueryVersion(_m)
}

// QueryCheckpoint queries the "checkpoint" edge of the Build entity.
func (_m *Build) QueryCheckpoint() *CheckpointQuery {
	return NewBuildClient(_m.config).QueryCheckpoint(_m)
}

// Update returns a builder for updating this Build.
// Note that you need to call Build.Unwrap() before calling this method if this Build
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Build) Update() *BuildUpdateOne {
	return NewBuildClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Build entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Build) Unwrap() *Build {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Build is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Build) String() string {
	var builder strings.Builder
	builder.WriteString("Build(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	if v := _m.AgentSessionID; v != nil {
		builder.WriteString("agent_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_initial_build=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsInitialBuild))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorType; v != nil {
		builder.WriteString("error_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Builds is a parsable slice of Build.
type Builds []*Build
