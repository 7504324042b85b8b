// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/ent/version"
)

// Version is the model entity for the Version schema.
type Version struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// BuildID holds the value of the "build_id" field.
	BuildID string `json:"build_id,omitempty"`
	// Per-project monotonic counter backing the vN display name
	DisplayCounter int `json:"display_counter,omitempty"`
	// Human-readable name (vN); once set it is never overwritten
	DisplayName string `json:"display_name,omitempty"`
	// Major holds the value of the "major" field.
	Major int `json:"major,omitempty"`
	// Minor holds the value of the "minor" field.
	Minor int `json:"minor,omitempty"`
	// Patch holds the value of the "patch" field.
	Patch int `json:"patch,omitempty"`
	// Semantic label written by the metadata stage
	ChangeType version.ChangeType `json:"change_type,omitempty"`
	// AgentSessionID holds the value of the "agent_session_id" field.
	AgentSessionID *string `json:"agent_session_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VersionQuery when eager-loading is set.
	Edges        VersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VersionEdges holds the relations/edges for other nodes in the graph.
type VersionEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Build holds the value of the build edge.
	Build *Build `json:"build,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VersionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// BuildOrErr returns the Build value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VersionEdges) BuildOrErr() (*Build, error) {
	if e.Build != nil {
		return e.Build, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: build.Label}
	}
	return nil, &NotLoadedError{edge: "build"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Version) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case version.FieldDisplayCounter, version.FieldMajor, version.FieldMinor, version.FieldPatch:
			values[i] = new(sql.NullInt64)
		case version.FieldID, version.FieldProjectID, version.FieldBuildID, version.FieldDisplayName, version.FieldChangeType, version.FieldAgentSessionID:
			values[i] = new(sql.NullString)
		case version.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Version fields.
func (_m *Version) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case version.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case version.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case version.FieldBuildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_id", values[i])
			} else if value.Valid {
				_m.BuildID = value.String
			}
		case version.FieldDisplayCounter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_counter", values[i])
			} else if value.Valid {
				_m.DisplayCounter = int(value.Int64)
			}
		case version.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case version.FieldMajor:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field major", values[i])
			} else if value.Valid {
				_m.Major = int(value.Int64)
			}
		case version.FieldMinor:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minor", values[i])
			} else if value.Valid {
				_m.Minor = int(value.Int64)
			}
		case version.FieldPatch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field patch", values[i])
			} else if value.Valid {
				_m.Patch = int(value.Int64)
			}
		case version.FieldChangeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_type", values[i])
			} else if value.Valid {
				_m.ChangeType = version.ChangeType(value.String)
			}
		case version.FieldAgentSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_session_id", values[i])
			} else if value.Valid {
				_m.AgentSessionID = new(string)
				*_m.AgentSessionID = value.String
			}
		case version.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Version.
// This includes values selected through modifiers, order, etc.
func (_m *Version) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Version entity.
func (_m *Version) QueryProject() *ProjectQuery {
	return NewVersionClient(_m.config).QueryProject(_m)
}

// QueryBuild queries the "build" edge of the Version entity.
func (_m *Version) QueryBuild() *BuildQuery {
	return NewVersionClient(_m.config).QueryBuild(_m)
}

// Update returns a builder for updating this Version.
// Note that you need to call Version.Unwrap() before calling this method if this Version
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Version) Update() *VersionUpdateOne {
	return NewVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Version entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Version) Unwrap() *Version {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Version is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Version) String() string {
	var builder strings.Builder
	builder.WriteString("Version(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("build_id=")
	builder.WriteString(_m.BuildID)
	builder.WriteString(", ")
	builder.WriteString("display_counter=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayCounter))
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("major=")
	builder.WriteString(fmt.Sprintf("%v", _m.Major))
	builder.WriteString(", ")
	builder.WriteString("minor=")
	builder.WriteString(fmt.Sprintf("%v", _m.Minor))
	builder.WriteString(", ")
	builder.WriteString("patch=")
	builder.WriteString(fmt.Sprintf("%v", _m.Patch))
	builder.WriteString(", ")
	builder.WriteString("change_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangeType))
	builder.WriteString(", ")
	if v := _m.AgentSessionID; v != nil {
		builder.WriteString("agent_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Versions is a parsable slice of Version.
type Versions []*Version
