// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/appforge/forge/ent/project"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// User that owns the project
	OwnerID string `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Framework hint passed to the agent (e.g. 'react', 'astro')
	Framework string `json:"framework,omitempty"`
	// Current build lifecycle state; empty until the first build
	BuildStatus project.BuildStatus `json:"build_status,omitempty"`
	// CurrentBuildID holds the value of the "current_build_id" field.
	CurrentBuildID *string `json:"current_build_id,omitempty"`
	// CurrentVersionID holds the value of the "current_version_id" field.
	CurrentVersionID *string `json:"current_version_id,omitempty"`
	// Display name shown to users (vN); never overwritten by semantic labels
	CurrentVersionName *string `json:"current_version_name,omitempty"`
	// Agent session carried across builds for contextual continuation
	LastAgentSessionID *string `json:"last_agent_session_id,omitempty"`
	// PreviewURL holds the value of the "preview_url" field.
	PreviewURL *string `json:"preview_url,omitempty"`
	// static | edge | node, from the agent's deploy intent
	DeployLane *string `json:"deploy_lane,omitempty"`
	// LastBuildStartedAt holds the value of the "last_build_started_at" field.
	LastBuildStartedAt *time.Time `json:"last_build_started_at,omitempty"`
	// LastBuildCompletedAt holds the value of the "last_build_completed_at" field.
	LastBuildCompletedAt *time.Time `json:"last_build_completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Builds holds the value of the builds edge.
	Builds []*Build `json:"builds,omitempty"`
	// Versions holds the value of the versions edge.
	Versions []*Version `json:"versions,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Operations holds the value of the operations edge.
	Operations []*BuildOperation `json:"operations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// BuildsOrErr returns the Builds value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) BuildsOrErr() ([]*Build, error) {
	if e.loadedTypes[0] {
		return e.Builds, nil
	}
	return nil, &NotLoadedError{edge: "builds"}
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) VersionsOrErr() ([]*Version, error) {
	if e.loadedTypes[1] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[2] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// OperationsOrErr returns the Operations value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) OperationsOrErr() ([]*BuildOperation, error) {
	if e.loadedTypes[3] {
		return e.Operations, nil
	}
	return nil, &NotLoadedError{edge: "operations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldID, project.FieldOwnerID, project.FieldName, project.FieldFramework, project.FieldBuildStatus, project.FieldCurrentBuildID, project.FieldCurrentVersionID, project.FieldCurrentVersionName, project.FieldLastAgentSessionID, project.FieldPreviewURL, project.FieldDeployLane:
			values[i] = new(sql.NullString)
		case project.FieldLastBuildStartedAt, project.FieldLastBuildCompletedAt, project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldFramework:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field framework", values[i])
			} else if value.Valid {
				_m.Framework = value.String
			}
		case project.FieldBuildStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_status", values[i])
			} else if value.Valid {
				_m.BuildStatus = project.BuildStatus(value.String)
			}
		case project.FieldCurrentBuildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_build_id", values[i])
			} else if value.Valid {
				_m.CurrentBuildID = new(string)
				*_m.CurrentBuildID = value.String
			}
		case project.FieldCurrentVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_version_id", values[i])
			} else if value.Valid {
				_m.CurrentVersionID = new(string)
				*_m.CurrentVersionID = value.String
			}
		case project.FieldCurrentVersionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_version_name", values[i])
			} else if value.Valid {
				_m.CurrentVersionName = new(string)
				*_m.CurrentVersionName = value.String
			}
		case project.FieldLastAgentSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_agent_session_id", values[i])
			} else if value.Valid {
				_m.LastAgentSessionID = new(string)
				*_m.LastAgentSessionID = value.String
			}
		case project.FieldPreviewURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preview_url", values[i])
			} else if value.Valid {
				_m.PreviewURL = new(string)
				*_m.PreviewURL = value.String
			}
		case project.FieldDeployLane:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deploy_lane", values[i])
			} else if value.Valid {
				_m.DeployLane = new(string)
				*_m.DeployLane = value.String
			}
		case project.FieldLastBuildStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_build_started_at", values[i])
			} else if value.Valid {
				_m.LastBuildStartedAt = new(time.Time)
				*_m.LastBuildStartedAt = value.Time
			}
		case project.FieldLastBuildCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_build_completed_at", values[i])
			} else if value.Valid {
				_m.LastBuildCompletedAt = new(time.Time)
				*_m.LastBuildCompletedAt = value.Time
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBuilds queries the "builds" edge of the Project entity.
func (_m *Project) QueryBuilds() *BuildQuery {
	return NewProjectClient(_m.config).QueryBuilds(_m)
}

// QueryVersions queries the "versions" edge of the Project entity.
func (_m *Project) QueryVersions() *VersionQuery {
	return NewProjectClient(_m.config).QueryVersions(_m)
}

// QueryMessages queries the "messages" edge of the Project entity.
func (_m *Project) QueryMessages() *MessageQuery {
	return NewProjectClient(_m.config).QueryMessages(_m)
}

// QueryOperations queries the "operations" edge of the Project entity.
func (_m *Project) QueryOperations() *BuildOperationQuery {
	return NewProjectClient(_m.config).QueryOperations(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("framework=")
	builder.WriteString(_m.Framework)
	builder.WriteString(", ")
	builder.WriteString("build_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuildStatus))
	builder.WriteString(", ")
	if v := _m.CurrentBuildID; v != nil {
		builder.WriteString("current_build_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentVersionID; v != nil {
		builder.WriteString("current_version_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentVersionName; v != nil {
		builder.WriteString("current_version_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastAgentSessionID; v != nil {
		builder.WriteString("last_agent_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PreviewURL; v != nil {
		builder.WriteString("preview_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeployLane; v != nil {
		builder.WriteString("deploy_lane=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastBuildStartedAt; v != nil {
		builder.WriteString("last_build_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastBuildCompletedAt; v != nil {
		builder.WriteString("last_build_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
