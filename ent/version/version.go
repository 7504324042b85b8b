// Code generated by ent, DO NOT EDIT.

package version

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the version type in the database.
	Label = "version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "version_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldBuildID holds the string denoting the build_id field in the database.
	FieldBuildID = "build_id"
	// FieldDisplayCounter holds the string denoting the display_counter field in the database.
	FieldDisplayCounter = "display_counter"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldMajor holds the string denoting the major field in the database.
	FieldMajor = "major"
	// FieldMinor holds the string denoting the minor field in the database.
	FieldMinor = "minor"
	// FieldPatch holds the string denoting the patch field in the database.
	FieldPatch = "patch"
	// FieldChangeType holds the string denoting the change_type field in the database.
	FieldChangeType = "change_type"
	// FieldAgentSessionID holds the string denoting the agent_session_id field in the database.
	FieldAgentSessionID = "agent_session_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeBuild holds the string denoting the build edge name in mutations.
	EdgeBuild = "build"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// BuildFieldID holds the string denoting the ID field of the Build.
	BuildFieldID = "build_id"
	// Table holds the table name of the version in the database.
	Table = "versions"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "versions"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// BuildTable is the table that holds the build relation/edge.
	BuildTable = "versions"
	// BuildInverseTable is the table name for the Build entity.
	// It exists in this package in order to avoid circular dependency with the "build" package.
	BuildInverseTable = "builds"
	// BuildColumn is the table column denoting the build relation/edge.
	BuildColumn = "build_id"
)

// Columns holds all SQL columns for version fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldBuildID,
	FieldDisplayCounter,
	FieldDisplayName,
	FieldMajor,
	FieldMinor,
	FieldPatch,
	FieldChangeType,
	FieldAgentSessionID,
	FieldCreatedAt,
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
	// DefaultMajor holds the default value on creation for the "major" field.
	DefaultMajor int
	// DefaultMinor holds the default value on creation for the "minor" field.
	DefaultMinor int
	// DefaultPatch holds the default value on creation for the "patch" field.
	DefaultPatch int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// ChangeType defines the type for the "change_type" enum field.
type ChangeType string

// ChangeType values.
const (
	ChangeTypeMajor ChangeType = "major"
	ChangeTypeMinor ChangeType = "minor"
	ChangeTypePatch ChangeType = "patch"
)

func (ct ChangeType) String() string {
	return string(ct)
}

// ChangeTypeValidator is a validator for the "change_type" field enum values. It is called by the builders before save.
func ChangeTypeValidator(ct ChangeType) error {
	switch ct {
	case ChangeTypeMajor, ChangeTypeMinor, ChangeTypePatch:
		return nil
	default:
		return fmt.Errorf("version: invalid enum value for change_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Version queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByBuildID orders the results by the build_id field.
func ByBuildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildID, opts...).ToFunc()
}

// ByDisplayCounter orders the results by the display_counter field.
func ByDisplayCounter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayCounter, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByMajor orders the results by the major field.
func ByMajor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMajor, opts...).ToFunc()
}

// ByMinor orders the results by the minor field.
func ByMinor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinor, opts...).ToFunc()
}

// ByPatch orders the results by the patch field.
func ByPatch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatch, opts...).ToFunc()
}

// ByChangeType orders the results by the change_type field.
func ByChangeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeType, opts...).ToFunc()
}

// ByAgentSessionID orders the results by the agent_session_id field.
func ByAgentSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentSessionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByBuildField orders the results by build field.
func ByBuildField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuildStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newBuildStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuildInverseTable, BuildFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, BuildTable, BuildColumn),
	)
}
