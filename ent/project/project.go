// Code generated by ent, DO NOT EDIT.

package project

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "project_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldFramework holds the string denoting the framework field in the database.
	FieldFramework = "framework"
	// FieldBuildStatus holds the string denoting the build_status field in the database.
	FieldBuildStatus = "build_status"
	// FieldCurrentBuildID holds the string denoting the current_build_id field in the database.
	FieldCurrentBuildID = "current_build_id"
	// FieldCurrentVersionID holds the string denoting the current_version_id field in the database.
	FieldCurrentVersionID = "current_version_id"
	// FieldCurrentVersionName holds the string denoting the current_version_name field in the database.
	FieldCurrentVersionName = "current_version_name"
	// FieldLastAgentSessionID holds the string denoting the last_agent_session_id field in the database.
	FieldLastAgentSessionID = "last_agent_session_id"
	// FieldPreviewURL holds the string denoting the preview_url field in the database.
	FieldPreviewURL = "preview_url"
	// FieldDeployLane holds the string denoting the deploy_lane field in the database.
	FieldDeployLane = "deploy_lane"
	// FieldLastBuildStartedAt holds the string denoting the last_build_started_at field in the database.
	FieldLastBuildStartedAt = "last_build_started_at"
	// FieldLastBuildCompletedAt holds the string denoting the last_build_completed_at field in the database.
	FieldLastBuildCompletedAt = "last_build_completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBuilds holds the string denoting the builds edge name in mutations.
	EdgeBuilds = "builds"
	// EdgeVersions holds the string denoting the versions edge name in mutations.
	EdgeVersions = "versions"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeOperations holds the string denoting the operations edge name in mutations.
	EdgeOperations = "operations"
	// BuildFieldID holds the string denoting the ID field of the Build.
	BuildFieldID = "build_id"
	// VersionFieldID holds the string denoting the ID field of the Version.
	VersionFieldID = "version_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// BuildOperationFieldID holds the string denoting the ID field of the BuildOperation.
	BuildOperationFieldID = "id"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// BuildsTable is the table that holds the builds relation/edge.
	BuildsTable = "builds"
	// BuildsInverseTable is the table name for the Build entity.
	// It exists in this package in order to avoid circular dependency with the "build" package.
	BuildsInverseTable = "builds"
	// BuildsColumn is the table column denoting the builds relation/edge.
	BuildsColumn = "project_id"
	// VersionsTable is the table that holds the versions relation/edge.
	VersionsTable = "versions"
	// VersionsInverseTable is the table name for the Version entity.
	// It exists in this package in order to avoid circular dependency with the "version" package.
	VersionsInverseTable = "versions"
	// VersionsColumn is the table column denoting the versions relation/edge.
	VersionsColumn = "project_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "project_id"
	// OperationsTable is the table that holds the operations relation/edge.
	OperationsTable = "build_operations"
	// OperationsInverseTable is the table name for the BuildOperation entity.
	// It exists in this package in order to avoid circular dependency with the "buildoperation" package.
	OperationsInverseTable = "build_operations"
	// OperationsColumn is the table column denoting the operations relation/edge.
	OperationsColumn = "project_operations"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldName,
	FieldFramework,
	FieldBuildStatus,
	FieldCurrentBuildID,
	FieldCurrentVersionID,
	FieldCurrentVersionName,
	FieldLastAgentSessionID,
	FieldPreviewURL,
	FieldDeployLane,
	FieldLastBuildStartedAt,
	FieldLastBuildCompletedAt,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// BuildStatus defines the type for the "build_status" enum field.
type BuildStatus string

// BuildStatus values.
const (
	BuildStatusQueued         BuildStatus = "queued"
	BuildStatusBuilding       BuildStatus = "building"
	BuildStatusDeployed       BuildStatus = "deployed"
	BuildStatusFailed         BuildStatus = "failed"
	BuildStatusCanceled       BuildStatus = "canceled"
	BuildStatusSuperseded     BuildStatus = "superseded"
	BuildStatusRollingBack    BuildStatus = "rolling_back"
	BuildStatusRollbackFailed BuildStatus = "rollback_failed"
)

func (bs BuildStatus) String() string {
	return string(bs)
}

// BuildStatusValidator is a validator for the "build_status" field enum values. It is called by the builders before save.
func BuildStatusValidator(bs BuildStatus) error {
	switch bs {
	case BuildStatusQueued, BuildStatusBuilding, BuildStatusDeployed, BuildStatusFailed, BuildStatusCanceled, BuildStatusSuperseded, BuildStatusRollingBack, BuildStatusRollbackFailed:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for build_status field: %q", bs)
	}
}

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByFramework orders the results by the framework field.
func ByFramework(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFramework, opts...).ToFunc()
}

// ByBuildStatus orders the results by the build_status field.
func ByBuildStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildStatus, opts...).ToFunc()
}

// ByCurrentBuildID orders the results by the current_build_id field.
func ByCurrentBuildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentBuildID, opts...).ToFunc()
}

// ByCurrentVersionID orders the results by the current_version_id field.
func ByCurrentVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentVersionID, opts...).ToFunc()
}

// ByCurrentVersionName orders the results by the current_version_name field.
func ByCurrentVersionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentVersionName, opts...).ToFunc()
}

// ByLastAgentSessionID orders the results by the last_agent_session_id field.
func ByLastAgentSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAgentSessionID, opts...).ToFunc()
}

// ByPreviewURL orders the results by the preview_url field.
func ByPreviewURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviewURL, opts...).ToFunc()
}

// ByDeployLane orders the results by the deploy_lane field.
func ByDeployLane(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeployLane, opts...).ToFunc()
}

// ByLastBuildStartedAt orders the results by the last_build_started_at field.
func ByLastBuildStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBuildStartedAt, opts...).ToFunc()
}

// ByLastBuildCompletedAt orders the results by the last_build_completed_at field.
func ByLastBuildCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBuildCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBuildsCount orders the results by builds count.
func ByBuildsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBuildsStep(), opts...)
	}
}

// ByBuilds orders the results by builds terms.
func ByBuilds(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuildsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVersionsCount orders the results by versions count.
func ByVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVersionsStep(), opts...)
	}
}

// ByVersions orders the results by versions terms.
func ByVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOperationsCount orders the results by operations count.
func ByOperationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOperationsStep(), opts...)
	}
}

// ByOperations orders the results by operations terms.
func ByOperations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOperationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBuildsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuildsInverseTable, BuildFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BuildsTable, BuildsColumn),
	)
}
func newVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VersionsInverseTable, VersionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newOperationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OperationsInverseTable, BuildOperationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OperationsTable, OperationsColumn),
	)
}
