// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "balance_seconds", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// BuildsColumns holds the columns for the "builds" table.
	BuildsColumns = []*schema.Column{
		{Name: "build_id", Type: field.TypeString, Unique: true, Size: 26},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"started", "ai_completed", "deployed", "failed"}, Default: "started"},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "agent_session_id", Type: field.TypeString, Nullable: true},
		{Name: "is_initial_build", Type: field.TypeBool, Default: false},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "project_id", Type: field.TypeString},
	}
	// BuildsTable holds the schema information for the "builds" table.
	BuildsTable = &schema.Table{
		Name:       "builds",
		Columns:    BuildsColumns,
		PrimaryKey: []*schema.Column{BuildsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "builds_projects_builds",
				Columns:    []*schema.Column{BuildsColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "build_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{BuildsColumns[11], BuildsColumns[2]},
			},
			{
				Name:    "build_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{BuildsColumns[2], BuildsColumns[7]},
			},
		},
	}
	// BuildOperationsColumns holds the columns for the "build_operations" table.
	BuildOperationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "operation_id", Type: field.TypeString},
		{Name: "build_id", Type: field.TypeString},
		{Name: "version_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"initiated", "queued", "failed"}, Default: "initiated"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_operations", Type: field.TypeString, Nullable: true},
	}
	// BuildOperationsTable holds the schema information for the "build_operations" table.
	BuildOperationsTable = &schema.Table{
		Name:       "build_operations",
		Columns:    BuildOperationsColumns,
		PrimaryKey: []*schema.Column{BuildOperationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "build_operations_projects_operations",
				Columns:    []*schema.Column{BuildOperationsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "buildoperation_project_id_operation_id",
				Unique:  true,
				Columns: []*schema.Column{BuildOperationsColumns[1], BuildOperationsColumns[2]},
			},
			{
				Name:    "buildoperation_build_id",
				Unique:  false,
				Columns: []*schema.Column{BuildOperationsColumns[3]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_session_id", Type: field.TypeString, Nullable: true},
		{Name: "preexisting_files", Type: field.TypeJSON, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt64, Default: 0},
		{Name: "cost_cents", Type: field.TypeInt64, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "build_id", Type: field.TypeString, Unique: true, Size: 26},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_builds_checkpoint",
				Columns:    []*schema.Column{CheckpointsColumns[8]},
				RefColumns: []*schema.Column{BuildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_project_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "row_id", Type: field.TypeString, Unique: true},
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"waiting", "active", "completed", "failed", "unrecoverable", "canceled"}, Default: "waiting"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "delay_until_rollback_complete", Type: field.TypeBool, Default: false},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_queue_status_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[5], JobsColumns[9]},
			},
			{
				Name:    "job_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[13]},
			},
			{
				Name:    "job_locked_by",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[11]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "actor_type", Type: field.TypeEnum, Enums: []string{"client", "assistant", "system"}},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"plan", "build"}, Default: "build"},
		{Name: "parent_message_id", Type: field.TypeString, Nullable: true},
		{Name: "build_id", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_projects_messages",
				Columns:    []*schema.Column{MessagesColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_project_id_seq",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[1]},
			},
			{
				Name:    "message_parent_message_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "framework", Type: field.TypeString, Nullable: true},
		{Name: "build_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"queued", "building", "deployed", "failed", "canceled", "superseded", "rolling_back", "rollback_failed"}},
		{Name: "current_build_id", Type: field.TypeString, Nullable: true},
		{Name: "current_version_id", Type: field.TypeString, Nullable: true},
		{Name: "current_version_name", Type: field.TypeString, Nullable: true},
		{Name: "last_agent_session_id", Type: field.TypeString, Nullable: true},
		{Name: "preview_url", Type: field.TypeString, Nullable: true},
		{Name: "deploy_lane", Type: field.TypeString, Nullable: true},
		{Name: "last_build_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_build_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
			{
				Name:    "project_build_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[4]},
			},
		},
	}
	// QueueStatesColumns holds the columns for the "queue_states" table.
	QueueStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "queue", Type: field.TypeString, Unique: true},
		{Name: "paused", Type: field.TypeBool, Default: false},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "paused_until", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QueueStatesTable holds the schema information for the "queue_states" table.
	QueueStatesTable = &schema.Table{
		Name:       "queue_states",
		Columns:    QueueStatesColumns,
		PrimaryKey: []*schema.Column{QueueStatesColumns[0]},
	}
	// RateLimitStatesColumns holds the columns for the "rate_limit_states" table.
	RateLimitStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "reset_at", Type: field.TypeTime, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RateLimitStatesTable holds the schema information for the "rate_limit_states" table.
	RateLimitStatesTable = &schema.Table{
		Name:       "rate_limit_states",
		Columns:    RateLimitStatesColumns,
		PrimaryKey: []*schema.Column{RateLimitStatesColumns[0]},
	}
	// UsageRecordsColumns holds the columns for the "usage_records" table.
	UsageRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "build_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "seconds", Type: field.TypeInt64, Default: 0},
		{Name: "refunded", Type: field.TypeBool, Default: false},
	}
	// UsageRecordsTable holds the schema information for the "usage_records" table.
	UsageRecordsTable = &schema.Table{
		Name:       "usage_records",
		Columns:    UsageRecordsColumns,
		PrimaryKey: []*schema.Column{UsageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_user_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{UsageRecordsColumns[2], UsageRecordsColumns[3]},
			},
		},
	}
	// VersionsColumns holds the columns for the "versions" table.
	VersionsColumns = []*schema.Column{
		{Name: "version_id", Type: field.TypeString, Unique: true, Size: 26},
		{Name: "display_counter", Type: field.TypeInt},
		{Name: "display_name", Type: field.TypeString},
		{Name: "major", Type: field.TypeInt, Default: 0},
		{Name: "minor", Type: field.TypeInt, Default: 1},
		{Name: "patch", Type: field.TypeInt, Default: 0},
		{Name: "change_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"major", "minor", "patch"}},
		{Name: "agent_session_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "build_id", Type: field.TypeString, Unique: true, Size: 26},
		{Name: "project_id", Type: field.TypeString},
	}
	// VersionsTable holds the schema information for the "versions" table.
	VersionsTable = &schema.Table{
		Name:       "versions",
		Columns:    VersionsColumns,
		PrimaryKey: []*schema.Column{VersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "versions_builds_version",
				Columns:    []*schema.Column{VersionsColumns[9]},
				RefColumns: []*schema.Column{BuildsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "versions_projects_versions",
				Columns:    []*schema.Column{VersionsColumns[10]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "version_project_id_display_counter",
				Unique:  true,
				Columns: []*schema.Column{VersionsColumns[10], VersionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		BuildsTable,
		BuildOperationsTable,
		CheckpointsTable,
		EventsTable,
		JobsTable,
		MessagesTable,
		ProjectsTable,
		QueueStatesTable,
		RateLimitStatesTable,
		UsageRecordsTable,
		VersionsTable,
	}
)

func init() {
	BuildsTable.ForeignKeys[0].RefTable = ProjectsTable
	BuildOperationsTable.ForeignKeys[0].RefTable = ProjectsTable
	CheckpointsTable.ForeignKeys[0].RefTable = BuildsTable
	MessagesTable.ForeignKeys[0].RefTable = ProjectsTable
	VersionsTable.ForeignKeys[0].RefTable = BuildsTable
	VersionsTable.ForeignKeys[1].RefTable = ProjectsTable
}
