package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Build holds the schema definition for the Build entity.
// Identified by a lexicographically sortable ULID. A Build row exists before
// any agent session may reference it.
type Build struct {
	ent.Schema
}

// Fields of the Build.
func (Build) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("build_id").
			Unique().
			Immutable().
			MaxLen(26).
			Comment("ULID, 26 chars, sortable by creation time"),
		field.String("project_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("status").
			Values("started", "ai_completed", "deployed", "failed").
			Default("started"),
		field.Int("attempt").
			Default(1).
			Comment("Monotonically increasing supervised execution counter; >= 1"),
		field.String("agent_session_id").
			Optional().
			Nillable().
			Comment("Learned from the first event of the agent's output stream"),
		field.Bool("is_initial_build").
			Default(false),
		field.Text("prompt").
			Optional(),
		field.Time("started_at").
			Default(time.Now).
			Comment("Wall-clock start; completed_at >= started_at enforced by DB check"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_type").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable().
			Comment("Last error text; carried into the next attempt's prompt context"),
	}
}

// Edges of the Build.
func (Build) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("builds").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("version", Version.Type).
			Unique(),
		edge.To("checkpoint", Checkpoint.Type).
			Unique(),
	}
}

// Indexes of the Build.
func (Build) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("status", "started_at"),
	}
}
