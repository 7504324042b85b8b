package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project owns at most one current build and one current version; its
// build_status is the central lifecycle serialization point.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Comment("User that owns the project"),
		field.String("name").
			Optional(),
		field.String("framework").
			Optional().
			Comment("Framework hint passed to the agent (e.g. 'react', 'astro')"),
		field.Enum("build_status").
			Values(
				"queued",
				"building",
				"deployed",
				"failed",
				"canceled",
				"superseded",
				"rolling_back",
				"rollback_failed",
			).
			Optional().
			Comment("Current build lifecycle state; empty until the first build"),
		field.String("current_build_id").
			Optional().
			Nillable(),
		field.String("current_version_id").
			Optional().
			Nillable(),
		field.String("current_version_name").
			Optional().
			Nillable().
			Comment("Display name shown to users (vN); never overwritten by semantic labels"),
		field.String("last_agent_session_id").
			Optional().
			Nillable().
			Comment("Agent session carried across builds for contextual continuation"),
		field.String("preview_url").
			Optional().
			Nillable(),
		field.String("deploy_lane").
			Optional().
			Nillable().
			Comment("static | edge | node, from the agent's deploy intent"),
		field.Time("last_build_started_at").
			Optional().
			Nillable(),
		field.Time("last_build_completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("builds", Build.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("versions", Version.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("operations", BuildOperation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("build_status"),
	}
}
