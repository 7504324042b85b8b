package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Version holds the schema definition for the Version entity.
// Created only when an agent session completes successfully — no version for
// a failed build.
type Version struct {
	ent.Schema
}

// Fields of the Version.
func (Version) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("version_id").
			Unique().
			Immutable().
			MaxLen(26),
		field.String("project_id").
			Immutable(),
		field.String("build_id").
			Unique().
			Immutable(),
		field.Int("display_counter").
			Comment("Per-project monotonic counter backing the vN display name"),
		field.String("display_name").
			Comment("Human-readable name (vN); once set it is never overwritten"),
		field.Int("major").
			Default(0),
		field.Int("minor").
			Default(1),
		field.Int("patch").
			Default(0),
		field.Enum("change_type").
			Values("major", "minor", "patch").
			Optional().
			Comment("Semantic label written by the metadata stage"),
		field.String("agent_session_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Version.
func (Version) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("versions").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("build", Build.Type).
			Ref("version").
			Field("build_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Version.
func (Version) Indexes() []ent.Index {
	return []ent.Index{
		// One display counter slot per project.
		index.Fields("project_id", "display_counter").
			Unique(),
	}
}
