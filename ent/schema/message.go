package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity: the durable
// per-project timeline. seq is the replay cursor ("Last-Event-ID"); the
// at-most-one-assistant-reply-per-parent rule is enforced by a partial unique
// index created in the migrations (see pkg/database/migrations).
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Int64("seq").
			Immutable().
			Comment("Process-wide monotonic sequence, allocated from a DB sequence"),
		field.Enum("actor_type").
			Values("client", "assistant", "system"),
		field.Enum("mode").
			Values("plan", "build").
			Default("build"),
		field.String("parent_message_id").
			Optional().
			Nillable(),
		field.String("build_id").
			Optional().
			Nillable(),
		field.Text("content"),
		field.JSON("response", map[string]interface{}{}).
			Optional().
			Comment("Structured response data (build_failed details, etc.)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("messages").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "seq").
			Unique(),
		index.Fields("parent_message_id"),
	}
}
