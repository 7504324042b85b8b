package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// Written by the stream worker between attempts so a retry can resume the
// agent session instead of starting over.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("build_id").
			Unique().
			Immutable(),
		field.String("agent_session_id").
			Optional().
			Nillable().
			Comment("Last known session id for resume-by-id"),
		field.JSON("preexisting_files", []string{}).
			Optional().
			Comment("Files present at checkpoint time, not files created by the session"),
		field.Int64("tokens_used").
			Default(0),
		field.Int64("cost_cents").
			Default(0),
		field.Text("last_error").
			Optional().
			Nillable().
			Comment("Prior attempt's error text, bounded; feeds the next prompt's context header"),
		field.Int("attempt").
			Default(1),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("build", Build.Type).
			Ref("checkpoint").
			Field("build_id").
			Unique().
			Required().
			Immutable(),
	}
}
