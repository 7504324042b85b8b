package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// QueueState holds per-queue pause state, observed by all replicas.
// The row with queue="" is the global gate: when paused, no queue dispatches.
type QueueState struct {
	ent.Schema
}

// Fields of the QueueState.
func (QueueState) Fields() []ent.Field {
	return []ent.Field{
		field.String("queue").
			Unique().
			Immutable().
			Comment("Queue name; empty string is the global gate"),
		field.Bool("paused").
			Default(false),
		field.String("reason").
			Optional(),
		field.Time("paused_until").
			Optional().
			Nillable().
			Comment("Advisory deadline; auto-resume is driven by the limit controller"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
