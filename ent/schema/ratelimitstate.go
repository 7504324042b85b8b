package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// RateLimitState is the global upstream-limit record (singleton row).
// While active, the queue runtime is paused.
type RateLimitState struct {
	ent.Schema
}

// Fields of the RateLimitState.
func (RateLimitState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable().
			Comment("Always 1 — singleton"),
		field.Bool("active").
			Default(false),
		field.Time("reset_at").
			Optional().
			Nillable(),
		field.String("reason").
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
