package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageRecord holds one metered agent run. build_id is unique so metering is
// idempotent per build; a nil ended_at marks an open meter and guards the
// end-at-most-once rule.
type UsageRecord struct {
	ent.Schema
}

// Fields of the UsageRecord.
func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("build_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int64("seconds").
			Default(0),
		field.Bool("refunded").
			Default(false),
	}
}

// Indexes of the UsageRecord.
func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "started_at"),
	}
}
