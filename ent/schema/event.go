package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the durable copy of
// published bus events. The serial row id is the seq carried on durable
// payloads and used for catch-up after reconnect.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("NOTIFY channel the event was published on"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel"),
		index.Fields("project_id"),
		index.Fields("created_at"),
	}
}
