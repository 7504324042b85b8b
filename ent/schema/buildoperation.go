package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BuildOperation holds the schema definition for the BuildOperation entity.
// The unique (project_id, operation_id) pair is the idempotency primitive: a
// retried request with the same operation id resolves to the same build and
// version exactly once. Rows are never deleted.
type BuildOperation struct {
	ent.Schema
}

// Fields of the BuildOperation.
func (BuildOperation) Fields() []ent.Field {
	return []ent.Field{
		field.String("project_id").
			Immutable(),
		field.String("operation_id").
			Immutable().
			Comment("Caller-chosen idempotency key"),
		field.String("build_id").
			Immutable(),
		field.String("version_id").
			Immutable(),
		field.String("job_id").
			Optional().
			Comment("Patched after successful enqueue; empty until then"),
		field.Enum("status").
			Values("initiated", "queued", "failed").
			Default("initiated"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BuildOperation.
func (BuildOperation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "operation_id").
			Unique(),
		index.Fields("build_id"),
	}
}
