package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity: one durable queue job.
// job_id is the caller-supplied dedupe key — a second enqueue with the same
// id is a no-op. run_at implements both delayed jobs and retry backoff.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("row_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Unique().
			Immutable().
			Comment("Caller-supplied identity; deterministic ids collapse duplicate enqueues"),
		field.String("queue").
			Immutable().
			Comment("Named queue (build-stage-one, metadata, deploy, ...)"),
		field.String("name").
			Immutable().
			Comment("Job kind within the queue"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("waiting", "active", "completed", "failed", "unrecoverable", "canceled").
			Default("waiting"),
		field.Int("priority").
			Default(0).
			Comment("Higher runs first within a queue"),
		field.Int("attempt").
			Default(0).
			Comment("Completed delivery attempts; incremented on claim"),
		field.Int("max_attempts").
			Default(3),
		field.Time("run_at").
			Default(time.Now).
			Comment("Not eligible for claim before this instant (delay / backoff)"),
		field.Bool("delay_until_rollback_complete").
			Default(false).
			Comment("Job defers itself while the project is rolling back"),
		field.String("locked_by").
			Optional().
			Nillable().
			Comment("Pod id of the claiming worker"),
		field.Time("locked_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "status", "run_at"),
		index.Fields("status", "heartbeat_at"),
		index.Fields("locked_by"),
	}
}
