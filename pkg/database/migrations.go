package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// SeqQuerier is the subset of *sql.DB / *sql.Tx used for sequence allocation.
type SeqQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *stdsql.Row
}

// CreateConstraints creates the PostgreSQL constraints that Ent cannot
// express in its schema DSL. These back the storage-level invariants the
// pipeline relies on instead of application locks.
func CreateConstraints(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one assistant reply per (project_id, parent_message_id).
	// Losing a race on this index is a first-class success path: the caller
	// re-reads the existing reply and returns it.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS message_one_assistant_reply
		ON messages (project_id, parent_message_id)
		WHERE actor_type = 'assistant' AND parent_message_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create assistant reply index: %w", err)
	}

	// Terminal builds must not complete before they start.
	_, err = db.ExecContext(ctx,
		`ALTER TABLE builds DROP CONSTRAINT IF EXISTS build_completed_after_started;
		ALTER TABLE builds ADD CONSTRAINT build_completed_after_started
		CHECK (completed_at IS NULL OR completed_at >= started_at)`)
	if err != nil {
		return fmt.Errorf("failed to create build timestamp check: %w", err)
	}

	// Process-wide monotonic sequence for the message timeline cursor.
	_, err = db.ExecContext(ctx,
		`CREATE SEQUENCE IF NOT EXISTS message_seq START 1`)
	if err != nil {
		return fmt.Errorf("failed to create message sequence: %w", err)
	}

	return nil
}

// NextMessageSeq allocates the next timeline sequence number.
// Postgres sequences are gapless only across successful publishes when the
// allocation happens inside the publishing transaction; callers must pass
// the transaction's connection context.
func NextMessageSeq(ctx context.Context, q SeqQuerier) (int64, error) {
	var seq int64
	if err := q.QueryRowContext(ctx, `SELECT nextval('message_seq')`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to allocate message seq: %w", err)
	}
	return seq, nil
}
