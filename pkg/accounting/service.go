// Package accounting meters agent wall-clock time against per-user balances.
//
// A build's agent runtime is metered with a UsageRecord: Start opens the
// meter (after a balance pre-flight), End closes it exactly once and debits
// the account, Refund returns the debit when a build fails for reasons the
// user should not pay for. The unique build_id makes all three idempotent.
package accounting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/account"
	"github.com/appforge/forge/ent/usagerecord"
	"github.com/appforge/forge/pkg/config"
)

// Sentinel errors for accounting operations.
var (
	// ErrInsufficientBalance indicates the user's balance is below the
	// pre-flight floor.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrMeterNotOpen indicates End/Refund was called for a build with no
	// open usage record.
	ErrMeterNotOpen = errors.New("usage meter not open")
)

// Service implements the accounting operations.
// When disabled in config, every operation is a no-op that reports success —
// builds run unmetered.
type Service struct {
	client *ent.Client
	cfg    *config.AccountingConfig
}

// NewService creates an accounting service.
func NewService(client *ent.Client, cfg *config.AccountingConfig) *Service {
	return &Service{client: client, cfg: cfg}
}

// Enabled reports whether metering is active.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

// Preflight verifies the user can afford to start a build.
// A missing account reads as zero balance.
func (s *Service) Preflight(ctx context.Context, userID string) error {
	if !s.cfg.Enabled {
		return nil
	}

	acc, err := s.client.Account.Query().
		Where(account.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: no account for user %s", ErrInsufficientBalance, userID)
		}
		return fmt.Errorf("failed to load account for %s: %w", userID, err)
	}

	if acc.BalanceSeconds < s.cfg.MinimumBalanceSeconds {
		return fmt.Errorf("%w: %d seconds remaining, %d required",
			ErrInsufficientBalance, acc.BalanceSeconds, s.cfg.MinimumBalanceSeconds)
	}
	return nil
}

// Start opens the usage meter for a build. Idempotent: a second Start for
// the same build returns the existing record untouched.
func (s *Service) Start(ctx context.Context, buildID, userID string) error {
	if !s.cfg.Enabled {
		return nil
	}

	err := s.client.UsageRecord.Create().
		SetBuildID(buildID).
		SetUserID(userID).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Meter already open for this build — retry of a crashed attempt.
			return nil
		}
		return fmt.Errorf("failed to open usage meter for build %s: %w", buildID, err)
	}

	slog.Debug("Usage meter opened", "build_id", buildID, "user_id", userID)
	return nil
}

// End closes the meter at most once and debits the account with the elapsed
// wall-clock seconds. A meter that is already closed is left untouched —
// the first End wins, so crash-retried stages cannot double-charge.
func (s *Service) End(ctx context.Context, buildID string) (int64, error) {
	if !s.cfg.Enabled {
		return 0, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rec, err := tx.UsageRecord.Query().
		Where(usagerecord.BuildIDEQ(buildID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("%w: build %s", ErrMeterNotOpen, buildID)
		}
		return 0, fmt.Errorf("failed to load usage record for build %s: %w", buildID, err)
	}

	if rec.EndedAt != nil {
		// Already ended — idempotent success with the recorded amount.
		return rec.Seconds, nil
	}

	now := time.Now()
	seconds := int64(now.Sub(rec.StartedAt).Seconds())
	if seconds < 0 {
		seconds = 0
	}

	if err := tx.UsageRecord.UpdateOneID(rec.ID).
		SetEndedAt(now).
		SetSeconds(seconds).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to close usage meter for build %s: %w", buildID, err)
	}

	if _, err := tx.Account.Update().
		Where(account.UserIDEQ(rec.UserID)).
		AddBalanceSeconds(-seconds).
		Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to debit account %s: %w", rec.UserID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit usage meter close: %w", err)
	}

	slog.Info("Usage meter closed", "build_id", buildID, "user_id", rec.UserID, "seconds", seconds)
	return seconds, nil
}

// Refund returns a closed meter's debit to the user. Idempotent: already
// refunded records are left untouched.
func (s *Service) Refund(ctx context.Context, buildID string) error {
	if !s.cfg.Enabled {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rec, err := tx.UsageRecord.Query().
		Where(usagerecord.BuildIDEQ(buildID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: build %s", ErrMeterNotOpen, buildID)
		}
		return fmt.Errorf("failed to load usage record for build %s: %w", buildID, err)
	}

	if rec.EndedAt == nil {
		return fmt.Errorf("%w: build %s still metering", ErrMeterNotOpen, buildID)
	}
	if rec.Refunded {
		return nil
	}

	if err := tx.UsageRecord.UpdateOneID(rec.ID).
		SetRefunded(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark refund for build %s: %w", buildID, err)
	}

	if _, err := tx.Account.Update().
		Where(account.UserIDEQ(rec.UserID)).
		AddBalanceSeconds(rec.Seconds).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to credit account %s: %w", rec.UserID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit refund: %w", err)
	}

	slog.Info("Usage refunded", "build_id", buildID, "user_id", rec.UserID, "seconds", rec.Seconds)
	return nil
}
