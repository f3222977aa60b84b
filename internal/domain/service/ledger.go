package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

// wishLedger remembers who was already congratulated on which day.
// Dates are calendar days in the scheduler's location.
type wishLedger struct {
	dm contract.DataManager
}

func newWishLedger(dm contract.DataManager) *wishLedger {
	return &wishLedger{dm: dm}
}

func (l *wishLedger) HasBeenWished(ctx context.Context, tenantID, subjectID string, day time.Time) (bool, error) {
	wished, err := l.dm.Ledger().Exists(ctx, tenantID, subjectID, day.Format(domain.DateLayout))
	if err != nil {
		return false, storeError("check wish ledger", err)
	}
	return wished, nil
}

func (l *wishLedger) MarkWished(ctx context.Context, tenantID, subjectID string, day time.Time) error {
	if err := l.dm.Ledger().Insert(ctx, tenantID, subjectID, day.Format(domain.DateLayout)); err != nil {
		return storeError("mark wished", err)
	}
	return nil
}

// PruneOlderThan deletes entries dated more than retentionDays before now.
func (l *wishLedger) PruneOlderThan(ctx context.Context, now time.Time, retentionDays int) (int64, error) {
	cutoff := now.AddDate(0, 0, -retentionDays).Format(domain.DateLayout)

	deleted, err := l.dm.Ledger().DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, storeError("prune wish ledger", err)
	}
	return deleted, nil
}

func (l *wishLedger) ListByTenant(ctx context.Context, tenantID string) ([]*entity.WishLedgerEntry, error) {
	entries, err := l.dm.Ledger().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, storeError("list wish ledger", err)
	}
	return entries, nil
}

func (l *wishLedger) ResetTenant(ctx context.Context, tenantID string) (int64, error) {
	deleted, err := l.dm.Ledger().DeleteByTenant(ctx, tenantID)
	if err != nil {
		return 0, storeError("reset wish ledger", err)
	}
	return deleted, nil
}

func storeError(action string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", action, domain.ErrStoreFailure, err)
}
