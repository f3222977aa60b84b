package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

type ledgerRepo struct {
	db dbConn
}

func newLedgerRepo(db dbConn) contract.LedgerRepo {
	return &ledgerRepo{db: db}
}

func (r *ledgerRepo) Exists(ctx context.Context, tenantID, subjectID, date string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM wish_ledger
			WHERE tenant_id = ? AND subject_id = ? AND wished_on = ?
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, tenantID, subjectID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check wish ledger: %w", err)
	}

	return exists, nil
}

func (r *ledgerRepo) Insert(ctx context.Context, tenantID, subjectID, date string) error {
	query := `
		INSERT OR IGNORE INTO wish_ledger (tenant_id, subject_id, wished_on)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, tenantID, subjectID, date)
	if err != nil {
		return fmt.Errorf("failed to insert wish ledger entry: %w", err)
	}

	return nil
}

// DeleteBefore removes every entry dated strictly before date (YYYY-MM-DD).
func (r *ledgerRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	query := `DELETE FROM wish_ledger WHERE wished_on < ?`

	result, err := r.db.ExecContext(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to prune wish ledger: %w", err)
	}

	return result.RowsAffected()
}

func (r *ledgerRepo) DeleteByTenant(ctx context.Context, tenantID string) (int64, error) {
	query := `DELETE FROM wish_ledger WHERE tenant_id = ?`

	result, err := r.db.ExecContext(ctx, query, tenantID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset wish ledger: %w", err)
	}

	return result.RowsAffected()
}

func (r *ledgerRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.WishLedgerEntry, error) {
	query := `
		SELECT tenant_id, subject_id, wished_on, created_at
		FROM wish_ledger
		WHERE tenant_id = ?
		ORDER BY wished_on DESC, subject_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wish ledger: %w", err)
	}
	defer rows.Close()

	var entries []*entity.WishLedgerEntry
	for rows.Next() {
		entry := &entity.WishLedgerEntry{}
		if err := rows.Scan(&entry.TenantID, &entry.SubjectID, &entry.Date, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wish ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wish ledger: %w", err)
	}

	return entries, nil
}
