package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

type recordRepo struct {
	db dbConn
}

func newRecordRepo(db dbConn) contract.RecordRepo {
	return &recordRepo{db: db}
}

func (r *recordRepo) Upsert(ctx context.Context, record *entity.AnniversaryRecord) error {
	query := `
		INSERT INTO anniversary_records (tenant_id, subject_id, month, day)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(tenant_id, subject_id) DO UPDATE SET
			month = excluded.month,
			day = excluded.day,
			updated_at = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		record.TenantID,
		record.SubjectID,
		record.Month,
		record.Day,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert anniversary record: %w", err)
	}

	return nil
}

func (r *recordRepo) Get(ctx context.Context, tenantID, subjectID string) (*entity.AnniversaryRecord, error) {
	record := &entity.AnniversaryRecord{}
	query := `
		SELECT tenant_id, subject_id, month, day, created_at, updated_at
		FROM anniversary_records
		WHERE tenant_id = ? AND subject_id = ?
	`

	err := r.db.QueryRowContext(ctx, query, tenantID, subjectID).Scan(
		&record.TenantID,
		&record.SubjectID,
		&record.Month,
		&record.Day,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get anniversary record: %w", err)
	}

	return record, nil
}

func (r *recordRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.AnniversaryRecord, error) {
	query := `
		SELECT tenant_id, subject_id, month, day, created_at, updated_at
		FROM anniversary_records
		WHERE tenant_id = ?
		ORDER BY subject_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list anniversary records: %w", err)
	}
	defer rows.Close()

	var records []*entity.AnniversaryRecord
	for rows.Next() {
		record := &entity.AnniversaryRecord{}
		err := rows.Scan(
			&record.TenantID,
			&record.SubjectID,
			&record.Month,
			&record.Day,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan anniversary record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate anniversary records: %w", err)
	}

	return records, nil
}

func (r *recordRepo) Delete(ctx context.Context, tenantID, subjectID string) error {
	query := `DELETE FROM anniversary_records WHERE tenant_id = ? AND subject_id = ?`

	_, err := r.db.ExecContext(ctx, query, tenantID, subjectID)
	if err != nil {
		return fmt.Errorf("failed to delete anniversary record: %w", err)
	}

	return nil
}
