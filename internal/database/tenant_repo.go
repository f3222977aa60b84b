package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

type tenantRepo struct {
	db dbConn
}

func newTenantRepo(db dbConn) contract.TenantRepo {
	return &tenantRepo{db: db}
}

const tenantColumns = `tenant_id, channel_ref, status_role_ref, moderator_role_ref,
	check_hour, summary_message_ref, created_at, updated_at`

func (r *tenantRepo) Upsert(ctx context.Context, cfg *entity.TenantConfig) error {
	query := `
		INSERT INTO tenant_configs (tenant_id, channel_ref, status_role_ref, moderator_role_ref,
			check_hour, summary_message_ref)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(tenant_id) DO UPDATE SET
			channel_ref = excluded.channel_ref,
			status_role_ref = excluded.status_role_ref,
			moderator_role_ref = excluded.moderator_role_ref,
			check_hour = excluded.check_hour,
			summary_message_ref = excluded.summary_message_ref,
			updated_at = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		cfg.TenantID,
		cfg.ChannelRef,
		nullString(cfg.StatusRoleRef),
		nullString(cfg.ModeratorRoleRef),
		cfg.CheckHour,
		nullString(cfg.SummaryMessageRef),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert tenant config: %w", err)
	}

	return nil
}

func (r *tenantRepo) GetByID(ctx context.Context, tenantID string) (*entity.TenantConfig, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenant_configs WHERE tenant_id = ?`

	cfg, err := scanTenant(r.db.QueryRowContext(ctx, query, tenantID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant config: %w", err)
	}

	return cfg, nil
}

func (r *tenantRepo) List(ctx context.Context) ([]*entity.TenantConfig, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenant_configs ORDER BY tenant_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenant configs: %w", err)
	}
	defer rows.Close()

	var configs []*entity.TenantConfig
	for rows.Next() {
		cfg, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant config: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tenant configs: %w", err)
	}

	return configs, nil
}

func (r *tenantRepo) SetSummaryMessage(ctx context.Context, tenantID, messageRef string) error {
	query := `
		UPDATE tenant_configs SET
			summary_message_ref = ?,
			updated_at = ?
		WHERE tenant_id = ?
	`

	_, err := r.db.ExecContext(ctx, query, nullString(messageRef), time.Now(), tenantID)
	if err != nil {
		return fmt.Errorf("failed to set summary message: %w", err)
	}

	return nil
}

func (r *tenantRepo) Delete(ctx context.Context, tenantID string) error {
	query := `DELETE FROM tenant_configs WHERE tenant_id = ?`

	_, err := r.db.ExecContext(ctx, query, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete tenant config: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTenant(row rowScanner) (*entity.TenantConfig, error) {
	cfg := &entity.TenantConfig{}
	var statusRole, modRole, summaryRef sql.NullString

	err := row.Scan(
		&cfg.TenantID,
		&cfg.ChannelRef,
		&statusRole,
		&modRole,
		&cfg.CheckHour,
		&summaryRef,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cfg.StatusRoleRef = statusRole.String
	cfg.ModeratorRoleRef = modRole.String
	cfg.SummaryMessageRef = summaryRef.String
	return cfg, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
