package contract

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Tenant() TenantRepo
	Record() RecordRepo
	Ledger() LedgerRepo
}

// TenantRepo defines the contract for tenant configuration repository
type TenantRepo interface {
	Upsert(ctx context.Context, cfg *entity.TenantConfig) error
	GetByID(ctx context.Context, tenantID string) (*entity.TenantConfig, error)
	List(ctx context.Context) ([]*entity.TenantConfig, error)
	SetSummaryMessage(ctx context.Context, tenantID, messageRef string) error
	Delete(ctx context.Context, tenantID string) error
}

// RecordRepo defines the contract for anniversary record repository
type RecordRepo interface {
	Upsert(ctx context.Context, record *entity.AnniversaryRecord) error
	Get(ctx context.Context, tenantID, subjectID string) (*entity.AnniversaryRecord, error)
	// ListByTenant returns records ordered by subject id.
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.AnniversaryRecord, error)
	// Delete is a no-op when the record does not exist.
	Delete(ctx context.Context, tenantID, subjectID string) error
}

// LedgerRepo defines the contract for the wish ledger repository
type LedgerRepo interface {
	Exists(ctx context.Context, tenantID, subjectID, date string) (bool, error)
	// Insert ignores duplicates of (tenant, subject, date).
	Insert(ctx context.Context, tenantID, subjectID, date string) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
	DeleteByTenant(ctx context.Context, tenantID string) (int64, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.WishLedgerEntry, error)
}
