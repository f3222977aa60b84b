package contract

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
)

type BirthdayService interface {
	Setup(ctx context.Context, cfg *entity.TenantConfig) error
	GetConfig(ctx context.Context, tenantID string) (*entity.TenantConfig, error)
	SetRecord(ctx context.Context, tenantID, subjectID string, month, day int) error
	DeleteRecord(ctx context.Context, tenantID, subjectID string) error
	ImportRecords(ctx context.Context, tenantID, text string) (int, error)
	SummaryPage(ctx context.Context, tenantID string, page int) (*entity.SummaryPage, error)
	RefreshSummary(ctx context.Context, tenantID string) error
	ListWished(ctx context.Context, tenantID string) ([]*entity.WishLedgerEntry, error)
	ClearWished(ctx context.Context, tenantID string) error
	RunOnce(ctx context.Context, opts entity.RunOptions) (*entity.RunSummary, error)
	MemberLeft(ctx context.Context, tenantID, subjectID string) error
}
