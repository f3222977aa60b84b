package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/calendar"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/sirupsen/logrus"
)

// importLine matches "<@U123> - 25/12", "<@U123|name> 25/12" and "U123 - 25 12"
var importLine = regexp.MustCompile(`^<?@?([UW][A-Z0-9]+)(?:\|[^>]*)?>?\s*[-:]?\s*(\d{1,2})\s*[/.\-\s]\s*(\d{1,2})$`)

type birthdayService struct {
	dm        contract.DataManager
	summary   *summaryView
	ledger    *wishLedger
	scheduler *scheduler
	log       logrus.FieldLogger
	location  *time.Location
	now       func() time.Time
}

func newBirthday(dm contract.DataManager, summary *summaryView, ledger *wishLedger, scheduler *scheduler, opts Options, log logrus.FieldLogger) *birthdayService {
	return &birthdayService{
		dm:        dm,
		summary:   summary,
		ledger:    ledger,
		scheduler: scheduler,
		log:       log.WithField("component", "birthday"),
		location:  opts.Location,
		now:       opts.Clock,
	}
}

func (s *birthdayService) clock() time.Time {
	return s.now().In(s.location)
}

func (s *birthdayService) Setup(ctx context.Context, cfg *entity.TenantConfig) (err error) {
	if !domain.ValidCheckHour(cfg.CheckHour) {
		return domain.ErrInvalidCheckHour
	}

	// a pass must not store a summary ref between the read and the upsert
	s.scheduler.withTenantLock(cfg.TenantID, func() {
		var existing *entity.TenantConfig
		existing, err = s.dm.Tenant().GetByID(ctx, cfg.TenantID)
		if err != nil {
			err = fmt.Errorf("failed to check tenant config: %w", err)
			return
		}

		// the pinned summary only survives while the channel stays the same
		if existing != nil && existing.ChannelRef == cfg.ChannelRef {
			cfg.SummaryMessageRef = existing.SummaryMessageRef
		}

		if err = s.dm.Tenant().Upsert(ctx, cfg); err != nil {
			err = fmt.Errorf("failed to save tenant config: %w", err)
			return
		}

		s.refreshLocked(ctx, cfg.TenantID)
	})
	return err
}

func (s *birthdayService) GetConfig(ctx context.Context, tenantID string) (*entity.TenantConfig, error) {
	return s.dm.Tenant().GetByID(ctx, tenantID)
}

func (s *birthdayService) SetRecord(ctx context.Context, tenantID, subjectID string, month, day int) error {
	if _, err := s.requireConfig(ctx, tenantID); err != nil {
		return err
	}

	if !calendar.ValidMonthDay(month, day) {
		return domain.ErrInvalidDate
	}

	record := &entity.AnniversaryRecord{
		TenantID:  tenantID,
		SubjectID: subjectID,
		Month:     month,
		Day:       day,
	}
	if err := s.dm.Record().Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to save birthday: %w", err)
	}

	s.refresh(ctx, tenantID)
	return nil
}

func (s *birthdayService) DeleteRecord(ctx context.Context, tenantID, subjectID string) error {
	if err := s.dm.Record().Delete(ctx, tenantID, subjectID); err != nil {
		return fmt.Errorf("failed to delete birthday: %w", err)
	}

	s.refresh(ctx, tenantID)
	return nil
}

// ImportRecords stores every valid line of text in one transaction and skips
// the rest. It returns the number of imported lines.
func (s *birthdayService) ImportRecords(ctx context.Context, tenantID, text string) (int, error) {
	if _, err := s.requireConfig(ctx, tenantID); err != nil {
		return 0, err
	}

	var records []*entity.AnniversaryRecord
	for _, line := range strings.Split(text, "\n") {
		record, ok := parseImportLine(tenantID, line)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return 0, nil
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, record := range records {
			if err := tx.Record().Upsert(ctx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import birthdays: %w", err)
	}

	s.refresh(ctx, tenantID)
	return len(records), nil
}

func parseImportLine(tenantID, line string) (*entity.AnniversaryRecord, bool) {
	match := importLine.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return nil, false
	}

	day, _ := strconv.Atoi(match[2])
	month, _ := strconv.Atoi(match[3])
	if !calendar.ValidMonthDay(month, day) {
		return nil, false
	}

	return &entity.AnniversaryRecord{
		TenantID:  tenantID,
		SubjectID: match[1],
		Month:     month,
		Day:       day,
	}, true
}

func (s *birthdayService) SummaryPage(ctx context.Context, tenantID string, page int) (*entity.SummaryPage, error) {
	return s.summary.Page(ctx, tenantID, page, s.clock())
}

func (s *birthdayService) RefreshSummary(ctx context.Context, tenantID string) (err error) {
	s.scheduler.withTenantLock(tenantID, func() {
		var cfg *entity.TenantConfig
		cfg, err = s.requireConfig(ctx, tenantID)
		if err != nil {
			return
		}
		err = s.summary.Refresh(ctx, cfg, s.clock(), nil)
	})
	return err
}

func (s *birthdayService) ListWished(ctx context.Context, tenantID string) ([]*entity.WishLedgerEntry, error) {
	return s.ledger.ListByTenant(ctx, tenantID)
}

func (s *birthdayService) ClearWished(ctx context.Context, tenantID string) error {
	deleted, err := s.ledger.ResetTenant(ctx, tenantID)
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"tenant_id": tenantID, "deleted": deleted}).Info("wish ledger cleared")
	return nil
}

func (s *birthdayService) RunOnce(ctx context.Context, opts entity.RunOptions) (*entity.RunSummary, error) {
	return s.scheduler.RunOnce(ctx, opts)
}

// MemberLeft forgets a subject that left the notification channel.
func (s *birthdayService) MemberLeft(ctx context.Context, tenantID, subjectID string) error {
	record, err := s.dm.Record().Get(ctx, tenantID, subjectID)
	if err != nil {
		return fmt.Errorf("failed to get birthday: %w", err)
	}
	if record == nil {
		return nil
	}

	s.log.WithFields(logrus.Fields{"tenant_id": tenantID, "subject_id": subjectID}).Info("member left, removing birthday")
	return s.DeleteRecord(ctx, tenantID, subjectID)
}

func (s *birthdayService) requireConfig(ctx context.Context, tenantID string) (*entity.TenantConfig, error) {
	cfg, err := s.dm.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant config: %w", err)
	}
	if cfg == nil {
		return nil, domain.ErrConfigMissing
	}
	return cfg, nil
}

// refresh republishes the summary under the tenant lock. The config is read
// inside the lock so a message a running pass just posted is edited, not
// posted a second time.
func (s *birthdayService) refresh(ctx context.Context, tenantID string) {
	s.scheduler.withTenantLock(tenantID, func() {
		s.refreshLocked(ctx, tenantID)
	})
}

func (s *birthdayService) refreshLocked(ctx context.Context, tenantID string) {
	log := s.log.WithField("tenant_id", tenantID)

	cfg, err := s.dm.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		log.WithError(err).Warn("failed to load config for summary refresh")
		return
	}
	if cfg == nil {
		return
	}

	if err := s.summary.Refresh(ctx, cfg, s.clock(), nil); err != nil {
		log.WithError(err).Warn("failed to refresh summary")
	}
}
