package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/calendar"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/sirupsen/logrus"
)

// notificationPass congratulates every subject of one tenant whose birthday
// falls on the reference day and refreshes the tenant summary.
type notificationPass struct {
	dm      contract.DataManager
	gateway contract.Gateway
	ledger  *wishLedger
	summary *summaryView
	log     logrus.FieldLogger
}

func newNotificationPass(dm contract.DataManager, gateway contract.Gateway, ledger *wishLedger, summary *summaryView, log logrus.FieldLogger) *notificationPass {
	return &notificationPass{
		dm:      dm,
		gateway: gateway,
		ledger:  ledger,
		summary: summary,
		log:     log,
	}
}

// Run executes the pass. With ignoreWished the ledger is neither consulted nor
// updated. Failed deliveries are counted in the result and left unmarked.
func (p *notificationPass) Run(ctx context.Context, tenantID string, ref time.Time, ignoreWished bool) (entity.PassResult, error) {
	result := entity.PassResult{TenantID: tenantID, Date: ref.Format(domain.DateLayout)}
	log := p.log.WithFields(logrus.Fields{"tenant_id": tenantID, "date": result.Date})

	cfg, err := p.dm.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return result, storeError("get tenant config", err)
	}
	if cfg == nil {
		log.Debug("tenant is not configured, skipping")
		result.Skipped = true
		return result, nil
	}

	if err := p.gateway.ResolveChannel(ctx, tenantID, cfg.ChannelRef); err != nil {
		log.WithError(err).WithField("reason", domain.GatewayReasonOf(err)).Warn("notification channel unavailable")
		return result, fmt.Errorf("%w: %w", domain.ErrChannelUnavailable, err)
	}

	roleUsable := cfg.HasStatusRole()
	if roleUsable {
		if err := p.gateway.ResolveRole(ctx, tenantID, cfg.StatusRoleRef); err != nil {
			log.WithError(err).WithField("reason", domain.GatewayReasonOf(err)).Warn(domain.ErrRoleUnavailable.Error())
			roleUsable = false
		}
	}

	records, err := p.dm.Record().ListByTenant(ctx, tenantID)
	if err != nil {
		return result, storeError("list records", err)
	}

	todaySet := make(map[string]bool)
	for _, record := range records {
		if !calendar.IsAnniversaryOn(*record, ref) {
			continue
		}
		todaySet[record.SubjectID] = true
		result.Matched++

		subjectLog := log.WithField("subject_id", record.SubjectID)

		if !ignoreWished {
			wished, err := p.ledger.HasBeenWished(ctx, tenantID, record.SubjectID, ref)
			if err != nil {
				return result, err
			}
			if wished {
				continue
			}
		}

		if err := p.gateway.Congratulate(ctx, tenantID, cfg.ChannelRef, record.SubjectID); err != nil {
			subjectLog.WithError(err).WithField("reason", domain.GatewayReasonOf(err)).Warn("failed to send birthday message")
			result.Failed++
			continue
		}
		result.Sent++

		if roleUsable {
			if err := p.gateway.GrantRole(ctx, tenantID, record.SubjectID, cfg.StatusRoleRef); err != nil {
				subjectLog.WithError(err).WithField("reason", domain.GatewayReasonOf(err)).Warn("failed to grant status role")
				result.RoleFailures++
			}
		}

		if !ignoreWished {
			if err := p.ledger.MarkWished(ctx, tenantID, record.SubjectID, ref); err != nil {
				return result, err
			}
		}
	}

	if err := p.summary.Refresh(ctx, cfg, ref, todaySet); err != nil {
		log.WithError(err).Warn("failed to refresh summary")
	}

	log.WithFields(logrus.Fields{
		"matched": result.Matched,
		"sent":    result.Sent,
		"failed":  result.Failed,
	}).Info("notification pass finished")

	return result, nil
}
