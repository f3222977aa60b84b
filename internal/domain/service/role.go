package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/sirupsen/logrus"
)

type roleLifecycle struct {
	gateway contract.Gateway
	log     logrus.FieldLogger
}

func newRoleLifecycle(gateway contract.Gateway, log logrus.FieldLogger) *roleLifecycle {
	return &roleLifecycle{gateway: gateway, log: log}
}

// RevokeExpired removes the status role from every holder not in keep and
// returns how many members lost it. A nil keep revokes from everyone.
func (r *roleLifecycle) RevokeExpired(ctx context.Context, cfg *entity.TenantConfig, keep map[string]bool) (int, error) {
	if !cfg.HasStatusRole() {
		return 0, nil
	}

	holders, err := r.gateway.RoleHolders(ctx, cfg.TenantID, cfg.StatusRoleRef)
	if err != nil {
		return 0, fmt.Errorf("failed to list role holders: %w", err)
	}

	revoked := 0
	for _, subjectID := range holders {
		if keep[subjectID] {
			continue
		}

		if err := r.gateway.RevokeRole(ctx, cfg.TenantID, subjectID, cfg.StatusRoleRef); err != nil {
			r.log.WithFields(logrus.Fields{
				"tenant_id":  cfg.TenantID,
				"subject_id": subjectID,
				"reason":     domain.GatewayReasonOf(err),
			}).WithError(err).Warn("failed to revoke status role")
			continue
		}
		revoked++
	}

	return revoked, nil
}
