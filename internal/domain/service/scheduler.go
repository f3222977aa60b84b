package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/calendar"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// scheduler drives notification passes. Each tenant is PENDING until a pass
// after its check hour completes without delivery failures, then CHECKED until
// the calendar day changes.
type scheduler struct {
	dm     contract.DataManager
	pass   *notificationPass
	roles  *roleLifecycle
	ledger *wishLedger
	log    logrus.FieldLogger

	location      *time.Location
	interval      time.Duration
	retentionDays int
	maxConcurrent int
	now           func() time.Time

	cron *cron.Cron

	mu          sync.Mutex
	currentDate string
	checked     map[string]bool
	// startedUp is set by the first successful rollover
	startedUp bool

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func newScheduler(dm contract.DataManager, pass *notificationPass, roles *roleLifecycle, ledger *wishLedger, opts Options, log logrus.FieldLogger) *scheduler {
	return &scheduler{
		dm:            dm,
		pass:          pass,
		roles:         roles,
		ledger:        ledger,
		log:           log.WithField("component", "scheduler"),
		location:      opts.Location,
		interval:      opts.TickInterval,
		retentionDays: opts.RetentionDays,
		maxConcurrent: opts.MaxConcurrentTenants,
		now:           opts.Clock,
		checked:       make(map[string]bool),
		locks:         make(map[string]*sync.Mutex),
	}
}

func (s *scheduler) clock() time.Time {
	return s.now().In(s.location)
}

// Start runs a catch-up tick, including the startup rollover, synchronously
// and then starts ticking every interval. Passes keep running on ctx values
// but are not cancelled when ctx is.
func (s *scheduler) Start(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)

	s.log.Info("Scheduler starting...")

	s.tick(ctx)

	s.cron = cron.New(
		cron.WithLocation(s.location),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(s.log))),
	)
	s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
		s.tick(ctx)
	}))
	s.cron.Start()

	s.log.WithField("interval", s.interval.String()).Info("Scheduler started")
	return nil
}

// Stop stops ticking and waits for the running tick, or for ctx.
func (s *scheduler) Stop(ctx context.Context) error {
	if s.cron == nil {
		return nil
	}

	s.log.Info("Scheduler stopping...")
	done := s.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to wait for running tick: %w", ctx.Err())
	}
}

func (s *scheduler) tick(ctx context.Context) {
	now := s.clock()
	today := now.Format(domain.DateLayout)

	// the startup rollover is retried until it succeeds once, so today's
	// holders are never stripped of a role the ledger will not grant again
	date, startedUp := s.state()
	if !startedUp || date != today {
		if err := s.rollover(ctx, now, !startedUp); err != nil {
			s.log.WithError(err).WithField("startup", !startedUp).Error("day rollover failed, retrying next tick")
			return
		}
	}

	tenants, err := s.dm.Tenant().List(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list tenants")
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency())

	for _, cfg := range tenants {
		if now.Hour() < cfg.CheckHour || s.isChecked(cfg.TenantID) {
			continue
		}

		tenantID := cfg.TenantID
		g.Go(func() error {
			s.withTenantLock(tenantID, func() {
				result, err := s.pass.Run(ctx, tenantID, now, false)
				if err != nil {
					s.log.WithError(err).WithField("tenant_id", tenantID).Error("notification pass failed")
					return
				}
				if result.Completed() {
					s.markChecked(tenantID, today)
				}
			})
			return nil
		})
	}

	_ = g.Wait()
}

// rollover prunes the ledger and revokes expired status roles before the
// per-tenant state of the new day is reset. At startup holders whose
// birthday is today keep the role.
func (s *scheduler) rollover(ctx context.Context, now time.Time, startup bool) error {
	today := now.Format(domain.DateLayout)
	log := s.log.WithField("date", today)

	pruned, err := s.ledger.PruneOlderThan(ctx, now, s.retentionDays)
	if err != nil {
		return err
	}

	tenants, err := s.dm.Tenant().List(ctx)
	if err != nil {
		return storeError("list tenants", err)
	}

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency())

	for _, cfg := range tenants {
		g.Go(func() error {
			tenantLog := log.WithField("tenant_id", cfg.TenantID)

			var keep map[string]bool
			if startup {
				records, err := s.dm.Record().ListByTenant(ctx, cfg.TenantID)
				if err != nil {
					tenantLog.WithError(err).Error("failed to list records for role cleanup")
					return nil
				}
				keep = make(map[string]bool)
				for _, record := range records {
					if calendar.IsAnniversaryOn(*record, now) {
						keep[record.SubjectID] = true
					}
				}
			}

			s.withTenantLock(cfg.TenantID, func() {
				revoked, err := s.roles.RevokeExpired(ctx, cfg, keep)
				if err != nil {
					tenantLog.WithError(err).Warn("failed to revoke expired status roles")
					return
				}
				if revoked > 0 {
					tenantLog.WithField("revoked", revoked).Info("status roles revoked")
				}
			})
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	s.currentDate = today
	s.checked = make(map[string]bool)
	s.startedUp = true
	s.mu.Unlock()

	log.WithField("pruned", pruned).Info("day rollover done")
	return nil
}

// RunOnce runs a pass for one tenant, or all of them, outside the check-hour
// gate. Expired roles are revoked first and the scheduler state is untouched.
func (s *scheduler) RunOnce(ctx context.Context, opts entity.RunOptions) (*entity.RunSummary, error) {
	ref := opts.Date
	if ref.IsZero() {
		ref = s.clock()
	} else {
		ref = ref.In(s.location)
	}

	summary := &entity.RunSummary{
		RunID: uuid.NewString(),
		Date:  ref.Format(domain.DateLayout),
	}
	log := s.log.WithField("run_id", summary.RunID)

	var tenantIDs []string
	if opts.TenantID != "" {
		tenantIDs = []string{opts.TenantID}
	} else {
		tenants, err := s.dm.Tenant().List(ctx)
		if err != nil {
			return nil, storeError("list tenants", err)
		}
		for _, cfg := range tenants {
			tenantIDs = append(tenantIDs, cfg.TenantID)
		}
	}

	outcomes := make([]entity.TenantOutcome, len(tenantIDs))
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency())

	for i, tenantID := range tenantIDs {
		g.Go(func() error {
			s.withTenantLock(tenantID, func() {
				outcomes[i] = s.runOnceTenant(ctx, tenantID, ref, opts, log.WithField("tenant_id", tenantID))
			})
			return nil
		})
	}
	_ = g.Wait()

	summary.Outcomes = outcomes

	sent, failed, errored := summary.Totals()
	log.WithFields(logrus.Fields{
		"date":    summary.Date,
		"tenants": len(outcomes),
		"sent":    sent,
		"failed":  failed,
		"errored": errored,
	}).Info("one-shot run finished")

	return summary, nil
}

func (s *scheduler) runOnceTenant(ctx context.Context, tenantID string, ref time.Time, opts entity.RunOptions, log logrus.FieldLogger) entity.TenantOutcome {
	outcome := entity.TenantOutcome{
		Result: entity.PassResult{TenantID: tenantID, Date: ref.Format(domain.DateLayout)},
	}

	if opts.ResetLedger {
		deleted, err := s.ledger.ResetTenant(ctx, tenantID)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		log.WithField("deleted", deleted).Info("wish ledger reset")
	}

	cfg, err := s.dm.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		outcome.Err = storeError("get tenant config", err)
		return outcome
	}
	if cfg == nil {
		outcome.Result.Skipped = true
		return outcome
	}

	revoked, err := s.roles.RevokeExpired(ctx, cfg, nil)
	if err != nil {
		log.WithError(err).Warn("failed to revoke expired status roles")
	}
	outcome.Revoked = revoked

	outcome.Result, outcome.Err = s.pass.Run(ctx, tenantID, ref, opts.IgnoreWished)
	return outcome
}

func (s *scheduler) withTenantLock(tenantID string, fn func()) {
	s.locksMu.Lock()
	lock, ok := s.locks[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[tenantID] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	fn()
}

func (s *scheduler) state() (date string, startedUp bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentDate, s.startedUp
}

func (s *scheduler) isChecked(tenantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checked[tenantID]
}

// markChecked ignores results of a day that already rolled over.
func (s *scheduler) markChecked(tenantID, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentDate == date {
		s.checked[tenantID] = true
	}
}

func (s *scheduler) concurrency() int {
	if s.maxConcurrent <= 0 {
		return 1
	}
	return s.maxConcurrent
}
