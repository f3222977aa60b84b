package service

import (
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/sirupsen/logrus"
)

// Options tunes the notification engine.
type Options struct {
	// Location is the clock used for check hours and day rollover
	Location             *time.Location
	TickInterval         time.Duration
	PageSize             int
	RetentionDays        int
	MaxConcurrentTenants int
	Clock                func() time.Time
}

type Instance struct {
	Birthday  contract.BirthdayService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, gateway contract.Gateway, opts Options, log logrus.FieldLogger) *Instance {
	opts = withDefaults(opts)

	ledger := newWishLedger(dm)
	summary := newSummaryView(dm, gateway, opts.PageSize, opts.Location, log)
	roles := newRoleLifecycle(gateway, log)
	pass := newNotificationPass(dm, gateway, ledger, summary, log)
	scheduler := newScheduler(dm, pass, roles, ledger, opts, log)

	return &Instance{
		Birthday:  newBirthday(dm, summary, ledger, scheduler, opts, log),
		Scheduler: scheduler,
	}
}

func withDefaults(opts Options) Options {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 5 * time.Minute
	}
	if opts.PageSize <= 0 {
		opts.PageSize = domain.DefaultPageSize
	}
	if opts.RetentionDays <= 0 {
		opts.RetentionDays = domain.DefaultRetentionDays
	}
	if opts.MaxConcurrentTenants <= 0 {
		opts.MaxConcurrentTenants = 1
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return opts
}
