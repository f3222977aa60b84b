package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/database"
	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/diegoclair/slack-birthday-bot/mocks"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

type schedulerTest struct {
	db       *database.DB
	dm       contract.DataManager
	gateway  *mocks.MockGateway
	clock    *testClock
	sched    *scheduler
	birthday contract.BirthdayService
}

// newSchedulerTest wires the scheduler to a real in-memory store and a mocked gateway
func newSchedulerTest(t *testing.T, now time.Time) *schedulerTest {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	clock := &testClock{now: now}
	log, _ := test.NewNullLogger()

	dm := database.NewInstance(db)
	instance := NewInstance(dm, gateway, Options{
		Location:             time.UTC,
		TickInterval:         time.Hour,
		MaxConcurrentTenants: 2,
		Clock:                clock.Now,
	}, log)

	return &schedulerTest{
		db:       db,
		dm:       dm,
		gateway:  gateway,
		clock:    clock,
		sched:    instance.Scheduler,
		birthday: instance.Birthday,
	}
}

func (st *schedulerTest) seed(t *testing.T, cfg *entity.TenantConfig, records ...*entity.AnniversaryRecord) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, st.dm.Tenant().Upsert(ctx, cfg))
	for _, record := range records {
		require.NoError(t, st.dm.Record().Upsert(ctx, record))
	}
}

func (st *schedulerTest) expectPass(subjectID string, summaryRef string) {
	st.gateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
	st.gateway.EXPECT().ResolveRole(gomock.Any(), "T1", "S1").Return(nil).Times(1)
	st.gateway.EXPECT().Congratulate(gomock.Any(), "T1", "C1", subjectID).Return(nil).Times(1)
	st.gateway.EXPECT().GrantRole(gomock.Any(), "T1", subjectID, "S1").Return(nil).Times(1)
	st.gateway.EXPECT().PostOrUpdateSummary(gomock.Any(), "T1", "C1", gomock.Any(), gomock.Any()).Return(summaryRef, nil).Times(1)
}

func Test_scheduler_EndToEnd(t *testing.T) {
	ctx := context.Background()
	st := newSchedulerTest(t, time.Date(2025, time.July, 4, 8, 0, 0, 0, time.UTC))
	st.seed(t,
		&entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", StatusRoleRef: "S1", CheckHour: 9},
		&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4},
		&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U2", Month: 12, Day: 1},
	)

	// first tick of the day rolls over, but it is before the check hour
	st.gateway.EXPECT().RoleHolders(gomock.Any(), "T1", "S1").Return(nil, nil).Times(1)
	st.sched.tick(ctx)
	assert.False(t, st.sched.isChecked("T1"))

	// past the check hour the subject is congratulated exactly once
	st.clock.Set(time.Date(2025, time.July, 4, 9, 5, 0, 0, time.UTC))
	st.expectPass("U1", "1.1")
	st.sched.tick(ctx)
	assert.True(t, st.sched.isChecked("T1"))

	wished, err := st.dm.Ledger().Exists(ctx, "T1", "U1", "2025-07-04")
	require.NoError(t, err)
	assert.True(t, wished)

	cfg, err := st.dm.Tenant().GetByID(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, "1.1", cfg.SummaryMessageRef)

	// a second tick the same day makes no gateway calls
	st.clock.Set(time.Date(2025, time.July, 4, 9, 10, 0, 0, time.UTC))
	st.sched.tick(ctx)

	// the next day's rollover revokes the expired role
	st.clock.Set(time.Date(2025, time.July, 5, 0, 5, 0, 0, time.UTC))
	st.gateway.EXPECT().RoleHolders(gomock.Any(), "T1", "S1").Return([]string{"U1"}, nil).Times(1)
	st.gateway.EXPECT().RevokeRole(gomock.Any(), "T1", "U1", "S1").Return(nil).Times(1)
	st.sched.tick(ctx)
	assert.False(t, st.sched.isChecked("T1"))
}

func Test_scheduler_RetriesFailedDelivery(t *testing.T) {
	ctx := context.Background()
	st := newSchedulerTest(t, time.Date(2025, time.July, 4, 9, 5, 0, 0, time.UTC))
	st.seed(t,
		&entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", CheckHour: 9},
		&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4},
	)

	st.gateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(2)
	st.gateway.EXPECT().PostOrUpdateSummary(gomock.Any(), "T1", "C1", gomock.Any(), gomock.Any()).Return("1.1", nil).Times(2)
	gomock.InOrder(
		st.gateway.EXPECT().
			Congratulate(gomock.Any(), "T1", "C1", "U1").
			Return(domain.NewGatewayError("congratulate", domain.ReasonTransient, assert.AnError)).Times(1),
		st.gateway.EXPECT().Congratulate(gomock.Any(), "T1", "C1", "U1").Return(nil).Times(1),
	)

	st.sched.tick(ctx)
	assert.False(t, st.sched.isChecked("T1"), "tenant with failed deliveries stays pending")

	wished, err := st.dm.Ledger().Exists(ctx, "T1", "U1", "2025-07-04")
	require.NoError(t, err)
	assert.False(t, wished)

	st.clock.Set(time.Date(2025, time.July, 4, 9, 10, 0, 0, time.UTC))
	st.sched.tick(ctx)
	assert.True(t, st.sched.isChecked("T1"))

	wished, err = st.dm.Ledger().Exists(ctx, "T1", "U1", "2025-07-04")
	require.NoError(t, err)
	assert.True(t, wished)
}

func Test_scheduler_PassIsIdempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.July, 4, 9, 5, 0, 0, time.UTC)
	st := newSchedulerTest(t, now)
	st.seed(t,
		&entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", StatusRoleRef: "S1", CheckHour: 9},
		&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4},
		&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U2", Month: 7, Day: 4},
	)

	st.gateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(2)
	st.gateway.EXPECT().ResolveRole(gomock.Any(), "T1", "S1").Return(nil).Times(2)
	st.gateway.EXPECT().Congratulate(gomock.Any(), "T1", "C1", "U1").Return(nil).Times(1)
	st.gateway.EXPECT().Congratulate(gomock.Any(), "T1", "C1", "U2").Return(nil).Times(1)
	st.gateway.EXPECT().GrantRole(gomock.Any(), "T1", gomock.Any(), "S1").Return(nil).Times(2)
	st.gateway.EXPECT().PostOrUpdateSummary(gomock.Any(), "T1", "C1", gomock.Any(), gomock.Any()).Return("1.1", nil).Times(2)

	first, err := st.sched.pass.Run(ctx, "T1", now, false)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Sent)

	second, err := st.sched.pass.Run(ctx, "T1", now, false)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Sent)
	assert.Equal(t, 2, second.Matched)
}

func Test_scheduler_StartCatchesUp(t *testing.T) {
	st := newSchedulerTest(t, time.Date(2025, time.July, 4, 10, 0, 0, 0, time.UTC))
	st.seed(t,
		&entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", StatusRoleRef: "S1", CheckHour: 9},
		&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4},
	)

	// a holder whose birthday is today keeps the role across the restart
	st.gateway.EXPECT().RoleHolders(gomock.Any(), "T1", "S1").Return([]string{"U1", "U9"}, nil).Times(1)
	st.gateway.EXPECT().RevokeRole(gomock.Any(), "T1", "U9", "S1").Return(nil).Times(1)
	st.expectPass("U1", "1.1")

	require.NoError(t, st.sched.Start(context.Background()))
	assert.True(t, st.sched.isChecked("T1"))

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, st.sched.Stop(stopCtx))
}

func Test_scheduler_RetriesStartupRollover(t *testing.T) {
	ctx := context.Background()
	st := newSchedulerTest(t, time.Date(2025, time.July, 4, 10, 0, 0, 0, time.UTC))
	st.seed(t,
		&entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", StatusRoleRef: "S1", CheckHour: 9},
		&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4},
	)
	// U1 was congratulated before the restart
	require.NoError(t, st.dm.Ledger().Insert(ctx, "T1", "U1", "2025-07-04"))

	// without the ledger table the startup prune fails and nothing else runs
	_, err := st.db.DB().ExecContext(ctx, "ALTER TABLE wish_ledger RENAME TO wish_ledger_moved")
	require.NoError(t, err)

	st.sched.tick(ctx)
	assert.False(t, st.sched.isChecked("T1"))

	_, err = st.db.DB().ExecContext(ctx, "ALTER TABLE wish_ledger_moved RENAME TO wish_ledger")
	require.NoError(t, err)

	// the retry still keeps today's holder, whom the ledger would never re-grant
	st.clock.Set(time.Date(2025, time.July, 4, 10, 5, 0, 0, time.UTC))
	st.gateway.EXPECT().RoleHolders(gomock.Any(), "T1", "S1").Return([]string{"U1", "U9"}, nil).Times(1)
	st.gateway.EXPECT().RevokeRole(gomock.Any(), "T1", "U9", "S1").Return(nil).Times(1)
	st.gateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
	st.gateway.EXPECT().ResolveRole(gomock.Any(), "T1", "S1").Return(nil).Times(1)
	st.gateway.EXPECT().PostOrUpdateSummary(gomock.Any(), "T1", "C1", gomock.Any(), gomock.Any()).Return("1.1", nil).Times(1)

	st.sched.tick(ctx)
	assert.True(t, st.sched.isChecked("T1"))

	// later ticks of the same day do not roll over again
	st.clock.Set(time.Date(2025, time.July, 4, 10, 10, 0, 0, time.UTC))
	st.sched.tick(ctx)
}

func Test_birthdayService_RefreshWaitsForTenantPass(t *testing.T) {
	ctx := context.Background()
	st := newSchedulerTest(t, time.Date(2025, time.July, 4, 10, 0, 0, 0, time.UTC))
	st.seed(t, &entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", CheckHour: 9})

	locked := make(chan struct{})
	release := make(chan struct{})
	passDone := make(chan struct{})
	go func() {
		defer close(passDone)
		st.sched.withTenantLock("T1", func() {
			close(locked)
			<-release
			// the pass publishes the first summary while holding the lock
			assert.NoError(t, st.dm.Tenant().SetSummaryMessage(ctx, "T1", "9.9"))
		})
	}()
	<-locked

	// the refresh after the record change must edit the pass's message
	st.gateway.EXPECT().PostOrUpdateSummary(gomock.Any(), "T1", "C1", "9.9", gomock.Any()).Return("9.9", nil).Times(1)

	setDone := make(chan error, 1)
	go func() {
		setDone <- st.birthday.SetRecord(ctx, "T1", "U1", 7, 4)
	}()

	select {
	case <-setDone:
		t.Fatal("summary refresh ran while the tenant pass held the lock")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	<-passDone

	select {
	case err := <-setDone:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("set record did not finish")
	}

	cfg, err := st.dm.Tenant().GetByID(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, "9.9", cfg.SummaryMessageRef)
}

func Test_scheduler_SkipsBeforeCheckHour(t *testing.T) {
	st := newSchedulerTest(t, time.Date(2025, time.July, 4, 8, 59, 0, 0, time.UTC))
	st.seed(t,
		&entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", CheckHour: 9},
		&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4},
	)

	// no status role, so the rollover makes no gateway calls either
	st.sched.tick(context.Background())
	assert.False(t, st.sched.isChecked("T1"))
}

func Test_scheduler_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Should run outside the check hour and report a summary", func(t *testing.T) {
		st := newSchedulerTest(t, time.Date(2025, time.January, 2, 3, 0, 0, 0, time.UTC))
		st.seed(t,
			&entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", StatusRoleRef: "S1", CheckHour: 9},
			&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4},
		)

		st.gateway.EXPECT().RoleHolders(gomock.Any(), "T1", "S1").Return([]string{"U7"}, nil).Times(1)
		st.gateway.EXPECT().RevokeRole(gomock.Any(), "T1", "U7", "S1").Return(nil).Times(1)
		st.expectPass("U1", "1.1")

		summary, err := st.sched.RunOnce(ctx, entity.RunOptions{
			Date: time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		assert.NotEmpty(t, summary.RunID)
		assert.Equal(t, "2025-07-04", summary.Date)
		require.Len(t, summary.Outcomes, 1)
		assert.Equal(t, 1, summary.Outcomes[0].Revoked)
		assert.Equal(t, 1, summary.Outcomes[0].Result.Sent)
		assert.True(t, summary.Succeeded())
		assert.False(t, st.sched.isChecked("T1"), "one-shot runs leave the scheduler state alone")

		wished, err := st.dm.Ledger().Exists(ctx, "T1", "U1", "2025-07-04")
		require.NoError(t, err)
		assert.True(t, wished)
	})

	t.Run("Should resend after resetting the ledger", func(t *testing.T) {
		st := newSchedulerTest(t, time.Date(2025, time.July, 4, 10, 0, 0, 0, time.UTC))
		st.seed(t,
			&entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", CheckHour: 9},
			&entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4},
		)
		require.NoError(t, st.dm.Ledger().Insert(ctx, "T1", "U1", "2025-07-04"))

		st.gateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
		st.gateway.EXPECT().Congratulate(gomock.Any(), "T1", "C1", "U1").Return(nil).Times(1)
		st.gateway.EXPECT().PostOrUpdateSummary(gomock.Any(), "T1", "C1", gomock.Any(), gomock.Any()).Return("1.1", nil).Times(1)

		summary, err := st.sched.RunOnce(ctx, entity.RunOptions{TenantID: "T1", ResetLedger: true})
		require.NoError(t, err)
		require.Len(t, summary.Outcomes, 1)
		assert.Equal(t, 1, summary.Outcomes[0].Result.Sent)
	})

	t.Run("Should skip unknown tenants", func(t *testing.T) {
		st := newSchedulerTest(t, time.Date(2025, time.July, 4, 10, 0, 0, 0, time.UTC))

		summary, err := st.sched.RunOnce(ctx, entity.RunOptions{TenantID: "T404"})
		require.NoError(t, err)
		require.Len(t, summary.Outcomes, 1)
		assert.True(t, summary.Outcomes[0].Result.Skipped)
		assert.NoError(t, summary.Outcomes[0].Err)
	})

	t.Run("Should report channel failures in the summary", func(t *testing.T) {
		st := newSchedulerTest(t, time.Date(2025, time.July, 4, 10, 0, 0, 0, time.UTC))
		st.seed(t, &entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", CheckHour: 9})

		st.gateway.EXPECT().
			ResolveChannel(gomock.Any(), "T1", "C1").
			Return(domain.NewGatewayError("resolve channel", domain.ReasonNotFound, assert.AnError)).Times(1)

		summary, err := st.sched.RunOnce(ctx, entity.RunOptions{})
		require.NoError(t, err)
		require.Len(t, summary.Outcomes, 1)
		assert.ErrorIs(t, summary.Outcomes[0].Err, domain.ErrChannelUnavailable)
		assert.False(t, summary.Succeeded())
	})
}

func Test_scheduler_RolloverPrunesLedger(t *testing.T) {
	ctx := context.Background()
	st := newSchedulerTest(t, time.Date(2025, time.July, 14, 0, 1, 0, 0, time.UTC))

	require.NoError(t, st.dm.Ledger().Insert(ctx, "T1", "U1", "2025-07-04"))
	require.NoError(t, st.dm.Ledger().Insert(ctx, "T1", "U2", "2025-07-11"))

	st.sched.tick(ctx)

	entries, err := st.dm.Ledger().ListByTenant(ctx, "T1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "U2", entries[0].SubjectID)
}
