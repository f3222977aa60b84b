package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_notificationPass_Run(t *testing.T) {
	ref := time.Date(2025, time.July, 4, 9, 5, 0, 0, time.UTC)

	cfg := func() *entity.TenantConfig {
		return &entity.TenantConfig{
			TenantID:          "T1",
			ChannelRef:        "C1",
			StatusRoleRef:     "S1",
			CheckHour:         9,
			SummaryMessageRef: "1.1",
		}
	}
	records := []*entity.AnniversaryRecord{
		{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4},
		{TenantID: "T1", SubjectID: "U2", Month: 1, Day: 1},
	}

	expectRefresh := func(mocks allMocks) {
		mocks.mockRecordRepo.EXPECT().ListByTenant(gomock.Any(), "T1").Return(records, nil).Times(1)
		mocks.mockGateway.EXPECT().
			PostOrUpdateSummary(gomock.Any(), "T1", "C1", "1.1", gomock.Any()).
			Return("1.1", nil).Times(1)
	}

	type args struct {
		ignoreWished bool
	}
	tests := []struct {
		name       string
		buildMock  func(mocks allMocks, args args)
		args       args
		wantResult entity.PassResult
		wantErr    error
	}{
		{
			name: "Should skip tenant without config",
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(nil, nil).Times(1)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04", Skipped: true},
		},
		{
			name: "Should abort when config cannot be loaded",
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(nil, assert.AnError).Times(1)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04"},
			wantErr:    domain.ErrStoreFailure,
		},
		{
			name: "Should abort when channel is unavailable",
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(cfg(), nil).Times(1)
				mocks.mockGateway.EXPECT().
					ResolveChannel(gomock.Any(), "T1", "C1").
					Return(domain.NewGatewayError("resolve channel", domain.ReasonNotFound, assert.AnError)).Times(1)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04"},
			wantErr:    domain.ErrChannelUnavailable,
		},
		{
			name: "Should congratulate, grant role and mark wished",
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(cfg(), nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveRole(gomock.Any(), "T1", "S1").Return(nil).Times(1)
				mocks.mockRecordRepo.EXPECT().ListByTenant(gomock.Any(), "T1").Return(records, nil).Times(1)

				gomock.InOrder(
					mocks.mockLedgerRepo.EXPECT().Exists(gomock.Any(), "T1", "U1", "2025-07-04").Return(false, nil).Times(1),
					mocks.mockGateway.EXPECT().Congratulate(gomock.Any(), "T1", "C1", "U1").Return(nil).Times(1),
					mocks.mockGateway.EXPECT().GrantRole(gomock.Any(), "T1", "U1", "S1").Return(nil).Times(1),
					mocks.mockLedgerRepo.EXPECT().Insert(gomock.Any(), "T1", "U1", "2025-07-04").Return(nil).Times(1),
				)

				expectRefresh(mocks)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04", Matched: 1, Sent: 1},
		},
		{
			name: "Should not congratulate twice on the same day",
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(cfg(), nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveRole(gomock.Any(), "T1", "S1").Return(nil).Times(1)
				mocks.mockRecordRepo.EXPECT().ListByTenant(gomock.Any(), "T1").Return(records, nil).Times(1)
				mocks.mockLedgerRepo.EXPECT().Exists(gomock.Any(), "T1", "U1", "2025-07-04").Return(true, nil).Times(1)

				expectRefresh(mocks)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04", Matched: 1},
		},
		{
			name: "Should not mark wished when delivery fails",
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(cfg(), nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveRole(gomock.Any(), "T1", "S1").Return(nil).Times(1)
				mocks.mockRecordRepo.EXPECT().ListByTenant(gomock.Any(), "T1").Return(records, nil).Times(1)
				mocks.mockLedgerRepo.EXPECT().Exists(gomock.Any(), "T1", "U1", "2025-07-04").Return(false, nil).Times(1)
				mocks.mockGateway.EXPECT().
					Congratulate(gomock.Any(), "T1", "C1", "U1").
					Return(domain.NewGatewayError("congratulate", domain.ReasonTransient, assert.AnError)).Times(1)

				expectRefresh(mocks)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04", Matched: 1, Failed: 1},
		},
		{
			name: "Should continue without role when role is unavailable",
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(cfg(), nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
				mocks.mockGateway.EXPECT().
					ResolveRole(gomock.Any(), "T1", "S1").
					Return(domain.NewGatewayError("resolve role", domain.ReasonNotFound, assert.AnError)).Times(1)
				mocks.mockRecordRepo.EXPECT().ListByTenant(gomock.Any(), "T1").Return(records, nil).Times(1)
				mocks.mockLedgerRepo.EXPECT().Exists(gomock.Any(), "T1", "U1", "2025-07-04").Return(false, nil).Times(1)
				mocks.mockGateway.EXPECT().Congratulate(gomock.Any(), "T1", "C1", "U1").Return(nil).Times(1)
				mocks.mockLedgerRepo.EXPECT().Insert(gomock.Any(), "T1", "U1", "2025-07-04").Return(nil).Times(1)

				expectRefresh(mocks)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04", Matched: 1, Sent: 1},
		},
		{
			name: "Should mark wished even when role grant is denied",
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(cfg(), nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveRole(gomock.Any(), "T1", "S1").Return(nil).Times(1)
				mocks.mockRecordRepo.EXPECT().ListByTenant(gomock.Any(), "T1").Return(records, nil).Times(1)
				mocks.mockLedgerRepo.EXPECT().Exists(gomock.Any(), "T1", "U1", "2025-07-04").Return(false, nil).Times(1)
				mocks.mockGateway.EXPECT().Congratulate(gomock.Any(), "T1", "C1", "U1").Return(nil).Times(1)
				mocks.mockGateway.EXPECT().
					GrantRole(gomock.Any(), "T1", "U1", "S1").
					Return(domain.NewGatewayError("grant role", domain.ReasonForbidden, assert.AnError)).Times(1)
				mocks.mockLedgerRepo.EXPECT().Insert(gomock.Any(), "T1", "U1", "2025-07-04").Return(nil).Times(1)

				expectRefresh(mocks)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04", Matched: 1, Sent: 1, RoleFailures: 1},
		},
		{
			name: "Should abort on ledger failure",
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(cfg(), nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveRole(gomock.Any(), "T1", "S1").Return(nil).Times(1)
				mocks.mockRecordRepo.EXPECT().ListByTenant(gomock.Any(), "T1").Return(records, nil).Times(1)
				mocks.mockLedgerRepo.EXPECT().Exists(gomock.Any(), "T1", "U1", "2025-07-04").Return(false, assert.AnError).Times(1)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04", Matched: 1},
			wantErr:    domain.ErrStoreFailure,
		},
		{
			name: "Should bypass the ledger when ignoring wished state",
			args: args{ignoreWished: true},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(cfg(), nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
				mocks.mockGateway.EXPECT().ResolveRole(gomock.Any(), "T1", "S1").Return(nil).Times(1)
				mocks.mockRecordRepo.EXPECT().ListByTenant(gomock.Any(), "T1").Return(records, nil).Times(1)
				mocks.mockGateway.EXPECT().Congratulate(gomock.Any(), "T1", "C1", "U1").Return(nil).Times(1)
				mocks.mockGateway.EXPECT().GrantRole(gomock.Any(), "T1", "U1", "S1").Return(nil).Times(1)

				expectRefresh(mocks)
			},
			wantResult: entity.PassResult{TenantID: "T1", Date: "2025-07-04", Matched: 1, Sent: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			pass := newTestInstance(t, m.mockDataManager, m.mockGateway, ref).Scheduler.pass

			result, err := pass.Run(context.Background(), "T1", ref, tt.args.ignoreWished)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantResult, result)
		})
	}
}

func Test_notificationPass_HighlightsTodayEvenWhenAlreadyWished(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	ref := time.Date(2025, time.July, 4, 9, 5, 0, 0, time.UTC)
	cfg := &entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", CheckHour: 9}
	records := []*entity.AnniversaryRecord{{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4}}

	m.mockTenantRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(cfg, nil).Times(1)
	m.mockGateway.EXPECT().ResolveChannel(gomock.Any(), "T1", "C1").Return(nil).Times(1)
	m.mockRecordRepo.EXPECT().ListByTenant(gomock.Any(), "T1").Return(records, nil).Times(2)
	m.mockLedgerRepo.EXPECT().Exists(gomock.Any(), "T1", "U1", "2025-07-04").Return(true, nil).Times(1)

	var summaryText string
	m.mockGateway.EXPECT().
		PostOrUpdateSummary(gomock.Any(), "T1", "C1", "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, text string) (string, error) {
			summaryText = text
			return "2.2", nil
		}).Times(1)
	m.mockTenantRepo.EXPECT().SetSummaryMessage(gomock.Any(), "T1", "2.2").Return(nil).Times(1)

	pass := newTestInstance(t, m.mockDataManager, m.mockGateway, ref).Scheduler.pass

	result, err := pass.Run(context.Background(), "T1", ref, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Contains(t, summaryText, "🎉 <@U1>")
}
