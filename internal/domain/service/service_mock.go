package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/mocks"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockTenantRepo  *mocks.MockTenantRepo
	mockRecordRepo  *mocks.MockRecordRepo
	mockLedgerRepo  *mocks.MockLedgerRepo
	mockGateway     *mocks.MockGateway
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	tenantRepo := mocks.NewMockTenantRepo(ctrl)
	dm.EXPECT().Tenant().Return(tenantRepo).AnyTimes()

	recordRepo := mocks.NewMockRecordRepo(ctrl)
	dm.EXPECT().Record().Return(recordRepo).AnyTimes()

	ledgerRepo := mocks.NewMockLedgerRepo(ctrl)
	dm.EXPECT().Ledger().Return(ledgerRepo).AnyTimes()

	gateway := mocks.NewMockGateway(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockTenantRepo:  tenantRepo,
		mockRecordRepo:  recordRepo,
		mockLedgerRepo:  ledgerRepo,
		mockGateway:     gateway,
	}

	// validate service creation
	instance := newTestInstance(t, dm, gateway, time.Now())
	require.NotNil(t, instance.Birthday)
	require.NotNil(t, instance.Scheduler)

	return
}

// newTestInstance builds the services with a fixed UTC clock
func newTestInstance(t *testing.T, dm contract.DataManager, gateway contract.Gateway, now time.Time) *Instance {
	t.Helper()

	log, _ := test.NewNullLogger()
	return NewInstance(dm, gateway, Options{
		Location:             time.UTC,
		MaxConcurrentTenants: 2,
		Clock:                func() time.Time { return now },
	}, log)
}
