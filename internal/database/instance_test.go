package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	dm := NewInstance(db)
	require.NoError(t, dm.Tenant().Upsert(ctx, &entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", CheckHour: 9}))

	t.Run("Should commit all writes", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Record().Upsert(ctx, &entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 1, Day: 2}); err != nil {
				return err
			}
			return tx.Record().Upsert(ctx, &entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U2", Month: 3, Day: 4})
		})
		require.NoError(t, err)

		list, err := dm.Record().ListByTenant(ctx, "T1")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("Should roll back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Record().Upsert(ctx, &entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U9", Month: 5, Day: 6}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		found, err := dm.Record().Get(ctx, "T1", "U9")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
