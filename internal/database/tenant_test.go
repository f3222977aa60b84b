package database

import (
	"context"
	"testing"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantRepository_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newTenantRepo(db.conn)

	cfg := &entity.TenantConfig{
		TenantID:      "T123456789",
		ChannelRef:    "C123456789",
		StatusRoleRef: "S123456789",
		CheckHour:     9,
	}

	err := repo.Upsert(ctx, cfg)
	require.NoError(t, err, "Failed to create tenant config")

	found, err := repo.GetByID(ctx, "T123456789")
	require.NoError(t, err)
	require.NotNil(t, found, "Expected to find tenant config")

	assert.Equal(t, "C123456789", found.ChannelRef)
	assert.Equal(t, "S123456789", found.StatusRoleRef)
	assert.Empty(t, found.ModeratorRoleRef)
	assert.Empty(t, found.SummaryMessageRef)
	assert.Equal(t, 9, found.CheckHour)
	assert.False(t, found.CreatedAt.IsZero())

	// Update replaces the configuration in place
	cfg.ChannelRef = "C987654321"
	cfg.StatusRoleRef = ""
	cfg.CheckHour = 14
	err = repo.Upsert(ctx, cfg)
	require.NoError(t, err, "Failed to update tenant config")

	found, err = repo.GetByID(ctx, "T123456789")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "C987654321", found.ChannelRef)
	assert.Empty(t, found.StatusRoleRef)
	assert.Equal(t, 14, found.CheckHour)

	configs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, configs, 1)
}

func TestTenantRepository_UpsertRejectsInvalidHour(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTenantRepo(db.conn)

	err := repo.Upsert(context.Background(), &entity.TenantConfig{
		TenantID:   "T123456789",
		ChannelRef: "C123456789",
		CheckHour:  24,
	})
	assert.Error(t, err, "Expected check constraint violation")
}

func TestTenantRepository_GetByID_NotFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newTenantRepo(db.conn)

	notFound, err := repo.GetByID(context.Background(), "NONEXISTENT")
	require.NoError(t, err, "Unexpected error when tenant not found")
	assert.Nil(t, notFound, "Expected nil when tenant not found")
}

func TestTenantRepository_List(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newTenantRepo(db.conn)

	for _, id := range []string{"T3", "T1", "T2"} {
		err := repo.Upsert(ctx, &entity.TenantConfig{TenantID: id, ChannelRef: "C" + id, CheckHour: 9})
		require.NoError(t, err)
	}

	configs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 3)

	assert.Equal(t, "T1", configs[0].TenantID)
	assert.Equal(t, "T2", configs[1].TenantID)
	assert.Equal(t, "T3", configs[2].TenantID)
}

func TestTenantRepository_SetSummaryMessage(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newTenantRepo(db.conn)

	err := repo.Upsert(ctx, &entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", CheckHour: 9})
	require.NoError(t, err)

	err = repo.SetSummaryMessage(ctx, "T1", "1700000000.000100")
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, "T1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "1700000000.000100", found.SummaryMessageRef)
	assert.True(t, found.HasSummaryMessage())

	// Clearing the reference stores NULL
	err = repo.SetSummaryMessage(ctx, "T1", "")
	require.NoError(t, err)

	found, err = repo.GetByID(ctx, "T1")
	require.NoError(t, err)
	assert.False(t, found.HasSummaryMessage())
}

func TestTenantRepository_DeleteCascadesRecords(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	tenants := newTenantRepo(db.conn)
	records := newRecordRepo(db.conn)

	err := tenants.Upsert(ctx, &entity.TenantConfig{TenantID: "T1", ChannelRef: "C1", CheckHour: 9})
	require.NoError(t, err)

	err = records.Upsert(ctx, &entity.AnniversaryRecord{TenantID: "T1", SubjectID: "U1", Month: 7, Day: 4})
	require.NoError(t, err)

	err = tenants.Delete(ctx, "T1")
	require.NoError(t, err)

	list, err := records.ListByTenant(ctx, "T1")
	require.NoError(t, err)
	assert.Empty(t, list, "Expected records to be removed with their tenant")
}
