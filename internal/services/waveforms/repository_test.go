package waveforms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/voxnote/memo-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Waveform{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	waveform := cachedWaveform(t, "rec-1")
	require.NoError(t, repo.Create(ctx, waveform))

	stored, err := repo.GetByRecordingID(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, waveform.Resolution, stored.Resolution)

	peaks, err := stored.Peaks()
	require.NoError(t, err)
	assert.Len(t, peaks, 4)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetByRecordingID(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrWaveformNotFound)
}

func TestRepository_UniqueRecordingConstraint(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, cachedWaveform(t, "rec-1")))

	err := repo.Create(ctx, cachedWaveform(t, "rec-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, cachedWaveform(t, "rec-1")))
	require.NoError(t, repo.Delete(ctx, "rec-1"))

	exists, err := repo.Exists(ctx, "rec-1")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing row is a no-op.
	assert.NoError(t, repo.Delete(ctx, "rec-1"))
}

func TestRepository_Exists(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "rec-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, cachedWaveform(t, "rec-1")))

	exists, err = repo.Exists(ctx, "rec-1")
	require.NoError(t, err)
	assert.True(t, exists)
}
