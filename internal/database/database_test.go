package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxnote/memo-api/internal/models"
)

func TestInitialize_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "nested", "memo.db")

	db, err := Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
}

func TestInitialize_InMemory(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
}

func TestAutoMigrate(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer db.Close()

	err = db.AutoMigrate(&models.AudioBlob{}, &models.Waveform{})
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.AudioBlob{}))
	assert.True(t, db.Migrator().HasTable(&models.Waveform{}))
}

func TestHealthCheck_NilReceiver(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}

func TestClose(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck())
}
