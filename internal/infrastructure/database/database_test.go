package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/entity"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/config"
)

func TestNewDB_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "predictions.db")

	db, err := NewDB(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable(&entity.PredictionRecord{}))
	assert.FileExists(t, path)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(&config.DatabaseConfig{Driver: "mysql"})

	assert.ErrorContains(t, err, `unsupported database driver "mysql"`)
}
