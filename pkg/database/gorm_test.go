package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGormDB_RejectsUnknownDriver(t *testing.T) {
	_, err := NewGormDB(GormConfig{Driver: "mysql", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewGormDB_RequiresDSN(t *testing.T) {
	_, err := NewGormDB(GormConfig{Driver: DriverSQLite})
	assert.Error(t, err)
}

func TestNewInMemory_SingleConnection(t *testing.T) {
	db, err := NewInMemory("db_" + t.Name())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, sqlDB.Ping())
}
