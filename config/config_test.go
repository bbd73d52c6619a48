package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Setenv("APPENV", "test")
	os.Exit(m.Run())
}

func TestLoadConfig_Singleton(t *testing.T) {
	first := LoadConfig()
	second := LoadConfig()
	assert.Same(t, first, second)
	assert.Equal(t, "test", first.AppEnv)
}

// In the test environment ConnectDB opens an in-memory sqlite database, so a
// second connection from the pool must not see a different empty database.
func TestConnectDB_TestEnvUsesSQLite(t *testing.T) {
	db, err := ConnectDB()
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	var one int
	assert.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

// Separate connections get separate databases, which keeps tests isolated.
func TestConnectDB_FreshDatabasePerConnection(t *testing.T) {
	first, err := ConnectDB()
	assert.NoError(t, err)
	assert.NoError(t, first.Exec("CREATE TABLE probe (id INTEGER)").Error)

	second, err := ConnectDB()
	assert.NoError(t, err)
	var count int64
	err = second.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'probe'").Scan(&count).Error
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetRedisClient_NilInTests(t *testing.T) {
	SetRedisClientForTesting(nil)
	client, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, client)
	assert.Nil(t, GetRedisClient())
}
