package services

import (
	"os"
	"path/filepath"
	"testing"

	"fercullen.events/configs/configsdatabase"
	"fercullen.events/configs/configslog"
	"fercullen.events/database/migrations"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB her test için izole, dosya tabanlı bir SQLite veritabanı
// kurar ve global bağlantıyı ona yönlendirir.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, migrations.MigrateUsersTable(db))
	require.NoError(t, migrations.MigrateInviteesTable(db))
	require.NoError(t, migrations.MigrateInvitationLogsTable(db))
	require.NoError(t, migrations.MigrateSerialCountersTable(db))

	configsdatabase.SetDB(db)
	return db
}
