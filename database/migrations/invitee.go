package migrations

import (
	"fercullen.events/configs/configslog"
	"fercullen.events/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateInviteesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating invitees table...")
	err := db.AutoMigrate(&models.Invitee{})
	if err != nil {
		configslog.Log.Error("Failed to migrate invitees table", zap.Error(err))
		return err
	}

	// E-posta opsiyonel olduğu için benzersizlik yalnızca dolu değerlere
	// uygulanır. Kısmi indeks hem Postgres hem SQLite tarafından desteklenir.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_invitees_email_unique ON invitees (email) WHERE email <> ''`).Error
	if err != nil {
		configslog.Log.Error("Failed to create partial unique index on invitees.email", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Invitees table migrated successfully")
	return nil
}
