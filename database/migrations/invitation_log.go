package migrations

import (
	"fercullen.events/configs/configslog"
	"fercullen.events/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateInvitationLogsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating invitation_logs table...")
	err := db.AutoMigrate(&models.InvitationLog{})
	if err != nil {
		configslog.Log.Error("Failed to migrate invitation_logs table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Invitation_logs table migrated successfully")
	return nil
}
