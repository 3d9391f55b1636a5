package migrations

import (
	"fercullen.events/configs/configslog"
	"fercullen.events/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSerialCountersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating serial_counters table...")
	err := db.AutoMigrate(&models.SerialCounter{})
	if err != nil {
		configslog.Log.Error("Failed to migrate serial_counters table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Serial_counters table migrated successfully")
	return nil
}
