package seeders

import (
	"errors"

	"fercullen.events/configs/configsapp"
	"fercullen.events/configs/configslog"
	"fercullen.events/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser yapılandırmadaki admin hesabını oluşturur. Kullanıcı
// zaten varsa dokunulmaz; şifre değişikliği yeniden seed ile yapılmaz.
func SeedAdminUser(db *gorm.DB, cfg *configsapp.Config) error {
	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}

	var existing models.User
	result := db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Admin kullanıcısı '%s' zaten mevcut, oluşturma atlanıyor.", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Admin kullanıcısı kontrol edilirken veritabanı hatası",
			zap.String("username", username),
			zap.Error(result.Error),
		)
		return result.Error
	}

	password := cfg.AdminPassword
	if password == "" {
		configslog.SLog.Warn("ADMIN_PASSWORD tanımlı değil, varsayılan şifre kullanılıyor. Üretimde mutlaka değiştirin!")
		password = "fercullen2025"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Admin şifresi hashlenemedi", zap.Error(err))
		return err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Admin kullanıcısı oluşturulamadı",
			zap.String("username", username),
			zap.Error(err),
		)
		return err
	}

	configslog.SLog.Infof("Admin kullanıcısı '%s' başarıyla oluşturuldu (ID: %d).", username, user.ID)
	return nil
}
