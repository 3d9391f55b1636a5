package configsapp

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config uygulamanın tüm ortam yapılandırmasını tutar.
type Config struct {
	AppPort string
	BaseURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	// Seeder'ın oluşturacağı varsayılan admin hesabı
	AdminUsername string
	AdminPassword string

	MailHost       string
	MailPort       int
	MailUsername   string
	MailPassword   string
	MailEncryption string
	MailFrom       string
}

// DSN GORM/Postgres bağlantı cümlesini üretir.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Load .env dosyasını (varsa) yükler ve ortam değişkenlerini doğrulayarak okur.
func Load() (*Config, error) {
	// .env bulunamazsa sorun değil; değişkenler ortamdan da gelebilir.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppPort = getEnvOrDefault("APP_PORT", "3000")
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("APP_BASE_URL")), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.AppPort
	}

	cfg.DBHost = getEnvOrDefault("DB_HOST", "localhost")
	cfg.DBPort = getEnvOrDefault("DB_PORT", "5432")
	cfg.DBUser = getEnvOrDefault("DB_USER", "postgres")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = getEnvOrDefault("DB_NAME", "fercullen")
	cfg.DBSSLMode = getEnvOrDefault("DB_SSLMODE", "disable")

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET tanımlı olmalı")
	}

	cfg.AdminUsername = getEnvOrDefault("ADMIN_USERNAME", "admin")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	cfg.MailHost = os.Getenv("MAIL_HOST")
	mailPort, err := strconv.Atoi(getEnvOrDefault("MAIL_PORT", "465"))
	if err != nil {
		return nil, fmt.Errorf("MAIL_PORT sayı olmalı: %w", err)
	}
	cfg.MailPort = mailPort
	cfg.MailUsername = os.Getenv("MAIL_USERNAME")
	cfg.MailPassword = os.Getenv("MAIL_PASSWORD")
	cfg.MailEncryption = getEnvOrDefault("MAIL_ENCRYPTION", "ssl")
	cfg.MailFrom = getEnvOrDefault("MAIL_FROM", cfg.MailUsername)

	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
