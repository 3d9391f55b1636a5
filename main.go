package main

import (
	"fercullen.events/configs/configsapp"
	"fercullen.events/configs/configsdatabase"
	"fercullen.events/configs/configslog"
	"fercullen.events/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configsapp.Load()
	if err != nil {
		configslog.Log.Fatal("Yapılandırma yüklenemedi", zap.Error(err))
	}

	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName: "Fercullen Events",
		Views:   engine,
	})

	routes.SetupRoutes(app, cfg)

	configslog.SLog.Infof("Sunucu %s portunda başlatılıyor...", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
