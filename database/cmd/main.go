package main

import (
	"flag"

	"fercullen.events/configs/configsapp"
	"fercullen.events/configs/configsdatabase"
	"fercullen.events/configs/configslog"
	"fercullen.events/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	cfg, err := configsapp.Load()
	if err != nil {
		configslog.Log.Fatal("Yapılandırma yüklenemedi", zap.Error(err))
	}

	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, cfg, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
