package main

import (
	"flag"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/database"
)

func main() {
	cfg := configs.LoadConfig()
	configslog.InitLogger(cfg.Env)
	defer configslog.Sync()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştır")
	seedFlag := flag.Bool("seed", false, "Seeder'ları çalıştır (sistem yöneticisi ve örnek gruplar)")
	flag.Parse()

	db := configs.InitDB(cfg)

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
