package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/database"
	"dugun.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()
	configslog.InitLogger(cfg.Env)
	defer configslog.Sync()

	migrateFlag := flag.Bool("migrate", false, "Açılışta veritabanı migrasyonlarını çalıştır")
	seedFlag := flag.Bool("seed", false, "Açılışta seeder'ları çalıştır")
	flag.Parse()

	db := configs.InitDB(cfg)
	if *migrateFlag || *seedFlag {
		database.Initialize(db, *migrateFlag, *seedFlag)
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "dugun.link",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				configslog.Log.Error("Beklenmeyen sunucu hatası", zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Static("/static", "./static")
	routes.SetupRoutes(app)

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde açık istekler bitene
	// kadar bekle, sonra kapat.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Sunucu %s portunda dinliyor...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}

	configslog.SLog.Info("Sunucu kapatıldı.")
}
