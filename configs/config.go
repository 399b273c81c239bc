package configs

import (
	"fmt"
	"os"
	"strconv"

	"dugun.link/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config uygulamanın tüm çalışma zamanı ayarlarını tutar.
// Her alan bir ortam değişkenine karşılık gelir.
type Config struct {
	Env  string // dev | prod
	Port string // HTTP portu

	// Veritabanı (PostgreSQL)
	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	// Oturum
	SessionSecret string

	// SMTP (davetiye e-postaları için)
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	// Site ve etkinlik bilgileri (sayfalar ve e-posta şablonu kullanır)
	SiteBaseURL         string
	CoupleNames         string // örn. "Elif & Mert"
	WeddingDate         string // örn. "11 Ekim 2025, Cumartesi 14:00"
	CeremonyVenue       string
	ReceptionVenue      string
	InvitationImagePath string // opsiyonel; e-postaya gömülecek davetiye görseli

	// Seed edilecek sistem yöneticisi
	AdminEmail    string
	AdminPassword string
}

var appConfig *Config

// LoadConfig .env dosyasını (varsa) okur ve Config'i doldurur.
// Zorunlu değişkenler eksikse uygulama başlatılmaz.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		// .env yoksa sorun değil; değişkenler ortamdan gelebilir.
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}

	cfg := &Config{
		Env:  getEnv("APP_ENV", "dev"),
		Port: getEnv("APP_PORT", "3000"),

		DBHost: mustEnv("DB_HOST"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: mustEnv("DB_USER"),
		DBPass: os.Getenv("DB_PASS"), // boş olabilir
		DBName: mustEnv("DB_NAME"),

		SessionSecret: mustEnv("SESSION_SECRET"),

		SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: getEnvInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: getEnv("MAIL_FROM", os.Getenv("SMTP_USER")),

		SiteBaseURL:         getEnv("SITE_BASE_URL", "http://localhost:3000"),
		CoupleNames:         getEnv("COUPLE_NAMES", "Elif & Mert"),
		WeddingDate:         getEnv("WEDDING_DATE", ""),
		CeremonyVenue:       getEnv("CEREMONY_VENUE", ""),
		ReceptionVenue:      getEnv("RECEPTION_VENUE", ""),
		InvitationImagePath: os.Getenv("INVITATION_IMAGE_PATH"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@dugun.link"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	appConfig = cfg
	return cfg
}

// GetConfig yüklenmiş konfigürasyonu döndürür. LoadConfig çağrılmadan
// kullanılırsa ortamdan yükler.
func GetConfig() *Config {
	if appConfig == nil {
		return LoadConfig()
	}
	return appConfig
}

// SetConfig testlerde global konfigürasyonu değiştirmek için kullanılır;
// LoadConfig'in zorunlu ortam değişkeni kontrollerini devre dışı bırakır.
func SetConfig(cfg *Config) {
	appConfig = cfg
}

// DSN GORM için PostgreSQL bağlantı cümlesini üretir.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		configslog.Log.Warn("Sayısal ortam değişkeni okunamadı, varsayılan kullanılıyor",
			zap.String("key", key), zap.String("value", v))
		return def
	}
	return n
}

// mustEnv zorunlu bir ortam değişkenini okur; yoksa uygulamayı durdurur.
func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		configslog.Log.Fatal("Zorunlu ortam değişkeni eksik", zap.String("key", key))
	}
	return v
}
