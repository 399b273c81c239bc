package configslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log uygulama genelinde kullanılan yapısal logger.
// SLog ise printf tarzı loglama için sugared versiyonu.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger ortam ismine göre zap logger'ı hazırlar.
// "prod" dışındaki ortamlarda development config kullanılır (renkli, okunabilir çıktı).
func InitLogger(env string) {
	var (
		logger *zap.Logger
		err    error
	)

	if env == "prod" || env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger, err = cfg.Build()
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = cfg.Build()
	}
	if err != nil {
		// Logger kurulamazsa uygulama devam edemez.
		panic("logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// Sync buffer'daki logları flush eder. main içinde defer ile çağrılır.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

func init() {
	// InitLogger çağrılmadan loglama yapılırsa nil pointer olmasın diye
	// varsayılan olarak no-op logger atanır.
	Log = zap.NewNop()
	SLog = Log.Sugar()
}
