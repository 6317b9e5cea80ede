package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort      string
	DatabaseDSN   string
	JWTSecret     string
	CORSOrigins   string
	UploadPath    string // Yüklenen görsellerin kaydedileceği klasör
	MaxUploadSize int64  // Byte cinsinden (varsayılan 5MB)
}

func Load() *Config {
	// .env varsa yükle, yoksa ortam değişkenleriyle devam et
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env dosyası bulunamadı, ortam değişkenleri kullanılıyor")
	}

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=foodcourt port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		UploadPath:    getEnv("UPLOAD_PATH", "./photos"),
		MaxUploadSize: getEnvInt64("MAX_UPLOAD_SIZE", 5*1024*1024),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		logrus.Fatal("JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.CORSOrigins == "http://localhost:3000" {
		logrus.Warn("CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
		logrus.WithField("key", key).Warn("Geçersiz sayısal değer, varsayılan kullanılıyor")
	}
	return def
}
