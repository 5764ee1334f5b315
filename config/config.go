package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv     string
	Port       string
	BaseURL    string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string
	JWTSecret  string
	UploadDir  string
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig memuat konfigurasi dari file .env (jika ada) atau environment variables.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Warn().Msg("File .env tidak ditemukan, menggunakan environment variables")
		}
		cfg = &Config{
			AppEnv:     os.Getenv("APP_ENV"),
			Port:       getEnv("PORT", "3001"),
			BaseURL:    getEnv("BASE_URL", "http://localhost:3001"),
			DBUser:     os.Getenv("DB_USER"),
			DBPassword: os.Getenv("DB_PASSWORD"),
			DBHost:     getEnv("DB_HOST", "localhost"),
			DBPort:     getEnv("DB_PORT", "5432"),
			DBName:     getEnv("DB_NAME", "klinik_trah"),
			DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
			JWTSecret:  os.Getenv("JWT_SECRET"),
			UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		}
	})
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
