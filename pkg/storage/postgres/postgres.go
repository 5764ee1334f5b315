package postgres

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/klinik-trah/klinik-backend/config"
)

var (
	db   *sql.DB
	once sync.Once
)

// Connect membuka koneksi ke database PostgreSQL.
// Semua kredensial diambil dari file .env melalui config.go.
func Connect() *sql.DB {
	once.Do(func() {
		cfg := config.LoadConfig()
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)

		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("Gagal membuka koneksi ke database")
		}

		if err = db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("Gagal melakukan ping ke database")
		}

		log.Info().Str("database", cfg.DBName).Msg("Berhasil terhubung ke PostgreSQL")
	})

	return db
}

// GetDB mengembalikan instance koneksi database yang sudah terbentuk.
func GetDB() *sql.DB {
	return db
}
