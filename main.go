package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/klinik-trah/klinik-backend/config"
	dokterServices "github.com/klinik-trah/klinik-backend/internal/dokter/services"
	"github.com/klinik-trah/klinik-backend/internal/routes"
	"github.com/klinik-trah/klinik-backend/pkg/storage/postgres"
)

func main() {
	cfg := config.LoadConfig()

	// Logger JSON di produksi, console writer saat development.
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.AppEnv != "production" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	log.Logger = logger

	db := postgres.Connect()

	// Schema inti + fungsi generator di sisi database.
	if err := postgres.Bootstrap(db); err != nil {
		log.Fatal().Err(err).Msg("Bootstrap schema gagal")
	}

	// Tabel jadwal kontrol, assessment, dan referensi ICD dibuat di awal
	// supaya endpoint ensure-table tinggal memastikan ulang.
	if err := dokterServices.NewJadwalKontrolService(db).EnsureTable(); err != nil {
		log.Fatal().Err(err).Msg("Bootstrap tabel jadwal_kontrol gagal")
	}
	if err := dokterServices.NewAssessmentService(db).EnsureTable(); err != nil {
		log.Fatal().Err(err).Msg("Bootstrap tabel assessments gagal")
	}
	if err := dokterServices.NewICDService(db).EnsureTables(); err != nil {
		log.Fatal().Err(err).Msg("Bootstrap tabel referensi ICD gagal")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	routes.Init(e, db, cfg.UploadDir, cfg.BaseURL)

	log.Info().Str("port", cfg.Port).Msg("Server berjalan")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server berhenti")
	}
}
