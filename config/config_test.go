package config

import (
	"os"
	"testing"
)

func TestGetEnv_Set(t *testing.T) {
	os.Setenv("TEST_CONFIG_KEY", "nilai")
	defer os.Unsetenv("TEST_CONFIG_KEY")

	if v := getEnv("TEST_CONFIG_KEY", "default"); v != "nilai" {
		t.Errorf("expected nilai, got %s", v)
	}
}

func TestGetEnv_Fallback(t *testing.T) {
	os.Unsetenv("TEST_CONFIG_MISSING")
	if v := getEnv("TEST_CONFIG_MISSING", "default"); v != "default" {
		t.Errorf("expected default, got %s", v)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DB_PORT")
	os.Setenv("DB_USER", "klinik")
	defer os.Unsetenv("DB_USER")

	cfg := LoadConfig()
	if cfg.Port != "3001" {
		t.Errorf("expected default port 3001, got %s", cfg.Port)
	}
	if cfg.DBPort != "5432" {
		t.Errorf("expected default DB port 5432, got %s", cfg.DBPort)
	}
	if cfg.DBUser != "klinik" {
		t.Errorf("expected DB user klinik, got %s", cfg.DBUser)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("expected default upload dir, got %s", cfg.UploadDir)
	}

	// Pemanggilan kedua mengembalikan instance yang sama.
	if LoadConfig() != cfg {
		t.Error("LoadConfig must return the same instance")
	}
}
