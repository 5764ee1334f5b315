package utils

import (
	"os"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "rahasia-test")
	defer os.Unsetenv("JWT_SECRET")

	token, err := GenerateJWTToken(7, "drg.sari", "dokter", "drg. Sari Wijaya", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateJWTToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ID != 7 {
		t.Errorf("expected id 7, got %d", claims.ID)
	}
	if claims.Username != "drg.sari" {
		t.Errorf("expected username drg.sari, got %s", claims.Username)
	}
	if claims.Role != "dokter" {
		t.Errorf("expected role dokter, got %s", claims.Role)
	}
	if claims.FullName != "drg. Sari Wijaya" {
		t.Errorf("expected full name, got %s", claims.FullName)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "rahasia-test")
	defer os.Unsetenv("JWT_SECRET")

	token, err := GenerateJWTToken(1, "admin", "admin", "Admin", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ValidateJWTToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "rahasia-test")
	token, err := GenerateJWTToken(1, "admin", "admin", "Admin", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	os.Setenv("JWT_SECRET", "rahasia-lain")
	defer os.Unsetenv("JWT_SECRET")

	if _, err := ValidateJWTToken(token); err == nil {
		t.Fatal("expected error for token signed with different secret")
	}
}

func TestGenerateTokenMissingSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	if _, err := GenerateJWTToken(1, "admin", "admin", "Admin", time.Now().Add(time.Hour)); err == nil {
		t.Fatal("expected error when JWT secret is missing")
	}
}
