package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/klinik-trah/klinik-backend/pkg/utils"
)

func newContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	c, rec := newContext(t, "")
	if err := JWTMiddleware()(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestJWTMiddleware_InvalidScheme(t *testing.T) {
	c, rec := newContext(t, "Basic abc123")
	if err := JWTMiddleware()(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "rahasia-test")
	defer os.Unsetenv("JWT_SECRET")

	c, rec := newContext(t, "Bearer bukan-token")
	if err := JWTMiddleware()(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "rahasia-test")
	defer os.Unsetenv("JWT_SECRET")

	token, err := utils.GenerateJWTToken(3, "perawat1", "perawat", "Ani", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, rec := newContext(t, "Bearer "+token)
	if err := JWTMiddleware()(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	claims, ok := c.Get(string(ContextKeyClaims)).(*utils.Claims)
	if !ok || claims == nil {
		t.Fatal("expected claims in context")
	}
	if claims.Username != "perawat1" {
		t.Errorf("expected username perawat1, got %s", claims.Username)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	c, rec := newContext(t, "")
	c.Set(string(ContextKeyClaims), &utils.Claims{ID: 2, Username: "dokter1", Role: "dokter"})

	if err := RequireRole("admin")(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	c, rec := newContext(t, "")
	c.Set(string(ContextKeyClaims), &utils.Claims{ID: 1, Username: "admin", Role: "admin"})

	if err := RequireRole("admin")(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_MissingClaims(t *testing.T) {
	c, rec := newContext(t, "")

	if err := RequireRole("admin")(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
