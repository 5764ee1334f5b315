package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/klinik-trah/klinik-backend/pkg/utils"
)

type contextKey string

const ContextKeyClaims contextKey = "claims"

// JWTMiddleware memvalidasi header Authorization Bearer dan menyimpan
// klaim ke context echo. Semua endpoint data wajib melewati middleware ini.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Access token required",
					"data":    nil,
				})
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Invalid authorization header",
					"data":    nil,
				})
			}
			claims, err := utils.ValidateJWTToken(parts[1])
			if err != nil {
				// Pesan generik; token kedaluwarsa dan token palsu tidak dibedakan.
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Invalid or expired token",
					"data":    nil,
				})
			}

			c.Set(string(ContextKeyClaims), claims)
			return next(c)
		}
	}
}
