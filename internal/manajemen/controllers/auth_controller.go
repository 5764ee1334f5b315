package controllers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	common "github.com/klinik-trah/klinik-backend/internal/common/middlewares"
	"github.com/klinik-trah/klinik-backend/internal/manajemen/services"
	"github.com/klinik-trah/klinik-backend/pkg/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login memverifikasi kredensial dan menerbitkan token JWT 24 jam.
func (ac *AuthController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Username dan password harus diisi",
			"data":    nil,
		})
	}

	sdm, err := ac.Service.Authenticate(req.Username, req.Password)
	if err == services.ErrInvalidCredentials {
		// Pesan yang sama untuk username tak dikenal dan password salah.
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Username atau password salah",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Terjadi kesalahan server: " + err.Error(),
			"data":    nil,
		})
	}

	role := ""
	if sdm.Role != nil {
		role = *sdm.Role
	}
	fullName := ""
	if sdm.FullName != nil {
		fullName = *sdm.FullName
	}

	token, err := utils.GenerateJWTToken(sdm.ID, sdm.Username, role, fullName, time.Now().Add(24*time.Hour))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal membuat token: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Login berhasil",
		"data": map[string]interface{}{
			"token": token,
			"user":  sdm,
		},
	})
}

// VerifyToken memvalidasi token dan mengambil ulang baris user aktif;
// akun yang sudah dinonaktifkan ditolak walau tokennya masih berlaku.
func (ac *AuthController) VerifyToken(c echo.Context) error {
	claims, ok := c.Get(string(common.ContextKeyClaims)).(*utils.Claims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Invalid or expired token",
			"data":    nil,
		})
	}

	sdm, err := ac.Service.GetActiveUser(claims.ID)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusForbidden, map[string]interface{}{
			"status":  http.StatusForbidden,
			"message": "User tidak ditemukan atau sudah dinonaktifkan",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Terjadi kesalahan server: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Token valid",
		"data":    map[string]interface{}{"user": sdm},
	})
}
