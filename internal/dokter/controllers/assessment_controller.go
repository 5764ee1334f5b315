package controllers

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	common "github.com/klinik-trah/klinik-backend/internal/common/middlewares"
	"github.com/klinik-trah/klinik-backend/internal/dokter/models"
	"github.com/klinik-trah/klinik-backend/internal/dokter/services"
	"github.com/klinik-trah/klinik-backend/pkg/utils"
)

type AssessmentController struct {
	Service *services.AssessmentService
}

func NewAssessmentController(service *services.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: service}
}

// EnsureTable membuat tabel assessments bila belum ada (bootstrap schema).
func (ac *AssessmentController) EnsureTable(c echo.Context) error {
	if err := ac.Service.EnsureTable(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Tabel assessments siap digunakan",
		"data":    nil,
	})
}

// ListHistory mengembalikan ringkasan riwayat assessment satu pasien.
func (ac *AssessmentController) ListHistory(c echo.Context) error {
	history, err := ac.Service.ListHistoryByPatient(c.Param("patientId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil riwayat assessment: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Riwayat assessment berhasil diambil",
		"data":    history,
	})
}

// GetDetail mengembalikan detail lengkap satu assessment.
func (ac *AssessmentController) GetDetail(c echo.Context) error {
	assessment, err := ac.Service.GetByID(c.Param("id"))
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Assessment tidak ditemukan",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil assessment: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Assessment berhasil diambil",
		"data":    assessment,
	})
}

// Create menyimpan catatan klinis baru. Nama dokter diambil dari token,
// bukan dari payload.
func (ac *AssessmentController) Create(c echo.Context) error {
	var req models.AssessmentCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": err.Error(),
			"data":    nil,
		})
	}

	dokter := ""
	if claims, ok := c.Get(string(common.ContextKeyClaims)).(*utils.Claims); ok && claims != nil {
		dokter = claims.FullName
	}

	assessment, err := ac.Service.Create(req, dokter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menyimpan assessment: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Assessment berhasil disimpan",
		"data":    assessment,
	})
}

// Update mengganti isi satu catatan. Riwayat biasanya append-only; jalur ini
// ada untuk koreksi entri yang salah ketik.
func (ac *AssessmentController) Update(c echo.Context) error {
	var req models.AssessmentCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": err.Error(),
			"data":    nil,
		})
	}

	assessment, err := ac.Service.Update(c.Param("id"), req)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Assessment tidak ditemukan",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memperbarui assessment: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Assessment berhasil diperbarui",
		"data":    assessment,
	})
}

func (ac *AssessmentController) Delete(c echo.Context) error {
	err := ac.Service.Delete(c.Param("id"))
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Assessment tidak ditemukan",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus assessment: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Assessment berhasil dihapus",
		"data":    nil,
	})
}
