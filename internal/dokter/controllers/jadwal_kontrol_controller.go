package controllers

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/klinik-trah/klinik-backend/internal/dokter/models"
	"github.com/klinik-trah/klinik-backend/internal/dokter/services"
)

type JadwalKontrolController struct {
	Service *services.JadwalKontrolService
}

func NewJadwalKontrolController(service *services.JadwalKontrolService) *JadwalKontrolController {
	return &JadwalKontrolController{Service: service}
}

// EnsureTable membuat tabel jadwal_kontrol bila belum ada.
func (jc *JadwalKontrolController) EnsureTable(c echo.Context) error {
	if err := jc.Service.EnsureTable(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Tabel jadwal_kontrol siap digunakan",
		"data":    nil,
	})
}

// ListByPatient mengembalikan jadwal kontrol satu pasien urut tanggal naik.
func (jc *JadwalKontrolController) ListByPatient(c echo.Context) error {
	jadwal, err := jc.Service.ListByPatient(c.Param("patientId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil jadwal kontrol: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Jadwal kontrol berhasil diambil",
		"data":    jadwal,
	})
}

func (jc *JadwalKontrolController) Create(c echo.Context) error {
	var req models.JadwalKontrolCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.PatientID == "" || req.TanggalKontrol == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Patient ID dan tanggal kontrol harus diisi",
			"data":    nil,
		})
	}

	jadwal, err := jc.Service.Create(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal membuat jadwal kontrol: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Jadwal kontrol berhasil dibuat",
		"data":    jadwal,
	})
}

func (jc *JadwalKontrolController) Update(c echo.Context) error {
	var req models.JadwalKontrolUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.TanggalKontrol == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Tanggal kontrol harus diisi",
			"data":    nil,
		})
	}

	jadwal, err := jc.Service.Update(c.Param("id"), req)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Jadwal kontrol tidak ditemukan",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal update jadwal kontrol: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Jadwal kontrol berhasil diupdate",
		"data":    jadwal,
	})
}

func (jc *JadwalKontrolController) Delete(c echo.Context) error {
	err := jc.Service.Delete(c.Param("id"))
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Jadwal kontrol tidak ditemukan",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus jadwal kontrol: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Jadwal kontrol berhasil dihapus",
		"data":    nil,
	})
}
