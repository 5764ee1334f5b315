package controllers

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/klinik-trah/klinik-backend/internal/administrasi/models"
	"github.com/klinik-trah/klinik-backend/internal/administrasi/services"
)

type PasienController struct {
	Service *services.PasienService
}

func NewPasienController(service *services.PasienService) *PasienController {
	return &PasienController{Service: service}
}

// ListPasien mengembalikan seluruh pasien, terbaru lebih dulu.
func (pc *PasienController) ListPasien(c echo.Context) error {
	pasien, err := pc.Service.ListPasien()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil data pasien: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Data pasien berhasil diambil",
		"data":    pasien,
	})
}

// SearchPasien mencari berdasarkan nama atau nomor rekam medik.
func (pc *PasienController) SearchPasien(c echo.Context) error {
	term := c.QueryParam("term")
	pasien, err := pc.Service.SearchPasien(term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mencari pasien: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pencarian pasien berhasil",
		"data":    pasien,
	})
}

func (pc *PasienController) GetPasien(c echo.Context) error {
	pasien, err := pc.Service.GetPasienByID(c.Param("id"))
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Patient not found",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil data pasien: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Data pasien berhasil diambil",
		"data":    pasien,
	})
}

// CreatePasien menyimpan pasien baru. Nomor rekam medik wajib sudah
// didapat dari POST /generate-rekam-medik.
func (pc *PasienController) CreatePasien(c echo.Context) error {
	var req models.PasienCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.RekamMedik == "" || req.NamaLengkap == nil || *req.NamaLengkap == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "rekam_medik dan nama_lengkap harus diisi",
			"data":    nil,
		})
	}

	pasien, err := pc.Service.CreatePasien(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mendaftarkan pasien: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil didaftarkan",
		"data":    pasien,
	})
}

// UpdatePasien menerapkan partial update pada kolom yang dikirim saja.
func (pc *PasienController) UpdatePasien(c echo.Context) error {
	var patch models.PasienPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if cols, _ := patch.Columns(); len(cols) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Tidak ada kolom yang diupdate",
			"data":    nil,
		})
	}

	pasien, err := pc.Service.UpdatePasien(c.Param("id"), patch)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Patient not found",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengupdate pasien: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil diupdate",
		"data":    pasien,
	})
}

// DeletePasien menghapus pasien beserta seluruh kunjungannya (cascade).
func (pc *PasienController) DeletePasien(c echo.Context) error {
	err := pc.Service.DeletePasien(c.Param("id"))
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Patient not found",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus pasien: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil dihapus",
		"data":    nil,
	})
}

// GenerateRekamMedik meminta nomor rekam medik baru dari database.
func (pc *PasienController) GenerateRekamMedik(c echo.Context) error {
	rekamMedik, err := pc.Service.GenerateRekamMedik()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal generate rekam medik: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Rekam medik berhasil digenerate",
		"data":    map[string]string{"rekam_medik": rekamMedik},
	})
}
