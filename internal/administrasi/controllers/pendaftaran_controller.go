package controllers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/klinik-trah/klinik-backend/internal/administrasi/models"
	"github.com/klinik-trah/klinik-backend/internal/administrasi/services"
	"github.com/klinik-trah/klinik-backend/ws"
)

type PendaftaranController struct {
	Service *services.PendaftaranService
}

func NewPendaftaranController(service *services.PendaftaranService) *PendaftaranController {
	return &PendaftaranController{Service: service}
}

// broadcastAntrian mengirim perubahan antrian ke semua client WebSocket.
func broadcastAntrian(event string, p *models.Pendaftaran) {
	inner := map[string]interface{}{
		"event": event,
	}
	if p != nil {
		inner["id"] = p.ID
		inner["id_pendaftaran"] = p.IDPendaftaran
		inner["no_antrian"] = p.NoAntrian
		inner["patient_id"] = p.PatientID
		inner["pasien"] = p.Pasien
		inner["no_rekam_medik"] = p.NoRekamMedik
		inner["status"] = p.Status
	}
	wrapper := map[string]interface{}{
		"type": "antrian_update",
		"data": inner,
	}
	msg, err := json.Marshal(wrapper)
	if err != nil {
		return
	}
	ws.HubInstance.Broadcast <- msg
}

// ListPendaftaran mengembalikan seluruh kunjungan beserta data pasien.
func (pc *PendaftaranController) ListPendaftaran(c echo.Context) error {
	pendaftaran, err := pc.Service.ListPendaftaran()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil data pendaftaran: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Data pendaftaran berhasil diambil",
		"data":    pendaftaran,
	})
}

// ListPendaftaranByPatient memfilter kunjungan milik satu pasien.
func (pc *PendaftaranController) ListPendaftaranByPatient(c echo.Context) error {
	pendaftaran, err := pc.Service.ListPendaftaranByPatient(c.Param("patientId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil data pendaftaran pasien: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Data pendaftaran pasien berhasil diambil",
		"data":    pendaftaran,
	})
}

// CreatePendaftaran mendaftarkan kunjungan baru dengan status awal
// "Dalam Antrian" dan tanggal hari ini, apa pun isi payload.
func (pc *PendaftaranController) CreatePendaftaran(c echo.Context) error {
	var req models.PendaftaranCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.PatientID == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "patient_id harus diisi",
			"data":    nil,
		})
	}

	pendaftaran, err := pc.Service.CreatePendaftaran(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal membuat pendaftaran: " + err.Error(),
			"data":    nil,
		})
	}

	broadcastAntrian("created", pendaftaran)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pendaftaran berhasil dibuat",
		"data":    pendaftaran,
	})
}

// UpdatePendaftaran mengganti ruangan/dokter/pengantar dan updated_at.
func (pc *PendaftaranController) UpdatePendaftaran(c echo.Context) error {
	var req models.PendaftaranUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.PatientID == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "patient_id harus diisi",
			"data":    nil,
		})
	}

	pendaftaran, err := pc.Service.UpdatePendaftaran(c.Param("id"), req)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Registration not found",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengupdate pendaftaran: " + err.Error(),
			"data":    nil,
		})
	}

	broadcastAntrian("updated", pendaftaran)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pendaftaran berhasil diupdate",
		"data":    pendaftaran,
	})
}

// DeletePendaftaran membatalkan kunjungan.
func (pc *PendaftaranController) DeletePendaftaran(c echo.Context) error {
	id := c.Param("id")
	err := pc.Service.DeletePendaftaran(id)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "Registration not found",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus pendaftaran: " + err.Error(),
			"data":    nil,
		})
	}

	broadcastAntrian("deleted", &models.Pendaftaran{ID: id})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pendaftaran berhasil dihapus",
		"data":    nil,
	})
}
