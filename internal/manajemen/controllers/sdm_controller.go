package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"

	"github.com/klinik-trah/klinik-backend/internal/manajemen/models"
	"github.com/klinik-trah/klinik-backend/internal/manajemen/services"
)

type SDMController struct {
	Service *services.SDMService
}

func NewSDMController(service *services.SDMService) *SDMController {
	return &SDMController{Service: service}
}

func parseSDMID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// ListSDM mengembalikan seluruh SDM tanpa password.
func (sc *SDMController) ListSDM(c echo.Context) error {
	sdm, err := sc.Service.ListSDM()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil data SDM: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Data SDM berhasil diambil",
		"data":    sdm,
	})
}

// SearchSDM mencari pada nama, jabatan, role, dan username.
func (sc *SDMController) SearchSDM(c echo.Context) error {
	sdm, err := sc.Service.SearchSDM(c.QueryParam("term"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mencari SDM: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pencarian SDM berhasil",
		"data":    sdm,
	})
}

func (sc *SDMController) GetSDM(c echo.Context) error {
	id, err := parseSDMID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "ID tidak valid",
			"data":    nil,
		})
	}

	sdm, err := sc.Service.GetSDMByID(id)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "SDM not found",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil data SDM: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Data SDM berhasil diambil",
		"data":    sdm,
	})
}

// CreateSDM menambah user baru; hanya admin yang bisa mencapai handler ini.
func (sc *SDMController) CreateSDM(c echo.Context) error {
	var req models.SDMCreateRequest
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
	if req.Role != "" && !models.ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Role tidak dikenal",
			"data":    nil,
		})
	}

	sdm, err := sc.Service.CreateSDM(req)
	if err != nil {
		// Pelanggaran unique constraint pada username dilaporkan sebagai konflik.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": "Username sudah terdaftar",
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menambahkan SDM: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "SDM berhasil ditambahkan",
		"data":    sdm,
	})
}

// UpdateSDM mengubah subset field; password hanya di-hash ulang bila diisi.
func (sc *SDMController) UpdateSDM(c echo.Context) error {
	id, err := parseSDMID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "ID tidak valid",
			"data":    nil,
		})
	}

	var req models.SDMUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.Role != nil && !models.ValidRole(*req.Role) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Role tidak dikenal",
			"data":    nil,
		})
	}

	sdm, err := sc.Service.UpdateSDM(id, req)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "SDM not found",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengupdate SDM: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "SDM berhasil diupdate",
		"data":    sdm,
	})
}

// DeleteSDM menghapus user; kemampuan login hilang seketika.
func (sc *SDMController) DeleteSDM(c echo.Context) error {
	id, err := parseSDMID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "ID tidak valid",
			"data":    nil,
		})
	}

	err = sc.Service.DeleteSDM(id)
	if err == sql.ErrNoRows {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  http.StatusNotFound,
			"message": "SDM not found",
			"data":    nil,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus SDM: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "SDM berhasil dihapus",
		"data":    nil,
	})
}
