package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/klinik-trah/klinik-backend/internal/dokter/services"
)

// ICDController melayani lookup/autocomplete referensi ICD-10 dan ICD-9.
type ICDController struct {
	Service *services.ICDService
}

func NewICDController(service *services.ICDService) *ICDController {
	return &ICDController{Service: service}
}

func (ic *ICDController) ListICD10(c echo.Context) error {
	items, err := ic.Service.ListICD10()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil referensi ICD-10: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Referensi ICD-10 berhasil diambil",
		"data":    items,
	})
}

func (ic *ICDController) SearchICD10(c echo.Context) error {
	items, err := ic.Service.SearchICD10(c.QueryParam("term"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mencari referensi ICD-10: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pencarian ICD-10 berhasil",
		"data":    items,
	})
}

func (ic *ICDController) ListICD9(c echo.Context) error {
	items, err := ic.Service.ListICD9()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil referensi ICD-9: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Referensi ICD-9 berhasil diambil",
		"data":    items,
	})
}

func (ic *ICDController) SearchICD9(c echo.Context) error {
	items, err := ic.Service.SearchICD9(c.QueryParam("term"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mencari referensi ICD-9: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pencarian ICD-9 berhasil",
		"data":    items,
	})
}
