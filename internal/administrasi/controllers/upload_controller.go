package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MaxUploadSize membatasi ukuran satu file gambar (5 MB).
const MaxUploadSize = 5 * 1024 * 1024

// MaxUploadFiles membatasi jumlah file pada upload massal, satu per slot gambar.
const MaxUploadFiles = 17

type UploadController struct {
	UploadDir string
	BaseURL   string
}

func NewUploadController(uploadDir, baseURL string) *UploadController {
	return &UploadController{UploadDir: uploadDir, BaseURL: baseURL}
}

// saveImage memvalidasi ukuran dan tipe file lalu menyimpannya dengan nama
// acak. Validasi dilakukan sebelum ada tulisan ke disk.
func (uc *UploadController) saveImage(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi batas 5MB")
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("only image files are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(uc.UploadDir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(uc.UploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}

func (uc *UploadController) imageURL(filename string) string {
	return uc.BaseURL + "/uploads/" + filename
}

// UploadImage menerima satu file pada field "image".
func (uc *UploadController) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "No file uploaded",
			"data":    nil,
		})
	}

	filename, err := uc.saveImage(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "File uploaded successfully",
		"data": map[string]string{
			"image_url": uc.imageURL(filename),
			"filename":  filename,
		},
	})
}

// UploadImages menerima maksimal 17 file pada field "images". Semua file
// divalidasi lebih dulu; satu file gagal berarti seluruh request ditolak.
func (uc *UploadController) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "No files uploaded",
			"data":    nil,
		})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "No files uploaded",
			"data":    nil,
		})
	}
	if len(files) > MaxUploadFiles {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": fmt.Sprintf("Maksimal %d file per upload", MaxUploadFiles),
			"data":    nil,
		})
	}

	for _, file := range files {
		if file.Size > MaxUploadSize {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": "ukuran file melebihi batas 5MB",
				"data":    nil,
			})
		}
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": "only image files are allowed",
				"data":    nil,
			})
		}
	}

	imageURLs := make([]map[string]string, 0, len(files))
	for _, file := range files {
		filename, err := uc.saveImage(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Failed to upload files: " + err.Error(),
				"data":    nil,
			})
		}
		imageURLs = append(imageURLs, map[string]string{
			"url":      uc.imageURL(filename),
			"filename": filename,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Files uploaded successfully",
		"data":    map[string]interface{}{"image_urls": imageURLs},
	})
}
