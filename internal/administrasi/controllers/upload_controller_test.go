package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func multipartBody(t *testing.T, field string, files []struct {
	name        string
	contentType string
	content     []byte
}) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := part.Write(f.content); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return body, writer.FormDataContentType()
}

func uploadContext(t *testing.T, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return resp
}

func TestUploadImage_Success(t *testing.T) {
	uc := NewUploadController(t.TempDir(), "http://localhost:3001")

	body, contentType := multipartBody(t, "image", []struct {
		name        string
		contentType string
		content     []byte
	}{{"foto.png", "image/png", []byte("png-bytes")}})

	c, rec := uploadContext(t, body, contentType)
	if err := uc.UploadImage(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec)
	data, _ := resp["data"].(map[string]interface{})
	filename, _ := data["filename"].(string)
	if filename == "" || !strings.HasSuffix(filename, ".png") {
		t.Fatalf("expected generated .png filename, got %q", filename)
	}
	if filename == "foto.png" {
		t.Error("filename must be randomized, not the client name")
	}
	url, _ := data["image_url"].(string)
	if url != "http://localhost:3001/uploads/"+filename {
		t.Errorf("unexpected image_url: %s", url)
	}

	saved, err := os.ReadFile(filepath.Join(uc.UploadDir, filename))
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(saved) != "png-bytes" {
		t.Errorf("unexpected file content: %s", saved)
	}
}

func TestUploadImage_NoFile(t *testing.T) {
	uc := NewUploadController(t.TempDir(), "http://localhost:3001")

	body, contentType := multipartBody(t, "bukan-image", []struct {
		name        string
		contentType string
		content     []byte
	}{{"foto.png", "image/png", []byte("x")}})

	c, rec := uploadContext(t, body, contentType)
	if err := uc.UploadImage(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUploadImage_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	uc := NewUploadController(dir, "http://localhost:3001")

	body, contentType := multipartBody(t, "image", []struct {
		name        string
		contentType string
		content     []byte
	}{{"catatan.pdf", "application/pdf", []byte("%PDF-1.4")}})

	c, rec := uploadContext(t, body, contentType)
	if err := uc.UploadImage(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Tidak boleh ada file yang sempat tertulis.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files written, found %d", len(entries))
	}
}

func TestUploadImages_Success(t *testing.T) {
	dir := t.TempDir()
	uc := NewUploadController(dir, "http://localhost:3001")

	body, contentType := multipartBody(t, "images", []struct {
		name        string
		contentType string
		content     []byte
	}{
		{"a.jpg", "image/jpeg", []byte("jpg-a")},
		{"b.jpg", "image/jpeg", []byte("jpg-b")},
	})

	c, rec := uploadContext(t, body, contentType)
	if err := uc.UploadImages(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec)
	data, _ := resp["data"].(map[string]interface{})
	urls, _ := data["image_urls"].([]interface{})
	if len(urls) != 2 {
		t.Fatalf("expected 2 image_urls, got %d", len(urls))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 files on disk, found %d", len(entries))
	}
}

func TestUploadImages_OneBadFileRejectsAll(t *testing.T) {
	dir := t.TempDir()
	uc := NewUploadController(dir, "http://localhost:3001")

	body, contentType := multipartBody(t, "images", []struct {
		name        string
		contentType string
		content     []byte
	}{
		{"a.jpg", "image/jpeg", []byte("jpg-a")},
		{"b.txt", "text/plain", []byte("teks")},
	})

	c, rec := uploadContext(t, body, contentType)
	if err := uc.UploadImages(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files written, found %d", len(entries))
	}
}

func TestUploadImages_TooManyFiles(t *testing.T) {
	uc := NewUploadController(t.TempDir(), "http://localhost:3001")

	var files []struct {
		name        string
		contentType string
		content     []byte
	}
	for i := 0; i < MaxUploadFiles+1; i++ {
		files = append(files, struct {
			name        string
			contentType string
			content     []byte
		}{"f.jpg", "image/jpeg", []byte("x")})
	}
	body, contentType := multipartBody(t, "images", files)

	c, rec := uploadContext(t, body, contentType)
	if err := uc.UploadImages(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
