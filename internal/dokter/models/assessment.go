package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ICD10Item adalah satu diagnosis terpilih (subset gigi ICD-10).
type ICD10Item struct {
	Kode  string `json:"kode"`
	Nama  string `json:"nama"`
	Jenis string `json:"jenis"`
}

// ICD9Item adalah satu kode tindakan medis (subset gigi ICD-9).
type ICD9Item struct {
	Kode string `json:"kode"`
	Nama string `json:"nama"`
}

// ResepItem adalah satu baris resep obat.
type ResepItem struct {
	Nama   string `json:"nama"`
	Jumlah string `json:"jumlah"`
	Signa  string `json:"signa"`
}

// TindakanItem adalah satu baris tindakan yang dikerjakan beserta biayanya.
// Total selalu dihitung ulang di server dari Jumlah * Biaya.
type TindakanItem struct {
	Nama   string  `json:"nama"`
	Jumlah int     `json:"jumlah"`
	Biaya  float64 `json:"biaya"`
	Total  float64 `json:"total"`
}

// AssessmentFormData memuat anamnesis dan riwayat medis terstruktur.
type AssessmentFormData struct {
	KeluhanUtama        string `json:"keluhanUtama"`
	AlergiObat          string `json:"alergiObat"`
	AlergiObatDetail    string `json:"alergiObatDetail"`
	AlergiMakanan       string `json:"alergiMakanan"`
	AlergiMakananDetail string `json:"alergiMakananDetail"`
	TekananDarah        string `json:"tekananDarah"`
	PenyakitJantung     string `json:"penyakitJantung"`
	Hemofilia           string `json:"hemofilia"`
	Hepatitis           string `json:"hepatitis"`
	Gastritis           string `json:"gastritis"`
}

// AssessmentCreateRequest mengikuti bentuk payload form assessment.
type AssessmentCreateRequest struct {
	PatientID        string             `json:"patient_id"`
	FormData         AssessmentFormData `json:"formData"`
	SelectedICD10    []ICD10Item        `json:"selectedICD10"`
	SelectedICD9     []ICD9Item         `json:"selectedICD9"`
	SelectedTindakan []TindakanItem     `json:"selectedTindakan"`
	SelectedResep    []ResepItem        `json:"selectedResep"`
}

// AssessmentSummary adalah satu baris riwayat: waktu, dokter, label satu baris.
type AssessmentSummary struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	Dokter     string    `json:"dokter"`
	Assessment string    `json:"assessment"`
	Waktu      time.Time `json:"waktu"`
}

// Assessment adalah detail lengkap satu catatan klinis.
type Assessment struct {
	AssessmentSummary
	KeluhanUtama        *string        `json:"keluhan_utama"`
	AlergiObat          *string        `json:"alergi_obat"`
	AlergiObatDetail    *string        `json:"alergi_obat_detail"`
	AlergiMakanan       *string        `json:"alergi_makanan"`
	AlergiMakananDetail *string        `json:"alergi_makanan_detail"`
	TekananDarah        *string        `json:"tekanan_darah"`
	PenyakitJantung     *string        `json:"penyakit_jantung"`
	Hemofilia           *string        `json:"hemofilia"`
	Hepatitis           *string        `json:"hepatitis"`
	Gastritis           *string        `json:"gastritis"`
	SelectedICD10       []ICD10Item    `json:"selected_icd10"`
	SelectedICD9        []ICD9Item     `json:"selected_icd9"`
	SelectedTindakan    []TindakanItem `json:"selected_tindakan"`
	SelectedResep       []ResepItem    `json:"selected_resep"`
	TindakanTotal       float64        `json:"tindakan_total"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Validate memastikan setiap baris daftar klinis memiliki field wajibnya
// sebelum diserialisasi ke database.
func (r *AssessmentCreateRequest) Validate() error {
	if r.PatientID == "" {
		return fmt.Errorf("patient_id harus diisi")
	}
	for _, item := range r.SelectedICD10 {
		if item.Kode == "" || item.Nama == "" {
			return fmt.Errorf("item ICD-10 harus memiliki kode dan nama")
		}
	}
	for _, item := range r.SelectedICD9 {
		if item.Kode == "" || item.Nama == "" {
			return fmt.Errorf("item ICD-9 harus memiliki kode dan nama")
		}
	}
	for _, item := range r.SelectedResep {
		if item.Nama == "" || item.Jumlah == "" || item.Signa == "" {
			return fmt.Errorf("baris resep harus memiliki nama, jumlah, dan signa")
		}
	}
	for _, item := range r.SelectedTindakan {
		if item.Nama == "" || item.Jumlah <= 0 || item.Biaya < 0 {
			return fmt.Errorf("baris tindakan harus memiliki nama, jumlah positif, dan biaya")
		}
	}
	return nil
}

// NormalizeTindakan menghitung ulang total tiap baris dari jumlah * biaya
// lalu mengembalikan total tagihan. Total kiriman client diabaikan.
func NormalizeTindakan(items []TindakanItem) ([]TindakanItem, float64) {
	var total float64
	normalized := make([]TindakanItem, len(items))
	for i, item := range items {
		item.Total = float64(item.Jumlah) * item.Biaya
		normalized[i] = item
		total += item.Total
	}
	return normalized, total
}

// AssessmentLabel membentuk label satu baris untuk riwayat: gabungan nama
// diagnosis ICD-10, atau keluhan utama bila tidak ada diagnosis terpilih.
func AssessmentLabel(icd10 []ICD10Item, keluhanUtama string) string {
	if len(icd10) == 0 {
		return keluhanUtama
	}
	names := make([]string, len(icd10))
	for i, item := range icd10 {
		names[i] = item.Nama
	}
	return strings.Join(names, ", ")
}

// MarshalList menserialisasi daftar klinis ke JSON untuk kolom jsonb.
// Daftar kosong tetap disimpan sebagai array kosong, bukan null.
func MarshalList(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return []byte("[]"), nil
	}
	return data, nil
}
