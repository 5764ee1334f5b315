package services

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/klinik-trah/klinik-backend/internal/dokter/models"
)

type AssessmentService struct {
	DB *sql.DB
}

func NewAssessmentService(db *sql.DB) *AssessmentService {
	return &AssessmentService{DB: db}
}

// EnsureTable membuat tabel assessments bila belum ada. Idempotent.
func (s *AssessmentService) EnsureTable() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS assessments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			patient_id UUID NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
			dokter TEXT NOT NULL,
			assessment TEXT NOT NULL,
			waktu TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			keluhan_utama TEXT,
			alergi_obat TEXT,
			alergi_obat_detail TEXT,
			alergi_makanan TEXT,
			alergi_makanan_detail TEXT,
			tekanan_darah TEXT,
			penyakit_jantung TEXT,
			hemofilia TEXT,
			hepatitis TEXT,
			gastritis TEXT,
			selected_icd10 JSONB NOT NULL DEFAULT '[]',
			selected_icd9 JSONB NOT NULL DEFAULT '[]',
			selected_tindakan JSONB NOT NULL DEFAULT '[]',
			selected_resep JSONB NOT NULL DEFAULT '[]',
			tindakan_total NUMERIC NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("gagal membuat tabel assessments: %v", err)
	}
	return nil
}

const assessmentColumns = `id, patient_id, dokter, assessment, waktu,
	keluhan_utama, alergi_obat, alergi_obat_detail, alergi_makanan, alergi_makanan_detail,
	tekanan_darah, penyakit_jantung, hemofilia, hepatitis, gastritis,
	selected_icd10, selected_icd9, selected_tindakan, selected_resep,
	tindakan_total, created_at, updated_at`

func scanAssessment(row rowScanner) (*models.Assessment, error) {
	var a models.Assessment
	var icd10Raw, icd9Raw, tindakanRaw, resepRaw []byte
	err := row.Scan(
		&a.ID, &a.PatientID, &a.Dokter, &a.Assessment, &a.Waktu,
		&a.KeluhanUtama, &a.AlergiObat, &a.AlergiObatDetail, &a.AlergiMakanan, &a.AlergiMakananDetail,
		&a.TekananDarah, &a.PenyakitJantung, &a.Hemofilia, &a.Hepatitis, &a.Gastritis,
		&icd10Raw, &icd9Raw, &tindakanRaw, &resepRaw,
		&a.TindakanTotal, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(icd10Raw, &a.SelectedICD10); err != nil {
		return nil, fmt.Errorf("kolom selected_icd10 rusak: %v", err)
	}
	if err := json.Unmarshal(icd9Raw, &a.SelectedICD9); err != nil {
		return nil, fmt.Errorf("kolom selected_icd9 rusak: %v", err)
	}
	if err := json.Unmarshal(tindakanRaw, &a.SelectedTindakan); err != nil {
		return nil, fmt.Errorf("kolom selected_tindakan rusak: %v", err)
	}
	if err := json.Unmarshal(resepRaw, &a.SelectedResep); err != nil {
		return nil, fmt.Errorf("kolom selected_resep rusak: %v", err)
	}
	return &a, nil
}

// ListHistoryByPatient mengembalikan ringkasan riwayat assessment satu
// pasien, urut kronologis dari yang paling lama.
func (s *AssessmentService) ListHistoryByPatient(patientID string) ([]models.AssessmentSummary, error) {
	rows, err := s.DB.Query(`
		SELECT id, patient_id, dokter, assessment, waktu
		FROM assessments
		WHERE patient_id = $1
		ORDER BY waktu ASC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.AssessmentSummary{}
	for rows.Next() {
		var sum models.AssessmentSummary
		if err := rows.Scan(&sum.ID, &sum.PatientID, &sum.Dokter, &sum.Assessment, &sum.Waktu); err != nil {
			return nil, err
		}
		result = append(result, sum)
	}
	return result, rows.Err()
}

func (s *AssessmentService) GetByID(id string) (*models.Assessment, error) {
	return scanAssessment(s.DB.QueryRow(
		"SELECT "+assessmentColumns+" FROM assessments WHERE id = $1", id))
}

// Create menyimpan catatan klinis baru. Daftar ICD/resep/tindakan disimpan
// sebagai jsonb dengan skema tetap; total tindakan dihitung ulang di server.
func (s *AssessmentService) Create(req models.AssessmentCreateRequest, dokter string) (*models.Assessment, error) {
	tindakan, total := models.NormalizeTindakan(req.SelectedTindakan)
	label := models.AssessmentLabel(req.SelectedICD10, req.FormData.KeluhanUtama)

	icd10JSON, err := models.MarshalList(req.SelectedICD10)
	if err != nil {
		return nil, err
	}
	icd9JSON, err := models.MarshalList(req.SelectedICD9)
	if err != nil {
		return nil, err
	}
	tindakanJSON, err := models.MarshalList(tindakan)
	if err != nil {
		return nil, err
	}
	resepJSON, err := models.MarshalList(req.SelectedResep)
	if err != nil {
		return nil, err
	}

	return scanAssessment(s.DB.QueryRow(`
		INSERT INTO assessments (
			patient_id, dokter, assessment,
			keluhan_utama, alergi_obat, alergi_obat_detail, alergi_makanan, alergi_makanan_detail,
			tekanan_darah, penyakit_jantung, hemofilia, hepatitis, gastritis,
			selected_icd10, selected_icd9, selected_tindakan, selected_resep, tindakan_total
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING `+assessmentColumns,
		req.PatientID, dokter, label,
		req.FormData.KeluhanUtama, req.FormData.AlergiObat, req.FormData.AlergiObatDetail,
		req.FormData.AlergiMakanan, req.FormData.AlergiMakananDetail,
		req.FormData.TekananDarah, req.FormData.PenyakitJantung,
		req.FormData.Hemofilia, req.FormData.Hepatitis, req.FormData.Gastritis,
		icd10JSON, icd9JSON, tindakanJSON, resepJSON, total,
	))
}

// Update mengganti isi catatan; waktu dan dokter asli dipertahankan.
func (s *AssessmentService) Update(id string, req models.AssessmentCreateRequest) (*models.Assessment, error) {
	tindakan, total := models.NormalizeTindakan(req.SelectedTindakan)
	label := models.AssessmentLabel(req.SelectedICD10, req.FormData.KeluhanUtama)

	icd10JSON, err := models.MarshalList(req.SelectedICD10)
	if err != nil {
		return nil, err
	}
	icd9JSON, err := models.MarshalList(req.SelectedICD9)
	if err != nil {
		return nil, err
	}
	tindakanJSON, err := models.MarshalList(tindakan)
	if err != nil {
		return nil, err
	}
	resepJSON, err := models.MarshalList(req.SelectedResep)
	if err != nil {
		return nil, err
	}

	return scanAssessment(s.DB.QueryRow(`
		UPDATE assessments SET
			assessment = $1,
			keluhan_utama = $2, alergi_obat = $3, alergi_obat_detail = $4,
			alergi_makanan = $5, alergi_makanan_detail = $6,
			tekanan_darah = $7, penyakit_jantung = $8, hemofilia = $9, hepatitis = $10, gastritis = $11,
			selected_icd10 = $12, selected_icd9 = $13, selected_tindakan = $14, selected_resep = $15,
			tindakan_total = $16,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $17
		RETURNING `+assessmentColumns,
		label,
		req.FormData.KeluhanUtama, req.FormData.AlergiObat, req.FormData.AlergiObatDetail,
		req.FormData.AlergiMakanan, req.FormData.AlergiMakananDetail,
		req.FormData.TekananDarah, req.FormData.PenyakitJantung,
		req.FormData.Hemofilia, req.FormData.Hepatitis, req.FormData.Gastritis,
		icd10JSON, icd9JSON, tindakanJSON, resepJSON, total, id,
	))
}

func (s *AssessmentService) Delete(id string) error {
	var deleted string
	return s.DB.QueryRow("DELETE FROM assessments WHERE id = $1 RETURNING id", id).Scan(&deleted)
}
