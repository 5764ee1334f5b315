package services

import (
	"database/sql"
	"fmt"

	"github.com/klinik-trah/klinik-backend/internal/dokter/models"
)

type JadwalKontrolService struct {
	DB *sql.DB
}

func NewJadwalKontrolService(db *sql.DB) *JadwalKontrolService {
	return &JadwalKontrolService{DB: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

const jadwalColumns = `id, patient_id, tanggal_kontrol::text, keterangan, created_at, updated_at`

func scanJadwal(row rowScanner) (*models.JadwalKontrol, error) {
	var j models.JadwalKontrol
	err := row.Scan(&j.ID, &j.PatientID, &j.TanggalKontrol, &j.Keterangan, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// EnsureTable membuat tabel jadwal_kontrol bila belum ada. Idempotent.
func (s *JadwalKontrolService) EnsureTable() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS jadwal_kontrol (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			patient_id UUID NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
			tanggal_kontrol DATE NOT NULL,
			keterangan TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("gagal membuat tabel jadwal_kontrol: %v", err)
	}
	return nil
}

// ListByPatient mengembalikan jadwal milik satu pasien urut tanggal naik.
func (s *JadwalKontrolService) ListByPatient(patientID string) ([]models.JadwalKontrol, error) {
	rows, err := s.DB.Query(
		"SELECT "+jadwalColumns+" FROM jadwal_kontrol WHERE patient_id = $1 ORDER BY tanggal_kontrol ASC",
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.JadwalKontrol{}
	for rows.Next() {
		j, err := scanJadwal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *j)
	}
	return result, rows.Err()
}

// Create menyimpan jadwal baru. Tidak ada pengecekan tanggal ganda.
func (s *JadwalKontrolService) Create(req models.JadwalKontrolCreateRequest) (*models.JadwalKontrol, error) {
	return scanJadwal(s.DB.QueryRow(`
		INSERT INTO jadwal_kontrol (patient_id, tanggal_kontrol, keterangan)
		VALUES ($1, $2, $3)
		RETURNING `+jadwalColumns,
		req.PatientID, req.TanggalKontrol, req.Keterangan))
}

// Update mengganti tanggal dan catatan; sql.ErrNoRows bila id tidak ada.
func (s *JadwalKontrolService) Update(id string, req models.JadwalKontrolUpdateRequest) (*models.JadwalKontrol, error) {
	return scanJadwal(s.DB.QueryRow(`
		UPDATE jadwal_kontrol
		SET tanggal_kontrol = $1, keterangan = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING `+jadwalColumns,
		req.TanggalKontrol, req.Keterangan, id))
}

func (s *JadwalKontrolService) Delete(id string) error {
	var deleted string
	return s.DB.QueryRow("DELETE FROM jadwal_kontrol WHERE id = $1 RETURNING id", id).Scan(&deleted)
}
