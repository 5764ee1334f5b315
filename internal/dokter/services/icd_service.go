package services

import (
	"database/sql"
	"fmt"

	"github.com/klinik-trah/klinik-backend/internal/dokter/models"
)

// ICDService melayani tabel referensi ICD-10/ICD-9 subset gigi. Tabel ini
// hanya untuk lookup/autocomplete dan bersifat read-only dari sisi API.
type ICDService struct {
	DB *sql.DB
}

func NewICDService(db *sql.DB) *ICDService {
	return &ICDService{DB: db}
}

var icd10Seed = []models.ICD10Ref{
	{Kode: "K02.1", Nama: "Karies dentin", Jenis: "Primer"},
	{Kode: "K02.9", Nama: "Karies gigi, tidak spesifik", Jenis: "Sekunder"},
	{Kode: "K04.0", Nama: "Pulpitis", Jenis: "Primer"},
	{Kode: "K05.0", Nama: "Gingivitis akut", Jenis: "Primer"},
	{Kode: "K08.1", Nama: "Kehilangan gigi karena trauma", Jenis: "Sekunder"},
}

var icd9Seed = []models.ICD9Ref{
	{Kode: "23.01", Nama: "Pencabutan gigi"},
	{Kode: "23.3", Nama: "Pembersihan gigi dan scaling"},
	{Kode: "23.41", Nama: "Penambalan gigi dengan amalgam"},
	{Kode: "23.42", Nama: "Penambalan gigi dengan komposit"},
	{Kode: "23.43", Nama: "Penambalan gigi dengan semen"},
}

// EnsureTables membuat tabel referensi dan mengisinya saat masih kosong.
func (s *ICDService) EnsureTables() error {
	if _, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS icd10_ref (
			kode TEXT PRIMARY KEY,
			nama TEXT NOT NULL,
			jenis TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("gagal membuat tabel icd10_ref: %v", err)
	}
	if _, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS icd9_ref (
			kode TEXT PRIMARY KEY,
			nama TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("gagal membuat tabel icd9_ref: %v", err)
	}

	for _, item := range icd10Seed {
		if _, err := s.DB.Exec(
			"INSERT INTO icd10_ref (kode, nama, jenis) VALUES ($1, $2, $3) ON CONFLICT (kode) DO NOTHING",
			item.Kode, item.Nama, item.Jenis); err != nil {
			return fmt.Errorf("gagal mengisi icd10_ref: %v", err)
		}
	}
	for _, item := range icd9Seed {
		if _, err := s.DB.Exec(
			"INSERT INTO icd9_ref (kode, nama) VALUES ($1, $2) ON CONFLICT (kode) DO NOTHING",
			item.Kode, item.Nama); err != nil {
			return fmt.Errorf("gagal mengisi icd9_ref: %v", err)
		}
	}
	return nil
}

func (s *ICDService) queryICD10(query string, args ...interface{}) ([]models.ICD10Ref, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.ICD10Ref{}
	for rows.Next() {
		var item models.ICD10Ref
		if err := rows.Scan(&item.Kode, &item.Nama, &item.Jenis); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (s *ICDService) queryICD9(query string, args ...interface{}) ([]models.ICD9Ref, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.ICD9Ref{}
	for rows.Next() {
		var item models.ICD9Ref
		if err := rows.Scan(&item.Kode, &item.Nama); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (s *ICDService) ListICD10() ([]models.ICD10Ref, error) {
	return s.queryICD10("SELECT kode, nama, jenis FROM icd10_ref ORDER BY kode")
}

func (s *ICDService) SearchICD10(term string) ([]models.ICD10Ref, error) {
	return s.queryICD10(
		"SELECT kode, nama, jenis FROM icd10_ref WHERE kode ILIKE $1 OR nama ILIKE $1 ORDER BY kode",
		"%"+term+"%")
}

func (s *ICDService) ListICD9() ([]models.ICD9Ref, error) {
	return s.queryICD9("SELECT kode, nama FROM icd9_ref ORDER BY kode")
}

func (s *ICDService) SearchICD9(term string) ([]models.ICD9Ref, error) {
	return s.queryICD9(
		"SELECT kode, nama FROM icd9_ref WHERE kode ILIKE $1 OR nama ILIKE $1 ORDER BY kode",
		"%"+term+"%")
}
