package services

import (
	"database/sql"

	"github.com/klinik-trah/klinik-backend/internal/administrasi/models"
)

type PendaftaranService struct {
	DB *sql.DB
}

func NewPendaftaranService(db *sql.DB) *PendaftaranService {
	return &PendaftaranService{DB: db}
}

const pendaftaranColumns = `r.id, r.id_pendaftaran, r.no_antrian, r.tanggal, r.patient_id,
	r.status, r.ruangan, r.dokter, r.nama_pengantar, r.telepon_pengantar,
	r.created_at, r.updated_at, p.rekam_medik, p.nama_lengkap`

func scanPendaftaran(row rowScanner) (*models.Pendaftaran, error) {
	var r models.Pendaftaran
	err := row.Scan(
		&r.ID, &r.IDPendaftaran, &r.NoAntrian, &r.Tanggal, &r.PatientID,
		&r.Status, &r.Ruangan, &r.Dokter, &r.NamaPengantar, &r.TeleponPengantar,
		&r.CreatedAt, &r.UpdatedAt, &r.NoRekamMedik, &r.Pasien,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreatePendaftaran membuat kunjungan baru. Pemanggilan generator
// id_pendaftaran/no_antrian dan insert dibungkus satu transaksi supaya
// insert yang gagal tidak meninggalkan nomor yang sudah terbit tanpa baris.
// Keunikan nomor di bawah beban paralel tetap bergantung pada fungsi
// generator di sisi database.
func (s *PendaftaranService) CreatePendaftaran(req models.PendaftaranCreateRequest) (*models.Pendaftaran, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}

	var idPendaftaran string
	if err := tx.QueryRow("SELECT generate_id_pendaftaran()").Scan(&idPendaftaran); err != nil {
		tx.Rollback()
		return nil, err
	}

	var noAntrian int
	if err := tx.QueryRow("SELECT generate_no_antrian()").Scan(&noAntrian); err != nil {
		tx.Rollback()
		return nil, err
	}

	var id string
	err = tx.QueryRow(`
		INSERT INTO registrations
			(id_pendaftaran, no_antrian, tanggal, patient_id, status, ruangan, dokter, nama_pengantar, telepon_pengantar)
		VALUES ($1, $2, CURRENT_DATE, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		idPendaftaran, noAntrian, req.PatientID, models.StatusDalamAntrian,
		req.Ruangan, req.Dokter, req.NamaPengantar, req.TeleponPengantar,
	).Scan(&id)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.GetPendaftaranByID(id)
}

// GetPendaftaranByID mengembalikan satu kunjungan lengkap dengan data pasien.
func (s *PendaftaranService) GetPendaftaranByID(id string) (*models.Pendaftaran, error) {
	query := `SELECT ` + pendaftaranColumns + `
		FROM registrations r
		JOIN patients p ON r.patient_id = p.id
		WHERE r.id = $1`
	return scanPendaftaran(s.DB.QueryRow(query, id))
}

// ListPendaftaran mengembalikan semua kunjungan, terbaru lebih dulu.
func (s *PendaftaranService) ListPendaftaran() ([]models.Pendaftaran, error) {
	query := `SELECT ` + pendaftaranColumns + `
		FROM registrations r
		JOIN patients p ON r.patient_id = p.id
		ORDER BY r.created_at DESC`
	return s.queryPendaftaran(query)
}

// ListPendaftaranByPatient memfilter kunjungan milik satu pasien.
func (s *PendaftaranService) ListPendaftaranByPatient(patientID string) ([]models.Pendaftaran, error) {
	query := `SELECT ` + pendaftaranColumns + `
		FROM registrations r
		JOIN patients p ON r.patient_id = p.id
		WHERE r.patient_id = $1
		ORDER BY r.created_at DESC`
	return s.queryPendaftaran(query, patientID)
}

func (s *PendaftaranService) queryPendaftaran(query string, args ...interface{}) ([]models.Pendaftaran, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Pendaftaran{}
	for rows.Next() {
		r, err := scanPendaftaran(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *r)
	}
	return result, rows.Err()
}

// UpdatePendaftaran mengganti field penugasan dan menyegarkan updated_at.
// Status boleh ikut diganti; tidak ada state machine yang membatasi nilainya.
func (s *PendaftaranService) UpdatePendaftaran(id string, req models.PendaftaranUpdateRequest) (*models.Pendaftaran, error) {
	var updated string
	err := s.DB.QueryRow(`
		UPDATE registrations
		SET patient_id = $1,
		    status = COALESCE($2, status),
		    ruangan = $3,
		    dokter = $4,
		    nama_pengantar = $5,
		    telepon_pengantar = $6,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING id`,
		req.PatientID, req.Status, req.Ruangan, req.Dokter,
		req.NamaPengantar, req.TeleponPengantar, id,
	).Scan(&updated)
	if err != nil {
		return nil, err
	}
	return s.GetPendaftaranByID(updated)
}

// DeletePendaftaran membatalkan kunjungan. Tidak ada soft delete.
func (s *PendaftaranService) DeletePendaftaran(id string) error {
	var deleted string
	return s.DB.QueryRow("DELETE FROM registrations WHERE id = $1 RETURNING id", id).Scan(&deleted)
}
