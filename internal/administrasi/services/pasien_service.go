package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/klinik-trah/klinik-backend/internal/administrasi/models"
)

type PasienService struct {
	DB *sql.DB
}

func NewPasienService(db *sql.DB) *PasienService {
	return &PasienService{DB: db}
}

// Daftar kolom dalam urutan tetap; scanPasien wajib mengikuti urutan ini.
const pasienColumns = `id, rekam_medik, nama_lengkap, jenis_identitas, nomor_identitas,
	tempat_lahir, tanggal_lahir, jenis_kelamin, golongan_darah, status_perkawinan,
	nama_suami, nama_ibu, pendidikan, pekerjaan, kewarganegaraan, agama, suku, bahasa,
	alamat, rt, rw, provinsi, kabupaten, kecamatan, kelurahan, kode_pos, telepon,
	hubungan_penanggung_jawab, nama_penanggung_jawab, telepon_penanggung_jawab,
	foto_rontgen, gambar_kolom1, gambar_kolom2, gambar_kolom3, gambar_kolom4,
	gambar_kolom5, gambar_kolom6, gambar_kolom7, gambar_kolom8, gambar_kolom9,
	gambar_kolom10, gambar_kolom11, gambar_kolom12, gambar_kolom13, gambar_kolom14,
	gambar_kolom15, gambar_kolom16, gambar_kolom17, informed_consent, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPasien(row rowScanner) (*models.Pasien, error) {
	var p models.Pasien
	err := row.Scan(
		&p.ID, &p.RekamMedik, &p.NamaLengkap, &p.JenisIdentitas, &p.NomorIdentitas,
		&p.TempatLahir, &p.TanggalLahir, &p.JenisKelamin, &p.GolonganDarah, &p.StatusPerkawinan,
		&p.NamaSuami, &p.NamaIbu, &p.Pendidikan, &p.Pekerjaan, &p.Kewarganegaraan, &p.Agama, &p.Suku, &p.Bahasa,
		&p.Alamat, &p.RT, &p.RW, &p.Provinsi, &p.Kabupaten, &p.Kecamatan, &p.Kelurahan, &p.KodePos, &p.Telepon,
		&p.HubunganPenanggungJawab, &p.NamaPenanggungJawab, &p.TeleponPenanggungJawab,
		&p.FotoRontgen, &p.GambarKolom1, &p.GambarKolom2, &p.GambarKolom3, &p.GambarKolom4,
		&p.GambarKolom5, &p.GambarKolom6, &p.GambarKolom7, &p.GambarKolom8, &p.GambarKolom9,
		&p.GambarKolom10, &p.GambarKolom11, &p.GambarKolom12, &p.GambarKolom13, &p.GambarKolom14,
		&p.GambarKolom15, &p.GambarKolom16, &p.GambarKolom17, &p.InformedConsent, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPasien mengembalikan seluruh pasien, terbaru lebih dulu.
func (s *PasienService) ListPasien() ([]models.Pasien, error) {
	query := fmt.Sprintf("SELECT %s FROM patients ORDER BY created_at DESC", pasienColumns)
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Pasien{}
	for rows.Next() {
		p, err := scanPasien(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

// GetPasienByID mengembalikan sql.ErrNoRows jika pasien tidak ada.
func (s *PasienService) GetPasienByID(id string) (*models.Pasien, error) {
	query := fmt.Sprintf("SELECT %s FROM patients WHERE id = $1", pasienColumns)
	return scanPasien(s.DB.QueryRow(query, id))
}

// CreatePasien menyimpan pasien baru dengan nomor rekam medik yang sudah
// didapat pemanggil dari GenerateRekamMedik.
func (s *PasienService) CreatePasien(req models.PasienCreateRequest) (*models.Pasien, error) {
	cols, vals := req.PasienPatch.Columns()

	insertCols := []string{"rekam_medik"}
	args := []interface{}{req.RekamMedik}
	for i, col := range cols {
		insertCols = append(insertCols, col)
		args = append(args, vals[i])
	}

	placeholders := make([]string, len(insertCols))
	for i := range insertCols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO patients (%s) VALUES (%s) RETURNING %s",
		strings.Join(insertCols, ", "), strings.Join(placeholders, ", "), pasienColumns)
	return scanPasien(s.DB.QueryRow(query, args...))
}

// UpdatePasien menerapkan partial update. Hanya kolom yang dikirim yang
// disentuh; rekam_medik tidak pernah bisa diubah lewat jalur ini.
func (s *PasienService) UpdatePasien(id string, patch models.PasienPatch) (*models.Pasien, error) {
	cols, vals := patch.Columns()
	if len(cols) == 0 {
		return nil, fmt.Errorf("tidak ada kolom yang diupdate")
	}

	setParts := make([]string, len(cols))
	args := []interface{}{id}
	for i, col := range cols {
		setParts[i] = fmt.Sprintf("%s = $%d", col, i+2)
		args = append(args, vals[i])
	}

	query := fmt.Sprintf("UPDATE patients SET %s WHERE id = $1 RETURNING %s",
		strings.Join(setParts, ", "), pasienColumns)
	return scanPasien(s.DB.QueryRow(query, args...))
}

// DeletePasien menghapus pasien; registrations ikut terhapus lewat cascade.
func (s *PasienService) DeletePasien(id string) error {
	var deleted string
	err := s.DB.QueryRow("DELETE FROM patients WHERE id = $1 RETURNING id", id).Scan(&deleted)
	return err
}

// SearchPasien mencari substring pada nama atau nomor rekam medik, tanpa
// memperhatikan huruf besar-kecil.
func (s *PasienService) SearchPasien(term string) ([]models.Pasien, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM patients WHERE nama_lengkap ILIKE $1 OR rekam_medik ILIKE $1 ORDER BY created_at DESC",
		pasienColumns)
	rows, err := s.DB.Query(query, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.Pasien{}
	for rows.Next() {
		p, err := scanPasien(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

// GenerateRekamMedik memanggil fungsi generator di sisi database. Nilai yang
// sudah keluar tidak pernah diterbitkan ulang.
func (s *PasienService) GenerateRekamMedik() (string, error) {
	var rekamMedik string
	err := s.DB.QueryRow("SELECT generate_rekam_medik()").Scan(&rekamMedik)
	if err != nil {
		return "", fmt.Errorf("gagal generate rekam medik: %v", err)
	}
	return rekamMedik, nil
}
