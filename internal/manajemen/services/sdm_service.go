package services

import (
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/klinik-trah/klinik-backend/internal/manajemen/models"
)

type SDMService struct {
	DB *sql.DB
}

func NewSDMService(db *sql.DB) *SDMService {
	return &SDMService{DB: db}
}

// Kolom password sengaja tidak pernah ikut di-select.
const sdmColumns = `id, nama, jabatan, role, status, keterangan, username, full_name, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSDM(row rowScanner) (*models.SDM, error) {
	var s models.SDM
	err := row.Scan(&s.ID, &s.Nama, &s.Jabatan, &s.Role, &s.Status, &s.Keterangan,
		&s.Username, &s.FullName, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSDM mengembalikan seluruh SDM tanpa password, terbaru lebih dulu.
func (s *SDMService) ListSDM() ([]models.SDM, error) {
	rows, err := s.DB.Query("SELECT " + sdmColumns + " FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.SDM{}
	for rows.Next() {
		sdm, err := scanSDM(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *sdm)
	}
	return result, rows.Err()
}

func (s *SDMService) GetSDMByID(id int) (*models.SDM, error) {
	return scanSDM(s.DB.QueryRow("SELECT "+sdmColumns+" FROM users WHERE id = $1", id))
}

// CreateSDM menyimpan user baru. Password di-hash dengan bcrypt sebelum
// masuk database; nama ditulis ke full_name dan nama sekaligus.
func (s *SDMService) CreateSDM(req models.SDMCreateRequest) (*models.SDM, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("gagal melakukan hash password: %v", err)
	}

	return scanSDM(s.DB.QueryRow(`
		INSERT INTO users (username, password, full_name, role, nama, jabatan, status, keterangan)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+sdmColumns,
		req.Username, string(hashed), req.Nama, req.Role, req.Nama,
		req.Jabatan, req.Status, req.Keterangan,
	))
}

// UpdateSDM mengubah subset field yang dikirim. Password hanya di-hash ulang
// bila diisi; hash lama dibiarkan jika kosong.
func (s *SDMService) UpdateSDM(id int, req models.SDMUpdateRequest) (*models.SDM, error) {
	setParts := []string{"updated_at = CURRENT_TIMESTAMP"}
	args := []interface{}{id}
	idx := 2

	add := func(col string, val interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, val)
		idx++
	}

	if req.Nama != nil {
		add("nama", *req.Nama)
		add("full_name", *req.Nama)
	}
	if req.Jabatan != nil {
		add("jabatan", *req.Jabatan)
	}
	if req.Role != nil {
		add("role", *req.Role)
	}
	if req.Status != nil {
		add("status", *req.Status)
		// Status non-aktif langsung mencabut kemampuan login.
		add("is_active", *req.Status != "non-aktif")
	}
	if req.Keterangan != nil {
		add("keterangan", *req.Keterangan)
	}
	if req.Username != nil && *req.Username != "" {
		add("username", *req.Username)
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("gagal melakukan hash password: %v", err)
		}
		add("password", string(hashed))
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $1 RETURNING %s",
		strings.Join(setParts, ", "), sdmColumns)
	return scanSDM(s.DB.QueryRow(query, args...))
}

// DeleteSDM menghapus user; kemampuan login hilang seketika.
func (s *SDMService) DeleteSDM(id int) error {
	var deleted int
	return s.DB.QueryRow("DELETE FROM users WHERE id = $1 RETURNING id", id).Scan(&deleted)
}

// SearchSDM mencari substring pada nama, jabatan, role, atau username.
func (s *SDMService) SearchSDM(term string) ([]models.SDM, error) {
	rows, err := s.DB.Query(`
		SELECT `+sdmColumns+`
		FROM users
		WHERE nama ILIKE $1 OR jabatan ILIKE $1 OR role ILIKE $1 OR username ILIKE $1
		ORDER BY created_at DESC`, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.SDM{}
	for rows.Next() {
		sdm, err := scanSDM(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *sdm)
	}
	return result, rows.Err()
}
