package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/klinik-trah/klinik-backend/internal/manajemen/models"
)

// ErrInvalidCredentials dikembalikan untuk username tak dikenal maupun
// password salah, supaya keduanya tidak bisa dibedakan dari luar.
var ErrInvalidCredentials = errors.New("username atau password salah")

type AuthService struct {
	DB *sql.DB
}

func NewAuthService(db *sql.DB) *AuthService {
	return &AuthService{DB: db}
}

// Authenticate mencari user aktif berdasarkan username dan memverifikasi
// password terhadap hash bcrypt yang tersimpan.
func (s *AuthService) Authenticate(username, password string) (*models.SDM, error) {
	var sdm models.SDM
	var hashed string
	err := s.DB.QueryRow(`
		SELECT id, nama, jabatan, role, status, keterangan, username, full_name, is_active, created_at, updated_at, password
		FROM users
		WHERE username = $1 AND is_active = true`, username,
	).Scan(&sdm.ID, &sdm.Nama, &sdm.Jabatan, &sdm.Role, &sdm.Status, &sdm.Keterangan,
		&sdm.Username, &sdm.FullName, &sdm.IsActive, &sdm.CreatedAt, &sdm.UpdatedAt, &hashed)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &sdm, nil
}

// GetActiveUser mengambil ulang baris user aktif. Dipakai verify-token agar
// akun yang dinonaktifkan tertolak walau tokennya masih berlaku.
func (s *AuthService) GetActiveUser(id int) (*models.SDM, error) {
	return scanSDM(s.DB.QueryRow(
		"SELECT "+sdmColumns+" FROM users WHERE id = $1 AND is_active = true", id))
}
