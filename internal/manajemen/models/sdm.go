package models

import "time"

// Role yang dikenal sistem. Dipakai untuk gating visibilitas di UI dan
// untuk membatasi endpoint manajemen SDM.
const (
	RoleAdmin        = "admin"
	RoleAdministrasi = "administrasi"
	RoleDokter       = "dokter"
	RolePerawat      = "perawat"
)

// SDM mewakili satu baris tabel users tanpa kolom password. Tabel users
// sekaligus menjadi tabel kredensial login; password tidak pernah ikut
// keluar ke client.
type SDM struct {
	ID         int       `json:"id"`
	Nama       *string   `json:"nama"`
	Jabatan    *string   `json:"jabatan"`
	Role       *string   `json:"role"`
	Status     *string   `json:"status"`
	Keterangan *string   `json:"keterangan"`
	Username   string    `json:"username"`
	FullName   *string   `json:"full_name"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SDMCreateRequest membutuhkan username dan password; nama ditulis ganda ke
// kolom full_name dan nama mengikuti struktur tabel users yang dipakai bersama.
type SDMCreateRequest struct {
	Nama       string  `json:"nama"`
	Jabatan    *string `json:"jabatan"`
	Role       string  `json:"role"`
	Status     *string `json:"status"`
	Keterangan *string `json:"keterangan"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
}

// SDMUpdateRequest: username opsional; password hanya di-hash ulang bila
// diisi dengan nilai baru yang tidak kosong.
type SDMUpdateRequest struct {
	Nama       *string `json:"nama"`
	Jabatan    *string `json:"jabatan"`
	Role       *string `json:"role"`
	Status     *string `json:"status"`
	Keterangan *string `json:"keterangan"`
	Username   *string `json:"username"`
	Password   *string `json:"password"`
}

// ValidRole memeriksa apakah role termasuk himpunan role yang dikenal.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAdministrasi, RoleDokter, RolePerawat:
		return true
	}
	return false
}
