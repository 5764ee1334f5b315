package models

import "time"

// StatusDalamAntrian adalah status awal setiap pendaftaran baru.
const StatusDalamAntrian = "Dalam Antrian"

// Pendaftaran mewakili satu entri kunjungan/antrian pada tabel registrations.
type Pendaftaran struct {
	ID               string    `json:"id"`
	IDPendaftaran    string    `json:"id_pendaftaran"`
	NoAntrian        int       `json:"no_antrian"`
	Tanggal          time.Time `json:"tanggal"`
	PatientID        string    `json:"patient_id"`
	Status           string    `json:"status"`
	Ruangan          *string   `json:"ruangan"`
	Dokter           *string   `json:"dokter"`
	NamaPengantar    *string   `json:"nama_pengantar"`
	TeleponPengantar *string   `json:"telepon_pengantar"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Hasil join dengan patients untuk kebutuhan tampilan.
	NoRekamMedik string `json:"no_rekam_medik"`
	Pasien       string `json:"pasien"`
}

// PendaftaranCreateRequest adalah payload pembuatan kunjungan baru.
// id_pendaftaran, no_antrian, tanggal, dan status diisi server.
type PendaftaranCreateRequest struct {
	PatientID        string  `json:"patient_id"`
	Ruangan          *string `json:"ruangan"`
	Dokter           *string `json:"dokter"`
	NamaPengantar    *string `json:"nama_pengantar"`
	TeleponPengantar *string `json:"telepon_pengantar"`
}

// PendaftaranUpdateRequest mengganti field penugasan kunjungan.
type PendaftaranUpdateRequest struct {
	PatientID        string  `json:"patient_id"`
	Status           *string `json:"status"`
	Ruangan          *string `json:"ruangan"`
	Dokter           *string `json:"dokter"`
	NamaPengantar    *string `json:"nama_pengantar"`
	TeleponPengantar *string `json:"telepon_pengantar"`
}
