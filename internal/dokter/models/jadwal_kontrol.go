package models

import "time"

// JadwalKontrol adalah satu rencana kunjungan ulang: tanggal plus catatan
// bebas. Tidak ada jam, durasi, maupun pengecekan bentrok.
type JadwalKontrol struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	TanggalKontrol string    `json:"tanggal_kontrol"`
	Keterangan     *string   `json:"keterangan"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JadwalKontrolCreateRequest membutuhkan pasien dan tanggal; catatan opsional.
type JadwalKontrolCreateRequest struct {
	PatientID      string  `json:"patient_id"`
	TanggalKontrol string  `json:"tanggal_kontrol"`
	Keterangan     *string `json:"keterangan"`
}

// JadwalKontrolUpdateRequest mengganti tanggal dan catatan.
type JadwalKontrolUpdateRequest struct {
	TanggalKontrol string  `json:"tanggal_kontrol"`
	Keterangan     *string `json:"keterangan"`
}
