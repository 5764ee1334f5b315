package postgres

import (
	"database/sql"
	"fmt"
)

// Pernyataan bootstrap dijalankan berurutan dan semuanya idempotent,
// sehingga aman dipanggil setiap kali server start.
var bootstrapStatements = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		rekam_medik TEXT UNIQUE NOT NULL,
		nama_lengkap TEXT NOT NULL,
		jenis_identitas TEXT,
		nomor_identitas TEXT,
		tempat_lahir TEXT,
		tanggal_lahir TEXT,
		jenis_kelamin TEXT,
		golongan_darah TEXT,
		status_perkawinan TEXT,
		nama_suami TEXT,
		nama_ibu TEXT,
		pendidikan TEXT,
		pekerjaan TEXT,
		kewarganegaraan TEXT,
		agama TEXT,
		suku TEXT,
		bahasa TEXT,
		alamat TEXT,
		rt TEXT,
		rw TEXT,
		provinsi TEXT,
		kabupaten TEXT,
		kecamatan TEXT,
		kelurahan TEXT,
		kode_pos TEXT,
		telepon TEXT,
		hubungan_penanggung_jawab TEXT,
		nama_penanggung_jawab TEXT,
		telepon_penanggung_jawab TEXT,
		foto_rontgen TEXT,
		gambar_kolom1 TEXT, gambar_kolom2 TEXT, gambar_kolom3 TEXT,
		gambar_kolom4 TEXT, gambar_kolom5 TEXT, gambar_kolom6 TEXT,
		gambar_kolom7 TEXT, gambar_kolom8 TEXT, gambar_kolom9 TEXT,
		gambar_kolom10 TEXT, gambar_kolom11 TEXT, gambar_kolom12 TEXT,
		gambar_kolom13 TEXT, gambar_kolom14 TEXT, gambar_kolom15 TEXT,
		gambar_kolom16 TEXT, gambar_kolom17 TEXT,
		informed_consent TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS registrations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		id_pendaftaran TEXT NOT NULL,
		no_antrian INTEGER NOT NULL,
		tanggal DATE NOT NULL DEFAULT CURRENT_DATE,
		patient_id UUID NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'Dalam Antrian',
		ruangan TEXT,
		dokter TEXT,
		nama_pengantar TEXT,
		telepon_pengantar TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		full_name TEXT,
		role TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		nama TEXT,
		jabatan TEXT,
		status TEXT DEFAULT 'aktif',
		keterangan TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE SEQUENCE IF NOT EXISTS rekam_medik_seq START 1`,
	// Nomor rekam medik diambil dari sequence sehingga dua panggilan
	// berurutan tidak pernah menghasilkan nilai yang sama.
	`CREATE OR REPLACE FUNCTION generate_rekam_medik() RETURNS text AS $$
		SELECT 'RM-' || lpad(nextval('rekam_medik_seq')::text, 6, '0')
	$$ LANGUAGE sql`,
	// ID pendaftaran dan nomor antrian di-reset per hari berdasarkan isi
	// tabel registrations; pemanggilnya wajib membungkus generate + insert
	// dalam satu transaksi.
	`CREATE OR REPLACE FUNCTION generate_no_antrian() RETURNS integer AS $$
		SELECT COALESCE(MAX(no_antrian), 0) + 1
		FROM registrations
		WHERE tanggal = CURRENT_DATE
	$$ LANGUAGE sql`,
	`CREATE OR REPLACE FUNCTION generate_id_pendaftaran() RETURNS text AS $$
		SELECT 'REG-' || to_char(CURRENT_DATE, 'YYYYMMDD') || '-' ||
		       lpad((COALESCE(MAX(no_antrian), 0) + 1)::text, 3, '0')
		FROM registrations
		WHERE tanggal = CURRENT_DATE
	$$ LANGUAGE sql`,
}

// Bootstrap membuat tabel inti beserta fungsi generator di sisi database.
func Bootstrap(db *sql.DB) error {
	for _, stmt := range bootstrapStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("gagal menjalankan bootstrap schema: %v", err)
		}
	}
	return nil
}
