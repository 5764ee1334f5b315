package models

import "time"

// Pasien mewakili satu baris tabel patients. Kolom gambar_kolom1..17 bersifat
// posisional: slot N selalu berarti jenis foto yang sama, mengosongkan satu
// slot tidak boleh menggeser slot lain.
type Pasien struct {
	ID                      string    `json:"id"`
	RekamMedik              string    `json:"rekam_medik"`
	NamaLengkap             string    `json:"nama_lengkap"`
	JenisIdentitas          *string   `json:"jenis_identitas"`
	NomorIdentitas          *string   `json:"nomor_identitas"`
	TempatLahir             *string   `json:"tempat_lahir"`
	TanggalLahir            *string   `json:"tanggal_lahir"`
	JenisKelamin            *string   `json:"jenis_kelamin"`
	GolonganDarah           *string   `json:"golongan_darah"`
	StatusPerkawinan        *string   `json:"status_perkawinan"`
	NamaSuami               *string   `json:"nama_suami"`
	NamaIbu                 *string   `json:"nama_ibu"`
	Pendidikan              *string   `json:"pendidikan"`
	Pekerjaan               *string   `json:"pekerjaan"`
	Kewarganegaraan         *string   `json:"kewarganegaraan"`
	Agama                   *string   `json:"agama"`
	Suku                    *string   `json:"suku"`
	Bahasa                  *string   `json:"bahasa"`
	Alamat                  *string   `json:"alamat"`
	RT                      *string   `json:"rt"`
	RW                      *string   `json:"rw"`
	Provinsi                *string   `json:"provinsi"`
	Kabupaten               *string   `json:"kabupaten"`
	Kecamatan               *string   `json:"kecamatan"`
	Kelurahan               *string   `json:"kelurahan"`
	KodePos                 *string   `json:"kode_pos"`
	Telepon                 *string   `json:"telepon"`
	HubunganPenanggungJawab *string   `json:"hubungan_penanggung_jawab"`
	NamaPenanggungJawab     *string   `json:"nama_penanggung_jawab"`
	TeleponPenanggungJawab  *string   `json:"telepon_penanggung_jawab"`
	FotoRontgen             *string   `json:"foto_rontgen"`
	GambarKolom1            *string   `json:"gambar_kolom1"`
	GambarKolom2            *string   `json:"gambar_kolom2"`
	GambarKolom3            *string   `json:"gambar_kolom3"`
	GambarKolom4            *string   `json:"gambar_kolom4"`
	GambarKolom5            *string   `json:"gambar_kolom5"`
	GambarKolom6            *string   `json:"gambar_kolom6"`
	GambarKolom7            *string   `json:"gambar_kolom7"`
	GambarKolom8            *string   `json:"gambar_kolom8"`
	GambarKolom9            *string   `json:"gambar_kolom9"`
	GambarKolom10           *string   `json:"gambar_kolom10"`
	GambarKolom11           *string   `json:"gambar_kolom11"`
	GambarKolom12           *string   `json:"gambar_kolom12"`
	GambarKolom13           *string   `json:"gambar_kolom13"`
	GambarKolom14           *string   `json:"gambar_kolom14"`
	GambarKolom15           *string   `json:"gambar_kolom15"`
	GambarKolom16           *string   `json:"gambar_kolom16"`
	GambarKolom17           *string   `json:"gambar_kolom17"`
	InformedConsent         *string   `json:"informed_consent"`
	CreatedAt               time.Time `json:"created_at"`
}

// PasienCreateRequest adalah payload pendaftaran pasien baru. RekamMedik
// didapat pemanggil dari POST /generate-rekam-medik sebelum create;
// kolom lain ikut lewat PasienPatch.
type PasienCreateRequest struct {
	RekamMedik string `json:"rekam_medik"`
	PasienPatch
}

// PasienPatch mendaftarkan kolom yang boleh diubah lewat PATCH /patients/:id.
// Field nil berarti kolom tidak disentuh; string kosong mengosongkan kolom.
// RekamMedik dan CreatedAt sengaja tidak ada di sini.
type PasienPatch struct {
	NamaLengkap             *string `json:"nama_lengkap,omitempty"`
	JenisIdentitas          *string `json:"jenis_identitas,omitempty"`
	NomorIdentitas          *string `json:"nomor_identitas,omitempty"`
	TempatLahir             *string `json:"tempat_lahir,omitempty"`
	TanggalLahir            *string `json:"tanggal_lahir,omitempty"`
	JenisKelamin            *string `json:"jenis_kelamin,omitempty"`
	GolonganDarah           *string `json:"golongan_darah,omitempty"`
	StatusPerkawinan        *string `json:"status_perkawinan,omitempty"`
	NamaSuami               *string `json:"nama_suami,omitempty"`
	NamaIbu                 *string `json:"nama_ibu,omitempty"`
	Pendidikan              *string `json:"pendidikan,omitempty"`
	Pekerjaan               *string `json:"pekerjaan,omitempty"`
	Kewarganegaraan         *string `json:"kewarganegaraan,omitempty"`
	Agama                   *string `json:"agama,omitempty"`
	Suku                    *string `json:"suku,omitempty"`
	Bahasa                  *string `json:"bahasa,omitempty"`
	Alamat                  *string `json:"alamat,omitempty"`
	RT                      *string `json:"rt,omitempty"`
	RW                      *string `json:"rw,omitempty"`
	Provinsi                *string `json:"provinsi,omitempty"`
	Kabupaten               *string `json:"kabupaten,omitempty"`
	Kecamatan               *string `json:"kecamatan,omitempty"`
	Kelurahan               *string `json:"kelurahan,omitempty"`
	KodePos                 *string `json:"kode_pos,omitempty"`
	Telepon                 *string `json:"telepon,omitempty"`
	HubunganPenanggungJawab *string `json:"hubungan_penanggung_jawab,omitempty"`
	NamaPenanggungJawab     *string `json:"nama_penanggung_jawab,omitempty"`
	TeleponPenanggungJawab  *string `json:"telepon_penanggung_jawab,omitempty"`
	FotoRontgen             *string `json:"foto_rontgen,omitempty"`
	GambarKolom1            *string `json:"gambar_kolom1,omitempty"`
	GambarKolom2            *string `json:"gambar_kolom2,omitempty"`
	GambarKolom3            *string `json:"gambar_kolom3,omitempty"`
	GambarKolom4            *string `json:"gambar_kolom4,omitempty"`
	GambarKolom5            *string `json:"gambar_kolom5,omitempty"`
	GambarKolom6            *string `json:"gambar_kolom6,omitempty"`
	GambarKolom7            *string `json:"gambar_kolom7,omitempty"`
	GambarKolom8            *string `json:"gambar_kolom8,omitempty"`
	GambarKolom9            *string `json:"gambar_kolom9,omitempty"`
	GambarKolom10           *string `json:"gambar_kolom10,omitempty"`
	GambarKolom11           *string `json:"gambar_kolom11,omitempty"`
	GambarKolom12           *string `json:"gambar_kolom12,omitempty"`
	GambarKolom13           *string `json:"gambar_kolom13,omitempty"`
	GambarKolom14           *string `json:"gambar_kolom14,omitempty"`
	GambarKolom15           *string `json:"gambar_kolom15,omitempty"`
	GambarKolom16           *string `json:"gambar_kolom16,omitempty"`
	GambarKolom17           *string `json:"gambar_kolom17,omitempty"`
	InformedConsent         *string `json:"informed_consent,omitempty"`
}

// Columns mengembalikan pasangan nama kolom dan nilai untuk setiap field
// yang diisi. Hanya kolom yang terdaftar di sini yang bisa masuk ke UPDATE.
func (p *PasienPatch) Columns() ([]string, []interface{}) {
	var cols []string
	var vals []interface{}
	add := func(col string, v *string) {
		if v != nil {
			cols = append(cols, col)
			vals = append(vals, *v)
		}
	}

	add("nama_lengkap", p.NamaLengkap)
	add("jenis_identitas", p.JenisIdentitas)
	add("nomor_identitas", p.NomorIdentitas)
	add("tempat_lahir", p.TempatLahir)
	add("tanggal_lahir", p.TanggalLahir)
	add("jenis_kelamin", p.JenisKelamin)
	add("golongan_darah", p.GolonganDarah)
	add("status_perkawinan", p.StatusPerkawinan)
	add("nama_suami", p.NamaSuami)
	add("nama_ibu", p.NamaIbu)
	add("pendidikan", p.Pendidikan)
	add("pekerjaan", p.Pekerjaan)
	add("kewarganegaraan", p.Kewarganegaraan)
	add("agama", p.Agama)
	add("suku", p.Suku)
	add("bahasa", p.Bahasa)
	add("alamat", p.Alamat)
	add("rt", p.RT)
	add("rw", p.RW)
	add("provinsi", p.Provinsi)
	add("kabupaten", p.Kabupaten)
	add("kecamatan", p.Kecamatan)
	add("kelurahan", p.Kelurahan)
	add("kode_pos", p.KodePos)
	add("telepon", p.Telepon)
	add("hubungan_penanggung_jawab", p.HubunganPenanggungJawab)
	add("nama_penanggung_jawab", p.NamaPenanggungJawab)
	add("telepon_penanggung_jawab", p.TeleponPenanggungJawab)
	add("foto_rontgen", p.FotoRontgen)
	add("gambar_kolom1", p.GambarKolom1)
	add("gambar_kolom2", p.GambarKolom2)
	add("gambar_kolom3", p.GambarKolom3)
	add("gambar_kolom4", p.GambarKolom4)
	add("gambar_kolom5", p.GambarKolom5)
	add("gambar_kolom6", p.GambarKolom6)
	add("gambar_kolom7", p.GambarKolom7)
	add("gambar_kolom8", p.GambarKolom8)
	add("gambar_kolom9", p.GambarKolom9)
	add("gambar_kolom10", p.GambarKolom10)
	add("gambar_kolom11", p.GambarKolom11)
	add("gambar_kolom12", p.GambarKolom12)
	add("gambar_kolom13", p.GambarKolom13)
	add("gambar_kolom14", p.GambarKolom14)
	add("gambar_kolom15", p.GambarKolom15)
	add("gambar_kolom16", p.GambarKolom16)
	add("gambar_kolom17", p.GambarKolom17)
	add("informed_consent", p.InformedConsent)

	return cols, vals
}
