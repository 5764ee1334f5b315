package models

// ICD10Ref adalah satu entri tabel referensi diagnosis (subset gigi ICD-10).
// Tabel ini hanya untuk pencarian/autocomplete; tidak ada foreign key dari
// assessment ke sini.
type ICD10Ref struct {
	Kode  string `json:"kode"`
	Nama  string `json:"nama"`
	Jenis string `json:"jenis"`
}

// ICD9Ref adalah satu entri tabel referensi tindakan (subset gigi ICD-9).
type ICD9Ref struct {
	Kode string `json:"kode"`
	Nama string `json:"nama"`
}
