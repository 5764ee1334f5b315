package services

import (
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"

	"github.com/klinik-trah/klinik-backend/internal/administrasi/models"
	"github.com/klinik-trah/klinik-backend/pkg/storage/postgres"
)

// testDB membuka koneksi ke database dari DATABASE_URL. Test yang
// membutuhkan PostgreSQL dilewati bila variabel tidak diisi.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL tidak diisi")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("database tidak bisa dihubungi: %v", err)
	}
	if err := postgres.Bootstrap(db); err != nil {
		t.Fatalf("bootstrap schema gagal: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestPasien(t *testing.T, s *PasienService) *models.Pasien {
	t.Helper()
	rm, err := s.GenerateRekamMedik()
	if err != nil {
		t.Fatalf("generate rekam medik gagal: %v", err)
	}
	nama := "Pasien Integrasi"
	alamat := "Jl. Kenanga 7"
	p, err := s.CreatePasien(models.PasienCreateRequest{
		RekamMedik: rm,
		PasienPatch: models.PasienPatch{
			NamaLengkap: &nama,
			Alamat:      &alamat,
		},
	})
	if err != nil {
		t.Fatalf("create pasien gagal: %v", err)
	}
	t.Cleanup(func() { s.DeletePasien(p.ID) })
	return p
}

func TestIntegrationCreatePendaftaran_StatusDanTanggal(t *testing.T) {
	db := testDB(t)
	pasienService := NewPasienService(db)
	pendaftaranService := NewPendaftaranService(db)

	pasien := createTestPasien(t, pasienService)

	p, err := pendaftaranService.CreatePendaftaran(models.PendaftaranCreateRequest{
		PatientID: pasien.ID,
	})
	if err != nil {
		t.Fatalf("create pendaftaran gagal: %v", err)
	}

	if p.Status != models.StatusDalamAntrian {
		t.Errorf("expected status %q, got %q", models.StatusDalamAntrian, p.Status)
	}
	if p.IDPendaftaran == "" || p.NoAntrian <= 0 {
		t.Errorf("expected generated ticket, got %q / %d", p.IDPendaftaran, p.NoAntrian)
	}
	// Kolom tanggal diisi CURRENT_DATE oleh server.
	if d := time.Since(p.Tanggal); d < -24*time.Hour || d > 48*time.Hour {
		t.Errorf("expected tanggal hari ini, got %v", p.Tanggal)
	}
}

func TestIntegrationDeletePasien_CascadesPendaftaran(t *testing.T) {
	db := testDB(t)
	pasienService := NewPasienService(db)
	pendaftaranService := NewPendaftaranService(db)

	pasien := createTestPasien(t, pasienService)

	var ids []string
	for i := 0; i < 2; i++ {
		p, err := pendaftaranService.CreatePendaftaran(models.PendaftaranCreateRequest{
			PatientID: pasien.ID,
		})
		if err != nil {
			t.Fatalf("create pendaftaran gagal: %v", err)
		}
		ids = append(ids, p.ID)
	}

	if err := pasienService.DeletePasien(pasien.ID); err != nil {
		t.Fatalf("delete pasien gagal: %v", err)
	}

	for _, id := range ids {
		if _, err := pendaftaranService.GetPendaftaranByID(id); err != sql.ErrNoRows {
			t.Errorf("expected sql.ErrNoRows for pendaftaran %s, got %v", id, err)
		}
	}
	rest, err := pendaftaranService.ListPendaftaranByPatient(pasien.ID)
	if err != nil {
		t.Fatalf("list pendaftaran gagal: %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("expected no registrations left, got %d", len(rest))
	}
}

func TestIntegrationUpdatePasien_PartialDanRekamMedikTetap(t *testing.T) {
	db := testDB(t)
	pasienService := NewPasienService(db)

	pasien := createTestPasien(t, pasienService)

	telepon := "0800"
	updated, err := pasienService.UpdatePasien(pasien.ID, models.PasienPatch{Telepon: &telepon})
	if err != nil {
		t.Fatalf("update pasien gagal: %v", err)
	}

	if updated.Telepon == nil || *updated.Telepon != "0800" {
		t.Error("expected telepon to be updated")
	}
	if updated.RekamMedik != pasien.RekamMedik {
		t.Errorf("rekam_medik must not change: %s -> %s", pasien.RekamMedik, updated.RekamMedik)
	}
	if updated.NamaLengkap != pasien.NamaLengkap {
		t.Errorf("nama_lengkap must not change: %s -> %s", pasien.NamaLengkap, updated.NamaLengkap)
	}
	if updated.Alamat == nil || pasien.Alamat == nil || *updated.Alamat != *pasien.Alamat {
		t.Error("alamat must not change on a telepon-only patch")
	}
}

func TestIntegrationGenerateRekamMedik_Berurutan(t *testing.T) {
	db := testDB(t)
	pasienService := NewPasienService(db)

	first, err := pasienService.GenerateRekamMedik()
	if err != nil {
		t.Fatalf("generate rekam medik gagal: %v", err)
	}
	second, err := pasienService.GenerateRekamMedik()
	if err != nil {
		t.Fatalf("generate rekam medik gagal: %v", err)
	}
	if first == second {
		t.Errorf("two sequential generate calls must not issue the same value: %s", first)
	}
}
