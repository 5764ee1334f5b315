package services

import (
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"

	"github.com/klinik-trah/klinik-backend/pkg/storage/postgres"
)

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

// Riwayat assessment harus keluar urut kronologis dari yang paling lama,
// apa pun urutan barisnya ditulis.
func TestIntegrationListHistoryByPatient_Kronologis(t *testing.T) {
	db := testDB(t)
	service := NewAssessmentService(db)
	if err := service.EnsureTable(); err != nil {
		t.Fatalf("ensure table gagal: %v", err)
	}

	var patientID string
	err := db.QueryRow(`
		INSERT INTO patients (rekam_medik, nama_lengkap)
		VALUES (generate_rekam_medik(), 'Pasien Riwayat')
		RETURNING id`).Scan(&patientID)
	if err != nil {
		t.Fatalf("insert pasien gagal: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM patients WHERE id = $1", patientID) })

	older := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	// Baris terbaru sengaja ditulis lebih dulu.
	for _, row := range []struct {
		label string
		waktu time.Time
	}{
		{"kunjungan kedua", newer},
		{"kunjungan pertama", older},
	} {
		_, err := db.Exec(`
			INSERT INTO assessments (patient_id, dokter, assessment, waktu)
			VALUES ($1, $2, $3, $4)`,
			patientID, "drg. Tes", row.label, row.waktu)
		if err != nil {
			t.Fatalf("insert assessment gagal: %v", err)
		}
	}

	history, err := service.ListHistoryByPatient(patientID)
	if err != nil {
		t.Fatalf("list history gagal: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(history))
	}
	if history[0].Assessment != "kunjungan pertama" || history[1].Assessment != "kunjungan kedua" {
		t.Errorf("expected oldest-first order, got [%s, %s]",
			history[0].Assessment, history[1].Assessment)
	}
	if !history[0].Waktu.Before(history[1].Waktu) {
		t.Errorf("expected ascending waktu, got %v then %v", history[0].Waktu, history[1].Waktu)
	}
}
