package models

import (
	"testing"
)

func validRequest() AssessmentCreateRequest {
	return AssessmentCreateRequest{
		PatientID: "a3b8d425-2b60-4ad7-becc-bedf2ef860bd",
		FormData:  AssessmentFormData{KeluhanUtama: "Sakit gigi belakang"},
		SelectedICD10: []ICD10Item{
			{Kode: "K02.1", Nama: "Karies dentin", Jenis: "Primer"},
		},
		SelectedICD9: []ICD9Item{
			{Kode: "23.2", Nama: "Restorasi gigi dengan tambalan"},
		},
		SelectedTindakan: []TindakanItem{
			{Nama: "Tambal komposit", Jumlah: 2, Biaya: 150000},
		},
		SelectedResep: []ResepItem{
			{Nama: "Asam mefenamat", Jumlah: "10", Signa: "3x1"},
		},
	}
}

func TestAssessmentValidate_OK(t *testing.T) {
	req := validRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssessmentValidate_MissingPatientID(t *testing.T) {
	req := validRequest()
	req.PatientID = ""
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for missing patient_id")
	}
}

func TestAssessmentValidate_BadICD10(t *testing.T) {
	req := validRequest()
	req.SelectedICD10 = append(req.SelectedICD10, ICD10Item{Kode: "K04.0"})
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for ICD-10 item without nama")
	}
}

func TestAssessmentValidate_BadResep(t *testing.T) {
	req := validRequest()
	req.SelectedResep = []ResepItem{{Nama: "Amoxicillin", Jumlah: "15"}}
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for resep without signa")
	}
}

func TestAssessmentValidate_BadTindakan(t *testing.T) {
	req := validRequest()
	req.SelectedTindakan = []TindakanItem{{Nama: "Scaling", Jumlah: 0, Biaya: 200000}}
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for tindakan with jumlah 0")
	}
}

func TestNormalizeTindakan(t *testing.T) {
	items := []TindakanItem{
		{Nama: "Tambal komposit", Jumlah: 2, Biaya: 150000, Total: 1}, // total client diabaikan
		{Nama: "Scaling", Jumlah: 1, Biaya: 250000},
	}
	normalized, total := NormalizeTindakan(items)
	if normalized[0].Total != 300000 {
		t.Errorf("expected 300000, got %v", normalized[0].Total)
	}
	if normalized[1].Total != 250000 {
		t.Errorf("expected 250000, got %v", normalized[1].Total)
	}
	if total != 550000 {
		t.Errorf("expected grand total 550000, got %v", total)
	}
	// slice asal tidak boleh berubah
	if items[0].Total != 1 {
		t.Error("input slice must not be mutated")
	}
}

func TestNormalizeTindakan_Empty(t *testing.T) {
	normalized, total := NormalizeTindakan(nil)
	if len(normalized) != 0 || total != 0 {
		t.Errorf("expected empty result, got %v total %v", normalized, total)
	}
}

func TestAssessmentLabel_JoinsICD10Names(t *testing.T) {
	label := AssessmentLabel([]ICD10Item{
		{Kode: "K02.1", Nama: "Karies dentin"},
		{Kode: "K04.0", Nama: "Pulpitis"},
	}, "Sakit gigi")
	if label != "Karies dentin, Pulpitis" {
		t.Errorf("unexpected label: %q", label)
	}
}

func TestAssessmentLabel_FallbackKeluhanUtama(t *testing.T) {
	label := AssessmentLabel(nil, "Gusi bengkak")
	if label != "Gusi bengkak" {
		t.Errorf("unexpected label: %q", label)
	}
}

func TestMarshalList_NilBecomesEmptyArray(t *testing.T) {
	var items []ICD10Item
	data, err := MarshalList(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected [], got %s", data)
	}
}

func TestMarshalList_KeepsContent(t *testing.T) {
	data, err := MarshalList([]ICD9Item{{Kode: "96.54", Nama: "Scaling dan polishing"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"kode":"96.54","nama":"Scaling dan polishing"}]`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}
