package model

import "testing"

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		name    string
		kind    EvaluationKind
		raw     float64
		want    float64
		wantErr bool
	}{
		{"siswa batas bawah", KindStudent, 1, 1, false},
		{"siswa batas atas", KindStudent, 5, 5, false},
		{"siswa nol", KindStudent, 0, 0, true},
		{"siswa lewat atas", KindStudent, 6, 0, true},
		{"siswa pecahan ditolak", KindStudent, 3.5, 0, true},
		{"peer valid", KindPeer, 4, 4, false},
		{"peer pecahan ditolak", KindPeer, 2.5, 0, true},
		{"supervisor 100 → 5", KindSupervisor, 100, 5, false},
		{"supervisor 80 → 4", KindSupervisor, 80, 4, false},
		{"supervisor 70 → 3.5", KindSupervisor, 70, 3.5, false},
		{"supervisor batas bawah", KindSupervisor, 1, 0.05, false},
		{"supervisor nol", KindSupervisor, 0, 0, true},
		{"supervisor lewat atas", KindSupervisor, 101, 0, true},
		{"kind tak dikenal", EvaluationKind("admin"), 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRating(tt.kind, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeRating(%s, %v): harus error", tt.kind, tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeRating(%s, %v): %v", tt.kind, tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeRating(%s, %v) = %v, want %v", tt.kind, tt.raw, got, tt.want)
			}
		})
	}
}

// Seluruh input supervisor yang sah harus menghasilkan nilai kanonik yang
// masuk rentang kolom rating (> 0 dan <= 5) — rating rendah yang valid
// (1–19 → 0.05–0.95) tidak boleh tertolak constraint saat insert.
func TestNormalizeRatingStaysInColumnRange(t *testing.T) {
	for raw := 1; raw <= 100; raw++ {
		got, err := NormalizeRating(KindSupervisor, float64(raw))
		if err != nil {
			t.Fatalf("NormalizeRating(supervisor, %d): %v", raw, err)
		}
		if got <= 0 || got > 5 {
			t.Errorf("NormalizeRating(supervisor, %d) = %v, di luar rentang kolom (0, 5]", raw, got)
		}
	}
	for raw := 1; raw <= 5; raw++ {
		got, err := NormalizeRating(KindStudent, float64(raw))
		if err != nil {
			t.Fatalf("NormalizeRating(student, %d): %v", raw, err)
		}
		if got <= 0 || got > 5 {
			t.Errorf("NormalizeRating(student, %d) = %v, di luar rentang kolom (0, 5]", raw, got)
		}
	}
}

func TestKindAllowsEditAfterFinal(t *testing.T) {
	if KindAllowsEditAfterFinal(KindStudent) {
		t.Error("penilaian siswa harus terkunci setelah final")
	}
	if KindAllowsEditAfterFinal(KindPeer) {
		t.Error("penilaian rekan sejawat harus terkunci setelah final")
	}
	if !KindAllowsEditAfterFinal(KindSupervisor) {
		t.Error("penilaian kepala sekolah boleh diedit setelah final selama periode aktif")
	}
}

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name   string
		kind   EvaluationKind
		status EvaluationStatus
		want   bool
	}{
		{"draft siswa", KindStudent, EvaluationDraft, true},
		{"final siswa", KindStudent, EvaluationFinal, false},
		{"final peer", KindPeer, EvaluationFinal, false},
		{"draft supervisor", KindSupervisor, EvaluationDraft, true},
		{"final supervisor", KindSupervisor, EvaluationFinal, true},
	}
	for _, tt := range tests {
		m := &EvaluationModel{EvaluationKind: tt.kind, EvaluationStatus: tt.status}
		if got := m.CanEdit(); got != tt.want {
			t.Errorf("%s: CanEdit() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
