package model

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from EvaluationPeriodStatus
		to   EvaluationPeriodStatus
		want bool
	}{
		{PeriodDraft, PeriodActive, true},
		{PeriodDraft, PeriodCompleted, false},
		{PeriodActive, PeriodCompleted, true},
		{PeriodActive, PeriodDraft, false},
		{PeriodCompleted, PeriodActive, false},
		{PeriodCompleted, PeriodDraft, false},
	}
	for _, tt := range tests {
		m := &EvaluationPeriodModel{EvaluationPeriodStatus: tt.from}
		if got := m.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s → %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []EvaluationPeriodStatus{PeriodDraft, PeriodActive, PeriodCompleted} {
		if !s.Valid() {
			t.Errorf("%q harus valid", s)
		}
	}
	if EvaluationPeriodStatus("archived").Valid() {
		t.Error("status di luar enum harus ditolak")
	}
}
