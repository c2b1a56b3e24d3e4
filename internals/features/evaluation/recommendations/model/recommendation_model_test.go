package model

import "testing"

func TestRecommendationStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from RecommendationStatus
		to   RecommendationStatus
		want bool
	}{
		{RecommendationDraft, RecommendationApproved, true},
		{RecommendationDraft, RecommendationRejected, true},
		{RecommendationDraft, RecommendationImplemented, false},
		{RecommendationApproved, RecommendationImplemented, true},
		{RecommendationApproved, RecommendationDraft, false},
		{RecommendationRejected, RecommendationDraft, false},
		{RecommendationRejected, RecommendationImplemented, false},
		{RecommendationImplemented, RecommendationDraft, false},
		{RecommendationImplemented, RecommendationApproved, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s → %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRecommendationStatusValid(t *testing.T) {
	for _, s := range []RecommendationStatus{
		RecommendationDraft, RecommendationApproved, RecommendationRejected, RecommendationImplemented,
	} {
		if !s.Valid() {
			t.Errorf("%q harus valid", s)
		}
	}
	if RecommendationStatus("archived").Valid() {
		t.Error("status di luar enum harus ditolak")
	}
}
