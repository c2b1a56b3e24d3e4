package service

import (
	"testing"

	"github.com/google/uuid"

	cmodel "penilaianguru_backend/internals/features/evaluation/criteria/model"
)

func criterion(name string, weight float64, active bool, subWeights ...float64) cmodel.CriterionModel {
	c := cmodel.CriterionModel{
		CriterionID:       uuid.New(),
		CriterionName:     name,
		CriterionWeight:   weight,
		CriterionIsActive: active,
	}
	for i, w := range subWeights {
		c.Subcriterias = append(c.Subcriterias, cmodel.SubcriterionModel{
			SubcriterionID:          uuid.New(),
			SubcriterionCriterionID: c.CriterionID,
			SubcriterionWeight:      w,
			SubcriterionOrderNum:    i + 1,
			SubcriterionIsActive:    true,
		})
	}
	return c
}

func TestValidateCatalogWeights(t *testing.T) {
	tests := []struct {
		name      string
		criterias []cmodel.CriterionModel
		wantErr   bool
	}{
		{
			"katalog konsisten",
			[]cmodel.CriterionModel{
				criterion("Pedagogik", 60, true, 50, 50),
				criterion("Kedisiplinan", 40, true),
			},
			false,
		},
		{
			"toleransi pembulatan",
			[]cmodel.CriterionModel{
				criterion("A", 33.33, true),
				criterion("B", 33.33, true),
				criterion("C", 33.34, true),
			},
			false,
		},
		{
			"kriteria nonaktif tidak dihitung",
			[]cmodel.CriterionModel{
				criterion("Aktif", 100, true),
				criterion("Mati", 50, false),
			},
			false,
		},
		{
			"total kriteria bukan 100",
			[]cmodel.CriterionModel{
				criterion("A", 60, true),
				criterion("B", 30, true),
			},
			true,
		},
		{
			"total subkriteria bukan 100",
			[]cmodel.CriterionModel{
				criterion("Pedagogik", 100, true, 60, 30),
			},
			true,
		},
		{
			"katalog kosong",
			nil,
			true,
		},
		{
			"semua nonaktif",
			[]cmodel.CriterionModel{criterion("Mati", 100, false)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalogWeights(tt.criterias)
			if tt.wantErr && err == nil {
				t.Error("harus error, dapat nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("harus nil, dapat: %v", err)
			}
		})
	}
}

func TestSumActiveWeights(t *testing.T) {
	criterias := []cmodel.CriterionModel{
		criterion("A", 25, true),
		criterion("B", 75, true),
		criterion("C", 10, false),
	}
	if got := SumActiveCriterionWeights(criterias); got != 100 {
		t.Errorf("SumActiveCriterionWeights = %v, want 100", got)
	}

	subs := []cmodel.SubcriterionModel{
		{SubcriterionWeight: 40, SubcriterionIsActive: true},
		{SubcriterionWeight: 60, SubcriterionIsActive: true},
		{SubcriterionWeight: 30, SubcriterionIsActive: false},
	}
	if got := SumActiveSubcriterionWeights(subs); got != 100 {
		t.Errorf("SumActiveSubcriterionWeights = %v, want 100", got)
	}
}
