package service

import (
	"math"
	"testing"

	rmodel "penilaianguru_backend/internals/features/evaluation/results/model"
)

func snapshot(score100 float64) rmodel.EvaluationResultModel {
	return rmodel.EvaluationResultModel{EvaluationResultFinalScore100: score100}
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name       string
		history    []rmodel.EvaluationResultModel // terbaru dulu
		wantDir    string
		wantPct    float64
		wantPctNil bool
	}{
		{
			name:    "naik",
			history: []rmodel.EvaluationResultModel{snapshot(80), snapshot(72)},
			wantDir: TrendNaik,
			wantPct: 11.11,
		},
		{
			name:    "turun",
			history: []rmodel.EvaluationResultModel{snapshot(60), snapshot(75)},
			wantDir: TrendTurun,
			wantPct: -20,
		},
		{
			name:    "tetap",
			history: []rmodel.EvaluationResultModel{snapshot(70), snapshot(70)},
			wantDir: TrendTetap,
			wantPct: 0,
		},
		{
			name:       "previous nol: arah ada, persen tidak",
			history:    []rmodel.EvaluationResultModel{snapshot(80), snapshot(0)},
			wantDir:    TrendNaik,
			wantPctNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTrend(tt.history)
			if got.Direction == nil {
				t.Fatal("Direction nil, harus terisi")
			}
			if *got.Direction != tt.wantDir {
				t.Errorf("Direction = %q, want %q", *got.Direction, tt.wantDir)
			}
			if tt.wantPctNil {
				if got.PercentChange != nil {
					t.Errorf("PercentChange = %v, harus nil saat previous 0", *got.PercentChange)
				}
				return
			}
			if got.PercentChange == nil {
				t.Fatal("PercentChange nil, harus terisi")
			}
			if math.Abs(*got.PercentChange-tt.wantPct) > 1e-9 {
				t.Errorf("PercentChange = %v, want %v", *got.PercentChange, tt.wantPct)
			}
		})
	}
}

func TestComputeTrendNeedsTwoSnapshots(t *testing.T) {
	for _, history := range [][]rmodel.EvaluationResultModel{nil, {snapshot(80)}} {
		got := ComputeTrend(history)
		if got.Direction != nil || got.PercentChange != nil {
			t.Errorf("riwayat %d snapshot: tren harus kosong, dapat %+v", len(history), got)
		}
	}
}
