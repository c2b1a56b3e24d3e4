// file: internals/features/evaluation/reports/service/trend_service.go
package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	emodel "penilaianguru_backend/internals/features/evaluation/evaluations/model"
	rmodel "penilaianguru_backend/internals/features/evaluation/results/model"
	rservice "penilaianguru_backend/internals/features/evaluation/results/service"
)

/* =============================================================================
   Layer laporan/tren — turunan murni dari snapshot & penilaian final.
============================================================================= */

const (
	TrendNaik  = "naik"
	TrendTurun = "turun"
	TrendTetap = "tetap"
)

// Trend: arah perubahan antara dua periode terakhir. Direction & PercentChange
// nil kalau riwayat < 2 snapshot; PercentChange juga nil kalau skor periode
// sebelumnya 0 (pembagi nol bukan "0%").
type Trend struct {
	Direction     *string  `json:"direction,omitempty"`
	PercentChange *float64 `json:"percent_change,omitempty"`
	LatestScore   *float64 `json:"latest_score_100,omitempty"`
	PreviousScore *float64 `json:"previous_score_100,omitempty"`
}

// ComputeTrend menerima riwayat snapshot TERURUT terbaru dulu (urutan
// ListForTeacher) dan membandingkan skor 100 dua teratas.
func ComputeTrend(history []rmodel.EvaluationResultModel) Trend {
	if len(history) < 2 {
		return Trend{}
	}

	latest := history[0].EvaluationResultFinalScore100
	previous := history[1].EvaluationResultFinalScore100

	var dir string
	switch {
	case latest > previous:
		dir = TrendNaik
	case latest < previous:
		dir = TrendTurun
	default:
		dir = TrendTetap
	}

	t := Trend{Direction: &dir, LatestScore: &latest, PreviousScore: &previous}
	if previous > 0 {
		pct := math.Round((latest-previous)/previous*100*100) / 100
		t.PercentChange = &pct
	}
	return t
}

/* =========================================================
   Queries
========================================================= */

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// TrendForTeacher: riwayat + tren seorang guru.
func (s *ReportService) TrendForTeacher(ctx context.Context, teacherID uuid.UUID) ([]rmodel.EvaluationResultModel, Trend, error) {
	history, err := rservice.NewResultService(s.DB).ListForTeacher(ctx, teacherID)
	if err != nil {
		return nil, Trend{}, err
	}
	return history, ComputeTrend(history), nil
}

type RoleCount struct {
	Kind  string `json:"kind"`
	Count int64  `json:"count"`
}

// EvaluatorCountsByRole: jumlah penilaian FINAL per bucket evaluator untuk
// (guru, periode) — bahan ekspor spreadsheet.
func (s *ReportService) EvaluatorCountsByRole(ctx context.Context, teacherID, periodID uuid.UUID) ([]RoleCount, error) {
	var rows []RoleCount
	err := s.DB.WithContext(ctx).
		Model(&emodel.EvaluationModel{}).
		Select("evaluation_kind AS kind, COUNT(*) AS count").
		Where(`evaluation_teacher_id = ?
			AND evaluation_period_id = ?
			AND evaluation_status = ?`, teacherID, periodID, emodel.EvaluationFinal).
		Group("evaluation_kind").
		Order("evaluation_kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
