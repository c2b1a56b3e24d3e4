// file: internals/features/evaluation/results/model/evaluation_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: evaluation_results (snapshot)
   - Satu baris per (teacher, period), ditimpa tiap hitung ulang
     (last-writer-wins; langkah baca-hitung-tulis diserialkan row lock).
   - Skor kanonik skala 1–5; final_score_100 = final_score × 20 untuk
     tampilan/ekspor; kategori dari tabel ambang skala 100.
   - breakdown: JSON per-kriteria terurut (skor desc), dipakai layer laporan.
============================================================================= */
type EvaluationResultModel struct {
	// PK
	EvaluationResultID uuid.UUID `json:"evaluation_result_id" gorm:"column:evaluation_result_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Kunci snapshot
	EvaluationResultTeacherID uuid.UUID `json:"evaluation_result_teacher_id" gorm:"column:evaluation_result_teacher_id;type:uuid;not null;uniqueIndex:uq_result_teacher_period,priority:1"`
	EvaluationResultPeriodID  uuid.UUID `json:"evaluation_result_period_id" gorm:"column:evaluation_result_period_id;type:uuid;not null;uniqueIndex:uq_result_teacher_period,priority:2"`

	// Rata-rata per bucket evaluator (kanonik 1–5, nil kalau bucket kosong)
	EvaluationResultStudentAvg    *float64 `json:"evaluation_result_student_avg,omitempty" gorm:"column:evaluation_result_student_avg;type:numeric(5,2)"`
	EvaluationResultPeerAvg       *float64 `json:"evaluation_result_peer_avg,omitempty" gorm:"column:evaluation_result_peer_avg;type:numeric(5,2)"`
	EvaluationResultSupervisorAvg *float64 `json:"evaluation_result_supervisor_avg,omitempty" gorm:"column:evaluation_result_supervisor_avg;type:numeric(5,2)"`

	// Skor akhir
	EvaluationResultFinalScore    float64 `json:"evaluation_result_final_score" gorm:"column:evaluation_result_final_score;type:numeric(5,2);not null;default:0"`
	EvaluationResultFinalScore100 float64 `json:"evaluation_result_final_score_100" gorm:"column:evaluation_result_final_score_100;type:numeric(5,2);not null;default:0"`
	EvaluationResultCategory      string  `json:"evaluation_result_category" gorm:"column:evaluation_result_category;type:varchar(20);not null"`

	// Rincian per kriteria (terurut skor desc)
	EvaluationResultBreakdown datatypes.JSON `json:"evaluation_result_breakdown,omitempty" gorm:"column:evaluation_result_breakdown;type:jsonb"`

	// Jumlah penilaian final per bucket
	EvaluationResultStudentCount    int `json:"evaluation_result_student_count" gorm:"column:evaluation_result_student_count;not null;default:0"`
	EvaluationResultPeerCount       int `json:"evaluation_result_peer_count" gorm:"column:evaluation_result_peer_count;not null;default:0"`
	EvaluationResultSupervisorCount int `json:"evaluation_result_supervisor_count" gorm:"column:evaluation_result_supervisor_count;not null;default:0"`

	EvaluationResultComputedAt time.Time `json:"evaluation_result_computed_at" gorm:"column:evaluation_result_computed_at;type:timestamptz;not null;default:now()"`

	// Audit
	EvaluationResultCreatedAt time.Time `json:"evaluation_result_created_at" gorm:"column:evaluation_result_created_at;type:timestamptz;not null;default:now()"`
	EvaluationResultUpdatedAt time.Time `json:"evaluation_result_updated_at" gorm:"column:evaluation_result_updated_at;type:timestamptz;not null;default:now()"`
}

func (EvaluationResultModel) TableName() string { return "evaluation_results" }

func (m *EvaluationResultModel) BeforeSave(_ *gorm.DB) error {
	m.EvaluationResultUpdatedAt = time.Now()
	return nil
}
