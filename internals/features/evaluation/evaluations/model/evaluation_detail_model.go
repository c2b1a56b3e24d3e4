// file: internals/features/evaluation/evaluations/model/evaluation_detail_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: evaluation_details
   - criterion_id wajib (tidak ada lagi baris sentinel criterion NULL untuk
     komentar umum; itu pindah ke evaluations.evaluation_overall_comment).
   - subcriterion_id terisi hanya kalau kriterianya terdekomposisi.
   - rating disimpan kanonik, numeric(5,2). Input siswa/rekan 1–5; input
     supervisor 1–100 dibagi 20, jadi nilai sah terkecil 0.05 — check
     constraint-nya > 0, bukan >= 1.
============================================================================= */
type EvaluationDetailModel struct {
	// PK
	EvaluationDetailID uuid.UUID `json:"evaluation_detail_id" gorm:"column:evaluation_detail_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	EvaluationDetailEvaluationID uuid.UUID  `json:"evaluation_detail_evaluation_id" gorm:"column:evaluation_detail_evaluation_id;type:uuid;not null;index:idx_eval_detail_evaluation"`
	EvaluationDetailCriterionID  uuid.UUID  `json:"evaluation_detail_criterion_id" gorm:"column:evaluation_detail_criterion_id;type:uuid;not null;index:idx_eval_detail_criterion"`
	EvaluationDetailSubcriterionID *uuid.UUID `json:"evaluation_detail_subcriterion_id,omitempty" gorm:"column:evaluation_detail_subcriterion_id;type:uuid;index:idx_eval_detail_subcriterion"`

	// Nilai
	EvaluationDetailRating  float64 `json:"evaluation_detail_rating" gorm:"column:evaluation_detail_rating;type:numeric(5,2);not null;check:evaluation_detail_rating > 0 AND evaluation_detail_rating <= 5"`
	EvaluationDetailComment *string `json:"evaluation_detail_comment,omitempty" gorm:"column:evaluation_detail_comment;type:text"`

	// Audit
	EvaluationDetailCreatedAt time.Time `json:"evaluation_detail_created_at" gorm:"column:evaluation_detail_created_at;type:timestamptz;not null;default:now()"`
	EvaluationDetailUpdatedAt time.Time `json:"evaluation_detail_updated_at" gorm:"column:evaluation_detail_updated_at;type:timestamptz;not null;default:now()"`
}

func (EvaluationDetailModel) TableName() string { return "evaluation_details" }

func (m *EvaluationDetailModel) BeforeSave(_ *gorm.DB) error {
	m.EvaluationDetailUpdatedAt = time.Now()
	return nil
}
