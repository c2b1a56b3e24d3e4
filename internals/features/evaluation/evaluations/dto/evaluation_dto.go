// file: internals/features/evaluation/evaluations/dto/evaluation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	emodel "penilaianguru_backend/internals/features/evaluation/evaluations/model"
)

/* ========================================================
   REQUEST DTO
======================================================== */

// DetailItem: satu butir rating. Rating masih di skala input
// (1–5 siswa/rekan, 1–100 kepala sekolah); dinormalisasi di service.
type DetailItem struct {
	CriterionID    uuid.UUID  `json:"criterion_id" validate:"required"`
	SubcriterionID *uuid.UUID `json:"subcriterion_id" validate:"omitempty"`
	Rating         float64    `json:"rating" validate:"required"`
	Comment        *string    `json:"comment"`
}

type CreateEvaluationRequest struct {
	EvaluationTeacherID uuid.UUID    `json:"evaluation_teacher_id" validate:"required"`
	EvaluationPeriodID  uuid.UUID    `json:"evaluation_period_id" validate:"required"`
	Details             []DetailItem `json:"details" validate:"omitempty,dive"`
	OverallComment      *string      `json:"overall_comment"`
	Finalize            bool         `json:"finalize"` // langsung final? default draft
}

func (r *CreateEvaluationRequest) Normalize() {
	if r.OverallComment != nil {
		t := strings.TrimSpace(*r.OverallComment)
		r.OverallComment = &t
	}
	for i := range r.Details {
		if r.Details[i].Comment != nil {
			t := strings.TrimSpace(*r.Details[i].Comment)
			r.Details[i].Comment = &t
		}
	}
}

type UpdateEvaluationRequest struct {
	Details        []DetailItem `json:"details" validate:"omitempty,dive"`
	OverallComment *string      `json:"overall_comment"`
	Finalize       bool         `json:"finalize"`
}

func (r *UpdateEvaluationRequest) Normalize() {
	if r.OverallComment != nil {
		t := strings.TrimSpace(*r.OverallComment)
		r.OverallComment = &t
	}
	for i := range r.Details {
		if r.Details[i].Comment != nil {
			t := strings.TrimSpace(*r.Details[i].Comment)
			r.Details[i].Comment = &t
		}
	}
}

/* ========================================================
   RESPONSE DTO
======================================================== */

type EvaluationDetailResponse struct {
	EvaluationDetailID             uuid.UUID  `json:"evaluation_detail_id"`
	EvaluationDetailCriterionID    uuid.UUID  `json:"evaluation_detail_criterion_id"`
	EvaluationDetailSubcriterionID *uuid.UUID `json:"evaluation_detail_subcriterion_id,omitempty"`
	EvaluationDetailRating         float64    `json:"evaluation_detail_rating"`
	EvaluationDetailComment        *string    `json:"evaluation_detail_comment,omitempty"`
}

type EvaluationResponse struct {
	EvaluationID              uuid.UUID                  `json:"evaluation_id"`
	EvaluationTeacherID       uuid.UUID                  `json:"evaluation_teacher_id"`
	EvaluationEvaluatorUserID uuid.UUID                  `json:"evaluation_evaluator_user_id"`
	EvaluationPeriodID        uuid.UUID                  `json:"evaluation_period_id"`
	EvaluationKind            string                     `json:"evaluation_kind"`
	EvaluationStatus          string                     `json:"evaluation_status"`
	EvaluationOverallComment  *string                    `json:"evaluation_overall_comment,omitempty"`
	Details                   []EvaluationDetailResponse `json:"details"`
	EvaluationCreatedAt       time.Time                  `json:"evaluation_created_at"`
	EvaluationUpdatedAt       time.Time                  `json:"evaluation_updated_at"`
}

func FromModelEvaluation(m *emodel.EvaluationModel) EvaluationResponse {
	details := make([]EvaluationDetailResponse, 0, len(m.Details))
	for i := range m.Details {
		d := &m.Details[i]
		details = append(details, EvaluationDetailResponse{
			EvaluationDetailID:             d.EvaluationDetailID,
			EvaluationDetailCriterionID:    d.EvaluationDetailCriterionID,
			EvaluationDetailSubcriterionID: d.EvaluationDetailSubcriterionID,
			EvaluationDetailRating:         d.EvaluationDetailRating,
			EvaluationDetailComment:        d.EvaluationDetailComment,
		})
	}
	return EvaluationResponse{
		EvaluationID:              m.EvaluationID,
		EvaluationTeacherID:       m.EvaluationTeacherID,
		EvaluationEvaluatorUserID: m.EvaluationEvaluatorUserID,
		EvaluationPeriodID:        m.EvaluationPeriodID,
		EvaluationKind:            m.EvaluationKind.String(),
		EvaluationStatus:          m.EvaluationStatus.String(),
		EvaluationOverallComment:  m.EvaluationOverallComment,
		Details:                   details,
		EvaluationCreatedAt:       m.EvaluationCreatedAt,
		EvaluationUpdatedAt:       m.EvaluationUpdatedAt,
	}
}

func FromModelsEvaluations(rows []emodel.EvaluationModel) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelEvaluation(&rows[i]))
	}
	return out
}
