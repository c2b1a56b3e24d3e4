// file: internals/features/evaluation/periods/dto/evaluation_period_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pmodel "penilaianguru_backend/internals/features/evaluation/periods/model"
)

/* ========================================================
   REQUEST DTO
======================================================== */

type CreatePeriodRequest struct {
	EvaluationPeriodTitle     string    `json:"evaluation_period_title" validate:"required,max=160"`
	EvaluationPeriodStartDate time.Time `json:"evaluation_period_start_date" validate:"required"`
	EvaluationPeriodEndDate   time.Time `json:"evaluation_period_end_date" validate:"required,gtfield=EvaluationPeriodStartDate"`
}

func (r *CreatePeriodRequest) Normalize() {
	r.EvaluationPeriodTitle = strings.TrimSpace(r.EvaluationPeriodTitle)
}

func (r *CreatePeriodRequest) ToModel() *pmodel.EvaluationPeriodModel {
	return &pmodel.EvaluationPeriodModel{
		EvaluationPeriodTitle:     r.EvaluationPeriodTitle,
		EvaluationPeriodStartDate: r.EvaluationPeriodStartDate,
		EvaluationPeriodEndDate:   r.EvaluationPeriodEndDate,
		EvaluationPeriodStatus:    pmodel.PeriodDraft,
	}
}

type UpdatePeriodRequest struct {
	EvaluationPeriodTitle     *string    `json:"evaluation_period_title" validate:"omitempty,max=160"`
	EvaluationPeriodStartDate *time.Time `json:"evaluation_period_start_date"`
	EvaluationPeriodEndDate   *time.Time `json:"evaluation_period_end_date"`
}

func (r *UpdatePeriodRequest) ApplyToModel(m *pmodel.EvaluationPeriodModel) {
	if r.EvaluationPeriodTitle != nil {
		m.EvaluationPeriodTitle = strings.TrimSpace(*r.EvaluationPeriodTitle)
	}
	if r.EvaluationPeriodStartDate != nil {
		m.EvaluationPeriodStartDate = *r.EvaluationPeriodStartDate
	}
	if r.EvaluationPeriodEndDate != nil {
		m.EvaluationPeriodEndDate = *r.EvaluationPeriodEndDate
	}
}

/* ========================================================
   RESPONSE DTO
======================================================== */

type PeriodResponse struct {
	EvaluationPeriodID        uuid.UUID `json:"evaluation_period_id"`
	EvaluationPeriodTitle     string    `json:"evaluation_period_title"`
	EvaluationPeriodStartDate time.Time `json:"evaluation_period_start_date"`
	EvaluationPeriodEndDate   time.Time `json:"evaluation_period_end_date"`
	EvaluationPeriodStatus    string    `json:"evaluation_period_status"`
	EvaluationPeriodCreatedAt time.Time `json:"evaluation_period_created_at"`
	EvaluationPeriodUpdatedAt time.Time `json:"evaluation_period_updated_at"`
}

func FromModelPeriod(m *pmodel.EvaluationPeriodModel) PeriodResponse {
	return PeriodResponse{
		EvaluationPeriodID:        m.EvaluationPeriodID,
		EvaluationPeriodTitle:     m.EvaluationPeriodTitle,
		EvaluationPeriodStartDate: m.EvaluationPeriodStartDate,
		EvaluationPeriodEndDate:   m.EvaluationPeriodEndDate,
		EvaluationPeriodStatus:    m.EvaluationPeriodStatus.String(),
		EvaluationPeriodCreatedAt: m.EvaluationPeriodCreatedAt,
		EvaluationPeriodUpdatedAt: m.EvaluationPeriodUpdatedAt,
	}
}

func FromModelsPeriods(rows []pmodel.EvaluationPeriodModel) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelPeriod(&rows[i]))
	}
	return out
}
