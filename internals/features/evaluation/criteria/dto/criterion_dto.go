// file: internals/features/evaluation/criteria/dto/criterion_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	cmodel "penilaianguru_backend/internals/features/evaluation/criteria/model"
)

/* ========================================================
   REQUEST DTO
======================================================== */

type CreateCriterionRequest struct {
	CriterionName        string  `json:"criterion_name" validate:"required,max=160"`
	CriterionDescription *string `json:"criterion_description"`
	CriterionWeight      float64 `json:"criterion_weight" validate:"gte=0,lte=100"`
	CriterionIsActive    *bool   `json:"criterion_is_active"`
}

func (r *CreateCriterionRequest) Normalize() {
	r.CriterionName = strings.TrimSpace(r.CriterionName)
	if r.CriterionDescription != nil {
		t := strings.TrimSpace(*r.CriterionDescription)
		r.CriterionDescription = &t
	}
	if r.CriterionIsActive == nil {
		b := true
		r.CriterionIsActive = &b
	}
}

func (r *CreateCriterionRequest) ToModel() *cmodel.CriterionModel {
	return &cmodel.CriterionModel{
		CriterionName:        r.CriterionName,
		CriterionDescription: r.CriterionDescription,
		CriterionWeight:      r.CriterionWeight,
		CriterionIsActive:    *r.CriterionIsActive,
	}
}

type UpdateCriterionRequest struct {
	CriterionName        *string  `json:"criterion_name" validate:"omitempty,max=160"`
	CriterionDescription *string  `json:"criterion_description"`
	CriterionWeight      *float64 `json:"criterion_weight" validate:"omitempty,gte=0,lte=100"`
	CriterionIsActive    *bool    `json:"criterion_is_active"`
}

func (r *UpdateCriterionRequest) ApplyToModel(m *cmodel.CriterionModel) {
	if r.CriterionName != nil {
		m.CriterionName = strings.TrimSpace(*r.CriterionName)
	}
	if r.CriterionDescription != nil {
		t := strings.TrimSpace(*r.CriterionDescription)
		m.CriterionDescription = &t
	}
	if r.CriterionWeight != nil {
		m.CriterionWeight = *r.CriterionWeight
	}
	if r.CriterionIsActive != nil {
		m.CriterionIsActive = *r.CriterionIsActive
	}
}

/* ========================================================
   RESPONSE DTO
======================================================== */

type CriterionResponse struct {
	CriterionID          uuid.UUID               `json:"criterion_id"`
	CriterionName        string                  `json:"criterion_name"`
	CriterionDescription *string                 `json:"criterion_description,omitempty"`
	CriterionWeight      float64                 `json:"criterion_weight"`
	CriterionIsActive    bool                    `json:"criterion_is_active"`
	Subcriterias         []SubcriterionResponse  `json:"subcriterias"`
	CriterionCreatedAt   time.Time               `json:"criterion_created_at"`
	CriterionUpdatedAt   time.Time               `json:"criterion_updated_at"`
}

func FromModelCriterion(m *cmodel.CriterionModel) CriterionResponse {
	subs := make([]SubcriterionResponse, 0, len(m.Subcriterias))
	for i := range m.Subcriterias {
		subs = append(subs, FromModelSubcriterion(&m.Subcriterias[i]))
	}
	return CriterionResponse{
		CriterionID:          m.CriterionID,
		CriterionName:        m.CriterionName,
		CriterionDescription: m.CriterionDescription,
		CriterionWeight:      m.CriterionWeight,
		CriterionIsActive:    m.CriterionIsActive,
		Subcriterias:         subs,
		CriterionCreatedAt:   m.CriterionCreatedAt,
		CriterionUpdatedAt:   m.CriterionUpdatedAt,
	}
}

func FromModelsCriterias(rows []cmodel.CriterionModel) []CriterionResponse {
	out := make([]CriterionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelCriterion(&rows[i]))
	}
	return out
}
