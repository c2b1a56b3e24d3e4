// file: internals/features/evaluation/criteria/dto/subcriterion_dto.go
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

type CreateSubcriterionRequest struct {
	SubcriterionCriterionID uuid.UUID `json:"subcriterion_criterion_id" validate:"required"`
	SubcriterionName        string    `json:"subcriterion_name" validate:"required,max=160"`
	SubcriterionDescription *string   `json:"subcriterion_description"`
	SubcriterionWeight      float64   `json:"subcriterion_weight" validate:"gte=0,lte=100"`
	SubcriterionOrderNum    int       `json:"subcriterion_order_num" validate:"gte=0"`
	SubcriterionIsActive    *bool     `json:"subcriterion_is_active"`
}

func (r *CreateSubcriterionRequest) Normalize() {
	r.SubcriterionName = strings.TrimSpace(r.SubcriterionName)
	if r.SubcriterionDescription != nil {
		t := strings.TrimSpace(*r.SubcriterionDescription)
		r.SubcriterionDescription = &t
	}
	if r.SubcriterionIsActive == nil {
		b := true
		r.SubcriterionIsActive = &b
	}
}

func (r *CreateSubcriterionRequest) ToModel() *cmodel.SubcriterionModel {
	return &cmodel.SubcriterionModel{
		SubcriterionCriterionID: r.SubcriterionCriterionID,
		SubcriterionName:        r.SubcriterionName,
		SubcriterionDescription: r.SubcriterionDescription,
		SubcriterionWeight:      r.SubcriterionWeight,
		SubcriterionOrderNum:    r.SubcriterionOrderNum,
		SubcriterionIsActive:    *r.SubcriterionIsActive,
	}
}

type UpdateSubcriterionRequest struct {
	SubcriterionName        *string  `json:"subcriterion_name" validate:"omitempty,max=160"`
	SubcriterionDescription *string  `json:"subcriterion_description"`
	SubcriterionWeight      *float64 `json:"subcriterion_weight" validate:"omitempty,gte=0,lte=100"`
	SubcriterionOrderNum    *int     `json:"subcriterion_order_num" validate:"omitempty,gte=0"`
	SubcriterionIsActive    *bool    `json:"subcriterion_is_active"`
}

func (r *UpdateSubcriterionRequest) ApplyToModel(m *cmodel.SubcriterionModel) {
	if r.SubcriterionName != nil {
		m.SubcriterionName = strings.TrimSpace(*r.SubcriterionName)
	}
	if r.SubcriterionDescription != nil {
		t := strings.TrimSpace(*r.SubcriterionDescription)
		m.SubcriterionDescription = &t
	}
	if r.SubcriterionWeight != nil {
		m.SubcriterionWeight = *r.SubcriterionWeight
	}
	if r.SubcriterionOrderNum != nil {
		m.SubcriterionOrderNum = *r.SubcriterionOrderNum
	}
	if r.SubcriterionIsActive != nil {
		m.SubcriterionIsActive = *r.SubcriterionIsActive
	}
}

/* ========================================================
   RESPONSE DTO
======================================================== */

type SubcriterionResponse struct {
	SubcriterionID          uuid.UUID `json:"subcriterion_id"`
	SubcriterionCriterionID uuid.UUID `json:"subcriterion_criterion_id"`
	SubcriterionName        string    `json:"subcriterion_name"`
	SubcriterionDescription *string   `json:"subcriterion_description,omitempty"`
	SubcriterionWeight      float64   `json:"subcriterion_weight"`
	SubcriterionOrderNum    int       `json:"subcriterion_order_num"`
	SubcriterionIsActive    bool      `json:"subcriterion_is_active"`
	SubcriterionCreatedAt   time.Time `json:"subcriterion_created_at"`
	SubcriterionUpdatedAt   time.Time `json:"subcriterion_updated_at"`
}

func FromModelSubcriterion(m *cmodel.SubcriterionModel) SubcriterionResponse {
	return SubcriterionResponse{
		SubcriterionID:          m.SubcriterionID,
		SubcriterionCriterionID: m.SubcriterionCriterionID,
		SubcriterionName:        m.SubcriterionName,
		SubcriterionDescription: m.SubcriterionDescription,
		SubcriterionWeight:      m.SubcriterionWeight,
		SubcriterionOrderNum:    m.SubcriterionOrderNum,
		SubcriterionIsActive:    m.SubcriterionIsActive,
		SubcriterionCreatedAt:   m.SubcriterionCreatedAt,
		SubcriterionUpdatedAt:   m.SubcriterionUpdatedAt,
	}
}
