// file: internals/features/evaluation/recommendations/dto/recommendation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	rmodel "penilaianguru_backend/internals/features/evaluation/recommendations/model"
)

/* ========================================================
   REQUEST DTO
======================================================== */

type CreateRecommendationRequest struct {
	RecommendationTeacherID uuid.UUID `json:"recommendation_teacher_id" validate:"required"`
	RecommendationPeriodID  uuid.UUID `json:"recommendation_period_id" validate:"required"`
	RecommendationContent   string    `json:"recommendation_content" validate:"required,min=3"`
}

func (r *CreateRecommendationRequest) Normalize() {
	r.RecommendationContent = strings.TrimSpace(r.RecommendationContent)
}

func (r *CreateRecommendationRequest) ToModel(authorUserID uuid.UUID) *rmodel.RecommendationModel {
	return &rmodel.RecommendationModel{
		RecommendationTeacherID:    r.RecommendationTeacherID,
		RecommendationPeriodID:     r.RecommendationPeriodID,
		RecommendationContent:      r.RecommendationContent,
		RecommendationAuthorUserID: authorUserID,
		RecommendationStatus:       rmodel.RecommendationDraft,
	}
}

type UpdateRecommendationRequest struct {
	RecommendationContent *string `json:"recommendation_content" validate:"omitempty,min=3"`
	RecommendationStatus  *string `json:"recommendation_status" validate:"omitempty,oneof=draft approved rejected implemented"`
}

func (r *UpdateRecommendationRequest) Normalize() {
	if r.RecommendationContent != nil {
		t := strings.TrimSpace(*r.RecommendationContent)
		r.RecommendationContent = &t
	}
}

func (r *UpdateRecommendationRequest) ApplyToModel(m *rmodel.RecommendationModel) {
	if r.RecommendationContent != nil {
		m.RecommendationContent = *r.RecommendationContent
	}
	if r.RecommendationStatus != nil {
		m.RecommendationStatus = rmodel.RecommendationStatus(*r.RecommendationStatus)
	}
}

/* ========================================================
   RESPONSE DTO
======================================================== */

type RecommendationResponse struct {
	RecommendationID           uuid.UUID `json:"recommendation_id"`
	RecommendationTeacherID    uuid.UUID `json:"recommendation_teacher_id"`
	RecommendationPeriodID     uuid.UUID `json:"recommendation_period_id"`
	RecommendationContent      string    `json:"recommendation_content"`
	RecommendationAuthorUserID uuid.UUID `json:"recommendation_author_user_id"`
	RecommendationStatus       string    `json:"recommendation_status"`
	RecommendationCreatedAt    time.Time `json:"recommendation_created_at"`
	RecommendationUpdatedAt    time.Time `json:"recommendation_updated_at"`
}

func FromModelRecommendation(m *rmodel.RecommendationModel) RecommendationResponse {
	return RecommendationResponse{
		RecommendationID:           m.RecommendationID,
		RecommendationTeacherID:    m.RecommendationTeacherID,
		RecommendationPeriodID:     m.RecommendationPeriodID,
		RecommendationContent:      m.RecommendationContent,
		RecommendationAuthorUserID: m.RecommendationAuthorUserID,
		RecommendationStatus:       m.RecommendationStatus.String(),
		RecommendationCreatedAt:    m.RecommendationCreatedAt,
		RecommendationUpdatedAt:    m.RecommendationUpdatedAt,
	}
}

func FromModelsRecommendations(rows []rmodel.RecommendationModel) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelRecommendation(&rows[i]))
	}
	return out
}
