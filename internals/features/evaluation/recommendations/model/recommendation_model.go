// file: internals/features/evaluation/recommendations/model/recommendation_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Recommendation Status
============================================================================= */
type RecommendationStatus string

const (
	RecommendationDraft       RecommendationStatus = "draft"
	RecommendationApproved    RecommendationStatus = "approved"
	RecommendationRejected    RecommendationStatus = "rejected"
	RecommendationImplemented RecommendationStatus = "implemented"
)

func (s RecommendationStatus) String() string { return string(s) }
func (s RecommendationStatus) Valid() bool {
	switch s {
	case RecommendationDraft, RecommendationApproved, RecommendationRejected, RecommendationImplemented:
		return true
	default:
		return false
	}
}

func (s *RecommendationStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = RecommendationStatus(v)
	case []byte:
		*s = RecommendationStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for RecommendationStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid RecommendationStatus: %q", *s)
	}
	return nil
}
// CanTransitionTo: alur status draft → approved|rejected → implemented.
// Mundur (mis. implemented → draft) tidak diizinkan.
func (s RecommendationStatus) CanTransitionTo(next RecommendationStatus) bool {
	switch s {
	case RecommendationDraft:
		return next == RecommendationApproved || next == RecommendationRejected
	case RecommendationApproved:
		return next == RecommendationImplemented
	default:
		return false
	}
}

func (s RecommendationStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid RecommendationStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: evaluation_recommendations
   Tindak lanjut hasil penilaian; terpisah dari agregasi, hanya berbagi
   key space (teacher, period).
============================================================================= */
type RecommendationModel struct {
	// PK
	RecommendationID uuid.UUID `json:"recommendation_id" gorm:"column:recommendation_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Sasaran
	RecommendationTeacherID uuid.UUID `json:"recommendation_teacher_id" gorm:"column:recommendation_teacher_id;type:uuid;not null;index:idx_recommendation_teacher_period,priority:1"`
	RecommendationPeriodID  uuid.UUID `json:"recommendation_period_id" gorm:"column:recommendation_period_id;type:uuid;not null;index:idx_recommendation_teacher_period,priority:2"`

	// Isi
	RecommendationContent      string               `json:"recommendation_content" gorm:"column:recommendation_content;type:text;not null"`
	RecommendationAuthorUserID uuid.UUID            `json:"recommendation_author_user_id" gorm:"column:recommendation_author_user_id;type:uuid;not null"`
	RecommendationStatus       RecommendationStatus `json:"recommendation_status" gorm:"column:recommendation_status;type:varchar(16);not null;default:'draft';index:idx_recommendation_status"`

	// Audit
	RecommendationCreatedAt time.Time `json:"recommendation_created_at" gorm:"column:recommendation_created_at;type:timestamptz;not null;default:now()"`
	RecommendationUpdatedAt time.Time `json:"recommendation_updated_at" gorm:"column:recommendation_updated_at;type:timestamptz;not null;default:now()"`
}

func (RecommendationModel) TableName() string { return "evaluation_recommendations" }

func (m *RecommendationModel) BeforeSave(_ *gorm.DB) error {
	m.RecommendationUpdatedAt = time.Now()
	return nil
}
