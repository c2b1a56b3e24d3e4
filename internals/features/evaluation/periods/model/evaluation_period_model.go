// file: internals/features/evaluation/periods/model/evaluation_period_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Period Status ('draft','active','completed')
============================================================================= */
type EvaluationPeriodStatus string

const (
	PeriodDraft     EvaluationPeriodStatus = "draft"
	PeriodActive    EvaluationPeriodStatus = "active"
	PeriodCompleted EvaluationPeriodStatus = "completed"
)

func (s EvaluationPeriodStatus) String() string { return string(s) }
func (s EvaluationPeriodStatus) Valid() bool {
	switch s {
	case PeriodDraft, PeriodActive, PeriodCompleted:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (aman saat scan ke enum)
func (s *EvaluationPeriodStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = EvaluationPeriodStatus(v)
	case []byte:
		*s = EvaluationPeriodStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for EvaluationPeriodStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid EvaluationPeriodStatus: %q", *s)
	}
	return nil
}
func (s EvaluationPeriodStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid EvaluationPeriodStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: evaluation_periods
   - Maksimal satu periode 'active' pada satu waktu; dijaga oleh transisi
     Activate (service), bukan oleh konvensi query.
============================================================================= */
type EvaluationPeriodModel struct {
	// PK
	EvaluationPeriodID uuid.UUID `json:"evaluation_period_id" gorm:"column:evaluation_period_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas
	EvaluationPeriodTitle string `json:"evaluation_period_title" gorm:"column:evaluation_period_title;type:varchar(160);not null"`

	// Rentang waktu
	EvaluationPeriodStartDate time.Time `json:"evaluation_period_start_date" gorm:"column:evaluation_period_start_date;type:date;not null"`
	EvaluationPeriodEndDate   time.Time `json:"evaluation_period_end_date" gorm:"column:evaluation_period_end_date;type:date;not null;index:idx_eval_period_end_desc,sort:desc"`

	// Status lifecycle
	EvaluationPeriodStatus EvaluationPeriodStatus `json:"evaluation_period_status" gorm:"column:evaluation_period_status;type:varchar(16);not null;default:'draft';index:idx_eval_period_status"`

	// Audit
	EvaluationPeriodCreatedAt time.Time `json:"evaluation_period_created_at" gorm:"column:evaluation_period_created_at;type:timestamptz;not null;default:now()"`
	EvaluationPeriodUpdatedAt time.Time `json:"evaluation_period_updated_at" gorm:"column:evaluation_period_updated_at;type:timestamptz;not null;default:now()"`
}

func (EvaluationPeriodModel) TableName() string { return "evaluation_periods" }

func (m *EvaluationPeriodModel) BeforeSave(_ *gorm.DB) error {
	m.EvaluationPeriodUpdatedAt = time.Now()
	return nil
}

/* ===================================================================
   Helper methods
=================================================================== */
func (m *EvaluationPeriodModel) IsActive() bool {
	return m.EvaluationPeriodStatus == PeriodActive
}

// CanTransitionTo: draft→active→completed, tanpa mundur.
func (m *EvaluationPeriodModel) CanTransitionTo(next EvaluationPeriodStatus) bool {
	switch m.EvaluationPeriodStatus {
	case PeriodDraft:
		return next == PeriodActive
	case PeriodActive:
		return next == PeriodCompleted
	default:
		return false
	}
}
