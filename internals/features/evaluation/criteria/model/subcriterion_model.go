// file: internals/features/evaluation/criteria/model/subcriterion_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: evaluation_subcriterias
   - Bobot relatif terhadap parent (subkriteria aktif satu kriteria idealnya
     total 100; dicek advisory saat tulis, dicek penuh saat aktivasi periode).
   - urutan (order_num) dipakai untuk display order di form penilaian.
============================================================================= */
type SubcriterionModel struct {
	// PK
	SubcriterionID uuid.UUID `json:"subcriterion_id" gorm:"column:subcriterion_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK parent
	SubcriterionCriterionID uuid.UUID `json:"subcriterion_criterion_id" gorm:"column:subcriterion_criterion_id;type:uuid;not null;index:idx_subcriterion_parent"`

	// Identitas
	SubcriterionName        string  `json:"subcriterion_name" gorm:"column:subcriterion_name;type:varchar(160);not null"`
	SubcriterionDescription *string `json:"subcriterion_description,omitempty" gorm:"column:subcriterion_description;type:text"`

	// Bobot relatif terhadap parent
	SubcriterionWeight float64 `json:"subcriterion_weight" gorm:"column:subcriterion_weight;type:numeric(5,2);not null;check:subcriterion_weight >= 0 AND subcriterion_weight <= 100"`

	// Urutan tampil
	SubcriterionOrderNum int `json:"subcriterion_order_num" gorm:"column:subcriterion_order_num;not null;default:0"`

	// Aktif?
	SubcriterionIsActive bool `json:"subcriterion_is_active" gorm:"column:subcriterion_is_active;not null;default:true;index:idx_subcriterion_active"`

	// Audit
	SubcriterionCreatedAt time.Time `json:"subcriterion_created_at" gorm:"column:subcriterion_created_at;type:timestamptz;not null;default:now()"`
	SubcriterionUpdatedAt time.Time `json:"subcriterion_updated_at" gorm:"column:subcriterion_updated_at;type:timestamptz;not null;default:now()"`
}

func (SubcriterionModel) TableName() string { return "evaluation_subcriterias" }

func (m *SubcriterionModel) BeforeSave(_ *gorm.DB) error {
	m.SubcriterionUpdatedAt = time.Now()
	return nil
}
