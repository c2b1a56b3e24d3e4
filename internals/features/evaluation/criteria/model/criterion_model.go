// file: internals/features/evaluation/criteria/model/criterion_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: evaluation_criterias
   - Bobot 0–100; total bobot kriteria aktif divalidasi penuh saat aktivasi
     periode (lihat service aktivasi periode).
   - Kriteria tanpa subkriteria aktif dinilai langsung di level kriteria;
     kriteria dengan subkriteria dinilai per subkriteria — tidak pernah dua-duanya.
============================================================================= */
type CriterionModel struct {
	// PK
	CriterionID uuid.UUID `json:"criterion_id" gorm:"column:criterion_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas
	CriterionName        string  `json:"criterion_name" gorm:"column:criterion_name;type:varchar(160);not null;uniqueIndex:uq_criterion_name"`
	CriterionDescription *string `json:"criterion_description,omitempty" gorm:"column:criterion_description;type:text"`

	// Bobot (persen terhadap total 100)
	CriterionWeight float64 `json:"criterion_weight" gorm:"column:criterion_weight;type:numeric(5,2);not null;check:criterion_weight >= 0 AND criterion_weight <= 100"`

	// Aktif?
	CriterionIsActive bool `json:"criterion_is_active" gorm:"column:criterion_is_active;not null;default:true;index:idx_criterion_active"`

	// Relasi
	Subcriterias []SubcriterionModel `json:"subcriterias,omitempty" gorm:"foreignKey:SubcriterionCriterionID;references:CriterionID"`

	// Audit
	CriterionCreatedAt time.Time `json:"criterion_created_at" gorm:"column:criterion_created_at;type:timestamptz;not null;default:now()"`
	CriterionUpdatedAt time.Time `json:"criterion_updated_at" gorm:"column:criterion_updated_at;type:timestamptz;not null;default:now()"`
}

func (CriterionModel) TableName() string { return "evaluation_criterias" }

func (m *CriterionModel) BeforeSave(_ *gorm.DB) error {
	m.CriterionUpdatedAt = time.Now()
	return nil
}

// ActiveSubcriterias: subset subkriteria yang aktif (urutan mengikuti preload).
func (m *CriterionModel) ActiveSubcriterias() []SubcriterionModel {
	out := make([]SubcriterionModel, 0, len(m.Subcriterias))
	for _, s := range m.Subcriterias {
		if s.SubcriterionIsActive {
			out = append(out, s)
		}
	}
	return out
}

// HasActiveSubcriterias menentukan mode penilaian kriteria ini:
// true → rating menempel di subkriteria; false → rating langsung di kriteria.
func (m *CriterionModel) HasActiveSubcriterias() bool {
	for _, s := range m.Subcriterias {
		if s.SubcriterionIsActive {
			return true
		}
	}
	return false
}
