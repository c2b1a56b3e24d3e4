// file: internals/features/evaluation/evaluations/model/evaluation_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Evaluation Kind ('student','peer','supervisor')
   Menentukan bucket evaluator saat agregasi + skala input rating.
============================================================================= */
type EvaluationKind string

const (
	KindStudent    EvaluationKind = "student"
	KindPeer       EvaluationKind = "peer"
	KindSupervisor EvaluationKind = "supervisor"
)

func (k EvaluationKind) String() string { return string(k) }
func (k EvaluationKind) Valid() bool {
	switch k {
	case KindStudent, KindPeer, KindSupervisor:
		return true
	default:
		return false
	}
}

func (k *EvaluationKind) Scan(value any) error {
	if value == nil {
		*k = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*k = EvaluationKind(v)
	case []byte:
		*k = EvaluationKind(string(v))
	default:
		return fmt.Errorf("unsupported type for EvaluationKind: %T", value)
	}
	if !k.Valid() {
		return fmt.Errorf("invalid EvaluationKind: %q", *k)
	}
	return nil
}
func (k EvaluationKind) Value() (driver.Value, error) {
	if k == "" {
		return nil, nil
	}
	if !k.Valid() {
		return nil, fmt.Errorf("invalid EvaluationKind: %q", k)
	}
	return string(k), nil
}

/* =============================================================================
   ENUM-like: Evaluation Status ('draft','final')
============================================================================= */
type EvaluationStatus string

const (
	EvaluationDraft EvaluationStatus = "draft"
	EvaluationFinal EvaluationStatus = "final"
)

func (s EvaluationStatus) String() string { return string(s) }
func (s EvaluationStatus) Valid() bool {
	return s == EvaluationDraft || s == EvaluationFinal
}

func (s *EvaluationStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = EvaluationStatus(v)
	case []byte:
		*s = EvaluationStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for EvaluationStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid EvaluationStatus: %q", *s)
	}
	return nil
}
func (s EvaluationStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid EvaluationStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   Skala rating
   - Input siswa/rekan sejawat: bilangan bulat 1–5 (Likert).
   - Input kepala sekolah: 1–100.
   - Disimpan kanonik 1–5 (input 1–100 dibagi 20 di boundary tulis).
     Konversi tampilan 100-an (×20) murni urusan layer presentasi/ekspor.
============================================================================= */

const ScaleFactor100 = 20.0

// NormalizeRating memvalidasi raw rating sesuai kind lalu mengembalikan
// nilai kanonik 1–5.
func NormalizeRating(kind EvaluationKind, raw float64) (float64, error) {
	switch kind {
	case KindStudent, KindPeer:
		if raw != float64(int(raw)) {
			return 0, fmt.Errorf("rating %s harus bilangan bulat 1–5", kind)
		}
		if raw < 1 || raw > 5 {
			return 0, fmt.Errorf("rating %s di luar rentang 1–5", kind)
		}
		return raw, nil
	case KindSupervisor:
		if raw < 1 || raw > 100 {
			return 0, fmt.Errorf("rating supervisor di luar rentang 1–100")
		}
		return raw / ScaleFactor100, nil
	default:
		return 0, fmt.Errorf("kind %q tidak dikenal", kind)
	}
}

// KindAllowsEditAfterFinal: kebijakan eksplisit — penilaian kepala sekolah
// tetap bisa diedit selama periodenya aktif walau sudah final; siswa/rekan
// sejawat terkunci begitu final.
func KindAllowsEditAfterFinal(kind EvaluationKind) bool {
	return kind == KindSupervisor
}

/* =============================================================================
   MODEL: evaluations
   - Maksimal satu evaluation per (evaluator, teacher, period) — unique index.
   - overall_comment menggantikan baris detail "komentar umum" (criterion null)
     di desain lama.
============================================================================= */
type EvaluationModel struct {
	// PK
	EvaluationID uuid.UUID `json:"evaluation_id" gorm:"column:evaluation_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Siapa menilai siapa, kapan
	EvaluationTeacherID       uuid.UUID `json:"evaluation_teacher_id" gorm:"column:evaluation_teacher_id;type:uuid;not null;index:idx_evaluation_teacher_period,priority:1;uniqueIndex:uq_evaluation_evaluator_teacher_period,priority:2"`
	EvaluationEvaluatorUserID uuid.UUID `json:"evaluation_evaluator_user_id" gorm:"column:evaluation_evaluator_user_id;type:uuid;not null;uniqueIndex:uq_evaluation_evaluator_teacher_period,priority:1"`
	EvaluationPeriodID        uuid.UUID `json:"evaluation_period_id" gorm:"column:evaluation_period_id;type:uuid;not null;index:idx_evaluation_teacher_period,priority:2;uniqueIndex:uq_evaluation_evaluator_teacher_period,priority:3"`

	// Bucket evaluator & status
	EvaluationKind   EvaluationKind   `json:"evaluation_kind" gorm:"column:evaluation_kind;type:varchar(16);not null;index:idx_evaluation_kind"`
	EvaluationStatus EvaluationStatus `json:"evaluation_status" gorm:"column:evaluation_status;type:varchar(8);not null;default:'draft';index:idx_evaluation_status"`

	// Komentar keseluruhan (opsional)
	EvaluationOverallComment *string `json:"evaluation_overall_comment,omitempty" gorm:"column:evaluation_overall_comment;type:text"`

	// Relasi
	Details []EvaluationDetailModel `json:"details,omitempty" gorm:"foreignKey:EvaluationDetailEvaluationID;references:EvaluationID"`

	// Audit
	EvaluationCreatedAt time.Time `json:"evaluation_created_at" gorm:"column:evaluation_created_at;type:timestamptz;not null;default:now()"`
	EvaluationUpdatedAt time.Time `json:"evaluation_updated_at" gorm:"column:evaluation_updated_at;type:timestamptz;not null;default:now()"`
}

func (EvaluationModel) TableName() string { return "evaluations" }

func (m *EvaluationModel) BeforeSave(_ *gorm.DB) error {
	m.EvaluationUpdatedAt = time.Now()
	return nil
}

/* ===================================================================
   Helper methods
=================================================================== */

func (m *EvaluationModel) IsFinal() bool {
	return m.EvaluationStatus == EvaluationFinal
}

// CanEdit: aturan mutasi — pemilik saja, periode harus aktif (dicek caller),
// dan kalau sudah final hanya kind yang kebijakannya mengizinkan.
func (m *EvaluationModel) CanEdit() bool {
	if m.EvaluationStatus == EvaluationDraft {
		return true
	}
	return KindAllowsEditAfterFinal(m.EvaluationKind)
}
