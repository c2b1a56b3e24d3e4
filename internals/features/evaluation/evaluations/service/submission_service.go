// file: internals/features/evaluation/evaluations/service/submission_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "penilaianguru_backend/internals/features/evaluation/criteria/model"
	cservice "penilaianguru_backend/internals/features/evaluation/criteria/service"
	emodel "penilaianguru_backend/internals/features/evaluation/evaluations/model"
	pmodel "penilaianguru_backend/internals/features/evaluation/periods/model"
	rservice "penilaianguru_backend/internals/features/evaluation/results/service"
	helper "penilaianguru_backend/internals/helpers"
)

var (
	ErrPeriodNotFound      = errors.New("periode tidak ditemukan")
	ErrPeriodNotActive     = errors.New("periode tidak aktif")
	ErrSelfEvaluation      = errors.New("guru tidak boleh menilai dirinya sendiri")
	ErrPeerIdentityMissing = errors.New("penilaian rekan sejawat butuh identitas guru di token")
	ErrNotOwner            = errors.New("bukan pemilik penilaian")
	ErrFinalLocked         = errors.New("penilaian sudah final dan terkunci")
	ErrEvaluationNotFound  = errors.New("penilaian tidak ditemukan")
)

/* =========================================================
   INPUT
========================================================= */

// DetailInput: satu butir rating, masih di skala input sesuai kind.
type DetailInput struct {
	CriterionID    uuid.UUID
	SubcriterionID *uuid.UUID
	Rating         float64
	Comment        *string
}

type CreateEvaluationInput struct {
	EvaluatorUserID uuid.UUID
	// Id guru milik evaluator sendiri; wajib untuk kind=peer (blok self-eval).
	EvaluatorTeacherID *uuid.UUID
	TeacherID          uuid.UUID
	PeriodID           uuid.UUID
	Kind               emodel.EvaluationKind
	Details            []DetailInput
	OverallComment     *string
	Finalize           bool
}

type UpdateEvaluationInput struct {
	CallerUserID   uuid.UUID
	Details        []DetailInput
	OverallComment *string
	Finalize       bool
}

/* =========================================================
   Validasi butir (pure — dipakai create & update)
========================================================= */

// ValidatePeerTarget: penilaian rekan sejawat WAJIB membawa identitas guru
// evaluator (klaim teacher_id). Tanpa itu blok self-evaluation bisa
// dilewati, jadi token peer tanpa klaim tersebut ditolak, bukan diloloskan.
func ValidatePeerTarget(evaluatorTeacherID *uuid.UUID, targetTeacherID uuid.UUID) error {
	if evaluatorTeacherID == nil {
		return ErrPeerIdentityMissing
	}
	if *evaluatorTeacherID == targetTeacherID {
		return ErrSelfEvaluation
	}
	return nil
}

// BuildDetailRows memvalidasi butir terhadap katalog aktif lalu
// mengembalikan row detail dengan rating kanonik 1–5:
// - kriteria harus aktif; kriteria terdekomposisi wajib pakai subkriteria
//   miliknya, kriteria tanpa subkriteria dinilai langsung (tidak dua-duanya);
// - rating dalam rentang skala kind (dinormalisasi);
// - tidak boleh ada butir ganda untuk target yang sama.
func BuildDetailRows(kind emodel.EvaluationKind, details []DetailInput, catalog []cmodel.CriterionModel) ([]emodel.EvaluationDetailModel, error) {
	byID := make(map[uuid.UUID]*cmodel.CriterionModel, len(catalog))
	for i := range catalog {
		byID[catalog[i].CriterionID] = &catalog[i]
	}

	seen := make(map[string]bool, len(details))
	rows := make([]emodel.EvaluationDetailModel, 0, len(details))

	for _, d := range details {
		crit, ok := byID[d.CriterionID]
		if !ok {
			return nil, fmt.Errorf("kriteria %s tidak aktif atau tidak dikenal", d.CriterionID)
		}

		decomposed := crit.HasActiveSubcriterias()
		if decomposed && d.SubcriterionID == nil {
			return nil, fmt.Errorf("kriteria %q dinilai per subkriteria, subcriterion_id wajib", crit.CriterionName)
		}
		if !decomposed && d.SubcriterionID != nil {
			return nil, fmt.Errorf("kriteria %q dinilai langsung, subcriterion_id tidak boleh diisi", crit.CriterionName)
		}
		if d.SubcriterionID != nil {
			found := false
			for _, s := range crit.ActiveSubcriterias() {
				if s.SubcriterionID == *d.SubcriterionID {
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("subkriteria %s bukan milik kriteria %q atau tidak aktif", *d.SubcriterionID, crit.CriterionName)
			}
		}

		key := d.CriterionID.String()
		if d.SubcriterionID != nil {
			key += "/" + d.SubcriterionID.String()
		}
		if seen[key] {
			return nil, fmt.Errorf("butir ganda untuk target %s", key)
		}
		seen[key] = true

		rating, err := emodel.NormalizeRating(kind, d.Rating)
		if err != nil {
			return nil, err
		}

		rows = append(rows, emodel.EvaluationDetailModel{
			EvaluationDetailCriterionID:    d.CriterionID,
			EvaluationDetailSubcriterionID: d.SubcriterionID,
			EvaluationDetailRating:         rating,
			EvaluationDetailComment:        d.Comment,
		})
	}
	return rows, nil
}

/* =========================================================
   SERVICE
========================================================= */

type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

func (s *SubmissionService) loadActivePeriod(ctx context.Context, periodID uuid.UUID) (*pmodel.EvaluationPeriodModel, error) {
	var period pmodel.EvaluationPeriodModel
	if err := s.DB.WithContext(ctx).
		First(&period, "evaluation_period_id = ?", periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}
	if !period.IsActive() {
		return nil, ErrPeriodNotActive
	}
	return &period, nil
}

// Create:
// - periode harus aktif; self-evaluation diblok untuk kind=peer;
// - kalau (evaluator, teacher, period) sudah ada → balikan record existing
//   (existing=true), BUKAN error — caller mengarahkan ulang ke record itu;
// - butir divalidasi terhadap katalog aktif lalu disimpan satu transaksi.
func (s *SubmissionService) Create(ctx context.Context, in *CreateEvaluationInput) (*emodel.EvaluationModel, bool, error) {
	if in == nil {
		return nil, false, errors.New("input cannot be nil")
	}
	if !in.Kind.Valid() {
		return nil, false, fmt.Errorf("kind %q tidak valid", in.Kind)
	}

	if in.Kind == emodel.KindPeer {
		if err := ValidatePeerTarget(in.EvaluatorTeacherID, in.TeacherID); err != nil {
			return nil, false, err
		}
	}

	if _, err := s.loadActivePeriod(ctx, in.PeriodID); err != nil {
		return nil, false, err
	}

	// Duplicate → redirect ke record existing
	var existing emodel.EvaluationModel
	err := s.DB.WithContext(ctx).
		Preload("Details").
		Where(`evaluation_evaluator_user_id = ?
			AND evaluation_teacher_id = ?
			AND evaluation_period_id = ?`, in.EvaluatorUserID, in.TeacherID, in.PeriodID).
		First(&existing).Error
	if err == nil {
		log.Printf("[SubmissionService] duplicate (evaluator=%s teacher=%s period=%s) → pakai existing %s",
			in.EvaluatorUserID, in.TeacherID, in.PeriodID, existing.EvaluationID)
		return &existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	catalog, err := cservice.NewCatalogService(s.DB).ListActiveCriteria(ctx)
	if err != nil {
		return nil, false, err
	}
	rows, err := BuildDetailRows(in.Kind, in.Details, catalog)
	if err != nil {
		return nil, false, err
	}

	m := &emodel.EvaluationModel{
		EvaluationTeacherID:       in.TeacherID,
		EvaluationEvaluatorUserID: in.EvaluatorUserID,
		EvaluationPeriodID:        in.PeriodID,
		EvaluationKind:            in.Kind,
		EvaluationStatus:          emodel.EvaluationDraft,
		EvaluationOverallComment:  in.OverallComment,
	}
	if in.Finalize {
		m.EvaluationStatus = emodel.EvaluationFinal
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].EvaluationDetailEvaluationID = m.EvaluationID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		m.Details = rows
		return nil
	})
	if err != nil {
		// Dua create pertama bisa balapan lolos cek duplicate di atas;
		// yang kalah di unique index diarahkan ke row pemenang, bukan 500.
		if helper.IsUniqueViolation(err) {
			var winner emodel.EvaluationModel
			if ferr := s.DB.WithContext(ctx).
				Preload("Details").
				Where(`evaluation_evaluator_user_id = ?
					AND evaluation_teacher_id = ?
					AND evaluation_period_id = ?`, in.EvaluatorUserID, in.TeacherID, in.PeriodID).
				First(&winner).Error; ferr == nil {
				log.Printf("[SubmissionService] kalah balapan create (evaluator=%s teacher=%s period=%s) → pakai existing %s",
					in.EvaluatorUserID, in.TeacherID, in.PeriodID, winner.EvaluationID)
				return &winner, true, nil
			}
		}
		return nil, false, err
	}

	if m.IsFinal() {
		s.recompute(ctx, m.EvaluationTeacherID, m.EvaluationPeriodID)
	}
	return m, false, nil
}

// Update mengganti SELURUH set butir secara transaksional
// (delete-then-recreate): setelah commit yang terlihat set baru utuh,
// kalau gagal set lama tetap utuh.
func (s *SubmissionService) Update(ctx context.Context, evaluationID uuid.UUID, in *UpdateEvaluationInput) (*emodel.EvaluationModel, error) {
	if in == nil {
		return nil, errors.New("input cannot be nil")
	}

	var m emodel.EvaluationModel
	if err := s.DB.WithContext(ctx).
		First(&m, "evaluation_id = ?", evaluationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}

	if m.EvaluationEvaluatorUserID != in.CallerUserID {
		return nil, ErrNotOwner
	}
	if _, err := s.loadActivePeriod(ctx, m.EvaluationPeriodID); err != nil {
		return nil, err
	}
	if !m.CanEdit() {
		return nil, ErrFinalLocked
	}

	catalog, err := cservice.NewCatalogService(s.DB).ListActiveCriteria(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := BuildDetailRows(m.EvaluationKind, in.Details, catalog)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&emodel.EvaluationDetailModel{},
			"evaluation_detail_evaluation_id = ?", m.EvaluationID).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].EvaluationDetailEvaluationID = m.EvaluationID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		if in.OverallComment != nil {
			m.EvaluationOverallComment = in.OverallComment
		}
		if in.Finalize {
			m.EvaluationStatus = emodel.EvaluationFinal
		}
		m.Details = rows
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}

	if m.IsFinal() {
		s.recompute(ctx, m.EvaluationTeacherID, m.EvaluationPeriodID)
	}
	return &m, nil
}

// Finalize: draft → final milik caller; memicu hitung ulang snapshot hasil.
func (s *SubmissionService) Finalize(ctx context.Context, evaluationID, callerUserID uuid.UUID) (*emodel.EvaluationModel, error) {
	var m emodel.EvaluationModel
	if err := s.DB.WithContext(ctx).
		Preload("Details").
		First(&m, "evaluation_id = ?", evaluationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}

	if m.EvaluationEvaluatorUserID != callerUserID {
		return nil, ErrNotOwner
	}
	if _, err := s.loadActivePeriod(ctx, m.EvaluationPeriodID); err != nil {
		return nil, err
	}

	if !m.IsFinal() {
		m.EvaluationStatus = emodel.EvaluationFinal
		if err := s.DB.WithContext(ctx).Save(&m).Error; err != nil {
			return nil, err
		}
	}

	s.recompute(ctx, m.EvaluationTeacherID, m.EvaluationPeriodID)
	return &m, nil
}

// recompute: snapshot error tidak menggagalkan submit — dicatat saja,
// admin bisa recompute batch belakangan.
func (s *SubmissionService) recompute(ctx context.Context, teacherID, periodID uuid.UUID) {
	if _, err := rservice.NewResultService(s.DB).RecomputeForTeacherPeriod(ctx, teacherID, periodID); err != nil {
		log.Printf("[SubmissionService] recompute snapshot error (teacher=%s period=%s): %v", teacherID, periodID, err)
	}
}
