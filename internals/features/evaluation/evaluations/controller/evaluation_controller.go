// file: internals/features/evaluation/evaluations/controller/evaluation_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"penilaianguru_backend/internals/constants"
	edto "penilaianguru_backend/internals/features/evaluation/evaluations/dto"
	emodel "penilaianguru_backend/internals/features/evaluation/evaluations/model"
	eservice "penilaianguru_backend/internals/features/evaluation/evaluations/service"
	helper "penilaianguru_backend/internals/helpers"
	helperAuth "penilaianguru_backend/internals/helpers/auth"
)

type EvaluationController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{DB: db}
}

func (ctl *EvaluationController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// kindFromRole: bucket evaluator ditentukan dari role token, bukan payload.
func kindFromRole(role string) (emodel.EvaluationKind, bool) {
	switch role {
	case constants.RoleStudent:
		return emodel.KindStudent, true
	case constants.RoleTeacher:
		return emodel.KindPeer, true
	case constants.RoleSupervisor:
		return emodel.KindSupervisor, true
	default:
		return "", false
	}
}

func toServiceDetails(items []edto.DetailItem) []eservice.DetailInput {
	out := make([]eservice.DetailInput, 0, len(items))
	for _, it := range items {
		out = append(out, eservice.DetailInput{
			CriterionID:    it.CriterionID,
			SubcriterionID: it.SubcriterionID,
			Rating:         it.Rating,
			Comment:        it.Comment,
		})
	}
	return out
}

func mapSubmissionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, eservice.ErrPeriodNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Periode tidak ditemukan")
	case errors.Is(err, eservice.ErrPeriodNotActive):
		return helper.JsonError(c, fiber.StatusConflict, "Periode tidak aktif; penilaian tidak bisa diubah")
	case errors.Is(err, eservice.ErrSelfEvaluation):
		return helper.JsonError(c, fiber.StatusForbidden, "Guru tidak boleh menilai dirinya sendiri")
	case errors.Is(err, eservice.ErrPeerIdentityMissing):
		return helper.JsonError(c, fiber.StatusForbidden, "Token Anda tidak memuat identitas guru; penilaian rekan sejawat ditolak")
	case errors.Is(err, eservice.ErrNotOwner):
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pemilik penilaian yang boleh mengubah")
	case errors.Is(err, eservice.ErrFinalLocked):
		return helper.JsonError(c, fiber.StatusConflict, "Penilaian sudah final dan terkunci")
	case errors.Is(err, eservice.ErrEvaluationNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Penilaian tidak ditemukan")
	default:
		log.Printf("[EvaluationController] error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

/* =========================================================
   Handlers
========================================================= */

// POST /evaluations
func (ctl *EvaluationController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	kind, ok := kindFromRole(helperAuth.GetRole(c))
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Role Anda tidak bisa mengirim penilaian")
	}

	var req edto.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[EvaluationController] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	if len(req.Details) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Minimal satu butir penilaian")
	}

	in := &eservice.CreateEvaluationInput{
		EvaluatorUserID: userID,
		TeacherID:       req.EvaluationTeacherID,
		PeriodID:        req.EvaluationPeriodID,
		Kind:            kind,
		Details:         toServiceDetails(req.Details),
		OverallComment:  req.OverallComment,
		Finalize:        req.Finalize,
	}
	if tid, ok := helperAuth.GetTeacherID(c); ok {
		in.EvaluatorTeacherID = &tid
	}

	m, existing, err := eservice.NewSubmissionService(ctl.DB).Create(c.Context(), in)
	if err != nil {
		if strings.Contains(err.Error(), "kriteria") ||
			strings.Contains(err.Error(), "subkriteria") ||
			strings.Contains(err.Error(), "rating") ||
			strings.Contains(err.Error(), "butir") {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return mapSubmissionError(c, err)
	}
	if existing {
		return helper.JsonOK(c, "Penilaian untuk guru & periode ini sudah ada", edto.FromModelEvaluation(m))
	}
	return helper.JsonCreated(c, "Berhasil mengirim penilaian", edto.FromModelEvaluation(m))
}

// PUT /evaluations/:id — ganti seluruh set butir
func (ctl *EvaluationController) Update(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req edto.UpdateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}
	if len(req.Details) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Minimal satu butir penilaian")
	}

	in := &eservice.UpdateEvaluationInput{
		CallerUserID:   userID,
		Details:        toServiceDetails(req.Details),
		OverallComment: req.OverallComment,
		Finalize:       req.Finalize,
	}

	m, err := eservice.NewSubmissionService(ctl.DB).Update(c.Context(), id, in)
	if err != nil {
		if strings.Contains(err.Error(), "kriteria") ||
			strings.Contains(err.Error(), "subkriteria") ||
			strings.Contains(err.Error(), "rating") ||
			strings.Contains(err.Error(), "butir") {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return mapSubmissionError(c, err)
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui penilaian", edto.FromModelEvaluation(m))
}

// POST /evaluations/:id/finalize
func (ctl *EvaluationController) Finalize(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	m, err := eservice.NewSubmissionService(ctl.DB).Finalize(c.Context(), id, userID)
	if err != nil {
		return mapSubmissionError(c, err)
	}
	return helper.JsonUpdated(c, "Penilaian difinalkan", edto.FromModelEvaluation(m))
}

// GET /evaluations/mine?period_id=
func (ctl *EvaluationController) Mine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	q := ctl.DB.WithContext(c.Context()).
		Model(&emodel.EvaluationModel{}).
		Where("evaluation_evaluator_user_id = ?", userID)

	if pid := strings.TrimSpace(c.Query("period_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "period_id tidak valid")
		}
		q = q.Where("evaluation_period_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	pg := helper.ResolvePaging(c, 20, 100)

	var rows []emodel.EvaluationModel
	if err := q.Preload("Details").
		Order("evaluation_created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", edto.FromModelsEvaluations(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /evaluations/:id — pemilik atau supervisor/admin
func (ctl *EvaluationController) GetByID(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m emodel.EvaluationModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Details").
		First(&m, "evaluation_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penilaian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.EvaluationEvaluatorUserID != userID &&
		!helperAuth.IsSupervisor(c) && !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak berhak melihat penilaian ini")
	}
	return helper.JsonOK(c, "OK", edto.FromModelEvaluation(&m))
}

// GET /evaluations?teacher_id=&period_id=&kind=&status= — supervisor/admin
func (ctl *EvaluationController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&emodel.EvaluationModel{})

	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("evaluation_teacher_id = ?", id)
	}
	if pid := strings.TrimSpace(c.Query("period_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "period_id tidak valid")
		}
		q = q.Where("evaluation_period_id = ?", id)
	}
	if k := strings.TrimSpace(c.Query("kind")); k != "" {
		kind := emodel.EvaluationKind(k)
		if !kind.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "kind tidak valid (student|peer|supervisor)")
		}
		q = q.Where("evaluation_kind = ?", kind)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		status := emodel.EvaluationStatus(st)
		if !status.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak valid (draft|final)")
		}
		q = q.Where("evaluation_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	pg := helper.ResolvePaging(c, 20, 100)

	var rows []emodel.EvaluationModel
	if err := q.Preload("Details").
		Order("evaluation_created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", edto.FromModelsEvaluations(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
