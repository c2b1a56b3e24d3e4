// file: internals/features/evaluation/periods/controller/evaluation_period_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pdto "penilaianguru_backend/internals/features/evaluation/periods/dto"
	pmodel "penilaianguru_backend/internals/features/evaluation/periods/model"
	pservice "penilaianguru_backend/internals/features/evaluation/periods/service"
	helper "penilaianguru_backend/internals/helpers"
)

type PeriodController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewPeriodController(db *gorm.DB) *PeriodController {
	return &PeriodController{DB: db}
}

func (ctl *PeriodController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

/* =========================================================
   Handlers — CRUD
========================================================= */

// POST /periods
func (ctl *PeriodController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req pdto.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[PeriodController] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		log.Printf("[PeriodController] Create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan periode")
	}

	return helper.JsonCreated(c, "Berhasil membuat periode", pdto.FromModelPeriod(m))
}

// PATCH /periods/:id — hanya periode draft yang boleh diedit datanya
func (ctl *PeriodController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m pmodel.EvaluationPeriodModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "evaluation_period_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periode tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.EvaluationPeriodStatus != pmodel.PeriodDraft {
		return helper.JsonError(c, fiber.StatusForbidden, "Periode sudah berjalan; data tidak bisa diubah")
	}

	var req pdto.UpdatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	req.ApplyToModel(&m)
	if !m.EvaluationPeriodEndDate.After(m.EvaluationPeriodStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonUpdated(c, "Berhasil memperbarui periode", pdto.FromModelPeriod(&m))
}

// GET /periods
func (ctl *PeriodController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&pmodel.EvaluationPeriodModel{})

	if st := strings.TrimSpace(c.Query("status")); st != "" {
		status := pmodel.EvaluationPeriodStatus(st)
		if !status.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak valid (draft|active|completed)")
		}
		q = q.Where("evaluation_period_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	pg := helper.ResolvePaging(c, 20, 100)

	var rows []pmodel.EvaluationPeriodModel
	if err := q.Order("evaluation_period_end_date DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", pdto.FromModelsPeriods(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /periods/active
func (ctl *PeriodController) GetActive(c *fiber.Ctx) error {
	svc := pservice.NewPeriodLifecycleService(ctl.DB)
	m, err := svc.GetActive(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil periode aktif")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada periode aktif")
	}
	return helper.JsonOK(c, "OK", pdto.FromModelPeriod(m))
}

/* =========================================================
   Handlers — transisi status
========================================================= */

// POST /periods/:id/activate
func (ctl *PeriodController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	svc := pservice.NewPeriodLifecycleService(ctl.DB)
	m, err := svc.Activate(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, pservice.ErrPeriodNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Periode tidak ditemukan")
		case errors.Is(err, pservice.ErrInvalidTransition):
			return helper.JsonError(c, fiber.StatusConflict, "Periode tidak bisa diaktifkan dari status sekarang")
		case errors.Is(err, pservice.ErrCatalogInconsistent):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("[PeriodController] Activate error: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengaktifkan periode")
		}
	}

	return helper.JsonUpdated(c, "Periode diaktifkan", pdto.FromModelPeriod(m))
}

// POST /periods/:id/complete
func (ctl *PeriodController) Complete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	svc := pservice.NewPeriodLifecycleService(ctl.DB)
	m, err := svc.Complete(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, pservice.ErrPeriodNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Periode tidak ditemukan")
		case errors.Is(err, pservice.ErrInvalidTransition):
			return helper.JsonError(c, fiber.StatusConflict, "Periode tidak bisa diselesaikan dari status sekarang")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyelesaikan periode")
		}
	}

	return helper.JsonUpdated(c, "Periode diselesaikan", pdto.FromModelPeriod(m))
}
