// file: internals/features/evaluation/criteria/controller/subcriterion_controller.go
package controller

import (
	"log"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cdto "penilaianguru_backend/internals/features/evaluation/criteria/dto"
	cmodel "penilaianguru_backend/internals/features/evaluation/criteria/model"
	cservice "penilaianguru_backend/internals/features/evaluation/criteria/service"
	helper "penilaianguru_backend/internals/helpers"
)

type SubcriterionController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewSubcriterionController(db *gorm.DB) *SubcriterionController {
	return &SubcriterionController{DB: db}
}

func (ctl *SubcriterionController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// Cek advisory: total bobot subkriteria aktif parent tidak boleh lewat 100.
// (Cek penuh Σ=100 terjadi saat aktivasi periode.)
func (ctl *SubcriterionController) checkParentWeightRoom(c *fiber.Ctx, parentID uuid.UUID, excludeID *uuid.UUID, addWeight float64) error {
	var siblings []cmodel.SubcriterionModel
	q := ctl.DB.WithContext(c.Context()).
		Where("subcriterion_criterion_id = ? AND subcriterion_is_active = ?", parentID, true)
	if excludeID != nil {
		q = q.Where("subcriterion_id <> ?", *excludeID)
	}
	if err := q.Find(&siblings).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengecek bobot subkriteria")
	}

	sum := cservice.SumActiveSubcriterionWeights(siblings) + addWeight
	if sum > 100+cservice.WeightSumEpsilon {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Total bobot subkriteria aktif melebihi 100")
	}
	return nil
}

/* =========================================================
   Handlers
========================================================= */

// POST /subcriterias
func (ctl *SubcriterionController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req cdto.CreateSubcriterionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[SubcriterionController] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	// parent harus ada
	var parent cmodel.CriterionModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&parent, "criterion_id = ?", req.SubcriterionCriterionID).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kriteria induk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kriteria induk")
	}

	if *req.SubcriterionIsActive {
		if err := ctl.checkParentWeightRoom(c, parent.CriterionID, nil, req.SubcriterionWeight); err != nil {
			return helper.FromFiberError(c, err, fiber.StatusInternalServerError, "Gagal validasi bobot")
		}
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsCheckViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Bobot subkriteria di luar rentang 0–100")
		}
		log.Printf("[SubcriterionController] Create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan subkriteria")
	}

	return helper.JsonCreated(c, "Berhasil membuat subkriteria", cdto.FromModelSubcriterion(m))
}

// PATCH /subcriterias/:id
func (ctl *SubcriterionController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m cmodel.SubcriterionModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "subcriterion_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subkriteria tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var req cdto.UpdateSubcriterionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	req.ApplyToModel(&m)

	if m.SubcriterionIsActive {
		if err := ctl.checkParentWeightRoom(c, m.SubcriterionCriterionID, &m.SubcriterionID, m.SubcriterionWeight); err != nil {
			return helper.FromFiberError(c, err, fiber.StatusInternalServerError, "Gagal validasi bobot")
		}
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsCheckViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Bobot subkriteria di luar rentang 0–100")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonUpdated(c, "Berhasil memperbarui subkriteria", cdto.FromModelSubcriterion(&m))
}

// DELETE /subcriterias/:id
func (ctl *SubcriterionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Delete(&cmodel.SubcriterionModel{}, "subcriterion_id = ?", id).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Subkriteria sudah dipakai penilaian; nonaktifkan saja")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus", fiber.Map{"deleted_id": id})
}
