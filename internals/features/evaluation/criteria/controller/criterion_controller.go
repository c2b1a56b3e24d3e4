// file: internals/features/evaluation/criteria/controller/criterion_controller.go
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

type CriterionController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewCriterionController(db *gorm.DB) *CriterionController {
	return &CriterionController{DB: db}
}

func (ctl *CriterionController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

/* =========================================================
   Handlers
========================================================= */

// POST /criterias
func (ctl *CriterionController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req cdto.CreateCriterionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[CriterionController] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kriteria sudah dipakai")
		}
		if helper.IsCheckViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Bobot kriteria di luar rentang 0–100")
		}
		log.Printf("[CriterionController] Create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kriteria")
	}

	return helper.JsonCreated(c, "Berhasil membuat kriteria", cdto.FromModelCriterion(m))
}

// PATCH /criterias/:id
func (ctl *CriterionController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m cmodel.CriterionModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "criterion_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kriteria tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var req cdto.UpdateCriterionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	req.ApplyToModel(&m)

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kriteria sudah dipakai")
		}
		if helper.IsCheckViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Bobot kriteria di luar rentang 0–100")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	return helper.JsonUpdated(c, "Berhasil memperbarui kriteria", cdto.FromModelCriterion(&m))
}

// DELETE /criterias/:id
func (ctl *CriterionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Delete(&cmodel.CriterionModel{}, "criterion_id = ?", id).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			// sudah dipakai detail penilaian → nonaktifkan saja, jangan hapus
			return helper.JsonError(c, fiber.StatusConflict, "Kriteria sudah dipakai penilaian; nonaktifkan saja")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus", fiber.Map{"deleted_id": id})
}

// GET /criterias?active_only=true
func (ctl *CriterionController) List(c *fiber.Ctx) error {
	activeOnly := strings.EqualFold(strings.TrimSpace(c.Query("active_only")), "true")

	q := ctl.DB.WithContext(c.Context()).Model(&cmodel.CriterionModel{})
	if activeOnly {
		q = q.Where("criterion_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	pg := helper.ResolvePaging(c, 20, 100)

	var rows []cmodel.CriterionModel
	if err := q.
		Preload("Subcriterias", func(db *gorm.DB) *gorm.DB {
			return db.Order("subcriterion_order_num ASC")
		}).
		Order("criterion_name ASC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", cdto.FromModelsCriterias(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /criterias/active — katalog aktif untuk form penilaian
// (kriteria urut nama, subkriteria aktif urut order_num)
func (ctl *CriterionController) ListActive(c *fiber.Ctx) error {
	svc := cservice.NewCatalogService(ctl.DB)
	rows, err := svc.ListActiveCriteria(c.Context())
	if err != nil {
		log.Printf("[CriterionController] ListActive error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil katalog kriteria")
	}
	return helper.JsonOK(c, "OK", cdto.FromModelsCriterias(rows))
}
