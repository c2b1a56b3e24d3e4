// file: internals/features/evaluation/recommendations/controller/recommendation_controller.go
package controller

import (
	"log"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rdto "penilaianguru_backend/internals/features/evaluation/recommendations/dto"
	rmodel "penilaianguru_backend/internals/features/evaluation/recommendations/model"
	helper "penilaianguru_backend/internals/helpers"
	helperAuth "penilaianguru_backend/internals/helpers/auth"
)

type RecommendationController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewRecommendationController(db *gorm.DB) *RecommendationController {
	return &RecommendationController{DB: db}
}

func (ctl *RecommendationController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /recommendations — supervisor/admin
func (ctl *RecommendationController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req rdto.CreateRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[RecommendationController] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	m := req.ToModel(userID)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Guru atau periode tidak dikenal")
		}
		log.Printf("[RecommendationController] Create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rekomendasi")
	}
	return helper.JsonCreated(c, "Berhasil membuat rekomendasi", rdto.FromModelRecommendation(m))
}

// PATCH /recommendations/:id — isi oleh penulisnya, status oleh admin
func (ctl *RecommendationController) Patch(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m rmodel.RecommendationModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "recommendation_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rekomendasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var req rdto.UpdateRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorMap(err))
	}

	if req.RecommendationContent != nil &&
		m.RecommendationAuthorUserID != userID && !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya penulis yang boleh mengubah isi")
	}
	if req.RecommendationStatus != nil {
		if !helperAuth.IsAdmin(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Hanya admin yang boleh mengubah status")
		}
		next := rmodel.RecommendationStatus(*req.RecommendationStatus)
		if next != m.RecommendationStatus && !m.RecommendationStatus.CanTransitionTo(next) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Status rekomendasi tidak bisa berubah dari "+m.RecommendationStatus.String()+" ke "+next.String())
		}
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui rekomendasi", rdto.FromModelRecommendation(&m))
}

// GET /recommendations?teacher_id=&period_id=&status=
func (ctl *RecommendationController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&rmodel.RecommendationModel{})

	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("recommendation_teacher_id = ?", id)
	}
	if pid := strings.TrimSpace(c.Query("period_id")); pid != "" {
		id, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "period_id tidak valid")
		}
		q = q.Where("recommendation_period_id = ?", id)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		status := rmodel.RecommendationStatus(st)
		if !status.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak valid (draft|approved|rejected|implemented)")
		}
		q = q.Where("recommendation_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	pg := helper.ResolvePaging(c, 20, 100)

	var rows []rmodel.RecommendationModel
	if err := q.Order("recommendation_created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", rdto.FromModelsRecommendations(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// DELETE /recommendations/:id — penulis atau admin
func (ctl *RecommendationController) Delete(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m rmodel.RecommendationModel
	if err := ctl.DB.WithContext(c.Context()).First(&m, "recommendation_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rekomendasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if m.RecommendationAuthorUserID != userID && !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya penulis atau admin yang boleh menghapus")
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus rekomendasi")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus rekomendasi", fiber.Map{"recommendation_id": id})
}
