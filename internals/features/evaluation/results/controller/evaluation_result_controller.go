// file: internals/features/evaluation/results/controller/evaluation_result_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rdto "penilaianguru_backend/internals/features/evaluation/results/dto"
	rservice "penilaianguru_backend/internals/features/evaluation/results/service"
	helper "penilaianguru_backend/internals/helpers"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// GET /results/:teacherID/:periodID
func (ctl *ResultController) GetByTeacherPeriod(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "teacherID")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacherID tidak valid")
	}
	periodID, err := parseUUIDParam(c, "periodID")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "periodID tidak valid")
	}

	m, err := rservice.NewResultService(ctl.DB).Get(c.Context(), teacherID, periodID)
	if err != nil {
		if errors.Is(err, rservice.ErrResultNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hasil penilaian tidak ditemukan")
		}
		log.Printf("[ResultController] Get error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rdto.FromModelResult(m))
}

// GET /results/:teacherID — riwayat, periode terbaru dulu
func (ctl *ResultController) ListForTeacher(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "teacherID")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacherID tidak valid")
	}

	rows, err := rservice.NewResultService(ctl.DB).ListForTeacher(c.Context(), teacherID)
	if err != nil {
		log.Printf("[ResultController] ListForTeacher error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rdto.FromModelsResults(rows))
}

// POST /results/recompute?period_id= — admin; batch sinkron per guru
func (ctl *ResultController) Recompute(c *fiber.Ctx) error {
	pid := strings.TrimSpace(c.Query("period_id"))
	if pid == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id wajib diisi")
	}
	periodID, err := uuid.Parse(pid)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "period_id tidak valid")
	}

	done, err := rservice.NewResultService(ctl.DB).RecomputeForPeriod(c.Context(), periodID)
	if err != nil {
		log.Printf("[ResultController] Recompute error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ulang")
	}
	return helper.JsonOK(c, "Hitung ulang selesai", fiber.Map{"recomputed_teachers": done})
}
