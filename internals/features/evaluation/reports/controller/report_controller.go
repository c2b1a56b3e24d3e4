// file: internals/features/evaluation/reports/controller/report_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cservice "penilaianguru_backend/internals/features/evaluation/criteria/service"
	edto "penilaianguru_backend/internals/features/evaluation/evaluations/dto"
	emodel "penilaianguru_backend/internals/features/evaluation/evaluations/model"
	rpservice "penilaianguru_backend/internals/features/evaluation/reports/service"
	rdto "penilaianguru_backend/internals/features/evaluation/results/dto"
	rservice "penilaianguru_backend/internals/features/evaluation/results/service"
	helper "penilaianguru_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// GET /reports/teachers/:teacherID/trend — riwayat snapshot + arah tren
func (ctl *ReportController) TeacherTrend(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "teacherID")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacherID tidak valid")
	}

	history, trend, err := rpservice.NewReportService(ctl.DB).TrendForTeacher(c.Context(), teacherID)
	if err != nil {
		log.Printf("[ReportController] TrendForTeacher error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"trend":   trend,
		"history": rdto.FromModelsResults(history),
	})
}

// GET /reports/teachers/:teacherID/periods/:periodID/evaluator-counts
func (ctl *ReportController) EvaluatorCounts(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "teacherID")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacherID tidak valid")
	}
	periodID, err := parseUUIDParam(c, "periodID")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "periodID tidak valid")
	}

	rows, err := rpservice.NewReportService(ctl.DB).EvaluatorCountsByRole(c.Context(), teacherID, periodID)
	if err != nil {
		log.Printf("[ReportController] EvaluatorCounts error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /reports/evaluations/:id/summary — ringkasan berbobot SATU penilaian
// (data mentah untuk renderer PDF; tanpa logika render di sini)
func (ctl *ReportController) EvaluationSummary(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
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

	catalog, err := cservice.NewCatalogService(ctl.DB).ListActiveCriteria(c.Context())
	if err != nil {
		log.Printf("[ReportController] ListActiveCriteria error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil katalog")
	}

	summary := rservice.ComputeEvaluationWeightedAverage(m.Details, catalog)
	return helper.JsonOK(c, "OK", fiber.Map{
		"summary":    summary,
		"evaluation": edto.FromModelEvaluation(&m),
	})
}
