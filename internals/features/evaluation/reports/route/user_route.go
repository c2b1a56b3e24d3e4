package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rpCtrl "penilaianguru_backend/internals/features/evaluation/reports/controller"
)

// ReportUserRoutes: tren, hitungan evaluator, dan ringkasan per penilaian —
// data mentah untuk renderer PDF & ekspor spreadsheet.
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rpCtrl.NewReportController(db)

	g := r.Group("/reports")
	g.Get("/teachers/:teacherID/trend", ctl.TeacherTrend)
	g.Get("/teachers/:teacherID/periods/:periodID/evaluator-counts", ctl.EvaluatorCounts)
	g.Get("/evaluations/:id/summary", ctl.EvaluationSummary)
}
