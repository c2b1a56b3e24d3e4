package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eCtrl "penilaianguru_backend/internals/features/evaluation/evaluations/controller"
)

// EvaluationAdminRoutes: monitoring penilaian (kepala sekolah/admin).
func EvaluationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := eCtrl.NewEvaluationController(db)

	g := r.Group("/evaluations")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
