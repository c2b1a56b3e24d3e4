package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pCtrl "penilaianguru_backend/internals/features/evaluation/periods/controller"
)

// PeriodAdminRoutes: kelola siklus hidup periode (admin).
func PeriodAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pCtrl.NewPeriodController(db)

	g := r.Group("/evaluation-periods")
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Get("/", ctl.List)
	g.Post("/:id/activate", ctl.Activate)
	g.Post("/:id/complete", ctl.Complete)
}
