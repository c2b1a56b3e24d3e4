package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pCtrl "penilaianguru_backend/internals/features/evaluation/periods/controller"
)

// PeriodUserRoutes: read-only untuk form penilaian.
func PeriodUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pCtrl.NewPeriodController(db)

	g := r.Group("/evaluation-periods")
	g.Get("/active", ctl.GetActive)
	g.Get("/", ctl.List)
}
