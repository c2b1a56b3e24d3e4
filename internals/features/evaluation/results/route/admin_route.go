package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rCtrl "penilaianguru_backend/internals/features/evaluation/results/controller"
)

// ResultAdminRoutes: hitung ulang batch (admin).
func ResultAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rCtrl.NewResultController(db)

	g := r.Group("/evaluation-results")
	g.Post("/recompute", ctl.Recompute)
}
