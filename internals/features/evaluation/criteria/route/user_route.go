package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cCtrl "penilaianguru_backend/internals/features/evaluation/criteria/controller"
)

// CriteriaUserRoutes: katalog aktif untuk form penilaian.
func CriteriaUserRoutes(r fiber.Router, db *gorm.DB) {
	crit := cCtrl.NewCriterionController(db)

	g := r.Group("/evaluation-criterias")
	g.Get("/active", crit.ListActive)
}
