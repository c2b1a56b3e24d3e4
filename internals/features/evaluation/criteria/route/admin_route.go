package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cCtrl "penilaianguru_backend/internals/features/evaluation/criteria/controller"
)

// CriteriaAdminRoutes: kelola katalog kriteria & subkriteria (admin).
func CriteriaAdminRoutes(r fiber.Router, db *gorm.DB) {
	crit := cCtrl.NewCriterionController(db)
	cg := r.Group("/evaluation-criterias")
	cg.Post("/", crit.Create)
	cg.Patch("/:id", crit.Patch)
	cg.Delete("/:id", crit.Delete)
	cg.Get("/", crit.List)

	sub := cCtrl.NewSubcriterionController(db)
	sg := r.Group("/evaluation-subcriterias")
	sg.Post("/", sub.Create)
	sg.Patch("/:id", sub.Patch)
	sg.Delete("/:id", sub.Delete)
}
