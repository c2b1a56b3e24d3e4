package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"penilaianguru_backend/internals/constants"
	rcCtrl "penilaianguru_backend/internals/features/evaluation/recommendations/controller"
	authmw "penilaianguru_backend/internals/middlewares/auth"
)

// RecommendationRoutes: tindak lanjut hasil penilaian (kepala sekolah/admin).
func RecommendationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rcCtrl.NewRecommendationController(db)

	g := r.Group("/evaluation-recommendations",
		authmw.OnlyRoles(constants.RoleErrorSupervisor("rekomendasi"), constants.SupervisorAndAbove...),
	)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Get("/", ctl.List)
	g.Delete("/:id", ctl.Delete)
}
