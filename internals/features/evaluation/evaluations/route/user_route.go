package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"penilaianguru_backend/internals/constants"
	eCtrl "penilaianguru_backend/internals/features/evaluation/evaluations/controller"
	"penilaianguru_backend/internals/middlewares"
	authmw "penilaianguru_backend/internals/middlewares/auth"
)

// EvaluationUserRoutes: pengisian penilaian oleh siswa/guru/kepala sekolah.
func EvaluationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := eCtrl.NewEvaluationController(db)

	g := r.Group("/evaluations",
		authmw.OnlyRoles(constants.RoleErrorEvaluator("penilaian"), constants.EvaluatorRoles...),
	)
	g.Post("/", middlewares.SubmitRateLimiter(), ctl.Create)
	g.Put("/:id", middlewares.SubmitRateLimiter(), ctl.Update)
	g.Post("/:id/finalize", ctl.Finalize)
	g.Get("/mine", ctl.Mine)
	g.Get("/:id", ctl.GetByID)
}
