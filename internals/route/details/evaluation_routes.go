// file: internals/route/details/evaluation_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"penilaianguru_backend/internals/constants"
	criteriaRoute "penilaianguru_backend/internals/features/evaluation/criteria/route"
	evaluationRoute "penilaianguru_backend/internals/features/evaluation/evaluations/route"
	periodRoute "penilaianguru_backend/internals/features/evaluation/periods/route"
	recommendationRoute "penilaianguru_backend/internals/features/evaluation/recommendations/route"
	reportRoute "penilaianguru_backend/internals/features/evaluation/reports/route"
	resultRoute "penilaianguru_backend/internals/features/evaluation/results/route"
	authmw "penilaianguru_backend/internals/middlewares/auth"
)

// EvaluationPublicRoutes: tanpa login — hanya info periode.
func EvaluationPublicRoutes(r fiber.Router, db *gorm.DB) {
	periodRoute.PeriodUserRoutes(r, db)
}

// EvaluationUserRoutes: semua pengguna login.
func EvaluationUserRoutes(r fiber.Router, db *gorm.DB) {
	criteriaRoute.CriteriaUserRoutes(r, db)
	evaluationRoute.EvaluationUserRoutes(r, db)

	// Hasil, tren, dan rekomendasi: guru (riwayat sendiri) ke atas
	viewer := r.Group("",
		authmw.OnlyRoles(constants.RoleErrorSupervisor("hasil penilaian"),
			constants.RoleTeacher, constants.RoleSupervisor, constants.RoleAdmin),
	)
	resultRoute.ResultUserRoutes(viewer, db)
	reportRoute.ReportUserRoutes(viewer, db)
	recommendationRoute.RecommendationRoutes(r, db)
}

// EvaluationAdminRoutes: katalog, periode, monitoring, recompute.
func EvaluationAdminRoutes(r fiber.Router, db *gorm.DB) {
	periodRoute.PeriodAdminRoutes(r, db)
	criteriaRoute.CriteriaAdminRoutes(r, db)
	evaluationRoute.EvaluationAdminRoutes(r, db)
	resultRoute.ResultAdminRoutes(r, db)
}
