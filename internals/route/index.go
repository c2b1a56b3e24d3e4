// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"penilaianguru_backend/internals/constants"
	authmw "penilaianguru_backend/internals/middlewares/auth"
	routeDetails "penilaianguru_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	jwtOpts := authmw.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	// ===================== GROUPS =====================

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", authmw.AuthJWT(jwtOpts))

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authmw.AuthJWT(jwtOpts),
		authmw.OnlyRoles(constants.RoleErrorAdmin("administrasi penilaian"), constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Evaluation routes...")
	routeDetails.EvaluationPublicRoutes(public, db)
	routeDetails.EvaluationUserRoutes(private, db)
	routeDetails.EvaluationAdminRoutes(admin, db)
}
