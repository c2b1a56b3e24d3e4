package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rCtrl "penilaianguru_backend/internals/features/evaluation/results/controller"
)

// ResultUserRoutes: baca snapshot hasil (kepala sekolah/admin; guru bisa
// melihat riwayatnya sendiri lewat group yang sama).
func ResultUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rCtrl.NewResultController(db)

	g := r.Group("/evaluation-results")
	g.Get("/:teacherID/:periodID", ctl.GetByTeacherPeriod)
	g.Get("/:teacherID", ctl.ListForTeacher)
}
