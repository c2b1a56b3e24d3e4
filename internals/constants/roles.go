package constants

import "fmt"

// Role pengguna di platform penilaian kinerja guru.
const (
	RoleStudent    = "student"    // siswa → penilaian kind=student
	RoleTeacher    = "teacher"    // guru → penilaian kind=peer (rekan sejawat)
	RoleSupervisor = "supervisor" // kepala sekolah → penilaian kind=supervisor
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySupervisorCanAccess = "❌ Hanya kepala sekolah atau admin yang boleh mengakses fitur %s."
	ErrOnlyEvaluatorsCanAccess = "❌ Hanya siswa, guru, atau kepala sekolah yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorCanAccess, feature)
}

func RoleErrorEvaluator(feature string) string {
	return fmt.Sprintf(ErrOnlyEvaluatorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleSupervisor,
		RoleAdmin,
	}

	EvaluatorRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleSupervisor,
	}

	SupervisorAndAbove = []string{
		RoleSupervisor,
		RoleAdmin,
	}
)
