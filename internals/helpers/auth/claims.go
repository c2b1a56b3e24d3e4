// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"penilaianguru_backend/internals/constants"
)

// Keys untuk fiber locals — dihidrasi oleh middleware AuthJWT.
const (
	LocUserID    = "user_id"
	LocUserRole  = "user_role"
	LocTeacherID = "teacher_id"
	LocUserName  = "user_name"
)

// GetUserID mengambil user id (UUID) dari locals. Error → 401.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user tidak dikenali")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user_id tidak valid")
	}
	return id, nil
}

// GetRole mengambil role dari locals ("" jika tidak ada).
func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

// GetTeacherID: id guru milik user (hanya terisi untuk role teacher).
// Dipakai untuk blok self-evaluation pada penilaian rekan sejawat.
func GetTeacherID(c *fiber.Ctx) (uuid.UUID, bool) {
	v, ok := c.Locals(LocTeacherID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func IsStudent(c *fiber.Ctx) bool    { return GetRole(c) == constants.RoleStudent }
func IsTeacher(c *fiber.Ctx) bool    { return GetRole(c) == constants.RoleTeacher }
func IsSupervisor(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleSupervisor }
func IsAdmin(c *fiber.Ctx) bool      { return GetRole(c) == constants.RoleAdmin }
