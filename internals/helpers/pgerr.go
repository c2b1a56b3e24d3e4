// file: internals/helpers/pgerr.go
package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"strings"
)

// IsUniqueViolation: cek substring SQLSTATE 23505 tanpa import driver
// (portable, mengikuti konvensi error text pgx/lib/pq).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

// IsCheckViolation: SQLSTATE 23514
func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23514") ||
		strings.Contains(s, "check constraint")
}

// IsForeignKeyViolation: SQLSTATE 23503
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23503") ||
		strings.Contains(s, "foreign key constraint")
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// ValidatorErrorMap: validator.ValidationErrors → field map untuk JsonValidationError
func ValidatorErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}

// FromFiberError: propagasi *fiber.Error apa adanya, selain itu fallback status.
func FromFiberError(c *fiber.Ctx, err error, fallbackStatus int, fallbackMsg string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fallbackStatus, fallbackMsg)
}
