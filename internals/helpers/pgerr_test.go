package helper

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

// Klasifikasi error constraint jadi tumpuan fallback duplicate-redirect
// di service submission: kalah balapan di unique index harus terdeteksi
// sebagai unique violation, bukan error generik.
func TestConstraintErrorClassifiers(t *testing.T) {
	pgxUnique := errors.New(`ERROR: duplicate key value violates unique constraint "uq_evaluation_evaluator_teacher_period" (SQLSTATE 23505)`)
	pgxCheck := errors.New(`ERROR: new row for relation "evaluation_details" violates check constraint "chk_rating" (SQLSTATE 23514)`)
	pgxFK := errors.New(`ERROR: insert or update on table "evaluations" violates foreign key constraint "fk_period" (SQLSTATE 23503)`)

	if !IsUniqueViolation(pgxUnique) {
		t.Error("IsUniqueViolation harus mengenali SQLSTATE 23505")
	}
	if !IsUniqueViolation(fmt.Errorf("create evaluation: %w", pgxUnique)) {
		t.Error("IsUniqueViolation harus tembus error yang dibungkus")
	}
	if IsUniqueViolation(pgxCheck) || IsUniqueViolation(nil) {
		t.Error("IsUniqueViolation tidak boleh kena error lain atau nil")
	}

	if !IsCheckViolation(pgxCheck) {
		t.Error("IsCheckViolation harus mengenali SQLSTATE 23514")
	}
	if !IsForeignKeyViolation(pgxFK) {
		t.Error("IsForeignKeyViolation harus mengenali SQLSTATE 23503")
	}
	if IsCheckViolation(pgxFK) || IsForeignKeyViolation(pgxUnique) {
		t.Error("klasifikasi tidak boleh saling tertukar")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(gorm.ErrRecordNotFound) {
		t.Error("IsNotFound harus mengenali gorm.ErrRecordNotFound")
	}
	if !IsNotFound(fmt.Errorf("load: %w", gorm.ErrRecordNotFound)) {
		t.Error("IsNotFound harus tembus error yang dibungkus")
	}
	if IsNotFound(errors.New("lain")) || IsNotFound(nil) {
		t.Error("IsNotFound tidak boleh kena error lain atau nil")
	}
}
