package usecase

import (
	"errors"
	"fmt"
	"testing"

	"medical-records-api/internal/authz"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestDeniedWrapsPermissionDenied(t *testing.T) {
	err := denied(authz.Deny("you are not the attending doctor for this patient"))
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Contains(t, err.Error(), "attending doctor")
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_cases_case_number"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_patients_attending_doctor"}

	assert.True(t, isDuplicateKeyError(dup, "case_number"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create: %w", dup), "case_number"))
	assert.False(t, isDuplicateKeyError(dup, "prescription_number"))
	assert.False(t, isDuplicateKeyError(fk, "case_number"))
	assert.False(t, isDuplicateKeyError(errors.New("plain"), "case_number"))
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_patients_attending_doctor"}

	assert.True(t, isForeignKeyError(fk, "attending_doctor"))
	assert.False(t, isForeignKeyError(fk, "prescriptions"))
	assert.False(t, isForeignKeyError(&pgconn.PgError{Code: "23505"}, "attending_doctor"))
}
