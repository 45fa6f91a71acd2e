package usecase

import (
	"errors"
	"fmt"
	"strings"

	"medical-records-api/internal/authz"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrPermissionDenied marks authorization refusals. The wrapped
	// message carries the engine's deny reason.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound covers both records that do not exist and records
	// outside the caller's visible set.
	ErrNotFound = errors.New("record not found")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")

	ErrUsernameTaken   = errors.New("username already exists")
	ErrLicenseTaken    = errors.New("license number already exists")
	ErrLicenseRequired = errors.New("doctor accounts require a license number")

	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidStatus     = errors.New("invalid appointment status")

	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrCaseNotFound    = errors.New("case not found")

	// ErrPatientCaseMismatch flags a prescription whose patient does not
	// match the case's patient.
	ErrPatientCaseMismatch = errors.New("patient must match the case patient")
	// ErrCaseAccessRequired flags a doctor writing a prescription under a
	// case they neither attend nor are assigned to. Surfaced as a
	// validation error, matching how the input is reported to clients.
	ErrCaseAccessRequired = errors.New("you do not have access to this case")
	// ErrDoctorRequired flags an admin-created prescription without an
	// explicit author.
	ErrDoctorRequired = errors.New("prescriptions created by admins must specify a doctor")

	// ErrDoctorReferenced blocks deleting a doctor still holding patients
	// or prescriptions.
	ErrDoctorReferenced = errors.New("doctor is still referenced by patients or prescriptions")
)

// denied wraps an authorization refusal so handlers can map it while the
// reason survives in the message
func denied(d authz.Decision) error {
	return fmt.Errorf("%w: %s", ErrPermissionDenied, d.Reason)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique
// constraint violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// violation containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
