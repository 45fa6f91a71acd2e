package handler

import (
	"errors"
	"net/http"

	"medical-records-api/internal/usecase"
	"medical-records-api/pkg/response"
)

// writeUsecaseError maps usecase sentinel errors onto the response
// envelope. Out-of-scope reads already surface as not-found upstream, so
// nothing here leaks record existence.
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrPermissionDenied):
		response.Forbidden(w, "You do not have permission to perform this action")
	case errors.Is(err, usecase.ErrNotFound):
		response.NotFound(w, "Resource not found")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid username or password")
	case errors.Is(err, usecase.ErrAccountDisabled):
		response.Unauthorized(w, "Account is disabled")
	case errors.Is(err, usecase.ErrInvalidToken):
		response.Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, usecase.ErrTokenRevoked):
		response.Unauthorized(w, "Token has been revoked")
	case errors.Is(err, usecase.ErrUsernameTaken):
		response.Conflict(w, "Username already exists")
	case errors.Is(err, usecase.ErrLicenseTaken):
		response.Conflict(w, "License number already exists")
	case errors.Is(err, usecase.ErrDoctorReferenced):
		response.Conflict(w, "Doctor is still referenced by patients or prescriptions")
	case errors.Is(err, usecase.ErrLicenseRequired),
		errors.Is(err, usecase.ErrInvalidDateFormat),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrDoctorNotFound),
		errors.Is(err, usecase.ErrPatientNotFound),
		errors.Is(err, usecase.ErrCaseNotFound),
		errors.Is(err, usecase.ErrPatientCaseMismatch),
		errors.Is(err, usecase.ErrCaseAccessRequired),
		errors.Is(err, usecase.ErrDoctorRequired):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
