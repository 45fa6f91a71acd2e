package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	FirstName         string    `json:"first_name" validate:"required,max=255"`
	LastName          string    `json:"last_name" validate:"required,max=255"`
	DateOfBirth       string    `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	MedicalHistory    string    `json:"medical_history" validate:"omitempty"`
	AttendingDoctorID uuid.UUID `json:"attending_doctor_id" validate:"required"`
}

type UpdatePatientRequest struct {
	FirstName         *string    `json:"first_name" validate:"omitempty,max=255"`
	LastName          *string    `json:"last_name" validate:"omitempty,max=255"`
	DateOfBirth       *string    `json:"date_of_birth"`
	MedicalHistory    *string    `json:"medical_history"`
	AttendingDoctorID *uuid.UUID `json:"attending_doctor_id"`
}

type PatientResponse struct {
	ID              uuid.UUID       `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	DateOfBirth     string          `json:"date_of_birth"`
	MedicalHistory  string          `json:"medical_history,omitempty"`
	AttendingDoctor *DoctorResponse `json:"attending_doctor,omitempty"`
	CreatedByID     *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
