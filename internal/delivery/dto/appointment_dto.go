package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PatientID   uuid.UUID  `json:"patient_id" validate:"required"`
	DoctorID    uuid.UUID  `json:"doctor_id" validate:"required"`
	CaseID      *uuid.UUID `json:"case_id"`
	ScheduledAt time.Time  `json:"scheduled_at" validate:"required"`
	Status      string     `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Notes       string     `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	PatientID   *uuid.UUID `json:"patient_id"`
	DoctorID    *uuid.UUID `json:"doctor_id"`
	CaseID      *uuid.UUID `json:"case_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Notes       *string    `json:"notes"`
}

type AppointmentResponse struct {
	ID                uuid.UUID       `json:"id"`
	AppointmentNumber string          `json:"appointment_number"`
	PatientID         uuid.UUID       `json:"patient_id"`
	PatientName       string          `json:"patient_name"`
	Doctor            *DoctorResponse `json:"doctor,omitempty"`
	CaseID            *uuid.UUID      `json:"case_id,omitempty"`
	CaseName          string          `json:"case_name,omitempty"`
	CreatedByID       *uuid.UUID      `json:"created_by,omitempty"`
	Status            string          `json:"status"`
	Notes             string          `json:"notes,omitempty"`
	ScheduledAt       time.Time       `json:"scheduled_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
