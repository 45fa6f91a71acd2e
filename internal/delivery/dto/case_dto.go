package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCaseRequest struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Description string    `json:"description" validate:"omitempty"`
	Symptoms    string    `json:"symptoms" validate:"omitempty"`
	Details     string    `json:"details" validate:"omitempty"`
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	// nil means "not supplied": the patient's attending doctor is assigned
	// by default. An explicit empty list stays empty.
	AssignedDoctorIDs *[]uuid.UUID `json:"assigned_doctor_ids"`
}

type UpdateCaseRequest struct {
	Name              *string      `json:"name" validate:"omitempty,max=255"`
	Description       *string      `json:"description"`
	Symptoms          *string      `json:"symptoms"`
	Details           *string      `json:"details"`
	PatientID         *uuid.UUID   `json:"patient_id"`
	AssignedDoctorIDs *[]uuid.UUID `json:"assigned_doctor_ids"`
}

type CaseResponse struct {
	ID              uuid.UUID              `json:"id"`
	CaseNumber      string                 `json:"case_number"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	Symptoms        string                 `json:"symptoms,omitempty"`
	Details         string                 `json:"details,omitempty"`
	PatientID       uuid.UUID              `json:"patient_id"`
	PatientName     string                 `json:"patient_name"`
	CreatedByID     *uuid.UUID             `json:"created_by,omitempty"`
	AssignedDoctors []DoctorResponse       `json:"assigned_doctors"`
	Attachments     []AttachmentResponse   `json:"attachments"`
	Prescriptions   []PrescriptionResponse `json:"prescriptions"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type CaseListResponse struct {
	Cases []CaseResponse `json:"cases"`
	Total int            `json:"total"`
}
