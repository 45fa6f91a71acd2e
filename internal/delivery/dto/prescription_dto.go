package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePrescriptionRequest struct {
	CaseID    uuid.UUID `json:"case_id" validate:"required"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	// Ignored for doctors (the author is always the acting doctor);
	// required for admins.
	DoctorID *uuid.UUID `json:"doctor_id"`
	Details  string     `json:"details" validate:"omitempty"`
}

type UpdatePrescriptionRequest struct {
	CaseID    *uuid.UUID `json:"case_id"`
	PatientID *uuid.UUID `json:"patient_id"`
	DoctorID  *uuid.UUID `json:"doctor_id"`
	Details   *string    `json:"details"`
}

type PrescriptionResponse struct {
	ID                 uuid.UUID            `json:"id"`
	PrescriptionNumber string               `json:"prescription_number"`
	CaseID             uuid.UUID            `json:"case_id"`
	PatientID          uuid.UUID            `json:"patient_id"`
	Doctor             *DoctorResponse      `json:"doctor,omitempty"`
	Details            string               `json:"details,omitempty"`
	Attachments        []AttachmentResponse `json:"attachments"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
