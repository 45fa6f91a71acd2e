package dto

import "github.com/google/uuid"

// DoctorResponse is the roster view of a physician
type DoctorResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	FullName      string    `json:"full_name"`
	Specialty     string    `json:"specialty,omitempty"`
	LicenseNumber string    `json:"license_number"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
