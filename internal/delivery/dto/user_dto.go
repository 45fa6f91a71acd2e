package dto

import (
	"time"

	"github.com/google/uuid"
)

type DoctorProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Specialty     string    `json:"specialty,omitempty"`
	LicenseNumber string    `json:"license_number"`
}

type ReceptionistProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	DeskNumber string    `json:"desk_number,omitempty"`
}

type UserResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	Username            string                       `json:"username"`
	Email               string                       `json:"email,omitempty"`
	FirstName           string                       `json:"first_name,omitempty"`
	LastName            string                       `json:"last_name,omitempty"`
	Role                string                       `json:"role"`
	IsActive            bool                         `json:"is_active"`
	DoctorProfile       *DoctorProfileResponse       `json:"doctor_profile,omitempty"`
	ReceptionistProfile *ReceptionistProfileResponse `json:"receptionist_profile,omitempty"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// AdminUpdateUserRequest is a partial update; absent fields are left
// unchanged. A role change triggers profile reconciliation.
type AdminUpdateUserRequest struct {
	Username      *string `json:"username" validate:"omitempty,min=3,max=150"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Password      *string `json:"password" validate:"omitempty,min=8"`
	FirstName     *string `json:"first_name" validate:"omitempty,max=150"`
	LastName      *string `json:"last_name" validate:"omitempty,max=150"`
	Role          *string `json:"role" validate:"omitempty,oneof=ADMIN DOCTOR RECEPTIONIST"`
	IsActive      *bool   `json:"is_active"`
	Specialty     *string `json:"specialty" validate:"omitempty,max=255"`
	LicenseNumber *string `json:"license_number" validate:"omitempty,max=128"`
	DeskNumber    *string `json:"desk_number" validate:"omitempty,max=32"`
}
