package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending    AppointmentStatus = "PENDING"
	AppointmentStatusInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusCompleted  AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled  AppointmentStatus = "CANCELLED"
)

// Valid reports whether the status is a known lifecycle state
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment schedules a patient with a doctor, optionally under a case.
// The case link survives appointment deletion but is nulled if the case
// itself is removed.
type Appointment struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentNumber string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"appointment_number"`
	PatientID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	CaseID            *uuid.UUID        `gorm:"type:uuid;index" json:"case_id,omitempty"`
	CreatedByID       *uuid.UUID        `gorm:"type:uuid;index" json:"created_by_id,omitempty"`
	Status            AppointmentStatus `gorm:"type:varchar(32);not null;default:'PENDING';index" json:"status"`
	Notes             string            `gorm:"type:text" json:"notes,omitempty"`
	ScheduledAt       time.Time         `gorm:"not null;index" json:"scheduled_at"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient       `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor    Doctor        `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
	Case      *Case         `gorm:"foreignKey:CaseID;constraint:OnDelete:SET NULL" json:"case,omitempty"`
	CreatedBy *Receptionist `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"created_by,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
