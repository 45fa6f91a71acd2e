package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient stores patient demographic and clinical information. Every
// patient has exactly one attending doctor; the receptionist who
// registered the record is tracked for auditing and nulled if that
// receptionist is removed.
type Patient struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName         string     `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName          string     `gorm:"type:varchar(255);not null" json:"last_name"`
	DateOfBirth       time.Time  `gorm:"type:date;not null" json:"date_of_birth"`
	MedicalHistory    string     `gorm:"type:text" json:"medical_history,omitempty"`
	AttendingDoctorID uuid.UUID  `gorm:"type:uuid;not null;index" json:"attending_doctor_id"`
	CreatedByID       *uuid.UUID `gorm:"type:uuid;index" json:"created_by_id,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	AttendingDoctor Doctor        `gorm:"foreignKey:AttendingDoctorID;constraint:OnDelete:RESTRICT" json:"attending_doctor,omitempty"`
	CreatedBy       *Receptionist `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"created_by,omitempty"`
	Cases           []Case        `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"cases,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// DisplayName returns "Last, First" for rosters and logs
func (p *Patient) DisplayName() string {
	return p.LastName + ", " + p.FirstName
}
