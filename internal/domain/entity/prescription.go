package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is authored by a doctor for a patient under a case. The
// prescription's patient must always equal the case's patient; the
// authoring doctor cannot be deleted while prescriptions reference them.
type Prescription struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PrescriptionNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"prescription_number"`
	CaseID             uuid.UUID `gorm:"type:uuid;not null;index" json:"case_id"`
	PatientID          uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID           uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Details            string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Case        Case                     `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"case,omitempty"`
	Patient     Patient                  `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor      Doctor                   `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"doctor,omitempty"`
	Attachments []PrescriptionAttachment `gorm:"foreignKey:PrescriptionID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
