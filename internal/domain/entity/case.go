package entity

import (
	"time"

	"github.com/google/uuid"
)

// Case represents a medical case opened for a patient. Access beyond the
// patient's attending doctor is granted through the assigned doctors set.
type Case struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CaseNumber  string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"case_number"`
	Name        string     `gorm:"type:varchar(255)" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Symptoms    string     `gorm:"type:text" json:"symptoms,omitempty"`
	Details     string     `gorm:"type:text" json:"details,omitempty"`
	PatientID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	CreatedByID *uuid.UUID `gorm:"type:uuid;index" json:"created_by_id,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient         Patient          `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	CreatedBy       *Receptionist    `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"created_by,omitempty"`
	AssignedDoctors []Doctor         `gorm:"many2many:case_assigned_doctors;constraint:OnDelete:CASCADE" json:"assigned_doctors,omitempty"`
	Attachments     []CaseAttachment `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
	Prescriptions   []Prescription   `gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE" json:"prescriptions,omitempty"`
}

func (Case) TableName() string {
	return "cases"
}

// HasAssignedDoctor reports whether the doctor is in the assigned set.
// AssignedDoctors must be loaded.
func (c *Case) HasAssignedDoctor(doctorID uuid.UUID) bool {
	for _, d := range c.AssignedDoctors {
		if d.ID == doctorID {
			return true
		}
	}
	return false
}

// AssignedDoctorIDs returns the ids of the assigned doctors set
func (c *Case) AssignedDoctorIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.AssignedDoctors))
	for _, d := range c.AssignedDoctors {
		ids = append(ids, d.ID)
	}
	return ids
}
