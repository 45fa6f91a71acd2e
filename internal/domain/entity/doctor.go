package entity

import "github.com/google/uuid"

// Doctor represents a physician profile owned 1:1 by a user account
type Doctor struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialty     string    `gorm:"type:varchar(255)" json:"specialty,omitempty"`
	LicenseNumber string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"license_number"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// Patients reference their attending doctor with RESTRICT, so a doctor
	// cannot be deleted while any patient points at them.
	Patients []Patient `gorm:"foreignKey:AttendingDoctorID" json:"patients,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
