package entity

import "github.com/google/uuid"

// Receptionist represents a front-desk profile owned 1:1 by a user account
type Receptionist struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DeskNumber string    `gorm:"type:varchar(32)" json:"desk_number,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Receptionist) TableName() string {
	return "receptionists"
}
