package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaseAttachment is a labeled file stored under the case's namespace in
// the object store. Rows cascade with their case.
type CaseAttachment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CaseID     uuid.UUID `gorm:"type:uuid;not null;index" json:"case_id"`
	Label      string    `gorm:"type:varchar(255);not null" json:"label"`
	FileKey    string    `gorm:"type:varchar(512);not null" json:"file_key"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (CaseAttachment) TableName() string {
	return "case_attachments"
}

// PrescriptionAttachment is a labeled file stored under the
// prescription's namespace in the object store.
type PrescriptionAttachment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PrescriptionID uuid.UUID `gorm:"type:uuid;not null;index" json:"prescription_id"`
	Label          string    `gorm:"type:varchar(255);not null" json:"label"`
	FileKey        string    `gorm:"type:varchar(512);not null" json:"file_key"`
	UploadedAt     time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (PrescriptionAttachment) TableName() string {
	return "prescription_attachments"
}
