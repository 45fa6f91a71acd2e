package dto

import (
	"time"

	"github.com/google/uuid"
)

type AttachmentResponse struct {
	ID         uuid.UUID `json:"id"`
	Label      string    `json:"label"`
	FileKey    string    `json:"file_key"`
	UploadedAt time.Time `json:"uploaded_at"`
}
