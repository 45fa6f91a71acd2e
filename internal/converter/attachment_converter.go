package converter

import (
	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"
)

func CaseAttachmentsToResponses(attachments []entity.CaseAttachment) []dto.AttachmentResponse {
	responses := make([]dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		responses = append(responses, dto.AttachmentResponse{
			ID:         a.ID,
			Label:      a.Label,
			FileKey:    a.FileKey,
			UploadedAt: a.UploadedAt,
		})
	}
	return responses
}

func PrescriptionAttachmentsToResponses(attachments []entity.PrescriptionAttachment) []dto.AttachmentResponse {
	responses := make([]dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		responses = append(responses, dto.AttachmentResponse{
			ID:         a.ID,
			Label:      a.Label,
			FileKey:    a.FileKey,
			UploadedAt: a.UploadedAt,
		})
	}
	return responses
}
