package converter

import (
	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PrescriptionToResponse converts a Prescription entity to its DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}
	response := &dto.PrescriptionResponse{
		ID:                 prescription.ID,
		PrescriptionNumber: prescription.PrescriptionNumber,
		CaseID:             prescription.CaseID,
		PatientID:          prescription.PatientID,
		Details:            prescription.Details,
		Attachments:        PrescriptionAttachmentsToResponses(prescription.Attachments),
		CreatedAt:          prescription.CreatedAt,
		UpdatedAt:          prescription.UpdatedAt,
	}
	if prescription.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&prescription.Doctor)
	}
	return response
}

// PrescriptionsToResponses converts a slice of prescriptions
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i]))
	}
	return responses
}
