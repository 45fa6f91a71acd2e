package converter

import (
	"strings"

	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

// CaseToResponse converts a Case entity with its loaded relations
func CaseToResponse(medicalCase *entity.Case) *dto.CaseResponse {
	if medicalCase == nil {
		return nil
	}
	response := &dto.CaseResponse{
		ID:              medicalCase.ID,
		CaseNumber:      medicalCase.CaseNumber,
		Name:            medicalCase.Name,
		Description:     medicalCase.Description,
		Symptoms:        medicalCase.Symptoms,
		Details:         medicalCase.Details,
		PatientID:       medicalCase.PatientID,
		CreatedByID:     medicalCase.CreatedByID,
		AssignedDoctors: DoctorsToResponses(medicalCase.AssignedDoctors),
		Attachments:     CaseAttachmentsToResponses(medicalCase.Attachments),
		Prescriptions:   PrescriptionsToResponses(medicalCase.Prescriptions),
		CreatedAt:       medicalCase.CreatedAt,
		UpdatedAt:       medicalCase.UpdatedAt,
	}
	if medicalCase.Patient.ID != uuid.Nil {
		response.PatientName = strings.TrimSpace(medicalCase.Patient.FirstName + " " + medicalCase.Patient.LastName)
	}
	return response
}

// CasesToResponses converts a slice of cases
func CasesToResponses(cases []entity.Case) []dto.CaseResponse {
	responses := make([]dto.CaseResponse, 0, len(cases))
	for i := range cases {
		responses = append(responses, *CaseToResponse(&cases[i]))
	}
	return responses
}
