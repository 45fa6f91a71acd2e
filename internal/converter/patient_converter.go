package converter

import (
	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientToResponse converts a Patient entity to its DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}
	response := &dto.PatientResponse{
		ID:             patient.ID,
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		DateOfBirth:    patient.DateOfBirth.Format("2006-01-02"),
		MedicalHistory: patient.MedicalHistory,
		CreatedByID:    patient.CreatedByID,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}
	if patient.AttendingDoctor.ID != uuid.Nil {
		response.AttendingDoctor = DoctorToResponse(&patient.AttendingDoctor)
	}
	return response
}

// PatientsToResponses converts a slice of patients
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
