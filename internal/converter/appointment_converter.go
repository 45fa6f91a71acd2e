package converter

import (
	"strings"

	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	response := &dto.AppointmentResponse{
		ID:                appointment.ID,
		AppointmentNumber: appointment.AppointmentNumber,
		PatientID:         appointment.PatientID,
		CaseID:            appointment.CaseID,
		CreatedByID:       appointment.CreatedByID,
		Status:            string(appointment.Status),
		Notes:             appointment.Notes,
		ScheduledAt:       appointment.ScheduledAt,
		CreatedAt:         appointment.CreatedAt,
		UpdatedAt:         appointment.UpdatedAt,
	}
	if appointment.Patient.ID != uuid.Nil {
		response.PatientName = strings.TrimSpace(appointment.Patient.FirstName + " " + appointment.Patient.LastName)
	}
	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&appointment.Doctor)
	}
	if appointment.Case != nil {
		response.CaseName = appointment.Case.Name
		if response.CaseName == "" {
			response.CaseName = appointment.Case.CaseNumber
		}
	}
	return response
}

// AppointmentsToResponses converts a slice of appointments
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
