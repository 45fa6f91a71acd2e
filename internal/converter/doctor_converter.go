package converter

import (
	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its roster DTO. The User
// relation should be loaded for the display name; it degrades to an empty
// name otherwise.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}
	return &dto.DoctorResponse{
		ID:            doctor.ID,
		UserID:        doctor.UserID,
		FullName:      doctor.User.FullName(),
		Specialty:     doctor.Specialty,
		LicenseNumber: doctor.LicenseNumber,
	}
}

// DoctorsToResponses converts a slice of doctors
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}
	return responses
}
