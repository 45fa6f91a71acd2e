package converter

import (
	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO, including
// whichever role profile is loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = &dto.DoctorProfileResponse{
			ID:            user.DoctorProfile.ID,
			Specialty:     user.DoctorProfile.Specialty,
			LicenseNumber: user.DoctorProfile.LicenseNumber,
		}
	}

	if user.ReceptionistProfile != nil {
		response.ReceptionistProfile = &dto.ReceptionistProfileResponse{
			ID:         user.ReceptionistProfile.ID,
			DeskNumber: user.ReceptionistProfile.DeskNumber,
		}
	}

	return response
}

// UsersToResponses converts a slice of users
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}
