package dto

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SignupRequest registers a staff account. Doctors must supply a license
// number; specialty and desk number are optional profile extras.
type SignupRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=150"`
	Email         string `json:"email" validate:"omitempty,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FirstName     string `json:"first_name" validate:"omitempty,max=150"`
	LastName      string `json:"last_name" validate:"omitempty,max=150"`
	Role          string `json:"role" validate:"required,oneof=ADMIN DOCTOR RECEPTIONIST"`
	Specialty     string `json:"specialty" validate:"omitempty,max=255"`
	LicenseNumber string `json:"license_number" validate:"omitempty,max=128"`
	DeskNumber    string `json:"desk_number" validate:"omitempty,max=32"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
}
