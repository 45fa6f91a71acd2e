package usecase

import (
	"medical-records-api/internal/domain/entity"
	"medical-records-api/internal/domain/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// staffParams are the resolved inputs for creating a staff account.
// Shared between open signup and admin user creation, which follow the
// same rules.
type staffParams struct {
	Username      string
	Email         string
	Password      string
	FirstName     string
	LastName      string
	Role          entity.Role
	Specialty     string
	LicenseNumber string
	DeskNumber    string
}

// provisionUser creates the user row and its role-scoped profile inside
// the caller's transaction. Doctor accounts must carry a license number.
func provisionUser(
	tx *gorm.DB,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	receptionistRepo repository.ReceptionistRepository,
	p staffParams,
) (*entity.User, error) {
	if p.Role == entity.RoleDoctor && p.LicenseNumber == "" {
		return nil, ErrLicenseRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:  p.Username,
		Email:     p.Email,
		Password:  string(hashedPassword),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      p.Role,
		IsActive:  true,
	}

	if err := userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	switch p.Role {
	case entity.RoleDoctor:
		doctor := &entity.Doctor{
			UserID:        user.ID,
			Specialty:     p.Specialty,
			LicenseNumber: p.LicenseNumber,
		}
		if err := doctorRepo.Create(tx, doctor); err != nil {
			if isDuplicateKeyError(err, "license_number") {
				return nil, ErrLicenseTaken
			}
			return nil, err
		}
		user.DoctorProfile = doctor
	case entity.RoleReceptionist:
		receptionist := &entity.Receptionist{
			UserID:     user.ID,
			DeskNumber: p.DeskNumber,
		}
		if err := receptionistRepo.Create(tx, receptionist); err != nil {
			return nil, err
		}
		user.ReceptionistProfile = receptionist
	}

	return user, nil
}

// reconcileProfiles synchronizes profile rows with the user's role after
// an update. Switching to DOCTOR needs a license number, supplied or
// already on file; the stale profile of the previous role is deleted.
// Runs inside the caller's transaction so a half-reconciled account can
// never be committed.
func reconcileProfiles(
	tx *gorm.DB,
	doctorRepo repository.DoctorRepository,
	receptionistRepo repository.ReceptionistRepository,
	user *entity.User,
	specialty, licenseNumber, deskNumber *string,
) error {
	switch user.Role {
	case entity.RoleDoctor:
		existing, err := doctorRepo.FindByUserID(tx, user.ID)
		if err != nil {
			return err
		}

		resolvedLicense := ""
		resolvedSpecialty := ""
		if existing != nil {
			resolvedLicense = existing.LicenseNumber
			resolvedSpecialty = existing.Specialty
		}
		if licenseNumber != nil {
			resolvedLicense = *licenseNumber
		}
		if specialty != nil {
			resolvedSpecialty = *specialty
		}
		if resolvedLicense == "" {
			return ErrLicenseRequired
		}

		doctor := existing
		if doctor == nil {
			doctor = &entity.Doctor{UserID: user.ID}
		}
		doctor.Specialty = resolvedSpecialty
		doctor.LicenseNumber = resolvedLicense
		if err := doctorRepo.Save(tx, doctor); err != nil {
			if isDuplicateKeyError(err, "license_number") {
				return ErrLicenseTaken
			}
			return err
		}
		user.DoctorProfile = doctor
		user.ReceptionistProfile = nil
		return receptionistRepo.DeleteByUserID(tx, user.ID)

	case entity.RoleReceptionist:
		existing, err := receptionistRepo.FindByUserID(tx, user.ID)
		if err != nil {
			return err
		}

		resolvedDesk := ""
		if existing != nil {
			resolvedDesk = existing.DeskNumber
		}
		if deskNumber != nil {
			resolvedDesk = *deskNumber
		}

		receptionist := existing
		if receptionist == nil {
			receptionist = &entity.Receptionist{UserID: user.ID}
		}
		receptionist.DeskNumber = resolvedDesk
		if err := receptionistRepo.Save(tx, receptionist); err != nil {
			return err
		}
		user.ReceptionistProfile = receptionist
		user.DoctorProfile = nil
		return doctorRepo.DeleteByUserID(tx, user.ID)

	default:
		user.DoctorProfile = nil
		user.ReceptionistProfile = nil
		if err := doctorRepo.DeleteByUserID(tx, user.ID); err != nil {
			return err
		}
		return receptionistRepo.DeleteByUserID(tx, user.ID)
	}
}
