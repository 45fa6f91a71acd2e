package usecase

import (
	"context"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/converter"
	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/delivery/http/middleware"
	"medical-records-api/internal/domain/entity"
	"medical-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserAdminUsecase covers staff account management, an admin-only
// surface. Role changes reconcile profile rows in the same transaction.
type UserAdminUsecase interface {
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userAdminUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	doctorRepo       repository.DoctorRepository
	receptionistRepo repository.ReceptionistRepository
}

func NewUserAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	receptionistRepo repository.ReceptionistRepository,
) UserAdminUsecase {
	return &userAdminUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		doctorRepo:       doctorRepo,
		receptionistRepo: receptionistRepo,
	}
}

func (u *userAdminUsecase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userAdminUsecase) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return converter.UserToResponse(user), nil
}

// CreateUser applies the same rules as open signup
func (u *userAdminUsecase) CreateUser(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := provisionUser(tx, u.userRepo, u.doctorRepo, u.receptionistRepo, staffParams{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Role:          entity.Role(req.Role),
		Specialty:     req.Specialty,
		LicenseNumber: req.LicenseNumber,
		DeskNumber:    req.DeskNumber,
	})
	if err != nil {
		u.log.Warnf("Failed to create user %s: %+v", req.Username, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit user creation: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// UpdateUser applies account changes and reconciles profiles when the
// role changes, all in one transaction
func (u *userAdminUsecase) UpdateUser(ctx context.Context, userID uuid.UUID, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Role != nil {
		user.Role = entity.Role(*req.Role)
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := u.userRepo.Save(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameTaken
		}
		u.log.Warnf("Failed to update user %s: %+v", userID, err)
		return nil, err
	}

	if err := reconcileProfiles(tx, u.doctorRepo, u.receptionistRepo, user, req.Specialty, req.LicenseNumber, req.DeskNumber); err != nil {
		if isForeignKeyError(err, "attending_doctor") || isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorReferenced
		}
		u.log.Warnf("Failed to reconcile profiles for user %s: %+v", userID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit user update: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userAdminUsecase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := u.requireAdmin(ctx); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	// Profile rows cascade with the user, but a doctor still referenced
	// by patients or prescriptions blocks the delete.
	if err := u.userRepo.Delete(tx, user); err != nil {
		if isForeignKeyError(err, "attending_doctor") || isForeignKeyError(err, "doctor") {
			return ErrDoctorReferenced
		}
		u.log.Warnf("Failed to delete user %s: %+v", userID, err)
		return err
	}

	return tx.Commit().Error
}

func (u *userAdminUsecase) requireAdmin(ctx context.Context) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errNoActorInContext
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return errNoActorInContext
	}
	actor := authz.Actor{UserID: userID, Role: role}
	if d := authz.Authorize(actor, authz.ActionRead, authz.ResourceUser, nil); !d.Allowed {
		return denied(d)
	}
	return nil
}
