package usecase

import (
	"context"
	"errors"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/delivery/http/middleware"
	"medical-records-api/internal/domain/entity"
	"medical-records-api/internal/domain/repository"

	"gorm.io/gorm"
)

var errNoActorInContext = errors.New("authenticated user not found in context")

// actorResolver builds the authz.Actor for a request from the token
// claims in the context plus the role-scoped profile row. A missing
// profile is not an error here: a role that requires one simply ends up
// with an empty visible set downstream.
type actorResolver struct {
	doctorRepo       repository.DoctorRepository
	receptionistRepo repository.ReceptionistRepository
}

func newActorResolver(doctorRepo repository.DoctorRepository, receptionistRepo repository.ReceptionistRepository) *actorResolver {
	return &actorResolver{doctorRepo: doctorRepo, receptionistRepo: receptionistRepo}
}

func (r *actorResolver) Resolve(ctx context.Context, db *gorm.DB) (authz.Actor, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return authz.Actor{}, errNoActorInContext
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return authz.Actor{}, errNoActorInContext
	}

	actor := authz.Actor{UserID: userID, Role: role}
	switch role {
	case entity.RoleDoctor:
		doctor, err := r.doctorRepo.FindByUserID(db, userID)
		if err != nil {
			return authz.Actor{}, err
		}
		actor.Doctor = doctor
	case entity.RoleReceptionist:
		receptionist, err := r.receptionistRepo.FindByUserID(db, userID)
		if err != nil {
			return authz.Actor{}, err
		}
		actor.Receptionist = receptionist
	}
	return actor, nil
}
