package usecase

import (
	"context"
	"time"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/converter"
	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"
	"medical-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID uuid.UUID) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	actors      *actorResolver
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	receptionistRepo repository.ReceptionistRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		actors:      newActorResolver(doctorRepo, receptionistRepo),
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}
	if d := authz.Authorize(actor, authz.ActionList, authz.ResourcePatient, nil); !d.Allowed {
		return nil, denied(d)
	}

	patients, err := u.patientRepo.FindAll(db, authz.PatientScope(actor))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(db, patientID, authz.PatientScope(actor))
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionRead, authz.ResourcePatient, patient); !d.Allowed {
		return nil, denied(d)
	}

	return converter.PatientToResponse(patient), nil
}

// CreatePatient registers a patient. The creating receptionist is
// recorded server-side; admin-created records carry no creator.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}
	if d := authz.Authorize(actor, authz.ActionCreate, authz.ResourcePatient, nil); !d.Allowed {
		return nil, denied(d)
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	attending, err := u.doctorRepo.FindByID(db, req.AttendingDoctorID)
	if err != nil {
		return nil, err
	}
	if attending == nil {
		return nil, ErrDoctorNotFound
	}

	patient := &entity.Patient{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DateOfBirth:       dob,
		MedicalHistory:    req.MedicalHistory,
		AttendingDoctorID: attending.ID,
	}
	if actor.Role == entity.RoleReceptionist {
		recID, ok := actor.ReceptionistID()
		if !ok {
			return nil, denied(authz.Deny("receptionist profile missing"))
		}
		patient.CreatedByID = &recID
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	patient.AttendingDoctor = *attending
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(db, patientID, authz.PatientScope(actor))
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionUpdate, authz.ResourcePatient, patient); !d.Allowed {
		return nil, denied(d)
	}

	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = *req.MedicalHistory
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = dob
	}
	if req.AttendingDoctorID != nil {
		attending, err := u.doctorRepo.FindByID(db, *req.AttendingDoctorID)
		if err != nil {
			return nil, err
		}
		if attending == nil {
			return nil, ErrDoctorNotFound
		}
		patient.AttendingDoctorID = attending.ID
		patient.AttendingDoctor = *attending
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Save(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", patientID, err)
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient is admin-only; cases, prescriptions and appointments
// cascade with the record
func (u *patientUsecase) DeletePatient(ctx context.Context, patientID uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return err
	}

	patient, err := u.patientRepo.FindByID(db, patientID, authz.PatientScope(actor))
	if err != nil {
		return err
	}
	if patient == nil {
		return ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionDelete, authz.ResourcePatient, patient); !d.Allowed {
		return denied(d)
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Delete(tx, patient); err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", patientID, err)
		return err
	}
	return tx.Commit().Error
}
