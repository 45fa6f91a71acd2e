package usecase

import (
	"context"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/converter"
	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"
	"medical-records-api/internal/domain/repository"
	"medical-records-api/internal/service/recordnum"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	caseRepo        repository.CaseRepository
	actors          *actorResolver
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	caseRepo repository.CaseRepository,
	receptionistRepo repository.ReceptionistRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		caseRepo:        caseRepo,
		actors:          newActorResolver(doctorRepo, receptionistRepo),
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}
	if d := authz.Authorize(actor, authz.ActionList, authz.ResourceAppointment, nil); !d.Allowed {
		return nil, denied(d)
	}

	appointments, err := u.appointmentRepo.FindAll(db, authz.AppointmentScope(actor))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID, authz.AppointmentScope(actor))
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionRead, authz.ResourceAppointment, appointment); !d.Allowed {
		return nil, denied(d)
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CreateAppointment schedules a patient with a doctor, optionally linked
// to one of the patient's cases.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}
	if d := authz.Authorize(actor, authz.ActionCreate, authz.ResourceAppointment, nil); !d.Allowed {
		return nil, denied(d)
	}

	patient, err := u.patientRepo.FindByID(db, req.PatientID, authz.Unscoped)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	var medicalCase *entity.Case
	if req.CaseID != nil {
		medicalCase, err = u.caseRepo.FindByID(db, *req.CaseID, authz.Unscoped)
		if err != nil {
			return nil, err
		}
		if medicalCase == nil {
			return nil, ErrCaseNotFound
		}
		if medicalCase.PatientID != patient.ID {
			return nil, ErrPatientCaseMismatch
		}
	}

	status := entity.AppointmentStatusPending
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	appointment := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		CaseID:      req.CaseID,
		Status:      status,
		Notes:       req.Notes,
		ScheduledAt: req.ScheduledAt,
	}
	if actor.Role == entity.RoleReceptionist {
		recID, ok := actor.ReceptionistID()
		if !ok {
			return nil, denied(authz.Deny("receptionist profile missing"))
		}
		appointment.CreatedByID = &recID
	}

	// One retry on a generated-number collision
	for attempt := 0; ; attempt++ {
		appointment.AppointmentNumber = recordnum.Generate(recordnum.PrefixAppointment)

		tx := db.Begin()
		err = u.appointmentRepo.Create(tx, appointment)
		if err == nil {
			err = tx.Commit().Error
		}
		if err == nil {
			break
		}
		tx.Rollback()
		if isDuplicateKeyError(err, "appointment_number") && attempt == 0 {
			continue
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Doctor = *doctor
	appointment.Case = medicalCase
	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment applies a partial update. Which fields the caller
// may touch depends on their role: doctors are limited to status and
// notes on their own appointments.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID, authz.AppointmentScope(actor))
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionUpdate, authz.ResourceAppointment, appointment); !d.Allowed {
		return nil, denied(d)
	}

	// Field restrictions go by presence in the payload, not by value:
	// a doctor echoing back patient_id is rejected outright.
	supplied := authz.NewFieldSet()
	if req.PatientID != nil {
		supplied.Add("patient")
	}
	if req.DoctorID != nil {
		supplied.Add("doctor")
	}
	if req.CaseID != nil {
		supplied.Add("case")
	}
	if req.ScheduledAt != nil {
		supplied.Add("scheduled_at")
	}
	if req.Status != nil {
		supplied.Add("status")
	}
	if req.Notes != nil {
		supplied.Add("notes")
	}
	if d := authz.CanUpdateAppointmentFields(actor, supplied); !d.Allowed {
		return nil, denied(d)
	}

	if req.PatientID != nil && *req.PatientID != appointment.PatientID {
		patient, err := u.patientRepo.FindByID(db, *req.PatientID, authz.Unscoped)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		appointment.PatientID = patient.ID
		appointment.Patient = *patient
	}
	if req.DoctorID != nil && *req.DoctorID != appointment.DoctorID {
		doctor, err := u.doctorRepo.FindByID(db, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		appointment.DoctorID = doctor.ID
		appointment.Doctor = *doctor
	}
	if req.CaseID != nil {
		medicalCase, err := u.caseRepo.FindByID(db, *req.CaseID, authz.Unscoped)
		if err != nil {
			return nil, err
		}
		if medicalCase == nil {
			return nil, ErrCaseNotFound
		}
		if medicalCase.PatientID != appointment.PatientID {
			return nil, ErrPatientCaseMismatch
		}
		appointment.CaseID = &medicalCase.ID
		appointment.Case = medicalCase
	}
	if req.ScheduledAt != nil {
		appointment.ScheduledAt = *req.ScheduledAt
	}
	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		appointment.Status = status
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Save(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return err
	}

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID, authz.AppointmentScope(actor))
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionDelete, authz.ResourceAppointment, appointment); !d.Allowed {
		return denied(d)
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Delete(tx, appointment); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}
	return tx.Commit().Error
}
