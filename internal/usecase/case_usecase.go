package usecase

import (
	"context"
	"io"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/converter"
	"medical-records-api/internal/delivery/dto"
	"medical-records-api/internal/domain/entity"
	"medical-records-api/internal/domain/repository"
	"medical-records-api/internal/service/recordnum"
	"medical-records-api/internal/service/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CaseUsecase interface {
	ListCases(ctx context.Context) (*dto.CaseListResponse, error)
	GetCase(ctx context.Context, caseID uuid.UUID) (*dto.CaseResponse, error)
	CreateCase(ctx context.Context, req *dto.CreateCaseRequest) (*dto.CaseResponse, error)
	UpdateCase(ctx context.Context, caseID uuid.UUID, req *dto.UpdateCaseRequest) (*dto.CaseResponse, error)
	DeleteCase(ctx context.Context, caseID uuid.UUID) error
	AddAttachment(ctx context.Context, caseID uuid.UUID, label string, file io.Reader, size int64, contentType string) (*dto.AttachmentResponse, error)
}

type caseUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	caseRepo    repository.CaseRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	attachments *storage.AttachmentStore
	actors      *actorResolver
}

func NewCaseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	caseRepo repository.CaseRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	receptionistRepo repository.ReceptionistRepository,
	attachments *storage.AttachmentStore,
) CaseUsecase {
	return &caseUsecase{
		db:          db,
		log:         log,
		caseRepo:    caseRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		attachments: attachments,
		actors:      newActorResolver(doctorRepo, receptionistRepo),
	}
}

func (u *caseUsecase) ListCases(ctx context.Context) (*dto.CaseListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}
	if d := authz.Authorize(actor, authz.ActionList, authz.ResourceCase, nil); !d.Allowed {
		return nil, denied(d)
	}

	cases, err := u.caseRepo.FindAll(db, authz.CaseScope(actor))
	if err != nil {
		u.log.Warnf("Failed to list cases: %+v", err)
		return nil, err
	}

	return &dto.CaseListResponse{
		Cases: converter.CasesToResponses(cases),
		Total: len(cases),
	}, nil
}

func (u *caseUsecase) GetCase(ctx context.Context, caseID uuid.UUID) (*dto.CaseResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	medicalCase, err := u.caseRepo.FindByID(db, caseID, authz.CaseScope(actor))
	if err != nil {
		return nil, err
	}
	if medicalCase == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionRead, authz.ResourceCase, medicalCase); !d.Allowed {
		return nil, denied(d)
	}

	return converter.CaseToResponse(medicalCase), nil
}

// CreateCase opens a case for a patient. When no assigned doctors are
// supplied the patient's attending doctor is assigned by default; an
// explicit empty list leaves the case with only attending-based access.
func (u *caseUsecase) CreateCase(ctx context.Context, req *dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}
	if d := authz.Authorize(actor, authz.ActionCreate, authz.ResourceCase, nil); !d.Allowed {
		return nil, denied(d)
	}

	patient, err := u.patientRepo.FindByID(db, req.PatientID, authz.Unscoped)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	var assigned []entity.Doctor
	if req.AssignedDoctorIDs == nil {
		attending, err := u.doctorRepo.FindByID(db, patient.AttendingDoctorID)
		if err != nil {
			return nil, err
		}
		if attending != nil {
			assigned = []entity.Doctor{*attending}
		}
	} else {
		assigned, err = u.resolveDoctors(db, *req.AssignedDoctorIDs)
		if err != nil {
			return nil, err
		}
	}

	medicalCase := &entity.Case{
		Name:        req.Name,
		Description: req.Description,
		Symptoms:    req.Symptoms,
		Details:     req.Details,
		PatientID:   patient.ID,
	}
	if actor.Role == entity.RoleReceptionist {
		recID, ok := actor.ReceptionistID()
		if !ok {
			return nil, denied(authz.Deny("receptionist profile missing"))
		}
		medicalCase.CreatedByID = &recID
	}

	// One retry on a generated-number collision
	for attempt := 0; ; attempt++ {
		medicalCase.CaseNumber = recordnum.Generate(recordnum.PrefixCase)

		tx := db.Begin()
		err = u.caseRepo.Create(tx, medicalCase)
		if err == nil && len(assigned) > 0 {
			err = u.caseRepo.ReplaceAssignedDoctors(tx, medicalCase, assigned)
		}
		if err == nil {
			err = tx.Commit().Error
		}
		if err == nil {
			break
		}
		tx.Rollback()
		if isDuplicateKeyError(err, "case_number") && attempt == 0 {
			continue
		}
		u.log.Warnf("Failed to create case: %+v", err)
		return nil, err
	}

	medicalCase.Patient = *patient
	medicalCase.AssignedDoctors = assigned
	return converter.CaseToResponse(medicalCase), nil
}

func (u *caseUsecase) UpdateCase(ctx context.Context, caseID uuid.UUID, req *dto.UpdateCaseRequest) (*dto.CaseResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	medicalCase, err := u.caseRepo.FindByID(db, caseID, authz.CaseScope(actor))
	if err != nil {
		return nil, err
	}
	if medicalCase == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionUpdate, authz.ResourceCase, medicalCase); !d.Allowed {
		return nil, denied(d)
	}

	var assigned []entity.Doctor
	replaceAssigned := false
	if req.AssignedDoctorIDs != nil {
		if d := authz.CanUpdateCaseAssignments(actor, medicalCase, *req.AssignedDoctorIDs); !d.Allowed {
			return nil, denied(d)
		}
		if !authz.SameIDSet(medicalCase.AssignedDoctorIDs(), *req.AssignedDoctorIDs) {
			assigned, err = u.resolveDoctors(db, *req.AssignedDoctorIDs)
			if err != nil {
				return nil, err
			}
			replaceAssigned = true
		}
	}

	if req.Name != nil {
		medicalCase.Name = *req.Name
	}
	if req.Description != nil {
		medicalCase.Description = *req.Description
	}
	if req.Symptoms != nil {
		medicalCase.Symptoms = *req.Symptoms
	}
	if req.Details != nil {
		medicalCase.Details = *req.Details
	}
	if req.PatientID != nil && *req.PatientID != medicalCase.PatientID {
		patient, err := u.patientRepo.FindByID(db, *req.PatientID, authz.Unscoped)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		medicalCase.PatientID = patient.ID
		medicalCase.Patient = *patient
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.caseRepo.Save(tx, medicalCase); err != nil {
		u.log.Warnf("Failed to update case %s: %+v", caseID, err)
		return nil, err
	}
	if replaceAssigned {
		if err := u.caseRepo.ReplaceAssignedDoctors(tx, medicalCase, assigned); err != nil {
			u.log.Warnf("Failed to replace assigned doctors on case %s: %+v", caseID, err)
			return nil, err
		}
		medicalCase.AssignedDoctors = assigned
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.CaseToResponse(medicalCase), nil
}

func (u *caseUsecase) DeleteCase(ctx context.Context, caseID uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return err
	}

	medicalCase, err := u.caseRepo.FindByID(db, caseID, authz.CaseScope(actor))
	if err != nil {
		return err
	}
	if medicalCase == nil {
		return ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionDelete, authz.ResourceCase, medicalCase); !d.Allowed {
		return denied(d)
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.caseRepo.Delete(tx, medicalCase); err != nil {
		u.log.Warnf("Failed to delete case %s: %+v", caseID, err)
		return err
	}
	return tx.Commit().Error
}

// AddAttachment stores a file in the object store under the case's
// namespace and records it. Anyone who may update the case may attach.
func (u *caseUsecase) AddAttachment(ctx context.Context, caseID uuid.UUID, label string, file io.Reader, size int64, contentType string) (*dto.AttachmentResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	medicalCase, err := u.caseRepo.FindByID(db, caseID, authz.CaseScope(actor))
	if err != nil {
		return nil, err
	}
	if medicalCase == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionUpdate, authz.ResourceCase, medicalCase); !d.Allowed {
		return nil, denied(d)
	}

	key, err := u.attachments.Upload(ctx, storage.NamespaceCases, medicalCase.CaseNumber, label, file, size, contentType)
	if err != nil {
		u.log.Warnf("Failed to upload attachment for case %s: %+v", caseID, err)
		return nil, err
	}

	attachment := &entity.CaseAttachment{
		CaseID:  medicalCase.ID,
		Label:   label,
		FileKey: key,
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.caseRepo.AddAttachment(tx, attachment); err != nil {
		u.log.Warnf("Failed to record attachment for case %s: %+v", caseID, err)
		if removeErr := u.attachments.Remove(ctx, key); removeErr != nil {
			u.log.Warnf("Failed to clean up stored attachment %s: %+v", key, removeErr)
		}
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &dto.AttachmentResponse{
		ID:         attachment.ID,
		Label:      attachment.Label,
		FileKey:    attachment.FileKey,
		UploadedAt: attachment.UploadedAt,
	}, nil
}

func (u *caseUsecase) resolveDoctors(db *gorm.DB, ids []uuid.UUID) ([]entity.Doctor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	doctors, err := u.doctorRepo.FindByIDs(db, ids)
	if err != nil {
		return nil, err
	}
	if len(doctors) != len(uniqueIDs(ids)) {
		return nil, ErrDoctorNotFound
	}
	return doctors, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
