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

type PrescriptionUsecase interface {
	ListPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
	GetPrescription(ctx context.Context, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error)
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	UpdatePrescription(ctx context.Context, prescriptionID uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	DeletePrescription(ctx context.Context, prescriptionID uuid.UUID) error
	AddAttachment(ctx context.Context, prescriptionID uuid.UUID, label string, file io.Reader, size int64, contentType string) (*dto.AttachmentResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	caseRepo         repository.CaseRepository
	doctorRepo       repository.DoctorRepository
	attachments      *storage.AttachmentStore
	actors           *actorResolver
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	caseRepo repository.CaseRepository,
	doctorRepo repository.DoctorRepository,
	receptionistRepo repository.ReceptionistRepository,
	attachments *storage.AttachmentStore,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		caseRepo:         caseRepo,
		doctorRepo:       doctorRepo,
		attachments:      attachments,
		actors:           newActorResolver(doctorRepo, receptionistRepo),
	}
}

func (u *prescriptionUsecase) ListPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}
	if d := authz.Authorize(actor, authz.ActionList, authz.ResourcePrescription, nil); !d.Allowed {
		return nil, denied(d)
	}

	prescriptions, err := u.prescriptionRepo.FindAll(db, authz.PrescriptionScope(actor))
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, prescriptionID uuid.UUID) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.FindByID(db, prescriptionID, authz.PrescriptionScope(actor))
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionRead, authz.ResourcePrescription, prescription); !d.Allowed {
		return nil, denied(d)
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// CreatePrescription issues a prescription under a case. The prescription's
// patient must be the case's patient. A prescribing doctor must be a
// participant on the case and is always recorded as the author; an admin
// must name the authoring doctor explicitly.
func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}
	if d := authz.Authorize(actor, authz.ActionCreate, authz.ResourcePrescription, nil); !d.Allowed {
		return nil, denied(d)
	}

	medicalCase, err := u.caseRepo.FindByID(db, req.CaseID, authz.Unscoped)
	if err != nil {
		return nil, err
	}
	if medicalCase == nil {
		return nil, ErrCaseNotFound
	}
	if medicalCase.PatientID != req.PatientID {
		return nil, ErrPatientCaseMismatch
	}

	var doctor *entity.Doctor
	switch actor.Role {
	case entity.RoleDoctor:
		if !authz.HasCaseAccess(actor, medicalCase) {
			return nil, ErrCaseAccessRequired
		}
		doctor = actor.Doctor
	default: // admin
		if req.DoctorID == nil {
			return nil, ErrDoctorRequired
		}
		doctor, err = u.doctorRepo.FindByID(db, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
	}

	prescription := &entity.Prescription{
		CaseID:    medicalCase.ID,
		PatientID: medicalCase.PatientID,
		DoctorID:  doctor.ID,
		Details:   req.Details,
	}

	// One retry on a generated-number collision
	for attempt := 0; ; attempt++ {
		prescription.PrescriptionNumber = recordnum.Generate(recordnum.PrefixPrescription)

		tx := db.Begin()
		err = u.prescriptionRepo.Create(tx, prescription)
		if err == nil {
			err = tx.Commit().Error
		}
		if err == nil {
			break
		}
		tx.Rollback()
		if isDuplicateKeyError(err, "prescription_number") && attempt == 0 {
			continue
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	prescription.Doctor = *doctor
	return converter.PrescriptionToResponse(prescription), nil
}

// requirePrescriberAccess re-checks case participation for a doctor
// mutating an existing prescription. Authorship alone is not enough: a
// doctor who was unassigned from the case and does not attend the
// patient loses edit rights on their own prescriptions.
func requirePrescriberAccess(actor authz.Actor, prescription *entity.Prescription) error {
	if actor.Role != entity.RoleDoctor {
		return nil
	}
	if !authz.HasCaseAccess(actor, &prescription.Case) {
		return ErrCaseAccessRequired
	}
	return nil
}

func (u *prescriptionUsecase) UpdatePrescription(ctx context.Context, prescriptionID uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.FindByID(db, prescriptionID, authz.PrescriptionScope(actor))
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionUpdate, authz.ResourcePrescription, prescription); !d.Allowed {
		return nil, denied(d)
	}
	if err := requirePrescriberAccess(actor, prescription); err != nil {
		return nil, err
	}

	// Relation fields count as changed only when the supplied value
	// differs from the stored one, so echoing them back is harmless.
	changed := authz.NewFieldSet()
	if req.CaseID != nil && *req.CaseID != prescription.CaseID {
		changed.Add("case")
	}
	if req.PatientID != nil && *req.PatientID != prescription.PatientID {
		changed.Add("patient")
	}
	if req.DoctorID != nil && *req.DoctorID != prescription.DoctorID {
		changed.Add("doctor")
	}
	if d := authz.CanUpdatePrescriptionFields(actor, changed); !d.Allowed {
		return nil, denied(d)
	}

	medicalCase := &prescription.Case
	if changed.Has("case") {
		medicalCase, err = u.caseRepo.FindByID(db, *req.CaseID, authz.Unscoped)
		if err != nil {
			return nil, err
		}
		if medicalCase == nil {
			return nil, ErrCaseNotFound
		}
		prescription.CaseID = medicalCase.ID
		prescription.Case = *medicalCase
	}
	if changed.Has("patient") {
		prescription.PatientID = *req.PatientID
	}
	if prescription.PatientID != medicalCase.PatientID {
		return nil, ErrPatientCaseMismatch
	}
	if changed.Has("doctor") {
		doctor, err := u.doctorRepo.FindByID(db, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		prescription.DoctorID = doctor.ID
		prescription.Doctor = *doctor
	}
	if req.Details != nil {
		prescription.Details = *req.Details
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.prescriptionRepo.Save(tx, prescription); err != nil {
		u.log.Warnf("Failed to update prescription %s: %+v", prescriptionID, err)
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, prescriptionID uuid.UUID) error {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return err
	}

	prescription, err := u.prescriptionRepo.FindByID(db, prescriptionID, authz.PrescriptionScope(actor))
	if err != nil {
		return err
	}
	if prescription == nil {
		return ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionDelete, authz.ResourcePrescription, prescription); !d.Allowed {
		return denied(d)
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.prescriptionRepo.Delete(tx, prescription); err != nil {
		u.log.Warnf("Failed to delete prescription %s: %+v", prescriptionID, err)
		return err
	}
	return tx.Commit().Error
}

// AddAttachment stores a file under the prescription's namespace and
// records it. Anyone who may update the prescription may attach.
func (u *prescriptionUsecase) AddAttachment(ctx context.Context, prescriptionID uuid.UUID, label string, file io.Reader, size int64, contentType string) (*dto.AttachmentResponse, error) {
	db := u.db.WithContext(ctx)
	actor, err := u.actors.Resolve(ctx, db)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.FindByID(db, prescriptionID, authz.PrescriptionScope(actor))
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, ErrNotFound
	}
	if d := authz.Authorize(actor, authz.ActionUpdate, authz.ResourcePrescription, prescription); !d.Allowed {
		return nil, denied(d)
	}
	if err := requirePrescriberAccess(actor, prescription); err != nil {
		return nil, err
	}

	key, err := u.attachments.Upload(ctx, storage.NamespacePrescriptions, prescription.PrescriptionNumber, label, file, size, contentType)
	if err != nil {
		u.log.Warnf("Failed to upload attachment for prescription %s: %+v", prescriptionID, err)
		return nil, err
	}

	attachment := &entity.PrescriptionAttachment{
		PrescriptionID: prescription.ID,
		Label:          label,
		FileKey:        key,
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.prescriptionRepo.AddAttachment(tx, attachment); err != nil {
		u.log.Warnf("Failed to record attachment for prescription %s: %+v", prescriptionID, err)
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
