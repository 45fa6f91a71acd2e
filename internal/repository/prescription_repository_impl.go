package repository

import (
	"errors"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/domain/entity"
	domainRepo "medical-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) Save(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Save(prescription).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id uuid.UUID, scope authz.Scope) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Scopes(gormScope(scope)).
		Preload("Case.Patient").
		Preload("Case.AssignedDoctors").
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Attachments").
		Where("prescriptions.id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindAll(db *gorm.DB, scope authz.Scope) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Scopes(gormScope(scope)).
		Preload("Case.Patient").
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Attachments").
		Order("prescriptions.created_at DESC").Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) AddAttachment(db *gorm.DB, attachment *entity.PrescriptionAttachment) error {
	return db.Create(attachment).Error
}

func (r *prescriptionRepository) Delete(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Delete(prescription).Error
}
