package repository

import (
	"errors"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/domain/entity"
	domainRepo "medical-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type caseRepository struct{}

func NewCaseRepository() domainRepo.CaseRepository {
	return &caseRepository{}
}

func (r *caseRepository) Create(db *gorm.DB, medicalCase *entity.Case) error {
	return db.Omit("AssignedDoctors").Create(medicalCase).Error
}

func (r *caseRepository) Save(db *gorm.DB, medicalCase *entity.Case) error {
	return db.Omit("AssignedDoctors").Save(medicalCase).Error
}

func (r *caseRepository) FindByID(db *gorm.DB, id uuid.UUID, scope authz.Scope) (*entity.Case, error) {
	var medicalCase entity.Case
	err := db.Scopes(gormScope(scope)).
		Preload("Patient.AttendingDoctor").
		Preload("CreatedBy").
		Preload("AssignedDoctors.User").
		Preload("Attachments").
		Preload("Prescriptions.Attachments").
		Where("cases.id = ?", id).First(&medicalCase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicalCase, nil
}

func (r *caseRepository) FindAll(db *gorm.DB, scope authz.Scope) ([]entity.Case, error) {
	var cases []entity.Case
	err := db.Scopes(gormScope(scope)).
		Preload("Patient.AttendingDoctor").
		Preload("CreatedBy").
		Preload("AssignedDoctors.User").
		Preload("Attachments").
		Preload("Prescriptions.Attachments").
		Order("cases.created_at DESC").Find(&cases).Error
	if err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepository) ReplaceAssignedDoctors(db *gorm.DB, medicalCase *entity.Case, doctors []entity.Doctor) error {
	if err := db.Model(medicalCase).Association("AssignedDoctors").Replace(doctors); err != nil {
		return err
	}
	medicalCase.AssignedDoctors = doctors
	return nil
}

func (r *caseRepository) AddAttachment(db *gorm.DB, attachment *entity.CaseAttachment) error {
	return db.Create(attachment).Error
}

func (r *caseRepository) Delete(db *gorm.DB, medicalCase *entity.Case) error {
	return db.Select("AssignedDoctors").Delete(medicalCase).Error
}
