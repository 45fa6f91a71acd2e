package repository

import (
	"errors"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/domain/entity"
	domainRepo "medical-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) Save(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID, scope authz.Scope) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Scopes(gormScope(scope)).
		Preload("AttendingDoctor.User").Preload("CreatedBy").
		Where("patients.id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB, scope authz.Scope) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Scopes(gormScope(scope)).
		Preload("AttendingDoctor.User").Preload("CreatedBy").
		Order("last_name, first_name").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Delete(db *gorm.DB, patient *entity.Patient) error {
	return db.Delete(patient).Error
}

// gormScope adapts an authz.Scope into the form db.Scopes expects
func gormScope(scope authz.Scope) func(*gorm.DB) *gorm.DB {
	if scope == nil {
		return authz.Unscoped
	}
	return scope
}
