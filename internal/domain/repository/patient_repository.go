package repository

import (
	"medical-records-api/internal/authz"
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository lookups take a visibility scope so records outside
// the caller's visible set read as not found.
type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	Save(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID, scope authz.Scope) (*entity.Patient, error)
	FindAll(db *gorm.DB, scope authz.Scope) ([]entity.Patient, error)
	Delete(db *gorm.DB, patient *entity.Patient) error
}
