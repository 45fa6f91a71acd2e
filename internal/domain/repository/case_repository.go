package repository

import (
	"medical-records-api/internal/authz"
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaseRepository interface {
	Create(db *gorm.DB, medicalCase *entity.Case) error
	Save(db *gorm.DB, medicalCase *entity.Case) error
	FindByID(db *gorm.DB, id uuid.UUID, scope authz.Scope) (*entity.Case, error)
	FindAll(db *gorm.DB, scope authz.Scope) ([]entity.Case, error)
	ReplaceAssignedDoctors(db *gorm.DB, medicalCase *entity.Case, doctors []entity.Doctor) error
	AddAttachment(db *gorm.DB, attachment *entity.CaseAttachment) error
	Delete(db *gorm.DB, medicalCase *entity.Case) error
}
