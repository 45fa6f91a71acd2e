package repository

import (
	"medical-records-api/internal/authz"
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	Save(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id uuid.UUID, scope authz.Scope) (*entity.Prescription, error)
	FindAll(db *gorm.DB, scope authz.Scope) ([]entity.Prescription, error)
	AddAttachment(db *gorm.DB, attachment *entity.PrescriptionAttachment) error
	Delete(db *gorm.DB, prescription *entity.Prescription) error
}
