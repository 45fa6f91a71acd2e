package repository

import (
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	Save(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	DeleteByUserID(db *gorm.DB, userID uuid.UUID) error
}
