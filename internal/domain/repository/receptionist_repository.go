package repository

import (
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceptionistRepository interface {
	Create(db *gorm.DB, receptionist *entity.Receptionist) error
	Save(db *gorm.DB, receptionist *entity.Receptionist) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Receptionist, error)
	DeleteByUserID(db *gorm.DB, userID uuid.UUID) error
}
