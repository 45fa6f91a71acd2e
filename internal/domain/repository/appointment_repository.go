package repository

import (
	"medical-records-api/internal/authz"
	"medical-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	Save(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID, scope authz.Scope) (*entity.Appointment, error)
	FindAll(db *gorm.DB, scope authz.Scope) ([]entity.Appointment, error)
	Delete(db *gorm.DB, appointment *entity.Appointment) error
}
