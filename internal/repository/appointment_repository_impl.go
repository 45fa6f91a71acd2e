package repository

import (
	"errors"

	"medical-records-api/internal/authz"
	"medical-records-api/internal/domain/entity"
	domainRepo "medical-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) Save(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID, scope authz.Scope) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Scopes(gormScope(scope)).
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Case").
		Preload("CreatedBy").
		Where("appointments.id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, scope authz.Scope) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Scopes(gormScope(scope)).
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Case").
		Preload("CreatedBy").
		Order("appointments.scheduled_at").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Delete(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Delete(appointment).Error
}
