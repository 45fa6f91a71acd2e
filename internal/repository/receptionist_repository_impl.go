package repository

import (
	"errors"

	"medical-records-api/internal/domain/entity"
	domainRepo "medical-records-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type receptionistRepository struct{}

func NewReceptionistRepository() domainRepo.ReceptionistRepository {
	return &receptionistRepository{}
}

func (r *receptionistRepository) Create(db *gorm.DB, receptionist *entity.Receptionist) error {
	return db.Create(receptionist).Error
}

func (r *receptionistRepository) Save(db *gorm.DB, receptionist *entity.Receptionist) error {
	return db.Save(receptionist).Error
}

func (r *receptionistRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Receptionist, error) {
	var receptionist entity.Receptionist
	err := db.Preload("User").Where("user_id = ?", userID).First(&receptionist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receptionist, nil
}

func (r *receptionistRepository) DeleteByUserID(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.Receptionist{}).Error
}
