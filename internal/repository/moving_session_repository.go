package repository

import (
	"MovingAssistant/internal/models"
	"gorm.io/gorm"
)

type MovingSessionRepository interface {
	GenericRepository[models.MovingSession]
	Exists(id uint) (bool, error)
}

type MovingSessionRepositoryImpl struct {
	GenericRepository[models.MovingSession]
	db *gorm.DB
}

func NewMovingSessionRepository(db *gorm.DB) MovingSessionRepository {
	return &MovingSessionRepositoryImpl{
		GenericRepository: NewGenericRepository[models.MovingSession](db),
		db:                db,
	}
}

func (r *MovingSessionRepositoryImpl) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.MovingSession{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
