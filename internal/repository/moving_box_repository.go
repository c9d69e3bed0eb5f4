package repository

import (
	"MovingAssistant/internal/models"
	"errors"
	"gorm.io/gorm"
)

type MovingBoxRepository interface {
	GenericRepository[models.MovingBox]
	FindBySessionID(sessionID uint) ([]models.MovingBox, error)
	FindBySessionAndID(sessionID uint, boxID uint) (*models.MovingBox, error)
	CountArchived() (int64, error)
}

type MovingBoxRepositoryImpl struct {
	GenericRepository[models.MovingBox]
	db *gorm.DB
}

func NewMovingBoxRepository(db *gorm.DB) MovingBoxRepository {
	return &MovingBoxRepositoryImpl{
		GenericRepository: NewGenericRepository[models.MovingBox](db),
		db:                db,
	}
}

// FindBySessionID returns the session's boxes in creation order.
func (r *MovingBoxRepositoryImpl) FindBySessionID(sessionID uint) ([]models.MovingBox, error) {
	boxes := make([]models.MovingBox, 0)
	err := r.db.Where("session_id = ?", sessionID).Order("id ASC").Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

// FindBySessionAndID returns nil, nil when the pair does not match a row.
func (r *MovingBoxRepositoryImpl) FindBySessionAndID(sessionID uint, boxID uint) (*models.MovingBox, error) {
	var box models.MovingBox
	err := r.db.Where("id = ? AND session_id = ?", boxID, sessionID).First(&box).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

func (r *MovingBoxRepositoryImpl) CountArchived() (int64, error) {
	var count int64
	err := r.db.Model(&models.MovingBox{}).Where("archived = ?", true).Count(&count).Error
	return count, err
}
