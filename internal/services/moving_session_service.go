package services

import (
	"MovingAssistant/internal/apperrors"
	"MovingAssistant/internal/config"
	"MovingAssistant/internal/dto"
	"MovingAssistant/internal/helpers"
	"MovingAssistant/internal/mapper"
	"MovingAssistant/internal/metrics"
	"MovingAssistant/internal/models"
	"MovingAssistant/internal/repository"
	"errors"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"strings"
)

type MovingSessionService interface {
	NewSession(title string, ownerID *uint) (*dto.CreateMovingSessionResponse, error)
	GetSession(id uint) (*models.MovingSession, error)
}

func NewMovingSessionService(
	sessionRepo repository.MovingSessionRepository,
	clock clockwork.Clock,
	logService LogService,
	configuration *config.Configuration,
) MovingSessionService {
	return &movingSessionServiceImpl{
		sessionRepo:    sessionRepo,
		clock:          clock,
		logService:     logService,
		defaultOwnerID: configuration.Owner.DefaultID,
	}
}

type movingSessionServiceImpl struct {
	sessionRepo    repository.MovingSessionRepository
	clock          clockwork.Clock
	logService     LogService
	defaultOwnerID uint
}

// NewSession falls back to the configured default owner when ownerID is nil.
func (s *movingSessionServiceImpl) NewSession(title string, ownerID *uint) (*dto.CreateMovingSessionResponse, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.ValidationError("title is required")
	}
	owner := s.defaultOwnerID
	if ownerID != nil {
		owner = *ownerID
	}
	session := &models.MovingSession{
		BaseModel: models.BaseModel{CreatedAt: helpers.Today(s.clock)},
		OwnerID:   owner,
		Title:     title,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, apperrors.PersistenceError("could not create session", err)
	}
	metrics.SessionsCreatedTotal.Inc()
	s.logService.Log.WithFields(logrus.Fields{
		"sessionId": session.ID,
		"ownerId":   session.OwnerID,
	}).Info("moving session created")
	return mapper.ToCreateMovingSessionResponse(session), nil
}

func (s *movingSessionServiceImpl) GetSession(id uint) (*models.MovingSession, error) {
	session, err := s.sessionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundError("session not found").WithField("sessionId", id)
		}
		return nil, apperrors.PersistenceError("could not load session", err)
	}
	return session, nil
}
