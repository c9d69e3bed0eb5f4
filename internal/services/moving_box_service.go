package services

import (
	"MovingAssistant/internal/apperrors"
	"MovingAssistant/internal/helpers"
	"MovingAssistant/internal/metrics"
	"MovingAssistant/internal/models"
	"MovingAssistant/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"strings"
)

type MovingBoxService interface {
	NewBox(sessionID uint, title string) (*models.MovingBox, error)
	EditExtras(sessionID uint, boxID uint, extras models.MovingBoxExtras) (*models.MovingBox, error)
	FindBoxesInSession(sessionID uint, itemFilter string) ([]models.MovingBox, error)
}

func NewMovingBoxService(
	boxRepo repository.MovingBoxRepository,
	sessionRepo repository.MovingSessionRepository,
	clock clockwork.Clock,
	logService LogService,
) MovingBoxService {
	return &movingBoxServiceImpl{
		boxRepo:     boxRepo,
		sessionRepo: sessionRepo,
		clock:       clock,
		logService:  logService,
	}
}

type movingBoxServiceImpl struct {
	boxRepo     repository.MovingBoxRepository
	sessionRepo repository.MovingSessionRepository
	clock       clockwork.Clock
	logService  LogService
}

func (s *movingBoxServiceImpl) NewBox(sessionID uint, title string) (*models.MovingBox, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.ValidationError("title is required")
	}
	exists, err := s.sessionRepo.Exists(sessionID)
	if err != nil {
		return nil, apperrors.PersistenceError("could not load session", err)
	}
	if !exists {
		return nil, apperrors.NotFoundError("session not found").WithField("sessionId", sessionID)
	}

	today := helpers.Today(s.clock)
	box := &models.MovingBox{
		BaseModel: models.BaseModel{CreatedAt: today},
		SessionID: sessionID,
		Title:     title,
		Archived:  false,
		UpdatedAt: today,
		Extras:    models.MovingBoxExtras{Items: []string{}},
	}
	if err := s.boxRepo.Create(box); err != nil {
		return nil, apperrors.PersistenceError("could not create box", err)
	}
	metrics.BoxesCreatedTotal.Inc()
	s.logService.Log.WithFields(logrus.Fields{
		"sessionId": sessionID,
		"boxId":     box.ID,
	}).Info("moving box created")
	return box, nil
}

// EditExtras replaces the box's item list wholesale.
func (s *movingBoxServiceImpl) EditExtras(sessionID uint, boxID uint, extras models.MovingBoxExtras) (*models.MovingBox, error) {
	box, err := s.boxRepo.FindBySessionAndID(sessionID, boxID)
	if err != nil {
		return nil, apperrors.PersistenceError("could not load box", err)
	}
	if box == nil {
		return nil, apperrors.NotFoundError("box not found").
			WithField("sessionId", sessionID).
			WithField("boxId", boxID)
	}

	box.Extras = extras
	box.UpdatedAt = helpers.Today(s.clock)
	if err := s.boxRepo.Update(box); err != nil {
		return nil, apperrors.PersistenceError("could not update box", err)
	}
	metrics.ExtrasEditsTotal.Inc()
	s.logService.Log.WithFields(logrus.Fields{
		"sessionId": sessionID,
		"boxId":     boxID,
		"items":     len(extras.Items),
	}).Debug("moving box extras replaced")
	return box, nil
}

// FindBoxesInSession keeps boxes whose title or one of whose items equals itemFilter.
// An empty filter keeps every box of the session.
func (s *movingBoxServiceImpl) FindBoxesInSession(sessionID uint, itemFilter string) ([]models.MovingBox, error) {
	boxes, err := s.boxRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, apperrors.PersistenceError("could not list boxes", err)
	}
	if itemFilter == "" {
		return boxes, nil
	}
	matched := make([]models.MovingBox, 0, len(boxes))
	for _, box := range boxes {
		if matchesItemFilter(box, itemFilter) {
			matched = append(matched, box)
		}
	}
	return matched, nil
}

func matchesItemFilter(box models.MovingBox, itemFilter string) bool {
	if box.Title == itemFilter {
		return true
	}
	for _, item := range box.Extras.Items {
		if item == itemFilter {
			return true
		}
	}
	return false
}
