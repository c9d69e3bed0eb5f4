package services

import (
	"MovingAssistant/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockMovingSessionRepository struct {
	mock.Mock
}

func (m *MockMovingSessionRepository) Create(session *models.MovingSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockMovingSessionRepository) FindByID(id uint) (*models.MovingSession, error) {
	args := m.Called(id)
	session, ok := args.Get(0).(*models.MovingSession)
	if !ok {
		return nil, args.Error(1)
	}
	return session, args.Error(1)
}

func (m *MockMovingSessionRepository) Update(session *models.MovingSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockMovingSessionRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovingSessionRepository) Exists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MockMovingBoxRepository struct {
	mock.Mock
}

func (m *MockMovingBoxRepository) Create(box *models.MovingBox) error {
	args := m.Called(box)
	return args.Error(0)
}

func (m *MockMovingBoxRepository) FindByID(id uint) (*models.MovingBox, error) {
	args := m.Called(id)
	box, ok := args.Get(0).(*models.MovingBox)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockMovingBoxRepository) Update(box *models.MovingBox) error {
	args := m.Called(box)
	return args.Error(0)
}

func (m *MockMovingBoxRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMovingBoxRepository) FindBySessionID(sessionID uint) ([]models.MovingBox, error) {
	args := m.Called(sessionID)
	boxes, _ := args.Get(0).([]models.MovingBox)
	return boxes, args.Error(1)
}

func (m *MockMovingBoxRepository) FindBySessionAndID(sessionID uint, boxID uint) (*models.MovingBox, error) {
	args := m.Called(sessionID, boxID)
	box, ok := args.Get(0).(*models.MovingBox)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockMovingBoxRepository) CountArchived() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
