package cmd

import (
	"MovingAssistant/internal/config"
	"MovingAssistant/internal/handlers"
	"MovingAssistant/internal/services"
	"gorm.io/gorm"
)

type Server struct {
	Configuration        *config.Configuration
	DB                   *gorm.DB
	LogService           services.LogService
	MovingSessionService services.MovingSessionService
	MovingBoxService     services.MovingBoxService
	MovingHandler        *handlers.MovingHandler
	ReportService        *services.Reporter
	ReportHandler        *handlers.ReportHandler
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	logService services.LogService,
	movingSessionService services.MovingSessionService,
	movingBoxService services.MovingBoxService,
	movingHandler *handlers.MovingHandler,
	reportService *services.Reporter,
	reportHandler *handlers.ReportHandler,
) *Server {
	return &Server{
		Configuration:        configuration,
		DB:                   db,
		LogService:           logService,
		MovingSessionService: movingSessionService,
		MovingBoxService:     movingBoxService,
		MovingHandler:        movingHandler,
		ReportService:        reportService,
		ReportHandler:        reportHandler,
	}
}
