//go:build wireinject
// +build wireinject

package main

import (
	"MovingAssistant/cmd"
	"MovingAssistant/database"
	"MovingAssistant/internal/config"
	"MovingAssistant/internal/handlers"
	"MovingAssistant/internal/helpers"
	"MovingAssistant/internal/repository"
	"MovingAssistant/internal/services"
	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration(config.ConfigurationPath())
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewMovingSessionService,
		services.NewMovingBoxService,
		handlers.NewMovingHandler,
		repository.NewMovingSessionRepository,
		repository.NewMovingBoxRepository,
		database.SetupDatabase,
		services.NewLogService,
		services.NewReportService,
		handlers.NewReportHandler,
		helpers.NewRealClock,
		Provider,
	)
	return nil, nil
}
