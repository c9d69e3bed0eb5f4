package main

import (
	"MovingAssistant/database"
	"MovingAssistant/internal/server"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run returns only after the database is closed.
func run() error {
	srv, err := InitializeServer()
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	defer database.CloseDatabase(srv.DB, srv.LogService)

	err = srv.ReportService.StartReportCycle()
	if err != nil {
		return fmt.Errorf("failed to schedule inventory report: %w", err)
	}

	app := server.NewApp(srv)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		srv.LogService.Log.Info("Shutting down")
		srv.ReportService.StopReportCycle()
		if err := app.Shutdown(); err != nil {
			srv.LogService.Log.Errorf("Failed to shut down server: %v", err)
		}
	}()

	err = app.Listen(fmt.Sprintf(":%d", srv.Configuration.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
