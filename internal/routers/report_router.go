package routers

import (
	"MovingAssistant/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupReportRouter(router fiber.Router, server *cmd.Server) {
	router.Post("/report", server.ReportHandler.RunReport)
}
