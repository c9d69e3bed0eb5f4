package routers

import (
	"MovingAssistant/cmd"
	"github.com/gofiber/fiber/v2"
)

const APIPrefix = "/api/v1/moving"

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	api := app.Group(APIPrefix)
	SetupMovingRouter(api, server)
	SetupReportRouter(api, server)
	SetupMetricsRouter(app)
}
