package routers

import (
	"MovingAssistant/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupMovingRouter(router fiber.Router, server *cmd.Server) {
	movingHandler := server.MovingHandler
	router.Post("/session", movingHandler.CreateSession)
	router.Get("/session/:sessionId", movingHandler.GetSession)
	router.Post("/session/:sessionId/newBox", movingHandler.NewBox)
	router.Post("/session/:sessionId/box/:boxId/editItems", movingHandler.EditItems)
	router.Get("/session/:sessionId/boxes", movingHandler.GetBoxes)
}
