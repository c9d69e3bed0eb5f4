package handlers

import (
	"MovingAssistant/internal/apperrors"
	"MovingAssistant/internal/dto"
	"MovingAssistant/internal/mapper"
	"MovingAssistant/internal/services"
	"github.com/gofiber/fiber/v2"
	"net/http"
)

type MovingHandler struct {
	sessionService services.MovingSessionService
	boxService     services.MovingBoxService
	logService     services.LogService
}

func NewMovingHandler(
	sessionService services.MovingSessionService,
	boxService services.MovingBoxService,
	logService services.LogService,
) *MovingHandler {
	return &MovingHandler{
		sessionService: sessionService,
		boxService:     boxService,
		logService:     logService,
	}
}

func (h *MovingHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateMovingSessionDto
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.logService, apperrors.ValidationError("invalid input"))
	}
	if err := req.Validate(); err != nil {
		return writeError(c, h.logService, err)
	}

	response, err := h.sessionService.NewSession(req.Title, req.OwnerID)
	if err != nil {
		return writeError(c, h.logService, err)
	}
	return c.Status(http.StatusOK).JSON(response)
}

func (h *MovingHandler) GetSession(c *fiber.Ctx) error {
	sessionID, err := parseID(c, "sessionId")
	if err != nil {
		return writeError(c, h.logService, err)
	}

	session, err := h.sessionService.GetSession(sessionID)
	if err != nil {
		return writeError(c, h.logService, err)
	}
	return c.JSON(mapper.ToMovingSessionDto(session))
}

func (h *MovingHandler) NewBox(c *fiber.Ctx) error {
	sessionID, err := parseID(c, "sessionId")
	if err != nil {
		return writeError(c, h.logService, err)
	}
	var req dto.CreateMovingBoxDto
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.logService, apperrors.ValidationError("invalid input"))
	}
	if err := req.Validate(); err != nil {
		return writeError(c, h.logService, err)
	}

	box, err := h.boxService.NewBox(sessionID, req.Title)
	if err != nil {
		return writeError(c, h.logService, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToMovingBoxDto(box))
}

func (h *MovingHandler) EditItems(c *fiber.Ctx) error {
	sessionID, err := parseID(c, "sessionId")
	if err != nil {
		return writeError(c, h.logService, err)
	}
	boxID, err := parseID(c, "boxId")
	if err != nil {
		return writeError(c, h.logService, err)
	}
	var req dto.MovingBoxExtrasDto
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, h.logService, apperrors.ValidationError("invalid input"))
	}

	box, err := h.boxService.EditExtras(sessionID, boxID, mapper.ToMovingBoxExtras(req))
	if err != nil {
		return writeError(c, h.logService, err)
	}
	return c.JSON(mapper.ToMovingBoxDto(box))
}

func (h *MovingHandler) GetBoxes(c *fiber.Ctx) error {
	sessionID, err := parseID(c, "sessionId")
	if err != nil {
		return writeError(c, h.logService, err)
	}

	boxes, err := h.boxService.FindBoxesInSession(sessionID, c.Query("item"))
	if err != nil {
		return writeError(c, h.logService, err)
	}
	return c.JSON(mapper.ToMovingBoxDtos(boxes))
}
