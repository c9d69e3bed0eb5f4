package handlers

import (
	"MovingAssistant/internal/dto"
	"MovingAssistant/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReportRunner interface {
	RunReport() (*dto.InventoryReportDto, error)
}

type ReportHandler struct {
	reporter   ReportRunner
	logService services.LogService
}

func NewReportHandler(reporter *services.Reporter, logService services.LogService) *ReportHandler {
	return &ReportHandler{reporter: reporter, logService: logService}
}

func (h *ReportHandler) RunReport(c *fiber.Ctx) error {
	report, err := h.reporter.RunReport()
	if err != nil {
		return writeError(c, h.logService, err)
	}
	return c.JSON(report)
}
