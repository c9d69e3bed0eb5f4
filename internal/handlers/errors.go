package handlers

import (
	"MovingAssistant/internal/apperrors"
	"MovingAssistant/internal/metrics"
	"MovingAssistant/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"strconv"
)

// writeError maps err to its status code, counts it and writes {"error", "type"}.
func writeError(c *fiber.Ctx, logService services.LogService, err error) error {
	structuredErr := apperrors.AsStructuredError(err)
	metrics.HTTPErrorsTotal.WithLabelValues(string(structuredErr.Type)).Inc()

	fields := logrus.Fields{
		"error_type": structuredErr.Type,
		"path":       c.Path(),
		"method":     c.Method(),
		"status":     structuredErr.HTTPStatus(),
	}
	for key, value := range structuredErr.Context {
		fields[key] = value
	}
	entry := logService.Log.WithFields(fields)
	switch structuredErr.Type {
	case apperrors.TypeValidation, apperrors.TypeNotFound:
		entry.Info(structuredErr.Message)
	case apperrors.TypeConflict:
		entry.Warn(structuredErr.Message)
	default:
		if structuredErr.Cause != nil {
			entry = entry.WithError(structuredErr.Cause)
		}
		entry.Error(structuredErr.Message)
	}

	return c.Status(structuredErr.HTTPStatus()).JSON(structuredErr.ToResponse())
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, apperrors.ValidationError("invalid " + param).WithField(param, c.Params(param))
	}
	return uint(id), nil
}
