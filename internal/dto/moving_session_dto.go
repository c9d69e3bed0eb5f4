package dto

import (
	"MovingAssistant/internal/apperrors"
	"strings"
)

type CreateMovingSessionDto struct {
	Title   string `json:"title"`
	OwnerID *uint  `json:"ownerId,omitempty"`
}

func (d CreateMovingSessionDto) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return apperrors.ValidationError("title is required")
	}
	return nil
}

type CreateMovingSessionResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}

type MovingSessionDto struct {
	ID        uint   `json:"id"`
	OwnerID   uint   `json:"ownerId"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}
