package dto

import (
	"MovingAssistant/internal/apperrors"
	"strings"
)

type CreateMovingBoxDto struct {
	Title string `json:"title"`
}

func (d CreateMovingBoxDto) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return apperrors.ValidationError("title is required")
	}
	return nil
}

// MovingBoxExtrasDto is both the editItems request body and the extras part of a box.
// Items is null when no list was recorded.
type MovingBoxExtrasDto struct {
	Items []string `json:"items"`
}

type MovingBoxDto struct {
	ID        uint               `json:"id"`
	SessionID uint               `json:"sessionId"`
	Title     string             `json:"title"`
	ImageURL  *string            `json:"imageURL"`
	QrURL     *string            `json:"qrURL"`
	Archived  bool               `json:"archived"`
	CreatedAt string             `json:"createdAt"`
	UpdatedAt string             `json:"updatedAt"`
	Extras    MovingBoxExtrasDto `json:"extras"`
}
