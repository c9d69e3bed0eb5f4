package mapper

import (
	"MovingAssistant/internal/dto"
	"MovingAssistant/internal/helpers"
	"MovingAssistant/internal/models"
)

func ToMovingSessionDto(session *models.MovingSession) *dto.MovingSessionDto {
	return &dto.MovingSessionDto{
		ID:        session.ID,
		OwnerID:   session.OwnerID,
		Title:     session.Title,
		CreatedAt: helpers.FormatDate(session.CreatedAt),
	}
}

func ToCreateMovingSessionResponse(session *models.MovingSession) *dto.CreateMovingSessionResponse {
	return &dto.CreateMovingSessionResponse{
		ID:        session.ID,
		Title:     session.Title,
		CreatedAt: helpers.FormatDate(session.CreatedAt),
	}
}

func ToMovingBoxDto(box *models.MovingBox) *dto.MovingBoxDto {
	return &dto.MovingBoxDto{
		ID:        box.ID,
		SessionID: box.SessionID,
		Title:     box.Title,
		ImageURL:  box.ImageURL,
		QrURL:     box.QrURL,
		Archived:  box.Archived,
		CreatedAt: helpers.FormatDate(box.CreatedAt),
		UpdatedAt: helpers.FormatDate(box.UpdatedAt),
		Extras:    dto.MovingBoxExtrasDto{Items: box.Extras.Items},
	}
}

// ToMovingBoxDtos never returns nil so an empty result encodes as [].
func ToMovingBoxDtos(boxes []models.MovingBox) []dto.MovingBoxDto {
	boxDtos := make([]dto.MovingBoxDto, 0, len(boxes))
	for i := range boxes {
		boxDtos = append(boxDtos, *ToMovingBoxDto(&boxes[i]))
	}
	return boxDtos
}

func ToMovingBoxExtras(extras dto.MovingBoxExtrasDto) models.MovingBoxExtras {
	return models.MovingBoxExtras{Items: extras.Items}
}
