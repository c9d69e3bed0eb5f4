package models

import (
	"time"
)

type MovingBox struct {
	BaseModel
	SessionID uint            `gorm:"index;not null" json:"sessionId"`
	Title     string          `gorm:"type:varchar(255);not null" json:"title"`
	ImageURL  *string         `gorm:"type:text" json:"imageURL"`
	QrURL     *string         `gorm:"type:text" json:"qrURL"`
	Archived  bool            `gorm:"not null;default:false" json:"archived"`
	UpdatedAt time.Time       `gorm:"type:date;not null;autoUpdateTime:false" json:"updatedAt"`
	Extras    MovingBoxExtras `gorm:"type:jsonb;serializer:json" json:"extras"`
}

// MovingBoxExtras is the ordered list of items recorded inside a box.
// Items keeps insertion order and duplicates; nil means no list was recorded.
type MovingBoxExtras struct {
	Items []string `json:"items"`
}

func (MovingBox) TableName() string {
	return "moving_box"
}
