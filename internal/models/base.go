package models

import (
	"time"
)

// BaseModel carries the store-assigned identity and the creation date.
// gorm's automatic timestamps are disabled: dates are set by the services.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"type:date;not null;autoCreateTime:false" json:"createdAt"`
}
