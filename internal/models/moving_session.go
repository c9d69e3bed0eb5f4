package models

type MovingSession struct {
	BaseModel
	OwnerID uint   `gorm:"index;not null" json:"ownerId"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`

	Boxes []MovingBox `gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (MovingSession) TableName() string {
	return "moving_session"
}
