package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Bar struct {
	ID        uuid.UUID  `gorm:"column:bar_id;type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"column:name;not null" json:"name"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index" json:"owner"`
	MediaID   *uuid.UUID `gorm:"column:media_id;type:uuid" json:"-"`
	CreatedAt time.Time  `gorm:"column:created_at;not null" json:"created_at"`

	// Thumbnail only resolves when the media row shares the bar's owner.
	Thumbnail *Media `gorm:"foreignKey:MediaID;references:ID" json:"thumbnail"`
}

func (Bar) TableName() string {
	return "bars"
}

func (b *Bar) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
