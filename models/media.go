package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media is the metadata row for an object stored under the media id in the
// object store. Size and ContentType stay null while the row is pending, i.e.
// between the row insert and the finalize step of the upload.
type Media struct {
	ID          uuid.UUID `gorm:"column:media_id;type:uuid;primaryKey" json:"id"`
	Size        *int64    `gorm:"column:size" json:"size"`
	ContentType *string   `gorm:"column:mime_type" json:"content_type"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"owner"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Media) TableName() string {
	return "media"
}

func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
