package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unit is global reference data, not owned by any user and read-only through
// the API. System groups units into "metric"/"imperial"; bar measures like
// "dash" or "part" belong to no system.
type Unit struct {
	ID           uuid.UUID `gorm:"column:unit_id;type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Abbreviation string    `gorm:"column:abbreviation;not null" json:"abbreviation"`
	System       *string   `gorm:"column:unit_system" json:"system,omitempty"`
}

func (Unit) TableName() string {
	return "units"
}

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
