package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ingredient struct {
	ID          uuid.UUID  `gorm:"column:ingredient_id;type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	Description string     `gorm:"column:description;not null" json:"description"`
	UserID      uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index" json:"owner"`
	MediaID     *uuid.UUID `gorm:"column:media_id;type:uuid" json:"-"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null" json:"created_at"`

	Thumbnail *Media `gorm:"foreignKey:MediaID;references:ID" json:"thumbnail"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// SubIngredient is one directed edge from a compound ingredient to one of its
// components, weighted by Parts. Only the component side goes over the wire;
// expansion is a single level deep, callers recurse with the component id if
// they want more.
type SubIngredient struct {
	ID           uuid.UUID `gorm:"column:ingredient_ingredient_id;type:uuid;primaryKey" json:"id"`
	CompoundID   uuid.UUID `gorm:"column:compound_ingredient_id;type:uuid;not null;index" json:"-"`
	IngredientID uuid.UUID `gorm:"column:ingredient_id;type:uuid;not null" json:"-"`
	Parts        int16     `gorm:"column:parts;not null" json:"parts"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"-"`

	Compound   *Ingredient `gorm:"foreignKey:CompoundID;references:ID" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;references:ID" json:"ingredient"`
}

func (SubIngredient) TableName() string {
	return "ingredient_ingredients"
}

func (s *SubIngredient) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
