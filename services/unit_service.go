package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/ian-shakespeare/tapster/models"
	"github.com/ian-shakespeare/tapster/utils"
)

type UnitService struct {
	db *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{db: db}
}

// List returns the global unit reference table. No auth, no owner scoping.
func (s *UnitService) List(ctx context.Context) ([]models.Unit, error) {
	units := []models.Unit{}
	err := s.db.WithContext(ctx).
		Order("name").
		Find(&units).Error
	if err != nil {
		return nil, utils.FromDB(err)
	}
	return units, nil
}
