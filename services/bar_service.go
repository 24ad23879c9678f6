package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ian-shakespeare/tapster/models"
	"github.com/ian-shakespeare/tapster/utils"
)

type CreateBarInput struct {
	Name        string     `json:"name" binding:"required"`
	ThumbnailID *uuid.UUID `json:"thumbnailId"`
}

type BarService struct {
	db *gorm.DB
}

func NewBarService(db *gorm.DB) *BarService {
	return &BarService{db: db}
}

// Create stores the bar with a lowercased name and returns it with the
// owner-scoped thumbnail resolved. A thumbnail owned by someone else stays
// null in the response even though its id was stored.
func (s *BarService) Create(ctx context.Context, owner uuid.UUID, input CreateBarInput) (*models.Bar, error) {
	bar := models.Bar{
		Name:    strings.ToLower(input.Name),
		UserID:  owner,
		MediaID: input.ThumbnailID,
	}
	if err := s.db.WithContext(ctx).Create(&bar).Error; err != nil {
		return nil, utils.FromDB(err)
	}
	return s.Get(ctx, owner, bar.ID)
}

func (s *BarService) List(ctx context.Context, owner uuid.UUID) ([]models.Bar, error) {
	bars := []models.Bar{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Preload("Thumbnail", "user_id = ?", owner).
		Order("created_at").
		Find(&bars).Error
	if err != nil {
		return nil, utils.FromDB(err)
	}
	return bars, nil
}

func (s *BarService) Get(ctx context.Context, owner, id uuid.UUID) (*models.Bar, error) {
	var bar models.Bar
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND bar_id = ?", owner, id).
		Preload("Thumbnail", "user_id = ?", owner).
		First(&bar).Error
	if err != nil {
		return nil, utils.FromDB(err)
	}
	return &bar, nil
}
