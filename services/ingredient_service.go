package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ian-shakespeare/tapster/models"
	"github.com/ian-shakespeare/tapster/utils"
)

type CreateIngredientInput struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	ThumbnailID *uuid.UUID `json:"thumbnailId"`
}

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) Create(ctx context.Context, owner uuid.UUID, input CreateIngredientInput) (*models.Ingredient, error) {
	ingredient := models.Ingredient{
		Name:        strings.ToLower(input.Name),
		Description: input.Description,
		UserID:      owner,
		MediaID:     input.ThumbnailID,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, utils.FromDB(err)
	}
	return s.Get(ctx, owner, ingredient.ID)
}

func (s *IngredientService) List(ctx context.Context, owner uuid.UUID) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Preload("Thumbnail", "user_id = ?", owner).
		Order("created_at").
		Find(&ingredients).Error
	if err != nil {
		return nil, utils.FromDB(err)
	}
	return ingredients, nil
}

func (s *IngredientService) Get(ctx context.Context, owner, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_id = ?", owner, id).
		Preload("Thumbnail", "user_id = ?", owner).
		First(&ingredient).Error
	if err != nil {
		return nil, utils.FromDB(err)
	}
	return &ingredient, nil
}

// ListSub expands one level of the composition graph: every link whose
// compound side is the given ingredient and whose component is owned by the
// same user. Links reaching an ingredient under another owner are excluded
// rather than erroring, and a component's thumbnail only resolves under the
// owner's scope. Rows come back in link creation order so results are stable.
func (s *IngredientService) ListSub(ctx context.Context, owner, compoundID uuid.UUID) ([]models.SubIngredient, error) {
	if _, err := s.Get(ctx, owner, compoundID); err != nil {
		return nil, err
	}

	links := []models.SubIngredient{}
	err := s.db.WithContext(ctx).
		Joins("JOIN ingredients ON ingredients.ingredient_id = ingredient_ingredients.ingredient_id AND ingredients.user_id = ?", owner).
		Where("ingredient_ingredients.compound_ingredient_id = ?", compoundID).
		Preload("Ingredient", "user_id = ?", owner).
		Preload("Ingredient.Thumbnail", "user_id = ?", owner).
		Order("ingredient_ingredients.created_at, ingredient_ingredients.ingredient_ingredient_id").
		Find(&links).Error
	if err != nil {
		return nil, utils.FromDB(err)
	}
	return links, nil
}
