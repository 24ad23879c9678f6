package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ian-shakespeare/tapster/models"
	"github.com/ian-shakespeare/tapster/utils"
)

// Auth is the access credential handed out by register and sign-in.
type Auth struct {
	AccessKey  string    `json:"accessKey"`
	Expiration time.Time `json:"expiration"`
}

type UserService struct {
	db         *gorm.DB
	signingKey string
}

func NewUserService(db *gorm.DB, signingKey string) *UserService {
	return &UserService{db: db, signingKey: signingKey}
}

// Register creates an anonymous user and mints its first token.
func (s *UserService) Register(ctx context.Context) (*Auth, error) {
	user := models.User{}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, utils.FromDB(err)
	}
	return s.issue(user.ID)
}

// SignIn mints a fresh token for an existing user id.
func (s *UserService) SignIn(ctx context.Context, id uuid.UUID) (*Auth, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, utils.FromDB(err)
	}
	return s.issue(user.ID)
}

func (s *UserService) issue(userID uuid.UUID) (*Auth, error) {
	token, expiration, err := utils.IssueToken(s.signingKey, userID)
	if err != nil {
		return nil, err
	}
	return &Auth{AccessKey: token, Expiration: expiration}, nil
}
