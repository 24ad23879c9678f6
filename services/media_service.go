package services

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ian-shakespeare/tapster/models"
	"github.com/ian-shakespeare/tapster/utils"
)

// ObjectStore is the blob capability the media pipeline needs. Implemented by
// utils.MediaStorage; tests swap in an in-memory fake.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (int64, error)
	Get(ctx context.Context, key string) (io.ReadCloser, int64, error)
}

type MediaService struct {
	db      *gorm.DB
	objects ObjectStore
}

func NewMediaService(db *gorm.DB, objects ObjectStore) *MediaService {
	return &MediaService{db: db, objects: objects}
}

// Create runs the three-step upload: insert a pending row, write the blob
// under the row's id, finalize size and content type scoped to (owner, id).
// The steps are strictly ordered and there is no compensation on partial
// failure; the first error is the caller's answer. A failure after the row
// insert leaves a pending row, a failure after the blob write leaves an
// orphaned object. That is the documented failure contract.
func (s *MediaService) Create(ctx context.Context, owner uuid.UUID, body io.Reader, contentType string) (*models.Media, error) {
	media := models.Media{UserID: owner}
	if err := s.db.WithContext(ctx).Create(&media).Error; err != nil {
		return nil, utils.FromDB(err)
	}

	size, err := s.objects.Put(ctx, media.ID.String(), contentType, body)
	if err != nil {
		return nil, utils.Internal(err.Error())
	}

	result := s.db.WithContext(ctx).
		Model(&models.Media{}).
		Where("user_id = ? AND media_id = ?", owner, media.ID).
		Updates(map[string]any{"size": size, "mime_type": contentType})
	if result.Error != nil {
		return nil, utils.FromDB(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, utils.NotFound("no rows")
	}

	media.Size = &size
	media.ContentType = &contentType
	return &media, nil
}

// Get resolves the owner-scoped metadata row and opens a stream over the
// blob. A row whose object never landed (pending upload, orphaned metadata)
// maps to a 404 rather than a crash.
func (s *MediaService) Get(ctx context.Context, owner, id uuid.UUID) (*models.Media, io.ReadCloser, error) {
	var media models.Media
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND media_id = ?", owner, id).
		First(&media).Error
	if err != nil {
		return nil, nil, utils.FromDB(err)
	}

	body, _, err := s.objects.Get(ctx, media.ID.String())
	if err != nil {
		if errors.Is(err, utils.ErrObjectNotFound) {
			return nil, nil, utils.NotFound("media not ready")
		}
		return nil, nil, utils.Internal(err.Error())
	}

	return &media, body, nil
}
