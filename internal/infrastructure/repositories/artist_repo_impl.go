package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"artist-hub.backend/internal/domain/entities"
	domainerrors "artist-hub.backend/internal/domain/errors"
	"artist-hub.backend/internal/infrastructure/models"
)

// ArtistRepository implements artist data operations
type ArtistRepository struct {
	db *gorm.DB
}

// NewArtistRepository creates a new artist repository
func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// GetByID gets an artist by ID
func (r *ArtistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Artist, error) {
	var m models.Artist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toArtistEntity(&m), nil
}

// List lists all artists, newest first
func (r *ArtistRepository) List(ctx context.Context) ([]*entities.Artist, error) {
	var artistModels []models.Artist
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&artistModels).Error; err != nil {
		return nil, err
	}

	var artists []*entities.Artist
	for _, m := range artistModels {
		model := m
		artists = append(artists, toArtistEntity(&model))
	}
	return artists, nil
}

// UpdateImageURL persists the hosted image URL onto an artist record
func (r *ArtistRepository) UpdateImageURL(ctx context.Context, id uuid.UUID, imageURL string) error {
	updates := map[string]interface{}{
		"image_url":  imageURL,
		"updated_at": time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Artist{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toArtistEntity(m *models.Artist) *entities.Artist {
	return &entities.Artist{
		ID:        m.ID,
		Name:      m.Name,
		Genre:     m.Genre,
		Country:   m.Country,
		ImageURL:  null.StringFromPtr(m.ImageURL),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
