package repositories

import (
	"context"

	"artist-hub.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// ArtistRepository defines artist data operations
type ArtistRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Artist, error)
	List(ctx context.Context) ([]*entities.Artist, error)
	UpdateImageURL(ctx context.Context, id uuid.UUID, imageURL string) error
}
