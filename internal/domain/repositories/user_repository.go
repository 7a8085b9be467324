package repositories

import (
	"context"

	"artist-hub.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByNickname(ctx context.Context, nickname string) (*entities.User, error)
	UpdateNickname(ctx context.Context, email, nickname string, onboarded bool) error
}
