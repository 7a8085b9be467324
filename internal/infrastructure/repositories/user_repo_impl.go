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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		Email:        user.Email,
		Nickname:     user.Nickname,
		Password:     user.Password.Ptr(),
		ProfileImage: user.ProfileImage.Ptr(),
		Role:         string(user.Role),
		Provider:     string(user.Provider),
		SocialID:     user.SocialID.Ptr(),
		IsOnboarded:  user.IsOnboarded,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByEmail gets a user by email (exact match)
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByNickname gets a user by nickname
func (r *UserRepository) GetByNickname(ctx context.Context, nickname string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// UpdateNickname replaces a user's nickname, keyed by email
func (r *UserRepository) UpdateNickname(ctx context.Context, email, nickname string, onboarded bool) error {
	updates := map[string]interface{}{
		"nickname":     nickname,
		"is_onboarded": onboarded,
		"updated_at":   time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Nickname:     m.Nickname,
		Password:     null.StringFromPtr(m.Password),
		ProfileImage: null.StringFromPtr(m.ProfileImage),
		Role:         entities.UserRole(m.Role),
		Provider:     entities.AuthProvider(m.Provider),
		SocialID:     null.StringFromPtr(m.SocialID),
		IsOnboarded:  m.IsOnboarded,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
