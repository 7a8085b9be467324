package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"artist-hub.backend/internal/domain/entities"
	domainerrors "artist-hub.backend/internal/domain/errors"
	"artist-hub.backend/internal/domain/repositories"
)

// ArtistUsecase handles the artist catalog
type ArtistUsecase struct {
	artistRepo repositories.ArtistRepository
	uploader   repositories.ImageUploader
}

// NewArtistUsecase creates a new artist usecase
func NewArtistUsecase(artistRepo repositories.ArtistRepository, uploader repositories.ImageUploader) *ArtistUsecase {
	return &ArtistUsecase{
		artistRepo: artistRepo,
		uploader:   uploader,
	}
}

// List returns the full artist catalog
func (u *ArtistUsecase) List(ctx context.Context) ([]*entities.Artist, error) {
	return u.artistRepo.List(ctx)
}

// UploadImage pushes image bytes to the hosting provider under the artist's
// deterministic public id and persists the returned URL. Re-uploading
// replaces the previous asset.
func (u *ArtistUsecase) UploadImage(ctx context.Context, id uuid.UUID, data []byte) (*entities.Artist, error) {
	artist, err := u.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	secureURL, err := u.uploader.Upload(ctx, "artists/"+id.String(), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrUpstream, err)
	}

	if err := u.artistRepo.UpdateImageURL(ctx, id, secureURL); err != nil {
		return nil, err
	}

	artist.ImageURL = null.StringFrom(secureURL)
	return artist, nil
}
