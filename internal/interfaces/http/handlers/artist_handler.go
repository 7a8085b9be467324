package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "artist-hub.backend/internal/domain/errors"
	"artist-hub.backend/internal/interfaces/http/response"
	"artist-hub.backend/internal/usecases"
	"artist-hub.backend/pkg/logger"
)

// maxImageSize caps artist image uploads at 10 MiB
const maxImageSize = 10 << 20

// ArtistHandler handles artist catalog endpoints
type ArtistHandler struct {
	artistUsecase *usecases.ArtistUsecase
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(artistUsecase *usecases.ArtistUsecase) *ArtistHandler {
	return &ArtistHandler{
		artistUsecase: artistUsecase,
	}
}

// List returns the full artist catalog
// GET /api/artists
func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.artistUsecase.List(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "list artists failed: "+err.Error())
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"artists": artists,
	})
}

// UploadImage replaces an artist's profile image
// POST /api/artists/:id/image
func (h *ArtistHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("유효하지 않은 아티스트 ID입니다"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("이미지 파일이 필요합니다"))
		return
	}
	if fileHeader.Size > maxImageSize {
		response.Error(c, domainerrors.BadRequest("이미지 크기는 10MB를 넘을 수 없습니다"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("이미지 파일을 읽을 수 없습니다"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("이미지 파일을 읽을 수 없습니다"))
		return
	}

	artist, err := h.artistUsecase.UploadImage(c.Request.Context(), id, data)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("아티스트를 찾을 수 없습니다"))
		case errors.Is(err, domainerrors.ErrUpstream):
			response.Error(c, domainerrors.BadGateway("이미지 업로드에 실패했습니다", err))
		default:
			logger.Error(c.Request.Context(), "upload image failed: "+err.Error())
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, artist)
}
