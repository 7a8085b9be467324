package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artist-hub.backend/internal/domain/entities"
	"artist-hub.backend/internal/domain/repositories"
	"artist-hub.backend/pkg/jwt"
	"artist-hub.backend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("development")
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService("test-secret", time.Hour)
}

type userRepoStub struct {
	createFn         func(ctx context.Context, user *entities.User) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*entities.User, error)
	getByNicknameFn  func(ctx context.Context, nickname string) (*entities.User, error)
	updateNicknameFn func(ctx context.Context, email, nickname string, onboarded bool) error
}

func (s userRepoStub) Create(ctx context.Context, user *entities.User) error {
	return s.createFn(ctx, user)
}

func (s userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s userRepoStub) GetByNickname(ctx context.Context, nickname string) (*entities.User, error) {
	return s.getByNicknameFn(ctx, nickname)
}

func (s userRepoStub) UpdateNickname(ctx context.Context, email, nickname string, onboarded bool) error {
	return s.updateNicknameFn(ctx, email, nickname, onboarded)
}

type otpStoreStub struct {
	saveFn   func(ctx context.Context, email, code string) error
	getFn    func(ctx context.Context, email string) (string, bool, error)
	deleteFn func(ctx context.Context, email string) error
}

func (s otpStoreStub) Save(ctx context.Context, email, code string) error {
	return s.saveFn(ctx, email, code)
}

func (s otpStoreStub) Get(ctx context.Context, email string) (string, bool, error) {
	return s.getFn(ctx, email)
}

func (s otpStoreStub) Delete(ctx context.Context, email string) error {
	return s.deleteFn(ctx, email)
}

type otpMailerStub struct {
	sendFn func(ctx context.Context, email, code string) error
}

func (s otpMailerStub) SendOTP(ctx context.Context, email, code string) error {
	return s.sendFn(ctx, email, code)
}

type googleVerifierStub struct {
	verifyFn func(ctx context.Context, idToken string) (*repositories.GoogleIdentity, error)
}

func (s googleVerifierStub) Verify(ctx context.Context, idToken string) (*repositories.GoogleIdentity, error) {
	return s.verifyFn(ctx, idToken)
}

type artistRepoStub struct {
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.Artist, error)
	listFn           func(ctx context.Context) ([]*entities.Artist, error)
	updateImageURLFn func(ctx context.Context, id uuid.UUID, imageURL string) error
}

func (s artistRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Artist, error) {
	return s.getByIDFn(ctx, id)
}

func (s artistRepoStub) List(ctx context.Context) ([]*entities.Artist, error) {
	return s.listFn(ctx)
}

func (s artistRepoStub) UpdateImageURL(ctx context.Context, id uuid.UUID, imageURL string) error {
	return s.updateImageURLFn(ctx, id, imageURL)
}

type uploaderStub struct {
	uploadFn func(ctx context.Context, publicID string, data []byte) (string, error)
}

func (s uploaderStub) Upload(ctx context.Context, publicID string, data []byte) (string, error) {
	return s.uploadFn(ctx, publicID, data)
}
