package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"artist-hub.backend/internal/domain/entities"
	domainerrors "artist-hub.backend/internal/domain/errors"
	"artist-hub.backend/internal/domain/repositories"
	"artist-hub.backend/pkg/crypto"
	"artist-hub.backend/pkg/jwt"
)

// TokenType is the token_type value returned on every successful login
const TokenType = "bearer"

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	otpStore       repositories.OTPStore
	otpMailer      repositories.OTPMailer
	googleVerifier repositories.GoogleTokenVerifier
	jwtService     *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	otpStore repositories.OTPStore,
	otpMailer repositories.OTPMailer,
	googleVerifier repositories.GoogleTokenVerifier,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		otpStore:       otpStore,
		otpMailer:      otpMailer,
		googleVerifier: googleVerifier,
		jwtService:     jwtService,
	}
}

// Login authenticates a local account and returns an access token.
// Unknown email, social-only account and wrong password all collapse into
// ErrInvalidCredentials so callers cannot probe which emails are registered.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.LoginResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Password.Valid {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(input.Password, user.Password.String) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	token, err := u.jwtService.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.LoginResponse{
		AccessToken: token,
		TokenType:   TokenType,
		Role:        string(user.Role),
		Nickname:    user.Nickname,
	}, nil
}

// Signup registers a new local account. No token is issued; the client logs
// in separately.
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) error {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &entities.User{
		ID:          uuid.New(),
		Email:       input.Email,
		Nickname:    input.Nickname,
		Password:    null.StringFrom(hash),
		Role:        entities.UserRoleUser,
		Provider:    entities.ProviderLocal,
		IsOnboarded: true,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return u.userRepo.Create(ctx, user)
}

// GoogleLogin exchanges a verified Google identity token for an access
// token, creating the account on first sight. IsNewUser stays true until the
// user completes nickname onboarding.
func (u *AuthUsecase) GoogleLogin(ctx context.Context, idToken string) (*entities.GoogleLoginResponse, error) {
	identity, err := u.googleVerifier.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrUpstream, err)
	}

	user, err := u.userRepo.GetByEmail(ctx, identity.Email)
	if errors.Is(err, domainerrors.ErrNotFound) {
		now := time.Now()
		user = &entities.User{
			ID:        uuid.New(),
			Email:     identity.Email,
			Nickname:  placeholderNickname(),
			Role:      entities.UserRoleUser,
			Provider:  entities.ProviderGoogle,
			SocialID:  null.StringFrom(identity.Subject),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	token, err := u.jwtService.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.GoogleLoginResponse{
		AccessToken: token,
		TokenType:   TokenType,
		Email:       user.Email,
		Nickname:    user.Nickname,
		IsNewUser:   !user.IsOnboarded,
	}, nil
}

// SendOTP generates a fresh passcode, overwrites any pending one and mails
// it. Mail and store failures both surface to the caller.
func (u *AuthUsecase) SendOTP(ctx context.Context, email string) error {
	code, err := crypto.GenerateOTP()
	if err != nil {
		return err
	}

	if err := u.otpStore.Save(ctx, email, code); err != nil {
		return err
	}

	if err := u.otpMailer.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrUpstream, err)
	}
	return nil
}

// VerifyOTP checks a passcode. Missing, expired and mismatched codes are
// indistinguishable to the caller. A matching code is consumed.
func (u *AuthUsecase) VerifyOTP(ctx context.Context, email, code string) error {
	stored, ok, err := u.otpStore.Get(ctx, email)
	if err != nil {
		return err
	}
	if !ok || stored != code {
		return domainerrors.ErrInvalidOTP
	}

	return u.otpStore.Delete(ctx, email)
}

// CheckNickname reports whether a nickname is still unused. The answer can
// go stale before a subsequent signup; uniqueness is not reserved.
func (u *AuthUsecase) CheckNickname(ctx context.Context, nickname string) (bool, error) {
	_, err := u.userRepo.GetByNickname(ctx, nickname)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// UpdateNickname replaces a user's nickname and marks onboarding complete
func (u *AuthUsecase) UpdateNickname(ctx context.Context, email, nickname string) error {
	return u.userRepo.UpdateNickname(ctx, email, nickname, true)
}

// placeholderNickname builds the auto-generated nickname for fresh social
// accounts, e.g. "user_3f9c1a2b"
func placeholderNickname() string {
	return "user_" + strings.SplitN(uuid.New().String(), "-", 2)[0]
}
