package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleUser   UserRole = "user"
	UserRoleArtist UserRole = "artist"
	UserRoleAdmin  UserRole = "admin"
)

// AuthProvider represents how an account was created
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
	ProviderKakao  AuthProvider = "kakao"
)

// User represents a user entity. Password is set only for local accounts;
// social accounts carry a SocialID instead.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	Nickname     string       `json:"nickname"`
	Password     null.String  `json:"-"`
	ProfileImage null.String  `json:"profileImage,omitempty"`
	Role         UserRole     `json:"role"`
	Provider     AuthProvider `json:"provider"`
	SocialID     null.String  `json:"-"`
	IsOnboarded  bool         `json:"isOnboarded"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// LoginInput represents input for local login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupInput represents input for local signup
type SignupInput struct {
	Nickname string `json:"nickname" binding:"required,min=2,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// GoogleLoginInput carries the identity token issued by Google
type GoogleLoginInput struct {
	IDToken string `json:"id_token" binding:"required"`
}

// SendOTPInput represents input for requesting an email passcode
type SendOTPInput struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPInput represents input for checking an email passcode
type VerifyOTPInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// UpdateNicknameInput represents input for replacing a user's nickname.
// The target account comes from the bearer token, not the body.
type UpdateNicknameInput struct {
	Nickname string `json:"nickname" binding:"required,min=2,max=30"`
}

// LoginResponse represents a successful local login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	Nickname    string `json:"nickname"`
}

// GoogleLoginResponse represents a successful social login. IsNewUser tells
// the frontend to run nickname onboarding.
type GoogleLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Email       string `json:"email"`
	Nickname    string `json:"nickname"`
	IsNewUser   bool   `json:"is_new_user"`
}
