package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"artist-hub.backend/internal/domain/entities"
	domainerrors "artist-hub.backend/internal/domain/errors"
	"artist-hub.backend/internal/interfaces/http/middleware"
	"artist-hub.backend/internal/interfaces/http/response"
	"artist-hub.backend/internal/usecases"
	"artist-hub.backend/pkg/logger"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login handles local email/password login
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInvalidCredentials):
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "이메일 또는 비밀번호가 올바르지 않습니다", err))
		case errors.Is(err, domainerrors.ErrAccountDisabled):
			response.Error(c, domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeAccountDisabled, "비활성화된 계정입니다", err))
		default:
			logger.Error(c.Request.Context(), "login failed: "+err.Error())
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Signup handles local account registration. No token is issued.
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input entities.SignupInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.Signup(c.Request.Context(), &input); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("이미 가입된 이메일입니다"))
			return
		}
		logger.Error(c.Request.Context(), "signup failed: "+err.Error())
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "회원가입이 완료되었습니다",
	})
}

// GoogleLogin exchanges a Google identity token for an access token
// POST /auth/google
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var input entities.GoogleLoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.authUsecase.GoogleLogin(c.Request.Context(), input.IDToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUpstream) {
			response.Error(c, domainerrors.BadGateway("구글 인증에 실패했습니다", err))
			return
		}
		logger.Error(c.Request.Context(), "google login failed: "+err.Error())
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// SendOTP mails a fresh verification passcode
// POST /auth/send-otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var input entities.SendOTPInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.SendOTP(c.Request.Context(), input.Email); err != nil {
		if errors.Is(err, domainerrors.ErrUpstream) {
			response.Error(c, domainerrors.BadGateway("인증 메일 발송에 실패했습니다", err))
			return
		}
		logger.Error(c.Request.Context(), "send otp failed: "+err.Error())
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "인증 코드가 발송되었습니다",
	})
}

// VerifyOTP checks a verification passcode. A matching code is consumed.
// POST /auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input entities.VerifyOTPInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.VerifyOTP(c.Request.Context(), input.Email, input.Code); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidOTP) {
			response.Error(c, domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidOTP, "인증 코드가 올바르지 않거나 만료되었습니다", err))
			return
		}
		logger.Error(c.Request.Context(), "verify otp failed: "+err.Error())
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "이메일 인증이 완료되었습니다",
	})
}

// CheckNickname reports nickname availability
// GET /auth/check-nickname?nickname=
func (h *AuthHandler) CheckNickname(c *gin.Context) {
	nickname := c.Query("nickname")
	if nickname == "" {
		response.Error(c, domainerrors.BadRequest("nickname query parameter is required"))
		return
	}

	available, err := h.authUsecase.CheckNickname(c.Request.Context(), nickname)
	if err != nil {
		logger.Error(c.Request.Context(), "check nickname failed: "+err.Error())
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"nickname":  nickname,
		"available": available,
	})
}

// UpdateNickname replaces the authenticated user's nickname and completes
// onboarding
// POST /auth/update-nickname
func (h *AuthHandler) UpdateNickname(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("인증이 필요합니다"))
		return
	}

	var input entities.UpdateNicknameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.UpdateNickname(c.Request.Context(), email, input.Nickname); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("사용자를 찾을 수 없습니다"))
			return
		}
		logger.Error(c.Request.Context(), "update nickname failed: "+err.Error())
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "닉네임이 변경되었습니다",
		"nickname": input.Nickname,
	})
}
