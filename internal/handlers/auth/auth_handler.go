// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradeyardgit/TradeYard/internal/domain/user"
	"github.com/tradeyardgit/TradeYard/internal/middleware"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
	service "github.com/tradeyardgit/TradeYard/internal/service/auth"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and returns a signed-in session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrDuplicateEntry) {
			response.Error(c, http.StatusConflict, "email already registered", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to register", err)
		return
	}

	response.Success(c, http.StatusCreated, "registered successfully", resp)
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), c.ClientIP(), &req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, "too many login attempts, try again later", nil)
		case errors.Is(err, xerrors.ErrUnauthorized):
			response.Unauthorized(c, "invalid email or password")
		case errors.Is(err, xerrors.ErrForbidden):
			response.Error(c, http.StatusForbidden, "account suspended", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to login", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "logged in successfully", resp)
}

// ForgotPassword emails a reset link if the account exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req user.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), &req); err != nil {
		if errors.Is(err, xerrors.ErrRateLimited) {
			response.Error(c, http.StatusTooManyRequests, "too many reset requests, try again later", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to process request", err)
		return
	}

	response.Success(c, http.StatusOK, "if that email is registered, a reset link has been sent", nil)
}

// ResetPassword sets a new password from a valid reset token.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req user.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), &req); err != nil {
		if errors.Is(err, xerrors.ErrUnauthorized) {
			response.Unauthorized(c, "invalid or expired reset token")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to reset password", err)
		return
	}

	response.Success(c, http.StatusOK, "password reset successfully", nil)
}

// GetProfile returns the authenticated user.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	u, err := h.authService.GetProfile(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to get profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", u)
}

// UpdateProfile changes the named profile fields.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	u, err := h.authService.UpdateProfile(c.Request.Context(), middleware.MustGetUserID(c), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to update profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated successfully", u)
}
