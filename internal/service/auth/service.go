// internal/service/auth/service.go
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradeyardgit/TradeYard/internal/domain/user"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
	"github.com/tradeyardgit/TradeYard/internal/pkg/jwt"
	"github.com/tradeyardgit/TradeYard/internal/pkg/ratelimit"
	"github.com/tradeyardgit/TradeYard/internal/repository/postgres"
	"github.com/tradeyardgit/TradeYard/internal/service/email"
)

type AuthService struct {
	userRepo    *postgres.UserRepository
	jwtManager  *jwt.Manager
	rateLimiter *ratelimit.RateLimiter
	emailSender *email.Sender
	baseURL     string
	logger      *zap.Logger
}

func NewAuthService(
	userRepo *postgres.UserRepository,
	jwtManager *jwt.Manager,
	rateLimiter *ratelimit.RateLimiter,
	emailSender *email.Sender,
	baseURL string,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtManager:  jwtManager,
		rateLimiter: rateLimiter,
		emailSender: emailSender,
		baseURL:     baseURL,
		logger:      logger,
	}
}

// Register creates a new user account and signs them in.
func (s *AuthService) Register(ctx context.Context, req *user.RegisterRequest) (*user.LoginResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, xerrors.ErrDuplicateEntry
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        sql.NullString{String: req.Phone, Valid: req.Phone != ""},
		LocationID:   sql.NullString{String: req.Location, Valid: req.Location != ""},
		Role:         user.RoleUser,
		Status:       user.StatusActive,
		PasswordHash: string(hashed),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Welcome email must not block or fail registration.
	go func(name, to string) {
		tpl := email.WelcomeTemplate(name)
		if err := s.emailSender.Send(to, tpl.Subject, tpl.Body); err != nil {
			s.logger.Warn("failed to send welcome email", zap.String("email", to), zap.Error(err))
		}
	}(u.Name, u.Email)

	token, _, err := s.jwtManager.Generator.GenerateAccessToken(u.ID, string(u.Role), u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", u.ID))
	return &user.LoginResponse{Token: token, User: u}, nil
}

// Login verifies credentials and issues an access token. Attempts are rate
// limited per ip+email pair.
func (s *AuthService) Login(ctx context.Context, ip string, req *user.LoginRequest) (*user.LoginResponse, error) {
	allowed, remaining, err := s.rateLimiter.CheckLoginAttempt(ctx, ip, req.Email)
	if err != nil {
		s.logger.Warn("login rate limit check failed", zap.Error(err))
	} else if !allowed {
		return nil, xerrors.ErrRateLimited
	}

	u, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrUnauthorized
		}
		return nil, err
	}

	if u.Status == user.StatusSuspended {
		return nil, fmt.Errorf("%w: account suspended", xerrors.ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login failed",
			zap.String("email", req.Email),
			zap.Int64("attempts_remaining", remaining),
		)
		return nil, xerrors.ErrUnauthorized
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, ip, req.Email); err != nil {
		s.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	token, _, err := s.jwtManager.Generator.GenerateAccessToken(u.ID, string(u.Role), u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", zap.Int64("user_id", u.ID))
	return &user.LoginResponse{Token: token, User: u}, nil
}

// ForgotPassword emails a reset link. Unknown emails are answered the same
// as known ones so the endpoint doesn't leak which accounts exist.
func (s *AuthService) ForgotPassword(ctx context.Context, req *user.ForgotPasswordRequest) error {
	allowed, err := s.rateLimiter.CheckPasswordResetAttempt(ctx, req.Email)
	if err != nil {
		s.logger.Warn("reset rate limit check failed", zap.Error(err))
	} else if !allowed {
		return xerrors.ErrRateLimited
	}

	u, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil
		}
		return err
	}

	token, _, err := s.jwtManager.Generator.GeneratePasswordResetToken(u.ID, u.Email)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	tpl := email.PasswordResetTemplate(u.Name, resetURL)
	if err := s.emailSender.Send(u.Email, tpl.Subject, tpl.Body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.Info("password reset email sent", zap.Int64("user_id", u.ID))
	return nil
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *AuthService) ResetPassword(ctx context.Context, req *user.ResetPasswordRequest) error {
	claims, err := s.jwtManager.Verifier.VerifyPasswordResetToken(req.Token)
	if err != nil {
		return xerrors.ErrUnauthorized
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, claims.UserID, string(hashed)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password reset", zap.Int64("user_id", claims.UserID))
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*user.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *user.UpdateProfileRequest) (*user.User, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, req); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.userRepo.FindByID(ctx, userID)
}

// ========== Admin operations ==========

func (s *AuthService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.userRepo.List(ctx)
}

func (s *AuthService) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}

// SetUserStatus suspends or reactivates an account.
func (s *AuthService) SetUserStatus(ctx context.Context, userID int64, status user.Status) error {
	if err := s.userRepo.SetStatus(ctx, userID, status); err != nil {
		return fmt.Errorf("failed to set user status: %w", err)
	}
	s.logger.Info("user status changed",
		zap.Int64("user_id", userID),
		zap.String("status", string(status)),
	)
	return nil
}
