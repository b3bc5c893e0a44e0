package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/auth"
	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	tokenRepo  auth.TokenRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, tokenRepo auth.TokenRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if u.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !u.IsActive() {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	if !user.IsValidRole(u.Role) {
		return auth.LoginResponse{}, auth.ErrRoleNotRecognized
	}

	accessToken, accessExpires, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.Department)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpires, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepo.Store(ctx, auth.RefreshToken{
		Token:     refreshToken,
		UserID:    u.ID,
		ExpiresAt: time.Unix(refreshExpires, 0),
	}); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpires,
		User: auth.SessionUser{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       string(u.Role),
			Department: u.Department,
		},
		RefreshToken:   refreshToken,
		RefreshExpires: refreshExpires,
	}, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if refreshToken == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	stored, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if stored.RevokedAt != nil {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.RefreshResponse{}, auth.ErrTokenExpired
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.IsActive() {
		return auth.RefreshResponse{}, auth.ErrAccountInactive
	}

	accessToken, accessExpires, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.Department)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpires,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	s.jwtService.RevokeToken(refreshToken)

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
