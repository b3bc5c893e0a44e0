package auth

import (
	"context"
	"time"
)

// RefreshToken is a persisted refresh token row
type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// TokenRepository defines the interface for refresh token persistence
type TokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	Get(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}
