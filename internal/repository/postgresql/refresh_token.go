package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-io/ess-backend-go/internal/domain/auth"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/database"
)

type tokenRepositoryImpl struct {
	db *database.DB
}

func NewTokenRepository(db *database.DB) auth.TokenRepository {
	return &tokenRepositoryImpl{db: db}
}

// Store implements auth.TokenRepository.
func (r *tokenRepositoryImpl) Store(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, query, token.Token, token.UserID, token.ExpiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// Get implements auth.TokenRepository.
func (r *tokenRepositoryImpl) Get(ctx context.Context, token string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT token, user_id, expires_at, revoked_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var stored auth.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(
		&stored.Token,
		&stored.UserID,
		&stored.ExpiresAt,
		&stored.RevokedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.RefreshToken{}, auth.ErrInvalidToken
		}
		return auth.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return stored, nil
}

// Revoke implements auth.TokenRepository.
func (r *tokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL
	`

	if _, err := q.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
