package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-io/ess-backend-go/internal/domain/feature"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/database"
)

type featureRepositoryImpl struct {
	db *database.DB
}

func NewFeatureRepository(db *database.DB) feature.FeatureRepository {
	return &featureRepositoryImpl{db: db}
}

// GetPurchased implements feature.FeatureRepository.
func (r *featureRepositoryImpl) GetPurchased(ctx context.Context, userID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT feature
		FROM user_features
		WHERE user_id = $1
		ORDER BY purchased_at ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchased features: %w", err)
	}
	defer rows.Close()

	features := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read features: %w", err)
	}

	return features, nil
}

// SetPurchased implements feature.FeatureRepository.
func (r *featureRepositoryImpl) SetPurchased(ctx context.Context, userID string, features []string) error {
	// The purchase screen sends the full resulting set, so the row set is
	// replaced wholesale inside one transaction.
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM user_features WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("failed to clear purchased features: %w", err)
		}

		for _, name := range features {
			_, err := tx.Exec(ctx, `
				INSERT INTO user_features (user_id, feature, purchased_at)
				VALUES ($1, $2, NOW())
			`, userID, name)
			if err != nil {
				return fmt.Errorf("failed to insert purchased feature: %w", err)
			}
		}

		return nil
	})
}

// HasFeature implements feature.FeatureRepository.
func (r *featureRepositoryImpl) HasFeature(ctx context.Context, userID string, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM user_features WHERE user_id = $1 AND feature = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check purchased feature: %w", err)
	}

	return exists, nil
}
