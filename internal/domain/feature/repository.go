package feature

import "context"

// FeatureRepository defines the interface for purchased-feature persistence
type FeatureRepository interface {
	GetPurchased(ctx context.Context, userID string) ([]string, error)
	SetPurchased(ctx context.Context, userID string, features []string) error
	HasFeature(ctx context.Context, userID string, name string) (bool, error)
}
