package feature

import "context"

// FeatureService defines the interface for the super-admin purchase screen
// and the feature-gate middleware
type FeatureService interface {
	// ListFeatures returns the catalog and the caller's purchased set
	ListFeatures(ctx context.Context) (FeaturesResponse, error)

	// UpdateFeatures replaces the caller's purchased set
	UpdateFeatures(ctx context.Context, req UpdateFeaturesRequest) (FeaturesResponse, error)

	// HasFeature reports whether a user has purchased a feature
	HasFeature(ctx context.Context, userID string, name string) (bool, error)
}
