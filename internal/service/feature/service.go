package feature

import (
	"context"
	"fmt"

	"github.com/staffhub-io/ess-backend-go/internal/domain/feature"
	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/session"
)

type FeatureServiceImpl struct {
	featureRepo feature.FeatureRepository
}

func NewFeatureService(featureRepo feature.FeatureRepository) feature.FeatureService {
	return &FeatureServiceImpl{
		featureRepo: featureRepo,
	}
}

// ListFeatures implements feature.FeatureService.
func (s *FeatureServiceImpl) ListFeatures(ctx context.Context) (feature.FeaturesResponse, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return feature.FeaturesResponse{}, err
	}

	purchased, err := s.featureRepo.GetPurchased(ctx, sess.UserID)
	if err != nil {
		return feature.FeaturesResponse{}, fmt.Errorf("failed to get purchased features: %w", err)
	}

	return feature.FeaturesResponse{
		Available: feature.Catalog(),
		Features:  purchased,
	}, nil
}

// UpdateFeatures implements feature.FeatureService.
func (s *FeatureServiceImpl) UpdateFeatures(ctx context.Context, req feature.UpdateFeaturesRequest) (feature.FeaturesResponse, error) {
	if err := req.Validate(); err != nil {
		return feature.FeaturesResponse{}, err
	}

	sess, err := session.FromContext(ctx)
	if err != nil {
		return feature.FeaturesResponse{}, err
	}
	if sess.Role != user.RoleSuperAdmin {
		return feature.FeaturesResponse{}, user.ErrSuperAdminAccessRequired
	}

	if err := s.featureRepo.SetPurchased(ctx, sess.UserID, req.Features); err != nil {
		return feature.FeaturesResponse{}, fmt.Errorf("failed to update purchased features: %w", err)
	}

	purchased, err := s.featureRepo.GetPurchased(ctx, sess.UserID)
	if err != nil {
		return feature.FeaturesResponse{}, fmt.Errorf("failed to get purchased features: %w", err)
	}

	return feature.FeaturesResponse{
		Available: feature.Catalog(),
		Features:  purchased,
	}, nil
}

// HasFeature implements feature.FeatureService.
func (s *FeatureServiceImpl) HasFeature(ctx context.Context, userID string, name string) (bool, error) {
	if !feature.IsKnown(name) {
		return false, feature.ErrUnknownFeature
	}

	has, err := s.featureRepo.HasFeature(ctx, userID, name)
	if err != nil {
		return false, fmt.Errorf("failed to check feature: %w", err)
	}
	return has, nil
}
