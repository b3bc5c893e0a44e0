package feature

import (
	"github.com/staffhub-io/ess-backend-go/internal/pkg/validator"
)

// FeaturesResponse lists the catalog alongside what the caller has purchased.
type FeaturesResponse struct {
	Available []string `json:"available"`
	Features  []string `json:"features"` // purchased feature codes
}

// UpdateFeaturesRequest replaces the caller's purchased feature set. The
// purchase screen always sends the full resulting list, not a delta.
type UpdateFeaturesRequest struct {
	Features []string `json:"features"`
}

func (r *UpdateFeaturesRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, name := range r.Features {
		if !IsKnown(name) {
			errs = append(errs, validator.ValidationError{
				Field:   "features",
				Message: "unknown feature: " + name,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
