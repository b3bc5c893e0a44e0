package feature

import "errors"

// Feature domain errors
var (
	ErrUnknownFeature      = errors.New("unknown feature")
	ErrFeatureNotPurchased = errors.New("feature has not been purchased")
)
