package shift

import "context"

// ShiftRepository defines the interface for shift definitions
type ShiftRepository interface {
	// ListDefinitions returns all configured shifts ordered by shift number
	ListDefinitions(ctx context.Context) ([]Definition, error)
}
