package middleware

import (
	"net/http"

	"github.com/staffhub-io/ess-backend-go/internal/domain/feature"
	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/response"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/session"
)

// FeatureMiddleware provides middleware functions for purchased-feature checks
type FeatureMiddleware struct {
	featureService feature.FeatureService
}

// NewFeatureMiddleware creates a new feature middleware
func NewFeatureMiddleware(featureService feature.FeatureService) *FeatureMiddleware {
	return &FeatureMiddleware{
		featureService: featureService,
	}
}

// RequireFeature gates a route on a purchased feature. Only the super admin
// purchases features; everyone else passes through, since their dashboards do
// not render purchasable tiles.
func (m *FeatureMiddleware) RequireFeature(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := session.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			if sess.Role != user.RoleSuperAdmin {
				next.ServeHTTP(w, r)
				return
			}

			has, err := m.featureService.HasFeature(r.Context(), sess.UserID, name)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if !has {
				response.HandleError(w, feature.ErrFeatureNotPurchased)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
