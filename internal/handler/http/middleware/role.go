package middleware

import (
	"fmt"
	"net/http"

	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/response"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/session"
)

// RequireSuperAdmin restricts a route to the platform super admin
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := session.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrSuperAdminAccessRequired)
			return
		}

		if sess.Role != user.RoleSuperAdmin {
			response.HandleError(w, user.ErrSuperAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePermission checks if the caller's role has a specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := session.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			if !sess.HasPermission(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, sess.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
