// Package session provides the single read boundary over the JWT claims that
// used to be consulted ad hoc by every screen. Services take a Session value
// instead of digging through token claims themselves.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
)

var ErrNoSession = errors.New("no authenticated session in context")

// Session is the authenticated caller's identity for the current request.
type Session struct {
	UserID     string
	Email      string
	Role       user.Role
	Department string
}

// FromContext extracts the session from the verified JWT in the request context.
func FromContext(ctx context.Context) (Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Session{}, ErrNoSession
	}

	sess := Session{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		sess.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		sess.Role = user.Role(role)
	}
	if dept, ok := claims["department"].(string); ok {
		sess.Department = dept
	}

	return sess, nil
}

// HasPermission reports whether the session's role grants the permission.
func (s Session) HasPermission(p user.Permission) bool {
	return user.HasPermission(s.Role, p)
}
