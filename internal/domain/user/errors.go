package user

import "errors"

// User domain errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")

	// Access errors
	ErrSuperAdminAccessRequired = errors.New("super admin access required")
)
