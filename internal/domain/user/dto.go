package user

import (
	"github.com/staffhub-io/ess-backend-go/internal/pkg/validator"
)

// ========================================
// USER MANAGEMENT DTOs
// ========================================

type CreateUserRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Phone      *string `json:"phone,omitempty"`
	JoinDate   string  `json:"join_date"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsInSlice(r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: superadmin, admin, manager, officer, employee",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: superadmin, admin, manager, officer, employee",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListUsersFilter carries the management screen's search box and status dropdown
type ListUsersFilter struct {
	Search string // matches name, email or department
	Status string // "all", "active" or "inactive"
}

type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Phone      *string `json:"phone,omitempty"`
	Status     string  `json:"status"`
	JoinDate   string  `json:"join_date"`
	CreatedAt  string  `json:"created_at"`
}

type ListUsersResponse struct {
	TotalCount int            `json:"total_count"`
	Users      []UserResponse `json:"users"`
}
