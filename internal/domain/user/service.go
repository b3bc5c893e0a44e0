package user

import "context"

// UserService defines the interface for the user management screen
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	ListUsers(ctx context.Context, filter ListUsersFilter) (ListUsersResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}
