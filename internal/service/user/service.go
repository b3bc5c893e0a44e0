package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashedStr := string(hashed)

	joinDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.JoinDate != "" {
		joinDate, _ = time.Parse("2006-01-02", req.JoinDate)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashedStr,
		Role:         user.Role(req.Role),
		Department:   req.Department,
		Phone:        req.Phone,
		Status:       user.StatusActive,
		JoinDate:     joinDate,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return mapUserToResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return mapUserToResponse(u), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.ListUsersFilter) (user.ListUsersResponse, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, mapUserToResponse(u))
	}

	return user.ListUsersResponse{
		TotalCount: len(responses),
		Users:      responses,
	}, nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.Department != nil {
		u.Department = *req.Department
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.Status != nil {
		u.Status = user.UserStatus(*req.Status)
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	return mapUserToResponse(u), nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return err
	}
	if sess.UserID == id {
		return user.ErrCannotDeleteSelf
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// mapUserToResponse converts a User entity to UserResponse
func mapUserToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Department: u.Department,
		Phone:      u.Phone,
		Status:     string(u.Status),
		JoinDate:   u.JoinDate.Format("2006-01-02"),
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
