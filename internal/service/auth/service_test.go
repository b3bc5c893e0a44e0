package auth

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/auth"
	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type stubUserRepo struct {
	users map[string]user.User // keyed by email
}

func (s *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	s.users[u.Email] = u
	return u, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := s.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(ctx context.Context, u user.User) error {
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type stubTokenRepo struct {
	tokens map[string]auth.RefreshToken
}

func (s *stubTokenRepo) Store(ctx context.Context, token auth.RefreshToken) error {
	s.tokens[token.Token] = token
	return nil
}

func (s *stubTokenRepo) Get(ctx context.Context, token string) (auth.RefreshToken, error) {
	stored, ok := s.tokens[token]
	if !ok {
		return auth.RefreshToken{}, auth.ErrInvalidToken
	}
	return stored, nil
}

func (s *stubTokenRepo) Revoke(ctx context.Context, token string) error {
	stored, ok := s.tokens[token]
	if !ok {
		return nil
	}
	now := time.Now()
	stored.RevokedAt = &now
	s.tokens[token] = stored
	return nil
}

func testFixtures(t *testing.T) (auth.AuthService, *stubUserRepo, *stubTokenRepo) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashedStr := string(hashed)

	userRepo := &stubUserRepo{users: map[string]user.User{
		"alice@example.com": {
			ID:           "user-1",
			Name:         "Alice Tan",
			Email:        "alice@example.com",
			PasswordHash: &hashedStr,
			Role:         user.RoleAdmin,
			Department:   "Engineering",
			Status:       user.StatusActive,
		},
		"inactive@example.com": {
			ID:           "user-2",
			Email:        "inactive@example.com",
			PasswordHash: &hashedStr,
			Role:         user.RoleEmployee,
			Status:       user.StatusInactive,
		},
	}}
	tokenRepo := &stubTokenRepo{tokens: map[string]auth.RefreshToken{}}
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")

	return NewAuthService(userRepo, tokenRepo, jwtService), userRepo, tokenRepo
}

func TestLogin(t *testing.T) {
	svc, _, tokenRepo := testFixtures(t)

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "admin", result.User.Role)
	assert.Equal(t, "Engineering", result.User.Department)

	// Refresh token is persisted for later revocation
	assert.Len(t, tokenRepo.tokens, 1)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := testFixtures(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := testFixtures(t)

	// An unknown account reads the same as a wrong password
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, _, _ := testFixtures(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "inactive@example.com",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestRefresh(t *testing.T) {
	svc, _, _ := testFixtures(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefresh_UnknownToken(t *testing.T) {
	svc, _, _ := testFixtures(t)

	_, err := svc.Refresh(context.Background(), "never-issued")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_AfterLogout(t *testing.T) {
	svc, _, _ := testFixtures(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	svc, _, tokenRepo := testFixtures(t)

	tokenRepo.tokens["stale"] = auth.RefreshToken{
		Token:     "stale",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	_, err := svc.Refresh(context.Background(), "stale")
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}
