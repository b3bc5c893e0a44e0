package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/staffhub-io/ess-backend-go/internal/domain/auth"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/response"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login handles POST /auth/login
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.authService.Login(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshExpires))

	response.SuccessWithMessage(w, "Login successful", result)
}

// Refresh handles POST /auth/refresh
func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.authService.Refresh(ctx, cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout handles POST /auth/logout
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie("refresh_token"); err == nil {
		if err := h.authService.Logout(ctx, cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	// Expire the cookie regardless of whether one was sent
	expired := h.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)

	response.SuccessWithMessage(w, "Logged out", nil)
}
