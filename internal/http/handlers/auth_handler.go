// Account HTTP handlers.
//
//   - POST /register  (create account, returns profile + bearer token)
//   - POST /login     (verify credentials, returns profile + bearer token)
//   - POST /logout    (stateless acknowledgement; clients discard the token)
//   - GET  /user      (current profile, auth required)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/services"
)

// RegisterRequest is the JSON payload for account creation.
type RegisterRequest struct {
	Name     string `json:"name" example:"Meera"`
	Email    string `json:"email" example:"meera@example.com"`
	Password string `json:"password" example:"secret1"`
}

// LoginRequest is the JSON payload for signing in.
type LoginRequest struct {
	Email    string `json:"email" example:"meera@example.com"`
	Password string `json:"password" example:"secret1"`
}

// AuthResponse carries the public profile and a fresh bearer token.
type AuthResponse struct {
	Success bool              `json:"success"`
	User    domain.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

// UserResponse carries the current public profile.
type UserResponse struct {
	Success bool              `json:"success"`
	User    domain.PublicUser `json:"user"`
}

// Register godoc
// @ID          register
// @Summary     Create a customer account
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing fields or weak password"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already registered"
// @Router      /register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	user, token, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrWeakPassword):
		fail(c, http.StatusBadRequest, ErrCodeWeakPassword, err.Error())
		return
	case errors.Is(err, services.ErrDuplicateEmail):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusCreated, AuthResponse{Success: true, User: *user, Token: token})
}

// Login godoc
// @ID          login
// @Summary     Sign in with email and password
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.AuthResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid email or password"
// @Router      /login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	user, token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		fail(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, AuthResponse{Success: true, User: *user, Token: token})
}

// Logout godoc
// @ID          logout
// @Summary     Sign out
// @Description Sessions are stateless bearer tokens; logout acknowledges the client discarding its token.
// @Tags        Auth
// @Produce     json
//
// @Success     200  {object}  map[string]bool
// @Router      /logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"success": true})
}

// CurrentUser godoc
// @ID          currentUser
// @Summary     Get the current account profile
// @Tags        Auth
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
//
// @Success     200  {object}  handlers.UserResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Not logged in"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Router      /user [get]
func (h *Handlers) CurrentUser(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "not logged in")
		return
	}
	user, err := h.authSvc.CurrentUser(c.Request.Context(), uid)
	if errors.Is(err, services.ErrUserNotFound) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, UserResponse{Success: true, User: *user})
}
