package handler

import (
	"net/http"

	"github.com/echoscript/EchoScript_Go/internal/logger"
	"github.com/echoscript/EchoScript_Go/internal/user"
)

// LoginRequest represents the login request body. The email field carries
// whatever the user typed: it is treated as an email first and retried as a
// username, so either identifier works.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginUser is the user payload embedded in a successful login response
type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// HandleLogin authenticates a user and issues a bearer token
// @Summary Log in
// @Description Verifies credentials and returns a signed bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func HandleLogin(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		result, err := userService.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			// Always the same response body, whatever the internal cause
			respondServiceError(w, err)
			return
		}

		log.Info("Login succeeded", "username", result.User.Username)
		respondJSON(w, http.StatusOK, LoginResponse{
			Token: result.Token,
			User: LoginUser{
				ID:       result.User.ID,
				Username: result.User.Username,
				Email:    result.User.Email,
			},
		})
	}
}

// RegisterRequest represents the account registration request body
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// HandleRegister creates a new account
// @Summary Register
// @Description Creates an account with a unique username and email
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} LoginUser
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/auth/register [post]
func HandleRegister(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		account, err := userService.Create(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			log.Warn("Registration rejected", "username", req.Username)
			respondServiceError(w, err)
			return
		}

		log.Info("User registered", "user_id", account.ID, "username", account.Username)
		respondJSON(w, http.StatusCreated, LoginUser{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
		})
	}
}
