package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/echoscript/EchoScript_Go/internal/logger"
	"github.com/echoscript/EchoScript_Go/internal/user"
)

// HandleListUsers returns all accounts, newest first
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} LoginUser
// @Router /api/v1/users [get]
func HandleListUsers(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		users, err := userService.List(r.Context())
		if err != nil {
			log.Error("Failed to list users", "error", err)
			respondServiceError(w, err)
			return
		}

		// Strip password hashes from the payload
		out := make([]LoginUser, 0, len(users))
		for _, u := range users {
			out = append(out, LoginUser{ID: u.ID, Username: u.Username, Email: u.Email})
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// HandleGetUser returns a single account by ID
// @Summary Get user
// @Tags users
// @Produce json
// @Success 200 {object} LoginUser
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{id} [get]
func HandleGetUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		account, err := userService.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			log.Warn("Failed to get user", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, LoginUser{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
		})
	}
}
