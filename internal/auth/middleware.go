package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/echoscript/EchoScript_Go/internal/logger"
)

// RequireToken gates protected routes. Requests without a valid bearer token
// are rejected before any handler runs; the response never distinguishes a
// missing token from an expired or tampered one.
func RequireToken(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				log.Warn("Missing bearer token", "path", r.URL.Path)
				respondUnauthorized(w)
				return
			}

			if _, err := tokens.Verify(tokenString); err != nil {
				log.Warn("Token verification failed", "path", r.URL.Path)
				respondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
