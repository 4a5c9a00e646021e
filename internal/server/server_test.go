package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/echoscript/EchoScript_Go/internal/auth"
	"github.com/echoscript/EchoScript_Go/internal/handler"
	"github.com/echoscript/EchoScript_Go/internal/transcript"
	"github.com/echoscript/EchoScript_Go/internal/user"
)

type staticPool struct{}

func (staticPool) Ping(ctx context.Context) error { return nil }
func (staticPool) Close()                         {}

func newTestServer() *Server {
	handler.InitValidator()
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Minute)
	userService := user.NewService(user.NewFakeRepository(), auth.NewBcryptHasher(bcrypt.MinCost), tokens)
	transcriptService := transcript.NewService(transcript.NewFakeVideoRepository(), transcript.NewFakeRequestRepository())
	return NewServer(0, staticPool{}, tokens, userService, transcriptService)
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	middleware := requestSizeLimitMiddleware(16)
	h := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Small body passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/test", strings.NewReader("ok"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Oversized body rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/test", strings.NewReader(strings.Repeat("x", 64)))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestResponseWriterCapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK) // second call must not override

	assert.Equal(t, http.StatusTeapot, rw.statusCode)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRouting(t *testing.T) {
	srv := newTestServer()
	router := srv.httpServer.Handler

	doJSON := func(method, path, token string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Health endpoints are public", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, doJSON("GET", "/healthz", "", nil).Code)
		assert.Equal(t, http.StatusOK, doJSON("GET", "/readyz", "", nil).Code)
	})

	t.Run("Transcript routes require a token", func(t *testing.T) {
		rec := doJSON("POST", "/api/v1/transcript/request", "", map[string]string{
			"userID":     "user-1",
			"youtubeUrl": "https://youtube.com/watch?v=abc",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Register then login then submit", func(t *testing.T) {
		rec := doJSON("POST", "/api/v1/auth/register", "", map[string]string{
			"username": "alice",
			"email":    "alice@x.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON("POST", "/api/v1/auth/login", "", map[string]string{
			"email":    "alice@x.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var login struct {
			Token string `json:"token"`
			User  struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
		require.NotEmpty(t, login.Token)

		rec = doJSON("POST", "/api/v1/transcript/request", login.Token, map[string]string{
			"userID":     login.User.ID,
			"youtubeUrl": "https://youtube.com/watch?v=abc",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})
}
