package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/echoscript/EchoScript_Go/internal/domain"
	"github.com/echoscript/EchoScript_Go/internal/user"
)

func TestHandleLogin(t *testing.T) {
	InitValidator()

	alice := domain.User{ID: "user-1", Username: "alice", Email: "alice@x.com"}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success - email login",
			requestBody: LoginRequest{Email: "alice@x.com", Password: "secret123"},
			setupMock: func(m *MockUserService) {
				m.On("Authenticate", mock.Anything, "alice@x.com", "secret123").
					Return(&user.AuthResult{Token: "signed-token", User: alice}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"signed-token"`,
		},
		{
			name:        "Success - username fallback handled by service",
			requestBody: LoginRequest{Email: "alice", Password: "secret123"},
			setupMock: func(m *MockUserService) {
				m.On("Authenticate", mock.Anything, "alice", "secret123").
					Return(&user.AuthResult{Token: "signed-token", User: alice}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"username":"alice"`,
		},
		{
			name:        "Invalid credentials - fixed message",
			requestBody: LoginRequest{Email: "alice", Password: "wrong"},
			setupMock: func(m *MockUserService) {
				m.On("Authenticate", mock.Anything, "alice", "wrong").
					Return(nil, domain.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMsgInvalidCredentials,
		},
		{
			name:           "Missing password",
			requestBody:    LoginRequest{Email: "alice"},
			setupMock:      func(m *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockUserService{}
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleLogin(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleLoginNeverLeaksInternalDetail(t *testing.T) {
	InitValidator()

	mockSvc := &MockUserService{}
	// A store failure reaches the handler as the same uniform error the
	// service returns for a wrong password
	mockSvc.On("Authenticate", mock.Anything, "alice", "secret123").
		Return(nil, domain.ErrInvalidCredentials)

	body, _ := json.Marshal(LoginRequest{Email: "alice", Password: "secret123"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	HandleLogin(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "store")
	assert.NotContains(t, w.Body.String(), "sql")
	assert.Contains(t, w.Body.String(), ErrMsgInvalidCredentials)
}

func TestHandleRegister(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "secret123"},
			setupMock: func(m *MockUserService) {
				m.On("Create", mock.Anything, "alice", "alice@x.com", "secret123").
					Return(domain.User{ID: "user-1", Username: "alice", Email: "alice@x.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"username":"alice"`,
		},
		{
			name:        "Duplicate email",
			requestBody: RegisterRequest{Username: "alice2", Email: "alice@x.com", Password: "secret123"},
			setupMock: func(m *MockUserService) {
				m.On("Create", mock.Anything, "alice2", "alice@x.com", "secret123").
					Return(domain.User{}, domain.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgEmailTaken,
		},
		{
			name:        "Duplicate username",
			requestBody: RegisterRequest{Username: "alice", Email: "new@x.com", Password: "secret123"},
			setupMock: func(m *MockUserService) {
				m.On("Create", mock.Anything, "alice", "new@x.com", "secret123").
					Return(domain.User{}, domain.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgUsernameTaken,
		},
		{
			name:           "Invalid email format",
			requestBody:    RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret123"},
			setupMock:      func(m *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid email format",
		},
		{
			name:           "Password exceeds the hashable length",
			requestBody:    RegisterRequest{Username: "alice", Email: "alice@x.com", Password: strings.Repeat("x", 73)},
			setupMock:      func(m *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must be at most 72 characters",
		},
		{
			name:           "Password too short",
			requestBody:    RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "short"},
			setupMock:      func(m *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockUserService{}
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleRegister(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}
