package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/echoscript/EchoScript_Go/internal/domain"
	"github.com/echoscript/EchoScript_Go/internal/transcript"
	"github.com/echoscript/EchoScript_Go/internal/user"
)

// MockUserService is a mock implementation of user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Authenticate(ctx context.Context, loginID, secret string) (*user.AuthResult, error) {
	args := m.Called(ctx, loginID, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.AuthResult), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, username, email, password string) (domain.User, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, userID string, update user.Update) (domain.User, error) {
	args := m.Called(ctx, userID, update)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockTranscriptService is a mock implementation of transcript.Service
type MockTranscriptService struct {
	mock.Mock
}

func (m *MockTranscriptService) Submit(ctx context.Context, userID, videoURL string) (*transcript.SubmitResult, error) {
	args := m.Called(ctx, userID, videoURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transcript.SubmitResult), args.Error(1)
}

func (m *MockTranscriptService) Status(ctx context.Context, videoID string) (*domain.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockTranscriptService) Complete(ctx context.Context, videoID, transcriptText string) error {
	args := m.Called(ctx, videoID, transcriptText)
	return args.Error(0)
}

func (m *MockTranscriptService) Fail(ctx context.Context, videoID string) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}
