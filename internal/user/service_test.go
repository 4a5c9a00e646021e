package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoscript/EchoScript_Go/internal/auth"
	"github.com/echoscript/EchoScript_Go/internal/domain"
)

func newTestService(t *testing.T) (Service, *FakeRepository, *auth.TokenManager) {
	t.Helper()
	repo := NewFakeRepository()
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	svc := NewService(repo, auth.NewBcryptHasher(4), tokens)
	return svc, repo, tokens
}

func createAlice(t *testing.T, svc Service) domain.User {
	t.Helper()
	account, err := svc.Create(context.Background(), "alice", "alice@x.com", "secret123")
	require.NoError(t, err)
	return account
}

func TestAuthenticateByEmail(t *testing.T) {
	svc, _, tokens := newTestService(t)
	account := createAlice(t, svc)

	result, err := svc.Authenticate(context.Background(), "alice@x.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, account.ID, result.User.ID)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "alice@x.com", result.User.Email)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject, "token subject must be the username")
}

func TestAuthenticateUsernameFallback(t *testing.T) {
	svc, _, _ := newTestService(t)
	createAlice(t, svc)

	result, err := svc.Authenticate(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	svc, repo, _ := newTestService(t)
	createAlice(t, svc)

	tests := []struct {
		name    string
		loginID string
		secret  string
		setup   func()
	}{
		{name: "Wrong secret", loginID: "alice", secret: "wrong"},
		{name: "Unknown login", loginID: "nobody", secret: "secret123"},
		{name: "Empty secret", loginID: "alice@x.com", secret: ""},
		{name: "Store error", loginID: "bob", secret: "secret123", setup: func() { repo.FailNext = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			_, err := svc.Authenticate(context.Background(), tt.loginID, tt.secret)
			// Every cause collapses into the same error: no enumeration
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestAuthenticateUsesCache(t *testing.T) {
	svc, repo, _ := newTestService(t)
	createAlice(t, svc)

	_, err := svc.Authenticate(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	// The repo is down, but the resolved account is cached
	repo.FailNext = true
	result, err := svc.Authenticate(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	createAlice(t, svc)

	_, err := svc.Create(context.Background(), "someone", "alice@x.com", "other456")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	// The existing account is untouched
	result, err := svc.Authenticate(context.Background(), "alice@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
}

func TestCreateDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService(t)
	createAlice(t, svc)

	_, err := svc.Create(context.Background(), "alice", "other@x.com", "other456")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCreateNeverStoresPlaintext(t *testing.T) {
	svc, repo, _ := newTestService(t)
	account := createAlice(t, svc)

	stored, err := repo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestUpdatePasswordInvalidatesCache(t *testing.T) {
	svc, _, _ := newTestService(t)
	account := createAlice(t, svc)

	// Prime the cache
	_, err := svc.Authenticate(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	newPassword := "changed789"
	_, err = svc.Update(context.Background(), account.ID, Update{Password: &newPassword})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "alice", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "old password must stop working")

	result, err := svc.Authenticate(context.Background(), "alice", "changed789")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
}

func TestUpdateConflictLeavesAccountUnchanged(t *testing.T) {
	svc, _, _ := newTestService(t)
	createAlice(t, svc)
	bob, err := svc.Create(context.Background(), "bob", "bob@x.com", "bobpass1")
	require.NoError(t, err)

	takenEmail := "alice@x.com"
	_, err = svc.Update(context.Background(), bob.ID, Update{Email: &takenEmail})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	current, err := svc.GetByID(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", current.Email)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	username := "ghost"
	_, err := svc.Update(context.Background(), "no-such-id", Update{Username: &username})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	svc, _, _ := newTestService(t)
	account := createAlice(t, svc)

	require.NoError(t, svc.Delete(context.Background(), account.ID))

	_, err := svc.GetByID(context.Background(), account.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Authenticate(context.Background(), "alice", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	assert.ErrorIs(t, svc.Delete(context.Background(), account.ID), domain.ErrUserNotFound)
}

func TestListNewestFirst(t *testing.T) {
	svc, _, _ := newTestService(t)
	createAlice(t, svc)
	_, err := svc.Create(context.Background(), "bob", "bob@x.com", "bobpass1")
	require.NoError(t, err)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username)
	assert.Equal(t, "alice", users[1].Username)
}
