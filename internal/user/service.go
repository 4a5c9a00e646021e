package user

import (
	"context"
	"errors"
	"time"

	"github.com/echoscript/EchoScript_Go/internal/auth"
	"github.com/echoscript/EchoScript_Go/internal/domain"
	"github.com/echoscript/EchoScript_Go/internal/logger"
	"github.com/echoscript/EchoScript_Go/internal/metrics"
	"github.com/echoscript/EchoScript_Go/internal/repository"
)

const (
	loginCacheSize = 1024
	loginCacheTTL  = 5 * time.Minute
)

// AuthResult carries everything a caller needs to display after login
// without a second lookup.
type AuthResult struct {
	Token string
	User  domain.User
}

// Update describes a partial account update. Nil fields are left unchanged.
type Update struct {
	Username *string
	Email    *string
	Password *string
}

// Service handles credential verification and account management
type Service interface {
	// Authenticate resolves loginID as an email first, then as a username,
	// verifies the secret against the stored hash, and issues a token bound
	// to the account's username. Every failure cause collapses into
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, loginID, secret string) (*AuthResult, error)

	Create(ctx context.Context, username, email, password string) (domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, userID string, update Update) (domain.User, error)
	Delete(ctx context.Context, userID string) error
}

type service struct {
	repo   repository.User
	hasher auth.PasswordHasher
	tokens *auth.TokenManager
	cache  *loginCache
}

// NewService creates a user service. The hashing capability is injected
// explicitly rather than reached through a package global.
func NewService(repo repository.User, hasher auth.PasswordHasher, tokens *auth.TokenManager) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		cache:  newLoginCache(loginCacheSize, loginCacheTTL),
	}
}

func (s *service) Authenticate(ctx context.Context, loginID, secret string) (*AuthResult, error) {
	log := logger.FromContext(ctx)

	account, cached := s.cache.Get(loginID)
	if !cached {
		var err error
		account, err = s.resolveAccount(ctx, loginID)
		if err != nil {
			// Internal cause stays in the log; the caller sees the same
			// failure an unknown account or wrong secret would produce.
			log.Warn("Login rejected", "reason", "account resolution failed")
			metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure).Inc()
			return nil, domain.ErrInvalidCredentials
		}
		s.cache.Set(loginID, account)
	}

	if !s.hasher.Verify(secret, account.PasswordHash) {
		log.Warn("Login rejected", "reason", "secret mismatch")
		metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Username)
	if err != nil {
		log.Error("Token issuance failed", "error", err)
		metrics.LoginsTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, domain.ErrInvalidCredentials
	}

	log.Info("User authenticated", "user_id", account.ID, "username", account.Username)
	metrics.LoginsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return &AuthResult{Token: token, User: *account}, nil
}

// resolveAccount treats loginID as an email first, then retries as a username.
func (s *service) resolveAccount(ctx context.Context, loginID string) (*domain.User, error) {
	account, err := s.repo.GetByEmail(ctx, loginID)
	if errors.Is(err, domain.ErrUserNotFound) {
		account, err = s.repo.GetByUsername(ctx, loginID)
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *service) Create(ctx context.Context, username, email, password string) (domain.User, error) {
	log := logger.FromContext(ctx)

	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, domain.ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}

	account := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	// The store's uniqueness constraints are the backstop for the check
	// above racing a concurrent create.
	if err := s.repo.Create(ctx, &account); err != nil {
		log.Error("Failed to create user", "error", err, "username", username)
		return domain.User{}, err
	}

	log.Info("User created", "user_id", account.ID, "username", account.Username)
	return account, nil
}

func (s *service) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListNewestFirst(ctx)
}

func (s *service) Update(ctx context.Context, userID string, update Update) (domain.User, error) {
	log := logger.FromContext(ctx)

	account, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	previous := *account

	if update.Username != nil && *update.Username != account.Username {
		taken, err := s.repo.ExistsByUsername(ctx, *update.Username)
		if err != nil {
			return domain.User{}, err
		}
		if taken {
			return domain.User{}, domain.ErrUsernameTaken
		}
		account.Username = *update.Username
	}

	if update.Email != nil && *update.Email != account.Email {
		taken, err := s.repo.ExistsByEmail(ctx, *update.Email)
		if err != nil {
			return domain.User{}, err
		}
		if taken {
			return domain.User{}, domain.ErrEmailTaken
		}
		account.Email = *update.Email
	}

	if update.Password != nil && *update.Password != "" {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return domain.User{}, err
		}
		account.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, *account); err != nil {
		log.Error("Failed to update user", "error", err, "user_id", userID)
		return domain.User{}, err
	}

	// Drop stale cache entries under the old identifiers
	s.cache.InvalidateUser(&previous)
	s.cache.InvalidateUser(account)

	log.Info("User updated", "user_id", account.ID)
	return *account, nil
}

func (s *service) Delete(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	account, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		log.Error("Failed to delete user", "error", err, "user_id", userID)
		return err
	}

	s.cache.InvalidateUser(account)
	log.Info("User deleted", "user_id", userID)
	return nil
}
