package repository

import (
	"context"

	"github.com/echoscript/EchoScript_Go/internal/domain"
)

// User defines the interface for user account persistence.
// Lookup methods report absence as domain.ErrUserNotFound, distinguishable
// from a wrapped domain.ErrStoreUnavailable.
type User interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, userID string) error
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListNewestFirst(ctx context.Context) ([]domain.User, error)
}
