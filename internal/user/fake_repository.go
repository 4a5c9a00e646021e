package user

import (
	"context"
	"strconv"
	"sync"

	"github.com/echoscript/EchoScript_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.User
// for testing. It enforces the same username/email uniqueness the real
// store's constraints do.
type FakeRepository struct {
	mu     sync.Mutex
	users  map[string]*domain.User // keyed by user ID
	nextID int

	// FailNext makes the next call return a store error
	FailNext bool
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{users: make(map[string]*domain.User)}
}

func (f *FakeRepository) failCheck() error {
	if f.FailNext {
		f.FailNext = false
		return domain.ErrStoreUnavailable
	}
	return nil
}

func (f *FakeRepository) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return err
	}
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	f.nextID++
	user.ID = "user-" + strconv.Itoa(f.nextID)
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, user domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return err
	}
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, u := range f.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	cp := user
	f.users[user.ID] = &cp
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return err
	}
	if _, ok := f.users[userID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *FakeRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return nil, err
	}
	if u, ok := f.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return f.getBy(func(u *domain.User) bool { return u.Username == username })
}

func (f *FakeRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.getBy(func(u *domain.User) bool { return u.Email == email })
}

func (f *FakeRepository) getBy(match func(*domain.User) bool) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return nil, err
	}
	for _, u := range f.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return false, err
	}
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return false, err
	}
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeRepository) ListNewestFirst(ctx context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return nil, err
	}
	// Insertion order stands in for created_at ordering; iterate IDs in
	// reverse numeric order.
	users := make([]domain.User, 0, len(f.users))
	for i := f.nextID; i >= 1; i-- {
		if u, ok := f.users["user-"+strconv.Itoa(i)]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}
