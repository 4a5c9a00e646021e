package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/echoscript/EchoScript_Go/internal/domain"
)

// loginCache provides an in-memory LRU cache for login-id lookups with
// time-based expiration. Entries are keyed by whatever the caller logged in
// with (email or username), so updates must invalidate both keys.
type loginCache struct {
	lru *expirable.LRU[string, *domain.User]
}

// newLoginCache creates a login cache with the given size and TTL.
func newLoginCache(size int, ttl time.Duration) *loginCache {
	return &loginCache{
		lru: expirable.NewLRU[string, *domain.User](size, nil, ttl),
	}
}

func (c *loginCache) Get(loginID string) (*domain.User, bool) {
	return c.lru.Get(loginID)
}

func (c *loginCache) Set(loginID string, user *domain.User) {
	c.lru.Add(loginID, user)
}

// InvalidateUser drops every key the user could be cached under.
func (c *loginCache) InvalidateUser(user *domain.User) {
	c.lru.Remove(user.Username)
	c.lru.Remove(user.Email)
}

// Len reports the number of cached entries
func (c *loginCache) Len() int {
	return c.lru.Len()
}
