package repository

import (
	"context"

	"github.com/echoscript/EchoScript_Go/internal/domain"
)

// Video defines the interface for video persistence.
//
// CreateOrGet is the atomic form of the lookup-then-create sequence: the URL
// uniqueness constraint in the store decides the winner under concurrent
// submissions, never an in-process check.
type Video interface {
	GetByURL(ctx context.Context, url string) (*domain.Video, error)
	GetByID(ctx context.Context, videoID string) (*domain.Video, error)

	// CreateOrGet inserts the video if its URL is unseen, otherwise loads the
	// existing record. On return video carries the canonical ID and status.
	// created reports whether a new row was written.
	CreateOrGet(ctx context.Context, video *domain.Video) (created bool, err error)

	UpdateStatus(ctx context.Context, videoID string, status domain.VideoStatus, transcript string) error
}

// VideoRequest defines the interface for per-user request records.
type VideoRequest interface {
	// Create records the request unless one already exists for the
	// (user, video) pair. created reports whether a row was written;
	// a duplicate is not an error.
	Create(ctx context.Context, request *domain.VideoRequest) (created bool, err error)
}
