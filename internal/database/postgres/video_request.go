package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/echoscript/EchoScript_Go/internal/domain"
)

// VideoRequestRepository implements the per-user request repository for PostgreSQL
type VideoRequestRepository struct {
	db *pgxpool.Pool
}

// NewVideoRequestRepository creates a new VideoRequestRepository
func NewVideoRequestRepository(db *pgxpool.Pool) *VideoRequestRepository {
	return &VideoRequestRepository{db: db}
}

// Create records the request. The (user_id, video_id) primary key makes the
// insert idempotent: a concurrent duplicate is silently dropped and reported
// as created=false rather than an error. A user_id that fails the foreign key
// or cannot be parsed as a UUID surfaces as ErrInvalidInput via storeError.
func (r *VideoRequestRepository) Create(ctx context.Context, request *domain.VideoRequest) (bool, error) {
	query := `
		INSERT INTO video_requests (user_id, video_id, requested_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, video_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, request.UserID, request.VideoID, request.RequestedAt)
	if err != nil {
		return false, storeError("failed to insert request", err)
	}
	return tag.RowsAffected() > 0, nil
}
