package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/echoscript/EchoScript_Go/internal/domain"
)

// VideoRepository implements the video repository for PostgreSQL
type VideoRepository struct {
	db *pgxpool.Pool
}

// NewVideoRepository creates a new VideoRepository
func NewVideoRepository(db *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByURL finds a video by exact URL match
func (r *VideoRepository) GetByURL(ctx context.Context, url string) (*domain.Video, error) {
	return r.getBy(ctx, "url", url)
}

// GetByID finds a video by ID
func (r *VideoRepository) GetByID(ctx context.Context, videoID string) (*domain.Video, error) {
	return r.getBy(ctx, "video_id", videoID)
}

func (r *VideoRepository) getBy(ctx context.Context, column, value string) (*domain.Video, error) {
	query := fmt.Sprintf(`
		SELECT video_id, url, status, COALESCE(transcript, ''), created_at, updated_at
		FROM videos
		WHERE %s = $1
	`, column)

	var video domain.Video
	err := r.db.QueryRow(ctx, query, value).
		Scan(&video.ID, &video.URL, &video.Status, &video.Transcript, &video.CreatedAt, &video.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, storeError("failed to get video", err)
	}
	return &video, nil
}

// CreateOrGet inserts the video unless its URL already exists, then loads the
// canonical row. ON CONFLICT DO NOTHING makes the insert a no-op for the
// losing side of a race; the follow-up select reads whichever row won.
func (r *VideoRepository) CreateOrGet(ctx context.Context, video *domain.Video) (bool, error) {
	insert := `
		INSERT INTO videos (url, status)
		VALUES ($1, $2)
		ON CONFLICT (url) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, insert, video.URL, video.Status)
	if err != nil {
		return false, storeError("failed to insert video", err)
	}
	created := tag.RowsAffected() > 0

	existing, err := r.GetByURL(ctx, video.URL)
	if err != nil {
		return false, err
	}
	*video = *existing
	return created, nil
}

// UpdateStatus records the outcome of external transcription work
func (r *VideoRepository) UpdateStatus(ctx context.Context, videoID string, status domain.VideoStatus, transcript string) error {
	query := `
		UPDATE videos
		SET status = $1, transcript = NULLIF($2, ''), updated_at = NOW()
		WHERE video_id = $3
	`
	tag, err := r.db.Exec(ctx, query, status, transcript, videoID)
	if err != nil {
		return storeError("failed to update video status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}
