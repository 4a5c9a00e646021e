package domain

import "time"

// VideoStatus represents the processing state of a video
type VideoStatus string

const (
	VideoStatusPending   VideoStatus = "pending"
	VideoStatusCompleted VideoStatus = "completed"
	VideoStatusFailed    VideoStatus = "failed"
)

// Video is the canonical record for a distinct transcription target.
// The source URL is the identity key: there is exactly one Video per URL.
// Status and transcript are written by the external transcription worker.
type Video struct {
	ID         string      `json:"id"`
	URL        string      `json:"url"`
	Status     VideoStatus `json:"status"`
	Transcript string      `json:"transcript,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// VideoRequest records that a user asked for a video.
// At most one record exists per (user, video) pair.
type VideoRequest struct {
	UserID      string    `json:"user_id"`
	VideoID     string    `json:"video_id"`
	RequestedAt time.Time `json:"requested_at"`
}
