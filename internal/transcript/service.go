package transcript

import (
	"context"
	"time"

	"github.com/echoscript/EchoScript_Go/internal/domain"
	"github.com/echoscript/EchoScript_Go/internal/logger"
	"github.com/echoscript/EchoScript_Go/internal/metrics"
	"github.com/echoscript/EchoScript_Go/internal/repository"
)

// SubmitResult reports that a request was accepted. Status is always
// pending: it reflects acceptance of the request, not the video's live
// processing state, which callers read via Status.
type SubmitResult struct {
	VideoID string
	Status  domain.VideoStatus
}

// Service handles transcript request intake and deduplication
type Service interface {
	// Submit resolves-or-creates the canonical video for videoURL, then
	// records the (user, video) request unless one already exists. The call
	// is idempotent for the same pair under any interleaving.
	Submit(ctx context.Context, userID, videoURL string) (*SubmitResult, error)

	// Status returns the video's true current state, transcript included
	// once the external worker has written one.
	Status(ctx context.Context, videoID string) (*domain.Video, error)

	// Complete and Fail record the outcome of external transcription work.
	Complete(ctx context.Context, videoID, transcript string) error
	Fail(ctx context.Context, videoID string) error
}

type service struct {
	videos   repository.Video
	requests repository.VideoRequest
	now      func() time.Time
}

// NewService creates a transcript intake service
func NewService(videos repository.Video, requests repository.VideoRequest) Service {
	return &service{
		videos:   videos,
		requests: requests,
		now:      time.Now,
	}
}

func (s *service) Submit(ctx context.Context, userID, videoURL string) (*SubmitResult, error) {
	log := logger.FromContext(ctx)

	video := &domain.Video{
		URL:    videoURL,
		Status: domain.VideoStatusPending,
	}
	videoCreated, err := s.videos.CreateOrGet(ctx, video)
	if err != nil {
		log.Error("Failed to resolve video", "error", err, "url", videoURL)
		return nil, err
	}
	if videoCreated {
		metrics.VideosCreatedTotal.Inc()
		log.Info("Video created", "video_id", video.ID, "url", videoURL)
	}

	requestCreated, err := s.requests.Create(ctx, &domain.VideoRequest{
		UserID:      userID,
		VideoID:     video.ID,
		RequestedAt: s.now(),
	})
	if err != nil {
		log.Error("Failed to record request", "error", err, "user_id", userID, "video_id", video.ID)
		return nil, err
	}

	if requestCreated {
		metrics.TranscriptRequestsTotal.WithLabelValues(metrics.OutcomeNew).Inc()
		log.Info("Request recorded", "user_id", userID, "video_id", video.ID)
	} else {
		metrics.TranscriptRequestsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		log.Debug("Duplicate request ignored", "user_id", userID, "video_id", video.ID)
	}

	return &SubmitResult{VideoID: video.ID, Status: domain.VideoStatusPending}, nil
}

func (s *service) Status(ctx context.Context, videoID string) (*domain.Video, error) {
	return s.videos.GetByID(ctx, videoID)
}

func (s *service) Complete(ctx context.Context, videoID, transcript string) error {
	log := logger.FromContext(ctx)
	if err := s.videos.UpdateStatus(ctx, videoID, domain.VideoStatusCompleted, transcript); err != nil {
		return err
	}
	log.Info("Video completed", "video_id", videoID)
	return nil
}

func (s *service) Fail(ctx context.Context, videoID string) error {
	log := logger.FromContext(ctx)
	if err := s.videos.UpdateStatus(ctx, videoID, domain.VideoStatusFailed, ""); err != nil {
		return err
	}
	log.Warn("Video failed", "video_id", videoID)
	return nil
}
