package handler

import (
	"net/http"

	"github.com/echoscript/EchoScript_Go/internal/domain"
	"github.com/echoscript/EchoScript_Go/internal/logger"
	"github.com/echoscript/EchoScript_Go/internal/transcript"
)

// TranscriptRequest represents a transcript submission.
// Field names follow the established client wire format.
type TranscriptRequest struct {
	UserID     string `json:"userID" validate:"required"`
	YoutubeURL string `json:"youtubeUrl" validate:"required,url"`
}

// TranscriptResponse represents the intake result or an error
type TranscriptResponse struct {
	Message       string `json:"message"`
	Status        string `json:"status"`
	VideoID       string `json:"videoId,omitempty"`
	Transcription string `json:"transcription,omitempty"`
}

// HandleTranscriptRequest accepts a transcript request and deduplicates it
// @Summary Request a transcript
// @Description Records the request; the video is transcribed asynchronously
// @Tags transcript
// @Accept json
// @Produce json
// @Success 200 {object} TranscriptResponse
// @Failure 400 {object} TranscriptResponse
// @Router /api/v1/transcript/request [post]
func HandleTranscriptRequest(svc transcript.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TranscriptRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transcript request"); err != nil {
			return
		}

		result, err := svc.Submit(r.Context(), req.UserID, req.YoutubeURL)
		if err != nil {
			log.Error("Failed to process transcript request", "error", err, "user_id", req.UserID)
			status, message := mapServiceError(err)
			respondJSON(w, status, TranscriptResponse{
				Message: message,
				Status:  StatusError,
			})
			return
		}

		respondJSON(w, http.StatusOK, TranscriptResponse{
			Message: MsgRequestSubmitted,
			Status:  string(result.Status),
			VideoID: result.VideoID,
		})
	}
}

// HandleTranscriptStatus reports a video's live processing state
// @Summary Get transcript status
// @Description Returns the video's current status and transcript when done
// @Tags transcript
// @Produce json
// @Success 200 {object} TranscriptResponse
// @Failure 404 {object} TranscriptResponse
// @Router /api/v1/transcript/status [get]
func HandleTranscriptStatus(svc transcript.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		videoID, ok := GetQueryParam(r, w, "videoId")
		if !ok {
			return
		}

		video, err := svc.Status(r.Context(), videoID)
		if err != nil {
			log.Warn("Failed to get video status", "error", err, "video_id", videoID)
			status, message := mapServiceError(err)
			respondJSON(w, status, TranscriptResponse{
				Message: message,
				Status:  StatusError,
			})
			return
		}

		respondJSON(w, http.StatusOK, TranscriptResponse{
			Message:       "Status retrieved",
			Status:        string(video.Status),
			VideoID:       video.ID,
			Transcription: video.Transcript,
		})
	}
}

// TranscriptCompleteRequest is the worker callback body
type TranscriptCompleteRequest struct {
	VideoID       string `json:"videoId" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=completed failed"`
	Transcription string `json:"transcription"`
}

// HandleTranscriptComplete records the outcome of transcription work
// @Summary Record transcription outcome
// @Description Called by the transcription worker once a video is processed
// @Tags transcript
// @Accept json
// @Produce json
// @Success 200 {object} TranscriptResponse
// @Failure 404 {object} TranscriptResponse
// @Router /api/v1/transcript/complete [post]
func HandleTranscriptComplete(svc transcript.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TranscriptCompleteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transcript complete"); err != nil {
			return
		}

		var err error
		if req.Status == string(domain.VideoStatusCompleted) {
			err = svc.Complete(r.Context(), req.VideoID, req.Transcription)
		} else {
			err = svc.Fail(r.Context(), req.VideoID)
		}
		if err != nil {
			log.Error("Failed to record transcription outcome", "error", err, "video_id", req.VideoID)
			status, message := mapServiceError(err)
			respondJSON(w, status, TranscriptResponse{
				Message: message,
				Status:  StatusError,
			})
			return
		}

		respondJSON(w, http.StatusOK, TranscriptResponse{
			Message: "Outcome recorded",
			Status:  req.Status,
			VideoID: req.VideoID,
		})
	}
}
