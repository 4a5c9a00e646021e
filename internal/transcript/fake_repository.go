package transcript

import (
	"context"
	"strconv"
	"sync"

	"github.com/echoscript/EchoScript_Go/internal/domain"
)

// FakeVideoRepository is a stateful in-memory implementation of
// repository.Video for testing. A single mutex spans lookup and insert so the
// fake gives the same atomicity the real store's unique constraint provides.
type FakeVideoRepository struct {
	mu     sync.Mutex
	byURL  map[string]*domain.Video
	byID   map[string]*domain.Video
	nextID int

	// FailNext makes the next call return a store error
	FailNext bool
}

func NewFakeVideoRepository() *FakeVideoRepository {
	return &FakeVideoRepository{
		byURL: make(map[string]*domain.Video),
		byID:  make(map[string]*domain.Video),
	}
}

func (f *FakeVideoRepository) failCheck() error {
	if f.FailNext {
		f.FailNext = false
		return domain.ErrStoreUnavailable
	}
	return nil
}

func (f *FakeVideoRepository) GetByURL(ctx context.Context, url string) (*domain.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return nil, err
	}
	if v, ok := f.byURL[url]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, domain.ErrVideoNotFound
}

func (f *FakeVideoRepository) GetByID(ctx context.Context, videoID string) (*domain.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return nil, err
	}
	if v, ok := f.byID[videoID]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, domain.ErrVideoNotFound
}

func (f *FakeVideoRepository) CreateOrGet(ctx context.Context, video *domain.Video) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return false, err
	}
	if existing, ok := f.byURL[video.URL]; ok {
		*video = *existing
		return false, nil
	}
	f.nextID++
	stored := *video
	stored.ID = "video-" + strconv.Itoa(f.nextID)
	f.byURL[stored.URL] = &stored
	f.byID[stored.ID] = &stored
	*video = stored
	return true, nil
}

func (f *FakeVideoRepository) UpdateStatus(ctx context.Context, videoID string, status domain.VideoStatus, transcript string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCheck(); err != nil {
		return err
	}
	v, ok := f.byID[videoID]
	if !ok {
		return domain.ErrVideoNotFound
	}
	v.Status = status
	v.Transcript = transcript
	return nil
}

// Count reports the number of stored videos
func (f *FakeVideoRepository) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

// FakeRequestRepository is a stateful in-memory implementation of
// repository.VideoRequest for testing.
type FakeRequestRepository struct {
	mu       sync.Mutex
	requests map[string]*domain.VideoRequest

	FailNext bool
}

func NewFakeRequestRepository() *FakeRequestRepository {
	return &FakeRequestRepository{requests: make(map[string]*domain.VideoRequest)}
}

func requestKey(userID, videoID string) string {
	return userID + ":" + videoID
}

func (f *FakeRequestRepository) Create(ctx context.Context, request *domain.VideoRequest) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailNext {
		f.FailNext = false
		return false, domain.ErrStoreUnavailable
	}
	key := requestKey(request.UserID, request.VideoID)
	if _, ok := f.requests[key]; ok {
		return false, nil
	}
	cp := *request
	f.requests[key] = &cp
	return true, nil
}

// Count reports the number of stored request records
func (f *FakeRequestRepository) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
