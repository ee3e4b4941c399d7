package usecase

import (
	"context"
	"log/slog"
	"sync"

	"adserve/internal/core/port"
)

// scoreRange caches the global minimum and maximum relevance score used for
// normalization. It is process-wide, read-mostly state: refreshed after
// every score write and lazily initialized before the first request. A
// failed refresh is logged and swallowed; the cache keeps its last-known
// values (or the (0,0) default) and request handling proceeds.
type scoreRange struct {
	repo   port.AdRepository
	logger *slog.Logger

	init     sync.Once
	mu       sync.RWMutex
	min, max float64
}

func newScoreRange(repo port.AdRepository, logger *slog.Logger) *scoreRange {
	return &scoreRange{repo: repo, logger: logger}
}

// ensure performs the one-time lazy initialization. Concurrent first
// requests block on the Once rather than recomputing redundantly.
func (s *scoreRange) ensure(ctx context.Context) {
	s.init.Do(func() { s.refresh(ctx) })
}

// refresh recomputes the cached range from the store. Errors are not fatal.
func (s *scoreRange) refresh(ctx context.Context) {
	minScore, maxScore, err := s.repo.ScoreRange(ctx)
	if err != nil {
		s.logger.Warn("score range refresh failed", slog.Any("error", err))
		return
	}
	s.mu.Lock()
	s.min, s.max = float64(minScore), float64(maxScore)
	s.mu.Unlock()
}

// read returns the cached range, (0,0) when never successfully refreshed.
func (s *scoreRange) read() (minScore, maxScore float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.min, s.max
}
