package service

import (
	"context"
	"errors"

	"islatours/internal/reviews/cache"
	reviewserrors "islatours/internal/reviews/errors"
	"islatours/pkg/config"
	apperrors "islatours/pkg/errors"
	"islatours/pkg/model"
)

// Fetcher scrapes a review page.
type Fetcher interface {
	Fetch(ctx context.Context, url string, max int) ([]model.Review, error)
}

type ReviewService interface {
	// Get serves cached reviews when fresh and scrapes otherwise. max is
	// clamped to 1..config.MaxReviews; zero means the configured default.
	Get(ctx context.Context, url string, max int) ([]model.Review, error)
}

type reviewService struct {
	fetcher Fetcher
	cache   cache.Cache
	cfg     *config.Config
}

func NewReviewService(fetcher Fetcher, c cache.Cache, cfg *config.Config) ReviewService {
	return &reviewService{fetcher: fetcher, cache: c, cfg: cfg}
}

func (s *reviewService) Get(ctx context.Context, url string, max int) ([]model.Review, error) {
	if url == "" {
		return nil, apperrors.InvalidInput("Query parameter url is required")
	}
	if max <= 0 {
		max = s.cfg.ReviewsMaxDefault
	}
	max = min(max, config.MaxReviews)

	key := cache.Key(url, max)
	reviews, err := s.cache.Get(ctx, key)
	if err == nil {
		s.cfg.Log.Debug("Reviews served from cache", "url", url, "count", len(reviews))
		return reviews, nil
	}
	if !errors.Is(err, reviewserrors.ErrCacheMiss) {
		s.cfg.Log.Warn("Reviews cache unavailable", "error", err)
	}

	scrapeCtx, cancel := context.WithTimeout(ctx, s.cfg.ScrapeTimeout)
	defer cancel()

	reviews, err = s.fetcher.Fetch(scrapeCtx, url, max)
	if err != nil {
		return nil, s.mapError(err, url)
	}

	if err := s.cache.Set(ctx, key, reviews, s.cfg.ReviewsCacheTTL); err != nil {
		s.cfg.Log.Warn("Failed to cache reviews", "url", url, "error", err)
	}
	s.cfg.Log.Info("Reviews scraped", "url", url, "count", len(reviews))
	return reviews, nil
}

func (s *reviewService) mapError(err error, url string) error {
	switch {
	case errors.Is(err, reviewserrors.ErrInvalidURL):
		return apperrors.InvalidInput("url must be an absolute http(s) URL")
	case errors.Is(err, context.DeadlineExceeded):
		s.cfg.Log.Warn("Review scrape timed out", "url", url)
		return apperrors.Timeout("Review page took too long to respond")
	case errors.Is(err, reviewserrors.ErrUpstream), errors.Is(err, reviewserrors.ErrUnparseable):
		s.cfg.Log.Warn("Review scrape failed", "url", url, "error", err)
		return apperrors.Unavailable("Review source")
	default:
		s.cfg.Log.Error("Review scrape failed", "url", url, "error", err)
		return apperrors.Internal("Failed to fetch reviews", err)
	}
}
