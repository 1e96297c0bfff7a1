package summary

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/registry"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/llm"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/social"
)

const (
	positiveThreshold = 0.3
	negativeThreshold = -0.3
	maxSamplePosts    = 3
)

// ContentFetcher fetches real posts for a city, failing loudly when no
// usable content exists.
type ContentFetcher interface {
	FetchReal(ctx context.Context, city model.City, limit int) ([]social.Post, error)
}

// Classifier scores a single text.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, float64)
}

// inflight tracks one in-progress generation for a city so concurrent
// requests share a single upstream round trip.
type inflight struct {
	done    chan struct{}
	summary model.CitySummary
	err     error
}

// Service produces narrative mood summaries per city. Results are cached
// for a short TTL; unlike the bulk pipeline, failures here are surfaced
// to the caller rather than papered over with fallbacks.
type Service struct {
	registry   *registry.Registry
	fetcher    ContentFetcher
	classifier Classifier
	narrator   llm.NarrativeClient
	cache      *Cache
	postLimit  int
	now        func() time.Time

	mu    sync.Mutex
	calls map[string]*inflight
}

func NewService(reg *registry.Registry, fetcher ContentFetcher, classifier Classifier, narrator llm.NarrativeClient, cacheTTL time.Duration, postLimit int) *Service {
	return &Service{
		registry:   reg,
		fetcher:    fetcher,
		classifier: classifier,
		narrator:   narrator,
		cache:      NewCache(cacheTTL),
		postLimit:  postLimit,
		now:        time.Now,
		calls:      make(map[string]*inflight),
	}
}

// Summarize returns the narrative summary for a city, serving from cache
// when fresh. Concurrent requests for the same city are coalesced into a
// single generation. A limit of 0 means the configured default; the cache
// is keyed by city only, so differing limits share entries within the TTL.
func (s *Service) Summarize(ctx context.Context, cityName string, limit int) (model.CitySummary, error) {
	city, err := s.registry.Get(cityName)
	if err != nil {
		return model.CitySummary{}, err
	}
	if limit <= 0 || limit > s.postLimit {
		limit = s.postLimit
	}

	if cached, ok := s.cache.Get(city.Name); ok {
		return cached, nil
	}

	s.mu.Lock()
	if call, ok := s.calls[city.Name]; ok {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.summary, call.err
		case <-ctx.Done():
			return model.CitySummary{}, ctx.Err()
		}
	}
	call := &inflight{done: make(chan struct{})}
	s.calls[city.Name] = call
	s.mu.Unlock()

	// The generation is shared with every coalesced waiter, so it must
	// survive the owning request being abandoned and still fill the cache.
	call.summary, call.err = s.generate(context.WithoutCancel(ctx), city, limit)
	close(call.done)

	s.mu.Lock()
	delete(s.calls, city.Name)
	s.mu.Unlock()

	return call.summary, call.err
}

func (s *Service) generate(ctx context.Context, city model.City, limit int) (model.CitySummary, error) {
	if s.narrator == nil {
		return model.CitySummary{}, fmt.Errorf("no narrative model configured")
	}

	posts, err := s.fetcher.FetchReal(ctx, city, limit)
	if err != nil {
		return model.CitySummary{}, err
	}

	stats, samples := s.analyze(ctx, posts)

	narrative, err := s.narrator.Narrate(ctx, llm.NarrativeInput{
		City:         city.Name,
		TotalPosts:   stats.TotalPosts,
		Positive:     stats.Positive,
		Neutral:      stats.Neutral,
		Negative:     stats.Negative,
		AverageScore: stats.AverageScore,
		SamplePosts:  samples,
	})
	if err != nil {
		return model.CitySummary{}, fmt.Errorf("generating narrative for %s: %w", city.Name, err)
	}

	summary := model.CitySummary{
		City:        city.Name,
		Narrative:   narrative,
		Stats:       stats,
		SamplePosts: samples,
		GeneratedAt: s.now().UTC(),
	}
	s.cache.Set(city.Name, summary)

	slog.Info("generated city summary",
		"city", city.Name,
		"posts", stats.TotalPosts,
		"avg_score", stats.AverageScore,
		"model", s.narrator.ModelName())

	return summary, nil
}

// analyze classifies every post and buckets the scores into a sentiment
// distribution.
func (s *Service) analyze(ctx context.Context, posts []social.Post) (model.SummaryStats, []string) {
	var stats model.SummaryStats
	var total float64
	samples := make([]string, 0, maxSamplePosts)

	for _, post := range posts {
		_, score := s.classifier.Classify(ctx, post.Text)
		total += score

		switch {
		case score > positiveThreshold:
			stats.Positive++
		case score < negativeThreshold:
			stats.Negative++
		default:
			stats.Neutral++
		}

		if len(samples) < maxSamplePosts {
			samples = append(samples, post.Text)
		}
	}

	stats.TotalPosts = len(posts)
	if stats.TotalPosts > 0 {
		stats.AverageScore = math.Round(total/float64(stats.TotalPosts)*1000) / 1000
	}
	return stats, samples
}
