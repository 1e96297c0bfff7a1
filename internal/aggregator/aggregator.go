package aggregator

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/registry"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/repository"
)

// storedTextLimit truncates post text before storage.
const storedTextLimit = 200

// fallbackSource labels points built from synthetic fallback text.
const fallbackSource = "mock"

type CandidateResolver interface {
	Resolve(ctx context.Context, city model.City) model.Candidate
}

type Classifier interface {
	Classify(ctx context.Context, text string) (label string, score float64)
}

// Aggregator runs one full refresh cycle: resolve a candidate per city,
// classify it, upsert one mood point per city. Worker count bounds the
// number of outstanding external queries; per-city failures are logged and
// never abort the cycle.
type Aggregator struct {
	registry   *registry.Registry
	resolver   CandidateResolver
	classifier Classifier
	store      repository.MoodStore
	workers    int
	now        func() time.Time
}

func New(reg *registry.Registry, res CandidateResolver, cls Classifier, store repository.MoodStore, workers int) *Aggregator {
	if workers < 1 {
		workers = 1
	}
	return &Aggregator{
		registry:   reg,
		resolver:   res,
		classifier: cls,
		store:      store,
		workers:    workers,
		now:        time.Now,
	}
}

// RunCycle processes every registered city and returns the number of mood
// points written. Once started, the cycle runs to completion; cancellation
// only propagates into individual external calls.
func (a *Aggregator) RunCycle(ctx context.Context) int {
	start := a.now()
	cities := a.registry.All()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		written int
		failed  int
	)
	sem := make(chan struct{}, a.workers)

	for _, city := range cities {
		wg.Add(1)
		sem <- struct{}{}
		go func(city model.City) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := a.processCity(ctx, city); err != nil {
				slog.Error("refresh failed for city", "city", city.Name, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			mu.Lock()
			written++
			mu.Unlock()
		}(city)
	}
	wg.Wait()

	slog.Info("refresh cycle complete",
		"written", written,
		"failed", failed,
		"cities", len(cities),
		"duration", a.now().Sub(start).String(),
	)
	return written
}

func (a *Aggregator) processCity(ctx context.Context, city model.City) error {
	candidate := a.resolver.Resolve(ctx, city)
	label, score := a.classifier.Classify(ctx, candidate.Text)

	text := candidate.Text
	if len(text) > storedTextLimit {
		cut := storedTextLimit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	point := model.MoodPoint{
		CityName:   city.Name,
		Lat:        city.Lat,
		Lng:        city.Lng,
		Label:      label,
		Score:      score,
		Text:       text,
		IsFallback: candidate.IsFallback(),
		Timestamp:  a.now().UTC(),
	}
	if candidate.IsFallback() {
		point.Source = fallbackSource
	} else {
		point.Source = candidate.Platform
		point.PostAuthor = candidate.Author
		point.PostURL = candidate.URL
	}

	return a.store.Upsert(ctx, point)
}
