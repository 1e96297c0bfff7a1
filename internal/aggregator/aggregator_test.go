package aggregator

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/registry"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/repository"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/resolver"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/sentiment"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/social"
	"github.com/go-playground/assert/v2"
)

type emptySource struct{}

func (s *emptySource) Search(ctx context.Context, city string, limit int) ([]social.Post, error) {
	return nil, nil
}

func (s *emptySource) Name() string { return "empty" }

type echoSource struct{}

func (s *echoSource) Search(ctx context.Context, city string, limit int) ([]social.Post, error) {
	return []social.Post{{
		ID:        "p-" + city,
		Text:      "People in " + city + " seem happy and excited about the weekend festival.",
		Platform:  "reddit",
		Author:    "resident",
		URL:       "https://example.com/" + city,
		CreatedAt: time.Now().UTC(),
	}}, nil
}

func (s *echoSource) Name() string { return "echo" }

func newAggregator(src social.ContentSource, store repository.MoodStore) (*Aggregator, *registry.Registry) {
	reg := registry.New()
	res := resolver.New([]social.ContentSource{src}, 3, time.Second)
	cls := sentiment.NewClassifier(sentiment.NewHeuristicStrategy())
	return New(reg, res, cls, store, 8), reg
}

func TestCycleCoversEveryCity(t *testing.T) {
	store := repository.NewMemoryMoodRepository()
	agg, reg := newAggregator(&echoSource{}, store)

	written := agg.RunCycle(context.Background())

	assert.Equal(t, reg.Len(), written)

	points, err := store.Query(context.Background(), repository.QueryOptions{UniquePerCity: true})
	assert.Equal(t, nil, err)
	assert.Equal(t, reg.Len(), len(points))

	for _, p := range points {
		if p.Score < -1.0 || p.Score > 1.0 {
			t.Errorf("score out of range for %s: %f", p.CityName, p.Score)
		}
		assert.Equal(t, false, p.IsFallback)
		assert.Equal(t, "reddit", p.Source)
		assert.NotEqual(t, "", p.PostAuthor)
	}
}

func TestCycleFallsBackWhenProviderEmpty(t *testing.T) {
	store := repository.NewMemoryMoodRepository()
	src := &emptySource{}
	agg, reg := newAggregator(src, store)

	written := agg.RunCycle(context.Background())

	assert.Equal(t, reg.Len(), written)

	points, _ := store.Query(context.Background(), repository.QueryOptions{UniquePerCity: true})
	assert.Equal(t, reg.Len(), len(points))

	for _, p := range points {
		assert.Equal(t, true, p.IsFallback)
		assert.Equal(t, "mock", p.Source)
		assert.Equal(t, "", p.PostAuthor)
		assert.Equal(t, "", p.PostURL)
		assert.NotEqual(t, "", p.Text)
	}
}

func TestRepeatedCyclesKeepOnePointPerCity(t *testing.T) {
	store := repository.NewMemoryMoodRepository()
	agg, reg := newAggregator(&echoSource{}, store)

	agg.RunCycle(context.Background())
	agg.RunCycle(context.Background())

	points, _ := store.Query(context.Background(), repository.QueryOptions{})
	assert.Equal(t, reg.Len(), len(points))

	seen := map[string]bool{}
	for _, p := range points {
		if seen[p.CityName] {
			t.Errorf("duplicate point for %s", p.CityName)
		}
		seen[p.CityName] = true
	}
}

func TestStoredTextTruncated(t *testing.T) {
	store := repository.NewMemoryMoodRepository()
	long := &longSource{}
	agg, _ := newAggregator(long, store)

	agg.RunCycle(context.Background())

	points, _ := store.Query(context.Background(), repository.QueryOptions{Limit: 1})
	if len(points[0].Text) > storedTextLimit {
		t.Errorf("stored text too long: %d", len(points[0].Text))
	}
}

type longSource struct{}

func (s *longSource) Search(ctx context.Context, city string, limit int) ([]social.Post, error) {
	return []social.Post{{
		ID:       "long",
		Text:     strings.Repeat("an endlessly cheerful report ", 20),
		Platform: "reddit",
	}}, nil
}

func (s *longSource) Name() string { return "long" }

func TestStoredTextKeepsRunesIntact(t *testing.T) {
	store := repository.NewMemoryMoodRepository()
	agg, _ := newAggregator(&multibyteSource{}, store)

	agg.RunCycle(context.Background())

	points, _ := store.Query(context.Background(), repository.QueryOptions{Limit: 1})
	if len(points[0].Text) > storedTextLimit {
		t.Errorf("stored text too long: %d", len(points[0].Text))
	}
	if !utf8.ValidString(points[0].Text) {
		t.Error("stored text is not valid UTF-8")
	}
}

type multibyteSource struct{}

func (s *multibyteSource) Search(ctx context.Context, city string, limit int) ([]social.Post, error) {
	return []social.Post{{
		ID:       "mb",
		Text:     strings.Repeat("今日は街がとても賑やかで", 15),
		Platform: "reddit",
	}}, nil
}

func (s *multibyteSource) Name() string { return "multibyte" }
