package summary

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/registry"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/resolver"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/llm"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/social"
)

type fakeFetcher struct {
	posts []social.Post
	err   error
	calls int64
	block chan struct{}
}

func (f *fakeFetcher) FetchReal(ctx context.Context, city model.City, limit int) ([]social.Post, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.block != nil {
		<-f.block
	}
	return f.posts, f.err
}

type keywordClassifier struct{}

func (keywordClassifier) Classify(ctx context.Context, text string) (string, float64) {
	switch {
	case strings.Contains(text, "happy"):
		return model.LabelJoyful, 0.6
	case strings.Contains(text, "stressed"):
		return model.LabelAnxious, -0.6
	default:
		return model.LabelNeutral, 0.0
	}
}

type fakeNarrator struct {
	narrative string
	err       error
	calls     int64
}

func (f *fakeNarrator) Narrate(ctx context.Context, input llm.NarrativeInput) (string, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return "", f.err
	}
	return f.narrative, nil
}

func (f *fakeNarrator) ModelName() string { return "fake-model" }

func testPosts() []social.Post {
	return []social.Post{
		{ID: "1", Text: "so happy about the new transit line opening"},
		{ID: "2", Text: "feeling stressed about rent prices lately here"},
		{ID: "3", Text: "just another ordinary tuesday in this city"},
	}
}

func TestSummarize(t *testing.T) {
	fetcher := &fakeFetcher{posts: testPosts()}
	narrator := &fakeNarrator{narrative: "Toronto hums with cautious optimism today."}
	svc := NewService(registry.New(), fetcher, keywordClassifier{}, narrator, 45*time.Second, 50)

	got, err := svc.Summarize(context.Background(), "Toronto", 0)
	assert.Equal(t, err, nil)
	assert.Equal(t, got.City, "Toronto, Canada")
	assert.Equal(t, got.Narrative, "Toronto hums with cautious optimism today.")
	assert.Equal(t, got.Stats.TotalPosts, 3)
	assert.Equal(t, got.Stats.Positive, 1)
	assert.Equal(t, got.Stats.Negative, 1)
	assert.Equal(t, got.Stats.Neutral, 1)
	assert.Equal(t, got.Stats.AverageScore, 0.0)
	assert.Equal(t, len(got.SamplePosts), 3)
}

func TestSummarizeServesFromCache(t *testing.T) {
	fetcher := &fakeFetcher{posts: testPosts()}
	narrator := &fakeNarrator{narrative: "a quiet day"}
	svc := NewService(registry.New(), fetcher, keywordClassifier{}, narrator, 45*time.Second, 50)

	_, err := svc.Summarize(context.Background(), "Paris", 0)
	assert.Equal(t, err, nil)
	_, err = svc.Summarize(context.Background(), "Paris", 0)
	assert.Equal(t, err, nil)

	assert.Equal(t, atomic.LoadInt64(&fetcher.calls), int64(1))
	assert.Equal(t, atomic.LoadInt64(&narrator.calls), int64(1))
}

func TestSummarizeCacheExpiry(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{posts: testPosts()}
	narrator := &fakeNarrator{narrative: "a quiet day"}
	svc := NewService(registry.New(), fetcher, keywordClassifier{}, narrator, 45*time.Second, 50)
	svc.cache.now = func() time.Time { return current }

	_, err := svc.Summarize(context.Background(), "Tokyo", 0)
	assert.Equal(t, err, nil)

	current = current.Add(46 * time.Second)
	_, err = svc.Summarize(context.Background(), "Tokyo", 0)
	assert.Equal(t, err, nil)

	assert.Equal(t, atomic.LoadInt64(&narrator.calls), int64(2))
}

func TestSummarizeUnknownCity(t *testing.T) {
	svc := NewService(registry.New(), &fakeFetcher{}, keywordClassifier{}, &fakeNarrator{}, time.Minute, 50)

	_, err := svc.Summarize(context.Background(), "Atlantis", 0)
	if !errors.Is(err, registry.ErrUnknownCity) {
		t.Fatalf("expected ErrUnknownCity, got %v", err)
	}
}

func TestSummarizeUpstreamFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: resolver.ErrUpstreamUnavailable}
	narrator := &fakeNarrator{narrative: "should not be called"}
	svc := NewService(registry.New(), fetcher, keywordClassifier{}, narrator, time.Minute, 50)

	_, err := svc.Summarize(context.Background(), "Toronto", 0)
	if !errors.Is(err, resolver.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	assert.Equal(t, atomic.LoadInt64(&narrator.calls), int64(0))

	// A failed generation must not poison the cache.
	fetcher.err = nil
	fetcher.posts = testPosts()
	got, err := svc.Summarize(context.Background(), "Toronto", 0)
	assert.Equal(t, err, nil)
	assert.Equal(t, got.Narrative, "should not be called")
}

func TestSummarizeNoQualifyingContent(t *testing.T) {
	fetcher := &fakeFetcher{err: resolver.ErrNoQualifyingContent}
	svc := NewService(registry.New(), fetcher, keywordClassifier{}, &fakeNarrator{}, time.Minute, 50)

	_, err := svc.Summarize(context.Background(), "Toronto", 0)
	if !errors.Is(err, resolver.ErrNoQualifyingContent) {
		t.Fatalf("expected ErrNoQualifyingContent, got %v", err)
	}
}

func TestSummarizeNarratorFailure(t *testing.T) {
	fetcher := &fakeFetcher{posts: testPosts()}
	narrator := &fakeNarrator{err: errors.New("model overloaded")}
	svc := NewService(registry.New(), fetcher, keywordClassifier{}, narrator, time.Minute, 50)

	_, err := svc.Summarize(context.Background(), "Toronto", 0)
	assert.NotEqual(t, err, nil)
}

func TestSummarizeCoalescesConcurrentRequests(t *testing.T) {
	fetcher := &fakeFetcher{posts: testPosts(), block: make(chan struct{})}
	narrator := &fakeNarrator{narrative: "shared narrative"}
	svc := NewService(registry.New(), fetcher, keywordClassifier{}, narrator, time.Minute, 50)

	var wg sync.WaitGroup
	results := make([]model.CitySummary, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Summarize(context.Background(), "Berlin", 0)
		}(i)
	}

	// Let both goroutines reach the fetch before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(fetcher.block)
	wg.Wait()

	for i := 0; i < 2; i++ {
		assert.Equal(t, errs[i], nil)
		assert.Equal(t, results[i].Narrative, "shared narrative")
	}
	assert.Equal(t, atomic.LoadInt64(&fetcher.calls), int64(1))
	assert.Equal(t, atomic.LoadInt64(&narrator.calls), int64(1))
}

type contextCheckingFetcher struct {
	posts   []social.Post
	started chan struct{}
	release chan struct{}
	ctxErr  error
}

func (f *contextCheckingFetcher) FetchReal(ctx context.Context, city model.City, limit int) ([]social.Post, error) {
	close(f.started)
	<-f.release
	f.ctxErr = ctx.Err()
	return f.posts, nil
}

func TestSummarizeSurvivesAbandonedOwner(t *testing.T) {
	fetcher := &contextCheckingFetcher{
		posts:   testPosts(),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	narrator := &fakeNarrator{narrative: "still generated"}
	svc := NewService(registry.New(), fetcher, keywordClassifier{}, narrator, time.Minute, 50)

	ownerCtx, cancelOwner := context.WithCancel(context.Background())
	ownerDone := make(chan struct{})
	go func() {
		defer close(ownerDone)
		svc.Summarize(ownerCtx, "Oslo", 0)
	}()

	<-fetcher.started
	waiterResult := make(chan model.CitySummary, 1)
	waiterErr := make(chan error, 1)
	go func() {
		got, err := svc.Summarize(context.Background(), "Oslo", 0)
		waiterResult <- got
		waiterErr <- err
	}()

	// The owner walks away mid-fetch; the shared generation must finish
	// for the waiter and the cache regardless.
	cancelOwner()
	time.Sleep(20 * time.Millisecond)
	close(fetcher.release)
	<-ownerDone

	assert.Equal(t, <-waiterErr, nil)
	got := <-waiterResult
	assert.Equal(t, got.Narrative, "still generated")
	if fetcher.ctxErr != nil {
		t.Fatalf("generation context was cancelled with the owner: %v", fetcher.ctxErr)
	}

	// And the result landed in the cache.
	_, err := svc.Summarize(context.Background(), "Oslo", 0)
	assert.Equal(t, err, nil)
	assert.Equal(t, atomic.LoadInt64(&narrator.calls), int64(1))
}
