package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/social"
)

var (
	// ErrUpstreamUnavailable means no content source could be reached.
	ErrUpstreamUnavailable = errors.New("content source unavailable")
	// ErrNoQualifyingContent means the sources answered but returned zero
	// usable candidates.
	ErrNoQualifyingContent = errors.New("no qualifying content")
)

const (
	minPostLength = 20
	maxPostLength = 500
)

var deletionMarkers = regexp.MustCompile(`\[deleted\]|\[removed\]`)

// Resolver obtains candidate texts for a city. Bulk mode (Resolve) never
// fails: it substitutes a synthetic fallback. Strict mode (FetchReal)
// surfaces failure so callers can distinguish a real summary from a
// fabricated one.
type Resolver struct {
	sources []social.ContentSource
	cap     int
	timeout time.Duration
	now     func() time.Time
}

func New(sources []social.ContentSource, cap int, timeout time.Duration) *Resolver {
	return &Resolver{
		sources: sources,
		cap:     cap,
		timeout: timeout,
		now:     time.Now,
	}
}

// Resolve returns one candidate for the city. Any upstream error, timeout,
// or empty result is absorbed into a fallback variant.
func (r *Resolver) Resolve(ctx context.Context, city model.City) model.Candidate {
	posts, err := r.fetch(ctx, city, r.cap)
	if err != nil || len(posts) == 0 {
		if err != nil {
			slog.Debug("falling back to synthetic text", "city", city.Name, "error", err)
		}
		return model.FallbackCandidate(social.FallbackText(city.Name, r.now()))
	}

	p := posts[0]
	return model.RealCandidate(p.Text, p.Platform, p.Author, p.URL, p.CreatedAt)
}

// FetchReal returns up to limit qualifying real posts for the city, or an
// error from the resolution taxonomy. It never substitutes fallback text.
func (r *Resolver) FetchReal(ctx context.Context, city model.City, limit int) ([]social.Post, error) {
	posts, err := r.fetch(ctx, city, limit)
	if err != nil {
		if errors.Is(err, social.ErrRateLimited) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoQualifyingContent, city.Name)
	}
	return posts, nil
}

// fetch tries each source in order and returns the first non-empty set of
// qualifying posts. It errors only when every source failed. Each source
// gets its own timeout so a slow one cannot starve the rest.
func (r *Resolver) fetch(ctx context.Context, city model.City, limit int) ([]social.Post, error) {
	var lastErr error
	reached := false
	for _, src := range r.sources {
		posts, err := r.search(ctx, src, city.Name, limit)
		if err != nil {
			lastErr = err
			continue
		}
		reached = true

		qualified := make([]social.Post, 0, len(posts))
		for _, p := range posts {
			if text, ok := qualify(p.Text); ok {
				p.Text = text
				qualified = append(qualified, p)
			}
		}
		if len(qualified) > 0 {
			return qualified, nil
		}
	}

	if !reached && lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}

func (r *Resolver) search(ctx context.Context, src social.ContentSource, city string, limit int) ([]social.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return src.Search(ctx, city, limit)
}

// qualify applies the minimal quality gates: strip deletion markers, then
// require a minimum length. Overlong posts are truncated, not rejected.
func qualify(text string) (string, bool) {
	text = deletionMarkers.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	if len(text) < minPostLength {
		return "", false
	}
	if len(text) > maxPostLength {
		cut := maxPostLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text, true
}
