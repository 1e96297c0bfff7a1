package social

import (
	"context"
	"errors"
	"time"
)

// ErrRateLimited signals a provider throttling response (HTTP 429).
var ErrRateLimited = errors.New("content source rate limited")

// Post is one short text snippet fetched from a social platform.
type Post struct {
	ID        string
	Text      string
	Platform  string
	Author    string
	URL       string
	CreatedAt time.Time
}

type ContentSource interface {
	// Search returns up to limit recent posts mentioning the city.
	Search(ctx context.Context, city string, limit int) ([]Post, error)
	Name() string
}
