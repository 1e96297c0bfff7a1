package repository

import (
	"context"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
)

// QueryOptions filters a mood snapshot read. A nil score bound means
// unbounded on that side.
type QueryOptions struct {
	Limit         int
	Source        string
	MinScore      *float64
	MaxScore      *float64
	OnlyCity      bool
	UniquePerCity bool
}

// MoodStore holds the latest mood snapshot. Upsert is atomic per city key;
// a point either exists in full or not at all. The Mongo and in-memory
// implementations have identical query semantics, so the substitution is
// invisible to callers.
type MoodStore interface {
	Upsert(ctx context.Context, point model.MoodPoint) error
	Query(ctx context.Context, opts QueryOptions) ([]model.MoodPoint, error)
	Ping(ctx context.Context) error
}

func matches(p model.MoodPoint, opts QueryOptions) bool {
	if opts.Source != "" && p.Source != opts.Source {
		return false
	}
	if opts.MinScore != nil && p.Score < *opts.MinScore {
		return false
	}
	if opts.MaxScore != nil && p.Score > *opts.MaxScore {
		return false
	}
	if opts.OnlyCity && p.CityName == "" {
		return false
	}
	return true
}

// postFilter applies unique-per-city dedup and the limit to points already
// sorted newest first. Shared by both backends so their results agree.
func postFilter(points []model.MoodPoint, opts QueryOptions) []model.MoodPoint {
	out := make([]model.MoodPoint, 0, len(points))
	seen := make(map[string]bool)

	for _, p := range points {
		if opts.UniquePerCity {
			if p.CityName != "" && seen[p.CityName] {
				continue
			}
			seen[p.CityName] = true
		}
		out = append(out, p)
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}

	return out
}
