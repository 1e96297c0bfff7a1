package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
)

// MemoryMoodRepository backs the mood snapshot with an in-process map. It
// is the startup fallback when Mongo is unreachable; data is lost on
// restart.
type MemoryMoodRepository struct {
	mu     sync.RWMutex
	points map[string]model.MoodPoint
}

func NewMemoryMoodRepository() *MemoryMoodRepository {
	return &MemoryMoodRepository{points: make(map[string]model.MoodPoint)}
}

func (r *MemoryMoodRepository) Upsert(_ context.Context, point model.MoodPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points[point.CityName] = point
	return nil
}

func (r *MemoryMoodRepository) Query(_ context.Context, opts QueryOptions) ([]model.MoodPoint, error) {
	r.mu.RLock()
	snapshot := make([]model.MoodPoint, 0, len(r.points))
	for _, p := range r.points {
		if matches(p, opts) {
			snapshot = append(snapshot, p)
		}
	}
	r.mu.RUnlock()

	// Newest first; name breaks timestamp ties so repeated queries with no
	// intervening refresh return identical results.
	sort.Slice(snapshot, func(i, j int) bool {
		if !snapshot[i].Timestamp.Equal(snapshot[j].Timestamp) {
			return snapshot[i].Timestamp.After(snapshot[j].Timestamp)
		}
		return snapshot[i].CityName < snapshot[j].CityName
	})

	return postFilter(snapshot, opts), nil
}

func (r *MemoryMoodRepository) Ping(_ context.Context) error {
	return nil
}
