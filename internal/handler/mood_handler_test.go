package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/repository"
)

type fakeMoodStore struct {
	points   []model.MoodPoint
	lastOpts repository.QueryOptions
	err      error
	pingErr  error
}

func (f *fakeMoodStore) Upsert(ctx context.Context, point model.MoodPoint) error {
	return f.err
}

func (f *fakeMoodStore) Query(ctx context.Context, opts repository.QueryOptions) ([]model.MoodPoint, error) {
	f.lastOpts = opts
	return f.points, f.err
}

func (f *fakeMoodStore) Ping(ctx context.Context) error {
	return f.pingErr
}

type fakeTrigger struct {
	count int
	err   error
}

func (f *fakeTrigger) TriggerNow(ctx context.Context) (int, error) {
	return f.count, f.err
}

func newMoodRouter(store *fakeMoodStore, trigger *fakeTrigger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMoodHandler(store, trigger, 100)
	r.GET("/api/moods", h.GetMoods)
	r.POST("/api/moods/refresh", h.RefreshMoods)
	r.GET("/api/stats", h.GetStats)
	r.GET("/api/health", h.GetHealth)
	return r
}

func TestGetMoods_ReturnsPoints(t *testing.T) {
	store := &fakeMoodStore{
		points: []model.MoodPoint{
			{
				CityName:   "Toronto",
				Lat:        43.6532,
				Lng:        -79.3832,
				Label:      model.LabelJoyful,
				Score:      0.72,
				Source:     "reddit",
				Text:       "great day by the lake",
				Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				IsFallback: false,
			},
		},
	}
	r := newMoodRouter(store, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/moods?limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res MoodsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, res.Count, 1)
	assert.Equal(t, res.Moods[0].CityName, "Toronto")
	assert.Equal(t, res.Moods[0].Label, "joyful")
	assert.Equal(t, res.Moods[0].Timestamp, "2025-06-01T12:00:00Z")
	assert.Equal(t, store.lastOpts.Limit, 10)
}

func TestGetMoods_QueryFilters(t *testing.T) {
	store := &fakeMoodStore{}
	r := newMoodRouter(store, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/moods?source=reddit&min_score=-0.5&max_score=0.5&only_city=true&unique_per_city=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, store.lastOpts.Source, "reddit")
	assert.Equal(t, *store.lastOpts.MinScore, -0.5)
	assert.Equal(t, *store.lastOpts.MaxScore, 0.5)
	assert.Equal(t, store.lastOpts.OnlyCity, true)
	assert.Equal(t, store.lastOpts.UniquePerCity, true)
}

func TestGetMoods_DefaultLimit(t *testing.T) {
	store := &fakeMoodStore{}
	r := newMoodRouter(store, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/moods", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, store.lastOpts.Limit, 100)
	if store.lastOpts.MinScore != nil {
		t.Errorf("expected nil MinScore, got %v", *store.lastOpts.MinScore)
	}
}

func TestGetMoods_StoreError(t *testing.T) {
	store := &fakeMoodStore{err: errors.New("store down")}
	r := newMoodRouter(store, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/moods", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRefreshMoods(t *testing.T) {
	r := newMoodRouter(&fakeMoodStore{}, &fakeTrigger{count: 100})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/moods/refresh", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res RefreshResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, res.Count, 100)
	assert.Equal(t, res.Message, "Moods refreshed successfully")
}

func TestRefreshMoods_TriggerError(t *testing.T) {
	r := newMoodRouter(&fakeMoodStore{}, &fakeTrigger{err: context.DeadlineExceeded})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/moods/refresh", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetStats(t *testing.T) {
	store := &fakeMoodStore{
		points: []model.MoodPoint{
			{CityName: "Toronto", Label: model.LabelJoyful, Score: 0.6, Source: "reddit"},
			{CityName: "Lagos", Label: model.LabelAnxious, Score: -0.4, Source: "reddit"},
			{CityName: "Oslo", Label: model.LabelNeutral, Score: 0.1, Source: "mock"},
		},
	}
	r := newMoodRouter(store, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res StoreStatsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, res.TotalPoints, 3)
	assert.Equal(t, res.BySource["reddit"], 2)
	assert.Equal(t, res.BySource["mock"], 1)
	assert.Equal(t, res.ByLabel["joyful"], 1)
	if res.AverageScore < 0.099 || res.AverageScore > 0.101 {
		t.Errorf("expected average score near 0.1, got %f", res.AverageScore)
	}
}

func TestGetHealth(t *testing.T) {
	r := newMoodRouter(&fakeMoodStore{}, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, res["status"], "healthy")
	assert.Equal(t, res["database"], "connected")
}

func TestGetHealth_StoreDown(t *testing.T) {
	r := newMoodRouter(&fakeMoodStore{pingErr: errors.New("no reachable servers")}, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
