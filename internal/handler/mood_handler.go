package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/repository"
)

// RefreshTrigger kicks off a refresh cycle, joining one already in
// flight instead of starting a second.
type RefreshTrigger interface {
	TriggerNow(ctx context.Context) (int, error)
}

type MoodHandler struct {
	store   repository.MoodStore
	trigger RefreshTrigger
	cities  int
}

func NewMoodHandler(store repository.MoodStore, trigger RefreshTrigger, cityCount int) *MoodHandler {
	return &MoodHandler{store: store, trigger: trigger, cities: cityCount}
}

func (h *MoodHandler) GetMoods(c *gin.Context) {
	opts := repository.QueryOptions{
		Limit:         getQueryLimit(c),
		Source:        c.Query("source"),
		MinScore:      getQueryFloat("min_score", c),
		MaxScore:      getQueryFloat("max_score", c),
		OnlyCity:      getQueryBool("only_city", c),
		UniquePerCity: getQueryBool("unique_per_city", c),
	}

	points, err := h.store.Query(c.Request.Context(), opts)
	if err != nil {
		slog.Error("error querying moods", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := MoodsResponse{Moods: make([]MoodPointResponse, 0, len(points))}
	for _, p := range points {
		res.Moods = append(res.Moods, MoodPointResponse{
			CityName:   p.CityName,
			Lat:        p.Lat,
			Lng:        p.Lng,
			Label:      p.Label,
			Score:      p.Score,
			Source:     p.Source,
			Text:       p.Text,
			PostAuthor: p.PostAuthor,
			PostURL:    p.PostURL,
			IsFallback: p.IsFallback,
			Timestamp:  p.Timestamp.Format(time.RFC3339),
		})
	}
	res.Count = len(res.Moods)

	c.JSON(http.StatusOK, res)
}

func (h *MoodHandler) RefreshMoods(c *gin.Context) {
	count, err := h.trigger.TriggerNow(c.Request.Context())
	if err != nil {
		slog.Error("refresh trigger failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Refresh did not complete"})
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{
		Message:   "Moods refreshed successfully",
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *MoodHandler) GetStats(c *gin.Context) {
	points, err := h.store.Query(c.Request.Context(), repository.QueryOptions{})
	if err != nil {
		slog.Error("error querying moods for stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := StoreStatsResponse{
		TotalPoints: len(points),
		BySource:    map[string]int{},
		ByLabel:     map[string]int{},
	}

	var total float64
	for _, p := range points {
		res.BySource[p.Source]++
		res.ByLabel[p.Label]++
		total += p.Score
	}
	if len(points) > 0 {
		res.AverageScore = total / float64(len(points))
	}

	c.JSON(http.StatusOK, res)
}

func (h *MoodHandler) GetHealth(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
			"cities":   h.cities,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
		"cities":   h.cities,
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", raw, "error", err)
		return defaultValue
	}
	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 100
		maxLimit     = 500
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryFloat(name string, c *gin.Context) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("invalid query parameter, ignoring", "param", name, "value", raw, "error", err)
		return nil
	}
	return &parsed
}

func getQueryBool(name string, c *gin.Context) bool {
	raw := c.Query(name)
	if raw == "" {
		return false
	}

	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid query parameter, ignoring", "param", name, "value", raw, "error", err)
		return false
	}
	return parsed
}
