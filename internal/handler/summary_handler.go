package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dikshithreddym/Earth-s-Pulse/internal/model"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/registry"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/resolver"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/social"
)

// Summarizer produces a narrative mood summary for one city.
type Summarizer interface {
	Summarize(ctx context.Context, city string, limit int) (model.CitySummary, error)
}

// SpeechSynthesizer converts text to audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, format string) ([]byte, error)
}

type SummaryHandler struct {
	summarizer Summarizer
	speech     SpeechSynthesizer
}

func NewSummaryHandler(summarizer Summarizer, speech SpeechSynthesizer) *SummaryHandler {
	return &SummaryHandler{summarizer: summarizer, speech: speech}
}

func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summary, ok := h.resolveSummary(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toSummaryResponse(summary))
}

func (h *SummaryHandler) GetSummaryAudio(c *gin.Context) {
	if h.speech == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Speech synthesis not configured"})
		return
	}

	summary, ok := h.resolveSummary(c)
	if !ok {
		return
	}

	audio, err := h.speech.Synthesize(c.Request.Context(), summary.Narrative, c.Query("format"))
	if err != nil {
		slog.Error("speech synthesis failed", "city", summary.City, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Speech synthesis failed"})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// resolveSummary runs the shared city/limit parsing and summary
// generation for both the text and audio endpoints. It writes the error
// response itself and reports whether a summary was produced.
func (h *SummaryHandler) resolveSummary(c *gin.Context) (model.CitySummary, bool) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: city"})
		return model.CitySummary{}, false
	}
	limit := getQueryInt("limit", 0, c)

	summary, err := h.summarizer.Summarize(c.Request.Context(), city, limit)
	if err != nil {
		status, msg := summaryErrorStatus(err)
		if status >= http.StatusInternalServerError {
			slog.Error("summary generation failed", "city", city, "error", err)
		} else {
			slog.Warn("summary request rejected", "city", city, "status", status, "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return model.CitySummary{}, false
	}

	return summary, true
}

// summaryErrorStatus maps the summary pipeline's error kinds onto HTTP
// statuses. Unknown-city and empty-content are the caller's problem;
// upstream and rate-limit failures are retryable.
func summaryErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, registry.ErrUnknownCity):
		return http.StatusNotFound, "Unknown city"
	case errors.Is(err, resolver.ErrNoQualifyingContent):
		return http.StatusNotFound, "No recent posts found for this city"
	case errors.Is(err, social.ErrRateLimited):
		return http.StatusTooManyRequests, "Content source rate limit exceeded, try again shortly"
	case errors.Is(err, resolver.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "Content source unavailable"
	default:
		return http.StatusInternalServerError, "Summary generation failed"
	}
}

func toSummaryResponse(s model.CitySummary) CitySummaryResponse {
	return CitySummaryResponse{
		City:    s.City,
		Summary: s.Narrative,
		Statistics: StatisticsResponse{
			TotalPosts:   s.Stats.TotalPosts,
			Positive:     s.Stats.Positive,
			Neutral:      s.Stats.Neutral,
			Negative:     s.Stats.Negative,
			AverageScore: s.Stats.AverageScore,
		},
		SamplePosts: s.SamplePosts,
		Timestamp:   s.GeneratedAt.Format(time.RFC3339),
	}
}
