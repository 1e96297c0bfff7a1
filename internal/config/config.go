package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the API process reads from the environment.
type Config struct {
	BindAddr    string
	CORSOrigins []string

	MongoURI string

	RefreshInterval   time.Duration
	AggregatorWorkers int
	BulkPostLimit     int

	SummaryCacheTTL  time.Duration
	SummaryPostLimit int

	HFAPIToken string
	HFModel    string

	OpenAIAPIKey    string
	AnthropicAPIKey string

	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
}

// Load builds a Config from environment variables with validation.
func Load() (*Config, error) {
	c := &Config{
		BindAddr:          getEnv("BIND_ADDR", "0.0.0.0:8000"),
		CORSOrigins:       splitAndTrim(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		MongoURI:          getEnv("MONGODB_URI", "mongodb://localhost:27017/earthpulse"),
		RefreshInterval:   getDuration("REFRESH_INTERVAL", "5m"),
		AggregatorWorkers: getInt("AGGREGATOR_WORKERS", 8),
		BulkPostLimit:     getInt("BULK_POST_LIMIT", 3),
		SummaryCacheTTL:   getDuration("SUMMARY_CACHE_TTL", "45s"),
		SummaryPostLimit:  getInt("SUMMARY_POST_LIMIT", 50),
		HFAPIToken:        os.Getenv("HF_API_TOKEN"),
		HFModel:           getEnv("HF_MODEL", "cardiffnlp/twitter-roberta-base-sentiment-latest"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: getEnv("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
	}

	if c.RefreshInterval <= 0 {
		return nil, fmt.Errorf("REFRESH_INTERVAL must be positive")
	}
	if c.AggregatorWorkers <= 0 {
		return nil, fmt.Errorf("AGGREGATOR_WORKERS must be positive")
	}
	if c.BulkPostLimit < 1 || c.BulkPostLimit > 10 {
		return nil, fmt.Errorf("BULK_POST_LIMIT must be between 1 and 10")
	}
	if c.SummaryCacheTTL <= 0 {
		return nil, fmt.Errorf("SUMMARY_CACHE_TTL must be positive")
	}
	if c.SummaryPostLimit <= 0 {
		return nil, fmt.Errorf("SUMMARY_POST_LIMIT must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		d, err = time.ParseDuration(fallback)
		if err != nil {
			panic(fmt.Sprintf("invalid fallback duration %q: %v", fallback, err))
		}
	}
	return d
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
