package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dikshithreddym/Earth-s-Pulse/db"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/aggregator"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/config"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/handler"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/registry"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/repository"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/resolver"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/scheduler"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/sentiment"
	"github.com/dikshithreddym/Earth-s-Pulse/internal/summary"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/inference"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/llm"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/social"
	"github.com/dikshithreddym/Earth-s-Pulse/pkg/tts"
)

const userAgent = "earthpulse/1.0"

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	store := connectStore(cfg)
	defer db.CloseMongo()

	cityRegistry := registry.New()

	reddit := social.NewRedditClient(userAgent)
	contentResolver := resolver.New([]social.ContentSource{reddit}, cfg.BulkPostLimit, 10*time.Second)

	var modelClient inference.Classifier
	if cfg.HFAPIToken != "" {
		modelClient = inference.NewHuggingFaceClient(cfg.HFAPIToken, cfg.HFModel)
	} else {
		slog.Warn("HF_API_TOKEN not set, sentiment falls back to keyword heuristic")
	}
	classifier := sentiment.NewClassifier(
		sentiment.NewModelStrategy(modelClient),
		sentiment.NewHeuristicStrategy(),
	)

	agg := aggregator.New(cityRegistry, contentResolver, classifier, store, cfg.AggregatorWorkers)
	sched := scheduler.New(agg, cfg.RefreshInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sched.Run(ctx)

	narrator := pickNarrator(cfg)
	summaryService := summary.NewService(cityRegistry, contentResolver, classifier, narrator, cfg.SummaryCacheTTL, cfg.SummaryPostLimit)

	var speech handler.SpeechSynthesizer
	if cfg.ElevenLabsAPIKey != "" {
		speech = tts.NewElevenLabsClient(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID)
	} else {
		slog.Warn("ELEVENLABS_API_KEY not set, summary audio endpoint disabled")
	}

	moodHandler := handler.NewMoodHandler(store, sched, cityRegistry.Len())
	summaryHandler := handler.NewSummaryHandler(summaryService, speech)

	r := gin.Default()

	slog.Info("AllowOrigins URL:", "urls", cfg.CORSOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/moods", moodHandler.GetMoods)
	r.POST("/api/moods/refresh", moodHandler.RefreshMoods)
	r.GET("/api/stats", moodHandler.GetStats)
	r.GET("/api/health", moodHandler.GetHealth)
	r.GET("/api/summary", summaryHandler.GetSummary)
	r.GET("/api/summary/audio", summaryHandler.GetSummaryAudio)

	err = r.Run(cfg.BindAddr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// connectStore prefers Mongo but degrades to the in-memory store so the
// process always comes up. Both stores answer queries identically.
func connectStore(cfg *config.Config) repository.MoodStore {
	if err := db.ConnectMongo(cfg.MongoURI); err != nil {
		slog.Warn("mongo unavailable, using in-memory store", "error", err)
		return repository.NewMemoryMoodRepository()
	}

	repo := repository.NewMongoMoodRepository(db.Mongo, db.DatabaseName, db.CollectionName)
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		slog.Warn("could not ensure mongo indexes", "error", err)
	}
	return repo
}

// pickNarrator selects the narrative model by which API key is present,
// preferring OpenAI. A nil narrator makes summary requests fail rather
// than serve fabricated narratives.
func pickNarrator(cfg *config.Config) llm.NarrativeClient {
	if cfg.OpenAIAPIKey != "" {
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	}
	if cfg.AnthropicAPIKey != "" {
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}
	slog.Warn("no LLM API key set, summary endpoint will return errors")
	return nil
}
