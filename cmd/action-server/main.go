package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/actions"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/config"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/db"
	apihttp "github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/http"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/llm"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/repository"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/sentiment"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/service"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/telemetry"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/tracker"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var turns repository.TurnRepository = repository.NoopTurnRepository{}
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := db.Ping(ctxPing, pool); err != nil {
			cancel()
			logger.Fatal("db ping", zap.Error(err))
		}
		cancel()
		turns = repository.NewPgTurnRepository(pool)
	}

	var store tracker.Store = tracker.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory tracker store", zap.Error(err))
		} else {
			store = tracker.NewRedisStore(redisClient, time.Duration(cfg.SessionTTLHours)*time.Hour)
		}
		cancel()
	}

	var events actions.EventSink
	if cfg.NATSURL != "" {
		publisher, err := telemetry.Connect(cfg.NATSURL, cfg.NATSToken, logger)
		if err != nil {
			logger.Warn("nats connect failed, telemetry disabled", zap.Error(err))
		} else {
			defer publisher.Close()
			events = publisher
		}
	}

	scorer := sentiment.NewVaderScorer()
	classifier := sentiment.NewClassifier(scorer, logger)
	selector := service.NewResponseSelector(rand.New(rand.NewSource(time.Now().UnixNano())))

	generator := llm.NewHTTPGenerator(cfg.InferenceBaseURL, cfg.InferenceAPIKey, cfg.GenerationModel, logger)
	coarse := llm.NewHTTPCoarseClassifier(cfg.InferenceBaseURL, cfg.InferenceAPIKey, cfg.SentimentModel, logger)
	supportGen := service.NewSupportGenerator(coarse, generator, llm.SamplingParams{
		MaxNewTokens: cfg.GenMaxNewTokens,
		Temperature:  cfg.GenTemperature,
		TopK:         cfg.GenTopK,
		TopP:         cfg.GenTopP,
	}, time.Duration(cfg.GenTimeoutSecs)*time.Second, logger)

	registry, err := actions.NewRegistry(
		&actions.AnalyzeSentiment{Classifier: classifier, Events: events},
		&actions.EmpatheticResponse{Selector: selector},
		&actions.CopingStrategy{Selector: selector},
		&actions.ProvideResources{Selector: selector},
		&actions.ActiveListening{Selector: selector},
		&actions.ValidateFeelings{Selector: selector},
		&actions.SessionSummary{Selector: selector},
		&actions.GenerateSupport{Generator: supportGen},
	)
	if err != nil {
		logger.Fatal("action registry", zap.Error(err))
	}

	webhookH := apihttp.NewWebhookHandler(logger, registry, store, turns)
	router := apihttp.NewRouter(logger, webhookH, cfg.JWTSecret)

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, webhook is open")
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting action server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
