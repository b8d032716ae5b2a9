package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/config"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/llm"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/sentiment"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/service"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/tracker"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	classifier := sentiment.NewClassifier(sentiment.NewVaderScorer(), logger)
	selector := service.NewResponseSelector(rand.New(rand.NewSource(time.Now().UnixNano())))
	generator := llm.NewHTTPGenerator(cfg.InferenceBaseURL, cfg.InferenceAPIKey, cfg.GenerationModel, logger)
	coarse := llm.NewHTTPCoarseClassifier(cfg.InferenceBaseURL, cfg.InferenceAPIKey, cfg.SentimentModel, logger)
	supportGen := service.NewSupportGenerator(coarse, generator, llm.SamplingParams{
		MaxNewTokens: cfg.GenMaxNewTokens,
		Temperature:  cfg.GenTemperature,
		TopK:         cfg.GenTopK,
		TopP:         cfg.GenTopP,
	}, time.Duration(cfg.GenTimeoutSecs)*time.Second, logger)

	store := tracker.NewMemoryStore()
	sessionID := uuid.NewString()

	fmt.Println("===== Support Chat =====")
	fmt.Println("Commands: /strategy /resources /listen /validate /summary /generate <text> /quit")

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)

		state := tracker.ReadState(ctx, store, sessionID)

		switch {
		case line == "/quit":
			fmt.Println(selector.SessionSummary(state.Emotion, state.HasEmotion))
			return
		case line == "/strategy":
			fmt.Println(selector.SelectStrategy(state.Emotion))
		case line == "/resources":
			fmt.Println(selector.Resources())
		case line == "/listen":
			fmt.Println(selector.ActiveListening())
		case line == "/validate":
			fmt.Println(selector.ValidateFeelings())
		case line == "/summary":
			fmt.Println(selector.SessionSummary(state.Emotion, state.HasEmotion))
		case strings.HasPrefix(line, "/generate"):
			text := strings.TrimSpace(strings.TrimPrefix(line, "/generate"))
			if text == "" {
				text = line
			}
			fmt.Println(supportGen.GenerateSupportiveReply(ctx, text))
		default:
			analysis := classifier.Classify(line)
			if err := tracker.WriteAnalysis(ctx, store, sessionID, analysis); err != nil {
				logger.Warn("state update failed", zap.Error(err))
			}
			fmt.Printf("[%s, confidence %.2f]\n", analysis.Emotion, analysis.Confidence)
			fmt.Println(selector.SelectResponse(analysis.Emotion, analysis.Score, true))
		}
	}
}
