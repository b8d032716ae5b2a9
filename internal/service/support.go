package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/llm"
)

// minGeneratedRunes is the quality gate: anything shorter is discarded in
// favor of the fixed fallback.
const minGeneratedRunes = 15

// GenerationFallback replaces empty, too-short, or failed generations. A
// model failure is never user-visible as an error, only as this degraded but
// supportive reply.
const GenerationFallback = "I'm here for you. You are not alone, and I want to support you. Would you like to share more?"

// Lead-in sentences keyed by the coarse polarity of the utterance.
const (
	LeadInNegative = "I'm really sorry you're going through this. "
	LeadInPositive = "That's wonderful to hear! "
	LeadInNeutral  = "Thank you for sharing that with me. "
)

// SupportGenerator builds a sentiment-conditioned prompt, invokes the hosted
// generation model, and gates its output.
type SupportGenerator struct {
	classifier llm.CoarseClassifier
	generator  llm.Generator
	params     llm.SamplingParams
	timeout    time.Duration
	logger     *zap.Logger
}

func NewSupportGenerator(
	classifier llm.CoarseClassifier,
	generator llm.Generator,
	params llm.SamplingParams,
	timeout time.Duration,
	logger *zap.Logger,
) *SupportGenerator {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupportGenerator{
		classifier: classifier,
		generator:  generator,
		params:     params,
		timeout:    timeout,
		logger:     logger,
	}
}

// GenerateSupportiveReply returns lead-in + generated (or fallback) text.
// Every failure mode degrades to the fallback sentence; this method never
// returns an error or an empty string.
func (g *SupportGenerator) GenerateSupportiveReply(ctx context.Context, text string) string {
	label, err := g.classifier.ClassifySentiment(ctx, text)
	if err != nil {
		g.logger.Warn("coarse sentiment classification failed", zap.Error(err))
		label = llm.CoarseNeutral
	}

	var leadIn string
	switch label {
	case llm.CoarseNegative:
		leadIn = LeadInNegative
	case llm.CoarsePositive:
		leadIn = LeadInPositive
	default:
		leadIn = LeadInNeutral
	}

	prompt := buildSupportPrompt(text)

	genCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.generator.Generate(genCtx, prompt, g.params)
	if err != nil {
		g.logger.Warn("generation failed, using fallback", zap.Error(err))
		return leadIn + GenerationFallback
	}

	cleaned := cleanGeneratedText(raw, prompt)
	if utf8.RuneCountInString(cleaned) < minGeneratedRunes {
		g.logger.Info("generated text below quality gate, using fallback",
			zap.Int("length", utf8.RuneCountInString(cleaned)),
		)
		cleaned = GenerationFallback
	}

	return leadIn + cleaned
}

// buildSupportPrompt embeds the raw utterance in a fixed instruction.
func buildSupportPrompt(text string) string {
	return fmt.Sprintf(
		"The user said: %q\nReply with a kind, understanding and encouraging message that helps them feel heard:",
		text,
	)
}

// cleanGeneratedText strips every echoed copy of the prompt (some models
// return the full input sequence, and can repeat it mid-output) and
// surrounding whitespace.
func cleanGeneratedText(raw, prompt string) string {
	s := strings.TrimSpace(raw)
	if prompt != "" {
		s = strings.ReplaceAll(s, prompt, "")
	}
	return strings.TrimSpace(s)
}
