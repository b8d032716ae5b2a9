package sentiment

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
)

// Valence thresholds for the no-keyword fallback branch.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Classifier combines keyword-based emotion detection with the valence
// signal to produce a single label and a confidence score. It holds no
// per-session state and is safe to share.
type Classifier struct {
	scorer Scorer
	logger *zap.Logger
}

func NewClassifier(scorer Scorer, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{scorer: scorer, logger: logger}
}

// Classify analyzes one utterance. Keyword counts dominate: the emotion with
// the strictly highest number of distinct trigger phrases present wins, ties
// resolved by domain.ClassifierPriority. Without any keyword hit the label
// falls back to the compound valence thresholds. Confidence is abs(compound)
// on every branch, even when the label came from keywords.
func (c *Classifier) Classify(text string) domain.Analysis {
	reading, err := c.scorer.Score(text)
	if err != nil {
		// Degrade to a zero reading; a scorer outage must never surface.
		c.logger.Warn("valence scorer failed, using zero reading", zap.Error(err))
		reading = domain.SentimentReading{Neutral: 1}
	}

	lower := strings.ToLower(text)
	counts := make(map[domain.EmotionLabel]int, len(emotionKeywords))
	for emotion, phrases := range emotionKeywords {
		n := 0
		for _, phrase := range phrases {
			if strings.Contains(lower, phrase) {
				n++
			}
		}
		if n > 0 {
			counts[emotion] = n
		}
	}

	var emotion domain.EmotionLabel
	switch {
	case len(counts) > 0:
		emotion = topEmotion(counts)
	case reading.Compound >= positiveThreshold:
		emotion = domain.EmotionJoy
	case reading.Compound <= negativeThreshold:
		emotion = domain.EmotionSadness
	default:
		emotion = domain.EmotionNeutral
	}

	return domain.Analysis{
		Emotion:    emotion,
		Score:      reading.Compound,
		Confidence: math.Abs(reading.Compound),
		Reading:    reading,
	}
}

// topEmotion picks the highest-count emotion, walking the fixed priority
// order so equal counts resolve deterministically.
func topEmotion(counts map[domain.EmotionLabel]int) domain.EmotionLabel {
	best := domain.EmotionNeutral
	bestCount := 0
	for _, emotion := range domain.ClassifierPriority {
		if n := counts[emotion]; n > bestCount {
			best = emotion
			bestCount = n
		}
	}
	return best
}
