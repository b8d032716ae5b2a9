package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
)

// Scorer turns raw text into a continuous valence signal. Implementations
// must be safe for concurrent calls from multiple sessions.
type Scorer interface {
	Score(text string) (domain.SentimentReading, error)
}

// VaderScorer scores valence with the VADER lexicon. The analyzer is built
// once at construction; scoring is read-only afterwards.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) Score(text string) (domain.SentimentReading, error) {
	scores := s.analyzer.PolarityScores(text)
	return domain.SentimentReading{
		Compound: scores.Compound,
		Positive: scores.Positive,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
	}, nil
}
