package domain

import "strings"

// EmotionLabel is one discrete emotion category from the closed set used to
// route response selection.
type EmotionLabel string

const (
	EmotionSadness    EmotionLabel = "sadness"
	EmotionAnxiety    EmotionLabel = "anxiety"
	EmotionStress     EmotionLabel = "stress"
	EmotionLoneliness EmotionLabel = "loneliness"
	EmotionAnger      EmotionLabel = "anger"
	EmotionFear       EmotionLabel = "fear"
	EmotionJoy        EmotionLabel = "joy"
	EmotionNeutral    EmotionLabel = "neutral"
)

// ClassifierPriority is the tie-break order when several emotions reach the
// same keyword count. Declaration order of the keyword table; neutral never
// competes because it has no keywords.
var ClassifierPriority = []EmotionLabel{
	EmotionSadness,
	EmotionAnxiety,
	EmotionStress,
	EmotionLoneliness,
	EmotionAnger,
	EmotionFear,
	EmotionJoy,
}

// ParseEmotion validates a raw slot value against the closed set. Unknown or
// empty values resolve to neutral with ok=false so callers can branch on the
// unset case without ever holding an out-of-enum label.
func ParseEmotion(raw string) (EmotionLabel, bool) {
	switch EmotionLabel(strings.ToLower(strings.TrimSpace(raw))) {
	case EmotionSadness:
		return EmotionSadness, true
	case EmotionAnxiety:
		return EmotionAnxiety, true
	case EmotionStress:
		return EmotionStress, true
	case EmotionLoneliness:
		return EmotionLoneliness, true
	case EmotionAnger:
		return EmotionAnger, true
	case EmotionFear:
		return EmotionFear, true
	case EmotionJoy:
		return EmotionJoy, true
	case EmotionNeutral:
		return EmotionNeutral, true
	default:
		return EmotionNeutral, false
	}
}

// SentimentReading is the per-turn output of the valence scorer. Compound is
// in [-1, 1]; the three magnitudes sum to roughly 1.
type SentimentReading struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Analysis is the classifier result for one utterance. Score carries the raw
// compound valence; Confidence is its absolute value regardless of whether
// the label came from keywords or from valence thresholds.
type Analysis struct {
	Emotion    EmotionLabel     `json:"emotion"`
	Score      float64          `json:"score"`
	Confidence float64          `json:"confidence"`
	Reading    SentimentReading `json:"reading"`
}
