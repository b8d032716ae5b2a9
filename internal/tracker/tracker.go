package tracker

import (
	"context"
	"strconv"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
)

// Slot names owned by the dialogue host. The engine only ever touches these
// two; everything else in the tracker is opaque.
const (
	SlotCurrentEmotion = "current_emotion"
	SlotSentimentScore = "sentiment_score"
)

// Store persists per-session slots. SetSlots writes all given slots in one
// call so emotion and score are never observed half-updated.
type Store interface {
	GetSlot(ctx context.Context, sessionID, name string) (string, bool, error)
	SetSlots(ctx context.Context, sessionID string, slots map[string]string) error
}

// State is the typed per-session view the response policy reads.
type State struct {
	Emotion    domain.EmotionLabel
	HasEmotion bool
	Score      float64
	HasScore   bool
}

// ReadState loads both engine slots. Missing or malformed values resolve to
// the unset side of State; store errors degrade the same way so a state
// backend outage never breaks response selection.
func ReadState(ctx context.Context, store Store, sessionID string) State {
	var st State

	raw, ok, err := store.GetSlot(ctx, sessionID, SlotCurrentEmotion)
	if err == nil && ok {
		st.Emotion, st.HasEmotion = domain.ParseEmotion(raw)
	}
	if !st.HasEmotion {
		st.Emotion = domain.EmotionNeutral
	}

	raw, ok, err = store.GetSlot(ctx, sessionID, SlotSentimentScore)
	if err == nil && ok {
		if score, parseErr := strconv.ParseFloat(raw, 64); parseErr == nil {
			st.Score = score
			st.HasScore = true
		}
	}
	return st
}

// WriteAnalysis stores the classifier result for a session, both slots
// together.
func WriteAnalysis(ctx context.Context, store Store, sessionID string, a domain.Analysis) error {
	return store.SetSlots(ctx, sessionID, map[string]string{
		SlotCurrentEmotion: string(a.Emotion),
		SlotSentimentScore: strconv.FormatFloat(a.Score, 'f', -1, 64),
	})
}
