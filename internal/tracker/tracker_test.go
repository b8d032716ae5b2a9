package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := domain.Analysis{Emotion: domain.EmotionAnxiety, Score: -0.72}
	if err := WriteAnalysis(ctx, store, "s1", a); err != nil {
		t.Fatalf("write: %v", err)
	}

	st := ReadState(ctx, store, "s1")
	if !st.HasEmotion || st.Emotion != domain.EmotionAnxiety {
		t.Fatalf("expected anxiety, got %+v", st)
	}
	if !st.HasScore || st.Score != -0.72 {
		t.Fatalf("expected score -0.72, got %+v", st)
	}
}

func TestReadStateUnsetSession(t *testing.T) {
	st := ReadState(context.Background(), NewMemoryStore(), "missing")
	if st.HasEmotion || st.HasScore {
		t.Fatalf("expected unset state, got %+v", st)
	}
	if st.Emotion != domain.EmotionNeutral {
		t.Fatalf("expected neutral default, got %s", st.Emotion)
	}
}

func TestReadStateMalformedSlots(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	err := store.SetSlots(ctx, "s1", map[string]string{
		SlotCurrentEmotion: "euphoria",
		SlotSentimentScore: "not-a-number",
	})
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	st := ReadState(ctx, store, "s1")
	if st.HasEmotion {
		t.Fatalf("out-of-enum emotion must read as unset, got %+v", st)
	}
	if st.Emotion != domain.EmotionNeutral {
		t.Fatalf("expected neutral fallback, got %s", st.Emotion)
	}
	if st.HasScore {
		t.Fatalf("malformed score must read as unset, got %+v", st)
	}
}

type failingStore struct{}

func (failingStore) GetSlot(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("backend down")
}

func (failingStore) SetSlots(context.Context, string, map[string]string) error {
	return errors.New("backend down")
}

func TestReadStateStoreFailureDegradesToUnset(t *testing.T) {
	st := ReadState(context.Background(), failingStore{}, "s1")
	if st.HasEmotion || st.HasScore {
		t.Fatalf("expected unset state on store failure, got %+v", st)
	}
	if st.Emotion != domain.EmotionNeutral {
		t.Fatalf("expected neutral default, got %s", st.Emotion)
	}
}

func TestMemoryStoreSessionIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_ = WriteAnalysis(ctx, store, "a", domain.Analysis{Emotion: domain.EmotionJoy, Score: 0.9})
	_ = WriteAnalysis(ctx, store, "b", domain.Analysis{Emotion: domain.EmotionFear, Score: -0.4})

	if st := ReadState(ctx, store, "a"); st.Emotion != domain.EmotionJoy {
		t.Fatalf("session a polluted: %+v", st)
	}
	if st := ReadState(ctx, store, "b"); st.Emotion != domain.EmotionFear {
		t.Fatalf("session b polluted: %+v", st)
	}

	store.Reset("a")
	if st := ReadState(ctx, store, "a"); st.HasEmotion {
		t.Fatalf("expected reset session to be unset, got %+v", st)
	}
}
