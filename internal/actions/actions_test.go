package actions

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/sentiment"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/service"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/tracker"
)

type stubScorer struct {
	reading domain.SentimentReading
}

func (s stubScorer) Score(string) (domain.SentimentReading, error) {
	return s.reading, nil
}

type recordingSink struct {
	sessionID string
	analysis  domain.Analysis
	calls     int
}

func (r *recordingSink) EmotionDetected(_ context.Context, sessionID string, a domain.Analysis) {
	r.sessionID = sessionID
	r.analysis = a
	r.calls++
}

func TestAnalyzeSentimentEmitsBothSlots(t *testing.T) {
	classifier := sentiment.NewClassifier(stubScorer{domain.SentimentReading{Compound: -0.72}}, nil)
	sink := &recordingSink{}
	action := &AnalyzeSentiment{Classifier: classifier, Events: sink}

	events, err := action.Run(context.Background(), TurnContext{
		SessionID: "s1",
		Message:   "I feel so alone and nobody understands me",
	}, &Dispatcher{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected both slots in one event batch, got %d", len(events))
	}

	emotion, score, ok := AnalysisFromSlotEvents(events)
	if !ok || emotion != domain.EmotionLoneliness {
		t.Fatalf("expected loneliness slot, got %s ok=%v", emotion, ok)
	}
	if score != "-0.72" {
		t.Fatalf("expected score slot -0.72, got %q", score)
	}
	if sink.calls != 1 || sink.analysis.Emotion != domain.EmotionLoneliness || sink.sessionID != "s1" {
		t.Fatalf("telemetry sink not invoked correctly: %+v", sink)
	}
}

func TestAnalyzeSentimentEmptyMessage(t *testing.T) {
	classifier := sentiment.NewClassifier(stubScorer{}, nil)
	action := &AnalyzeSentiment{Classifier: classifier}

	events, err := action.Run(context.Background(), TurnContext{SessionID: "s1"}, &Dispatcher{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	emotion, score, ok := AnalysisFromSlotEvents(events)
	if !ok || emotion != domain.EmotionNeutral {
		t.Fatalf("expected neutral for empty message, got %s", emotion)
	}
	if score != "0" {
		t.Fatalf("expected zero score, got %q", score)
	}
}

func TestEmpatheticResponseUsesTrackedState(t *testing.T) {
	selector := service.NewResponseSelector(rand.New(rand.NewSource(1)))
	action := &EmpatheticResponse{Selector: selector}

	d := &Dispatcher{}
	_, err := action.Run(context.Background(), TurnContext{
		State: tracker.State{
			Emotion:    domain.EmotionLoneliness,
			HasEmotion: true,
			Score:      -0.72,
			HasScore:   true,
		},
	}, d)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	msgs := d.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected one utterance, got %d", len(msgs))
	}
	if !strings.HasPrefix(msgs[0], service.EscalationPrefix) {
		t.Fatalf("score -0.72 must escalate: %q", msgs[0])
	}
	if !strings.Contains(msgs[0], "lonel") && !strings.Contains(msgs[0], "alone") && !strings.Contains(msgs[0], "connection") {
		t.Fatalf("expected a loneliness response, got %q", msgs[0])
	}
}

func TestStatelessActionsAlwaysUtter(t *testing.T) {
	selector := service.NewResponseSelector(rand.New(rand.NewSource(2)))
	tc := TurnContext{State: tracker.State{Emotion: domain.EmotionNeutral}}

	stateless := []Action{
		&CopingStrategy{Selector: selector},
		&ProvideResources{Selector: selector},
		&ActiveListening{Selector: selector},
		&ValidateFeelings{Selector: selector},
		&SessionSummary{Selector: selector},
	}
	for _, a := range stateless {
		d := &Dispatcher{}
		events, err := a.Run(context.Background(), tc, d)
		if err != nil {
			t.Fatalf("%s: %v", a.Name(), err)
		}
		if len(events) != 0 {
			t.Fatalf("%s must not write slots", a.Name())
		}
		if len(d.Messages()) != 1 || d.Messages()[0] == "" {
			t.Fatalf("%s must utter exactly one non-empty message", a.Name())
		}
	}
}

func TestRegistryResolution(t *testing.T) {
	selector := service.NewResponseSelector(rand.New(rand.NewSource(1)))
	reg, err := NewRegistry(
		&ActiveListening{Selector: selector},
		&ValidateFeelings{Selector: selector},
	)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	if _, ok := reg.Get(NameActiveListening); !ok {
		t.Fatalf("expected registered action")
	}
	if _, ok := reg.Get("action_unknown"); ok {
		t.Fatalf("unknown action must not resolve")
	}

	_, err = NewRegistry(
		&ActiveListening{Selector: selector},
		&ActiveListening{Selector: selector},
	)
	if err == nil {
		t.Fatalf("expected duplicate action error")
	}
}
