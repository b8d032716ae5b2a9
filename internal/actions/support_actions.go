package actions

import (
	"context"
	"strconv"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/sentiment"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/service"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/tracker"
)

// EventSink receives classification results for operator analytics. A nil
// sink is valid and means telemetry is disabled.
type EventSink interface {
	EmotionDetected(ctx context.Context, sessionID string, a domain.Analysis)
}

// AnalyzeSentiment classifies the latest message and emits both slot writes.
// It is the only action that changes conversation state.
type AnalyzeSentiment struct {
	Classifier *sentiment.Classifier
	Events     EventSink
}

func (a *AnalyzeSentiment) Name() string { return NameAnalyzeSentiment }

func (a *AnalyzeSentiment) Run(ctx context.Context, tc TurnContext, _ *Dispatcher) ([]SlotEvent, error) {
	analysis := a.Classifier.Classify(tc.Message)
	if a.Events != nil {
		a.Events.EmotionDetected(ctx, tc.SessionID, analysis)
	}
	return []SlotEvent{
		{Name: tracker.SlotCurrentEmotion, Value: string(analysis.Emotion)},
		{Name: tracker.SlotSentimentScore, Value: strconv.FormatFloat(analysis.Score, 'f', -1, 64)},
	}, nil
}

// EmpatheticResponse utters one per-emotion template, escalated on strongly
// negative valence.
type EmpatheticResponse struct {
	Selector *service.ResponseSelector
}

func (a *EmpatheticResponse) Name() string { return NameEmpatheticResponse }

func (a *EmpatheticResponse) Run(_ context.Context, tc TurnContext, d *Dispatcher) ([]SlotEvent, error) {
	d.Utter(a.Selector.SelectResponse(tc.State.Emotion, tc.State.Score, tc.State.HasScore))
	return nil, nil
}

// CopingStrategy utters the coping document for the current emotion.
type CopingStrategy struct {
	Selector *service.ResponseSelector
}

func (a *CopingStrategy) Name() string { return NameCopingStrategy }

func (a *CopingStrategy) Run(_ context.Context, tc TurnContext, d *Dispatcher) ([]SlotEvent, error) {
	d.Utter(a.Selector.SelectStrategy(tc.State.Emotion))
	return nil, nil
}

// ProvideResources utters the fixed hotline and referral block.
type ProvideResources struct {
	Selector *service.ResponseSelector
}

func (a *ProvideResources) Name() string { return NameProvideResources }

func (a *ProvideResources) Run(_ context.Context, _ TurnContext, d *Dispatcher) ([]SlotEvent, error) {
	d.Utter(a.Selector.Resources())
	return nil, nil
}

// ActiveListening utters a listening acknowledgment; no emotion dependency.
type ActiveListening struct {
	Selector *service.ResponseSelector
}

func (a *ActiveListening) Name() string { return NameActiveListening }

func (a *ActiveListening) Run(_ context.Context, _ TurnContext, d *Dispatcher) ([]SlotEvent, error) {
	d.Utter(a.Selector.ActiveListening())
	return nil, nil
}

// ValidateFeelings utters a validation acknowledgment; no emotion dependency.
type ValidateFeelings struct {
	Selector *service.ResponseSelector
}

func (a *ValidateFeelings) Name() string { return NameValidateFeelings }

func (a *ValidateFeelings) Run(_ context.Context, _ TurnContext, d *Dispatcher) ([]SlotEvent, error) {
	d.Utter(a.Selector.ValidateFeelings())
	return nil, nil
}

// SessionSummary utters the closing template with the current emotion.
type SessionSummary struct {
	Selector *service.ResponseSelector
}

func (a *SessionSummary) Name() string { return NameSessionSummary }

func (a *SessionSummary) Run(_ context.Context, tc TurnContext, d *Dispatcher) ([]SlotEvent, error) {
	d.Utter(a.Selector.SessionSummary(tc.State.Emotion, tc.State.HasEmotion))
	return nil, nil
}

// GenerateSupport utters a sentiment-conditioned generated reply.
type GenerateSupport struct {
	Generator *service.SupportGenerator
}

func (a *GenerateSupport) Name() string { return NameGenerateSupport }

func (a *GenerateSupport) Run(ctx context.Context, tc TurnContext, d *Dispatcher) ([]SlotEvent, error) {
	d.Utter(a.Generator.GenerateSupportiveReply(ctx, tc.Message))
	return nil, nil
}
