package actions

import (
	"context"
	"fmt"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/tracker"
)

// Action names invoked by the dialogue host, one per decision the engine can
// take for a turn.
const (
	NameAnalyzeSentiment   = "action_analyze_sentiment"
	NameEmpatheticResponse = "action_empathetic_response"
	NameCopingStrategy     = "action_provide_coping_strategy"
	NameProvideResources   = "action_provide_resources"
	NameActiveListening    = "action_active_listening"
	NameValidateFeelings   = "action_validate_feelings"
	NameSessionSummary     = "action_session_summary"
	NameGenerateSupport    = "action_generate_support_message"
)

// TurnContext is the per-invocation view of the tracker: the session, the
// latest user message, and the typed slot state read at turn start.
type TurnContext struct {
	SessionID string
	Message   string
	State     tracker.State
}

// SlotEvent is a slot write the host must apply. Only the sentiment analysis
// action emits these, always both slots together.
type SlotEvent struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Dispatcher collects the utterances an action wants delivered to the user.
type Dispatcher struct {
	messages []string
}

func (d *Dispatcher) Utter(text string) {
	d.messages = append(d.messages, text)
}

func (d *Dispatcher) Messages() []string {
	return d.messages
}

// Action is one named decision routine. Run may read collaborators but must
// leave state mutation to the caller via the returned slot events.
type Action interface {
	Name() string
	Run(ctx context.Context, tc TurnContext, d *Dispatcher) ([]SlotEvent, error)
}

// Registry resolves action names for the webhook surface.
type Registry struct {
	byName map[string]Action
}

func NewRegistry(actions ...Action) (*Registry, error) {
	byName := make(map[string]Action, len(actions))
	for _, a := range actions {
		if _, dup := byName[a.Name()]; dup {
			return nil, fmt.Errorf("duplicate action %q", a.Name())
		}
		byName[a.Name()] = a
	}
	return &Registry{byName: byName}, nil
}

func (r *Registry) Get(name string) (Action, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// AnalysisFromSlotEvents reassembles the classifier result carried by slot
// events, for callers that persist or publish after an action ran.
func AnalysisFromSlotEvents(events []SlotEvent) (domain.EmotionLabel, string, bool) {
	var emotion domain.EmotionLabel
	var score string
	found := false
	for _, e := range events {
		switch e.Name {
		case tracker.SlotCurrentEmotion:
			emotion, _ = domain.ParseEmotion(e.Value)
			found = true
		case tracker.SlotSentimentScore:
			score = e.Value
		}
	}
	return emotion, score, found
}
