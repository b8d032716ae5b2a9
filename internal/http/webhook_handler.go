package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/actions"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/repository"
	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/tracker"
)

// WebhookHandler serves per-turn action invocations from the dialogue host.
type WebhookHandler struct {
	logger   *zap.Logger
	registry *actions.Registry
	store    tracker.Store
	turns    repository.TurnRepository
}

func NewWebhookHandler(
	logger *zap.Logger,
	registry *actions.Registry,
	store tracker.Store,
	turns repository.TurnRepository,
) *WebhookHandler {
	return &WebhookHandler{
		logger:   logger,
		registry: registry,
		store:    store,
		turns:    turns,
	}
}

type webhookRequest struct {
	NextAction string `json:"next_action" binding:"required"`
	SenderID   string `json:"sender_id"`
	Tracker    struct {
		SenderID      string                 `json:"sender_id"`
		Slots         map[string]interface{} `json:"slots"`
		LatestMessage struct {
			Text string `json:"text"`
		} `json:"latest_message"`
	} `json:"tracker"`
}

type slotEventPayload struct {
	Event string `json:"event"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type responsePayload struct {
	Text string `json:"text"`
}

// Handle runs POST /webhook. The host sends the action name and its tracker
// view; the engine replies with utterances and slot events, and mirrors the
// slot writes into its own store so state survives hosts that do not echo
// slots back.
func (h *WebhookHandler) Handle(c *gin.Context) {
	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid webhook request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	action, ok := h.registry.Get(req.NextAction)
	if !ok {
		h.logger.Warn("unknown action requested", zap.String("action", req.NextAction))
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown action"})
		return
	}

	sessionID := req.Tracker.SenderID
	if sessionID == "" {
		sessionID = req.SenderID
	}
	if sessionID == "" {
		sessionID = "default"
	}

	tc := actions.TurnContext{
		SessionID: sessionID,
		Message:   req.Tracker.LatestMessage.Text,
		State:     h.resolveState(c.Request.Context(), sessionID, req.Tracker.Slots),
	}

	dispatcher := &actions.Dispatcher{}
	events, err := action.Run(c.Request.Context(), tc, dispatcher)
	if err != nil {
		// Degrade, never surface a raw failure to the conversation.
		h.logger.Error("action failed", zap.Error(err), zap.String("action", req.NextAction))
		c.JSON(http.StatusOK, gin.H{
			"events":    []slotEventPayload{},
			"responses": []responsePayload{{Text: "I'm here for you. Would you like to share more?"}},
		})
		return
	}

	if len(events) > 0 {
		slots := make(map[string]string, len(events))
		for _, e := range events {
			slots[e.Name] = e.Value
		}
		if err := h.store.SetSlots(c.Request.Context(), sessionID, slots); err != nil {
			h.logger.Warn("slot store write failed", zap.Error(err), zap.String("session_id", sessionID))
		}
	}

	h.recordTurn(sessionID, req.NextAction, tc.Message, events, dispatcher.Messages())

	eventPayloads := make([]slotEventPayload, 0, len(events))
	for _, e := range events {
		eventPayloads = append(eventPayloads, slotEventPayload{Event: "slot", Name: e.Name, Value: e.Value})
	}
	responses := make([]responsePayload, 0, len(dispatcher.Messages()))
	for _, text := range dispatcher.Messages() {
		responses = append(responses, responsePayload{Text: text})
	}

	c.JSON(http.StatusOK, gin.H{"events": eventPayloads, "responses": responses})
}

// resolveState prefers slot values the host sent. Each engine slot the host
// did not carry (or carried unparseable) falls back to the engine's own
// store, so hosts that round-trip only unrelated slots still see tracked
// state.
func (h *WebhookHandler) resolveState(ctx context.Context, sessionID string, slots map[string]interface{}) tracker.State {
	var st tracker.State
	if raw, ok := slots[tracker.SlotCurrentEmotion].(string); ok {
		st.Emotion, st.HasEmotion = domain.ParseEmotion(raw)
	}
	switch v := slots[tracker.SlotSentimentScore].(type) {
	case float64:
		st.Score, st.HasScore = v, true
	case string:
		if score, err := strconv.ParseFloat(v, 64); err == nil {
			st.Score, st.HasScore = score, true
		}
	}

	if !st.HasEmotion || !st.HasScore {
		stored := tracker.ReadState(ctx, h.store, sessionID)
		if !st.HasEmotion {
			st.Emotion, st.HasEmotion = stored.Emotion, stored.HasEmotion
		}
		if !st.HasScore {
			st.Score, st.HasScore = stored.Score, stored.HasScore
		}
	}
	if !st.HasEmotion {
		st.Emotion = domain.EmotionNeutral
	}
	return st
}

// ListTurns serves the operator transcript for one session, oldest first.
func (h *WebhookHandler) ListTurns(c *gin.Context) {
	sessionID := c.Param("session_id")
	turns, err := h.turns.ListBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("transcript read failed", zap.Error(err), zap.String("session_id", sessionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transcript unavailable"})
		return
	}
	if turns == nil {
		turns = []domain.Turn{}
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "turns": turns})
}

// recordTurn persists the transcript record off the request path; failures
// are operator-visible only.
func (h *WebhookHandler) recordTurn(sessionID, action, message string, events []actions.SlotEvent, replies []string) {
	turn := domain.Turn{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Action:      action,
		UserMessage: message,
		CreatedAt:   time.Now().UTC(),
	}
	if emotion, score, ok := actions.AnalysisFromSlotEvents(events); ok {
		turn.Emotion = emotion
		if parsed, err := strconv.ParseFloat(score, 64); err == nil {
			turn.Score = parsed
		}
	}
	if len(replies) > 0 {
		turn.Reply = replies[0]
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.turns.Create(ctx, turn); err != nil {
			h.logger.Warn("turn persist failed", zap.Error(err), zap.String("session_id", sessionID))
		}
	}()
}
