package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
)

// SubjectEmotionDetected carries one event per classified turn for operator
// analytics. Nothing on the user-facing path depends on it.
const SubjectEmotionDetected = "support.emotion.detected"

// EmotionEvent is the published payload.
type EmotionEvent struct {
	SessionID  string              `json:"session_id"`
	Emotion    domain.EmotionLabel `json:"emotion"`
	Score      float64             `json:"score"`
	Confidence float64             `json:"confidence"`
	Timestamp  time.Time           `json:"timestamp"`
}

type natsConn interface {
	Publish(subject string, data []byte) error
}

// Publisher emits emotion events to NATS. Publish failures are logged and
// swallowed: telemetry must never affect a turn.
type Publisher struct {
	conn   natsConn
	logger *zap.Logger
}

// Connect dials NATS with retry-friendly options and returns a Publisher.
func Connect(url, token string, logger *zap.Logger) (*Publisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &Publisher{conn: nc, logger: logger}, nil
}

// EmotionDetected publishes one classification result.
func (p *Publisher) EmotionDetected(_ context.Context, sessionID string, a domain.Analysis) {
	if p == nil {
		return
	}
	event := EmotionEvent{
		SessionID:  sessionID,
		Emotion:    a.Emotion,
		Score:      a.Score,
		Confidence: a.Confidence,
		Timestamp:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("marshal emotion event", zap.Error(err))
		return
	}
	if err := p.conn.Publish(SubjectEmotionDetected, payload); err != nil {
		p.logger.Warn("publish emotion event", zap.Error(err), zap.String("session_id", sessionID))
	}
}

// Close drains the underlying connection if it owns one.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if nc, ok := p.conn.(*nats.Conn); ok {
		nc.Close()
	}
}
