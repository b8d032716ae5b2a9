package domain

import "time"

// Turn is an operator-side transcript record of one webhook invocation. It is
// telemetry only: nothing on the user-facing path reads it back.
type Turn struct {
	ID          string       `json:"id"`
	SessionID   string       `json:"session_id"`
	Action      string       `json:"action"`
	UserMessage string       `json:"user_message"`
	Emotion     EmotionLabel `json:"emotion,omitempty"`
	Score       float64      `json:"score"`
	Reply       string       `json:"reply"`
	CreatedAt   time.Time    `json:"created_at"`
}
