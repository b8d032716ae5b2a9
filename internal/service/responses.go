package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"
)

// EscalationThreshold is the valence below which an empathetic response gets
// the intensity acknowledgment. Strictly below: exactly -0.6 does not escalate.
const EscalationThreshold = -0.6

// EscalationPrefix is prepended to empathetic responses on strongly negative
// valence. Empathetic path only, never strategies or resources.
const EscalationPrefix = "I can sense you're really struggling right now. "

var empatheticResponses = map[domain.EmotionLabel][]string{
	domain.EmotionSadness: {
		"I'm truly sorry you're experiencing this pain. Your feelings are completely valid, and it takes courage to share them.",
		"It sounds like you're going through a really difficult time. I'm here to listen and support you through this.",
		"I hear the sadness in your words. Please know that you don't have to face this alone.",
	},
	domain.EmotionAnxiety: {
		"I understand that anxiety can feel overwhelming. Let's take a moment together. You're safe here with me.",
		"It sounds like your mind is carrying a heavy load right now. Would you like to try a calming technique together?",
		"Anxiety can make everything feel urgent and scary. Let's slow down and breathe together.",
	},
	domain.EmotionStress: {
		"It sounds like you're under tremendous pressure. Remember, it's okay to take things one step at a time.",
		"I hear how overwhelmed you're feeling. Your well-being matters more than any deadline.",
		"Stress can feel like it's consuming everything. Let's find a way to lighten that load together.",
	},
	domain.EmotionLoneliness: {
		"Feeling lonely is incredibly painful. I want you to know that reaching out like this shows real strength.",
		"Loneliness can feel so isolating, but you're not alone right now. I'm here with you.",
		"I hear you, and I'm glad you chose to talk. Human connection matters, and so do you.",
	},
	domain.EmotionAnger: {
		"Your frustration is completely understandable. It's okay to feel angry — your emotions are telling you something important.",
		"I can hear how upset you are. Sometimes anger is our heart's way of saying something needs to change.",
		"It's clear something has really affected you. I'm here to listen without judgment.",
	},
	domain.EmotionFear: {
		"Fear can feel paralyzing, but you've taken a brave step by reaching out. I'm here with you.",
		"It's completely natural to feel afraid, especially when things feel uncertain. You're not alone.",
		"I hear that you're scared. Whatever happens, we can face this moment together.",
	},
	domain.EmotionJoy: {
		"I'm so glad to hear you're feeling good! It's wonderful to celebrate these positive moments.",
		"That's beautiful to hear! Positive feelings are precious — thank you for sharing them with me.",
		"Your happiness is contagious! I'd love to hear more about what's bringing you joy.",
	},
	domain.EmotionNeutral: {
		"I'm here whenever you want to talk. Is there something specific on your mind?",
		"Thank you for reaching out. I'm here to listen — whatever you'd like to share.",
		"I'm here for you. Feel free to share whatever's on your heart.",
	},
}

var activeListeningResponses = []string{
	"I'm here, and I'm listening. Take all the time you need — there's no rush.",
	"I'm giving you my full attention. Please share whatever feels right.",
	"This is your space to express yourself freely. I'm here to listen without judgment.",
	"I hear you. Sometimes we just need someone to listen. Go ahead, I'm here.",
	"You have my undivided attention. Share what's on your heart.",
}

var validationResponses = []string{
	"Your feelings are completely valid. Whatever you're experiencing is real and matters.",
	"It's okay to feel the way you feel. There's no right or wrong way to experience emotions.",
	"Thank you for trusting me with your feelings. They deserve to be heard and acknowledged.",
	"What you're feeling makes complete sense given what you're going through.",
	"Your emotions are valid. It takes courage to acknowledge and share them.",
}

// ResponseSelector picks supportive replies per emotion. The random source is
// injected so tests can supply a deterministic one; the mutex exists because
// rand.Rand is not safe for the concurrent sessions sharing this selector.
type ResponseSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponseSelector builds a selector. A nil rng gets a time-seeded source.
func NewResponseSelector(rng *rand.Rand) *ResponseSelector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ResponseSelector{rng: rng}
}

func (s *ResponseSelector) pick(candidates []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rng.Intn(len(candidates))]
}

// SelectResponse returns one empathetic reply for the emotion, uniformly at
// random; repeats across turns are allowed. Emotions outside the table fall
// back to the neutral list. With hasScore set and score strictly below the
// escalation threshold, the intensity prefix is prepended.
func (s *ResponseSelector) SelectResponse(emotion domain.EmotionLabel, score float64, hasScore bool) string {
	candidates, ok := empatheticResponses[emotion]
	if !ok {
		candidates = empatheticResponses[domain.EmotionNeutral]
	}
	response := s.pick(candidates)

	if hasScore && score < EscalationThreshold {
		response = EscalationPrefix + response
	}
	return response
}

// ActiveListening returns one of the fixed listening acknowledgments.
func (s *ResponseSelector) ActiveListening() string {
	return s.pick(activeListeningResponses)
}

// ValidateFeelings returns one of the fixed validation acknowledgments.
func (s *ResponseSelector) ValidateFeelings() string {
	return s.pick(validationResponses)
}

// SessionSummary interpolates the current emotion into the fixed closing
// template. With hasEmotion unset a generic placeholder is used.
func (s *ResponseSelector) SessionSummary(emotion domain.EmotionLabel, hasEmotion bool) string {
	subject := "your feelings"
	if hasEmotion {
		subject = string(emotion)
	}
	return `Thank you for sharing with me today. Here's what I want you to remember:

💙 **You matter.** Your feelings about ` + subject + ` are valid.
💪 **You're not alone.** Reaching out takes courage, and you did that today.
🌱 **Small steps count.** Even talking about how you feel is progress.
🔄 **I'm always here.** Come back anytime you need support.

Take care of yourself. You deserve kindness — especially from yourself. 💙`
}
