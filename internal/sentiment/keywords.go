package sentiment

import "github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"

// emotionKeywords maps each emotion to its trigger phrases. Phrases are
// matched case-insensitively as substrings and need not be unique to one
// emotion; overlaps are resolved by the count tie-break in Classify.
var emotionKeywords = map[domain.EmotionLabel][]string{
	domain.EmotionSadness: {
		"sad", "depressed", "unhappy", "miserable", "hopeless", "cry", "crying",
		"tears", "grief", "heartbroken", "devastated", "empty", "worthless", "down",
	},
	domain.EmotionAnxiety: {
		"anxious", "worried", "nervous", "panic", "afraid", "restless", "uneasy",
		"tense", "overthinking", "racing", "dread", "overwhelmed", "freaking",
	},
	domain.EmotionStress: {
		"stressed", "pressure", "overwhelmed", "exhausted", "burnout", "burnt out",
		"overworked", "deadline", "too much", "drowning", "swamped",
	},
	domain.EmotionLoneliness: {
		"lonely", "alone", "isolated", "nobody", "no one", "abandoned",
		"disconnected", "invisible", "forgotten", "outsider",
	},
	domain.EmotionAnger: {
		"angry", "furious", "mad", "frustrated", "irritated", "annoyed", "rage",
		"hate", "pissed", "fed up", "enraged",
	},
	domain.EmotionFear: {
		"scared", "terrified", "frightened", "fear", "fearful", "horrified",
		"threatened", "uncertain", "insecure",
	},
	domain.EmotionJoy: {
		"happy", "joyful", "excited", "grateful", "blessed", "wonderful", "amazing",
		"great", "fantastic", "good", "positive", "hopeful", "content",
	},
}
