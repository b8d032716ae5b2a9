package config

import "github.com/caarlos0/env/v10"

// Config centralizes service configuration.
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	JWTSecret string `env:"JWT_SECRET"`

	// Hosted model inference (generation + coarse sentiment).
	InferenceBaseURL string  `env:"INFERENCE_BASE_URL" envDefault:"https://api-inference.huggingface.co"`
	InferenceAPIKey  string  `env:"INFERENCE_API_KEY"`
	GenerationModel  string  `env:"GENERATION_MODEL" envDefault:"gpt2-large"`
	SentimentModel   string  `env:"SENTIMENT_MODEL" envDefault:"distilbert-base-uncased-finetuned-sst-2-english"`
	GenMaxNewTokens  int     `env:"GEN_MAX_NEW_TOKENS" envDefault:"60"`
	GenTemperature   float64 `env:"GEN_TEMPERATURE" envDefault:"0.9"`
	GenTopK          int     `env:"GEN_TOP_K" envDefault:"50"`
	GenTopP          float64 `env:"GEN_TOP_P" envDefault:"0.95"`
	GenTimeoutSecs   int     `env:"GEN_TIMEOUT_SECONDS" envDefault:"20"`

	// Optional infrastructure; each feature turns off when unset.
	DatabaseURL     string `env:"DATABASE_URL"`
	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" envDefault:"24"`
	NATSURL         string `env:"NATS_URL"`
	NATSToken       string `env:"NATS_TOKEN"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
