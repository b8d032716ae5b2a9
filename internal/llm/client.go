package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SamplingParams are the decoding knobs passed through to the hosted
// generation model. Zero values are omitted so the backend's defaults apply.
type SamplingParams struct {
	MaxNewTokens int     `json:"max_new_tokens,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
	TopK         int     `json:"top_k,omitempty"`
	TopP         float64 `json:"top_p,omitempty"`
}

// Generator produces a continuation for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, params SamplingParams) (string, error)
}

// HTTPGenerator implements Generator against a hosted text-generation
// endpoint (HF inference style JSON).
type HTTPGenerator struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPGenerator builds a client for {baseURL}/models/{model}.
func NewHTTPGenerator(baseURL, apiKey, model string, logger *zap.Logger) *HTTPGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (g *HTTPGenerator) Generate(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	reqBody := generateRequest{
		Inputs:     prompt,
		Parameters: params,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := g.baseURL + "/models/" + g.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		g.logger.Warn("generation error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return "", fmt.Errorf("generation http error: status=%d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if gr.Error != "" {
		return "", fmt.Errorf("generation api error: %s", gr.Error)
	}
	if len(gr.Outputs) == 0 {
		return "", fmt.Errorf("generation empty response")
	}
	return gr.Outputs[0].GeneratedText, nil
}

type generateRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters SamplingParams `json:"parameters"`
}

type generatedOutput struct {
	GeneratedText string `json:"generated_text"`
}

// generateResponse tolerates both shapes the inference API uses: a list of
// outputs on success and an error object on failure.
type generateResponse struct {
	Outputs []generatedOutput
	Error   string
}

func (r *generateResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &r.Outputs)
	}
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &e); err != nil {
		return err
	}
	r.Error = e.Error
	return nil
}
