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

// CoarseLabel is the ternary polarity returned by the hosted sentiment
// classifier. Anything the backend reports outside POSITIVE/NEGATIVE maps to
// CoarseNeutral.
type CoarseLabel string

const (
	CoarsePositive CoarseLabel = "POSITIVE"
	CoarseNegative CoarseLabel = "NEGATIVE"
	CoarseNeutral  CoarseLabel = "NEUTRAL"
)

// CoarseClassifier labels the overall polarity of an utterance. Distinct
// collaborator from the valence scorer: it backs the generative path only.
type CoarseClassifier interface {
	ClassifySentiment(ctx context.Context, text string) (CoarseLabel, error)
}

// HTTPCoarseClassifier calls a hosted classification endpoint returning
// ranked {label, score} candidates.
type HTTPCoarseClassifier struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPCoarseClassifier(baseURL, apiKey, model string, logger *zap.Logger) *HTTPCoarseClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPCoarseClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *HTTPCoarseClassifier) ClassifySentiment(ctx context.Context, text string) (CoarseLabel, error) {
	bodyBytes, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return CoarseNeutral, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return CoarseNeutral, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return CoarseNeutral, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return CoarseNeutral, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("sentiment classifier error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return CoarseNeutral, fmt.Errorf("sentiment http error: status=%d", resp.StatusCode)
	}

	// Responses arrive as [[{label, score}, ...]] ordered by score.
	var ranked [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(respBody, &ranked); err != nil {
		return CoarseNeutral, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(ranked) == 0 || len(ranked[0]) == 0 {
		return CoarseNeutral, fmt.Errorf("sentiment empty response")
	}

	switch strings.ToUpper(ranked[0][0].Label) {
	case string(CoarsePositive):
		return CoarsePositive, nil
	case string(CoarseNegative):
		return CoarseNegative, nil
	default:
		return CoarseNeutral, nil
	}
}
