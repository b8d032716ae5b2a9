package llm

import "context"

// MockGenerator allows tests to run without a hosted model.
type MockGenerator struct {
	Response   string
	Err        error
	LastPrompt string
	LastParams SamplingParams
}

func (m *MockGenerator) Generate(_ context.Context, prompt string, params SamplingParams) (string, error) {
	m.LastPrompt = prompt
	m.LastParams = params
	return m.Response, m.Err
}

// MockCoarseClassifier allows tests to run without a hosted classifier.
type MockCoarseClassifier struct {
	Label    CoarseLabel
	Err      error
	LastText string
}

func (m *MockCoarseClassifier) ClassifySentiment(_ context.Context, text string) (CoarseLabel, error) {
	m.LastText = text
	if m.Err != nil {
		return CoarseNeutral, m.Err
	}
	return m.Label, nil
}
