package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pdf-summarizer/internal/domain"
)

const summarizePrompt = "Summarize the following text in a few short sentences. Reply with the summary only.\n\n"

// OllamaProvider serves models through a local Ollama daemon. Loading pulls
// the model so later generate calls hit warm weights.
type OllamaProvider struct {
	baseURL string
	client  *http.Client
}

// NewOllamaProvider creates a provider against the daemon at baseURL.
func NewOllamaProvider(baseURL string) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &OllamaProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *OllamaProvider) Name() string { return "ollama" }

// Load pulls the model into the daemon.
func (p *OllamaProvider) Load(ctx context.Context, modelID string) (domain.SummaryModel, error) {
	body, err := json.Marshal(map[string]any{"name": modelID, "stream": false})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/pull", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama pull returned status %d", resp.StatusCode)
	}

	return &ollamaModel{provider: p, modelID: modelID}, nil
}

type ollamaModel struct {
	provider *OllamaProvider
	modelID  string
}

// Summarize generates at temperature 0 so identical inputs produce identical
// output.
func (m *ollamaModel) Summarize(ctx context.Context, text string) (string, error) {
	reqBody := map[string]any{
		"model":  m.modelID,
		"prompt": summarizePrompt + text,
		"stream": false,
		"options": map[string]any{
			"temperature": 0,
			"num_predict": 256,
		},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.provider.baseURL+"/api/generate", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.provider.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama generate returned status %d", resp.StatusCode)
	}

	var raw struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	return raw.Response, nil
}
