package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pdf-summarizer/internal/domain"
)

// Generation bounds carried over from the inference sidecar's defaults.
const (
	hfMaxSummaryTokens = 150
	hfMinSummaryTokens = 40
)

// HFProvider serves transformer summarization models (t5-small and friends)
// through an HTTP inference sidecar. Loading a model asks the sidecar to pull
// the weights into memory so the first summarize call doesn't pay for it.
type HFProvider struct {
	baseURL string
	client  *http.Client
}

// NewHFProvider creates a provider for the inference sidecar at baseURL.
func NewHFProvider(baseURL string) *HFProvider {
	return &HFProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *HFProvider) Name() string { return "hf" }

// Load asks the sidecar to load the model weights. A failure here means the
// model is unavailable (download failure, unknown id) and is surfaced as such.
func (p *HFProvider) Load(ctx context.Context, modelID string) (domain.SummaryModel, error) {
	loadURL := strings.Replace(p.baseURL, "/summarize", "/load-model", 1)
	body, err := json.Marshal(map[string]string{"model": modelID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loadURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference sidecar unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference sidecar returned status %d for model load", resp.StatusCode)
	}

	return &hfModel{provider: p, modelID: modelID}, nil
}

type hfModel struct {
	provider *HFProvider
	modelID  string
}

// Summarize runs one greedy summarization pass on the sidecar.
func (m *hfModel) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"text":       text,
		"model":      m.modelID,
		"max_length": hfMaxSummaryTokens,
		"min_length": hfMinSummaryTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.provider.baseURL, bytes.NewReader(body))
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
		return "", fmt.Errorf("summarizer returned status %d", resp.StatusCode)
	}

	var out struct {
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Summary, nil
}
