package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cloud.google.com/go/vertexai/genai"

	"pdf-summarizer/internal/domain"
)

// VertexProvider serves Gemini-family models through Vertex AI. One genai
// client is shared across all models of this provider and created on the
// first load, so a deployment that never selects a Vertex model never needs
// GCP credentials.
type VertexProvider struct {
	projectID string
	location  string

	mu     sync.Mutex
	client *genai.Client
}

// NewVertexProvider creates a provider for the given GCP project and region.
func NewVertexProvider(projectID, location string) *VertexProvider {
	return &VertexProvider{projectID: projectID, location: location}
}

func (p *VertexProvider) Name() string { return "vertex" }

// Load creates the shared client if needed and binds the generative model.
func (p *VertexProvider) Load(ctx context.Context, modelID string) (domain.SummaryModel, error) {
	if p.projectID == "" {
		return nil, fmt.Errorf("VERTEX_PROJECT_ID not configured")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		client, err := genai.NewClient(ctx, p.projectID, p.location)
		if err != nil {
			return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
		}
		p.client = client
	}

	model := p.client.GenerativeModel(modelID)
	model.SetTemperature(0)
	return &vertexModel{model: model}, nil
}

type vertexModel struct {
	model *genai.GenerativeModel
}

func (m *vertexModel) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := m.model.GenerateContent(ctx, genai.Text(summarizePrompt+text))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}
