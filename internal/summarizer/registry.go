// Package summarizer loads pretrained summarization models lazily and keeps
// them alive for the process lifetime.
package summarizer

import (
	"context"
	"fmt"
	"sync"

	"pdf-summarizer/internal/domain"
)

// Provider loads models of one backend family.
type Provider interface {
	Name() string
	Load(ctx context.Context, modelID string) (domain.SummaryModel, error)
}

type modelEntry struct {
	mu    sync.Mutex
	model domain.SummaryModel
}

// Registry implements domain.ModelRegistry. Each catalog entry gets its own
// lock so that concurrent first requests for the same model perform exactly
// one load while loads of different models proceed independently. A failed
// load is not cached; the next request retries.
type Registry struct {
	logger    domain.Logger
	providers map[string]Provider
	catalog   []domain.ModelInfo
	entries   map[string]*modelEntry
}

// NewRegistry builds a registry over the fixed model catalog. Catalog entries
// naming an unknown provider are dropped with a warning rather than failing
// startup.
func NewRegistry(catalog []domain.ModelInfo, providers []Provider, logger domain.Logger) *Registry {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	r := &Registry{
		logger:    logger,
		providers: byName,
		entries:   make(map[string]*modelEntry),
	}
	for _, m := range catalog {
		if _, ok := byName[m.Provider]; !ok {
			logger.Warn("Dropping catalog entry with unknown provider", "model", m.ID, "provider", m.Provider)
			continue
		}
		r.catalog = append(r.catalog, m)
		r.entries[m.ID] = &modelEntry{}
	}
	return r
}

// Models returns the catalog in configuration order.
func (r *Registry) Models() []domain.ModelInfo {
	return append([]domain.ModelInfo(nil), r.catalog...)
}

// Model returns the loaded model for the given id, loading it on first use.
func (r *Registry) Model(ctx context.Context, modelID string) (domain.SummaryModel, error) {
	entry, ok := r.entries[modelID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownModel, modelID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.model != nil {
		return entry.model, nil
	}

	provider := r.providers[r.providerFor(modelID)]
	r.logger.Info("Loading model", "model", modelID, "provider", provider.Name())
	model, err := provider.Load(ctx, modelID)
	if err != nil {
		r.logger.Error("Model load failed", err, "model", modelID)
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrModelUnavailable, modelID, err)
	}
	entry.model = model
	return model, nil
}

func (r *Registry) providerFor(modelID string) string {
	for _, m := range r.catalog {
		if m.ID == modelID {
			return m.Provider
		}
	}
	return ""
}
