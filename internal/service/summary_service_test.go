package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"pdf-summarizer/internal/domain"
)

func newTestSummaryService(model *mockSummaryModel, snippetCap int) (*SummaryService, *mockRegistry) {
	registry := &mockRegistry{model: model}
	svc := NewSummaryService(registry, &mockConfig{snippetCap: snippetCap}, mockLogger{})
	return svc, registry
}

func TestSummarize_EmptyInputRejected(t *testing.T) {
	svc, _ := newTestSummaryService(&mockSummaryModel{}, 1000)

	for _, input := range []string{"", "   ", "\n\t \n"} {
		_, err := svc.Summarize(context.Background(), input, "t5-small")
		if !errors.Is(err, domain.ErrEmptyInput) {
			t.Fatalf("input %q: expected ErrEmptyInput, got %v", input, err)
		}
	}
}

func TestSummarize_TruncatesToSnippetCap(t *testing.T) {
	model := &mockSummaryModel{output: "short."}
	svc, _ := newTestSummaryService(model, 10)

	long := strings.Repeat("é", 50)
	if _, err := svc.Summarize(context.Background(), long, "t5-small"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := utf8.RuneCountInString(model.received); got != 10 {
		t.Fatalf("expected snippet of 10 runes, model received %d", got)
	}
}

func TestSummarize_ShortInputPassedThrough(t *testing.T) {
	model := &mockSummaryModel{output: "short."}
	svc, _ := newTestSummaryService(model, 1000)

	if _, err := svc.Summarize(context.Background(), "tiny text", "t5-small"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.received != "tiny text" {
		t.Fatalf("expected untruncated input, model received %q", model.received)
	}
}

func TestSummarize_SplitsOutputIntoBullets(t *testing.T) {
	model := &mockSummaryModel{output: "First finding. Second finding. Third finding."}
	svc, _ := newTestSummaryService(model, 1000)

	result, err := svc.Summarize(context.Background(), "document text", "t5-small")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ModelID != "t5-small" {
		t.Fatalf("expected model id echoed, got %q", result.ModelID)
	}
	if len(result.BulletPoints) != 3 {
		t.Fatalf("expected 3 bullets, got %q", result.BulletPoints)
	}
	if result.BulletPoints[0] != "First finding." {
		t.Fatalf("unexpected first bullet: %q", result.BulletPoints[0])
	}
}

func TestSummarize_RegistryErrorPropagates(t *testing.T) {
	registry := &mockRegistry{err: fmt.Errorf("%w: t5-small", domain.ErrModelUnavailable)}
	svc := NewSummaryService(registry, &mockConfig{snippetCap: 1000}, mockLogger{})

	_, err := svc.Summarize(context.Background(), "some text", "t5-small")
	if !errors.Is(err, domain.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestSummarize_ModelErrorPropagates(t *testing.T) {
	model := &mockSummaryModel{err: errors.New("inference exploded")}
	svc, _ := newTestSummaryService(model, 1000)

	if _, err := svc.Summarize(context.Background(), "some text", "t5-small"); err == nil {
		t.Fatal("expected model error to propagate")
	}
}

func TestRenderDownload(t *testing.T) {
	svc, _ := newTestSummaryService(&mockSummaryModel{}, 1000)

	got := svc.RenderDownload([]string{"first point", "second point"})
	want := "- first point\n- second point\n"
	if got != want {
		t.Fatalf("unexpected download body:\ngot  %q\nwant %q", got, want)
	}
}
