package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/zester4/RaidenAlpha/internal/memory"
	"github.com/zester4/RaidenAlpha/internal/models"
	"github.com/zester4/RaidenAlpha/internal/providers/nlp"
)

const testArticle = "Rockets launched from the coastal pad today. " +
	"Engineers cheered as the rockets cleared the tower. " +
	"Lunch was served in the cafeteria afterwards. " +
	"The rockets will carry supplies into orbit."

func newAnalysisTool() *TextAnalysisTool {
	return NewTextAnalysisTool(&nlp.MockProvider{}, nil)
}

func TestAnalyzeRequiresText(t *testing.T) {
	_, _, err := newAnalysisTool().Execute(context.Background(), map[string]any{
		"analysis_type": "summary",
	})
	if err == nil || !strings.Contains(err.Error(), "missing text") {
		t.Fatalf("expected missing text error, got %v", err)
	}
}

func TestAnalyzeRejectsUnknownType(t *testing.T) {
	_, _, err := newAnalysisTool().Execute(context.Background(), map[string]any{
		"text":          "Some text.",
		"analysis_type": "sentiment",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown analysis_type") {
		t.Fatalf("expected unknown type error, got %v", err)
	}
	// The error should teach the caller the valid set.
	if !strings.Contains(err.Error(), "summary") {
		t.Fatalf("error does not list valid types: %v", err)
	}
}

func TestAnalyzeSummaryDefaultsToThreeSentences(t *testing.T) {
	out, logs, err := newAnalysisTool().Execute(context.Background(), map[string]any{
		"text":          testArticle,
		"analysis_type": "summary",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	result, ok := out.(models.SummaryResult)
	if !ok {
		t.Fatalf("output type %T, want SummaryResult", out)
	}
	if len(result.Sentences) != 3 {
		t.Fatalf("got %d sentences, want default 3", len(result.Sentences))
	}
	if result.SentenceCount != 4 {
		t.Fatalf("SentenceCount=%d, want 4", result.SentenceCount)
	}
	for i := 1; i < len(result.Sentences); i++ {
		if result.Sentences[i].Start <= result.Sentences[i-1].Start {
			t.Fatal("summary sentences not in document order")
		}
	}
	// "rockets" dominates the frequency table, so the off-topic lunch
	// sentence is the one dropped.
	if strings.Contains(result.Summary, "Lunch") {
		t.Fatalf("lowest-scoring sentence survived: %q", result.Summary)
	}
	if !strings.Contains(logs, "analysis=summary") {
		t.Fatalf("logs=%q", logs)
	}
}

func TestAnalyzeSummaryMaxSentencesZero(t *testing.T) {
	out, _, err := newAnalysisTool().Execute(context.Background(), map[string]any{
		"text":          testArticle,
		"analysis_type": "summary",
		"max_sentences": float64(0),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	result := out.(models.SummaryResult)
	if result.Summary != "" || len(result.Sentences) != 0 {
		t.Fatalf("max_sentences=0 should yield empty summary, got %+v", result)
	}
}

func TestAnalyzeSummaryStreamsSentences(t *testing.T) {
	var streamed []string
	ctx := context.WithValue(context.Background(), CtxTokenCallbackKey, TokenCallback(func(chunk string) {
		streamed = append(streamed, chunk)
	}))
	out, _, err := newAnalysisTool().Execute(ctx, map[string]any{
		"text":          testArticle,
		"analysis_type": "summary",
		"max_sentences": float64(2),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	result := out.(models.SummaryResult)
	if len(streamed) != len(result.Sentences) {
		t.Fatalf("streamed %d chunks for %d sentences", len(streamed), len(result.Sentences))
	}
}

func TestAnalyzeSimilarityRequiresComparisonText(t *testing.T) {
	_, _, err := newAnalysisTool().Execute(context.Background(), map[string]any{
		"text":          "Rockets launch.",
		"analysis_type": "similarity",
	})
	if err == nil || !strings.Contains(err.Error(), "comparison_text") {
		t.Fatalf("expected comparison_text error, got %v", err)
	}
}

func TestAnalyzeSimilarityScoresRelatedTextHigher(t *testing.T) {
	tool := newAnalysisTool()
	run := func(comparison string) float64 {
		out, _, err := tool.Execute(context.Background(), map[string]any{
			"text":            "Rockets launch into orbit from the pad.",
			"analysis_type":   "similarity",
			"comparison_text": comparison,
		})
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		return out.(models.SimilarityResult).Similarity
	}
	related := run("Orbital rockets launch from coastal pads.")
	unrelated := run("Garlic butter pasta simmers slowly.")
	if related <= unrelated {
		t.Fatalf("related=%v unrelated=%v; want related higher", related, unrelated)
	}
}

func TestAnalyzeEntitiesDelegatesToProvider(t *testing.T) {
	out, _, err := newAnalysisTool().Execute(context.Background(), map[string]any{
		"text":          "Contact ada@example.com about Ada Lovelace.",
		"analysis_type": "entities",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	ents, ok := out.([]models.Entity)
	if !ok {
		t.Fatalf("output type %T, want []Entity", out)
	}
	if len(ents) == 0 {
		t.Fatal("no entities returned")
	}
}

func TestAnalyzeTextFormat(t *testing.T) {
	out, _, err := newAnalysisTool().Execute(context.Background(), map[string]any{
		"text":          testArticle,
		"analysis_type": "summary",
		"format":        "text",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	rendered, ok := out.(string)
	if !ok || !strings.HasPrefix(rendered, "Summary:") {
		t.Fatalf("text format output = %#v", out)
	}
}

func TestAnalyzeLogsToMemory(t *testing.T) {
	store := memory.NewStore(&nlp.MockProvider{})
	tool := NewTextAnalysisTool(&nlp.MockProvider{}, store)

	_, _, err := tool.Execute(context.Background(), map[string]any{
		"text":          testArticle,
		"analysis_type": "summary",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("memory entries=%d, want 1", store.Len())
	}
	matches, err := store.Search(context.Background(), "rockets", 1)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(matches) != 1 || matches[0].Metadata["analysis_type"] != "summary" {
		t.Fatalf("unexpected memory record: %+v", matches)
	}
}

func TestMemorySearchToolFormatsResults(t *testing.T) {
	store := memory.NewStore(&nlp.MockProvider{})
	if err := store.Add(context.Background(), "Analyzed text (summary): rockets launch today", nil); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	tool := &MemorySearchTool{Store: store}

	out, logs, err := tool.Execute(context.Background(), map[string]any{
		"query":  "rocket launches",
		"format": "text",
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	text := out.(string)
	if !strings.Contains(text, "Memory 1 (Relevance:") {
		t.Fatalf("unexpected rendering: %q", text)
	}
	if logs != "matches=1" {
		t.Fatalf("logs=%q", logs)
	}
}

func TestMemorySearchToolRequiresQuery(t *testing.T) {
	tool := &MemorySearchTool{Store: memory.NewStore(&nlp.MockProvider{})}
	if _, _, err := tool.Execute(context.Background(), map[string]any{}); err == nil {
		t.Fatal("expected missing query error")
	}
}
