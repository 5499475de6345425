package tools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/zester4/RaidenAlpha/internal/memory"
	"github.com/zester4/RaidenAlpha/internal/models"
	"github.com/zester4/RaidenAlpha/internal/providers/nlp"
	"github.com/zester4/RaidenAlpha/internal/segment"
	"github.com/zester4/RaidenAlpha/internal/summarizer"
)

// TextAnalysisTool exposes the wrapped language model behind one callable
// tool. Summaries are computed natively by frequency-based sentence ranking;
// every other analysis delegates to the Provider.
// Inputs:
// - text: string (required)
// - analysis_type: string (required; summary|entities|pos_tags|dependencies|similarity)
// - comparison_text: string (required for similarity)
// - max_sentences: number (optional; default 3, summary only)
// - format: string (optional; json|text, default json)
// Side effect: when Memory is set, a one-line record of each analysis is
// logged to the vector store; logging failures never fail the analysis.
type TextAnalysisTool struct {
	Provider  nlp.Provider
	Memory    *memory.Store
	Segmenter *segment.Segmenter
}

func NewTextAnalysisTool(provider nlp.Provider, store *memory.Store) *TextAnalysisTool {
	return &TextAnalysisTool{Provider: provider, Memory: store, Segmenter: segment.New()}
}

func (t *TextAnalysisTool) Name() string { return "text_analysis" }

type analysisRequest struct {
	Text           string
	ComparisonText string
	MaxSentences   int
}

// analysisHandlers is the strategy table keyed by the parsed analysis type.
var analysisHandlers = map[models.AnalysisType]func(*TextAnalysisTool, context.Context, analysisRequest) (any, error){
	models.AnalysisSummary:      (*TextAnalysisTool).summary,
	models.AnalysisEntities:     (*TextAnalysisTool).entities,
	models.AnalysisPOSTags:      (*TextAnalysisTool).posTags,
	models.AnalysisDependencies: (*TextAnalysisTool).dependencies,
	models.AnalysisSimilarity:   (*TextAnalysisTool).similarity,
}

func (t *TextAnalysisTool) Execute(ctx context.Context, inputs map[string]any) (any, string, error) {
	text := getString(inputs, "text")
	if text == "" {
		return nil, "", fmt.Errorf("missing text")
	}
	rawType := getString(inputs, "analysis_type")
	if rawType == "" {
		return nil, "", fmt.Errorf("missing analysis_type (valid: %v)", models.AnalysisTypes())
	}
	at, err := models.ParseAnalysisType(rawType)
	if err != nil {
		return nil, "", err
	}

	req := analysisRequest{
		Text:           text,
		ComparisonText: getString(inputs, "comparison_text"),
		MaxSentences:   getInt(inputs, "max_sentences", 3),
	}
	out, err := analysisHandlers[at](t, ctx, req)
	if err != nil {
		return nil, "", err
	}

	t.logToMemory(ctx, at, text)

	logs := fmt.Sprintf("analysis=%s chars=%d", at, len(text))
	if getString(inputs, "format") == "text" {
		return renderText(out), logs, nil
	}
	return out, logs, nil
}

func (t *TextAnalysisTool) summary(ctx context.Context, req analysisRequest) (any, error) {
	doc := t.Segmenter.Segment(req.Text)
	selected := summarizer.Summarize(doc, req.MaxSentences)

	result := models.SummaryResult{
		Summary:       summarizer.SummaryText(selected),
		Sentences:     make([]models.SummarySentence, 0, len(selected)),
		SentenceCount: len(doc.Sentences),
	}
	cb := tokenCallback(ctx)
	for _, sent := range selected {
		result.Sentences = append(result.Sentences, models.SummarySentence{Text: sent.Text, Start: sent.Start})
		if cb != nil {
			cb(sent.Text + " ")
		}
	}
	return result, nil
}

func (t *TextAnalysisTool) entities(ctx context.Context, req analysisRequest) (any, error) {
	return t.Provider.Entities(ctx, req.Text)
}

func (t *TextAnalysisTool) posTags(ctx context.Context, req analysisRequest) (any, error) {
	return t.Provider.POSTags(ctx, req.Text)
}

func (t *TextAnalysisTool) dependencies(ctx context.Context, req analysisRequest) (any, error) {
	return t.Provider.Dependencies(ctx, req.Text)
}

func (t *TextAnalysisTool) similarity(ctx context.Context, req analysisRequest) (any, error) {
	if req.ComparisonText == "" {
		return nil, fmt.Errorf("missing comparison_text for similarity analysis")
	}
	a, err := t.Provider.Embed(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	b, err := t.Provider.Embed(ctx, req.ComparisonText)
	if err != nil {
		return nil, err
	}
	score, err := memory.Cosine(a, b)
	if err != nil {
		return nil, err
	}
	return models.SimilarityResult{Similarity: score, Dimensions: len(a)}, nil
}

func (t *TextAnalysisTool) logToMemory(ctx context.Context, at models.AnalysisType, text string) {
	if t.Memory == nil {
		return
	}
	record := fmt.Sprintf("Analyzed text (%s): %s", at, snippet(text, 200))
	meta := map[string]string{"type": "analysis", "analysis_type": string(at)}
	if err := t.Memory.Add(ctx, record, meta); err != nil {
		log.Printf("text_analysis: memory logging failed: %v", err)
	}
}

func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// renderText produces the human-readable output shape.
func renderText(out any) string {
	var b strings.Builder
	switch v := out.(type) {
	case models.SummaryResult:
		b.WriteString("Summary:\n")
		b.WriteString(v.Summary)
	case []models.Entity:
		b.WriteString("Named Entities:\n")
		for _, e := range v {
			fmt.Fprintf(&b, "- %s (%s)\n", e.Text, e.Label)
		}
	case []models.POSTag:
		b.WriteString("Part-of-Speech Tags:\n")
		for _, p := range v {
			fmt.Fprintf(&b, "- %s: %s\n", p.Text, p.Tag)
		}
	case []models.Dependency:
		b.WriteString("Dependency Parse:\n")
		for _, d := range v {
			fmt.Fprintf(&b, "- %s --%s--> %s\n", d.Text, d.Relation, d.Head)
		}
	case models.SimilarityResult:
		fmt.Fprintf(&b, "Similarity: %.4f (dimensions: %d)", v.Similarity, v.Dimensions)
	default:
		fmt.Fprintf(&b, "%v", out)
	}
	return strings.TrimRight(b.String(), "\n")
}
