package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/zester4/RaidenAlpha/internal/memory"
)

// MemorySearchTool searches the semantic log of past analyses.
// Inputs:
// - query: string (required)
// - results_count: number (optional; default 3)
// - format: string (optional; json|text, default json)
// Output: ranked matches, or a readable relevance report in text format.
type MemorySearchTool struct {
	Store *memory.Store
}

func (t *MemorySearchTool) Name() string { return "memory_search" }

func (t *MemorySearchTool) Execute(ctx context.Context, inputs map[string]any) (any, string, error) {
	if t.Store == nil {
		return nil, "", fmt.Errorf("memory store not configured")
	}
	query := getString(inputs, "query")
	if query == "" {
		return nil, "", fmt.Errorf("missing query")
	}
	count := getInt(inputs, "results_count", 3)

	matches, err := t.Store.Search(ctx, query, count)
	if err != nil {
		return nil, "", err
	}
	logs := fmt.Sprintf("matches=%d", len(matches))
	if getString(inputs, "format") == "text" {
		return renderMatches(matches), logs, nil
	}
	return matches, logs, nil
}

func renderMatches(matches []memory.Match) string {
	if len(matches) == 0 {
		return "No relevant records found in memory."
	}
	parts := make([]string, 0, len(matches))
	for i, m := range matches {
		parts = append(parts, fmt.Sprintf("Memory %d (Relevance: %.2f):\n%s", i+1, m.Similarity, m.Text))
	}
	return "Semantic Memory Search Results:\n\n" + strings.Join(parts, "\n\n---\n\n")
}
