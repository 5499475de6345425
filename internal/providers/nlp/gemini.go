package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/zester4/RaidenAlpha/internal/models"
)

// GeminiProvider delegates linguistic analysis to the Gemini API: structured
// JSON prompts for entities/POS/dependencies, EmbedContent for vectors.
type GeminiProvider struct {
	model    *genai.GenerativeModel
	embedder *genai.EmbeddingModel
}

func NewGemini(ctx context.Context, apiKey, modelName, embedModelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{
		model:    client.GenerativeModel(modelName),
		embedder: client.EmbeddingModel(embedModelName),
	}, nil
}

func (g *GeminiProvider) Entities(ctx context.Context, text string) ([]models.Entity, error) {
	prompt := "Extract named entities from the text below. Respond with only a JSON array " +
		`of objects shaped like {"text": "...", "label": "..."} using labels ` +
		"PERSON, ORG, GPE, DATE, MONEY, or MISC.\n\nText:\n" + text
	var out []models.Entity
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return nil, fmt.Errorf("entities: %w", err)
	}
	return out, nil
}

func (g *GeminiProvider) POSTags(ctx context.Context, text string) ([]models.POSTag, error) {
	prompt := "Tag each token of the text below with its universal part-of-speech tag. " +
		`Respond with only a JSON array of objects shaped like {"text": "...", "tag": "..."} ` +
		"in token order.\n\nText:\n" + text
	var out []models.POSTag
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return nil, fmt.Errorf("pos tags: %w", err)
	}
	return out, nil
}

func (g *GeminiProvider) Dependencies(ctx context.Context, text string) ([]models.Dependency, error) {
	prompt := "Produce a dependency parse of the text below. Respond with only a JSON array " +
		`of objects shaped like {"text": "...", "relation": "...", "head": "..."} ` +
		"in token order.\n\nText:\n" + text
	var out []models.Dependency
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return nil, fmt.Errorf("dependencies: %w", err)
	}
	return out, nil
}

func (g *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := g.embedder.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	if resp == nil || resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embed: empty embedding response")
	}
	return resp.Embedding.Values, nil
}

// generateJSON runs a prompt and decodes the first JSON array in the reply.
// Model output is routinely wrapped in code fences or prose, so the raw text
// is normalized before unmarshalling.
func (g *GeminiProvider) generateJSON(ctx context.Context, prompt string, v any) error {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return err
	}
	raw := firstText(resp)
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("empty model response")
	}
	text := normalizeJSONText(raw)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("decode model response: %w", err)
	}
	return nil
}

func firstText(r *genai.GenerateContentResponse) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Candidates {
		if c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func normalizeJSONText(s string) string {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "```") {
		t = strings.TrimPrefix(t, "```")
		if idx := strings.IndexByte(t, '\n'); idx != -1 {
			t = t[idx+1:]
		}
		if j := strings.LastIndex(t, "```"); j != -1 {
			t = t[:j]
		}
		t = strings.TrimSpace(t)
	}
	if !strings.HasPrefix(t, "[") {
		if arr := extractJSONArray(t); arr != "" {
			return arr
		}
	}
	return t
}

// extractJSONArray returns the first balanced top-level JSON array in s.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
