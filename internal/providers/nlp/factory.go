package nlp

import (
	"context"
	"log"
	"os"
	"strings"
)

// NewFromEnv returns a Provider based on environment variables:
// - GOOGLE_API_KEY: enables the Gemini-backed provider
// - NLP_MODEL: optional generative model override (default gemini-1.5-flash)
// - NLP_EMBED_MODEL: optional embedding model override (default text-embedding-004)
// Without a key the deterministic mock provider is returned, so the service
// always starts.
func NewFromEnv(ctx context.Context) Provider {
	key := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	if key == "" {
		return &MockProvider{}
	}
	p, err := NewGemini(ctx, key,
		modelWithDefault("NLP_MODEL", "gemini-1.5-flash"),
		modelWithDefault("NLP_EMBED_MODEL", "text-embedding-004"))
	if err != nil {
		log.Printf("nlp: gemini init failed, falling back to mock: %v", err)
		return &MockProvider{}
	}
	return p
}

func modelWithDefault(envKey, def string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return def
}
