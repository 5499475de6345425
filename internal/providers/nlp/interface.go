// Package nlp abstracts the pretrained language model behind the analysis
// tool. The summarizer never goes through it; everything that needs a real
// model (tagging, parsing, entity recognition, embeddings) does.
package nlp

import (
	"context"

	"github.com/zester4/RaidenAlpha/internal/models"
)

// Provider is the contract for the wrapped language model. Implementations
// must be safe for concurrent use.
type Provider interface {
	Entities(ctx context.Context, text string) ([]models.Entity, error)
	POSTags(ctx context.Context, text string) ([]models.POSTag, error)
	Dependencies(ctx context.Context, text string) ([]models.Dependency, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}
