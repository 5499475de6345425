package nlp

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/zester4/RaidenAlpha/internal/models"
	"github.com/zester4/RaidenAlpha/internal/segment"
)

// MockProvider is used when no API key is configured. Everything it returns
// is a deterministic function of the input text: pattern-based entity
// recognition, suffix-heuristic POS tags, a flat dependency parse, and a
// hashed bag-of-words embedding. Good enough for development and tests, not
// a claim to linguistic accuracy.
type MockProvider struct{}

var (
	urlPattern   = regexp.MustCompile(`https?://[^\s]+`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	moneyPattern = regexp.MustCompile(`[$€£]\s?\d[\d,]*(?:\.\d+)?`)
	datePattern  = regexp.MustCompile(`\b(?:\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4}|(?:19|20)\d{2})\b`)
	// Runs of capitalized words, e.g. "Ada Lovelace", "New York City".
	properPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
)

func (m *MockProvider) Entities(ctx context.Context, text string) ([]models.Entity, error) {
	var out []models.Entity
	add := func(pattern *regexp.Regexp, label string) {
		for _, match := range pattern.FindAllString(text, -1) {
			out = append(out, models.Entity{Text: match, Label: label})
		}
	}
	add(urlPattern, "URL")
	add(emailPattern, "EMAIL")
	add(moneyPattern, "MONEY")
	add(datePattern, "DATE")
	for _, match := range properPattern.FindAllStringIndex(text, -1) {
		// Sentence-initial single words are usually not entities; skip a
		// lone capitalized word at offset 0 or right after a terminator.
		s := text[match[0]:match[1]]
		if !strings.Contains(s, " ") && sentenceInitial(text, match[0]) {
			continue
		}
		out = append(out, models.Entity{Text: s, Label: "PROPN"})
	}
	if out == nil {
		out = []models.Entity{}
	}
	return out, nil
}

func sentenceInitial(text string, offset int) bool {
	for i := offset - 1; i >= 0; i-- {
		r := rune(text[i])
		if unicode.IsSpace(r) {
			continue
		}
		return r == '.' || r == '!' || r == '?'
	}
	return true
}

func (m *MockProvider) POSTags(ctx context.Context, text string) ([]models.POSTag, error) {
	doc := segment.New().Segment(text)
	var out []models.POSTag
	for _, sent := range doc.Sentences {
		for _, tok := range sent.Tokens {
			out = append(out, models.POSTag{Text: tok.Text, Tag: guessTag(tok.Text, tok.Norm, tok.IsStop, tok.IsAlpha)})
		}
	}
	if out == nil {
		out = []models.POSTag{}
	}
	return out, nil
}

func guessTag(text, norm string, isStop, isAlpha bool) string {
	switch {
	case !isAlpha:
		return "NUM"
	case isStop:
		return "DET"
	case strings.HasSuffix(norm, "ly"):
		return "ADV"
	case strings.HasSuffix(norm, "ing"), strings.HasSuffix(norm, "ed"):
		return "VERB"
	case text != norm && strings.ToUpper(text[:1]) == text[:1]:
		return "PROPN"
	default:
		return "NOUN"
	}
}

func (m *MockProvider) Dependencies(ctx context.Context, text string) ([]models.Dependency, error) {
	doc := segment.New().Segment(text)
	var out []models.Dependency
	for _, sent := range doc.Sentences {
		if len(sent.Tokens) == 0 {
			continue
		}
		// Flat parse: the first content token is the root, everything else
		// attaches to it.
		head := sent.Tokens[0].Text
		for _, tok := range sent.Tokens {
			if !tok.IsStop && tok.IsAlpha {
				head = tok.Text
				break
			}
		}
		for _, tok := range sent.Tokens {
			if tok.Text == head {
				out = append(out, models.Dependency{Text: tok.Text, Relation: "ROOT", Head: tok.Text})
				continue
			}
			out = append(out, models.Dependency{Text: tok.Text, Relation: "dep", Head: head})
		}
	}
	if out == nil {
		out = []models.Dependency{}
	}
	return out, nil
}

const mockEmbedDim = 64

// Embed hashes normalized tokens into a fixed-size bag-of-words vector and
// L2-normalizes it, so overlapping vocabularies yield high cosine scores.
func (m *MockProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vec := make([]float32, mockEmbedDim)
	doc := segment.New().Segment(text)
	for _, sent := range doc.Sentences {
		for _, tok := range sent.Tokens {
			if tok.IsStop || !tok.IsAlpha {
				continue
			}
			h := fnv.New32a()
			h.Write([]byte(tok.Norm))
			vec[h.Sum32()%mockEmbedDim]++
		}
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		// No content tokens; return a fixed unit vector so cosine math
		// downstream stays defined.
		vec[0] = 1
		return vec, nil
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec, nil
}
