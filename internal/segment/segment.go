// Package segment turns raw text into the pre-tokenized, pre-flagged
// documents the summarizer consumes. Sentence boundaries are punctuation
// based and every sentence keeps its byte start offset into the source text.
package segment

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/zester4/RaidenAlpha/internal/summarizer"
)

var (
	// A sentence is a run of non-terminator characters plus any trailing
	// terminators, so "e.g." style fragments stay attached to their dots.
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

	// Tokens are letter/digit runs, allowing internal apostrophes
	// ("don't", "o'clock").
	tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*`)
)

// Segmenter produces summarizer Documents. It holds no per-call state and is
// safe for concurrent use.
type Segmenter struct{}

func New() *Segmenter { return &Segmenter{} }

// Segment splits text into sentences and tokens. Whitespace-only fragments
// are dropped; offsets refer to the trimmed sentence start in the original
// byte string.
func (g *Segmenter) Segment(text string) summarizer.Document {
	var doc summarizer.Document
	for _, loc := range sentencePattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		lead := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
		sent := summarizer.Sentence{
			Text:  trimmed,
			Start: loc[0] + lead,
		}
		for _, word := range tokenPattern.FindAllString(trimmed, -1) {
			norm := strings.ToLower(word)
			sent.Tokens = append(sent.Tokens, summarizer.Token{
				Text:    word,
				Norm:    norm,
				IsStop:  IsStopWord(norm),
				IsAlpha: isAlphabetic(word),
			})
		}
		doc.Sentences = append(doc.Sentences, sent)
	}
	return doc
}

func isAlphabetic(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && r != '\'' && r != '’' {
			return false
		}
	}
	return len(word) > 0
}
