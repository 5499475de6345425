// Package summarizer implements extractive summarization by frequency-based
// sentence ranking: sentences are scored by the document-wide frequency of
// their content words and the top K are returned in original order.
package summarizer

import (
	"sort"
	"strings"
)

// Summarize selects the maxSentences highest-scoring sentences of doc and
// returns them sorted by their start offset. Ties are broken toward the
// lower offset, so selection is deterministic even when every sentence
// scores zero (an all-stop-word document degrades to the first K sentences).
// An empty document or maxSentences <= 0 yields nil.
func Summarize(doc Document, maxSentences int) []Sentence {
	if maxSentences <= 0 || len(doc.Sentences) == 0 {
		return nil
	}
	freq := BuildFrequencyTable(doc)

	type ranked struct {
		sent  Sentence
		score int
	}
	candidates := make([]ranked, 0, len(doc.Sentences))
	for _, sent := range doc.Sentences {
		candidates = append(candidates, ranked{sent: sent, score: Score(sent, freq)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].sent.Start < candidates[j].sent.Start
	})

	if maxSentences > len(candidates) {
		maxSentences = len(candidates)
	}
	selected := make([]Sentence, maxSentences)
	for i := range selected {
		selected[i] = candidates[i].sent
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].Start < selected[j].Start })
	return selected
}

// SummaryText joins the surface text of the given sentences with single
// spaces, the final summary string shape.
func SummaryText(sentences []Sentence) string {
	parts := make([]string, 0, len(sentences))
	for _, sent := range sentences {
		parts = append(parts, sent.Text)
	}
	return strings.Join(parts, " ")
}
