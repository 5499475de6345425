package summarizer

// Token is a single token of a segmented sentence. The segmentation layer
// fills in the normalized form and the stop-word/alphabetic flags; this
// package never inspects the surface text itself.
type Token struct {
	Text    string `json:"text"`
	Norm    string `json:"norm"`
	IsStop  bool   `json:"is_stop"`
	IsAlpha bool   `json:"is_alpha"`
}

// Sentence is an ordered run of tokens with its byte start offset in the
// source document. Offsets are what final summary ordering is keyed on.
type Sentence struct {
	Text   string  `json:"text"`
	Start  int     `json:"start"`
	Tokens []Token `json:"tokens"`
}

// Document is an immutable, ordered sequence of sentences.
type Document struct {
	Sentences []Sentence `json:"sentences"`
}

// FrequencyTable maps a normalized token to its occurrence count across a
// whole document. Stop words and non-alphabetic tokens are never entered.
type FrequencyTable map[string]int

// BuildFrequencyTable counts every non-stop, alphabetic token occurrence in
// the document, once per appearance.
func BuildFrequencyTable(doc Document) FrequencyTable {
	freq := FrequencyTable{}
	for _, sent := range doc.Sentences {
		for _, tok := range sent.Tokens {
			if tok.IsStop || !tok.IsAlpha {
				continue
			}
			freq[tok.Norm]++
		}
	}
	return freq
}

// Score sums the frequency-table counts for the sentence's tokens. Tokens
// absent from the table contribute zero.
func Score(sent Sentence, freq FrequencyTable) int {
	score := 0
	for _, tok := range sent.Tokens {
		score += freq[tok.Norm]
	}
	return score
}
