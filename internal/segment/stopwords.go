package segment

// English stop words excluded from frequency scoring. The list follows the
// usual functional-word inventory; it is intentionally small and fixed so
// segmentation stays deterministic across runs.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "am", "it", "its", "this",
		"that", "these", "those", "from", "up", "down", "over", "under",
		"again", "further", "than", "so", "such", "into", "about",
		"between", "through", "during", "before", "after", "above",
		"below", "out", "off", "own", "same", "too", "very", "can",
		"will", "just", "should", "would", "could", "now", "not", "no",
		"nor", "do", "does", "did", "doing", "have", "has", "had",
		"having", "he", "she", "they", "them", "their", "his", "her",
		"we", "us", "our", "you", "your", "i", "me", "my", "who",
		"whom", "which", "what", "when", "where", "why", "how", "all",
		"any", "both", "each", "few", "more", "most", "other", "some",
		"only", "there", "here", "while", "because", "until", "against",
		"once",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}

// IsStopWord reports whether the lowercased form is a stop word.
func IsStopWord(norm string) bool {
	_, ok := stopwords[norm]
	return ok
}
