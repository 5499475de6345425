package summarizer

import (
	"reflect"
	"strings"
	"testing"
)

var testStops = map[string]bool{
	"the": true, "on": true, "in": true, "and": true, "are": true, "a": true,
}

// buildDoc segments pre-split sentences with a minimal tokenizer so the
// tests control exactly which tokens carry which flags.
func buildDoc(sentences ...string) Document {
	var doc Document
	offset := 0
	for _, text := range sentences {
		sent := Sentence{Text: text, Start: offset}
		for _, raw := range strings.Fields(text) {
			word := strings.Trim(raw, ".,!?")
			if word == "" {
				continue
			}
			alpha := true
			for _, r := range word {
				if r < 'A' || (r > 'Z' && r < 'a') || r > 'z' {
					alpha = false
					break
				}
			}
			norm := strings.ToLower(word)
			sent.Tokens = append(sent.Tokens, Token{
				Text:    word,
				Norm:    norm,
				IsStop:  testStops[norm],
				IsAlpha: alpha,
			})
		}
		doc.Sentences = append(doc.Sentences, sent)
		offset += len(text) + 1
	}
	return doc
}

func sentenceTexts(sents []Sentence) []string {
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		out = append(out, s.Text)
	}
	return out
}

func TestFrequencyTableCountsPerOccurrence(t *testing.T) {
	doc := buildDoc("Cats chase mice.", "Cats sleep.", "Mice hide in the wall.")
	freq := BuildFrequencyTable(doc)

	if got := freq["cats"]; got != 2 {
		t.Fatalf("freq[cats]=%d, want 2", got)
	}
	if got := freq["mice"]; got != 2 {
		t.Fatalf("freq[mice]=%d, want 2", got)
	}
	if _, ok := freq["the"]; ok {
		t.Fatal("stop word entered the frequency table")
	}
	if _, ok := freq["in"]; ok {
		t.Fatal("stop word entered the frequency table")
	}
}

func TestFrequencyTableSkipsNonAlphabetic(t *testing.T) {
	doc := buildDoc("Model v2 shipped 42 fixes.")
	freq := BuildFrequencyTable(doc)
	for _, bad := range []string{"v2", "42"} {
		if _, ok := freq[bad]; ok {
			t.Fatalf("non-alphabetic token %q entered the frequency table", bad)
		}
	}
	if freq["model"] != 1 || freq["shipped"] != 1 || freq["fixes"] != 1 {
		t.Fatalf("unexpected table: %v", freq)
	}
}

func TestScoreSumsTableEntries(t *testing.T) {
	doc := buildDoc("Cats chase mice.", "Cats sleep.", "Mice hide in the wall.")
	freq := BuildFrequencyTable(doc)

	// cats(2) + chase(1) + mice(2) = 5
	if got := Score(doc.Sentences[0], freq); got != 5 {
		t.Fatalf("Score(S1)=%d, want 5", got)
	}
	// cats(2) + sleep(1) = 3
	if got := Score(doc.Sentences[1], freq); got != 3 {
		t.Fatalf("Score(S2)=%d, want 3", got)
	}
}

func TestSummarizeReturnsAllWhenKExceedsSentences(t *testing.T) {
	doc := buildDoc("The cat sat on the mat.", "The dog ran in the park.", "Cats and dogs are common pets.")
	for _, k := range []int{3, 4, 100} {
		got := Summarize(doc, k)
		want := []string{"The cat sat on the mat.", "The dog ran in the park.", "Cats and dogs are common pets."}
		if !reflect.DeepEqual(sentenceTexts(got), want) {
			t.Fatalf("k=%d: got %v, want all sentences in order", k, sentenceTexts(got))
		}
	}
}

func TestSummarizeZeroK(t *testing.T) {
	doc := buildDoc("The cat sat.", "The dog ran.")
	if got := Summarize(doc, 0); len(got) != 0 {
		t.Fatalf("k=0 returned %d sentences", len(got))
	}
}

func TestSummarizeEmptyDocument(t *testing.T) {
	if got := Summarize(Document{}, 3); len(got) != 0 {
		t.Fatalf("empty document returned %d sentences", len(got))
	}
}

func TestSummarizeSingleSentence(t *testing.T) {
	doc := buildDoc("Only one sentence here.")
	got := Summarize(doc, 3)
	if len(got) != 1 || got[0].Text != "Only one sentence here." {
		t.Fatalf("got %v, want the single sentence", sentenceTexts(got))
	}
}

func TestSummarizePreservesDocumentOrder(t *testing.T) {
	doc := buildDoc(
		"Bland filler sentence one.",
		"Rockets rockets rockets launch rockets.",
		"More filler text follows.",
		"Rockets launch again today.",
	)
	got := Summarize(doc, 2)
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start <= got[i-1].Start {
			t.Fatalf("offsets not strictly increasing: %d then %d", got[i-1].Start, got[i].Start)
		}
	}
	// The two rocket-heavy sentences dominate the table.
	want := []string{"Rockets rockets rockets launch rockets.", "Rockets launch again today."}
	if !reflect.DeepEqual(sentenceTexts(got), want) {
		t.Fatalf("got %v, want %v", sentenceTexts(got), want)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	doc := buildDoc("The cat sat on the mat.", "The dog ran in the park.", "Cats and dogs are common pets.")
	first := Summarize(doc, 2)
	second := Summarize(doc, 2)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated summarization differs:\n%v\n%v", first, second)
	}
}

func TestSummarizeTieBreakPicksLowestOffset(t *testing.T) {
	// Three sentences with identical token content score identically;
	// selection must keep the two earliest.
	doc := buildDoc("Alpha beta gamma.", "Alpha beta gamma.", "Alpha beta gamma.")
	got := Summarize(doc, 2)
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2", len(got))
	}
	if got[0].Start != doc.Sentences[0].Start || got[1].Start != doc.Sentences[1].Start {
		t.Fatalf("tie-break did not pick the lowest offsets: starts %d,%d", got[0].Start, got[1].Start)
	}
}

func TestSummarizeAllStopWordsStillSelects(t *testing.T) {
	doc := buildDoc("The the the.", "On and in.", "A the on.", "And are the.")
	got := Summarize(doc, 2)
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2 despite all-zero scores", len(got))
	}
	if got[0].Start != doc.Sentences[0].Start || got[1].Start != doc.Sentences[1].Start {
		t.Fatalf("zero-score selection should degrade to offset order, got starts %d,%d", got[0].Start, got[1].Start)
	}
}

func TestSummarizeNeverInventsSentences(t *testing.T) {
	doc := buildDoc("The cat sat on the mat.", "The dog ran in the park.", "Cats and dogs are common pets.")
	got := Summarize(doc, 2)
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want exactly 2", len(got))
	}
	originals := map[string]bool{}
	for _, s := range doc.Sentences {
		originals[s.Text] = true
	}
	for _, s := range got {
		if !originals[s.Text] {
			t.Fatalf("summary contains sentence absent from document: %q", s.Text)
		}
	}
}

func TestSummaryTextJoinsWithSingleSpace(t *testing.T) {
	doc := buildDoc("First one.", "Second one.")
	got := SummaryText(Summarize(doc, 2))
	if got != "First one. Second one." {
		t.Fatalf("SummaryText=%q", got)
	}
	if SummaryText(nil) != "" {
		t.Fatal("SummaryText(nil) should be empty")
	}
}
