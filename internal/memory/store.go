// Package memory is the semantic side channel of the analysis service: an
// in-process vector store that analysis results are logged into and that the
// memory_search tool queries. Entries live for the process lifetime only.
package memory

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"
)

// Embedder is the slice of the nlp provider the store needs.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Entry is one logged record with its embedding.
type Entry struct {
	Text      string            `json:"text"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`

	vector []float32
}

// Match pairs an entry with its similarity to a query.
type Match struct {
	Entry
	Similarity float64 `json:"similarity"`
}

const defaultMaxEntries = 1000

// Store is safe for concurrent use. The zero value is not usable; construct
// with NewStore.
type Store struct {
	embedder Embedder

	mu      sync.RWMutex
	entries []Entry
	max     int
}

func NewStore(embedder Embedder) *Store {
	return &Store{embedder: embedder, max: defaultMaxEntries}
}

// Add embeds text and appends it. When the store is full the oldest entry
// is dropped.
func (s *Store) Add(ctx context.Context, text string, metadata map[string]string) error {
	if text == "" {
		return fmt.Errorf("memory add: empty text")
	}
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("memory add: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) >= s.max {
		s.entries = s.entries[1:]
	}
	s.entries = append(s.entries, Entry{
		Text:      text,
		Metadata:  metadata,
		CreatedAt: time.Now(),
		vector:    vec,
	})
	return nil
}

// AddBatch embeds and stores several texts with bounded concurrency. Failed
// items are logged and skipped; the first error is returned after the whole
// batch has been attempted.
func (s *Store) AddBatch(ctx context.Context, texts []string, metadata map[string]string, maxParallel int) error {
	if maxParallel < 1 {
		maxParallel = 3
	}
	sem := make(chan struct{}, maxParallel)
	var wg sync.WaitGroup
	errs := make([]error, len(texts))
	for i, text := range texts {
		if text == "" {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, text string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := s.Add(ctx, text, metadata); err != nil {
				log.Printf("memory: batch add failed: %v", err)
				errs[i] = err
			}
		}(i, text)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Search embeds the query and returns the topK most similar entries, highest
// similarity first. Entries whose stored vector cannot be compared (stale
// dimension after a model change) are skipped.
func (s *Store) Search(ctx context.Context, query string, topK int) ([]Match, error) {
	if query == "" {
		return nil, fmt.Errorf("memory search: empty query")
	}
	if topK < 1 {
		topK = 3
	}
	qvec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("memory search: %w", err)
	}

	s.mu.RLock()
	matches := make([]Match, 0, len(s.entries))
	for _, e := range s.entries {
		sim, err := Cosine(qvec, e.vector)
		if err != nil {
			continue
		}
		matches = append(matches, Match{Entry: e, Similarity: sim})
	}
	s.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool { return matches[i].Similarity > matches[j].Similarity })
	if topK > len(matches) {
		topK = len(matches)
	}
	return matches[:topK], nil
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
