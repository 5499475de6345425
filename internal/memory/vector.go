package memory

import (
	"fmt"
	"math"
)

// Cosine computes cosine similarity for two vectors. Dimension mismatches
// and zero-norm vectors are errors; the score is clamped to [-1, 1] to
// absorb float drift.
func Cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("cosine: empty vector")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("cosine: dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		ai, bi := float64(a[i]), float64(b[i])
		if math.IsNaN(ai) || math.IsInf(ai, 0) || math.IsNaN(bi) || math.IsInf(bi, 0) {
			return 0, fmt.Errorf("cosine: non-finite value at index %d", i)
		}
		dot += ai * bi
		normA += ai * ai
		normB += bi * bi
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("cosine: zero-norm vector")
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if score > 1 {
		score = 1
	} else if score < -1 {
		score = -1
	}
	return score, nil
}
