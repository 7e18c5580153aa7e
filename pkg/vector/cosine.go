package vector

import "math"

// Cosine returns the cosine similarity between two vectors: the dot product
// divided by the product of magnitudes, in [-1, 1] for non-degenerate inputs.
// A zero-magnitude vector yields 0, never NaN. Vectors of unequal length are
// compared over the shorter prefix.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
