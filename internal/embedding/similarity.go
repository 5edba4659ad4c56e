package embedding

import "math"

// CosineSimilarity returns the cosine of the angle between a and b. Nil,
// empty, mismatched or zero-magnitude vectors yield 0 rather than an
// error; similarity is advisory and must never break a pipeline.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// MostSimilar returns the index of the candidate closest to query by
// cosine similarity, along with the similarity value. It returns -1 when
// there are no usable candidates.
func MostSimilar(query []float32, candidates [][]float32) (int, float64) {
	best := -1
	bestSim := 0.0
	for i, c := range candidates {
		if len(c) == 0 {
			continue
		}
		sim := CosineSimilarity(query, c)
		if best == -1 || sim > bestSim {
			best = i
			bestSim = sim
		}
	}
	if best == -1 {
		return -1, 0
	}
	return best, bestSim
}
