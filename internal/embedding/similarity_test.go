package embedding

import (
	"math"
	"testing"
)

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, -1.25, 3, 0.75}
	got := CosineSimilarity(v, v)
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("identical vectors: got %v, want 1", got)
	}
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	got := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	if math.Abs(got) > 1e-9 {
		t.Fatalf("orthogonal vectors: got %v, want 0", got)
	}
}

func TestCosineSimilarity_OppositeVectors(t *testing.T) {
	got := CosineSimilarity([]float32{1, 2}, []float32{-1, -2})
	if math.Abs(got+1) > 1e-9 {
		t.Fatalf("opposite vectors: got %v, want -1", got)
	}
}

func TestCosineSimilarity_DegenerateInputs(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
	}{
		{"both nil", nil, nil},
		{"one nil", []float32{1, 2}, nil},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}},
		{"zero magnitude", []float32{0, 0}, []float32{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CosineSimilarity(tc.a, tc.b); got != 0 {
				t.Fatalf("got %v, want 0", got)
			}
		})
	}
}

func TestMostSimilar_PicksClosestCandidate(t *testing.T) {
	query := []float32{1, 0}
	candidates := [][]float32{
		{0, 1},
		{0.9, 0.1},
		{-1, 0},
	}
	idx, sim := MostSimilar(query, candidates)
	if idx != 1 {
		t.Fatalf("index = %d, want 1 (sim %v)", idx, sim)
	}
	if sim <= 0 {
		t.Fatalf("similarity = %v, want > 0", sim)
	}
}

func TestMostSimilar_SkipsEmptyCandidates(t *testing.T) {
	idx, sim := MostSimilar([]float32{1, 0}, [][]float32{nil, {}, {0, 1}})
	if idx != 2 {
		t.Fatalf("index = %d, want 2 (sim %v)", idx, sim)
	}
}

func TestMostSimilar_NoCandidates(t *testing.T) {
	idx, sim := MostSimilar([]float32{1, 0}, nil)
	if idx != -1 || sim != 0 {
		t.Fatalf("got (%d, %v), want (-1, 0)", idx, sim)
	}
}
