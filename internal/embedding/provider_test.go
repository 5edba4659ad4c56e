package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// newStubProvider spins up a minimal OpenAI-compatible embeddings endpoint
// that returns a fixed two-dimensional vector per input.
func newStubProvider(t *testing.T) (*OpenAIProvider, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/embeddings") {
			http.NotFound(w, r)
			return
		}
		calls++
		var req struct {
			Input []string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		type datum struct {
			Object    string    `json:"object"`
			Embedding []float32 `json:"embedding"`
			Index     int       `json:"index"`
		}
		resp := struct {
			Object string  `json:"object"`
			Data   []datum `json:"data"`
			Model  string  `json:"model"`
		}{Object: "list", Model: "stub"}
		for i := range req.Input {
			resp.Data = append(resp.Data, datum{
				Object:    "embedding",
				Embedding: []float32{float32(i + 1), 0.5},
				Index:     i,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return &OpenAIProvider{Inner: openai.NewClientWithConfig(cfg)}, &calls
}

func TestOpenAIProvider_Embed(t *testing.T) {
	p, _ := newStubProvider(t)
	vec, err := p.Embed(context.Background(), "some caption text")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vec) != 2 || vec[0] != 1 {
		t.Fatalf("unexpected vector: %v", vec)
	}
}

func TestOpenAIProvider_EmbedBlankSkipsBackend(t *testing.T) {
	p, calls := newStubProvider(t)
	vec, err := p.Embed(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if vec != nil {
		t.Fatalf("expected nil vector for blank input, got %v", vec)
	}
	if *calls != 0 {
		t.Fatalf("backend called %d times for blank input", *calls)
	}
}

func TestOpenAIProvider_EmbedBatchPreservesPositions(t *testing.T) {
	p, calls := newStubProvider(t)
	vecs, err := p.EmbedBatch(context.Background(), []string{"first", "  ", "third"})
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if len(vecs) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(vecs))
	}
	if vecs[1] != nil {
		t.Fatalf("blank slot should be nil, got %v", vecs[1])
	}
	if len(vecs[0]) == 0 || len(vecs[2]) == 0 {
		t.Fatalf("non-blank slots missing vectors: %v", vecs)
	}
	if *calls != 1 {
		t.Fatalf("expected a single backend call, got %d", *calls)
	}
}

func TestOpenAIProvider_EmbedBatchAllBlank(t *testing.T) {
	p, calls := newStubProvider(t)
	vecs, err := p.EmbedBatch(context.Background(), []string{"", "   "})
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	for i, v := range vecs {
		if v != nil {
			t.Fatalf("slot %d should be nil, got %v", i, v)
		}
	}
	if *calls != 0 {
		t.Fatalf("backend called %d times for all-blank batch", *calls)
	}
}
