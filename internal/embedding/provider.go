package embedding

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider adapts *openai.Client to the Embedder interface. It works
// against any OpenAI-compatible endpoint, including local servers, the same
// way for all of them.
type OpenAIProvider struct {
	Inner *openai.Client
	// Model names the embedding model. Empty selects a small default.
	Model string
}

const defaultModel = string(openai.SmallEmbedding3)

func (p *OpenAIProvider) model() openai.EmbeddingModel {
	if strings.TrimSpace(p.Model) == "" {
		return openai.EmbeddingModel(defaultModel)
	}
	return openai.EmbeddingModel(p.Model)
}

// Embed returns the embedding vector for one text. Empty or
// whitespace-only input returns nil without touching the backend.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	resp, err := p.Inner.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: p.model(),
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("create embedding: backend returned no data")
	}
	return resp.Data[0].Embedding, nil
}

// EmbedBatch returns one vector per input text in order. Blank texts map
// to nil vectors; only the non-blank ones are sent to the backend, in a
// single request.
func (p *OpenAIProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	nonBlank := make([]string, 0, len(texts))
	positions := make([]int, 0, len(texts))
	for i, t := range texts {
		if strings.TrimSpace(t) != "" {
			nonBlank = append(nonBlank, t)
			positions = append(positions, i)
		}
	}
	out := make([][]float32, len(texts))
	if len(nonBlank) == 0 {
		return out, nil
	}
	resp, err := p.Inner.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: nonBlank,
		Model: p.model(),
	})
	if err != nil {
		return nil, fmt.Errorf("create batch embeddings: %w", err)
	}
	if len(resp.Data) != len(nonBlank) {
		return nil, fmt.Errorf("create batch embeddings: got %d vectors for %d inputs",
			len(resp.Data), len(nonBlank))
	}
	for i, d := range resp.Data {
		out[positions[i]] = d.Embedding
	}
	return out, nil
}
