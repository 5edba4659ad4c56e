// Package embedding wraps an external vector backend behind a small
// interface and provides the pure-math similarity helpers used by the
// analysis pipeline. The backend is a black box: any OpenAI-compatible
// server works, and callers without one simply skip embeddings.
package embedding

import "context"

// Embedder is the minimal interface the analysis pipeline needs to turn
// text into vectors. Implementations must treat empty input as a no-op and
// return nil without calling the backend.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
